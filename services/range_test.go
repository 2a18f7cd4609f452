package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveRangePresetSevenDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	got := ResolveRange("7d", "", "", now)
	assert.Equal(t, DateRange{Start: "2024-03-04", End: "2024-03-10"}, got)
}

func TestResolveRangePresets(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		mode  string
		start string
	}{
		{"7d", "2024-03-04"},
		{"14d", "2024-02-26"},
		{"30d", "2024-02-10"},
		{"90d", "2023-12-12"},
	}
	for _, tc := range cases {
		got := ResolveRange(tc.mode, "", "", now)
		assert.Equal(t, tc.start, got.Start, "mode %s", tc.mode)
		assert.Equal(t, "2024-03-10", got.End, "mode %s", tc.mode)
	}
}

func TestResolveRangeUnknownPresetFallsBackTo30Days(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got := ResolveRange("bogus", "", "", now)
	assert.Equal(t, DateRange{Start: "2024-02-10", End: "2024-03-10"}, got)
}

func TestResolveRangeCustom(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got := ResolveRange("custom", "2024-02-01", "2024-03-05", now)
	assert.Equal(t, DateRange{Start: "2024-02-01", End: "2024-03-05"}, got)
}

func TestResolveRangeCustomWithoutFromCollapsesToSingleDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got := ResolveRange("custom", "", "2024-03-05", now)
	assert.Equal(t, DateRange{Start: "2024-03-05", End: "2024-03-05"}, got)
}

func TestResolveRangeCustomWithoutToEndsToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got := ResolveRange("custom", "2024-03-01", "", now)
	assert.Equal(t, DateRange{Start: "2024-03-01", End: "2024-03-10"}, got)
}
