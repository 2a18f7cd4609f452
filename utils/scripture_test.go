package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScriptureOfDayIsStableWithinADay(t *testing.T) {
	morning := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 10, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, ScriptureOfDay(morning), ScriptureOfDay(evening))
}

func TestScriptureOfDayRotates(t *testing.T) {
	day1 := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	assert.NotEqual(t, ScriptureOfDay(day1), ScriptureOfDay(day2))
}

func TestScriptureOfDayNeverEmpty(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		s := ScriptureOfDay(day.AddDate(0, 0, i))
		assert.NotEmpty(t, s.Text)
		assert.NotEmpty(t, s.Reference)
	}
}
