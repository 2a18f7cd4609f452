package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefCacheStartsStale(t *testing.T) {
	cache := NewRefCache(30 * time.Minute)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, cache.Stale(now))
	_, ok := cache.Get(now)
	assert.False(t, ok)
}

func TestRefCacheServesWithinTTL(t *testing.T) {
	cache := NewRefCache(30 * time.Minute)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	data := DefaultReferenceData
	cache.Put(&data, now)

	assert.False(t, cache.Stale(now.Add(29*time.Minute)))
	got, ok := cache.Get(now.Add(29 * time.Minute))
	require.True(t, ok)
	assert.Equal(t, data.TemptationTypes, got.TemptationTypes)
}

func TestRefCacheExpiresAtTTL(t *testing.T) {
	cache := NewRefCache(30 * time.Minute)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	data := DefaultReferenceData
	cache.Put(&data, now)

	assert.True(t, cache.Stale(now.Add(30*time.Minute)))
	_, ok := cache.Get(now.Add(30 * time.Minute))
	assert.False(t, ok)
}

func TestRefCacheRefreshResetsWindow(t *testing.T) {
	cache := NewRefCache(30 * time.Minute)
	start := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	data := DefaultReferenceData
	cache.Put(&data, start)
	later := start.Add(45 * time.Minute)
	cache.Put(&data, later)

	assert.False(t, cache.Stale(later.Add(15*time.Minute)))
}
