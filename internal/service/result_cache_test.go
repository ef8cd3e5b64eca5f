package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/finishline/internal/models"
)

func TestFingerprintStable(t *testing.T) {
	a, err := Fingerprint(sampleRequest(), "logit-v1")
	require.NoError(t, err)
	b, err := Fingerprint(sampleRequest(), "logit-v1")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := Fingerprint(sampleRequest(), "logit-v2")
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}

func TestResultCacheGetSet(t *testing.T) {
	cache := NewResultCache(time.Minute, 10)
	result := &models.PredictionResult{Mode: "ticket-only"}

	assert.Nil(t, cache.Get("missing"))
	cache.Set("key", result)
	got := cache.Get("key")
	require.NotNil(t, got)
	assert.Equal(t, result, got)
	assert.NotSame(t, result, got)

	hits, misses, ratio := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.InDelta(t, 0.5, ratio, 1e-9)
}

func TestResultCacheCopiesOnSetAndGet(t *testing.T) {
	cache := NewResultCache(time.Minute, 10)
	result := &models.PredictionResult{
		Mode:    "ticket-only",
		Horses:  []models.ScoredHorse{{Name: "Alpha", PWin: 0.6}},
		Summary: models.Summary{TopWin: []string{"Alpha"}},
	}

	cache.Set("key", result)
	result.Horses[0].PWin = 0.1

	first := cache.Get("key")
	require.NotNil(t, first)
	assert.Equal(t, 0.6, first.Horses[0].PWin)

	first.Summary.TopWin[0] = "Bravo"
	second := cache.Get("key")
	require.NotNil(t, second)
	assert.Equal(t, "Alpha", second.Summary.TopWin[0])
}

func TestResultCacheMaxSize(t *testing.T) {
	cache := NewResultCache(time.Minute, 1)

	cache.Set("first", &models.PredictionResult{})
	cache.Set("second", &models.PredictionResult{})

	assert.Equal(t, 1, cache.ItemCount())
	assert.NotNil(t, cache.Get("first"))
	assert.Nil(t, cache.Get("second"))
}

func TestResultCacheClear(t *testing.T) {
	cache := NewResultCache(time.Minute, 10)
	cache.Set("key", &models.PredictionResult{})
	cache.Get("key")

	cache.Clear()

	assert.Equal(t, 0, cache.ItemCount())
	hits, misses, _ := cache.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}
