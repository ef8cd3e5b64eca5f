package service

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/finishline/internal/metrics"
	"github.com/yourusername/finishline/internal/models"
)

// fingerprintSpace namespaces request fingerprints
var fingerprintSpace = uuid.MustParse("6f1d2c7e-4b0a-5d3e-9a21-0c8e7b5f4d19")

// Fingerprint derives a stable cache key from a request and the calibration version
func Fingerprint(req models.PredictionRequest, calibrationVersion string) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}
	return calibrationVersion + ":" + uuid.NewSHA1(fingerprintSpace, body).String(), nil
}

// ResultCache provides in-memory caching for prediction results
type ResultCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	maxSize   int
	mu        sync.Mutex
	hitCount  uint64
	missCount uint64
}

// NewResultCache creates a new result cache
func NewResultCache(ttl time.Duration, maxSize int) *ResultCache {
	return &ResultCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a copy of a cached result
func (rc *ResultCache) Get(key string) *models.PredictionResult {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if result, found := rc.cache.Get(key); found {
		if pred, ok := result.(*models.PredictionResult); ok {
			rc.hitCount++
			rc.updateMetrics(true)
			return pred.Clone()
		}
	}

	rc.missCount++
	rc.updateMetrics(false)
	return nil
}

// Set stores a copy of a result in cache
func (rc *ResultCache) Set(key string, result *models.PredictionResult) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.maxSize > 0 && rc.cache.ItemCount() >= rc.maxSize {
		// Remove expired items first
		rc.cache.DeleteExpired()
		if rc.cache.ItemCount() >= rc.maxSize {
			return
		}
	}

	rc.cache.Set(key, result.Clone(), rc.ttl)
}

// Clear flushes the entire cache
func (rc *ResultCache) Clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.cache.Flush()
	rc.hitCount = 0
	rc.missCount = 0
}

// Stats returns cache statistics
func (rc *ResultCache) Stats() (hits, misses uint64, ratio float64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.stats()
}

func (rc *ResultCache) stats() (hits, misses uint64, ratio float64) {
	hits = rc.hitCount
	misses = rc.missCount
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of items in cache
func (rc *ResultCache) ItemCount() int {
	return rc.cache.ItemCount()
}

// updateMetrics updates Prometheus metrics
func (rc *ResultCache) updateMetrics(hit bool) {
	_, _, ratio := rc.stats()
	metrics.RecordCacheLookup(hit)
	metrics.UpdateCacheStats(ratio, rc.cache.ItemCount())
}
