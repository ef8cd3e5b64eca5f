// Package metrics provides centralized Prometheus metrics registry for the prediction engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finishline"

// Prediction outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeCached  = "cached"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "predictions_total",
		Help:      "Total number of prediction requests by outcome",
	}, []string{"outcome"})
	HorsesScoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "horses_scored_total",
		Help:      "Total number of horses scored",
	})
	DegradedHorsesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "degraded_horses_total",
		Help:      "Total number of horses scored on fallback odds",
	})
	RejectedHorsesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejected_horses_total",
		Help:      "Total number of horses dropped for unusable odds",
	})
	RecommendedBetsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommended_bets_total",
		Help:      "Total number of positive value bets recommended by bet type",
	}, []string{"bet_type"})
	CacheRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of result cache lookups by result",
	}, []string{"result"})
)

// Gauge metrics
var (
	CacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_hit_ratio",
		Help:      "Result cache hit ratio",
	})
	CacheEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_entries",
		Help:      "Number of cached prediction results",
	})
)

// Histogram metrics
var (
	PredictionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prediction_duration_seconds",
		Help:      "Duration of prediction requests in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})
	FieldSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "field_size",
		Help:      "Number of horses per scored race",
		Buckets:   prometheus.LinearBuckets(2, 2, 10),
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(PredictionsTotal)
		registry.MustRegister(HorsesScoredTotal)
		registry.MustRegister(DegradedHorsesTotal)
		registry.MustRegister(RejectedHorsesTotal)
		registry.MustRegister(RecommendedBetsTotal)
		registry.MustRegister(CacheRequestsTotal)

		// Register gauge metrics
		registry.MustRegister(CacheHitRatio)
		registry.MustRegister(CacheEntries)

		// Register histogram metrics
		registry.MustRegister(PredictionDuration)
		registry.MustRegister(FieldSize)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordPrediction records a completed prediction.
func RecordPrediction(outcome string, durationSeconds float64) {
	PredictionsTotal.WithLabelValues(outcome).Inc()
	PredictionDuration.Observe(durationSeconds)
}

// RecordField records the shape of a scored field.
func RecordField(scored, degraded, rejected int) {
	HorsesScoredTotal.Add(float64(scored))
	DegradedHorsesTotal.Add(float64(degraded))
	RejectedHorsesTotal.Add(float64(rejected))
	FieldSize.Observe(float64(scored))
}

// RecordRecommendedBet records a positive value recommendation.
func RecordRecommendedBet(betType string) {
	RecommendedBetsTotal.WithLabelValues(betType).Inc()
}

// RecordCacheLookup records a result cache lookup.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheRequestsTotal.WithLabelValues("hit").Inc()
		return
	}
	CacheRequestsTotal.WithLabelValues("miss").Inc()
}

// UpdateCacheStats updates the result cache gauges.
func UpdateCacheStats(hitRatio float64, entries int) {
	CacheHitRatio.Set(hitRatio)
	CacheEntries.Set(float64(entries))
}
