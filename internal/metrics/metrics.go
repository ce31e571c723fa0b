// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Engine Metrics
	RecommendRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_run_duration_seconds",
			Help:    "Duration of a recommendation run in seconds, including feature extraction",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	RecommendResultsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_results_returned",
			Help:    "Number of recommendations returned per run",
			Buckets: []float64{0, 1, 5, 10, 20, 30, 50},
		},
	)

	RecommendCandidatesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_candidates_scored_total",
			Help: "Total number of candidate movies scored",
		},
	)

	RecommendCandidatesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_candidates_dropped_total",
			Help: "Total number of candidates dropped before scoring completed",
		},
		[]string{"reason"}, // "failed", "cancelled"
	)

	RecommendFeatureFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_feature_fallbacks_total",
			Help: "Total number of feature extractions that fell back to list data",
		},
		[]string{"reason"}, // "lookup_error", "lookup_empty", "no_lookup"
	)

	// Candidate Pool Metrics
	CandidatePoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "candidate_pool_size",
			Help:    "Number of candidate movies assembled per request",
			Buckets: []float64{0, 10, 25, 50, 100, 150, 200},
		},
	)

	ListCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "list_cache_hits_total",
			Help: "Total number of candidate list page cache hits",
		},
	)

	ListCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "list_cache_misses_total",
			Help: "Total number of candidate list page cache misses",
		},
	)

	// TMDB Client Metrics
	TMDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of TMDB API requests by endpoint and status",
		},
		[]string{"endpoint", "status"}, // status: HTTP code, or "error" for transport failures
	)

	TMDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "TMDB API request duration in seconds, per attempt",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	TMDBRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_retries_total",
			Help: "Total number of TMDB request retries",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordTMDBRequest records one TMDB request attempt. A zero status means the
// request failed before a response was received.
func RecordTMDBRequest(endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	TMDBRequestsTotal.WithLabelValues(endpoint, label).Inc()
	TMDBRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordListCache records a candidate list cache lookup.
func RecordListCache(hit bool) {
	if hit {
		ListCacheHits.Inc()
	} else {
		ListCacheMisses.Inc()
	}
}
