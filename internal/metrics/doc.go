// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry with promauto at package
initialization and exposed by the API router at /metrics.

# Available Metrics

Recommendation Metrics:
  - recommend_run_duration_seconds: End-to-end engine run time (histogram)
  - recommend_results_returned: Results per run (histogram)
  - recommend_candidates_scored_total: Candidates scored (counter)
  - recommend_candidates_dropped_total: Candidates dropped (counter)
    Labels: reason (failed, cancelled)
  - recommend_feature_fallbacks_total: Degraded feature extractions (counter)
    Labels: reason (lookup_error, lookup_empty, no_lookup)

Candidate Pool Metrics:
  - candidate_pool_size: Candidates per request (histogram)
  - list_cache_hits_total, list_cache_misses_total: List page cache (counters)

TMDB Metrics:
  - tmdb_requests_total: Requests per attempt (counter)
    Labels: endpoint, status
  - tmdb_request_duration_seconds: Attempt latency (histogram)
    Labels: endpoint
  - tmdb_retries_total: Retries (counter)
    Labels: endpoint

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests by result (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

API Metrics:
  - api_requests_total: Requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, "/api/v1/recommendations", "200", time.Since(start))

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
