// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP instrumentation middleware.

PrometheusMetrics records request count, latency and in-flight requests for
every API call:

  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

The endpoint label is the chi route pattern (for example
"/api/v1/recommendations"), never the raw path. Requests that match no route
share the "unmatched" label.

Requests slower than SlowRequestThreshold are logged at warn level with the
request's logging context.

Usage with chi:

	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Post("/recommendations", handler.Recommend)
	})
*/
package middleware
