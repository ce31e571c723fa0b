// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package tmdb is a client for The Movie Database (TMDB) v3 REST API.

It covers the endpoints the recommendation service needs: movie details with
credits, popular, top rated, similar and discover lists.

Resilience Mechanisms:
  - Retries: 429, 5xx and transport failures are retried up to MaxRetries
    times with delay min(base*2^attempt, max) (500ms doubling, capped at 3s)
  - Rate Limiting: client-side token bucket via golang.org/x/time/rate
  - Circuit Breaker: CircuitBreakerClient opens after a configured failure
    ratio so a TMDB outage fails fast instead of stacking retries
  - Context: all methods accept a context and abort waits on cancellation

Errors:
  - *StatusError for non-2xx replies, carrying the status and a bounded body
  - ErrNotFound matches 404 replies via errors.Is

Usage:

	client := tmdb.NewCircuitBreakerClient(&cfg.TMDB)
	details, err := client.MovieDetails(ctx, 27205)
	if errors.Is(err, tmdb.ErrNotFound) {
	    // unknown movie id
	}

	page, err := client.Discover(ctx, tmdb.DiscoverParams{Genres: []int{28}, Year: 2010})

Metrics:
  - tmdb_requests_total{endpoint,status}
  - tmdb_request_duration_seconds{endpoint}
  - tmdb_retries_total{endpoint}
  - circuit_breaker_* labelled name="tmdb-api"
*/
package tmdb
