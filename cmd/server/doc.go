// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch recommends movies from The Movie Database (TMDB) that resemble a
set of movies the caller picked, weighting genre, rating, director, cast,
visual style, keywords and release year as the caller asks.

# Architecture

	reelmatch (suture root)
	├── background-layer
	│   └── list-warmer: refreshes popular and top rated pages
	└── api-layer
	    └── http-server: chi router

Initialization order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, json or console
 3. TMDB client: retries, token bucket and circuit breaker
 4. Recommendation engine and candidate pool builder
 5. Supervisor tree with the warmer and HTTP server

# Configuration

	TMDB_READ_TOKEN=<token>        # required
	HTTP_PORT=3001
	LOG_LEVEL=info                 # trace, debug, info, warn, error
	LOG_FORMAT=json                # json or console
	RECOMMEND_MAX_CANDIDATES=200
	RECOMMEND_WARM_INTERVAL=5m     # 0 disables warming

# Endpoints

	POST /api/v1/recommendations   rank candidates for selected movies
	GET  /api/v1/recommendations   endpoint documentation
	GET  /api/v1/health/live       liveness
	GET  /api/v1/health/ready      readiness (503 while the TMDB breaker is open)
	GET  /metrics                  Prometheus metrics

# Signals

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
