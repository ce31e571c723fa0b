// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP REST API layer for Reelmatch.

Routes:

	POST /api/v1/recommendations    rank candidates against the liked movies
	GET  /api/v1/recommendations    request documentation and an example body
	GET  /api/v1/health/live        liveness probe
	GET  /api/v1/health/ready       readiness probe (503 while the TMDB breaker is open)
	GET  /metrics                   Prometheus scrape endpoint

Middleware Stack:

Global: request id with logging context, real IP, panic recovery and CORS
(go-chi/cors). Recommendation routes add httprate rate limiting, security
headers, Prometheus instrumentation and gzip. Health routes use a separate,
more permissive rate limit.

Request Body:

	{
	  "selectedMovies": [{"id": 550, "title": "Fight Club", "genre_ids": [18], ...}],
	  "weights": {"genre": 75, "rating": 60, "director": 50, "cast": 65,
	              "cinematography": 40, "keywords": 55, "year": 30},
	  "limit": 10,
	  "minScore": 0.1,
	  "candidateSource": "mixed",
	  "genreFilter": [18],
	  "yearFilter": 1999,
	  "ratingFilter": 7
	}

limit defaults to 20 and is capped at 50. minScore defaults to 0.1 when
omitted; an explicit 0 keeps every scored candidate.

Responses:

Every reply uses the models.APIResponse envelope. Recommendation data is

	{
	  "recommendations": [{"movie": {...}, "score": 0.873, "reasons": [...],
	                       "tmdbImageUrl": "https://image.tmdb.org/t/p/w500/..."}],
	  "metadata": {"totalCandidates": 187, "selectedMoviesCount": 1,
	               "weights": {...}, "processingTimeMs": 412,
	               "candidateSource": "mixed", "filters": {...}}
	}

Error codes:

  - VALIDATION_ERROR, INVALID_REQUEST (400)
  - RATE_LIMIT_EXCEEDED (429)
  - EXTERNAL_SERVICE_FAILED (500): a TMDB list could not be fetched
  - SERVICE_UNAVAILABLE (503): the TMDB circuit breaker is open
  - TIMEOUT (504): the request deadline passed while building the pool
*/
package api
