// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. Only environment variables listed in
the mapping table are read; everything else in the process environment is
ignored.

# Configuration File

The file is located via CONFIG_PATH or, failing that, the first existing
entry of DefaultConfigPaths:

	tmdb:
	  read_token: "eyJhbGciOi..."
	  max_retries: 2
	  requests_per_second: 40
	recommend:
	  batch_size: 20
	  max_candidates: 200
	  list_cache_ttl: 10m
	  warm_interval: 5m
	server:
	  port: 3001

# Environment Variables

TMDB:
  - TMDB_READ_TOKEN: Bearer token for the v3 API (required)
  - TMDB_BASE_URL: API origin (default: https://api.themoviedb.org)
  - TMDB_TIMEOUT: Per-attempt HTTP timeout (default: 10s)
  - TMDB_MAX_RETRIES: Retries for 429, 5xx and transport errors (default: 2)
  - TMDB_RETRY_BASE_DELAY / TMDB_RETRY_MAX_DELAY: Backoff bounds (default: 500ms / 3s)
  - TMDB_REQUESTS_PER_SECOND / TMDB_BURST: Client-side rate limit (default: 40 / 20)
  - TMDB_BREAKER_*: Circuit breaker tuning

Recommendation engine:
  - RECOMMEND_BATCH_SIZE: Candidates scored concurrently per batch (default: 20)
  - RECOMMEND_DEFAULT_MIN_SCORE: Minimum score when the request omits one (default: 0.1)
  - RECOMMEND_DEFAULT_LIMIT / RECOMMEND_MAX_LIMIT: Result count bounds (default: 20 / 50)
  - RECOMMEND_MAX_CANDIDATES: Candidate pool cap (default: 200)
  - RECOMMEND_SIMILAR_SEEDS: Selected movies used for similar lookups (default: 3)
  - RECOMMEND_REQUEST_TIMEOUT: Per-request deadline, below HTTP_TIMEOUT (default: 25s)
  - RECOMMEND_LIST_CACHE_TTL: TMDB list page cache lifetime (default: 10m)
  - RECOMMEND_WARM_INTERVAL: List cache warming period, 0 disables (default: 5m)

HTTP server:
  - HTTP_HOST, HTTP_PORT: Bind address (default: 0.0.0.0:3001)
  - HTTP_TIMEOUT, HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Thread Safety

Config is immutable after Load and safe for concurrent reads.
*/
package config
