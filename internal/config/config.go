// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Upstream:
//     - TMDB: Movie metadata API (token, retries, rate limit, circuit breaker)
//
//  2. Engine:
//     - Recommend: Scoring batch size, limits, candidate pool and list caching
//
//  3. Serving:
//     - Server: HTTP server configuration (port, host, timeouts)
//     - Security: CORS and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	client := tmdb.NewCircuitBreakerClient(&cfg.TMDB)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // Read and write timeout
	IdleTimeout     time.Duration `koanf:"idle_timeout"`     // Keep-alive idle timeout
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Graceful shutdown window
	Environment     string        `koanf:"environment"`      // "development", "staging", "production"
}

// TMDBConfig holds settings for The Movie Database v3 API client.
type TMDBConfig struct {
	// BaseURL is the API origin without the version path.
	// Default: https://api.themoviedb.org
	BaseURL string `koanf:"base_url"`

	// ReadToken is the v4 read access token sent as a bearer token. Required.
	ReadToken string `koanf:"read_token"`

	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration `koanf:"timeout"`

	// MaxRetries is the number of retries after the first attempt for 429,
	// 5xx and transport errors. Default: 2
	MaxRetries int `koanf:"max_retries"`

	// RetryBaseDelay doubles on every retry up to RetryMaxDelay.
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`
	RetryMaxDelay  time.Duration `koanf:"retry_max_delay"`

	// RequestsPerSecond is the client-side rate limit. 0 disables limiting.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for the TMDB client.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`  // Requests allowed while half-open
	Interval     time.Duration `koanf:"interval"`      // Count reset period while closed
	Timeout      time.Duration `koanf:"timeout"`       // Open period before half-open
	MinRequests  uint32        `koanf:"min_requests"`  // Requests needed before tripping
	FailureRatio float64       `koanf:"failure_ratio"` // Failure ratio that opens the circuit
}

// RecommendConfig holds recommendation engine and candidate pool settings.
type RecommendConfig struct {
	BatchSize       int           `koanf:"batch_size"`        // Candidates scored concurrently per batch
	DefaultMinScore float64       `koanf:"default_min_score"` // Used when a request omits minScore
	DefaultLimit    int           `koanf:"default_limit"`     // Used when a request omits limit
	MaxLimit        int           `koanf:"max_limit"`         // Upper bound on returned results
	MaxCandidates   int           `koanf:"max_candidates"`    // Candidate pool cap
	SimilarSeeds    int           `koanf:"similar_seeds"`     // Selected movies used for similar lookups
	RequestTimeout  time.Duration `koanf:"request_timeout"`   // Deadline for one recommendation request
	ListCacheTTL    time.Duration `koanf:"list_cache_ttl"`    // Lifetime of cached TMDB list pages
	WarmInterval    time.Duration `koanf:"warm_interval"`     // Period of list cache warming, 0 disables
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load reads configuration from:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
