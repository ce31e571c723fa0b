// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateTMDB(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
}

// validateTMDB validates the TMDB client configuration
func (c *Config) validateTMDB() error {
	if c.TMDB.ReadToken == "" {
		return fmt.Errorf("TMDB_READ_TOKEN is required")
	}
	if containsPlaceholder(c.TMDB.ReadToken) {
		return fmt.Errorf("TMDB_READ_TOKEN contains a placeholder value")
	}
	if err := validateHTTPURL(c.TMDB.BaseURL, "TMDB_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_BASE_URL is invalid: %w", err)
	}
	if c.TMDB.MaxRetries < 0 || c.TMDB.MaxRetries > 10 {
		return fmt.Errorf("TMDB_MAX_RETRIES must be between 0 and 10")
	}
	if c.TMDB.RetryBaseDelay <= 0 || c.TMDB.RetryMaxDelay < c.TMDB.RetryBaseDelay {
		return fmt.Errorf("TMDB_RETRY_BASE_DELAY must be positive and not exceed TMDB_RETRY_MAX_DELAY")
	}
	if c.TMDB.RequestsPerSecond < 0 {
		return fmt.Errorf("TMDB_REQUESTS_PER_SECOND must not be negative")
	}
	if c.TMDB.Breaker.FailureRatio <= 0 || c.TMDB.Breaker.FailureRatio > 1 {
		return fmt.Errorf("TMDB_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

// validateRecommend validates engine and candidate pool settings
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.BatchSize < 1 {
		return fmt.Errorf("RECOMMEND_BATCH_SIZE must be at least 1")
	}
	if r.DefaultMinScore < 0 || r.DefaultMinScore > 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_MIN_SCORE must be between 0 and 1")
	}
	if r.MaxLimit < 1 {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT must be at least 1")
	}
	if r.DefaultLimit < 1 || r.DefaultLimit > r.MaxLimit {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be between 1 and RECOMMEND_MAX_LIMIT (%d)", r.MaxLimit)
	}
	if r.MaxCandidates < 1 {
		return fmt.Errorf("RECOMMEND_MAX_CANDIDATES must be at least 1")
	}
	if r.SimilarSeeds < 0 {
		return fmt.Errorf("RECOMMEND_SIMILAR_SEEDS must not be negative")
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	if r.WarmInterval < 0 {
		return fmt.Errorf("RECOMMEND_WARM_INTERVAL must not be negative")
	}
	// The server write timeout would otherwise cut the response off first
	if c.Server.Timeout > 0 && r.RequestTimeout >= c.Server.Timeout {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT (%s) must be shorter than HTTP_TIMEOUT (%s)", r.RequestTimeout, c.Server.Timeout)
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// IsProduction returns true when running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns are values that indicate a credential was never filled in.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_TOKEN",
	"PLACEHOLDER",
}

// containsPlaceholder checks if a value contains a common placeholder pattern.
func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
