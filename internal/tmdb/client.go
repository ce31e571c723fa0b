// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

// maxErrorBodySize limits how much of an error response body is kept.
const maxErrorBodySize = 64 * 1024

const userAgent = "Reelmatch/1.0"

// Endpoint labels used for metrics and logs.
const (
	EndpointMovieDetails = "movie_details"
	EndpointPopular      = "popular"
	EndpointTopRated     = "top_rated"
	EndpointSimilar      = "similar"
	EndpointDiscover     = "discover"
)

// ErrNotFound is matched by a StatusError carrying HTTP 404.
var ErrNotFound = errors.New("tmdb: resource not found")

// StatusError is returned when TMDB answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s: HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match 404 replies.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Retryable reports whether the status is worth another attempt (429 or 5xx).
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Client is a TMDB v3 API client.
//
// Requests carry the read access token as a bearer token. Replies with 429 or
// 5xx and transport failures are retried up to MaxRetries times with an
// exponential delay of min(RetryBaseDelay*2^attempt, RetryMaxDelay). Other
// 4xx replies are returned immediately. All waits honour context cancellation.
type Client struct {
	baseURL        string
	token          string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	retryMaxDelay  time.Duration
	logger         zerolog.Logger
}

// NewClient creates a TMDB client from configuration.
func NewClient(cfg *config.TMDBConfig) *Client {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		token:          cfg.ReadToken,
		client:         &http.Client{Timeout: cfg.Timeout},
		limiter:        limiter,
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		retryMaxDelay:  cfg.RetryMaxDelay,
		logger:         logging.WithComponent("tmdb"),
	}
}

// MovieDetails fetches a movie with its credits appended.
func (c *Client) MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits")

	var details models.MovieDetails
	if err := c.get(ctx, EndpointMovieDetails, fmt.Sprintf("/3/movie/%d", id), query, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// Popular fetches one page of popular movies.
func (c *Client) Popular(ctx context.Context, page int) (*models.MovieList, error) {
	return c.list(ctx, EndpointPopular, "/3/movie/popular", pageQuery(page))
}

// TopRated fetches one page of top rated movies.
func (c *Client) TopRated(ctx context.Context, page int) (*models.MovieList, error) {
	return c.list(ctx, EndpointTopRated, "/3/movie/top_rated", pageQuery(page))
}

// Similar fetches one page of movies TMDB considers similar to id.
func (c *Client) Similar(ctx context.Context, id, page int) (*models.MovieList, error) {
	return c.list(ctx, EndpointSimilar, fmt.Sprintf("/3/movie/%d/similar", id), pageQuery(page))
}

// Discover fetches one page of the discover endpoint.
func (c *Client) Discover(ctx context.Context, params DiscoverParams) (*models.MovieList, error) {
	return c.list(ctx, EndpointDiscover, "/3/discover/movie", params.Values())
}

func (c *Client) list(ctx context.Context, endpoint, path string, query url.Values) (*models.MovieList, error) {
	var list models.MovieList
	if err := c.get(ctx, endpoint, path, query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return query
}

// get performs a GET with retries and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt - 1)
			metrics.TMDBRetries.WithLabelValues(endpoint).Inc()
			c.logger.Debug().
				Err(lastErr).
				Str("endpoint", endpoint).
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("Retrying TMDB request")

			// Use cancellable wait instead of time.Sleep
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retry, err := c.do(ctx, endpoint, reqURL, out)
		if err == nil {
			return nil
		}
		if !retry || ctx.Err() != nil {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("tmdb %s: giving up after %d retries: %w", endpoint, c.maxRetries, lastErr)
}

// do performs a single attempt and reports whether a failure may be retried.
func (c *Client) do(ctx context.Context, endpoint, reqURL string, out interface{}) (bool, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return false, fmt.Errorf("tmdb %s: rate limiter: %w", endpoint, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return false, fmt.Errorf("tmdb %s: create request failed: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordTMDBRequest(endpoint, 0, time.Since(start))
		return true, fmt.Errorf("tmdb %s: request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()
	metrics.RecordTMDBRequest(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
		return statusErr.Retryable(), statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("tmdb %s: failed to decode response: %w", endpoint, err)
	}
	return false, nil
}

// backoff returns the delay before retry number n (zero based).
func (c *Client) backoff(n int) time.Duration {
	delay := c.retryBaseDelay
	for i := 0; i < n && delay < c.retryMaxDelay; i++ {
		delay *= 2
	}
	if delay > c.retryMaxDelay {
		delay = c.retryMaxDelay
	}
	return delay
}

// readBodyForError reads up to maxErrorBodySize bytes of an error body.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
