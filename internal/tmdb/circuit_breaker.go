// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package tmdb

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

// BreakerName labels the TMDB circuit breaker in metrics and logs.
const BreakerName = "tmdb-api"

// CircuitBreakerClient wraps Client with the circuit breaker pattern so that a
// failing TMDB does not stall every recommendation request on retries.
//
// Only upstream failures count against the breaker: 404 replies, other
// non-retryable 4xx replies and the caller's own cancellation or deadline
// pass through without tripping it. A TMDB call that times out on its own
// still counts as a failure.
//
// The breaker uses real time (via sony/gobreaker) for its interval and timeout.
type CircuitBreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewCircuitBreakerClient creates a TMDB client guarded by a circuit breaker.
//
// With default settings the breaker:
//   - allows 3 requests in half-open state
//   - resets counts every minute while closed
//   - waits 2 minutes before attempting recovery
//   - opens after a 60% failure rate with at least 10 requests
func NewCircuitBreakerClient(cfg *config.TMDBConfig) *CircuitBreakerClient {
	return newCircuitBreakerClient(NewClient(cfg), cfg.Breaker)
}

func newCircuitBreakerClient(client *Client, bc config.BreakerConfig) *CircuitBreakerClient {
	cbName := BreakerName

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < bc.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= bc.FailureRatio

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: isBreakerSuccess,
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// callerAbortError marks a failure caused by the caller's own context ending.
// An http.Client timeout also matches context.DeadlineExceeded, so the
// breaker cannot tell the two apart from the error alone.
type callerAbortError struct {
	err error
}

func (e *callerAbortError) Error() string { return e.err.Error() }
func (e *callerAbortError) Unwrap() error { return e.err }

// isBreakerSuccess reports whether err should not count as an upstream failure.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var abort *callerAbortError
	if errors.As(err, &abort) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return !statusErr.Retryable()
	}
	return false
}

// execute wraps a TMDB call with circuit breaker protection. Errors returned
// after ctx ended are the caller's and do not count against TMDB.
func (cbc *CircuitBreakerClient) execute(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(func() (interface{}, error) {
		res, err := fn()
		if err != nil && ctx.Err() != nil {
			return res, &callerAbortError{err: err}
		}
		return res, err
	})

	if err != nil {
		var abort *callerAbortError
		if errors.As(err, &abort) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
			return nil, abort.err
		}

		switch {
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		case isBreakerSuccess(err):
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// castResult safely type-casts the circuit breaker result.
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to a metric label
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// Ready reports whether the breaker currently admits requests.
func (cbc *CircuitBreakerClient) Ready() bool {
	return cbc.cb.State() != gobreaker.StateOpen
}

// MovieDetails fetches a movie with credits through the breaker.
func (cbc *CircuitBreakerClient) MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error) {
	return castResult[models.MovieDetails](cbc.execute(ctx, func() (interface{}, error) {
		return cbc.client.MovieDetails(ctx, id)
	}))
}

// Popular fetches a popular movies page through the breaker.
func (cbc *CircuitBreakerClient) Popular(ctx context.Context, page int) (*models.MovieList, error) {
	return castResult[models.MovieList](cbc.execute(ctx, func() (interface{}, error) {
		return cbc.client.Popular(ctx, page)
	}))
}

// TopRated fetches a top rated movies page through the breaker.
func (cbc *CircuitBreakerClient) TopRated(ctx context.Context, page int) (*models.MovieList, error) {
	return castResult[models.MovieList](cbc.execute(ctx, func() (interface{}, error) {
		return cbc.client.TopRated(ctx, page)
	}))
}

// Similar fetches a similar movies page through the breaker.
func (cbc *CircuitBreakerClient) Similar(ctx context.Context, id, page int) (*models.MovieList, error) {
	return castResult[models.MovieList](cbc.execute(ctx, func() (interface{}, error) {
		return cbc.client.Similar(ctx, id, page)
	}))
}

// Discover fetches a discover page through the breaker.
func (cbc *CircuitBreakerClient) Discover(ctx context.Context, params DiscoverParams) (*models.MovieList, error) {
	return castResult[models.MovieList](cbc.execute(ctx, func() (interface{}, error) {
		return cbc.client.Discover(ctx, params)
	}))
}
