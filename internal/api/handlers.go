// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/candidates"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// PoolBuilder assembles the candidate pool for a request.
// *candidates.Builder satisfies it.
type PoolBuilder interface {
	Build(ctx context.Context, req candidates.Request) ([]models.Movie, error)
}

// Recommender ranks a candidate pool. *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request, candidates []models.Movie) []recommend.Result
}

// CacheStatsReporter exposes list cache statistics. *candidates.Builder
// satisfies it.
type CacheStatsReporter interface {
	CacheStats() cache.Stats
}

// ReadinessChecker reports whether an upstream dependency accepts traffic.
// *tmdb.CircuitBreakerClient satisfies it.
type ReadinessChecker interface {
	Ready() bool
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and request helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_recommend.go: recommendation endpoints
type Handler struct {
	recommender Recommender
	pool        PoolBuilder
	upstream    ReadinessChecker
	config      config.RecommendConfig
	startTime   time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - recommender: scores candidate pools (the recommendation engine)
//   - pool: builds candidate pools from TMDB lists
//   - upstream: readiness of the TMDB client, consulted by /health/ready
//   - cfg: request defaults (limit, max limit, request timeout)
//
// Example:
//
//	handler := api.NewHandler(engine, builder, tmdbClient, cfg.Recommend)
//	router := api.NewRouter(handler, chiMiddleware)
//	http.ListenAndServe(":3001", router.Setup())
//
//nolint:gocritic // config copied so later changes to cfg do not leak in
func NewHandler(recommender Recommender, pool PoolBuilder, upstream ReadinessChecker, cfg config.RecommendConfig) *Handler {
	return &Handler{
		recommender: recommender,
		pool:        pool,
		upstream:    upstream,
		config:      cfg,
		startTime:   time.Now(),
	}
}
