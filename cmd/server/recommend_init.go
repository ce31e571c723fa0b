// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/candidates"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
	"github.com/tomtom215/reelmatch/internal/tmdb"
)

// RecommendComponents holds the recommendation pipeline.
type RecommendComponents struct {
	Engine  *recommend.Engine
	Builder *candidates.Builder
}

// Close releases the candidate list cache.
func (c *RecommendComponents) Close() {
	c.Builder.Close()
}

// initRecommend builds the engine and candidate pool builder on top of the
// TMDB client.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, client *tmdb.CircuitBreakerClient, logger zerolog.Logger) (*RecommendComponents, error) {
	engine, err := recommend.NewEngine(buildEngineConfig(cfg), client, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	builder := candidates.NewBuilder(client, candidates.Config{
		MaxCandidates: cfg.Recommend.MaxCandidates,
		SimilarSeeds:  cfg.Recommend.SimilarSeeds,
		CacheTTL:      cfg.Recommend.ListCacheTTL,
	}, logger)

	logger.Info().
		Int("batch_size", cfg.Recommend.BatchSize).
		Float64("default_min_score", cfg.Recommend.DefaultMinScore).
		Int("max_candidates", cfg.Recommend.MaxCandidates).
		Dur("list_cache_ttl", cfg.Recommend.ListCacheTTL).
		Int("dimensions", engine.Dimensions()).
		Msg("Recommendation engine initialized")

	return &RecommendComponents{Engine: engine, Builder: builder}, nil
}

// buildEngineConfig overlays the server configuration on the engine defaults.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	engineCfg := recommend.DefaultConfig()
	engineCfg.BatchSize = cfg.Recommend.BatchSize
	engineCfg.DefaultMinScore = cfg.Recommend.DefaultMinScore
	return engineCfg
}

// addWarmer schedules list cache warming when both warming and the list cache
// are enabled. It reports whether the service was added.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func addWarmer(cfg *config.Config, builder *candidates.Builder, tree *supervisor.SupervisorTree, logger zerolog.Logger) bool {
	if cfg.Recommend.WarmInterval <= 0 || cfg.Recommend.ListCacheTTL <= 0 {
		logger.Info().Msg("List cache warming disabled")
		return false
	}
	if cfg.Recommend.WarmInterval >= cfg.Recommend.ListCacheTTL {
		logger.Warn().
			Dur("warm_interval", cfg.Recommend.WarmInterval).
			Dur("list_cache_ttl", cfg.Recommend.ListCacheTTL).
			Msg("Warm interval is not shorter than the list cache TTL; pages may expire between runs")
	}

	tree.AddBackgroundService(services.NewWarmService(builder, services.WarmServiceConfig{
		Interval:      cfg.Recommend.WarmInterval,
		WarmOnStartup: true,
	}, logger))
	return true
}
