// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ListWarmer refreshes cached TMDB list pages. *candidates.Builder satisfies it.
type ListWarmer interface {
	Warm(ctx context.Context) (int, error)
}

// WarmServiceConfig controls the warming schedule.
type WarmServiceConfig struct {
	// Interval between refreshes. Keep it below the list cache TTL so the
	// pages never expire between runs.
	Interval time.Duration

	// Timeout bounds a single refresh. Default: 30s
	Timeout time.Duration

	// WarmOnStartup refreshes once before the first tick.
	WarmOnStartup bool
}

// WarmService keeps the popular and top rated list pages hot so recommendation
// requests rarely wait on TMDB for them. Refresh failures are logged and
// retried on the next tick; they never crash the service.
type WarmService struct {
	warmer ListWarmer
	config WarmServiceConfig
	logger zerolog.Logger
	name   string
}

// NewWarmService creates a cache warming service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewWarmService(warmer ListWarmer, cfg WarmServiceConfig, logger zerolog.Logger) *WarmService {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &WarmService{
		warmer: warmer,
		config: cfg,
		logger: logger.With().Str("service", "list-warmer").Logger(),
		name:   "list-warmer",
	}
}

// Serve implements suture.Service.
func (s *WarmService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("warm_on_startup", s.config.WarmOnStartup).
		Dur("interval", s.config.Interval).
		Msg("List cache warmer starting")

	if s.config.WarmOnStartup {
		s.warm(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("List cache warmer shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

func (s *WarmService) warm(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	pages, err := s.warmer.Warm(warmCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Msg("List cache warm failed")
		return
	}
	s.logger.Debug().
		Int("pages", pages).
		Dur("duration", time.Since(start)).
		Msg("List cache warmed")
}

// String implements fmt.Stringer.
func (s *WarmService) String() string {
	return s.name
}
