// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

// Engine scores candidate movies against a profile synthesized from the
// movies a user liked. It holds no per-request state and is safe for
// concurrent use.
type Engine struct {
	config     *Config
	logger     zerolog.Logger
	vectorizer *Vectorizer
	extractor  *FeatureExtractor
}

// NewEngine creates a new recommendation engine backed by the given detail
// lookup. A nil cfg selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, lookup DetailLookup, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger = logger.With().Str("component", "recommend").Logger()
	vectorizer := NewVectorizer(cfg.GenreCodes, cfg.Languages)

	return &Engine{
		config:     cfg,
		logger:     logger,
		vectorizer: vectorizer,
		extractor:  NewFeatureExtractor(lookup, NewKeywordExtractor(cfg.StopWords), vectorizer, logger),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Dimensions returns the feature vector length used by this engine.
func (e *Engine) Dimensions() int {
	return e.vectorizer.Dimensions()
}

// Recommend ranks candidates by similarity to the profile of the selected
// movies. It never returns an error: unusable input yields an empty slice and
// individual failures drop only the affected movie.
//
// Cancelling ctx stops new scoring batches from starting; results gathered
// up to that point are still filtered, ranked and returned.
//
//nolint:gocritic // Request passed by value, callers build it inline
func (e *Engine) Recommend(ctx context.Context, req Request, candidates []models.Movie) []Result {
	start := time.Now()
	log := e.requestLogger(ctx)

	log.Info().
		Int("selected", len(req.SelectedMovies)).
		Int("candidates", len(candidates)).
		Interface("weights", req.Weights.ToMap()).
		Msg("Starting recommendation run")

	selected := e.extractSelected(ctx, req.SelectedMovies, log)
	if len(selected) == 0 {
		log.Error().
			Int("selected", len(req.SelectedMovies)).
			Msg("No features could be extracted from the selected movies")
		return []Result{}
	}
	log.Debug().
		Int("extracted", len(selected)).
		Int("selected", len(req.SelectedMovies)).
		Msg("Extracted selected movie features")

	profile, err := SynthesizeProfile(selected, e.vectorizer)
	if err != nil {
		log.Error().Err(err).Msg("Failed to synthesize profile")
		return []Result{}
	}
	log.Debug().
		Ints("genres", profile.Genres).
		Strs("directors", profile.Director).
		Str("language", profile.Language).
		Msg("Synthesized user profile")

	pool := excludeCandidates(candidates, req.ExcludeIDs)
	log.Debug().
		Int("before", len(candidates)).
		Int("after", len(pool)).
		Msg("Applied candidate exclusions")

	scored := e.scoreCandidates(ctx, profile, pool, req.Weights, log)
	metrics.RecommendCandidatesScored.Add(float64(len(scored)))

	minScore := e.config.DefaultMinScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}
	results := make([]Result, 0, len(scored))
	for i := range scored {
		if scored[i].Score >= minScore {
			results = append(results, scored[i])
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit := max(req.Limit, 0); len(results) > limit {
		results = results[:limit]
	}

	metrics.RecommendResultsReturned.Observe(float64(len(results)))
	metrics.RecommendRunDuration.Observe(time.Since(start).Seconds())

	log.Info().
		Int("scored", len(scored)).
		Int("above_min_score", len(results)).
		Float64("min_score", minScore).
		Int("returned", len(results)).
		Dur("duration", time.Since(start)).
		Msg("Recommendation run complete")

	return results
}

// extractSelected extracts features for every selected movie concurrently.
// Movies whose extraction fails are skipped; survivors keep input order.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) extractSelected(ctx context.Context, movies []models.Movie, log zerolog.Logger) []MovieFeatures {
	slots := make([]MovieFeatures, len(movies))
	ok := make([]bool, len(movies))

	var g errgroup.Group
	for i := range movies {
		g.Go(func() error {
			features, err := e.safeExtract(ctx, movies[i])
			if err != nil {
				log.Warn().
					Err(err).
					Int("movie_id", movies[i].ID).
					Msg("Skipping selected movie, feature extraction failed")
				return err
			}
			slots[i] = features
			ok[i] = true
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // failures are logged per movie and skipped

	extracted := make([]MovieFeatures, 0, len(movies))
	for i := range slots {
		if ok[i] {
			extracted = append(extracted, slots[i])
		}
	}
	return extracted
}

// scoreCandidates extracts and scores candidates in sequential batches of
// BatchSize, running each batch concurrently. Results keep input order.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) scoreCandidates(ctx context.Context, profile MovieFeatures, pool []models.Movie, weights Weights, log zerolog.Logger) []Result {
	results := make([]Result, 0, len(pool))
	batchSize := e.config.BatchSize

	for start := 0; start < len(pool); start += batchSize {
		if err := ctx.Err(); err != nil {
			log.Warn().
				Err(err).
				Int("scored", len(results)).
				Int("remaining", len(pool)-start).
				Msg("Context done, ranking partial results")
			metrics.RecommendCandidatesDropped.WithLabelValues("cancelled").Add(float64(len(pool) - start))
			break
		}

		end := min(start+batchSize, len(pool))
		batch := pool[start:end]
		slots := make([]Result, len(batch))
		ok := make([]bool, len(batch))

		var g errgroup.Group
		for i := range batch {
			g.Go(func() error {
				result, err := e.scoreOne(ctx, profile, batch[i], weights)
				if err != nil {
					metrics.RecommendCandidatesDropped.WithLabelValues("failed").Inc()
					log.Warn().
						Err(err).
						Int("movie_id", batch[i].ID).
						Msg("Dropping candidate, scoring failed")
					return err
				}
				slots[i] = result
				ok[i] = true
				return nil
			})
		}
		_ = g.Wait() //nolint:errcheck // failures are logged per candidate and dropped

		for i := range slots {
			if ok[i] {
				results = append(results, slots[i])
			}
		}
	}

	return results
}

// scoreOne extracts a candidate's features and scores them against profile.
//
//nolint:gocritic // features passed by value for immutable semantics
func (e *Engine) scoreOne(ctx context.Context, profile MovieFeatures, movie models.Movie, weights Weights) (result Result, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, fmt.Errorf("not started: %w", ctxErr)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while scoring movie %d: %v", movie.ID, r)
		}
	}()

	features := e.extractor.Extract(ctx, movie)
	score, reasons := Score(profile, features, weights)
	return Result{Movie: movie, Score: score, Reasons: reasons}, nil
}

// safeExtract runs feature extraction, converting a panic into an error.
//
//nolint:gocritic // models.Movie passed by value to keep callers simple
func (e *Engine) safeExtract(ctx context.Context, movie models.Movie) (features MovieFeatures, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while extracting movie %d: %v", movie.ID, r)
		}
	}()
	return e.extractor.Extract(ctx, movie), nil
}

// requestLogger returns the engine logger enriched with the request id
// carried by ctx, if any.
func (e *Engine) requestLogger(ctx context.Context) zerolog.Logger {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return e.logger.With().Str("request_id", id).Logger()
	}
	return e.logger
}

// excludeCandidates returns the candidates whose id is not in ids, in order.
func excludeCandidates(candidates []models.Movie, ids []int) []models.Movie {
	if len(ids) == 0 {
		return candidates
	}
	excluded := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		excluded[id] = struct{}{}
	}
	pool := make([]models.Movie, 0, len(candidates))
	for i := range candidates {
		if _, skip := excluded[candidates[i].ID]; !skip {
			pool = append(pool, candidates[i])
		}
	}
	return pool
}
