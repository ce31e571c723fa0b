// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package candidates

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/tmdb"
)

// Source is the list API the pool is assembled from.
// *tmdb.CircuitBreakerClient and *tmdb.Client satisfy it.
type Source interface {
	Popular(ctx context.Context, page int) (*models.MovieList, error)
	TopRated(ctx context.Context, page int) (*models.MovieList, error)
	Similar(ctx context.Context, id, page int) (*models.MovieList, error)
	Discover(ctx context.Context, params tmdb.DiscoverParams) (*models.MovieList, error)
}

// Kind selects which lists make up the base pool.
type Kind string

const (
	KindPopular  Kind = "popular"
	KindTopRated Kind = "top_rated"
	KindDiscover Kind = "discover"
	KindMixed    Kind = "mixed"
)

// Filters narrow the discover lists. Zero values mean no filter.
type Filters struct {
	Genres    []int   `json:"genres,omitempty"`
	Year      int     `json:"year,omitempty"`
	MinRating float64 `json:"rating,omitempty"`
}

// Request describes one pool to build.
type Request struct {
	Kind     Kind
	Filters  Filters
	Selected []models.Movie // the first SimilarSeeds entries seed similar lookups
}

// Config controls pool size and list caching.
type Config struct {
	MaxCandidates int
	SimilarSeeds  int
	CacheTTL      time.Duration // 0 disables list caching
}

// DefaultConfig returns the pool settings used by the HTTP API.
func DefaultConfig() Config {
	return Config{
		MaxCandidates: 200,
		SimilarSeeds:  3,
		CacheTTL:      10 * time.Minute,
	}
}

// Builder assembles deduplicated candidate pools from TMDB lists.
type Builder struct {
	source Source
	pages  *cache.Cache[*models.MovieList]
	cfg    Config
	logger zerolog.Logger
}

// NewBuilder creates a pool builder. Call Close to stop the list cache sweeper.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBuilder(source Source, cfg Config, logger zerolog.Logger) *Builder {
	b := &Builder{
		source: source,
		cfg:    cfg,
		logger: logger.With().Str("component", "candidates").Logger(),
	}
	if cfg.CacheTTL > 0 {
		b.pages = cache.New[*models.MovieList](cfg.CacheTTL)
	}
	return b
}

// Close releases the list cache.
func (b *Builder) Close() {
	if b.pages != nil {
		b.pages.Close()
	}
}

// CacheStats returns list cache statistics. The zero value is returned when
// caching is disabled.
func (b *Builder) CacheStats() cache.Stats {
	if b.pages == nil {
		return cache.Stats{}
	}
	return b.pages.Stats()
}

// Build returns the candidate pool for req.
//
// The base lists are fetched first and deduplicated by id, keeping the first
// occurrence. Similar lists for the seed movies are appended after that, with
// their failures ignored, and the whole pool is deduplicated again and capped
// at MaxCandidates. A failing base list fails the whole build.
//
//nolint:gocritic // Request passed by value, callers build it inline
func (b *Builder) Build(ctx context.Context, req Request) ([]models.Movie, error) {
	log := b.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		log = log.With().Str("request_id", id).Logger()
	}

	kind := req.Kind
	if kind == "" {
		kind = KindMixed
	}

	base, err := b.fetchBase(ctx, kind, req.Filters)
	if err != nil {
		return nil, fmt.Errorf("fetch %s candidates: %w", kind, err)
	}
	pool := dedupe(base)

	pool = append(pool, dedupe(b.fetchSimilar(ctx, log, req.Selected))...)
	pool = dedupe(pool)

	if b.cfg.MaxCandidates > 0 && len(pool) > b.cfg.MaxCandidates {
		pool = pool[:b.cfg.MaxCandidates]
	}

	metrics.CandidatePoolSize.Observe(float64(len(pool)))
	log.Debug().
		Str("source", string(kind)).
		Int("base", len(base)).
		Int("pool", len(pool)).
		Msg("Candidate pool built")

	return pool, nil
}

// Warm refreshes the cached popular and top rated pages used by the
// popular, top_rated and mixed sources. It is a no-op when caching is
// disabled and returns the number of pages stored.
func (b *Builder) Warm(ctx context.Context) (int, error) {
	if b.pages == nil {
		return 0, nil
	}

	type page struct {
		key   string
		fetch func(context.Context) (*models.MovieList, error)
	}
	var pages []page
	for _, n := range []int{1, 2} {
		pages = append(pages,
			page{cache.GenerateKey(tmdb.EndpointPopular, n), func(ctx context.Context) (*models.MovieList, error) {
				return b.source.Popular(ctx, n)
			}},
			page{cache.GenerateKey(tmdb.EndpointTopRated, n), func(ctx context.Context) (*models.MovieList, error) {
				return b.source.TopRated(ctx, n)
			}},
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range pages {
		g.Go(func() error {
			list, err := p.fetch(gctx)
			if err != nil {
				return err
			}
			if list == nil {
				list = &models.MovieList{}
			}
			b.pages.Set(p.key, list)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("warm list cache: %w", err)
	}
	b.logger.Debug().
		Int("pages", len(pages)).
		Int("entries", b.pages.Len()).
		Msg("List cache warmed")
	return len(pages), nil
}

// fetchBase fetches the base lists for kind concurrently and concatenates
// them in a fixed order.
func (b *Builder) fetchBase(ctx context.Context, kind Kind, f Filters) ([]models.Movie, error) {
	var fetches []func(context.Context) (*models.MovieList, error)

	switch kind {
	case KindPopular:
		fetches = append(fetches, b.popular(1), b.popular(2))
	case KindTopRated:
		fetches = append(fetches, b.topRated(1), b.topRated(2))
	case KindDiscover:
		params := tmdb.DiscoverParams{Genres: f.Genres, Year: f.Year, MinRating: f.MinRating}
		page2 := params
		params.Page, page2.Page = 1, 2
		fetches = append(fetches, b.discover(params), b.discover(page2))
	default:
		fetches = append(fetches, b.popular(1), b.topRated(1))
		if len(f.Genres) > 0 {
			fetches = append(fetches, b.discover(tmdb.DiscoverParams{Genres: f.Genres, Page: 1}))
		}
	}

	lists := make([]*models.MovieList, len(fetches))
	g, gctx := errgroup.WithContext(ctx)
	for i, fetch := range fetches {
		g.Go(func() error {
			list, err := fetch(gctx)
			if err != nil {
				return err
			}
			lists[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return flatten(lists), nil
}

// fetchSimilar returns similar movies for the seed selections. Failures are
// logged and skipped.
func (b *Builder) fetchSimilar(ctx context.Context, log zerolog.Logger, selected []models.Movie) []models.Movie {
	seeds := selected
	if len(seeds) > b.cfg.SimilarSeeds {
		seeds = seeds[:b.cfg.SimilarSeeds]
	}
	if len(seeds) == 0 {
		return nil
	}

	lists := make([]*models.MovieList, len(seeds))
	var g errgroup.Group
	for i := range seeds {
		g.Go(func() error {
			list, err := b.cached(ctx, cache.GenerateKey(tmdb.EndpointSimilar, [2]int{seeds[i].ID, 1}), func(ctx context.Context) (*models.MovieList, error) {
				return b.source.Similar(ctx, seeds[i].ID, 1)
			})
			if err != nil {
				log.Warn().Err(err).Int("movie_id", seeds[i].ID).Msg("Similar movies lookup failed")
				return nil
			}
			lists[i] = list
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	return flatten(lists)
}

func (b *Builder) popular(page int) func(context.Context) (*models.MovieList, error) {
	return func(ctx context.Context) (*models.MovieList, error) {
		return b.cached(ctx, cache.GenerateKey(tmdb.EndpointPopular, page), func(ctx context.Context) (*models.MovieList, error) {
			return b.source.Popular(ctx, page)
		})
	}
}

func (b *Builder) topRated(page int) func(context.Context) (*models.MovieList, error) {
	return func(ctx context.Context) (*models.MovieList, error) {
		return b.cached(ctx, cache.GenerateKey(tmdb.EndpointTopRated, page), func(ctx context.Context) (*models.MovieList, error) {
			return b.source.TopRated(ctx, page)
		})
	}
}

//nolint:gocritic // params copied into the closure on purpose
func (b *Builder) discover(params tmdb.DiscoverParams) func(context.Context) (*models.MovieList, error) {
	return func(ctx context.Context) (*models.MovieList, error) {
		return b.cached(ctx, cache.GenerateKey(tmdb.EndpointDiscover, params), func(ctx context.Context) (*models.MovieList, error) {
			return b.source.Discover(ctx, params)
		})
	}
}

// cached returns the list stored under key or fetches and stores it.
// Failed fetches are never cached.
func (b *Builder) cached(ctx context.Context, key string, fetch func(context.Context) (*models.MovieList, error)) (*models.MovieList, error) {
	if b.pages != nil {
		if list, ok := b.pages.Get(key); ok {
			metrics.RecordListCache(true)
			return list, nil
		}
		metrics.RecordListCache(false)
	}

	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = &models.MovieList{}
	}
	if b.pages != nil {
		b.pages.Set(key, list)
	}
	return list, nil
}

// flatten concatenates list results in order. Cached lists are shared, so
// results are copied rather than aliased.
func flatten(lists []*models.MovieList) []models.Movie {
	n := 0
	for _, l := range lists {
		if l != nil {
			n += len(l.Results)
		}
	}
	out := make([]models.Movie, 0, n)
	for _, l := range lists {
		if l != nil {
			out = append(out, l.Results...)
		}
	}
	return out
}

// dedupe removes repeated ids, keeping the first occurrence.
func dedupe(movies []models.Movie) []models.Movie {
	seen := make(map[int]struct{}, len(movies))
	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
