// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

const (
	// maxCastMembers is the number of billed cast names kept per movie.
	maxCastMembers = 10

	defaultYear     = 2000
	defaultRuntime  = 120
	defaultLanguage = "en"
)

// FeatureExtractor derives MovieFeatures from a list record, enriching it
// with the detail lookup when available. It never fails; enrichment errors
// degrade the result to list-record data.
type FeatureExtractor struct {
	lookup   DetailLookup
	keywords *KeywordExtractor
	vector   *Vectorizer
	logger   zerolog.Logger
}

// NewFeatureExtractor creates a feature extractor. A nil lookup makes every
// extraction use the degraded path.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFeatureExtractor(lookup DetailLookup, keywords *KeywordExtractor, vector *Vectorizer, logger zerolog.Logger) *FeatureExtractor {
	return &FeatureExtractor{
		lookup:   lookup,
		keywords: keywords,
		vector:   vector,
		logger:   logger,
	}
}

// Extract computes the features of a movie.
//
//nolint:gocritic // models.Movie passed by value to keep callers simple
func (f *FeatureExtractor) Extract(ctx context.Context, movie models.Movie) MovieFeatures {
	features := MovieFeatures{
		ID:         movie.ID,
		Title:      movie.Title,
		Genres:     append([]int(nil), movie.GenreIDs...),
		GenreNames: []string{},
		Rating:     movie.VoteAverage,
		Year:       parseReleaseYear(movie.ReleaseDate),
		Popularity: movie.Popularity,
		Runtime:    defaultRuntime,
		Director:   []string{},
		Cast:       []string{},
		Language:   movie.OriginalLanguage,
	}
	if features.Language == "" {
		features.Language = defaultLanguage
	}

	f.enrich(ctx, movie.ID, &features)

	features.Keywords = f.keywords.ExtractKeywords(movie.Title, movie.Overview)
	features.FeatureVector = f.vector.Vector(
		features.Genres,
		features.Rating,
		features.Year,
		features.Popularity,
		features.Runtime,
		features.Language,
	)
	return features
}

// enrich overlays detail data on features. Failures leave features untouched.
func (f *FeatureExtractor) enrich(ctx context.Context, id int, features *MovieFeatures) {
	if f.lookup == nil {
		metrics.RecommendFeatureFallbacks.WithLabelValues("no_lookup").Inc()
		f.logger.Warn().
			Int("movie_id", id).
			Msg("No detail lookup configured, using list data for features")
		return
	}

	details, err := f.lookup.MovieDetails(ctx, id)
	if err != nil {
		metrics.RecommendFeatureFallbacks.WithLabelValues("lookup_error").Inc()
		f.logger.Warn().
			Err(err).
			Int("movie_id", id).
			Msg("Detail lookup failed, using list data for features")
		return
	}
	if details == nil {
		metrics.RecommendFeatureFallbacks.WithLabelValues("lookup_empty").Inc()
		f.logger.Warn().
			Int("movie_id", id).
			Msg("Detail lookup returned no record, using list data for features")
		return
	}

	if len(details.Genres) > 0 {
		features.Genres = make([]int, 0, len(details.Genres))
		features.GenreNames = make([]string, 0, len(details.Genres))
		for _, g := range details.Genres {
			features.Genres = append(features.Genres, g.ID)
			features.GenreNames = append(features.GenreNames, g.Name)
		}
	}

	if details.Runtime > 0 {
		features.Runtime = details.Runtime
	}

	for _, name := range details.Directors() {
		features.Director = append(features.Director, strings.ToLower(name))
	}

	if details.Credits != nil {
		cast := details.Credits.Cast
		if len(cast) > maxCastMembers {
			cast = cast[:maxCastMembers]
		}
		for _, c := range cast {
			features.Cast = append(features.Cast, strings.ToLower(c.Name))
		}
	}
}

// parseReleaseYear returns the year of a YYYY-MM-DD release date, or 2000
// when the date is empty or has no leading four-digit year.
func parseReleaseYear(date string) int {
	if len(date) < 4 {
		return defaultYear
	}
	for i := 0; i < 4; i++ {
		if date[i] < '0' || date[i] > '9' {
			return defaultYear
		}
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year == 0 {
		return defaultYear
	}
	return year
}
