// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"

	"github.com/tomtom215/reelmatch/internal/models"
)

// ProfileID is the identifier reserved for a synthesized user profile.
const ProfileID = -1

// ProfileTitle is the title given to a synthesized user profile.
const ProfileTitle = "User Profile"

// ErrNoSelectedFeatures is returned when a profile is requested from an empty
// set of selected movie features.
var ErrNoSelectedFeatures = errors.New("no selected movie features to build a profile from")

// DetailLookup fetches the enriched detail record for a movie.
// Implementations must be safe for concurrent use.
type DetailLookup interface {
	MovieDetails(ctx context.Context, id int) (*models.MovieDetails, error)
}

// MovieFeatures is the derived representation of a movie used for scoring.
// It is computed per request and never cached.
type MovieFeatures struct {
	// ID is the TMDB movie id, or ProfileID for a synthesized profile.
	ID    int    `json:"id"`
	Title string `json:"title"`

	// Genres holds TMDB genre codes with set semantics.
	Genres []int `json:"genres"`

	// GenreNames holds display names when the detail lookup succeeded.
	GenreNames []string `json:"genre_names"`

	// Rating is the TMDB vote average in [0, 10].
	Rating float64 `json:"rating"`

	// Year is the release year, 2000 when unknown.
	Year int `json:"year"`

	Popularity float64 `json:"popularity"`

	// Runtime is in minutes, 120 when unknown.
	Runtime int `json:"runtime"`

	// Director and Cast names are lowercased. Cast holds at most 10 names.
	Director []string `json:"director"`
	Cast     []string `json:"cast"`

	// Keywords are lowercased tokens in first-seen order. Duplicates are kept.
	Keywords []string `json:"keywords"`

	// Language is the ISO 639-1 original language, "en" when unknown.
	Language string `json:"language"`

	FeatureVector []float64 `json:"feature_vector"`
}

// Weights are the caller-supplied feature importances, each in [0, 100].
// They do not need to sum to anything; scoring normalizes by their total.
type Weights struct {
	Genre          int `json:"genre" validate:"min=0,max=100"`
	Rating         int `json:"rating" validate:"min=0,max=100"`
	Director       int `json:"director" validate:"min=0,max=100"`
	Cast           int `json:"cast" validate:"min=0,max=100"`
	Cinematography int `json:"cinematography" validate:"min=0,max=100"`
	Keywords       int `json:"keywords" validate:"min=0,max=100"`
	Year           int `json:"year" validate:"min=0,max=100"`
}

// Total returns the sum of all weights.
func (w Weights) Total() int {
	return w.Genre + w.Rating + w.Director + w.Cast + w.Cinematography + w.Keywords + w.Year
}

// ToMap returns the weights as a string-keyed map.
func (w Weights) ToMap() map[string]int {
	return map[string]int{
		"genre":          w.Genre,
		"rating":         w.Rating,
		"director":       w.Director,
		"cast":           w.Cast,
		"cinematography": w.Cinematography,
		"keywords":       w.Keywords,
		"year":           w.Year,
	}
}

// Request describes a single recommendation run.
type Request struct {
	// SelectedMovies are the movies the user liked. At least one is required
	// for a non-empty result.
	SelectedMovies []models.Movie

	Weights Weights

	// ExcludeIDs are removed from the candidate pool before scoring.
	ExcludeIDs []int

	// Limit caps the number of results. Zero or negative returns none.
	Limit int

	// MinScore drops results scoring below it. Nil selects the configured
	// default; an explicit zero keeps every scored candidate.
	MinScore *float64
}

// Result is a scored candidate with the reasons that drove its score.
type Result struct {
	Movie   models.Movie `json:"movie"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}
