// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"github.com/tomtom215/reelmatch/internal/candidates"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// RecommendationRequest is the body of POST /api/v1/recommendations.
type RecommendationRequest struct {
	SelectedMovies  []models.Movie     `json:"selectedMovies" validate:"required,min=1"`
	Weights         *recommend.Weights `json:"weights" validate:"required"`
	Limit           int                `json:"limit,omitempty" validate:"gte=0,lte=1000"`
	MinScore        *float64           `json:"minScore,omitempty" validate:"omitempty,gte=0,lte=1"`
	CandidateSource string             `json:"candidateSource,omitempty" validate:"omitempty,oneof=popular top_rated discover mixed"`
	GenreFilter     []int              `json:"genreFilter,omitempty" validate:"omitempty,dive,gt=0"`
	YearFilter      int                `json:"yearFilter,omitempty" validate:"release_year"`
	RatingFilter    float64            `json:"ratingFilter,omitempty" validate:"gte=0,lte=10"`
}

// RecommendationItem is one ranked movie in a response.
type RecommendationItem struct {
	Movie        models.Movie `json:"movie"`
	Score        float64      `json:"score"`
	Reasons      []string     `json:"reasons"`
	TMDBImageURL *string      `json:"tmdbImageUrl"`
}

// RecommendationMetadata describes how a response was produced.
type RecommendationMetadata struct {
	TotalCandidates     int                 `json:"totalCandidates"`
	SelectedMoviesCount int                 `json:"selectedMoviesCount"`
	Weights             recommend.Weights   `json:"weights"`
	ProcessingTimeMS    int64               `json:"processingTimeMs"`
	CandidateSource     candidates.Kind     `json:"candidateSource,omitempty"`
	Filters             *candidates.Filters `json:"filters,omitempty"`
	Message             string              `json:"message,omitempty"`
}

// RecommendationResponse is the data payload of a recommendation reply.
type RecommendationResponse struct {
	Recommendations []RecommendationItem   `json:"recommendations"`
	Metadata        RecommendationMetadata `json:"metadata"`
}

// RecommendationDocs is served by GET /api/v1/recommendations.
type RecommendationDocs struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Method      string                 `json:"method"`
	Endpoint    string                 `json:"endpoint"`
	Parameters  map[string]interface{} `json:"parameters"`
	Example     RecommendationRequest  `json:"example"`
}
