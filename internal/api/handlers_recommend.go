// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/candidates"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/tmdb"
)

// RecommendationsPath is the route of the recommendation endpoints.
const RecommendationsPath = "/api/v1/recommendations"

// Recommend handles POST /api/v1/recommendations.
//
// The candidate pool is built from TMDB lists per candidateSource, the
// selected movies are excluded from it, and the remainder is ranked against
// the profile of the selected movies. An empty pool is not an error: the
// reply carries no recommendations and a message.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := logging.Ctx(r.Context())

	var req RecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be a JSON object", err)
		return
	}

	if len(req.SelectedMovies) == 0 {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "At least one selected movie is required", nil)
		return
	}
	if req.Weights == nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Recommendation weights are required", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	source := candidates.Kind(req.CandidateSource)
	if source == "" {
		source = candidates.KindMixed
	}
	filters := candidates.Filters{
		Genres:    req.GenreFilter,
		Year:      req.YearFilter,
		MinRating: req.RatingFilter,
	}

	pool, err := h.pool.Build(ctx, candidates.Request{
		Kind:     source,
		Filters:  filters,
		Selected: req.SelectedMovies,
	})
	if err != nil {
		status, code, message := poolError(err)
		respondError(w, status, code, message, err)
		return
	}

	meta := RecommendationMetadata{
		TotalCandidates:     len(pool),
		SelectedMoviesCount: len(req.SelectedMovies),
		Weights:             *req.Weights,
	}

	if len(pool) == 0 {
		meta.Message = "No candidate movies found"
		log.Info().Str("source", string(source)).Msg("No candidate movies found")
		respondSuccess(w, &RecommendationResponse{
			Recommendations: []RecommendationItem{},
			Metadata:        meta,
		}, time.Since(start))
		return
	}

	excluded := make([]int, len(req.SelectedMovies))
	for i, m := range req.SelectedMovies {
		excluded[i] = m.ID
	}

	results := h.recommender.Recommend(ctx, recommend.Request{
		SelectedMovies: req.SelectedMovies,
		Weights:        *req.Weights,
		ExcludeIDs:     excluded,
		Limit:          h.effectiveLimit(req.Limit),
		MinScore:       req.MinScore,
	}, pool)

	items := make([]RecommendationItem, len(results))
	for i := range results {
		items[i] = toItem(&results[i])
	}

	elapsed := time.Since(start)
	meta.ProcessingTimeMS = elapsed.Milliseconds()
	meta.CandidateSource = source
	meta.Filters = &filters

	log.Info().
		Str("source", string(source)).
		Int("candidates", len(pool)).
		Int("returned", len(items)).
		Dur("duration", elapsed).
		Msg("Recommendations served")

	respondSuccess(w, &RecommendationResponse{
		Recommendations: items,
		Metadata:        meta,
	}, elapsed)
}

// RecommendationDocs handles GET /api/v1/recommendations with a description
// of the POST body and an example request.
func (h *Handler) RecommendationDocs(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.docs(), 0)
}

// effectiveLimit applies the default and the cap to a requested limit.
func (h *Handler) effectiveLimit(limit int) int {
	if limit <= 0 {
		limit = h.config.DefaultLimit
	}
	if limit > h.config.MaxLimit {
		limit = h.config.MaxLimit
	}
	return limit
}

// poolError maps a candidate pool failure to an HTTP reply.
func poolError(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "TMDB is temporarily unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "TIMEOUT", "Timed out fetching movie data from TMDB"
	default:
		return http.StatusInternalServerError, "EXTERNAL_SERVICE_FAILED", "Failed to fetch movie data from TMDB"
	}
}

func toItem(res *recommend.Result) RecommendationItem {
	reasons := res.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return RecommendationItem{
		Movie:        res.Movie,
		Score:        roundScore(res.Score),
		Reasons:      reasons,
		TMDBImageURL: tmdb.ImageURL(res.Movie.PosterPath, tmdb.PosterSize),
	}
}

// roundScore rounds to three decimal places.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}

func (h *Handler) docs() *RecommendationDocs {
	poster := "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"

	return &RecommendationDocs{
		Name:        "Movie Recommendations API",
		Description: "Content-based movie recommendations weighted by user-chosen feature importance",
		Method:      http.MethodPost,
		Endpoint:    RecommendationsPath,
		Parameters: map[string]interface{}{
			"selectedMovies": "Array of TMDB movie objects the user likes (at least one)",
			"weights": map[string]string{
				"genre":          "Weight for genre similarity (0-100)",
				"rating":         "Weight for rating similarity (0-100)",
				"director":       "Weight for director similarity (0-100)",
				"cast":           "Weight for cast similarity (0-100)",
				"cinematography": "Weight for cinematography similarity (0-100)",
				"keywords":       "Weight for theme/keyword similarity (0-100)",
				"year":           "Weight for release year similarity (0-100)",
			},
			"limit":           fmt.Sprintf("Maximum number of recommendations (default: %d, max: %d)", h.config.DefaultLimit, h.config.MaxLimit),
			"minScore":        fmt.Sprintf("Minimum similarity score (0-1, default: %g)", h.config.DefaultMinScore),
			"candidateSource": "Source for candidate movies: popular|top_rated|discover|mixed (default: mixed)",
			"genreFilter":     "Array of TMDB genre IDs to filter by",
			"yearFilter":      "Release year to filter by",
			"ratingFilter":    "Minimum rating to filter by (0-10)",
		},
		Example: RecommendationRequest{
			SelectedMovies: []models.Movie{{
				ID:          550,
				Title:       "Fight Club",
				Overview:    "A ticking-time-bomb insomniac and a slippery soap salesman channel primal male aggression into a shocking new form of therapy.",
				ReleaseDate: "1999-10-15",
				VoteAverage: 8.4,
				PosterPath:  &poster,
				GenreIDs:    []int{18},
			}},
			Weights: &recommend.Weights{
				Genre:          75,
				Rating:         60,
				Director:       50,
				Cast:           65,
				Cinematography: 40,
				Keywords:       55,
				Year:           30,
			},
			Limit:           10,
			CandidateSource: string(candidates.KindMixed),
		},
	}
}
