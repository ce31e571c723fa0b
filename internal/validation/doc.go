// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with custom validators and user-friendly error
// messages that drop straight into the API error envelope.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Field names reported by their JSON tag, so messages name request keys
//   - A release_year tag for optional year filters
//   - APIError conversion with the VALIDATION_ERROR code
//
// # Quick Start
//
//	type RecommendationRequest struct {
//	    SelectedMovies []models.Movie `json:"selectedMovies" validate:"required,min=1"`
//	    Limit          int            `json:"limit" validate:"gte=0,lte=1000"`
//	    YearFilter     int            `json:"yearFilter" validate:"release_year"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Error Messages
//
// Tags are translated to short sentences:
//
//	required      "selectedMovies is required"
//	min (slice)   "selectedMovies must have at least 1 items"
//	gte, lte      "limit must be less than or equal to 1000"
//	oneof         "candidateSource must be one of: popular top_rated discover mixed"
//	release_year  "yearFilter must be a plausible release year"
//
// A single failure puts field, tag and value into the details map. Several
// failures are joined into one message and listed under details["fields"].
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use.
package validation
