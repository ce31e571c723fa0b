// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
	"time"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// ===================================================================================================
// Request Validation Tests
// ===================================================================================================

type testWeights struct {
	Genre  int `json:"genre" validate:"min=0,max=100"`
	Rating int `json:"rating" validate:"min=0,max=100"`
}

type testMovie struct {
	ID int `json:"id" validate:"gt=0"`
}

type testRequest struct {
	SelectedMovies  []testMovie  `json:"selectedMovies" validate:"required,min=1,dive"`
	Weights         *testWeights `json:"weights" validate:"required"`
	Limit           int          `json:"limit" validate:"gte=0,lte=1000"`
	MinScore        *float64     `json:"minScore,omitempty" validate:"omitempty,gte=0,lte=1"`
	CandidateSource string       `json:"candidateSource" validate:"omitempty,oneof=popular top_rated discover mixed"`
	YearFilter      int          `json:"yearFilter" validate:"release_year"`
	RatingFilter    float64      `json:"ratingFilter" validate:"gte=0,lte=10"`
	Internal        string       `json:"-" validate:"omitempty,max=3"`
	Untagged        int          `validate:"lte=5"`
}

func validRequest() testRequest {
	return testRequest{
		SelectedMovies: []testMovie{{ID: 550}},
		Weights:        &testWeights{Genre: 75, Rating: 60},
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*testRequest)
	}{
		{"minimal request", func(*testRequest) {}},
		{"all filters", func(r *testRequest) {
			r.Limit = 10
			r.MinScore = floatPtr(0.5)
			r.CandidateSource = "discover"
			r.YearFilter = 1999
			r.RatingFilter = 7.5
		}},
		{"boundary values", func(r *testRequest) {
			r.Limit = 1000
			r.MinScore = floatPtr(1)
			r.RatingFilter = 10
			r.Weights = &testWeights{Genre: 100, Rating: 0}
		}},
		{"explicit zero min score", func(r *testRequest) { r.MinScore = floatPtr(0) }},
		{"earliest release year", func(r *testRequest) { r.YearFilter = MinReleaseYear }},
		{"next year", func(r *testRequest) { r.YearFilter = time.Now().Year() + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)
			if err := ValidateStruct(&req); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*testRequest)
		wantField string
		wantTag   string
	}{
		{"nil selected movies", func(r *testRequest) { r.SelectedMovies = nil }, "selectedMovies", "required"},
		{"empty selected movies", func(r *testRequest) { r.SelectedMovies = []testMovie{} }, "selectedMovies", "min"},
		{"selected movie without id", func(r *testRequest) { r.SelectedMovies = []testMovie{{ID: 0}} }, "id", "gt"},
		{"missing weights", func(r *testRequest) { r.Weights = nil }, "weights", "required"},
		{"weight above range", func(r *testRequest) { r.Weights.Genre = 101 }, "genre", "max"},
		{"negative weight", func(r *testRequest) { r.Weights.Rating = -1 }, "rating", "min"},
		{"negative limit", func(r *testRequest) { r.Limit = -1 }, "limit", "gte"},
		{"limit too large", func(r *testRequest) { r.Limit = 1001 }, "limit", "lte"},
		{"min score above one", func(r *testRequest) { r.MinScore = floatPtr(1.5) }, "minScore", "lte"},
		{"negative min score", func(r *testRequest) { r.MinScore = floatPtr(-0.1) }, "minScore", "gte"},
		{"unknown source", func(r *testRequest) { r.CandidateSource = "trending" }, "candidateSource", "oneof"},
		{"ancient year", func(r *testRequest) { r.YearFilter = 1500 }, "yearFilter", "release_year"},
		{"far future year", func(r *testRequest) { r.YearFilter = time.Now().Year() + 50 }, "yearFilter", "release_year"},
		{"rating filter above ten", func(r *testRequest) { r.RatingFilter = 11 }, "ratingFilter", "lte"},
		{"untagged field keeps go name", func(r *testRequest) { r.Untagged = 6 }, "Untagged", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	req := validRequest()
	req.SelectedMovies = nil

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %s, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "selectedMovies is required" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "selectedMovies" {
		t.Errorf("Details[field] = %v, want selectedMovies", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	req := validRequest()
	req.Limit = 5000
	req.CandidateSource = "nope"

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("len(fields) = %d, want 2", len(fields))
	}
	if !strings.Contains(apiErr.Message, "limit:") || !strings.Contains(apiErr.Message, "candidateSource:") {
		t.Errorf("Message = %q, want both fields named", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Message != "Validation failed" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

// ===================================================================================================
// Error Message Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*testRequest)
		want   string
	}{
		{"slice min", func(r *testRequest) { r.SelectedMovies = []testMovie{} }, "selectedMovies must have at least 1 items"},
		{"int max", func(r *testRequest) { r.Weights.Genre = 200 }, "genre must be at most 100"},
		{"lte", func(r *testRequest) { r.Limit = 1001 }, "limit must be less than or equal to 1000"},
		{"oneof", func(r *testRequest) { r.CandidateSource = "x" }, "candidateSource must be one of: popular top_rated discover mixed"},
		{"release year", func(r *testRequest) { r.YearFilter = 12 }, "yearFilter must be a plausible release year"},
		{"string max", func(r *testRequest) { r.Internal = "abcd" }, "Internal must have at most 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if got := err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
