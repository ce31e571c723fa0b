// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/candidates"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// fakePool returns a fixed pool or error and records the last request.
type fakePool struct {
	mu    sync.Mutex
	pool  []models.Movie
	err   error
	calls int
	last  candidates.Request
}

func (f *fakePool) Build(_ context.Context, req candidates.Request) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.pool, nil
}

// fakeRecommender returns canned results and records the last request.
type fakeRecommender struct {
	mu      sync.Mutex
	results []recommend.Result
	last    recommend.Request
	pool    []models.Movie
	calls   int
}

func (f *fakeRecommender) Recommend(_ context.Context, req recommend.Request, pool []models.Movie) []recommend.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = req
	f.pool = pool
	return f.results
}

type fakeReadiness bool

func (f fakeReadiness) Ready() bool { return bool(f) }

func testRecommendConfig() config.RecommendConfig {
	return config.RecommendConfig{
		BatchSize:       20,
		DefaultMinScore: 0.1,
		DefaultLimit:    20,
		MaxLimit:        50,
		MaxCandidates:   200,
		SimilarSeeds:    3,
		RequestTimeout:  5 * time.Second,
	}
}

// testEnvelope mirrors models.APIResponse with the data left raw.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func decodeRecommendations(t *testing.T, rec *httptest.ResponseRecorder) RecommendationResponse {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("status = %q, error = %+v", env.Status, env.Error)
	}
	var resp RecommendationResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	return resp
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func httptestGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func strPtr(s string) *string { return &s }

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"selectedMovies": []map[string]interface{}{
			{"id": 550, "title": "Fight Club", "genre_ids": []int{18}, "release_date": "1999-10-15", "vote_average": 8.4},
		},
		"weights": map[string]int{
			"genre": 75, "rating": 60, "director": 50, "cast": 65,
			"cinematography": 40, "keywords": 55, "year": 30,
		},
	}
}
