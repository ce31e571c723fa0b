// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/candidates"
)

var _ CacheStatsReporter = (*candidates.Builder)(nil)

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil, nil, fakeReadiness(false), testRecommendConfig())
	rec := httptestGet(t, http.HandlerFunc(h.HealthLive), "/api/v1/health/live")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even with upstream down", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"alive":true`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		upstream   ReadinessChecker
		wantStatus int
		wantBody   string
	}{
		{"breaker closed", fakeReadiness(true), http.StatusOK, `"status":"ready"`},
		{"breaker open", fakeReadiness(false), http.StatusServiceUnavailable, `"status":"not_ready"`},
		{"no upstream checker", nil, http.StatusOK, `"tmdb":true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandler(nil, nil, tt.upstream, testRecommendConfig())
			rec := httptestGet(t, http.HandlerFunc(h.HealthReady), "/api/v1/health/ready")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s, want %s", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

// cachingPool is a fakePool that also reports list cache statistics.
type cachingPool struct {
	fakePool
	stats cache.Stats
}

func (c *cachingPool) CacheStats() cache.Stats { return c.stats }

func TestHealthReady_ListCacheStats(t *testing.T) {
	t.Parallel()

	pool := &cachingPool{stats: cache.Stats{Hits: 3, Misses: 1, TotalKeys: 4}}
	h := NewHandler(nil, pool, fakeReadiness(true), testRecommendConfig())
	rec := httptestGet(t, http.HandlerFunc(h.HealthReady), "/api/v1/health/ready")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"list_cache":`, `"entries":4`, `"hit_rate":75`} {
		if !strings.Contains(body, want) {
			t.Errorf("body = %s, want %s", body, want)
		}
	}
}

func TestHealthReady_NoCacheStats(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil, &fakePool{}, fakeReadiness(true), testRecommendConfig())
	rec := httptestGet(t, http.HandlerFunc(h.HealthReady), "/api/v1/health/ready")

	if strings.Contains(rec.Body.String(), "list_cache") {
		t.Errorf("body = %s, want no list_cache section", rec.Body.String())
	}
}
