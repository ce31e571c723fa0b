// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 while the TMDB circuit breaker is open, since every
// recommendation request would fail fast. List cache statistics are
// included when the pool builder reports them.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	tmdbReady := h.upstream == nil || h.upstream.Ready()

	statusCode := http.StatusOK
	status := "ready"
	if !tmdbReady {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	data := map[string]interface{}{
		"status": status,
		"checks": map[string]bool{
			"tmdb": tmdbReady,
		},
	}
	if reporter, ok := h.pool.(CacheStatsReporter); ok {
		stats := reporter.CacheStats()
		data["list_cache"] = map[string]interface{}{
			"entries":  stats.TotalKeys,
			"hits":     stats.Hits,
			"misses":   stats.Misses,
			"hit_rate": stats.HitRate(),
		}
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
