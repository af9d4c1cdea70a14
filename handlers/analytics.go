// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/college-site/counter"
	"github.com/danielhkuo/college-site/middleware"
	"github.com/danielhkuo/college-site/models"
)

type AnalyticsHandler struct {
	counters counter.Store
	key      string
}

// NewAnalyticsHandler serves the visit counter stored under key
func NewAnalyticsHandler(counters counter.Store, key string) *AnalyticsHandler {
	return &AnalyticsHandler{counters: counters, key: key}
}

// GetVisits handles GET /api/analytics/visits
func (h *AnalyticsHandler) GetVisits(w http.ResponseWriter, r *http.Request) {
	count, err := h.counters.GetOrCreate(r.Context(), h.key)
	if err != nil {
		slog.Error("failed to read visit counter", "key", h.key, "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Visit counter unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{Success: true, Count: count})
}

// TrackVisit handles POST /api/analytics/track-visit
func (h *AnalyticsHandler) TrackVisit(w http.ResponseWriter, r *http.Request) {
	count, err := h.counters.Increment(r.Context(), h.key)
	if err != nil {
		slog.Error("failed to increment visit counter", "key", h.key, "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Visit counter unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CountResponse{Success: true, Count: count})
}
