// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pollbase/pollbase/middleware"
	"github.com/pollbase/pollbase/models"
	"github.com/pollbase/pollbase/poll"
	"github.com/pollbase/pollbase/store"
)

// recentPollLimit caps the dashboard's recent-polls list
const recentPollLimit = 3

type DashboardHandler struct {
	store store.Store
}

func NewDashboardHandler(store store.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Stats handles GET /dashboard/stats
// Aggregates are computed over the viewer's own polls only
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
		return
	}

	details, err := h.store.ListPollsByOwner(user.ID, 0)
	if err != nil {
		slog.Error("failed to list polls for dashboard", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	stats := poll.ComputeDashboard(details, time.Now())

	middleware.JSONResponse(w, http.StatusOK, models.DashboardStatsResponse{
		TotalPolls:      stats.TotalPolls,
		TotalVotes:      stats.TotalVotes,
		ActivePolls:     stats.ActivePolls,
		AvgVotesPerPoll: stats.AvgVotesPerPoll,
	})
}

// Recent handles GET /dashboard/recent
// Returns the viewer's newest polls with tallies
func (h *DashboardHandler) Recent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
		return
	}

	details, err := h.store.ListPollsByOwner(user.ID, recentPollLimit)
	if err != nil {
		slog.Error("failed to list recent polls", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load recent polls")
		return
	}

	now := time.Now()
	views := make([]models.PollView, len(details))
	for i, detail := range details {
		views[i] = buildPollView(detail, user.ID, now)
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}
