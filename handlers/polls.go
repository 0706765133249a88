// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pollbase/pollbase/middleware"
	"github.com/pollbase/pollbase/models"
	"github.com/pollbase/pollbase/poll"
	"github.com/pollbase/pollbase/store"
)

type PollHandler struct {
	store store.Store
}

func NewPollHandler(store store.Store) *PollHandler {
	return &PollHandler{store: store}
}

// buildPollView derives everything a client renders for one poll: tallies
// from the votes relation, plus lifecycle flags for the viewer. An empty
// viewerID (anonymous) can never vote.
func buildPollView(detail models.PollDetail, viewerID string, now time.Time) models.PollView {
	hasVoted := false
	if viewerID != "" {
		for _, v := range detail.Votes {
			if v.UserID == viewerID {
				hasVoted = true
				break
			}
		}
	}

	lc := poll.Evaluate(detail.Poll.EndsAt, hasVoted, now)

	return models.PollView{
		Poll:       detail.Poll,
		Options:    detail.Options,
		Tally:      poll.Tally(detail.Options, detail.Votes),
		TotalVotes: len(detail.Votes),
		IsExpired:  lc.IsExpired,
		HasVoted:   hasVoted,
		CanVote:    lc.CanVote && viewerID != "",
	}
}

// List handles GET /polls
// Returns all polls, newest first, with tallies and viewer lifecycle flags
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.store.ListPolls()
	if err != nil {
		slog.Error("failed to list polls", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load polls")
		return
	}

	viewerID := ""
	if user, ok := middleware.UserFrom(r); ok {
		viewerID = user.ID
	}

	now := time.Now()
	views := make([]models.PollView, len(details))
	for i, detail := range details {
		views[i] = buildPollView(detail, viewerID, now)
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// Create handles POST /polls
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in to create a poll")
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	validated, err := poll.ValidateNew(poll.NewPollInput{
		Title:       req.Title,
		Description: req.Description,
		Options:     req.Options,
		EndsAt:      req.EndsAt,
	}, time.Now())
	if err != nil {
		var verr *poll.ValidationError
		if errors.As(err, &verr) {
			middleware.ValidationErrorResponse(w, verr.Code, verr.Message)
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid poll")
		return
	}

	detail, err := h.store.CreatePoll(validated, user.ID)
	if err != nil {
		slog.Error("failed to create poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", detail.Poll.ID, "created_by", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, buildPollView(detail, user.ID, time.Now()))
}

// Get handles GET /polls/{id}
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	detail, err := h.store.GetPollByID(pollID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
			return
		}
		slog.Error("failed to get poll", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load poll")
		return
	}

	viewerID := ""
	if user, ok := middleware.UserFrom(r); ok {
		viewerID = user.ID
	}

	middleware.JSONResponse(w, http.StatusOK, buildPollView(detail, viewerID, time.Now()))
}

// Delete handles DELETE /polls/{id}
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in")
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	err := h.store.DeletePoll(pollID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		case errors.Is(err, store.ErrUnauthorized):
			middleware.ErrorResponse(w, http.StatusForbidden, "You can only delete your own polls")
		default:
			slog.Error("failed to delete poll", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete poll")
		}
		return
	}

	slog.Info("poll deleted", "poll_id", pollID, "deleted_by", user.ID)

	w.WriteHeader(http.StatusNoContent)
}

// Vote handles POST /polls/{id}/vote
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in to vote")
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	// Expiry is checked before the write; the one-vote invariant is not,
	// since the store's unique constraint owns that
	detail, err := h.store.GetPollByID(pollID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
			return
		}
		slog.Error("failed to get poll for vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load poll")
		return
	}

	if lc := poll.Evaluate(detail.Poll.EndsAt, false, time.Now()); lc.IsExpired {
		middleware.ErrorResponse(w, http.StatusConflict, "This poll has ended")
		return
	}

	_, err = h.store.CastVote(pollID, req.OptionID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyVoted):
			middleware.ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")
		case errors.Is(err, store.ErrInvalidOption):
			middleware.ErrorResponse(w, http.StatusBadRequest, "Option does not belong to this poll")
		case errors.Is(err, store.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		default:
			slog.Error("failed to cast vote", "error", err, "poll_id", pollID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		}
		return
	}

	slog.Info("vote cast", "poll_id", pollID, "option_id", req.OptionID, "user_id", user.ID)

	// Return the refreshed tally
	detail, err = h.store.GetPollByID(pollID)
	if err != nil {
		slog.Error("failed to reload poll after vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, buildPollView(detail, user.ID, time.Now()))
}
