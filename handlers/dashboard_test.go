// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pollbase/pollbase/middleware"
	"github.com/pollbase/pollbase/models"
	"github.com/pollbase/pollbase/session"
	"github.com/pollbase/pollbase/store"
	"github.com/pollbase/pollbase/testutil"
)

func newDashboardFixture(t *testing.T) (*sql.DB, *DashboardHandler, session.Gateway) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sessions := session.NewSQLGateway(db, time.Hour)
	return db, NewDashboardHandler(store.NewSQLStore(db)), sessions
}

func TestDashboardStatsEmpty(t *testing.T) {
	db, handler, sessions := newDashboardFixture(t)
	defer db.Close()

	user := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	token := testutil.CreateTestSession(t, db, user.ID)

	wrapped := middleware.WithUser(sessions, handler.Stats)

	req := testutil.MakeRequest("GET", "/dashboard/stats", nil, token)
	w := httptest.NewRecorder()
	wrapped(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.DashboardStatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.TotalPolls != 0 || stats.TotalVotes != 0 || stats.ActivePolls != 0 || stats.AvgVotesPerPoll != 0 {
		t.Errorf("Expected all-zero stats, got %+v", stats)
	}
}

func TestDashboardStats(t *testing.T) {
	db, handler, sessions := newDashboardFixture(t)
	defer db.Close()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	bob := testutil.CreateTestUser(t, db, "bob@example.com", "Bob")
	voter := testutil.CreateTestUser(t, db, "voter@example.com", "Voter")
	token := testutil.CreateTestSession(t, db, alice.ID)

	past := time.Now().Add(-time.Hour)
	activeID, activeOpts := testutil.CreateTestPoll(t, db, alice.ID, nil, "X", "Y")
	testutil.CreateTestPoll(t, db, alice.ID, &past, "A", "B")
	testutil.CastTestVote(t, db, activeID, activeOpts[0], voter.ID)
	testutil.CastTestVote(t, db, activeID, activeOpts[1], bob.ID)

	// Bob's poll must not count toward Alice's stats
	bobPollID, bobOpts := testutil.CreateTestPoll(t, db, bob.ID, nil, "P", "Q")
	testutil.CastTestVote(t, db, bobPollID, bobOpts[0], voter.ID)

	wrapped := middleware.WithUser(sessions, handler.Stats)

	req := testutil.MakeRequest("GET", "/dashboard/stats", nil, token)
	w := httptest.NewRecorder()
	wrapped(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.DashboardStatsResponse
	testutil.AssertJSON(t, w, &stats)
	if stats.TotalPolls != 2 {
		t.Errorf("Expected 2 polls, got %d", stats.TotalPolls)
	}
	if stats.TotalVotes != 2 {
		t.Errorf("Expected 2 votes, got %d", stats.TotalVotes)
	}
	if stats.ActivePolls != 1 {
		t.Errorf("Expected 1 active poll, got %d", stats.ActivePolls)
	}
	if stats.AvgVotesPerPoll != 1.0 {
		t.Errorf("Expected average 1.0, got %f", stats.AvgVotesPerPoll)
	}
}

func TestDashboardRecent(t *testing.T) {
	db, handler, sessions := newDashboardFixture(t)
	defer db.Close()

	alice := testutil.CreateTestUser(t, db, "alice@example.com", "Alice")
	token := testutil.CreateTestSession(t, db, alice.ID)

	var lastID string
	for i := 0; i < 5; i++ {
		lastID, _ = testutil.CreateTestPoll(t, db, alice.ID, nil, "X", "Y")
		time.Sleep(2 * time.Millisecond)
	}

	wrapped := middleware.WithUser(sessions, handler.Recent)

	req := testutil.MakeRequest("GET", "/dashboard/recent", nil, token)
	w := httptest.NewRecorder()
	wrapped(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var views []models.PollView
	testutil.AssertJSON(t, w, &views)
	if len(views) != 3 {
		t.Fatalf("Expected 3 recent polls, got %d", len(views))
	}
	if views[0].Poll.ID != lastID {
		t.Errorf("Expected newest poll first, got %s", views[0].Poll.ID)
	}
}
