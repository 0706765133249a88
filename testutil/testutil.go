// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pollbase/pollbase/auth"
	"github.com/pollbase/pollbase/cliparse"
	pollschema "github.com/pollbase/pollbase/db"
	"github.com/pollbase/pollbase/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database, so no cleanup between tests
// is needed.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// An in-memory sqlite database exists per connection; a second pooled
	// connection would see empty tables
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := pollschema.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SessionTTL:   time.Hour,
	}
}

// CreateTestUser inserts a user with the password "password123" and
// returns it
func CreateTestUser(t *testing.T, db *sql.DB, email, fullName string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	u := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}

	_, err = db.Exec(`
		INSERT INTO users (id, email, password_hash, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Email, hash, u.FullName, u.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return u
}

// CreateTestSession opens a session for the user and returns its token
func CreateTestSession(t *testing.T, db *sql.DB, userID string) string {
	t.Helper()

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate test session token: %v", err)
	}

	now := time.Now().UTC()
	_, err = db.Exec(`
		INSERT INTO session (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, token, userID, now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// CreateTestPoll inserts a poll with the given option texts and returns
// the poll ID and option IDs in order
func CreateTestPoll(t *testing.T, db *sql.DB, ownerID string, endsAt *time.Time, optionTexts ...string) (string, []string) {
	t.Helper()

	pollID, _ := auth.GenerateID(16)
	_, err := db.Exec(`
		INSERT INTO poll (id, title, description, created_by, created_at, ends_at)
		VALUES ($1, 'Test Poll', 'A test poll', $2, $3, $4)
	`, pollID, ownerID, time.Now().UTC(), endsAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	optionIDs := make([]string, len(optionTexts))
	for i, text := range optionTexts {
		optionID, _ := auth.GenerateID(12)
		_, err := db.Exec(`
			INSERT INTO option (id, poll_id, text, position)
			VALUES ($1, $2, $3, $4)
		`, optionID, pollID, text, i)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs[i] = optionID
	}

	return pollID, optionIDs
}

// CastTestVote inserts a vote row directly
func CastTestVote(t *testing.T, db *sql.DB, pollID, optionID, userID string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), pollID, optionID, userID, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request. A non-empty sessionToken is
// attached as the session cookie.
func MakeRequest(method, path string, body interface{}, sessionToken string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: "pollbase_session", Value: sessionToken})
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
