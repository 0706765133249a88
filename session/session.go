// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pollbase/pollbase/auth"
	"github.com/pollbase/pollbase/models"
)

var (
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("no valid session")
)

// Gateway is the authentication boundary: account creation, credential
// checks, and opaque-token sessions. Everything else in the application
// only ever sees a models.User resolved from a token.
type Gateway interface {
	// SignUp creates an account. The caller validates input shape first;
	// SignUp enforces email uniqueness and hashes the password.
	SignUp(email, password, fullName string) (models.User, error)

	// SignIn checks credentials and opens a session. Any credential
	// failure returns ErrInvalidCredentials, never a hint about which
	// part was wrong.
	SignIn(email, password string) (models.User, models.Session, error)

	// SignOut invalidates a session token. Unknown tokens are a no-op.
	SignOut(token string) error

	// UserForToken resolves a live session token to its user, or
	// ErrNoSession for missing or expired tokens.
	UserForToken(token string) (models.User, error)
}

// SQLGateway implements Gateway over database/sql with TTL-bounded
// sessions.
type SQLGateway struct {
	db  *sql.DB
	ttl time.Duration
}

func NewSQLGateway(db *sql.DB, ttl time.Duration) *SQLGateway {
	return &SQLGateway{db: db, ttl: ttl}
}

func (g *SQLGateway) SignUp(email, password, fullName string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FullName:  strings.TrimSpace(fullName),
		CreatedAt: time.Now().UTC(),
	}

	_, err = g.db.Exec(`
		INSERT INTO users (id, email, password_hash, full_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Email, hash, u.FullName, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

func (g *SQLGateway) SignIn(email, password string) (models.User, models.Session, error) {
	var u models.User
	var hash string
	err := g.db.QueryRow(`
		SELECT id, email, password_hash, full_name, created_at
		FROM users
		WHERE email = $1
	`, strings.ToLower(strings.TrimSpace(email))).Scan(&u.ID, &u.Email, &hash, &u.FullName, &u.CreatedAt)

	// Unknown email and wrong password are indistinguishable to the caller
	if err == sql.ErrNoRows {
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("failed to query user: %w", err)
	}

	if err := auth.CheckPassword(hash, password); err != nil {
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	now := time.Now().UTC()
	sess := models.Session{
		Token:     token,
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(g.ttl),
	}

	_, err = g.db.Exec(`
		INSERT INTO session (token, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, sess.Token, sess.UserID, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("failed to insert session: %w", err)
	}

	return u, sess, nil
}

func (g *SQLGateway) SignOut(token string) error {
	_, err := g.db.Exec(`DELETE FROM session WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (g *SQLGateway) UserForToken(token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrNoSession
	}

	var u models.User
	var expiresAt time.Time
	err := g.db.QueryRow(`
		SELECT u.id, u.email, u.full_name, u.created_at, s.expires_at
		FROM session s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
	`, token).Scan(&u.ID, &u.Email, &u.FullName, &u.CreatedAt, &expiresAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNoSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query session: %w", err)
	}

	if time.Now().After(expiresAt) {
		// Expired rows are reaped lazily on first use
		if _, err := g.db.Exec(`DELETE FROM session WHERE token = $1`, token); err != nil {
			return models.User{}, fmt.Errorf("failed to delete expired session: %w", err)
		}
		return models.User{}, ErrNoSession
	}

	return u, nil
}

// isUniqueViolation recognizes unique-constraint errors from both drivers.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
