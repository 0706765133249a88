// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

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
	"github.com/pollbase/pollbase/poll"
)

// SQLStore implements Store over database/sql. It works against both the
// postgres (lib/pq) and sqlite (modernc.org/sqlite) drivers; both accept
// $1-style placeholders.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreatePoll(validated poll.ValidatedPoll, ownerID string) (models.PollDetail, error) {
	if len(validated.Options) < 2 {
		return models.PollDetail{}, fmt.Errorf("refusing to persist poll with %d options", len(validated.Options))
	}

	pollID, err := auth.GenerateID(16)
	if err != nil {
		return models.PollDetail{}, err
	}

	createdAt := time.Now().UTC()
	p := models.Poll{
		ID:          pollID,
		Title:       validated.Title,
		Description: validated.Description,
		CreatedBy:   ownerID,
		CreatedAt:   createdAt,
		EndsAt:      validated.EndsAt,
	}

	// Poll and options are a single transaction: an option insert failure
	// rolls the poll row back too.
	tx, err := s.db.Begin()
	if err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, title, description, created_by, created_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.Title, p.Description, p.CreatedBy, p.CreatedAt, p.EndsAt)
	if err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	options := make([]models.Option, len(validated.Options))
	for i, text := range validated.Options {
		optionID, err := auth.GenerateID(12)
		if err != nil {
			return models.PollDetail{}, err
		}

		_, err = tx.Exec(`
			INSERT INTO option (id, poll_id, text, position)
			VALUES ($1, $2, $3, $4)
		`, optionID, p.ID, text, i)
		if err != nil {
			return models.PollDetail{}, fmt.Errorf("failed to insert option: %w", err)
		}

		options[i] = models.Option{ID: optionID, PollID: p.ID, Text: text}
	}

	if err := tx.Commit(); err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to commit poll: %w", err)
	}

	return models.PollDetail{Poll: p, Options: options, Votes: []models.Vote{}}, nil
}

func (s *SQLStore) GetPollByID(id string) (models.PollDetail, error) {
	var p models.Poll
	var endsAt sql.NullTime
	err := s.db.QueryRow(`
		SELECT id, title, description, created_by, created_at, ends_at
		FROM poll
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.CreatedBy, &p.CreatedAt, &endsAt)

	if err == sql.ErrNoRows {
		return models.PollDetail{}, ErrNotFound
	}
	if err != nil {
		return models.PollDetail{}, fmt.Errorf("failed to query poll: %w", err)
	}
	if endsAt.Valid {
		t := endsAt.Time
		p.EndsAt = &t
	}

	options, err := s.pollOptions(p.ID)
	if err != nil {
		return models.PollDetail{}, err
	}
	votes, err := s.pollVotes(p.ID)
	if err != nil {
		return models.PollDetail{}, err
	}

	return models.PollDetail{Poll: p, Options: options, Votes: votes}, nil
}

func (s *SQLStore) ListPolls() ([]models.PollDetail, error) {
	return s.listPolls(`
		SELECT id, title, description, created_by, created_at, ends_at
		FROM poll
		ORDER BY created_at DESC
	`)
}

func (s *SQLStore) ListPollsByOwner(ownerID string, limit int) ([]models.PollDetail, error) {
	query := `
		SELECT id, title, description, created_by, created_at, ends_at
		FROM poll
		WHERE created_by = $1
		ORDER BY created_at DESC
	`
	if limit > 0 {
		return s.listPolls(query+" LIMIT $2", ownerID, limit)
	}
	return s.listPolls(query, ownerID)
}

func (s *SQLStore) listPolls(query string, args ...interface{}) ([]models.PollDetail, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		var endsAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedBy, &p.CreatedAt, &endsAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		if endsAt.Valid {
			t := endsAt.Time
			p.EndsAt = &t
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	details := make([]models.PollDetail, len(polls))
	for i, p := range polls {
		options, err := s.pollOptions(p.ID)
		if err != nil {
			return nil, err
		}
		votes, err := s.pollVotes(p.ID)
		if err != nil {
			return nil, err
		}
		details[i] = models.PollDetail{Poll: p, Options: options, Votes: votes}
	}

	return details, nil
}

func (s *SQLStore) DeletePoll(id, requesterID string) error {
	var ownerID string
	err := s.db.QueryRow(`SELECT created_by FROM poll WHERE id = $1`, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query poll owner: %w", err)
	}

	if ownerID != requesterID {
		return ErrUnauthorized
	}

	// Options and votes go with the poll via ON DELETE CASCADE
	_, err = s.db.Exec(`DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	return nil
}

func (s *SQLStore) CastVote(pollID, optionID, voterID string) (models.Vote, error) {
	if voterID == "" {
		return models.Vote{}, ErrUnauthenticated
	}

	// The option must exist and belong to the poll
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM option WHERE id = $1 AND poll_id = $2)
	`, optionID, pollID).Scan(&exists)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to verify option: %w", err)
	}
	if !exists {
		var pollExists bool
		if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM poll WHERE id = $1)`, pollID).Scan(&pollExists); err != nil {
			return models.Vote{}, fmt.Errorf("failed to verify poll: %w", err)
		}
		if !pollExists {
			return models.Vote{}, ErrNotFound
		}
		return models.Vote{}, ErrInvalidOption
	}

	v := models.Vote{
		ID:        uuid.NewString(),
		PollID:    pollID,
		OptionID:  optionID,
		UserID:    voterID,
		CreatedAt: time.Now().UTC(),
	}

	// No prior "have I voted" read: the UNIQUE (poll_id, user_id)
	// constraint decides, so two concurrent submissions cannot both land.
	_, err = s.db.Exec(`
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.PollID, v.OptionID, v.UserID, v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Vote{}, ErrAlreadyVoted
		}
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	return v, nil
}

func (s *SQLStore) HasVoted(pollID, voterID string) (bool, error) {
	if voterID == "" {
		return false, nil
	}

	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM vote WHERE poll_id = $1 AND user_id = $2)
	`, pollID, voterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query votes: %w", err)
	}

	return exists, nil
}

func (s *SQLStore) pollOptions(pollID string) ([]models.Option, error) {
	rows, err := s.db.Query(`
		SELECT id, poll_id, text
		FROM option
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}

func (s *SQLStore) pollVotes(pollID string) ([]models.Vote, error) {
	rows, err := s.db.Query(`
		SELECT id, poll_id, option_id, user_id, created_at
		FROM vote
		WHERE poll_id = $1
		ORDER BY created_at
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.PollID, &v.OptionID, &v.UserID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// isUniqueViolation recognizes unique-constraint errors from both drivers:
// pq reports SQLSTATE 23505, modernc sqlite reports a message containing
// "UNIQUE constraint failed".
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
