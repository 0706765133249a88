// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"

	"github.com/pollbase/pollbase/models"
	"github.com/pollbase/pollbase/poll"
)

var (
	ErrNotFound        = errors.New("poll not found")
	ErrUnauthorized    = errors.New("requester is not the poll owner")
	ErrAlreadyVoted    = errors.New("user has already voted on this poll")
	ErrInvalidOption   = errors.New("option does not belong to this poll")
	ErrUnauthenticated = errors.New("voter is not authenticated")
)

// Store is the poll persistence gateway. Handlers depend on this interface
// rather than composing SQL themselves, which keeps query shaping out of
// the presentation layer.
type Store interface {
	// CreatePoll persists a validated poll and its options as a unit.
	// Either the poll and all of its options exist afterward, or nothing
	// does; no poll is ever visible with fewer than two options.
	CreatePoll(validated poll.ValidatedPoll, ownerID string) (models.PollDetail, error)

	// GetPollByID returns a poll with its options and votes, or ErrNotFound.
	GetPollByID(id string) (models.PollDetail, error)

	// ListPolls returns all polls with options and votes, newest first.
	ListPolls() ([]models.PollDetail, error)

	// ListPollsByOwner returns the owner's polls, newest first, truncated
	// to limit when limit > 0.
	ListPollsByOwner(ownerID string, limit int) ([]models.PollDetail, error)

	// DeletePoll removes a poll and, by cascade, its options and votes.
	// Fails with ErrUnauthorized when requesterID does not own the poll.
	DeletePoll(id, requesterID string) error

	// CastVote records a vote. The one-vote-per-(poll,user) invariant is
	// enforced by the store's unique constraint, not by a prior read:
	// a duplicate surfaces as ErrAlreadyVoted even under concurrent
	// submissions.
	CastVote(pollID, optionID, voterID string) (models.Vote, error)

	// HasVoted reports whether the user already voted on the poll.
	HasVoted(pollID, voterID string) (bool, error)
}
