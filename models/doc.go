// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, password, full_name
  - LoginRequest: email, password
  - CreatePollRequest: title, description, options, ends_at
  - CastVoteRequest: option_id

# Response Types

Types for JSON responses:

  - RegisterResponse: message, user
  - LoginResponse: message, user
  - DashboardStatsResponse: total_polls, total_votes, active_polls, avg_votes_per_poll
  - ErrorResponse: error, message, code

# Domain Types

Internal data structures:

  - User: account record (password hash never serialized)
  - Session: opaque token with expiry (token never serialized)
  - Poll: poll metadata; ends_at is nil for open-ended polls
  - Option: voting option with stable position
  - Vote: one row per (poll, user)
  - PollDetail: a poll with its options and votes loaded
  - OptionTally: per-option count and percentage
  - PollView: what clients see - poll, options, tally, and the
    viewer-dependent flags (has_voted, can_vote, is_expired)
*/
package models
