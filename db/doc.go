// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Overview

Five tables:

  - users: accounts with bcrypt password hashes
  - session: opaque session tokens with expiry
  - poll: one row per poll, owned by a user
  - option: poll choices, ordered by position
  - vote: one row per (poll, user), cascading from poll

Vote counts are never stored; they are derived from the vote table at
read time.

# Key Constraints

  - users.email (unique)
  - vote (poll_id, user_id) unique - the one-vote-per-poll invariant
  - option.poll_id, vote.poll_id cascade on poll deletion

# Dialects

The DDL runs unchanged on postgres (production) and sqlite (development
and tests). Timestamps are always set by the application rather than by
server-side defaults, which is what keeps the DDL portable.

Usage:

	err := db.CreateSchema(dbConn)
*/
package db
