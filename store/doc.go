// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the poll persistence gateway.

Handlers talk to the Store interface; SQLStore backs it with database/sql
and runs unchanged against postgres and sqlite.

Two guarantees matter here:

  - CreatePoll is transactional: a poll and its options are persisted
    together or not at all, so no poll ever exists with fewer than two
    options.
  - CastVote relies on the vote table's UNIQUE (poll_id, user_id)
    constraint instead of a read-then-write check, so a duplicate vote
    surfaces as ErrAlreadyVoted even when two requests race.

Failures are sentinel errors (ErrNotFound, ErrUnauthorized,
ErrAlreadyVoted, ErrInvalidOption, ErrUnauthenticated) that handlers map
to HTTP status codes.
*/
package store
