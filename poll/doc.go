// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements the pure domain logic shared by every surface of
the application: input validation, lifecycle evaluation, vote tallying,
and dashboard aggregation.

Everything here is a pure function. No I/O, no globals, and the current
time is always injected, so the same inputs always produce the same
outputs.

# Validation

ValidateNew sanitizes and checks poll-creation input:

	validated, err := poll.ValidateNew(input, time.Now())

Sanitization strips <script> blocks and then any remaining markup tags.
Failures come back as *ValidationError with a stable Code (EmptyTitle,
InsufficientOptions, EndDateInPast) so handlers can surface field-level
messages.

# Lifecycle

Evaluate answers "is this poll over, and can this viewer still vote":

	lc := poll.Evaluate(p.EndsAt, hasVoted, time.Now())

A poll with no end date never expires. Expired polls are never votable,
regardless of whether the viewer has voted.

# Tally

Tally derives per-option counts and integer percentages from the votes
relation. Percentages round half away from zero and are not normalized
to sum to exactly 100.

# Dashboard

ComputeDashboard aggregates a user's polls into totals, active count,
and average votes per poll.
*/
package poll
