// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "time"

// Lifecycle is the viewer-facing state of a poll at a point in time.
type Lifecycle struct {
	IsExpired bool
	CanVote   bool
}

// Evaluate determines whether a poll has expired and whether the viewer may
// still vote on it. A nil endsAt means the poll never expires. The function
// is agnostic to authentication: callers must pass hasVoted=true (or skip
// the vote UI entirely) for anonymous viewers.
//
// The current time is injected so results are deterministic under test.
func Evaluate(endsAt *time.Time, hasVoted bool, now time.Time) Lifecycle {
	expired := endsAt != nil && now.After(*endsAt)
	return Lifecycle{
		IsExpired: expired,
		CanVote:   !expired && !hasVoted,
	}
}
