// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"testing"
	"time"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name        string
		endsAt      *time.Time
		hasVoted    bool
		wantExpired bool
		wantCanVote bool
	}{
		{"no end date, not voted", nil, false, false, true},
		{"no end date, voted", nil, true, false, false},
		{"future end date, not voted", &future, false, false, true},
		{"future end date, voted", &future, true, false, false},
		{"past end date, not voted", &past, false, true, false},
		{"past end date, voted", &past, true, true, false},
		{"ends exactly now", &now, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := Evaluate(tt.endsAt, tt.hasVoted, now)
			if lc.IsExpired != tt.wantExpired {
				t.Errorf("IsExpired = %v, expected %v", lc.IsExpired, tt.wantExpired)
			}
			if lc.CanVote != tt.wantCanVote {
				t.Errorf("CanVote = %v, expected %v", lc.CanVote, tt.wantCanVote)
			}
		})
	}
}

func TestEvaluateNeverExpiresWithoutEndDate(t *testing.T) {
	// A poll with no end date stays open no matter how far the clock moves.
	times := []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Now(),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, now := range times {
		if lc := Evaluate(nil, false, now); lc.IsExpired {
			t.Errorf("Poll with nil endsAt reported expired at %v", now)
		}
	}
}
