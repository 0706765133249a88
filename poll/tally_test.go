// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"testing"

	"github.com/pollbase/pollbase/models"
)

func makeOptions(ids ...string) []models.Option {
	opts := make([]models.Option, len(ids))
	for i, id := range ids {
		opts[i] = models.Option{ID: id, PollID: "p1", Text: "Option " + id}
	}
	return opts
}

func makeVotes(optionIDs ...string) []models.Vote {
	votes := make([]models.Vote, len(optionIDs))
	for i, id := range optionIDs {
		votes[i] = models.Vote{ID: string(rune('a' + i)), PollID: "p1", OptionID: id}
	}
	return votes
}

func TestTallyNoVotes(t *testing.T) {
	options := makeOptions("a", "b", "c")

	tallies := Tally(options, nil)

	if len(tallies) != 3 {
		t.Fatalf("Expected 3 tallies, got %d", len(tallies))
	}
	for _, tally := range tallies {
		if tally.Count != 0 {
			t.Errorf("Option %s: expected count 0, got %d", tally.OptionID, tally.Count)
		}
		if tally.Percentage != 0 {
			t.Errorf("Option %s: expected 0%%, got %d%%", tally.OptionID, tally.Percentage)
		}
	}
}

func TestTallyNoOptions(t *testing.T) {
	tallies := Tally(nil, nil)
	if len(tallies) != 0 {
		t.Errorf("Expected empty tally, got %d entries", len(tallies))
	}
}

func TestTallyKnownDistribution(t *testing.T) {
	// A=45, B=38, C=42 over 125 total -> 36%, 30%, 34%
	options := makeOptions("a", "b", "c")

	var votes []models.Vote
	add := func(optionID string, n int) {
		for i := 0; i < n; i++ {
			votes = append(votes, models.Vote{PollID: "p1", OptionID: optionID})
		}
	}
	add("a", 45)
	add("b", 38)
	add("c", 42)

	tallies := Tally(options, votes)

	expected := []struct {
		count      int
		percentage int
	}{
		{45, 36},
		{38, 30},
		{42, 34},
	}

	for i, want := range expected {
		if tallies[i].Count != want.count {
			t.Errorf("Option %d: expected count %d, got %d", i, want.count, tallies[i].Count)
		}
		if tallies[i].Percentage != want.percentage {
			t.Errorf("Option %d: expected %d%%, got %d%%", i, want.percentage, tallies[i].Percentage)
		}
	}
}

func TestTallyRoundsHalfAwayFromZero(t *testing.T) {
	// 1 of 8 votes = 12.5% -> rounds up to 13, not down to 12.
	options := makeOptions("a", "b")
	votes := makeVotes("a", "b", "b", "b", "b", "b", "b", "b")

	tallies := Tally(options, votes)

	if tallies[0].Percentage != 13 {
		t.Errorf("Expected 12.5%% to round to 13, got %d", tallies[0].Percentage)
	}
	if tallies[1].Percentage != 88 {
		t.Errorf("Expected 87.5%% to round to 88, got %d", tallies[1].Percentage)
	}
}

func TestTallySumMayExceedHundred(t *testing.T) {
	// Rounding artifacts are accepted: 1/8 + 7/8 -> 13 + 88 = 101.
	options := makeOptions("a", "b")
	votes := makeVotes("a", "b", "b", "b", "b", "b", "b", "b")

	tallies := Tally(options, votes)

	sum := 0
	for _, tally := range tallies {
		sum += tally.Percentage
	}
	if sum != 101 {
		t.Errorf("Expected percentage sum 101 for this distribution, got %d", sum)
	}
}

func TestTallyPreservesOptionOrder(t *testing.T) {
	options := makeOptions("z", "m", "a")
	votes := makeVotes("a", "a", "m")

	tallies := Tally(options, votes)

	order := []string{"z", "m", "a"}
	for i, id := range order {
		if tallies[i].OptionID != id {
			t.Errorf("Position %d: expected option %s, got %s", i, id, tallies[i].OptionID)
		}
	}
	if tallies[0].Count != 0 || tallies[1].Count != 1 || tallies[2].Count != 2 {
		t.Errorf("Unexpected counts: %+v", tallies)
	}
}

func TestTallyIgnoresVotesForUnknownOptions(t *testing.T) {
	// Votes referencing options not in the list still contribute to the
	// total, but have no row of their own.
	options := makeOptions("a")
	votes := makeVotes("a", "ghost")

	tallies := Tally(options, votes)

	if len(tallies) != 1 {
		t.Fatalf("Expected 1 tally, got %d", len(tallies))
	}
	if tallies[0].Count != 1 {
		t.Errorf("Expected count 1, got %d", tallies[0].Count)
	}
	if tallies[0].Percentage != 50 {
		t.Errorf("Expected 50%%, got %d%%", tallies[0].Percentage)
	}
}
