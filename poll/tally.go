// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"math"

	"github.com/pollbase/pollbase/models"
)

// Tally computes per-option vote counts and percentages. Output order
// matches the input option order so rendering stays stable.
//
// Percentages round to the nearest integer with halves rounded away from
// zero (math.Round). They are not normalized to sum to exactly 100: with
// rounding artifacts the sum may land on 99 or 101, which is accepted.
// With zero votes every option reports 0%.
func Tally(options []models.Option, votes []models.Vote) []models.OptionTally {
	counts := make(map[string]int, len(options))
	for _, v := range votes {
		counts[v.OptionID]++
	}

	total := len(votes)
	tallies := make([]models.OptionTally, len(options))
	for i, opt := range options {
		count := counts[opt.ID]
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(100 * float64(count) / float64(total)))
		}
		tallies[i] = models.OptionTally{
			OptionID:   opt.ID,
			Text:       opt.Text,
			Count:      count,
			Percentage: percentage,
		}
	}

	return tallies
}
