// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"time"

	"github.com/pollbase/pollbase/models"
)

// DashboardStats aggregates a set of polls for the dashboard header.
type DashboardStats struct {
	TotalPolls      int
	TotalVotes      int
	ActivePolls     int
	AvgVotesPerPoll float64
}

// ComputeDashboard derives dashboard statistics from polls with their
// votes. A poll is active when it has no end date or its end date is still
// in the future. With zero polls the average is 0, not a division fault.
func ComputeDashboard(polls []models.PollDetail, now time.Time) DashboardStats {
	var stats DashboardStats
	stats.TotalPolls = len(polls)

	for _, p := range polls {
		stats.TotalVotes += len(p.Votes)
		if p.Poll.EndsAt == nil || p.Poll.EndsAt.After(now) {
			stats.ActivePolls++
		}
	}

	if stats.TotalPolls > 0 {
		stats.AvgVotesPerPoll = float64(stats.TotalVotes) / float64(stats.TotalPolls)
	}

	return stats
}
