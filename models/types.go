package models

import "time"

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Options     []string   `json:"options"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id"`
}

// Response types

type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type LoginResponse struct {
	User User `json:"user"`
}

type DashboardStatsResponse struct {
	TotalPolls      int     `json:"total_polls"`
	TotalVotes      int     `json:"total_votes"`
	ActivePolls     int     `json:"active_polls"`
	AvgVotesPerPoll float64 `json:"avg_votes_per_poll"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	Token     string    `json:"-"` // Never expose in JSON
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Poll struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

type Option struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Text   string `json:"text"`
}

type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PollDetail is a poll together with its options and votes, the unit the
// store returns on read paths. Vote counts are derived from Votes at render
// time, never stored on options.
type PollDetail struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
	Votes   []Vote   `json:"votes"`
}

// OptionTally is the derived count and percentage for one option.
type OptionTally struct {
	OptionID   string `json:"option_id"`
	Text       string `json:"text"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// PollView is the rendered form of a poll: detail plus derived tallies and
// the viewer-specific lifecycle flags.
type PollView struct {
	Poll       Poll          `json:"poll"`
	Options    []Option      `json:"options"`
	Tally      []OptionTally `json:"tally"`
	TotalVotes int           `json:"total_votes"`
	IsExpired  bool          `json:"is_expired"`
	HasVoted   bool          `json:"has_voted"`
	CanVote    bool          `json:"can_vote"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
