// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation failure codes surfaced to clients in the "code" field.
const (
	CodeEmptyTitle          = "EmptyTitle"
	CodeInsufficientOptions = "InsufficientOptions"
	CodeEndDateInPast       = "EndDateInPast"
)

// ValidationError is a client input defect. It is always recoverable
// locally and never logged as a system fault.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// Sanitize strips script blocks and then any remaining markup tags so that
// poll text can be rendered anywhere without escaping surprises.
func Sanitize(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	return tagRe.ReplaceAllString(s, "")
}

// NewPollInput is raw, untrusted poll-creation input.
type NewPollInput struct {
	Title       string
	Description string
	Options     []string
	EndsAt      *time.Time
}

// ValidatedPoll is sanitized, normalized input ready for persistence.
// Options are trimmed, deduplicated, and guaranteed to number at least two.
type ValidatedPoll struct {
	Title       string
	Description string
	Options     []string
	EndsAt      *time.Time
}

// ValidateNew sanitizes and validates poll-creation input. It is pure:
// the caller injects the current time and handles persistence.
func ValidateNew(input NewPollInput, now time.Time) (ValidatedPoll, error) {
	title := strings.TrimSpace(Sanitize(input.Title))
	if title == "" {
		return ValidatedPoll{}, &ValidationError{
			Code:    CodeEmptyTitle,
			Field:   "title",
			Message: "Poll title cannot be empty.",
		}
	}

	description := strings.TrimSpace(Sanitize(input.Description))

	// Sanitize and trim every option, dropping empties and duplicates while
	// preserving first-occurrence order.
	seen := make(map[string]bool)
	options := make([]string, 0, len(input.Options))
	for _, opt := range input.Options {
		text := strings.TrimSpace(Sanitize(opt))
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		options = append(options, text)
	}

	if len(options) < 2 {
		return ValidatedPoll{}, &ValidationError{
			Code:    CodeInsufficientOptions,
			Field:   "options",
			Message: "A poll must have at least two valid options.",
		}
	}

	if input.EndsAt != nil && !input.EndsAt.After(now) {
		return ValidatedPoll{}, &ValidationError{
			Code:    CodeEndDateInPast,
			Field:   "ends_at",
			Message: "End date cannot be in the past.",
		}
	}

	return ValidatedPoll{
		Title:       title,
		Description: description,
		Options:     options,
		EndsAt:      input.EndsAt,
	}, nil
}
