// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import "strconv"

const (
	// MinMaxLength and MaxMaxLength bound the user-supplied generation length.
	MinMaxLength = 1
	MaxMaxLength = 300

	// ReviewsPerRequest is the number of synthetic reviews produced per submission.
	ReviewsPerRequest = 3

	// MaxSnippetRunes caps the seed text accepted from the form.
	MaxSnippetRunes = 500
)

// UserRequest is a single form submission. It lives for one render cycle.
type UserRequest struct {
	Snippet   string
	MaxLength int
}

// GenerationConfig carries every knob of a single generation call.
// It is passed by value so each call sees exactly what the user asked for.
type GenerationConfig struct {
	// MaxLength is the maximum number of tokens generated after the snippet.
	MaxLength int
}

// GeneratedReview is one synthetic review.
type GeneratedReview struct {
	Ordinal int
	Text    string
}

// Label returns the review's ordinal label, e.g. "1st" or "2nd".
func (r GeneratedReview) Label() string {
	return Ordinal(r.Ordinal)
}

// ReviewSet is the result of one submission.
type ReviewSet struct {
	Request UserRequest
	Reviews []GeneratedReview
}

// Ordinal formats n with its English ordinal suffix.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
