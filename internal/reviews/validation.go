package reviews

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sevigo/review-generator/internal/core"
)

// Validate checks a submission against the form's declared bounds before any
// generation call is made.
func Validate(req core.UserRequest) error {
	if strings.TrimSpace(req.Snippet) == "" {
		return &core.ValidationError{Field: "snippet", Reason: "please enter a text snippet to continue"}
	}
	if n := utf8.RuneCountInString(req.Snippet); n > core.MaxSnippetRunes {
		return &core.ValidationError{
			Field:  "snippet",
			Reason: fmt.Sprintf("must be at most %d characters, got %d", core.MaxSnippetRunes, n),
		}
	}
	if req.MaxLength < core.MinMaxLength || req.MaxLength > core.MaxMaxLength {
		return &core.ValidationError{
			Field:  "max_length",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", core.MinMaxLength, core.MaxMaxLength, req.MaxLength),
		}
	}
	return nil
}
