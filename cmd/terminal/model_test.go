package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-generator/internal/core"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		length  string
		want    core.UserRequest
		wantErr bool
	}{
		{name: "Valid", snippet: "The pasta was", length: "50", want: core.UserRequest{Snippet: "The pasta was", MaxLength: 50}},
		{name: "Padded length", snippet: "Great", length: " 7 ", want: core.UserRequest{Snippet: "Great", MaxLength: 7}},
		{name: "Out of range is left to the service", snippet: "Great", length: "301", want: core.UserRequest{Snippet: "Great", MaxLength: 301}},
		{name: "Not a number", snippet: "Great", length: "abc", wantErr: true},
		{name: "Empty length", snippet: "Great", length: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseForm(tt.snippet, tt.length)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "max_length: must be a whole number",
		describeError(&core.ValidationError{Field: "max_length", Reason: "must be a whole number"}))
	assert.True(t, strings.HasPrefix(
		describeError(fmt.Errorf("%w: timeout", core.ErrGeneration)), "review generation failed"))
	assert.Contains(t, describeError(errors.New("boom")), "boom")
}

func TestReviewsMarkdown(t *testing.T) {
	set := &core.ReviewSet{Reviews: []core.GeneratedReview{
		{Ordinal: 1, Text: "The pasta was great. "},
		{Ordinal: 2, Text: "The pasta was cold."},
		{Ordinal: 3, Text: "The pasta was fine."},
	}}

	md := reviewsMarkdown(core.DefaultFormContent(), set)
	assert.Contains(t, md, "## Your 1st synthetic review:\n\nThe pasta was great.\n")
	assert.Contains(t, md, "## Your 3rd synthetic review:")
	assert.Equal(t, 3, strings.Count(md, "## "))

	custom := core.DefaultFormContent()
	custom.ReviewHeading = "Draft %s"
	md = reviewsMarkdown(custom, set)
	assert.Contains(t, md, "## Draft 2nd\n\nThe pasta was cold.\n")
	assert.NotContains(t, md, "synthetic review")
}

func TestGetThemeFallsBackToCyan(t *testing.T) {
	assert.Equal(t, GetTheme(ThemeCyan).title.GetForeground(), GetTheme("unknown").title.GetForeground())
	assert.Len(t, ListThemes(), len(palettes))
}
