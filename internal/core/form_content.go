package core

import (
	"fmt"
	"strings"
)

// NotebookURL links the notebook with the model's training code.
const NotebookURL = "https://calendar.google.com/calendar/u/0/r/week"

// FormContent holds the static copy shown on the review form.
type FormContent struct {
	Title string `yaml:"title"`

	// Description is rendered as markdown.
	Description string `yaml:"description"`

	SnippetLabel string `yaml:"snippet_label"`
	LengthLabel  string `yaml:"length_label"`
	SubmitLabel  string `yaml:"submit_label"`

	// ReviewHeading must contain exactly one %s, replaced by the ordinal label.
	ReviewHeading string `yaml:"review_heading"`
}

// DefaultFormContent returns the stock page copy.
func DefaultFormContent() *FormContent {
	return &FormContent{
		Title: "Yelp Food Review Generator",
		Description: "In this app, you can generate synthetic reviews for restaurants " +
			"using transfer learning from the OpenAI GPT-2 model.\n\n" +
			"Notebook for detailed code: [Notebook](" + NotebookURL + ")",
		SnippetLabel:  "Please input your text snippet for the review.",
		LengthLabel:   fmt.Sprintf("Please input the maximum length of review you want to generate (%d to %d tokens, roughly one word each).", MinMaxLength, MaxMaxLength),
		SubmitLabel:   "Generate Review",
		ReviewHeading: "Your %s synthetic review:",
	}
}

// Validate rejects copy that cannot be rendered.
func (c *FormContent) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if strings.TrimSpace(c.SubmitLabel) == "" {
		return fmt.Errorf("submit_label cannot be empty")
	}
	if n := strings.Count(c.ReviewHeading, "%s"); n != 1 || strings.Count(c.ReviewHeading, "%") != 1 {
		return fmt.Errorf("review_heading must contain exactly one %%s placeholder, got %q", c.ReviewHeading)
	}
	return nil
}

// HeadingFor returns the section heading of a generated review.
func (c *FormContent) HeadingFor(r GeneratedReview) string {
	return fmt.Sprintf(c.ReviewHeading, r.Label())
}
