package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/sevigo/review-generator/internal/app"
	"github.com/sevigo/review-generator/internal/core"
	"github.com/sevigo/review-generator/internal/wire"
)

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		app, cleanup, err := wire.InitializeApp(context.Background())
		if err != nil {
			return appInitializedMsg{err: err}
		}
		return appInitializedMsg{app: app, cleanup: cleanup}
	}
}

func generateReviewsCmd(app *app.App, req core.UserRequest, width int) tea.Cmd {
	return func() tea.Msg {
		set, err := app.Reviews.Generate(context.Background(), req)
		if err != nil {
			return errorMsg{err}
		}

		rendered, err := renderReviews(app.Content, set, width)
		if err != nil {
			app.Logger.Warn("failed to render reviews as markdown, showing plain text", "error", err)
			rendered = reviewsMarkdown(app.Content, set)
		}
		return reviewsGeneratedMsg{set: set, rendered: rendered}
	}
}

// reviewsMarkdown lays out a review set as one markdown document.
func reviewsMarkdown(content *core.FormContent, set *core.ReviewSet) string {
	var b strings.Builder
	for _, review := range set.Reviews {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", content.HeadingFor(review), strings.TrimSpace(review.Text))
	}
	return b.String()
}

func renderReviews(content *core.FormContent, set *core.ReviewSet, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(reviewsMarkdown(content, set))
}
