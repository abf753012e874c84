package main

import (
	"github.com/sevigo/review-generator/internal/app"
	"github.com/sevigo/review-generator/internal/core"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app     *app.App
	cleanup func()
	err     error
}

// Carries the reviews of one submission, already rendered for the terminal.
type reviewsGeneratedMsg struct {
	set      *core.ReviewSet
	rendered string
}

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
