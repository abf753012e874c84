// Package handler contains the HTTP handlers of the review form.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/sevigo/review-generator/internal/core"
)

const generationFailedMessage = "Sorry, the reviews could not be generated. Please try again."

// FormHandler serves the review form and handles its submissions.
type FormHandler struct {
	reviews core.ReviewGenerator
	page    *Page
	logger  *slog.Logger
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(reviews core.ReviewGenerator, page *Page, logger *slog.Logger) *FormHandler {
	return &FormHandler{
		reviews: reviews,
		page:    page,
		logger:  logger,
	}
}

// Show renders the empty form.
func (h *FormHandler) Show(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusOK, View{})
}

// Submit validates the posted form, generates the reviews and renders them
// below the form. Validation and generation failures are shown inline.
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("failed to parse form", "error", err)
		h.render(w, http.StatusBadRequest, View{Error: "The form could not be read."})
		return
	}

	view := View{
		Snippet:   r.PostFormValue("snippet"),
		MaxLength: strings.TrimSpace(r.PostFormValue("max_length")),
	}

	maxLength, err := parseMaxLength(view.MaxLength)
	if err != nil {
		h.renderError(w, view, err)
		return
	}

	set, err := h.reviews.Generate(r.Context(), core.UserRequest{
		Snippet:   view.Snippet,
		MaxLength: maxLength,
	})
	if err != nil {
		h.renderError(w, view, err)
		return
	}

	view.Reviews = set.Reviews
	h.render(w, http.StatusOK, view)
}

func (h *FormHandler) renderError(w http.ResponseWriter, view View, err error) {
	var vErr *core.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.logger.Info("rejected form submission", "field", vErr.Field, "reason", vErr.Reason)
		view.Error = vErr.Error()
		view.ErrorField = vErr.Field
		h.render(w, http.StatusUnprocessableEntity, view)
	case errors.Is(err, core.ErrValidation):
		h.logger.Info("rejected form submission", "error", err)
		view.Error = err.Error()
		h.render(w, http.StatusUnprocessableEntity, view)
	default:
		h.logger.Error("review generation failed", "error", err)
		view.Error = generationFailedMessage
		h.render(w, http.StatusBadGateway, view)
	}
}

func (h *FormHandler) render(w http.ResponseWriter, status int, view View) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.page.Render(w, view); err != nil {
		h.logger.Error("failed to render form page", "error", err)
	}
}

func parseMaxLength(raw string) (int, error) {
	if raw == "" {
		return 0, &core.ValidationError{Field: "max_length", Reason: "please enter a maximum length"}
	}
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &core.ValidationError{
			Field:  "max_length",
			Reason: fmt.Sprintf("must be between %d and %d", core.MinMaxLength, core.MaxMaxLength),
		}
	}
	if err != nil {
		return 0, &core.ValidationError{Field: "max_length", Reason: "must be a whole number"}
	}
	return n, nil
}
