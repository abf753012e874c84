// Package reviews turns a form submission into a set of synthetic restaurant reviews.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sevigo/review-generator/internal/core"
)

// Service implements core.ReviewGenerator on top of a text generator.
type Service struct {
	generator core.TextGenerator
	count     int
	logger    *slog.Logger
}

var _ core.ReviewGenerator = (*Service)(nil)

// NewService creates a review service producing core.ReviewsPerRequest reviews per submission.
func NewService(generator core.TextGenerator, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		count:     core.ReviewsPerRequest,
		logger:    logger,
	}
}

// Generate validates the request and runs the generator once per review, in
// sequence, with the same snippet and configuration. The first failure aborts
// the set; there are no retries.
func (s *Service) Generate(ctx context.Context, req core.UserRequest) (*core.ReviewSet, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	submissionID := uuid.NewString()
	logger := s.logger.With("submission_id", submissionID)
	logger.Info("generating reviews", "max_length", req.MaxLength, "count", s.count)

	cfg := core.GenerationConfig{MaxLength: req.MaxLength}
	set := &core.ReviewSet{
		Request: req,
		Reviews: make([]core.GeneratedReview, 0, s.count),
	}

	start := time.Now()
	for i := 1; i <= s.count; i++ {
		text, err := s.generator.Generate(ctx, req.Snippet, cfg)
		if err != nil {
			logger.Error("review generation failed", "review", i, "error", err)
			if errors.Is(err, core.ErrValidation) || errors.Is(err, core.ErrGeneration) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", core.ErrGeneration, err)
		}
		if text == "" {
			logger.Error("generator returned an empty review", "review", i)
			return nil, fmt.Errorf("%w: %s review is empty", core.ErrGeneration, core.Ordinal(i))
		}
		set.Reviews = append(set.Reviews, core.GeneratedReview{Ordinal: i, Text: text})
	}

	logger.Info("reviews generated", "count", len(set.Reviews), "duration", time.Since(start))
	return set, nil
}
