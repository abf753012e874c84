package core

import "context"

//go:generate mockgen -destination=../../mocks/mock_generator.go -package=mocks . Completer,TextGenerator,ReviewGenerator

// Completer sends a fully rendered prompt to a language model and returns its raw reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextGenerator continues a seed string using a pre-trained language model.
// Implementations must return text that starts with the seed.
type TextGenerator interface {
	Generate(ctx context.Context, snippet string, cfg GenerationConfig) (string, error)
}

// ReviewGenerator turns one form submission into a set of synthetic reviews.
type ReviewGenerator interface {
	Generate(ctx context.Context, req UserRequest) (*ReviewSet, error)
}
