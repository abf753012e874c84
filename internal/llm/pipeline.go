// Package llm provides the text-generation pipeline: prompt construction,
// model calls and length control over a pretrained tokenizer.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sevigo/review-generator/internal/config"
	"github.com/sevigo/review-generator/internal/core"
)

// Pipeline continues a snippet with a language model. It is safe for
// concurrent use; all of its state is read-only after construction.
type Pipeline struct {
	completer     core.Completer
	promptMgr     *PromptManager
	provider      ModelProvider
	tokenizer     Tokenizer
	contextWindow int
	timeout       time.Duration
	logger        *slog.Logger
}

var _ core.TextGenerator = (*Pipeline)(nil)

// NewPipeline creates the generation pipeline from the loaded model assets and backend.
func NewPipeline(cfg *config.Config, assets *ModelAssets, promptMgr *PromptManager, completer core.Completer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		completer:     completer,
		promptMgr:     promptMgr,
		provider:      ModelProvider(cfg.AI.LLMProvider),
		tokenizer:     assets.Tokenizer,
		contextWindow: assets.ContextWindow,
		timeout:       cfg.AI.GenerationTimeout,
		logger:        logger,
	}
}

// Generate returns the snippet followed by a model-written continuation of at
// most cfg.MaxLength tokens.
func (p *Pipeline) Generate(ctx context.Context, snippet string, cfg core.GenerationConfig) (string, error) {
	if strings.TrimSpace(snippet) == "" {
		return "", &core.ValidationError{Field: "snippet", Reason: "cannot be empty"}
	}
	if cfg.MaxLength < core.MinMaxLength || cfg.MaxLength > core.MaxMaxLength {
		return "", &core.ValidationError{
			Field:  "max_length",
			Reason: fmt.Sprintf("must be between %d and %d", core.MinMaxLength, core.MaxMaxLength),
		}
	}

	if err := p.checkContextWindow(snippet, cfg.MaxLength); err != nil {
		return "", err
	}

	prompt, err := p.promptMgr.Render(ContinuationPrompt, p.provider, ContinuationData{
		Snippet:   snippet,
		MaxLength: cfg.MaxLength,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to render prompt: %w", core.ErrGeneration, err)
	}

	start := time.Now()
	reply, err := p.generateWithTimeout(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrGeneration, err)
	}

	continuation := parseContinuation(reply, snippet)
	continuation, err = p.tokenizer.Truncate(continuation, cfg.MaxLength)
	if err != nil {
		return "", fmt.Errorf("%w: failed to apply max length: %w", core.ErrGeneration, err)
	}

	text := joinContinuation(snippet, continuation)
	p.logger.Debug("continuation generated",
		"snippet_runes", utf8.RuneCountInString(snippet),
		"max_length", cfg.MaxLength,
		"reply_bytes", len(reply),
		"duration", time.Since(start),
	)
	return text, nil
}

// checkContextWindow rejects requests the model cannot attend to in full.
func (p *Pipeline) checkContextWindow(snippet string, maxLength int) error {
	if p.contextWindow <= 0 {
		return nil
	}
	n, err := p.tokenizer.CountTokens(snippet)
	if err != nil {
		return fmt.Errorf("%w: failed to tokenize snippet: %w", core.ErrGeneration, err)
	}
	if n+maxLength > p.contextWindow {
		return &core.ValidationError{
			Field:  "snippet",
			Reason: fmt.Sprintf("%d tokens plus max length %d exceed the model's context window of %d", n, maxLength, p.contextWindow),
		}
	}
	return nil
}

// generateWithTimeout wraps the model call with a hard timeout.
func (p *Pipeline) generateWithTimeout(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := p.completer.Complete(ctx, prompt)
		resultCh <- result{resp, err}
	}()

	select {
	case res := <-resultCh:
		return res.resp, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("model did not answer within %s: %w", p.timeout, ctx.Err())
		}
		return "", ctx.Err()
	}
}
