package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/sevigo/goframe/llms"

	"github.com/sevigo/review-generator/internal/core"
)

const readinessPrompt = "Reply with the single word OK."

// ModelCompleter adapts a GoFrame LLM to the core.Completer interface.
type ModelCompleter struct {
	model llms.Model
}

// NewModelCompleter wraps an initialized GoFrame model.
func NewModelCompleter(model llms.Model) core.Completer {
	return &ModelCompleter{model: model}
}

// Complete sends a single prompt to the model.
func (c *ModelCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return c.model.Call(ctx, prompt)
}

// CheckBackend makes one short call to the generating model, so an unreachable
// host or a model that is not pulled fails at startup instead of on the first
// submission. Failures wrap core.ErrModelLoad.
func CheckBackend(ctx context.Context, completer core.Completer, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := completer.Complete(ctx, readinessPrompt); err != nil {
		return fmt.Errorf("%w: generator model is not ready: %w", core.ErrModelLoad, err)
	}
	return nil
}
