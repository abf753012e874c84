// Package wire builds the application's dependency graph.
package wire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/review-generator/internal/app"
	"github.com/sevigo/review-generator/internal/config"
	"github.com/sevigo/review-generator/internal/core"
	"github.com/sevigo/review-generator/internal/llm"
	"github.com/sevigo/review-generator/internal/logger"
	"github.com/sevigo/review-generator/internal/reviews"
	"github.com/sevigo/review-generator/internal/server"
	"github.com/sevigo/review-generator/internal/server/handler"
)

// GenerationSet provides everything needed to turn a request into reviews.
var GenerationSet = wire.NewSet(
	provideModelAssets,
	provideGeneratorLLM,
	provideCompleter,
	llm.NewPromptManager,
	llm.NewPipeline,
	wire.Bind(new(core.TextGenerator), new(*llm.Pipeline)),
	reviews.NewService,
	wire.Bind(new(core.ReviewGenerator), new(*reviews.Service)),
)

// AppSet is the full graph of the web application.
var AppSet = wire.NewSet(
	config.LoadConfig,
	provideLogger,
	GenerationSet,
	provideFormContent,
	handler.NewPage,
	handler.NewFormHandler,
	server.NewServer,
	app.NewApp,
)

func provideLogger(cfg *config.Config) (*slog.Logger, func()) {
	output, closeOutput := logger.OpenOutput(cfg.Logging)
	return logger.NewLogger(cfg.Logging, output), closeOutput
}

func provideModelAssets(cfg *config.Config, logger *slog.Logger) (*llm.ModelAssets, error) {
	return llm.LoadModelAssets(cfg.AI.ModelPath, logger)
}

func provideFormContent(cfg *config.Config, logger *slog.Logger) (*core.FormContent, error) {
	content, err := config.LoadFormContent(cfg.FormContentPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		logger.Warn("form content file not found, using defaults", "path", cfg.FormContentPath)
		return content, nil
	}
	return content, err
}

func provideGeneratorLLM(ctx context.Context, cfg *config.Config, logger *slog.Logger) (llms.Model, error) {
	var (
		model llms.Model
		err   error
	)
	switch cfg.AI.LLMProvider {
	case config.ProviderGemini:
		if cfg.AI.GeminiAPIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", core.ErrModelLoad)
		}
		model, err = gemini.New(ctx, gemini.WithModel(cfg.AI.GeneratorModel), gemini.WithAPIKey(cfg.AI.GeminiAPIKey))
	case config.ProviderOllama:
		model, err = ollama.New(
			ollama.WithServerURL(cfg.AI.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient(cfg.AI.GenerationTimeout)),
			ollama.WithModel(cfg.AI.GeneratorModel),
			ollama.WithLogger(logger),
		)
	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", core.ErrModelLoad, cfg.AI.LLMProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create %s client: %w", core.ErrModelLoad, cfg.AI.LLMProvider, err)
	}
	return model, nil
}

// provideCompleter wraps the generating model and checks that it answers.
func provideCompleter(ctx context.Context, cfg *config.Config, model llms.Model, logger *slog.Logger) (core.Completer, error) {
	completer := llm.NewModelCompleter(model)

	logger.Info("checking generator model", "provider", cfg.AI.LLMProvider, "model", cfg.AI.GeneratorModel)
	if err := llm.CheckBackend(ctx, completer, cfg.AI.GenerationTimeout); err != nil {
		return nil, err
	}
	return completer, nil
}

// newOllamaHTTPClient creates an HTTP client for Ollama. The pipeline enforces
// the per-call deadline; the client timeout only guards against a stuck connection.
func newOllamaHTTPClient(generationTimeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: generationTimeout + time.Minute,
	}
}
