// Package app holds the long-lived components of the review generator and
// controls their lifecycle.
package app

import (
	"log/slog"

	"github.com/sevigo/review-generator/internal/config"
	"github.com/sevigo/review-generator/internal/core"
	"github.com/sevigo/review-generator/internal/llm"
	"github.com/sevigo/review-generator/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg     *config.Config
	Assets  *llm.ModelAssets
	Content *core.FormContent
	Reviews core.ReviewGenerator
	Logger  *slog.Logger

	server *server.Server
}

// NewApp assembles the application from its already constructed parts.
func NewApp(
	cfg *config.Config,
	assets *llm.ModelAssets,
	content *core.FormContent,
	reviews core.ReviewGenerator,
	srv *server.Server,
	logger *slog.Logger,
) *App {
	return &App{
		Cfg:     cfg,
		Assets:  assets,
		Content: content,
		Reviews: reviews,
		Logger:  logger,
		server:  srv,
	}
}

// Start runs the HTTP server.
func (a *App) Start() error {
	a.Logger.Info("starting review generator",
		"server_port", a.Cfg.Server.Port,
		"llm_provider", a.Cfg.AI.LLMProvider,
		"generator_model", a.Cfg.AI.GeneratorModel,
		"model_type", a.Assets.ModelType)

	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.Logger.Info("shutting down review generator")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.Logger.Info("review generator stopped successfully")
	return nil
}
