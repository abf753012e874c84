// Package server implements the HTTP server for the application.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sevigo/review-generator/internal/config"
	"github.com/sevigo/review-generator/internal/core"
	"github.com/sevigo/review-generator/internal/server/handler"
)

const (
	requestOverhead = 15 * time.Second
	shutdownTimeout = 30 * time.Second
)

// Server wraps an HTTP server with graceful shutdown capabilities.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server serving the review form.
func NewServer(cfg *config.Config, forms *handler.FormHandler, logger *slog.Logger) *Server {
	requestTimeout := RequestTimeout(cfg.AI.GenerationTimeout)
	router := NewRouter(forms, requestTimeout)

	return &Server{
		server: &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      requestTimeout + 5*time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// RequestTimeout is the time one submission may take: every review of the
// set gets a full generation timeout.
func RequestTimeout(generationTimeout time.Duration) time.Duration {
	return time.Duration(core.ReviewsPerRequest)*generationTimeout + requestOverhead
}

// Start starts the HTTP server and blocks until shutdown or error.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server with a 30-second timeout.
func (s *Server) Stop() error {
	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
