// Package server provides the HTTP server for the paybridge API: upload,
// validation, and download endpoints over the payroll transformation
// pipeline.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/paybridge/internal/integrations"
	"github.com/agentstation/paybridge/pkg/constants"
	"github.com/agentstation/paybridge/pkg/pipeline"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	stages    pipeline.Config
	registry  *pipeline.Registry
	fetcher   integrations.DirectoryFetcher
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(stages pipeline.Config, fetcher integrations.DirectoryFetcher, logger *zerolog.Logger, cfg Config) *Server {
	if cfg.MaxUploadBytes == 0 {
		cfg.MaxUploadBytes = constants.MaxUploadBytes
	}
	return &Server{
		stages:    stages,
		registry:  integrations.NewRegistry(fetcher),
		fetcher:   fetcher,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// ListenAndServe runs the server until the context is canceled, then drains
// in-flight requests within the shutdown grace period.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.config.Addr).Msg("HTTP server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
