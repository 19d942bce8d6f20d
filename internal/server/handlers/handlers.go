// Package handlers provides HTTP request handlers for the paybridge API.
package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/paybridge/internal/integrations"
	"github.com/agentstation/paybridge/pkg/pipeline"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	stages         pipeline.Config
	registry       *pipeline.Registry
	fetcher        integrations.DirectoryFetcher
	logger         *zerolog.Logger
	maxUploadBytes int64
	startTime      time.Time
}

// New creates a new Handlers instance.
func New(
	stages pipeline.Config,
	registry *pipeline.Registry,
	fetcher integrations.DirectoryFetcher,
	logger *zerolog.Logger,
	maxUploadBytes int64,
	startTime time.Time,
) *Handlers {
	return &Handlers{
		stages:         stages,
		registry:       registry,
		fetcher:        fetcher,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
		startTime:      startTime,
	}
}
