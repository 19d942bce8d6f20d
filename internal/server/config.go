package server

import (
	"time"

	"github.com/agentstation/paybridge/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Addr string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Upload settings
	MaxUploadBytes int64

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8000",
		CORSEnabled:    true,
		CORSOrigins:    []string{},
		MaxUploadBytes: constants.MaxUploadBytes,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
	}
}
