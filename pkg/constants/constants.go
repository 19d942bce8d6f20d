// Package constants provides shared constants used throughout the paybridge codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// DirectoryConnectTimeout is the timeout for connecting to the employee directory
	DirectoryConnectTimeout = 30 * time.Second

	// DirectoryQueryTimeout is the timeout for a single directory query
	DirectoryQueryTimeout = 30 * time.Second

	// ServerShutdownTimeout is the grace period for draining in-flight requests
	ServerShutdownTimeout = 10 * time.Second

	// DirectoryRetryDelay is the fixed delay between directory connection attempts
	DirectoryRetryDelay = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like credentials (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// DirectoryMaxRetries is the bounded retry count for directory connections
	DirectoryMaxRetries = 3

	// MaxUploadBytes is the maximum accepted source file size (2 MiB)
	MaxUploadBytes = 2 * 1024 * 1024
)
