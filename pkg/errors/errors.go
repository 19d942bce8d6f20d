// Package errors provides custom error types for the paybridge system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the paybridge system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrHeaderNotFound indicates that a source file has no recognizable header row
	ErrHeaderNotFound = errors.New("header row not found")

	// ErrUnsupportedIntegration indicates an integration type/provider pair
	// with no configured stages
	ErrUnsupportedIntegration = errors.New("unsupported integration")

	// ErrDependencyUnavailable indicates that an external dependency is
	// temporarily unavailable and the whole run may be retried later
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ConfigError represents a configuration error: an unknown stage function
// reference, a missing pipeline context key, or malformed process
// configuration. Configuration errors are fatal and never retried.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// SourceError represents a problem with an uploaded source file: a header
// row that cannot be located, undecodable bytes, or malformed CSV. It fails
// the single run and is surfaced to the caller as a client-input problem.
type SourceError struct {
	Provider string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("source error (%s): %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("source error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	return target == ErrHeaderNotFound && errors.Is(e.Err, ErrHeaderNotFound)
}

// NewSourceError creates a new SourceError
func NewSourceError(provider, message string, err error) *SourceError {
	return &SourceError{
		Provider: provider,
		Message:  message,
		Err:      err,
	}
}

// ValidationError represents a validation failure on request input
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// DependencyError represents a transient failure of an external dependency,
// such as the employee directory fetch exhausting its retries. Callers use
// it to choose a retryable outward signal; the pipeline itself never retries.
type DependencyError struct {
	Dependency string
	Attempts   int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *DependencyError) Error() string {
	if e.Attempts > 0 {
		return fmt.Sprintf("dependency %s unavailable after %d attempts: %s", e.Dependency, e.Attempts, e.Message)
	}
	return fmt.Sprintf("dependency %s unavailable: %s", e.Dependency, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DependencyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DependencyError) Is(target error) bool {
	return target == ErrDependencyUnavailable
}

// NewDependencyError creates a new DependencyError
func NewDependencyError(dependency string, attempts int, err error) *DependencyError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &DependencyError{
		Dependency: dependency,
		Attempts:   attempts,
		Message:    message,
		Err:        err,
	}
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ParseError represents an error when parsing configuration or data formats
type ParseError struct {
	Format  string // "json", "yaml", "csv"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// TimeoutError represents an operation timeout
type TimeoutError struct {
	Operation string
	Duration  string
	Message   string
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	if e.Duration != "" {
		return fmt.Sprintf("operation %s timed out after %s: %s", e.Operation, e.Duration, e.Message)
	}
	return fmt.Sprintf("operation %s timed out: %s", e.Operation, e.Message)
}

// Is implements errors.Is support
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(operation, duration, message string) *TimeoutError {
	return &TimeoutError{
		Operation: operation,
		Duration:  duration,
		Message:   message,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsSourceError checks if an error is a source-file error
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}

// IsDependencyUnavailable checks if an error indicates a retryable
// external-dependency failure
func IsDependencyUnavailable(err error) bool {
	return errors.Is(err, ErrDependencyUnavailable)
}

// IsHeaderNotFound checks if an error indicates a missing header row
func IsHeaderNotFound(err error) bool {
	return errors.Is(err, ErrHeaderNotFound)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
