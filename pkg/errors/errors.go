// Package errors provides custom error types for the model-manager system.
// These errors separate fatal configuration problems from retryable remote
// failures, so callers can pick exit behavior programmatically instead of
// matching on message strings.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the model-manager system
var (
	// ErrEmptyRequiredSet indicates the required model set parsed to zero names.
	// The condition is configuration-shaped but surfaces per reconciliation
	// cycle; the loop driver decides whether it is fatal.
	ErrEmptyRequiredSet = errors.New("required model set is empty")

	// ErrNotReady indicates the remote API never answered within the startup window
	ErrNotReady = errors.New("api not ready")

	// ErrMissingConfig indicates a required configuration value was not provided
	ErrMissingConfig = errors.New("missing configuration")

	// ErrAPIUnavailable indicates the remote API is temporarily unavailable
	ErrAPIUnavailable = errors.New("api unavailable")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// ConfigError represents an invalid or missing environment value. Config
// errors are fatal in every mode and terminate the process with exit code 2.
type ConfigError struct {
	Variable string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Variable, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(variable, message string, err error) *ConfigError {
	return &ConfigError{
		Variable: variable,
		Message:  message,
		Err:      err,
	}
}

// APIError represents a failed call to the model-serving API: a non-2xx
// status, a transport failure, or a request timeout. API errors abort at most
// the current reconciliation cycle and are retried on the next one.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 0 || e.StatusCode >= 500 {
		return target == ErrAPIUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// VerificationError indicates a pull reported success but the model is still
// absent from a freshly fetched inventory. It carries the same retry semantics
// as a transport failure.
type VerificationError struct {
	Model string
}

// Error implements the error interface
func (e *VerificationError) Error() string {
	return fmt.Sprintf("model %s missing from inventory after pull", e.Model)
}

// NewVerificationError creates a new VerificationError
func NewVerificationError(model string) *VerificationError {
	return &VerificationError{Model: model}
}

// ParseError represents malformed data received from the remote API
type ParseError struct {
	Format   string // "json"
	Endpoint string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("%s parse error from %s: %s", e.Format, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, endpoint, message string, err error) *ParseError {
	return &ParseError{
		Format:   format,
		Endpoint: endpoint,
		Message:  message,
		Err:      err,
	}
}

// ReadinessError indicates the startup wait exhausted its deadline. It wraps
// the error from the final probe attempt.
type ReadinessError struct {
	Elapsed  string
	Attempts int
	Err      error
}

// Error implements the error interface
func (e *ReadinessError) Error() string {
	return fmt.Sprintf("api not ready after %s (%d attempts): %v", e.Elapsed, e.Attempts, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ReadinessError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ReadinessError) Is(target error) bool {
	return target == ErrNotReady
}

// NewReadinessError creates a new ReadinessError
func NewReadinessError(elapsed string, attempts int, err error) *ReadinessError {
	return &ReadinessError{
		Elapsed:  elapsed,
		Attempts: attempts,
		Err:      err,
	}
}

// Helper functions for error checking

// IsConfig checks if an error is a fatal configuration error
func IsConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsEmptySet checks if an error is the empty-required-set condition
func IsEmptySet(err error) bool {
	return errors.Is(err, ErrEmptyRequiredSet)
}

// IsNotReady checks if an error is a readiness deadline failure
func IsNotReady(err error) bool {
	return errors.Is(err, ErrNotReady)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsRetryable checks if an error is a transient remote failure: a transport
// or protocol error, or a post-pull verification miss. Retryable errors abort
// a single cycle and clear on the next successful pass.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return true
	}
	var verifyErr *VerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	return errors.Is(err, ErrTimeout)
}

// Helper wrapping functions for common patterns

// WrapAPI wraps an error as an APIError
func WrapAPI(endpoint string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, endpoint, err.Error(), err)
}
