// Package constants provides shared constants used throughout the model-manager
// codebase. This includes timeouts, backoff parameters, and process exit codes
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the fallback timeout for HTTP requests when no
	// per-request timeout has been configured
	DefaultHTTPTimeout = 30 * time.Second
)

// File system constants
const (
	// DirPermissions is the default permission mode for created directories
	DirPermissions = 0o755
)

// Readiness backoff constants define the retry schedule used while waiting for
// the remote API to come up. The schedule is a fixed, non-jittered exponential:
// 0.5s, 0.75s, 1.125s, ... capped at 5s.
const (
	// ReadinessInitialDelay is the delay before the second readiness attempt
	ReadinessInitialDelay = 500 * time.Millisecond

	// ReadinessBackoffMultiplier is the growth factor applied after each failed attempt
	ReadinessBackoffMultiplier = 1.5

	// ReadinessMaxDelay is the cap on the delay between readiness attempts
	ReadinessMaxDelay = 5 * time.Second
)

// Process exit codes
const (
	// ExitSuccess is returned when the requested work completed fully
	ExitSuccess = 0

	// ExitFailure is returned for reconciliation or readiness failures
	ExitFailure = 1

	// ExitConfig is returned for missing or invalid configuration
	ExitConfig = 2
)

// Console tag constants name the prefixes of the human-readable progress lines.
// These lines are informational only and are never machine-parsed.
const (
	// TagOK marks a model that was already present in the inventory
	TagOK = "[ok]"

	// TagPull marks the start of a pull for a missing model
	TagPull = "[pull]"

	// TagDone marks a pull that completed and verified
	TagDone = "[done]"

	// TagError marks a contained, retryable failure
	TagError = "[error]"

	// TagFatal marks a failure the process cannot recover from
	TagFatal = "[fatal]"
)
