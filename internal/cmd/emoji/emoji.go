// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output provide a consistent visual language across commands.
// These symbols are used for status indicators, alerts, and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: present models, completed pulls, passing checks.
	Success = "✓"

	// Error represents failures or missing requirements.
	// Used for: missing models, failed pulls, unreachable servers.
	Error = "✗"

	// Stop represents critical stops, shutdowns, or blocking conditions.
	// Used for: graceful shutdowns, stop signals, blocking errors.
	Stop = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: empty required sets, skipped cycles.
	Warning = "!"

	// Info represents informational messages.
	// Used for: general information, tips, context.
	Info = "i"
)
