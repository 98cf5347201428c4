package reconcile

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"
)

// Result represents the outcome of one reconciliation cycle
type Result struct {
	// Satisfied are models that were already present, in required order
	Satisfied []string

	// Pulled are models fetched during this cycle, in required order
	Pulled []string

	// Started is when the cycle began
	Started utc.Time

	// Elapsed is how long the cycle took
	Elapsed time.Duration
}

// NewResult creates an empty result stamped with the current time.
func NewResult() *Result {
	return &Result{Started: utc.Now()}
}

// finish records the cycle duration.
func (r *Result) finish() {
	r.Elapsed = time.Since(r.Started.Time)
}

// PulledCount returns the number of models pulled during the cycle
func (r *Result) PulledCount() int {
	return len(r.Pulled)
}

// Changed returns true if the cycle mutated the remote inventory
func (r *Result) Changed() bool {
	return len(r.Pulled) > 0
}

// Summary returns a human-readable summary of the cycle
func (r *Result) Summary() string {
	if r.Changed() {
		return fmt.Sprintf("reconciled %d models, pulled %d", len(r.Satisfied)+len(r.Pulled), len(r.Pulled))
	}
	return fmt.Sprintf("reconciled %d models, nothing to pull", len(r.Satisfied))
}
