// Package reconcile implements the model reconciliation control loop: wait
// for the remote API to become ready, diff the required model set against the
// server's inventory, and pull whatever is missing. The Reconciler performs a
// single cycle; the Runner drives cycles in one-shot or repeating mode.
package reconcile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tarinyoom/llm-stack/internal/ollama"
	"github.com/tarinyoom/llm-stack/pkg/errors"
	"github.com/tarinyoom/llm-stack/pkg/logging"
)

// Inventory is the remote surface the reconciler drives: list the installed
// models and pull one by name. *ollama.Client satisfies it.
type Inventory interface {
	Tags(ctx context.Context) (*ollama.TagsResponse, error)
	Pull(ctx context.Context, model string) error
}

// Reconciler ensures every required model is present in the remote inventory.
type Reconciler struct {
	inventory Inventory
	required  []string
	progress  ProgressSink
	logger    *zerolog.Logger
}

// NewReconciler creates a Reconciler for the given inventory and required set.
// The required set is pulled in order; duplicates are re-verified, never
// double-pulled.
func NewReconciler(inventory Inventory, required []string, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		inventory: inventory,
		required:  required,
		progress:  NopProgress{},
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithProgress sets the sink receiving per-model progress events.
func WithProgress(sink ProgressSink) ReconcilerOption {
	return func(r *Reconciler) {
		if sink != nil {
			r.progress = sink
		}
	}
}

// WithReconcilerLogger sets the logger for diagnostic events.
func WithReconcilerLogger(logger *zerolog.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Reconcile runs one full cycle and returns what it did. Every cycle starts
// from a freshly fetched snapshot; nothing is cached across calls.
//
// An empty required set returns errors.ErrEmptyRequiredSet. The caller
// decides whether that is fatal: one-shot runs treat it as a failed run,
// repeating runs log it and try again next cycle.
func (r *Reconciler) Reconcile(ctx context.Context) (*Result, error) {
	result := NewResult()

	if len(r.required) == 0 {
		r.progress.Fatal(errors.ErrEmptyRequiredSet.Error())
		return nil, errors.ErrEmptyRequiredSet
	}

	// Step 1: Fetch the current inventory.
	tags, err := r.inventory.Tags(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().Int("installed", len(tags.Models)).Int("required", len(r.required)).Msg("starting reconciliation cycle")

	// Step 2: Walk the required set in order, pulling what is missing.
	for _, model := range r.required {
		if tags.Has(model) {
			r.progress.Satisfied(model)
			result.Satisfied = append(result.Satisfied, model)
			continue
		}

		r.progress.Pulling(model)
		r.logger.Info().Str("model", model).Msg("pulling missing model")
		if err := r.inventory.Pull(ctx, model); err != nil {
			return nil, err
		}

		// Step 3: Re-fetch and verify before trusting the pull. The fresh
		// snapshot also serves the remaining membership checks.
		tags, err = r.inventory.Tags(ctx)
		if err != nil {
			return nil, err
		}
		if !tags.Has(model) {
			return nil, errors.NewVerificationError(model)
		}

		r.progress.Pulled(model)
		result.Pulled = append(result.Pulled, model)
	}

	result.finish()
	r.logger.Debug().Int("pulled", result.PulledCount()).Dur("elapsed", result.Elapsed).Msg("reconciliation cycle complete")
	return result, nil
}
