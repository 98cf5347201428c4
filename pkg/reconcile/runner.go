package reconcile

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tarinyoom/llm-stack/pkg/errors"
	"github.com/tarinyoom/llm-stack/pkg/logging"
)

// Runner drives reconciliation cycles against one inventory. The configured
// interval picks the mode: zero or negative runs a single cycle, positive
// repeats forever with the interval between cycles.
type Runner struct {
	inventory      Inventory
	reconciler     *Reconciler
	clock          Clock
	backoff        Backoff
	startupTimeout time.Duration
	interval       time.Duration
	progress       ProgressSink
	logger         *zerolog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the wall clock, letting tests drive waits.
func WithClock(clock Clock) RunnerOption {
	return func(r *Runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithBackoff sets the readiness retry schedule.
func WithBackoff(backoff Backoff) RunnerOption {
	return func(r *Runner) {
		r.backoff = backoff
	}
}

// WithStartupTimeout bounds the readiness wait.
func WithStartupTimeout(timeout time.Duration) RunnerOption {
	return func(r *Runner) {
		r.startupTimeout = timeout
	}
}

// WithInterval sets the pause between repeating cycles. Zero or negative
// selects one-shot mode.
func WithInterval(interval time.Duration) RunnerOption {
	return func(r *Runner) {
		r.interval = interval
	}
}

// WithRunnerProgress sets the sink receiving progress and failure events.
func WithRunnerProgress(sink ProgressSink) RunnerOption {
	return func(r *Runner) {
		if sink != nil {
			r.progress = sink
		}
	}
}

// WithRunnerLogger sets the logger for diagnostic events.
func WithRunnerLogger(logger *zerolog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner reconciling the required set against the given
// inventory.
func NewRunner(inventory Inventory, required []string, opts ...RunnerOption) *Runner {
	r := &Runner{
		inventory: inventory,
		clock:     RealClock(),
		backoff:   DefaultBackoff(),
		progress:  NewConsoleProgress(nil, nil),
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.reconciler = NewReconciler(inventory, required,
		WithProgress(r.progress),
		WithReconcilerLogger(r.logger),
	)
	return r
}

// WaitReady blocks until the inventory answers a tags query or the startup
// window closes. It always makes at least one attempt, even when the window
// is already spent, and never retries after the deadline passes.
func (r *Runner) WaitReady(ctx context.Context) error {
	start := r.clock.Now()
	deadline := start.Add(r.startupTimeout)

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := r.inventory.Tags(ctx)
		if err == nil {
			r.logger.Debug().Int("attempts", attempt).Msg("api ready")
			return nil
		}

		if !r.clock.Now().Before(deadline) {
			elapsed := r.clock.Now().Sub(start)
			return errors.NewReadinessError(elapsed.String(), attempt, err)
		}

		delay := r.backoff.Delay(attempt)
		r.logger.Debug().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("api not ready")
		if err := r.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}
}

// Run waits for readiness and then reconciles per the configured mode. A
// readiness failure is returned in both modes; without a reachable API there
// is nothing to reconcile.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.WaitReady(ctx); err != nil {
		return err
	}

	if r.interval <= 0 {
		return r.runOnce(ctx)
	}
	return r.runForever(ctx)
}

// runOnce performs exactly one cycle and propagates its outcome.
func (r *Runner) runOnce(ctx context.Context) error {
	result, err := r.reconciler.Reconcile(ctx)
	if err != nil {
		return err
	}
	r.logger.Info().Str("summary", result.Summary()).Msg("reconciliation complete")
	return nil
}

// runForever repeats cycles until the context is canceled. Cycle errors are
// reported and swallowed; the next cycle starts clean.
func (r *Runner) runForever(ctx context.Context) error {
	r.logger.Info().Dur("interval", r.interval).Msg("entering reconciliation loop")

	for {
		result, err := r.reconciler.Reconcile(ctx)
		switch {
		case err == nil:
			r.logger.Debug().Str("summary", result.Summary()).Msg("cycle complete")
		case ctx.Err() != nil:
			r.logger.Info().Msg("stopping reconciliation loop")
			return nil
		case errors.IsEmptySet(err):
			// Already reported by the progress sink. Still configuration-shaped,
			// so the next cycle will fail the same way until the set changes.
			r.logger.Warn().Msg("required model set is empty")
		default:
			r.progress.Error(err)
			r.logger.Error().Err(err).Msg("reconciliation cycle failed")
		}

		if err := r.clock.Sleep(ctx, r.interval); err != nil {
			r.logger.Info().Msg("stopping reconciliation loop")
			return nil
		}
	}
}
