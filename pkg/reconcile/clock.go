package reconcile

import (
	"context"
	"time"
)

// Clock abstracts wall time so the runner's waits can be driven by tests
// without real sleeping.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep pauses for the given duration or until the context is done,
	// returning the context error in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// realClock is the runtime-backed Clock.
type realClock struct{}

// RealClock returns a Clock backed by the runtime clock.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
