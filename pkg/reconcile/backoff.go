package reconcile

import (
	"math"
	"time"

	"github.com/tarinyoom/llm-stack/pkg/constants"
)

// Backoff computes the pause before each readiness retry. The schedule is a
// plain exponential without jitter, so a given attempt count always produces
// the same delay.
type Backoff struct {
	// Initial is the delay after the first failed attempt
	Initial time.Duration

	// Multiplier grows the delay after each subsequent failure
	Multiplier float64

	// Max caps the delay
	Max time.Duration
}

// DefaultBackoff returns the readiness schedule: 0.5s growing 1.5x per
// failure, capped at 5s.
func DefaultBackoff() Backoff {
	return Backoff{
		Initial:    constants.ReadinessInitialDelay,
		Multiplier: constants.ReadinessBackoffMultiplier,
		Max:        constants.ReadinessMaxDelay,
	}
}

// Delay returns the pause after the given failed attempt, counted from 1.
// Attempt 1 waits Initial, attempt 2 waits Initial*Multiplier, and so on up
// to Max.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := float64(b.Initial) * math.Pow(b.Multiplier, float64(attempt-1))
	if capped := float64(b.Max); delay > capped {
		delay = capped
	}
	return time.Duration(delay)
}
