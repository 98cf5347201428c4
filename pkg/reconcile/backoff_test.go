package reconcile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tarinyoom/llm-stack/pkg/reconcile"
)

func TestBackoffDelay(t *testing.T) {
	backoff := reconcile.DefaultBackoff()

	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{"first failure", 1, 500 * time.Millisecond},
		{"second failure", 2, 750 * time.Millisecond},
		{"third failure", 3, 1125 * time.Millisecond},
		{"fourth failure", 4, 1687500 * time.Microsecond},
		{"sixth failure", 6, 3796875 * time.Microsecond},
		{"capped", 7, 5 * time.Second},
		{"far past the cap", 50, 5 * time.Second},
		{"zero clamps to first", 0, 500 * time.Millisecond},
		{"negative clamps to first", -3, 500 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, backoff.Delay(tc.attempt))
		})
	}
}

func TestBackoffDeterministic(t *testing.T) {
	backoff := reconcile.DefaultBackoff()

	// Same attempt count, same delay, no jitter.
	for attempt := 1; attempt <= 10; attempt++ {
		first := backoff.Delay(attempt)
		second := backoff.Delay(attempt)
		assert.Equal(t, first, second, "attempt %d", attempt)
	}
}

func TestBackoffMonotonicUntilCap(t *testing.T) {
	backoff := reconcile.DefaultBackoff()

	previous := time.Duration(0)
	for attempt := 1; attempt <= 20; attempt++ {
		delay := backoff.Delay(attempt)
		assert.GreaterOrEqual(t, delay, previous, "attempt %d", attempt)
		assert.LessOrEqual(t, delay, 5*time.Second, "attempt %d", attempt)
		previous = delay
	}
}

func TestBackoffCustomSchedule(t *testing.T) {
	backoff := reconcile.Backoff{
		Initial:    time.Second,
		Multiplier: 2,
		Max:        8 * time.Second,
	}

	assert.Equal(t, time.Second, backoff.Delay(1))
	assert.Equal(t, 2*time.Second, backoff.Delay(2))
	assert.Equal(t, 4*time.Second, backoff.Delay(3))
	assert.Equal(t, 8*time.Second, backoff.Delay(4))
	assert.Equal(t, 8*time.Second, backoff.Delay(5))
}
