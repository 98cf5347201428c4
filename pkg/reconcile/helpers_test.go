package reconcile_test

import (
	"context"
	"sync"
	"time"

	"github.com/tarinyoom/llm-stack/internal/ollama"
)

// fakeInventory implements reconcile.Inventory with function fields, so each
// test scripts exactly the remote behavior it needs.
type fakeInventory struct {
	TagsFunc func(ctx context.Context) (*ollama.TagsResponse, error)
	PullFunc func(ctx context.Context, model string) error
}

func (f *fakeInventory) Tags(ctx context.Context) (*ollama.TagsResponse, error) {
	return f.TagsFunc(ctx)
}

func (f *fakeInventory) Pull(ctx context.Context, model string) error {
	return f.PullFunc(ctx, model)
}

// tagsOf builds a listing from model names.
func tagsOf(names ...string) *ollama.TagsResponse {
	tags := &ollama.TagsResponse{}
	for _, name := range names {
		tags.Models = append(tags.Models, ollama.Tag{Model: name})
	}
	return tags
}

// remoteState is a mutable fake server inventory shared between Tags and Pull
// closures.
type remoteState struct {
	mu        sync.Mutex
	installed map[string]bool
	pulls     []string
	tagsCalls int
}

func newRemoteState(installed ...string) *remoteState {
	state := &remoteState{installed: make(map[string]bool)}
	for _, name := range installed {
		state.installed[name] = true
	}
	return state
}

func (s *remoteState) inventory() *fakeInventory {
	return &fakeInventory{
		TagsFunc: func(context.Context) (*ollama.TagsResponse, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.tagsCalls++
			names := make([]string, 0, len(s.installed))
			for name := range s.installed {
				names = append(names, name)
			}
			return tagsOf(names...), nil
		},
		PullFunc: func(_ context.Context, model string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.pulls = append(s.pulls, model)
			s.installed[model] = true
			return nil
		},
	}
}

// fakeClock advances instantly instead of sleeping. The optional onSleep hook
// sees the 1-based count of completed sleeps, letting tests cancel a context
// after a chosen number of waits.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	sleeps  []time.Duration
	onSleep func(count int)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	count := len(c.sleeps)
	hook := c.onSleep
	c.mu.Unlock()

	if hook != nil {
		hook(count)
	}
	return ctx.Err()
}

func (c *fakeClock) sleepDurations() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}
