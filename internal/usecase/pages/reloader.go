package pages

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Reloader serializes reloads of one page view so that update floods
// cannot apply stale data. Each Run gets a generation token; starting a
// newer Run cancels the older one's context, and a Run whose token is no
// longer current discards its result instead of applying it
// (last-write-wins on the rendered state).
type Reloader[T any] struct {
	mu      sync.Mutex
	current uuid.UUID
	cancel  context.CancelFunc
}

func NewReloader[T any]() *Reloader[T] {
	return &Reloader[T]{}
}

// Run executes load under a cancellable context. The bool reports whether
// the result is still current: false means a newer reload superseded this
// one and the caller must drop the result (and any error) on the floor.
func (r *Reloader[T]) Run(ctx context.Context, load func(context.Context) (T, error)) (T, bool, error) {
	ctx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	gen := uuid.New()
	r.current = gen
	r.cancel = cancel
	r.mu.Unlock()

	result, err := load(ctx)

	r.mu.Lock()
	superseded := r.current != gen
	if !superseded {
		r.cancel = nil
		cancel()
	}
	r.mu.Unlock()

	if superseded {
		var zero T
		return zero, false, nil
	}
	return result, true, err
}
