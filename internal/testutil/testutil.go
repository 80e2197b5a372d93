// Package testutil provides small helpers shared by the test suites.
package testutil

import (
	"bytes"
	"context"
	"sync"

	"github.com/vk/flowgridgo/internal/scope"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Recorder captures every event flowing through a scope while passing it
// along unchanged. Register its Pipe on the scope under test and inspect
// Events afterwards.
type Recorder[E any] struct {
	mu     sync.Mutex
	events []E
}

// Pipe returns the recording pipe.
func (r *Recorder[E]) Pipe() scope.Pipe[E] {
	return func(ctx context.Context, ev E) (E, bool, error) {
		r.mu.Lock()
		r.events = append(r.events, ev)
		r.mu.Unlock()
		return ev, true, nil
	}
}

// Events returns a copy of everything recorded so far.
func (r *Recorder[E]) Events() []E {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]E, len(r.events))
	copy(out, r.events)
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder[E]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
