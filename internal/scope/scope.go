package scope

import (
	"context"
	"sync"

	"github.com/vk/flowgridgo/internal/ctxlog"
)

// Pipe is a single subscriber in a scope's chain. It receives the event
// produced by the previous pipe and returns the event to hand to the next
// one. Returning false stops the chain; returning an error aborts it.
type Pipe[E any] func(ctx context.Context, ev E) (E, bool, error)

// Scope is a named, ordered chain of pipes. The zero value is not usable;
// construct with New or Nested.
type Scope[E any] struct {
	name   string
	parent *Scope[E]

	mu    sync.RWMutex
	pipes []Pipe[E]
}

// New creates an empty root scope. The name is used for diagnostics only.
func New[E any](name string) *Scope[E] {
	return &Scope[E]{name: name}
}

// Name returns the scope's diagnostic name.
func (s *Scope[E]) Name() string {
	return s.name
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope[E]) Parent() *Scope[E] {
	return s.parent
}

// AddPipe registers a subscriber. Registration order is dispatch order;
// that is the only ordering guarantee the pipeline makes.
func (s *Scope[E]) AddPipe(p Pipe[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pipes = append(s.pipes, p)
}

// Nested creates a child scope and registers a pipe on s that delegates
// every event to it. The child's chain runs at the position this call
// occupies in the parent's registration order.
func (s *Scope[E]) Nested(name string) *Scope[E] {
	child := &Scope[E]{name: name, parent: s}
	s.AddPipe(func(ctx context.Context, ev E) (E, bool, error) {
		return child.Emit(ctx, ev)
	})
	return child
}

// Emit runs ev through every pipe registered at the time of the call,
// strictly in registration order. It returns the final event and true when
// the chain ran to completion, the zero event and false when a pipe
// stopped it, and a non-nil error when a pipe failed. Errors propagate
// unmodified; no recovery is attempted.
func (s *Scope[E]) Emit(ctx context.Context, ev E) (E, bool, error) {
	s.mu.RLock()
	pipes := make([]Pipe[E], len(s.pipes))
	copy(pipes, s.pipes)
	s.mu.RUnlock()

	ctxlog.FromContext(ctx).Debug("scope dispatch started", "scope", s.name, "pipes", len(pipes))

	var zero E
	for _, p := range pipes {
		next, ok, err := p(ctx, ev)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			ctxlog.FromContext(ctx).Debug("scope dispatch stopped by pipe", "scope", s.name)
			return zero, false, nil
		}
		ev = next
	}
	return ev, true, nil
}

// Len returns the number of directly registered pipes.
func (s *Scope[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pipes)
}
