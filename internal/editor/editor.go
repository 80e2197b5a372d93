package editor

import (
	"context"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vk/flowgridgo/internal/ctxlog"
	"github.com/vk/flowgridgo/internal/scope"
)

// Entity is the minimal capability the store requires of its node and
// connection types: a stable, unique identifier.
type Entity interface {
	EntityID() string
}

// Editor is the authoritative graph store for one editing session. T is
// the node type and C the connection type; both collections preserve
// insertion order and are keyed by entity identifier.
type Editor[T Entity, C Entity] struct {
	name  string
	scope *scope.Scope[Event[T, C]]

	nodes       *orderedmap.OrderedMap[string, T]
	connections *orderedmap.OrderedMap[string, C]
}

// New creates an empty editor whose pipeline scope carries the given name.
func New[T Entity, C Entity](name string) *Editor[T, C] {
	return &Editor[T, C]{
		name:        name,
		scope:       scope.New[Event[T, C]](name),
		nodes:       orderedmap.New[string, T](),
		connections: orderedmap.New[string, C](),
	}
}

// Name returns the editor's diagnostic name.
func (e *Editor[T, C]) Name() string {
	return e.name
}

// Scope exposes the editor's event pipeline. Registering a pipe here is
// the sole extension point of the core.
func (e *Editor[T, C]) Scope() *scope.Scope[Event[T, C]] {
	return e.scope
}

// AddNode inserts a node after running the nodecreate pipeline. It returns
// false with a nil error when a subscriber vetoed the insertion. Reusing a
// live identifier fails with ErrDuplicateEntity. An error returned with
// true means the node was inserted but the nodecreated dispatch failed.
func (e *Editor[T, C]) AddNode(ctx context.Context, n T) (bool, error) {
	if _, exists := e.nodes.Get(n.EntityID()); exists {
		return false, fmt.Errorf("node %q: %w", n.EntityID(), ErrDuplicateEntity)
	}

	ev, ok, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindNodeCreate, Node: n})
	if err != nil {
		return false, err
	}
	if !ok {
		ctxlog.FromContext(ctx).Debug("node insertion vetoed", "editor", e.name, "node", n.EntityID())
		return false, nil
	}

	// Subscribers may have transformed the event; the transformed node is
	// what gets stored, so its identifier must be re-checked.
	n = ev.Node
	if _, exists := e.nodes.Get(n.EntityID()); exists {
		return false, fmt.Errorf("node %q: %w", n.EntityID(), ErrDuplicateEntity)
	}
	e.nodes.Set(n.EntityID(), n)

	if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindNodeCreated, Node: n}); err != nil {
		return true, err
	}
	return true, nil
}

// AddConnection inserts a connection after running the connectioncreate
// pipeline. Semantics mirror AddNode.
func (e *Editor[T, C]) AddConnection(ctx context.Context, c C) (bool, error) {
	if _, exists := e.connections.Get(c.EntityID()); exists {
		return false, fmt.Errorf("connection %q: %w", c.EntityID(), ErrDuplicateEntity)
	}

	ev, ok, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindConnectionCreate, Connection: c})
	if err != nil {
		return false, err
	}
	if !ok {
		ctxlog.FromContext(ctx).Debug("connection insertion vetoed", "editor", e.name, "connection", c.EntityID())
		return false, nil
	}

	c = ev.Connection
	if _, exists := e.connections.Get(c.EntityID()); exists {
		return false, fmt.Errorf("connection %q: %w", c.EntityID(), ErrDuplicateEntity)
	}
	e.connections.Set(c.EntityID(), c)

	if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindConnectionCreated, Connection: c}); err != nil {
		return true, err
	}
	return true, nil
}

// RemoveNode removes the node with the given identifier after running the
// noderemove pipeline. A missing identifier fails with ErrNotFound.
// Connections referencing the node are left in place: cascade deletion is
// the caller's responsibility.
func (e *Editor[T, C]) RemoveNode(ctx context.Context, id string) (bool, error) {
	n, exists := e.nodes.Get(id)
	if !exists {
		return false, fmt.Errorf("node %q: %w", id, ErrNotFound)
	}

	ev, ok, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindNodeRemove, Node: n})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	e.nodes.Delete(id)

	if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindNodeRemoved, Node: ev.Node}); err != nil {
		return true, err
	}
	return true, nil
}

// RemoveConnection removes the connection with the given identifier after
// running the connectionremove pipeline. Semantics mirror RemoveNode.
func (e *Editor[T, C]) RemoveConnection(ctx context.Context, id string) (bool, error) {
	c, exists := e.connections.Get(id)
	if !exists {
		return false, fmt.Errorf("connection %q: %w", id, ErrNotFound)
	}

	ev, ok, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindConnectionRemove, Connection: c})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	e.connections.Delete(id)

	if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindConnectionRemoved, Connection: ev.Connection}); err != nil {
		return true, err
	}
	return true, nil
}

// Clear empties the store through the normal removal operations: every
// connection in collection order, then every node. Removing connections
// first means no connection ever references a node that is already gone.
// A veto of the clear pre-event leaves the store intact and emits
// clearcancelled; a veto of an individual inner removal skips that entity
// and the clear proceeds.
func (e *Editor[T, C]) Clear(ctx context.Context) (bool, error) {
	_, ok, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindClear})
	if err != nil {
		return false, err
	}
	if !ok {
		if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindClearCancelled}); err != nil {
			return false, err
		}
		return false, nil
	}

	for _, id := range keysInOrder(e.connections) {
		if _, err := e.RemoveConnection(ctx, id); err != nil {
			return false, err
		}
	}
	for _, id := range keysInOrder(e.nodes) {
		if _, err := e.RemoveNode(ctx, id); err != nil {
			return false, err
		}
	}

	if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindCleared}); err != nil {
		return true, err
	}
	return true, nil
}

// Import replays a snapshot into the store through the normal add
// operations: every node in sequence order, then every connection.
// Subscribers may veto the import as a whole, veto individual additions,
// or transform the snapshot before it is applied.
func (e *Editor[T, C]) Import(ctx context.Context, snap *Snapshot[T, C]) (bool, error) {
	ev, ok, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindImport, Snapshot: snap})
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	snap = ev.Snapshot

	if snap != nil {
		for _, n := range snap.Nodes {
			if _, err := e.AddNode(ctx, n); err != nil {
				return false, err
			}
		}
		for _, c := range snap.Connections {
			if _, err := e.AddConnection(ctx, c); err != nil {
				return false, err
			}
		}
	}

	if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindImported, Snapshot: snap}); err != nil {
		return true, err
	}
	return true, nil
}

// Export captures the current store contents. The export pre-event carries
// an empty snapshot so subscribers can veto before any state is copied;
// the exported post-event carries the populated one. A veto yields a nil
// snapshot and false.
func (e *Editor[T, C]) Export(ctx context.Context) (*Snapshot[T, C], bool, error) {
	ev, ok, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindExport, Snapshot: &Snapshot[T, C]{}})
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	snap := ev.Snapshot
	if snap == nil {
		snap = &Snapshot[T, C]{}
	}
	snap.Nodes = e.Nodes()
	snap.Connections = e.Connections()

	if _, _, err := e.scope.Emit(ctx, Event[T, C]{Kind: KindExported, Snapshot: snap}); err != nil {
		return snap, true, err
	}
	return snap, true, nil
}

// Node looks up a node by identifier.
func (e *Editor[T, C]) Node(id string) (T, bool) {
	return e.nodes.Get(id)
}

// Connection looks up a connection by identifier.
func (e *Editor[T, C]) Connection(id string) (C, bool) {
	return e.connections.Get(id)
}

// Nodes returns the current nodes in insertion order.
func (e *Editor[T, C]) Nodes() []T {
	out := make([]T, 0, e.nodes.Len())
	for pair := e.nodes.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Connections returns the current connections in insertion order.
func (e *Editor[T, C]) Connections() []C {
	out := make([]C, 0, e.connections.Len())
	for pair := e.connections.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// keysInOrder snapshots a collection's keys so removal can iterate while
// the underlying map shrinks.
func keysInOrder[V any](m *orderedmap.OrderedMap[string, V]) []string {
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
