// Package scope implements the event pipeline every graph mutation is
// routed through.
//
// # Why Scope Exists
//
// The editing core must let an unbounded set of independent extensions
// observe, transform, or veto every mutation without the store knowing any
// of them. Scope is that seam: a named dispatcher holding an ordered list
// of pipes, where each pipe receives the event produced by the previous
// one and decides whether the chain continues.
//
// # Dispatch Contract
//
//   - Pipes run strictly in registration order. Pipe N+1 never starts
//     before pipe N has returned; there is no internal parallelism.
//   - A pipe returns the (possibly transformed) event and true to continue,
//     false to stop the chain, or an error to abort it.
//   - Emit reports a tri-state outcome: the final event and true on
//     completion, false on a stop, and a non-nil error on failure. A stop
//     is a normal outcome; an error is not.
//   - The pipe list is snapshotted when an emission starts. Pipes
//     registered while an emission is in flight only see later emissions.
//
// # Hierarchy
//
// Scopes form a tree. Nested creates a child scope and appends a pipe to
// the parent that delegates every event to the child, so a plugin can own
// its own ordered sub-chain. Names exist for diagnostics and logging only;
// they never influence routing.
//
// # Concurrency
//
// One emission is a single sequential pass. The package does not serialize
// independent emissions against each other; callers that interleave
// top-level operations must serialize at the call site.
package scope
