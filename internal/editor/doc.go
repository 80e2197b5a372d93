// Package editor provides the authoritative in-memory graph store.
//
// # Why Editor Exists
//
// The editor owns the node and connection collections and is the only
// component allowed to change them. Every mutation follows the same
// three-step protocol:
//
//  1. Emit a vetoable pre-event ("nodecreate", "connectionremove", ...)
//     through the scope pipeline. Subscribers see a consistent pre-state
//     and may transform the event or stop it.
//  2. Apply the mutation locally, only if no subscriber vetoed.
//  3. Emit an informational post-event ("nodecreated", ...). Subscribers
//     that need the post-state can rely on the mutation being visible.
//
// Routing mutations through the pipeline lets independent extensions
// validate, persist, render, or index without the store knowing about
// them; the store's own responsibilities end at invariant maintenance and
// notification sequencing.
//
// # Genericity
//
// Editor is generic over any node and connection types that expose an
// identifier (the Entity constraint). The richer entity shapes live in the
// model package as a separate layer; nothing here depends on them.
//
// # Error Channels
//
// Contract violations (duplicate identifier, missing entity) are sentinel
// errors returned synchronously. Policy vetoes are not errors: they are a
// boolean result the caller must check. A pipe failing during a pre-event
// leaves the store untouched; failing during a post-event leaves the
// mutation applied, making it an observability error rather than a storage
// integrity one.
//
// # Concurrency
//
// An editor instance is a single logical actor. The store takes no lock of
// its own: callers issuing concurrent top-level operations must serialize
// them (a queue at the call site suffices). This keeps the common case, a
// single interactive user issuing sequential operations, free of locking
// overhead.
package editor
