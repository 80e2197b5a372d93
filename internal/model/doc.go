// Package model is the rich entity layer on top of the generic store:
// sockets, ports, controls, nodes and connections, plus the concrete
// editor instantiation used by the application.
//
// The store itself (package editor) only requires entities to expose an
// identifier; everything in this package is convenience scaffolding with
// local invariants. Entities are constructed here by callers or loaders
// and handed to the store; the store never constructs them itself.
//
// Keyed collections on a node (inputs, outputs, controls) preserve
// insertion order, which is the order observed by export, and reject
// duplicate keys at insertion time.
package model
