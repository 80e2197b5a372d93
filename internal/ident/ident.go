// Package ident generates the opaque unique identifiers carried by every
// graph entity. Identifiers are stable for the lifetime of an entity and
// unique across editor instances, which makes snapshots mergeable.
package ident

import "github.com/google/uuid"

// New returns a fresh opaque identifier.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s has the shape of a generated identifier. Loaders
// accept foreign identifiers too, so this is a diagnostic aid, not a gate.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
