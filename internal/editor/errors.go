package editor

import "errors"

// Contract errors returned by the store and by the model layer on top of
// it. These indicate caller misuse, not expected runtime outcomes; policy
// vetoes are reported through boolean results instead.
var (
	// ErrNotFound reports an operation on an identifier or key that is not
	// currently present.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateEntity reports an insertion that would reuse an
	// identifier or mapping key that is already present.
	ErrDuplicateEntity = errors.New("duplicate entity")

	// ErrInvalidState reports an operation that is structurally impossible
	// in the entity's current state, such as attaching a second control to
	// an input.
	ErrInvalidState = errors.New("invalid state")
)
