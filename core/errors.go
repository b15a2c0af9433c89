package core

import "errors"

// Sentinel errors for the engine and mode packages. Callers match with
// errors.Is; call sites wrap these with context via fmt.Errorf and %w.
var (
	// ErrNotFound reports a reference to an entity id, component name or
	// mode that is not present where presence was required.
	ErrNotFound = errors.New("not found")

	// ErrEmptyStack reports a pop or swap on an empty mode stack.
	ErrEmptyStack = errors.New("empty mode stack")

	// ErrDuplicate reports registering a component store under a name
	// that is already taken.
	ErrDuplicate = errors.New("duplicate name")
)
