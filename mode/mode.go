// Package mode manages application states and the transitions between
// them. Modes are typically presented as screens or overlays the player
// navigates between: a title screen, the in-progress game, a pause
// overlay. An activated mode is running and receives the step pump; a
// deactivated mode is paused.
//
// Modes are managed as a last-in-first-out Stack, or grouped in sequence
// inside a Multi. All transitions are synchronous and non-reentrant: a
// lifecycle hook must not mutate the stack it is being called from.
package mode

import "time"

// Mode is an application state with an activation lifecycle and a
// per-tick step operation.
type Mode interface {
	// Activate makes the mode active for the given manager. Must be
	// idempotent: an already active mode does nothing.
	Activate(s *Stack)

	// Deactivate pauses the mode. Idempotent, mirroring Activate.
	Deactivate(s *Stack)

	// Active reports whether the mode is currently active.
	Active() bool

	// Step executes one timestep for the mode.
	Step(dt time.Duration)
}

// Base implements the activation contract shared by all modes. Embed it
// and override Step; the optional Enter and Exit hooks run on activation
// and deactivation.
type Base struct {
	manager *Stack
	active  bool

	// Enter runs when the mode becomes active.
	Enter func()

	// Exit runs when the mode is deactivated.
	Exit func()
}

// Activate makes the mode active: runs the Enter hook, records the
// owning manager and sets the active flag. Does nothing if the mode is
// already active.
func (b *Base) Activate(s *Stack) {
	if b.active {
		return
	}
	if b.Enter != nil {
		b.Enter()
	}
	b.manager = s
	b.active = true
}

// Deactivate pauses the mode: runs the Exit hook and clears the active
// flag. Does nothing if the mode is not active.
func (b *Base) Deactivate(s *Stack) {
	if !b.active {
		return
	}
	if b.Exit != nil {
		b.Exit()
	}
	b.active = false
}

// Active reports whether the mode is currently active.
func (b *Base) Active() bool {
	return b.active
}

// Manager returns the stack that last activated this mode, or nil if the
// mode was never activated.
func (b *Base) Manager() *Stack {
	return b.manager
}

// Step is a no-op; concrete modes override it.
func (b *Base) Step(dt time.Duration) {}
