package mode

import (
	"time"

	"github.com/tallow-engine/tallow/core"
)

// Stack keeps a stack of modes where a single mode is active at one time.
// As modes are pushed on and popped from the stack, the mode at the top is
// always the active one receiving the step pump.
type Stack struct {
	modes []Mode

	// OnLastModePop runs when the last mode is popped off the stack,
	// receiving the popped mode. Optional; typical use is ending the
	// application loop.
	OnLastModePop func(Mode)
}

// NewStack creates an empty mode stack.
func NewStack() *Stack {
	return &Stack{}
}

// Current returns the active mode at the top of the stack, or nil when
// the stack is empty.
func (s *Stack) Current() Mode {
	if len(s.modes) == 0 {
		return nil
	}
	return s.modes[len(s.modes)-1]
}

// Len returns the number of modes on the stack.
func (s *Stack) Len() int {
	return len(s.modes)
}

// Modes returns a copy of the stack, bottom first.
func (s *Stack) Modes() []Mode {
	result := make([]Mode, len(s.modes))
	copy(result, s.modes)
	return result
}

// ActivateMode performs the actions to activate a mode. Multi uses this
// entry point to route submode activation through the owning manager.
func (s *Stack) ActivateMode(m Mode) {
	m.Activate(s)
}

// DeactivateMode performs the actions to deactivate a mode.
func (s *Stack) DeactivateMode(m Mode) {
	m.Deactivate(s)
}

// Push deactivates the current mode, puts m on top of the stack and
// activates it.
func (s *Stack) Push(m Mode) {
	if current := s.Current(); current != nil {
		s.DeactivateMode(current)
	}
	s.modes = append(s.modes, m)
	s.ActivateMode(m)
}

// Pop removes and deactivates the top mode. The mode now at the top, if
// any, is activated; otherwise the OnLastModePop hook runs. Returns the
// popped mode, or core.ErrEmptyStack on an empty stack.
func (s *Stack) Pop() (Mode, error) {
	if len(s.modes) == 0 {
		return nil, core.ErrEmptyStack
	}
	m := s.modes[len(s.modes)-1]
	s.modes[len(s.modes)-1] = nil
	s.modes = s.modes[:len(s.modes)-1]
	s.DeactivateMode(m)

	if current := s.Current(); current != nil {
		s.ActivateMode(current)
	} else if s.OnLastModePop != nil {
		s.OnLastModePop(m)
	}
	return m, nil
}

// Swap exchanges m with the mode at the top of the stack. This is similar
// to a pop followed by a push, but the mode beneath the top is never
// activated in between and OnLastModePop never runs. Returns the replaced
// mode, or core.ErrEmptyStack on an empty stack.
func (s *Stack) Swap(m Mode) (Mode, error) {
	if len(s.modes) == 0 {
		return nil, core.ErrEmptyStack
	}
	old := s.modes[len(s.modes)-1]
	s.modes = s.modes[:len(s.modes)-1]
	s.DeactivateMode(old)

	s.modes = append(s.modes, m)
	s.ActivateMode(m)
	return old, nil
}

// Remove takes m off the stack. If m is the current mode this is
// equivalent to Pop; otherwise the first occurrence is removed with no
// activation side effects. Removing a mode that is not on the stack does
// nothing, to simplify caller bookkeeping.
func (s *Stack) Remove(m Mode) {
	if s.Current() == m {
		s.Pop()
		return
	}
	for i, mode := range s.modes {
		if mode == m {
			copy(s.modes[i:], s.modes[i+1:])
			s.modes[len(s.modes)-1] = nil
			s.modes = s.modes[:len(s.modes)-1]
			return
		}
	}
}

// Step pumps one timestep into the current mode only. Inactive modes on
// the stack do not run.
func (s *Stack) Step(dt time.Duration) {
	if current := s.Current(); current != nil {
		current.Step(dt)
	}
}
