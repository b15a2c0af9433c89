package mode

import (
	"fmt"
	"time"

	"github.com/tallow-engine/tallow/core"
)

// Multi is a mode with multiple submodes where one submode is active at a
// time. Submodes can be switched to directly or in sequence. While the
// Multi is active, exactly one submode is active; while it is inactive,
// none are, but the previously active submode is remembered and resumes
// when the Multi is reactivated.
//
// Multis are useful when modes switch in an order other than a LIFO
// stack, such as hotseat multiplayer turns, a wizard-style UI, or a
// sequence of slides.
type Multi struct {
	Base
	submodes  []Mode
	activeSub Mode // remembered active submode, survives deactivation
}

// NewMulti creates a Multi over the given submodes. None is activated.
func NewMulti(submodes ...Mode) *Multi {
	return &Multi{submodes: append([]Mode(nil), submodes...)}
}

// Submodes returns a copy of the ordered submode list.
func (m *Multi) Submodes() []Mode {
	result := make([]Mode, len(m.submodes))
	copy(result, m.submodes)
	return result
}

// ActiveSubmode returns the current (or, while the Multi is deactivated,
// the remembered) submode, or nil if none was ever activated.
func (m *Multi) ActiveSubmode() Mode {
	return m.activeSub
}

func (m *Multi) indexOf(sub Mode) int {
	for i, s := range m.submodes {
		if s == sub {
			return i
		}
	}
	return -1
}

// AddSubmode appends a submode to the end of the list without
// activating it.
func (m *Multi) AddSubmode(sub Mode) {
	m.submodes = append(m.submodes, sub)
}

// InsertSubmode inserts a submode at the given position without
// activating it. An index outside [0, len] panics.
func (m *Multi) InsertSubmode(sub Mode, index int) {
	if index < 0 || index > len(m.submodes) {
		panic("multi: submode index out of range")
	}
	m.submodes = append(m.submodes, nil)
	copy(m.submodes[index+1:], m.submodes[index:])
	m.submodes[index] = sub
}

// InsertSubmodeBefore inserts a submode before an existing one, without
// activating it. Fails with core.ErrNotFound when before is not a
// submode.
func (m *Multi) InsertSubmodeBefore(sub, before Mode) error {
	index := m.indexOf(before)
	if index < 0 {
		return fmt.Errorf("submode: %w", core.ErrNotFound)
	}
	m.InsertSubmode(sub, index)
	return nil
}

// RemoveSubmode removes a submode; nil means the active submode. If the
// target is not a member, nothing happens. An active target is
// deactivated and the next submode in sequence activated first. When the
// last submode is removed, the Multi removes itself from its manager.
func (m *Multi) RemoveSubmode(sub Mode) {
	if sub == nil {
		sub = m.activeSub
	}
	if sub == nil || m.indexOf(sub) < 0 {
		return
	}
	next := m.ActivateNext(true)
	index := m.indexOf(sub)
	copy(m.submodes[index:], m.submodes[index+1:])
	m.submodes[len(m.submodes)-1] = nil
	m.submodes = m.submodes[:len(m.submodes)-1]

	// The removed submode was the only one: the Multi has nothing left
	// to show and leaves its manager.
	if next == sub {
		if m.manager != nil {
			m.manager.Remove(m)
		}
		m.deactivateSubmode(true)
	}
}

// ActivateSubmode activates the given mode, appending it as a submode if
// it is not one already. Does nothing if it is already the active
// submode.
func (m *Multi) ActivateSubmode(sub Mode) {
	if m.indexOf(sub) < 0 {
		m.AddSubmode(sub)
	}
	if m.activeSub != sub {
		m.activateSubmode(sub)
	}
}

// ActivateNext activates the submode after the current one in order. If
// no submode is active, the first is activated. Past the last submode,
// loop wraps around to the first; without loop the current submode is
// deactivated and the Multi removes itself from its manager. Returns the
// activated submode, or nil if there was no submode left to activate.
//
// Panics when the Multi has no submodes.
func (m *Multi) ActivateNext(loop bool) Mode {
	if len(m.submodes) == 0 {
		panic("multi: no submode to activate")
	}
	var next Mode
	if m.activeSub == nil {
		next = m.submodes[0]
	} else {
		index := m.indexOf(m.activeSub) + 1
		if index < len(m.submodes) {
			next = m.submodes[index]
		} else if loop {
			next = m.submodes[0]
		}
	}
	m.activateSubmode(next)
	return next
}

// ActivatePrevious activates the submode before the current one in
// order. If no submode is active, the last is activated. Before the
// first submode, loop wraps around to the last; without loop the Multi
// removes itself from its manager. Returns the activated submode, or nil
// if there was no submode left to activate.
//
// Panics when the Multi has no submodes.
func (m *Multi) ActivatePrevious(loop bool) Mode {
	if len(m.submodes) == 0 {
		panic("multi: no submode to activate")
	}
	var prev Mode
	if m.activeSub == nil {
		prev = m.submodes[len(m.submodes)-1]
	} else {
		index := m.indexOf(m.activeSub) - 1
		if index >= 0 {
			prev = m.submodes[index]
		} else if loop {
			prev = m.submodes[len(m.submodes)-1]
		}
	}
	m.activateSubmode(prev)
	return prev
}

// activateSubmode makes sub the active submode, deactivating any current
// one. If the Multi itself is active this happens immediately through
// the owning manager; otherwise actual activation is deferred until the
// Multi is activated. A nil sub removes the Multi from its manager.
func (m *Multi) activateSubmode(sub Mode) {
	if m.activeSub == sub {
		return
	}
	m.deactivateSubmode(true)
	m.activeSub = sub
	if sub != nil {
		if m.Base.active {
			m.manager.ActivateMode(sub)
		}
	} else if m.manager != nil {
		m.manager.Remove(m)
	}
}

// deactivateSubmode deactivates the current submode, if any. With clear
// the remembered slot is emptied as well; without it the submode can
// resume when the Multi reactivates.
func (m *Multi) deactivateSubmode(clear bool) {
	if m.activeSub == nil {
		return
	}
	if m.Base.active {
		m.manager.DeactivateMode(m.activeSub)
	}
	if clear {
		m.activeSub = nil
	}
}

// Activate makes the Multi active for the given manager. The previously
// active submode resumes; if none was ever active, the first submode is
// made active.
//
// Panics when the Multi has no submodes: an empty Multi cannot be
// activated.
func (m *Multi) Activate(s *Stack) {
	if len(m.submodes) == 0 {
		panic("multi: no submode to activate")
	}
	m.manager = s
	if m.activeSub == nil {
		m.activeSub = m.submodes[0]
	}
	s.ActivateMode(m.activeSub)
	m.Base.Activate(s)
}

// Deactivate pauses the Multi. The active submode is deactivated but
// stays remembered for the next activation.
func (m *Multi) Deactivate(s *Stack) {
	m.deactivateSubmode(false)
	m.Base.Deactivate(s)
}

// Step delegates the timestep to the active submode.
func (m *Multi) Step(dt time.Duration) {
	if m.activeSub != nil {
		m.activeSub.Step(dt)
	}
}
