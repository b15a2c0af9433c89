// Package system provides reusable systems for common entity behavior:
// Euler movement integration and lifetime expiry.
package system

import (
	"fmt"
	"time"

	"github.com/tallow-engine/tallow/component"
	"github.com/tallow-engine/tallow/engine"
)

// Movement applies movement to position using Euler's method: velocity
// accumulates acceleration, position accumulates velocity, angle
// accumulates rotation rate.
type Movement struct {
	positionName string
	movementName string

	// Resolved once on bind to eliminate per-step registry lookup
	positions *engine.Store[component.Position]
	movements *engine.Store[component.Movement]
}

// NewMovement creates the integrator over the named position and movement
// components.
func NewMovement(positionName, movementName string) *Movement {
	return &Movement{positionName: positionName, movementName: movementName}
}

// SetWorld binds the system to a world. Called by World.AddSystem.
func (s *Movement) SetWorld(w *engine.World) {
	s.positions, _ = engine.StoreFor[component.Position](w, s.positionName)
	s.movements, _ = engine.StoreFor[component.Movement](w, s.movementName)
}

// Step integrates every entity that has both a position and a movement.
func (s *Movement) Step(w *engine.World, dt time.Duration) error {
	if s.positions == nil || s.movements == nil {
		return fmt.Errorf("movement system: components %q and %q must be registered before the system", s.positionName, s.movementName)
	}

	secs := dt.Seconds()
	for _, e := range w.Query().With(s.positions).With(s.movements).Execute() {
		pos, _ := s.positions.Get(e)
		mov, _ := s.movements.Get(e)

		mov.VX += mov.AX * secs
		mov.VY += mov.AY * secs
		pos.X += mov.VX * secs
		pos.Y += mov.VY * secs
		pos.Angle += mov.Rotation * secs

		s.positions.Set(e, pos)
		s.movements.Set(e, mov)
	}
	return nil
}
