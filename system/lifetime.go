package system

import (
	"fmt"
	"time"

	"github.com/tallow-engine/tallow/component"
	"github.com/tallow-engine/tallow/engine"
)

// Lifetime counts down each entity's remaining lifetime and removes
// expired entities from the world, cascading their component records.
type Lifetime struct {
	lifetimeName string

	lifetimes *engine.Store[component.Lifetime]
}

// NewLifetime creates the expiry system over the named lifetime
// component.
func NewLifetime(lifetimeName string) *Lifetime {
	return &Lifetime{lifetimeName: lifetimeName}
}

// SetWorld binds the system to a world. Called by World.AddSystem.
func (s *Lifetime) SetWorld(w *engine.World) {
	s.lifetimes, _ = engine.StoreFor[component.Lifetime](w, s.lifetimeName)
}

// Step advances every lifetime and removes entities that ran out.
func (s *Lifetime) Step(w *engine.World, dt time.Duration) error {
	if s.lifetimes == nil {
		return fmt.Errorf("lifetime system: component %q must be registered before the system", s.lifetimeName)
	}

	for _, e := range s.lifetimes.All() {
		life, ok := s.lifetimes.Get(e)
		if !ok {
			continue
		}
		life.Remaining -= dt
		if life.Remaining > 0 {
			s.lifetimes.Set(e, life)
			continue
		}
		if err := w.Remove(e); err != nil {
			return fmt.Errorf("lifetime system: %w", err)
		}
	}
	return nil
}
