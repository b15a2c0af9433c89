package engine

import (
	"fmt"
	"time"

	"github.com/tallow-engine/tallow/core"
)

// System is a behavior unit invoked once per world step.
type System interface {
	// Step executes one time slice of the system's behavior. An error
	// aborts the step pass and propagates to the caller of World.Step;
	// the scheduler never swallows it.
	Step(w *World, dt time.Duration) error
}

// WorldBinder is implemented by systems that want a reference to the
// world at registration time.
type WorldBinder interface {
	SetWorld(w *World)
}

// World is the component-entity manager: it owns the live entity set, the
// named component stores and the ordered system list, and advances a
// monotonic simulation clock as it steps.
type World struct {
	nextID core.Entity
	live   map[core.Entity]struct{}

	names  []string
	stores map[string]QueryableStore

	systems []System
	clock   time.Duration
}

// NewWorld creates an empty world. Entity ids start at 1.
func NewWorld() *World {
	return &World{
		nextID: 1,
		live:   make(map[core.Entity]struct{}),
		stores: make(map[string]QueryableStore),
	}
}

// NewEntity allocates the next unused entity id and registers it as live.
// Ids are strictly increasing and never reissued.
func (w *World) NewEntity() core.Entity {
	id := w.nextID
	w.nextID++
	w.live[id] = struct{}{}
	return id
}

// Contains reports whether the entity is live in this world. This is the
// authoritative existence predicate.
func (w *World) Contains(e core.Entity) bool {
	_, ok := w.live[e]
	return ok
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.live)
}

// Remove destroys an entity: its record is deleted from every registered
// component store, then the id leaves the live set. Absence of a record in
// an individual store is tolerated; absence of the entity itself is
// core.ErrNotFound.
func (w *World) Remove(e core.Entity) error {
	if _, ok := w.live[e]; !ok {
		return fmt.Errorf("entity %d: %w", e, core.ErrNotFound)
	}
	for _, name := range w.names {
		w.stores[name].Remove(e)
	}
	delete(w.live, e)
	return nil
}

// Time returns the accumulated simulation time, advanced by every Step.
func (w *World) Time() time.Duration {
	return w.clock
}

// AddSystem appends a system to the step order. Systems run in
// registration order. A system implementing WorldBinder is bound to this
// world before it first runs.
func (w *World) AddSystem(system System) {
	if binder, ok := system.(WorldBinder); ok {
		binder.SetWorld(w)
	}
	w.systems = append(w.systems, system)
}

// RemoveSystem removes the first matching system from the step order.
// Removing a system that is not registered is a no-op.
func (w *World) RemoveSystem(system System) {
	for i, s := range w.systems {
		if s == system {
			copy(w.systems[i:], w.systems[i+1:])
			w.systems[len(w.systems)-1] = nil
			w.systems = w.systems[:len(w.systems)-1]
			return
		}
	}
}

// Systems returns a copy of the registered systems in step order.
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Step advances the world clock by dt, then invokes every system exactly
// once, synchronously, in registration order, passing dt. The pass runs
// over a snapshot of the system list, so systems may edit the list during
// their own step. The first system error aborts the pass and propagates.
func (w *World) Step(dt time.Duration) error {
	w.clock += dt

	systems := make([]System, len(w.systems))
	copy(systems, w.systems)

	for _, system := range systems {
		if err := system.Step(w, dt); err != nil {
			return fmt.Errorf("system %T: %w", system, err)
		}
	}
	return nil
}
