package engine

import (
	"github.com/tallow-engine/tallow/core"
)

// Store is a generic container for one component kind T, mapping entity
// ids to records. A map backs O(1) access while a separate entity slice
// keeps insertion order for iteration.
type Store[T any] struct {
	world      *World
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates an empty component store for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Bind attaches the store to its owning world. Rebinding to a different
// world is a configuration error and panics.
func (s *Store[T]) Bind(w *World) {
	if s.world != nil && s.world != w {
		panic("store already bound to another world")
	}
	s.world = w
}

// World returns the world the store is registered with, or nil.
func (s *Store[T]) World() *World {
	return s.world
}

// Set inserts or updates the record for an entity.
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the record for an entity.
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Component returns the record as an untyped value, for the erased
// store interfaces.
func (s *Store[T]) Component(e core.Entity) (any, bool) {
	val, ok := s.components[e]
	if !ok {
		return nil, false
	}
	return val, true
}

// Remove deletes the record for an entity. Removing an entity without a
// record is a no-op, so cascading deletes can sweep every store blindly.
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			// Shift rather than swap so All() keeps insertion order.
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Has checks whether the entity has a record in this store.
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// All returns every entity with a record, in insertion order.
// The returned slice is a copy and safe to mutate.
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities with a record.
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes every record from the store.
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
