package engine

import (
	"github.com/tallow-engine/tallow/core"
)

// AnyStore provides type-erased operations for lifecycle management.
// It lets the world treat all stores uniformly, in particular when
// cascading entity removal across every registered store.
type AnyStore interface {
	// Bind attaches the store to its owning world. Called once by
	// World.Register; a store belongs to exactly one world for its
	// whole lifetime.
	Bind(w *World)

	// Remove deletes the component record for an entity, if present.
	Remove(e core.Entity)

	// Has checks whether the entity has a record in this store.
	Has(e core.Entity) bool

	// Count returns the number of entities with a record in this store.
	Count() int

	// Component returns the entity's record as an untyped value.
	Component(e core.Entity) (any, bool)
}

// QueryableStore extends AnyStore with the enumeration needed by the
// query builder and the named intersection join.
type QueryableStore interface {
	AnyStore

	// All returns every entity with a record in this store,
	// in insertion order.
	All() []core.Entity
}
