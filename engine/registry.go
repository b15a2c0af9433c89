package engine

import (
	"fmt"

	"github.com/tallow-engine/tallow/core"
)

// Register binds a component store under a unique name and makes the world
// its owner. Registering a second store under an existing name returns
// core.ErrDuplicate; silent replacement would orphan records that cascade
// deletion could no longer reach.
func (w *World) Register(name string, store QueryableStore) error {
	if _, exists := w.stores[name]; exists {
		return fmt.Errorf("component %q: %w", name, core.ErrDuplicate)
	}
	store.Bind(w)
	w.stores[name] = store
	w.names = append(w.names, name)
	return nil
}

// Lookup returns the store registered under name, or core.ErrNotFound.
func (w *World) Lookup(name string) (QueryableStore, error) {
	store, ok := w.stores[name]
	if !ok {
		return nil, fmt.Errorf("component %q: %w", name, core.ErrNotFound)
	}
	return store, nil
}

// Stores returns the registered component stores in registration order.
func (w *World) Stores() []QueryableStore {
	result := make([]QueryableStore, 0, len(w.names))
	for _, name := range w.names {
		result = append(result, w.stores[name])
	}
	return result
}

// StoreFor resolves a named store to its concrete component type. It fails
// with core.ErrNotFound for an unknown name, or a plain error when the
// name is registered for a different component kind.
func StoreFor[T any](w *World, name string) (*Store[T], error) {
	erased, err := w.Lookup(name)
	if err != nil {
		return nil, err
	}
	store, ok := erased.(*Store[T])
	if !ok {
		return nil, fmt.Errorf("component %q: store holds %T", name, erased)
	}
	return store, nil
}
