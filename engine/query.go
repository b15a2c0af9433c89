package engine

import (
	"sort"

	"github.com/tallow-engine/tallow/core"
)

// Join is one row of a named intersection query: an entity present in
// every requested store, paired with its record from each store in
// query-argument order.
type Join struct {
	Entity  core.Entity
	Records []any
}

// EntitiesWith computes the intersection of the named stores' entity sets
// and returns one Join row per entity in the intersection, records ordered
// as the names were given. Rows come back in ascending entity id. An
// unknown component name fails with core.ErrNotFound. No names yields no
// rows.
func (w *World) EntitiesWith(names ...string) ([]Join, error) {
	if len(names) == 0 {
		return nil, nil
	}

	stores := make([]QueryableStore, len(names))
	for i, name := range names {
		store, err := w.Lookup(name)
		if err != nil {
			return nil, err
		}
		stores[i] = store
	}

	// Narrow from the first store's entity set through each later store.
	candidates := stores[0].All()
	for _, store := range stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i] < candidates[j]
	})

	rows := make([]Join, 0, len(candidates))
	for _, e := range candidates {
		records := make([]any, len(stores))
		for i, store := range stores {
			records[i], _ = store.Component(e)
		}
		rows = append(rows, Join{Entity: e, Records: records})
	}
	return rows, nil
}

// QueryBuilder provides a fluent interface for querying entities based on
// component intersection. The query optimizes by starting with the
// smallest store and filtering through larger ones.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific
// component combinations. Use With to add component filters, then Execute
// to get the results.
//
// Example:
//
//	entities := world.Query().
//	    With(positions).
//	    With(movements).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter. The resulting query
// only returns entities that have records in ALL specified stores.
//
// Panics if called after Execute.
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns all entities present in every
// specified store, in ascending entity id. Calling Execute again returns
// the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Sort stores by count (ascending) so the candidate set starts small.
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i] < candidates[j]
	})
	qb.results = candidates
	return qb.results
}
