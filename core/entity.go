package core

// Entity is a unique identifier for a game object. Entities carry no data
// themselves; all data lives in component stores keyed by entity.
//
// Ids are issued by a World starting at 1 and are strictly increasing.
// An id is never reissued, even after the entity is removed, so a stale
// handle can never alias a newer entity.
type Entity uint64

// NoEntity is the zero id. No live entity ever has it.
const NoEntity Entity = 0
