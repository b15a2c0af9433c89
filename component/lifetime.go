package component

import "time"

// Lifetime tracks time until an entity is removed from the world.
type Lifetime struct {
	Remaining time.Duration
}
