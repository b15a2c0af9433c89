// Package engine implements the component-entity world: entity identity
// allocation, named component stores, cross-component queries and the
// per-step system scheduler.
//
// The world is single-threaded and cooperative. All mutation happens
// synchronously on the calling goroutine; one Step runs every system to
// completion in registration order before returning. The scheduler iterates
// a snapshot of the system list, so a system may add or remove systems
// during its own step without corrupting the pass. There is no internal
// locking; callers that drive a world from multiple goroutines must
// serialize access themselves.
package engine
