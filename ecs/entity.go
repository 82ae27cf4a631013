// Package ecs implements the engine's entity-component store: generational
// entity ids, typed component columns, multi-component queries, and the
// Parent/Children hierarchy. See SPEC_FULL.md §3.
package ecs

import "fmt"

// EntityID is an opaque identity composed of an index and a generation
// counter. Reusing an index increments the generation, so a dangling id
// (wrong generation) always resolves to "no such entity" rather than the
// new occupant of the slot.
type EntityID uint64

const indexBits = 32

func newEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<indexBits | uint64(index))
}

func (e EntityID) index() uint32 {
	return uint32(e)
}

func (e EntityID) generation() uint32 {
	return uint32(e >> indexBits)
}

// Index returns the entity's slot index, exposed for callers that need a
// stable tie-breaker independent of generation (e.g. the sprite pipeline's
// lowest-index main-camera selection).
func (e EntityID) Index() uint32 {
	return e.index()
}

// String renders the id as "index:generation" for logs and tests.
func (e EntityID) String() string {
	return fmt.Sprintf("%d:%d", e.index(), e.generation())
}

// NilEntity is the zero value. World never allocates index 0, so NilEntity
// is safe to use as an "absent" sentinel (e.g. component.Parent.Entity).
const NilEntity EntityID = 0
