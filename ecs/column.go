package ecs

// column is a type-erased handle so World can hold heterogeneous component
// storage in one registry while each concrete column[T] keeps densely
// packed, cache-friendly storage for a single component type (the "sparse
// per-type" layout described in SPEC_FULL.md §3 / spec.md §4.1).
type column interface {
	remove(index uint32)
	has(index uint32) bool
	len() int
}

// column64[T] stores component values densely, with a sparse index from
// entity index to a slot in the dense slice. Removal is O(1) via swap-remove;
// this reorders the dense slice, which is fine because queries never run
// concurrently with mutation (see ecs.World doc comment).
type column64[T any] struct {
	dense    []T
	entities []uint32 // entities[slot] = entity index owning dense[slot]
	sparse   map[uint32]int
}

func newColumn[T any]() *column64[T] {
	return &column64[T]{sparse: make(map[uint32]int)}
}

func (c *column64[T]) set(index uint32, value T) {
	if slot, ok := c.sparse[index]; ok {
		c.dense[slot] = value
		return
	}
	c.sparse[index] = len(c.dense)
	c.dense = append(c.dense, value)
	c.entities = append(c.entities, index)
}

func (c *column64[T]) get(index uint32) (*T, bool) {
	slot, ok := c.sparse[index]
	if !ok {
		return nil, false
	}
	return &c.dense[slot], true
}

func (c *column64[T]) has(index uint32) bool {
	_, ok := c.sparse[index]
	return ok
}

func (c *column64[T]) remove(index uint32) {
	slot, ok := c.sparse[index]
	if !ok {
		return
	}
	last := len(c.dense) - 1
	if slot != last {
		c.dense[slot] = c.dense[last]
		c.entities[slot] = c.entities[last]
		c.sparse[c.entities[slot]] = slot
	}
	c.dense = c.dense[:last]
	c.entities = c.entities[:last]
	delete(c.sparse, index)
}

func (c *column64[T]) len() int {
	return len(c.dense)
}
