package ecs

// Query1 iterates every live entity carrying a component of type A, in the
// dense order of A's column. Order is stable within a frame (no entity is
// revisited or skipped) but not guaranteed across structural changes, since
// swap-remove can reslot the column (see column64 doc comment).
func Query1[A any](w *World) func(yield func(EntityID, *A) bool) {
	col := columnFor[A](w)
	return func(yield func(EntityID, *A) bool) {
		for i := 0; i < len(col.dense); i++ {
			id := newEntityID(col.entities[i], w.generations[col.entities[i]])
			if !yield(id, &col.dense[i]) {
				return
			}
		}
	}
}

// Query2 iterates every live entity carrying both A and B, driving the scan
// from whichever column is smaller and probing the other (grounded on the
// other_examples pecs-go Iter2 shape, adapted to a closure-based iterator
// instead of a query-object type).
func Query2[A, B any](w *World) func(yield func(EntityID, *A, *B) bool) {
	colA := columnFor[A](w)
	colB := columnFor[B](w)
	return func(yield func(EntityID, *A, *B) bool) {
		if len(colA.dense) <= len(colB.dense) {
			for i := 0; i < len(colA.dense); i++ {
				idx := colA.entities[i]
				b, ok := colB.get(idx)
				if !ok {
					continue
				}
				id := newEntityID(idx, w.generations[idx])
				if !yield(id, &colA.dense[i], b) {
					return
				}
			}
			return
		}
		for i := 0; i < len(colB.dense); i++ {
			idx := colB.entities[i]
			a, ok := colA.get(idx)
			if !ok {
				continue
			}
			id := newEntityID(idx, w.generations[idx])
			if !yield(id, a, &colB.dense[i]) {
				return
			}
		}
	}
}

// Query3 iterates every live entity carrying A, B, and C, scanning the
// smallest of the three columns and probing the other two.
func Query3[A, B, C any](w *World) func(yield func(EntityID, *A, *B, *C) bool) {
	colA := columnFor[A](w)
	colB := columnFor[B](w)
	colC := columnFor[C](w)

	smallest := 0
	n := len(colA.dense)
	if len(colB.dense) < n {
		smallest, n = 1, len(colB.dense)
	}
	if len(colC.dense) < n {
		smallest = 2
	}

	return func(yield func(EntityID, *A, *B, *C) bool) {
		switch smallest {
		case 0:
			for i := 0; i < len(colA.dense); i++ {
				idx := colA.entities[i]
				b, ok := colB.get(idx)
				if !ok {
					continue
				}
				c, ok := colC.get(idx)
				if !ok {
					continue
				}
				id := newEntityID(idx, w.generations[idx])
				if !yield(id, &colA.dense[i], b, c) {
					return
				}
			}
		case 1:
			for i := 0; i < len(colB.dense); i++ {
				idx := colB.entities[i]
				a, ok := colA.get(idx)
				if !ok {
					continue
				}
				c, ok := colC.get(idx)
				if !ok {
					continue
				}
				id := newEntityID(idx, w.generations[idx])
				if !yield(id, a, &colB.dense[i], c) {
					return
				}
			}
		default:
			for i := 0; i < len(colC.dense); i++ {
				idx := colC.entities[i]
				a, ok := colA.get(idx)
				if !ok {
					continue
				}
				b, ok := colB.get(idx)
				if !ok {
					continue
				}
				id := newEntityID(idx, w.generations[idx])
				if !yield(id, a, b, &colC.dense[i]) {
					return
				}
			}
		}
	}
}

// Count returns the number of live entities carrying a component of type T,
// without allocating an iterator. Useful for preflight capacity hints (e.g.
// render package preallocating its per-frame Command slice).
func Count[T any](w *World) int {
	return columnFor[T](w).len()
}
