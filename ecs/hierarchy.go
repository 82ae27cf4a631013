package ecs

// Parent and Children model the scene forest as ordinary components rather
// than live pointers, so a stale reference to a destroyed or recycled
// entity is always detectable through generation mismatch instead of a
// dangling pointer (SPEC_FULL.md §3; teacher's node.go instead embeds
// *Node parent/children fields directly, since it never needs to survive
// generational reuse).
type Parent struct {
	Entity EntityID
}

// Children holds direct children in insertion order. Transform
// propagation, GetDescendants and scene saving iterate children in this
// order; sprite draw order comes from Depth and the Sprite query, not from
// Children.
type Children struct {
	Entities []EntityID
}

// SetParent reparents child under parent, or detaches it to the root set
// when parent is NilEntity. Rejects the operation with ErrCycleRejected if
// parent is child itself or a descendant of child (walking teacher
// node.go's isAncestor check, but over entity ids instead of *Node).
func SetParent(w *World, child, parent EntityID) error {
	if !w.Valid(child) {
		return ErrNoSuchEntity
	}
	if parent != NilEntity {
		if !w.Valid(parent) {
			return ErrNoSuchEntity
		}
		if parent == child || isDescendant(w, parent, child) {
			return ErrCycleRejected
		}
	}

	if old, err := Get[Parent](w, child); err == nil {
		detachChild(w, old.Entity, child)
	}

	if parent == NilEntity {
		Remove[Parent](w, child)
		return nil
	}

	if err := Add(w, child, Parent{Entity: parent}); err != nil {
		return err
	}
	kids, err := Get[Children](w, parent)
	if err != nil {
		Add(w, parent, Children{Entities: []EntityID{child}})
		return nil
	}
	kids.Entities = append(kids.Entities, child)
	return nil
}

// isDescendant reports whether candidate is in the subtree rooted at root.
func isDescendant(w *World, candidate, root EntityID) bool {
	kids, err := Get[Children](w, root)
	if err != nil {
		return false
	}
	for _, c := range kids.Entities {
		if c == candidate || isDescendant(w, candidate, c) {
			return true
		}
	}
	return false
}

func detachChild(w *World, parent, child EntityID) {
	kids, err := Get[Children](w, parent)
	if err != nil {
		return
	}
	for i, c := range kids.Entities {
		if c == child {
			kids.Entities = append(kids.Entities[:i], kids.Entities[i+1:]...)
			break
		}
	}
	if len(kids.Entities) == 0 {
		Remove[Children](w, parent)
	}
}

// GetParent returns the direct parent of id, or NilEntity if id is a root
// (or carries no Parent component).
func GetParent(w *World, id EntityID) EntityID {
	p, err := Get[Parent](w, id)
	if err != nil {
		return NilEntity
	}
	return p.Entity
}

// GetChildren returns id's direct children in insertion order. The
// returned slice must not be mutated by the caller.
func GetChildren(w *World, id EntityID) []EntityID {
	kids, err := Get[Children](w, id)
	if err != nil {
		return nil
	}
	return kids.Entities
}

// GetRoots returns every live entity with no Parent component, in
// World.Entities order.
func GetRoots(w *World) []EntityID {
	var roots []EntityID
	for _, id := range w.Entities() {
		if !Has[Parent](w, id) {
			roots = append(roots, id)
		}
	}
	return roots
}

// GetAncestors returns id's ancestor chain, nearest first, ending at the
// root.
func GetAncestors(w *World, id EntityID) []EntityID {
	var chain []EntityID
	for p := GetParent(w, id); p != NilEntity; p = GetParent(w, p) {
		chain = append(chain, p)
	}
	return chain
}

// GetDescendants returns every descendant of id in depth-first,
// children-order traversal.
func GetDescendants(w *World, id EntityID) []EntityID {
	var out []EntityID
	var walk func(EntityID)
	walk = func(cur EntityID) {
		for _, c := range GetChildren(w, cur) {
			out = append(out, c)
			walk(c)
		}
	}
	walk(id)
	return out
}

// reparentOnDestroy cascades a destroyed entity's children to its own
// parent, keeping the forest well-formed instead of leaving orphans with a
// dangling Parent reference. Registered once via World.OnDestroy by
// whichever package constructs the root World (the orchestrator, per
// SPEC_FULL.md §6), mirroring teacher node.go's RemoveFromParent-on-dispose
// cascade.
func reparentOnDestroy(w *World, id EntityID) {
	parent := GetParent(w, id)
	for _, child := range append([]EntityID(nil), GetChildren(w, id)...) {
		SetParent(w, child, parent)
	}
	if parent != NilEntity {
		detachChild(w, parent, id)
	}
}

// InstallHierarchyHooks registers the destroy-cascade hook on w. Call once
// per World at construction.
func InstallHierarchyHooks(w *World) {
	w.OnDestroy(reparentOnDestroy)
}
