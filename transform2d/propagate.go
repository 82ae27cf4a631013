package transform2d

import (
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

// Propagate recomputes GlobalTransform2D for every live entity, walking
// each root's subtree in parent-first order (frame orchestrator phase 6,
// SPEC_FULL.md §6 step 6). A single linear pass over the forest suffices:
// every entity is visited exactly once, after its parent.
func Propagate(w *ecs.World) {
	for _, root := range ecs.GetRoots(w) {
		propagateFrom(w, root, identity)
	}
}

func propagateFrom(w *ecs.World, id ecs.EntityID, parentWorld mat) {
	local, err := ecs.Get[component.Transform2D](w, id)
	var l mat
	if err == nil {
		l = computeLocal(*local)
	} else {
		l = identity
	}
	world := multiply(parentWorld, l)

	if g, err := ecs.Get[component.GlobalTransform2D](w, id); err == nil {
		*g = world.toGlobal()
	} else {
		ecs.Add(w, id, world.toGlobal())
	}

	for _, child := range ecs.GetChildren(w, id) {
		propagateFrom(w, child, world)
	}
}
