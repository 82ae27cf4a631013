// Package behavior implements the scripted-behavior tagged variant and the
// frame phase that dispatches each entity's Behavior by kind, mutating
// Transform2D/RigidBody by targeted field access (SPEC_FULL.md §6 step 4).
package behavior

import (
	"math"

	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
	"github.com/insiculous2d/engine/transform2d"
)

// Run iterates every entity with a Behavior and applies its effect for one
// frame of dt seconds. input exposes the subset of action state behaviors
// need; nil is valid when no behaviors care about input this frame (e.g.
// in tests).
func Run(w *ecs.World, input Input, dt float64) {
	ecs.Query1[component.Behavior](w)(func(id ecs.EntityID, b *component.Behavior) bool {
		switch b.Kind {
		case component.PlayerPlatformer:
			runPlayerPlatformer(w, id, b.Platformer, input, dt)
		case component.PlayerTopDown:
			runPlayerTopDown(w, id, b.TopDown, input, dt)
		case component.ChaseTagged:
			runChaseTagged(w, id, b.Chase, dt)
		case component.FollowEntity:
			runFollowEntity(w, id, b.Follow, dt)
		case component.FollowTagged:
			runFollowTagged(w, id, b.FollowTag, dt)
		case component.Patrol:
			runPatrol(w, id, b.Patrol, dt)
		case component.Collectible:
			runCollectible(w, id, b.Collectible)
		}
		return true
	})
}

// Input is the slice of per-frame action state scripted behaviors consult.
// The input package's action resolver satisfies this.
type Input interface {
	IsActionActive(action string) bool
}

func runPlayerPlatformer(w *ecs.World, id ecs.EntityID, p *component.PlayerPlatformerParams, in Input, dt float64) {
	rb, err := ecs.Get[component.RigidBody](w, id)
	if err != nil || p == nil {
		return
	}
	if in != nil {
		switch {
		case in.IsActionActive("move_left"):
			rb.VelocityX = -p.MoveSpeed
		case in.IsActionActive("move_right"):
			rb.VelocityX = p.MoveSpeed
		default:
			rb.VelocityX = 0
		}
		if in.IsActionActive("jump") && math.Abs(rb.VelocityY) < p.GroundedVelocityEpsilon {
			rb.VelocityY = -p.JumpVelocity
		}
	}
}

func runPlayerTopDown(w *ecs.World, id ecs.EntityID, p *component.PlayerTopDownParams, in Input, dt float64) {
	rb, err := ecs.Get[component.RigidBody](w, id)
	if err != nil || p == nil {
		return
	}
	var vx, vy float64
	if in != nil {
		if in.IsActionActive("move_left") {
			vx -= p.MoveSpeed
		}
		if in.IsActionActive("move_right") {
			vx += p.MoveSpeed
		}
		if in.IsActionActive("move_up") {
			vy -= p.MoveSpeed
		}
		if in.IsActionActive("move_down") {
			vy += p.MoveSpeed
		}
	}
	rb.VelocityX, rb.VelocityY = vx, vy
}

func runChaseTagged(w *ecs.World, id ecs.EntityID, p *component.ChaseTaggedParams, dt float64) {
	if p == nil {
		return
	}
	target, ok := findByName(w, p.Tag)
	if !ok {
		return
	}
	moveToward(w, id, target, p.Speed, p.StopRadius, dt)
}

func runFollowEntity(w *ecs.World, id ecs.EntityID, p *component.FollowEntityParams, dt float64) {
	if p == nil {
		return
	}
	target := ecs.EntityID(p.Target)
	if !w.Valid(target) {
		return
	}
	lerpToward(w, id, target, p.OffsetX, p.OffsetY, p.LerpRate, dt)
}

func runFollowTagged(w *ecs.World, id ecs.EntityID, p *component.FollowTaggedParams, dt float64) {
	if p == nil {
		return
	}
	target, ok := findByName(w, p.Tag)
	if !ok {
		return
	}
	lerpToward(w, id, target, p.OffsetX, p.OffsetY, p.LerpRate, dt)
}

func runPatrol(w *ecs.World, id ecs.EntityID, p *component.PatrolParams, dt float64) {
	if p == nil {
		return
	}
	t, err := ecs.Get[component.Transform2D](w, id)
	if err != nil {
		return
	}
	// On reaching To, snap onto it and swap the waypoints so the next
	// tick heads back toward the old From.
	if math.Hypot(p.ToX-t.X, p.ToY-t.Y) < 1 {
		t.X, t.Y = p.ToX, p.ToY
		p.FromX, p.FromY, p.ToX, p.ToY = p.ToX, p.ToY, p.FromX, p.FromY
		return
	}
	stepToward(t, p.ToX, p.ToY, p.Speed, dt)
}

func runCollectible(w *ecs.World, id ecs.EntityID, p *component.CollectibleParams) {
	if p == nil {
		return
	}
	collector, ok := findByName(w, p.Collector)
	if !ok {
		return
	}
	ax, ay, okA := worldPosition(w, id)
	cx, cy, okC := worldPosition(w, collector)
	if !okA || !okC {
		return
	}
	const pickupRadius = 16
	if math.Hypot(ax-cx, ay-cy) <= pickupRadius {
		w.Destroy(id)
	}
}

func findByName(w *ecs.World, name string) (ecs.EntityID, bool) {
	var found ecs.EntityID
	ok := false
	ecs.Query1[component.Name](w)(func(id ecs.EntityID, n *component.Name) bool {
		if n.Value == name {
			found, ok = id, true
			return false
		}
		return true
	})
	return found, ok
}

// moveToward and lerpToward compare world-space positions (via each
// entity's cached GlobalTransform2D) rather than raw Transform2D, so a
// chaser and its target still measure distance correctly even when
// they sit under different parents; the step itself is then converted
// back into the chaser's own local space before touching its
// Transform2D.
func moveToward(w *ecs.World, id, target ecs.EntityID, speed, stopRadius, dt float64) {
	t, err := ecs.Get[component.Transform2D](w, id)
	if err != nil {
		return
	}
	ownX, ownY, ok := worldPosition(w, id)
	if !ok {
		return
	}
	targetX, targetY, ok := worldPosition(w, target)
	if !ok {
		return
	}
	if math.Hypot(targetX-ownX, targetY-ownY) <= stopRadius {
		return
	}
	lx, ly := toLocalTarget(w, id, targetX, targetY)
	stepToward(t, lx, ly, speed, dt)
}

func lerpToward(w *ecs.World, id, target ecs.EntityID, offsetX, offsetY, lerpRate, dt float64) {
	t, err := ecs.Get[component.Transform2D](w, id)
	if err != nil {
		return
	}
	targetX, targetY, ok := worldPosition(w, target)
	if !ok {
		return
	}
	lx, ly := toLocalTarget(w, id, targetX+offsetX, targetY+offsetY)
	factor := 1 - math.Exp(-lerpRate*dt)
	t.X += (lx - t.X) * factor
	t.Y += (ly - t.Y) * factor
}

// worldPosition reads id's cached world-space position. Before the
// transform propagation system has ever run for id (e.g. it was just
// created this frame), it falls back to raw Transform2D, which is
// already world space for a root entity; a parented entity with no
// cached GlobalTransform2D yet reports not-ok rather than guess wrong.
func worldPosition(w *ecs.World, id ecs.EntityID) (x, y float64, ok bool) {
	if g, err := ecs.Get[component.GlobalTransform2D](w, id); err == nil {
		x, y = g.Position()
		return x, y, true
	}
	t, err := ecs.Get[component.Transform2D](w, id)
	if err != nil {
		return 0, 0, false
	}
	if ecs.GetParent(w, id) != ecs.NilEntity {
		return 0, 0, false
	}
	return t.X, t.Y, true
}

// toLocalTarget converts a world-space point into id's own local space
// (the space its Transform2D is measured in) via its parent's cached
// GlobalTransform2D. A root entity's local space is world space.
func toLocalTarget(w *ecs.World, id ecs.EntityID, worldX, worldY float64) (float64, float64) {
	parent := ecs.GetParent(w, id)
	if parent == ecs.NilEntity {
		return worldX, worldY
	}
	g, err := ecs.Get[component.GlobalTransform2D](w, parent)
	if err != nil {
		return worldX, worldY
	}
	return transform2d.WorldToLocal(*g, worldX, worldY)
}

func stepToward(t *component.Transform2D, targetX, targetY, speed, dt float64) {
	dx, dy := targetX-t.X, targetY-t.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-6 {
		return
	}
	step := speed * dt
	if step >= dist {
		t.X, t.Y = targetX, targetY
		return
	}
	t.X += dx / dist * step
	t.Y += dy / dist * step
}
