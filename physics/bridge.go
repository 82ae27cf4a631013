package physics

import (
	"log"

	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

// fixedStep is the simulator's timestep: 1/60 s, per SPEC_FULL.md §4.3.
const fixedStep = 1.0 / 60.0

const maxStepsPerFrame = 8 // bounds the residual-draining loop after a stall

// EventKind distinguishes a collision transition.
type EventKind int

const (
	CollisionStarted EventKind = iota
	CollisionEnded
)

// Event is a collision transition between two entities, reported in
// registration order to every callback (SPEC_FULL.md §4.3 step 6).
type Event struct {
	Kind EventKind
	A, B ecs.EntityID
}

// Bridge maintains the 1:1 correspondence between ECS entities carrying
// component.RigidBody and simulator bodies, steps the simulator at a fixed
// timestep, and diffs contact sets frame to frame (SPEC_FULL.md §4.3).
type Bridge struct {
	Sim *World

	handles  map[ecs.EntityID]Handle
	owners   map[Handle]ecs.EntityID
	residual float64

	prevContacts map[Pair]bool
	callbacks    []func(Event)
}

// NewBridge creates a bridge over a fresh simulator.
func NewBridge() *Bridge {
	return &Bridge{
		Sim:          NewWorld(),
		handles:      make(map[ecs.EntityID]Handle),
		owners:       make(map[Handle]ecs.EntityID),
		prevContacts: make(map[Pair]bool),
	}
}

// OnCollision registers a callback invoked for every CollisionStarted and
// CollisionEnded event, in registration order.
func (br *Bridge) OnCollision(fn func(Event)) {
	br.callbacks = append(br.callbacks, fn)
}

// Step runs one frame of the bridge protocol: create/remove handles to
// match current RigidBody ownership, sync ECS state into the simulator,
// drain the fixed-step accumulator, sync back out, and emit collision
// events (SPEC_FULL.md §4.3 steps 1-6).
func (br *Bridge) Step(w *ecs.World, dt float64) {
	br.reconcileHandles(w)
	br.syncIn(w)

	br.residual += dt
	steps := 0
	for br.residual >= fixedStep && steps < maxStepsPerFrame {
		br.Sim.Step(fixedStep)
		br.residual -= fixedStep
		steps++
	}
	if steps == maxStepsPerFrame {
		log.Printf("physics: dropped residual time after %d fixed steps this frame", steps)
		br.residual = 0
	}

	br.syncOut(w)
	br.diffContacts()
}

func (br *Bridge) reconcileHandles(w *ecs.World) {
	seen := make(map[ecs.EntityID]bool, len(br.handles))
	ecs.Query1[component.RigidBody](w)(func(id ecs.EntityID, rb *component.RigidBody) bool {
		seen[id] = true
		if _, ok := br.handles[id]; ok {
			return true
		}
		br.createHandle(w, id, rb)
		return true
	})

	for id, h := range br.handles {
		if seen[id] {
			continue
		}
		br.releaseHandle(id, h)
	}
}

func (br *Bridge) createHandle(w *ecs.World, id ecs.EntityID, rb *component.RigidBody) {
	spec := Spec{
		Type:           BodyType(rb.BodyType),
		GravityScale:   rb.GravityScale,
		LinearDamping:  rb.LinearDamping,
		AngularDamping: rb.AngularDamping,
		CanRotate:      rb.CanRotate,
		CCDEnabled:     rb.CCDEnabled,
		VelocityX:      rb.VelocityX,
		VelocityY:      rb.VelocityY,
		AngularVelocity: rb.AngularVelocity,
	}
	if t, err := ecs.Get[component.Transform2D](w, id); err == nil {
		spec.X, spec.Y, spec.Rotation = t.X, t.Y, t.Rotation
	}
	if c, err := ecs.Get[component.Collider](w, id); err == nil {
		spec.Shape = shapeSpecFrom(c.Shape)
		spec.OffsetX, spec.OffsetY = c.OffsetX, c.OffsetY
		spec.IsSensor = c.IsSensor
		spec.Friction = c.Friction
		spec.Restitution = c.Restitution
	} else {
		spec.Shape = ShapeSpec{Kind: 0, HalfExtentX: 0.5, HalfExtentY: 0.5}
	}

	h := br.Sim.AddBody(spec)
	br.handles[id] = h
	br.owners[h] = id
}

// releaseHandle removes the simulation body for id and emits
// CollisionEnded for every active pair it participated in, per
// SPEC_FULL.md §4.3 "Body removal."
func (br *Bridge) releaseHandle(id ecs.EntityID, h Handle) {
	for pair := range br.prevContacts {
		if pair.A == h || pair.B == h {
			br.emit(CollisionEnded, pair)
			delete(br.prevContacts, pair)
		}
	}
	br.Sim.RemoveBody(h)
	delete(br.handles, id)
	delete(br.owners, h)
}

func shapeSpecFrom(s component.Shape) ShapeSpec {
	return ShapeSpec{
		Kind:         int(s.Kind),
		HalfExtentX:  s.HalfExtentX,
		HalfExtentY:  s.HalfExtentY,
		Radius:       s.Radius,
		HalfHeight:   s.HalfHeight,
	}
}

func (br *Bridge) syncIn(w *ecs.World) {
	for id, h := range br.handles {
		t, err := ecs.Get[component.Transform2D](w, id)
		if err != nil {
			continue
		}
		rb, err := ecs.Get[component.RigidBody](w, id)
		if err != nil {
			continue
		}
		br.Sim.SyncIn(h, t.X, t.Y, t.Rotation, rb.VelocityX, rb.VelocityY, rb.AngularVelocity)
	}
}

func (br *Bridge) syncOut(w *ecs.World) {
	for id, h := range br.handles {
		x, y, rotation, vx, vy, angularVel, ok := br.Sim.SyncOut(h)
		if !ok {
			continue
		}
		if t, err := ecs.Get[component.Transform2D](w, id); err == nil {
			t.X, t.Y, t.Rotation = x, y, rotation
		}
		if rb, err := ecs.Get[component.RigidBody](w, id); err == nil {
			rb.VelocityX, rb.VelocityY, rb.AngularVelocity = vx, vy, angularVel
		}
	}
}

func (br *Bridge) diffContacts() {
	current := br.Sim.Contacts()

	for pair := range current {
		if !br.prevContacts[pair] {
			br.emit(CollisionStarted, pair)
		}
	}
	for pair := range br.prevContacts {
		if !current[pair] {
			br.emit(CollisionEnded, pair)
		}
	}
	br.prevContacts = current
}

func (br *Bridge) emit(kind EventKind, pair Pair) {
	a, okA := br.owners[pair.A]
	b, okB := br.owners[pair.B]
	if !okA || !okB {
		return
	}
	ev := Event{Kind: kind, A: a, B: b}
	for _, cb := range br.callbacks {
		cb(ev)
	}
}
