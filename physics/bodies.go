package physics

import "math"

// Spec is the pixel-space description used to create or refresh a body.
// All fields are in the engine's native units (pixels, radians); the
// World converts internally.
type Spec struct {
	Type BodyType

	X, Y     float64
	Rotation float64

	VelocityX, VelocityY float64
	AngularVelocity      float64

	GravityScale   float64
	LinearDamping  float64
	AngularDamping float64
	CanRotate      bool
	CCDEnabled     bool

	Shape       ShapeSpec
	OffsetX, OffsetY float64
	IsSensor    bool
	Friction    float64
	Restitution float64
}

// ShapeSpec mirrors component.Shape so the simulator code does not depend
// on ECS component layout; bridge.go's shapeSpecFrom translates a
// component.Shape into a ShapeSpec (there is no reverse translation).
type ShapeSpec struct {
	Kind                     int // matches component.ShapeKind ordinals
	HalfExtentX, HalfExtentY float64
	Radius                   float64
	HalfHeight               float64
}

func (s ShapeSpec) toInternal() shape {
	switch s.Kind {
	case 1: // ShapeCircle
		return shape{kind: shapeCircle, radius: pxToM(s.Radius)}
	case 2: // ShapeCapsuleX
		return shape{kind: shapeCapsuleX, halfX: pxToM(s.HalfHeight), radius: pxToM(s.Radius)}
	case 3: // ShapeCapsuleY
		return shape{kind: shapeCapsuleY, halfX: pxToM(s.HalfHeight), radius: pxToM(s.Radius)}
	default: // ShapeBox
		return shape{kind: shapeBox, halfX: pxToM(s.HalfExtentX), halfY: pxToM(s.HalfExtentY)}
	}
}

func shapeArea(s shape) float64 {
	switch s.kind {
	case shapeBox:
		return 4 * s.halfX * s.halfY
	case shapeCapsuleX, shapeCapsuleY:
		return 2*s.halfX*2*s.radius + math.Pi*s.radius*s.radius
	default:
		return math.Pi * s.radius * s.radius
	}
}

// densityConstant gives dynamic bodies a plausible mass from shape area
// alone (teacher's demo instead hands mass in from radius directly; this
// engine generalizes that to every shape kind via area).
const densityConstant = 1.0

// AddBody creates a new simulation body from spec and returns its handle.
func (w *World) AddBody(spec Spec) Handle {
	sh := spec.Shape.toInternal()
	b := &body{
		typ:            spec.Type,
		shape:          sh,
		x:              pxToM(spec.X),
		y:              pxToM(spec.Y),
		rotation:       spec.Rotation,
		vx:             pxToM(spec.VelocityX),
		vy:             pxToM(spec.VelocityY),
		angularVel:     spec.AngularVelocity,
		gravityScale:   spec.GravityScale,
		linearDamping:  spec.LinearDamping,
		angularDamping: spec.AngularDamping,
		canRotate:      spec.CanRotate,
		isSensor:       spec.IsSensor,
		friction:       spec.Friction,
		restitution:    spec.Restitution,
		mass:           densityConstant * shapeArea(sh),
	}
	h := w.newHandle()
	w.bodies[h] = b
	return h
}

// RemoveBody deletes a body. No-op if h is unknown.
func (w *World) RemoveBody(h Handle) {
	delete(w.bodies, h)
}

// SyncIn overwrites a body's transform and velocity from ECS state
// (SPEC_FULL.md §4.3 step 2: "ECS is authoritative for externally driven
// motion this frame").
func (w *World) SyncIn(h Handle, x, y, rotation, vx, vy, angularVel float64) {
	b, ok := w.bodies[h]
	if !ok {
		return
	}
	b.x, b.y = pxToM(x), pxToM(y)
	b.rotation = rotation
	b.vx, b.vy = pxToM(vx), pxToM(vy)
	b.angularVel = angularVel
}

// SyncOut reads a body's current transform and velocity back out, in
// pixel space.
func (w *World) SyncOut(h Handle) (x, y, rotation, vx, vy, angularVel float64, ok bool) {
	b, present := w.bodies[h]
	if !present {
		return 0, 0, 0, 0, 0, 0, false
	}
	return mToPx(b.x), mToPx(b.y), b.rotation, mToPx(b.vx), mToPx(b.vy), b.angularVel, true
}

// Has reports whether h refers to a body still in the world.
func (w *World) Has(h Handle) bool {
	_, ok := w.bodies[h]
	return ok
}

// Len returns the number of live bodies, mainly for tests and metrics.
func (w *World) Len() int {
	return len(w.bodies)
}
