package physics

// Presets are pure constructors of simulator defaults (SPEC_FULL.md §4.3
// "Presets"). Each returns a body type, a ShapeSpec and a bodyTuning
// rather than a full Spec, since position still has to come from the
// caller; no code in this module turns them into component.RigidBody or
// component.Collider values.

// PlatformerPlayerPreset returns RigidBody/Collider defaults for a
// side-scrolling character: moderate damping, rotation locked so the
// character never tips over, standard friction.
func PlatformerPlayerPreset(halfWidth, halfHeight float64) (BodyType, ShapeSpec, bodyTuning) {
	return Dynamic, ShapeSpec{Kind: 0, HalfExtentX: halfWidth, HalfExtentY: halfHeight}, bodyTuning{
		GravityScale: 1, LinearDamping: 0, CanRotate: false, Friction: 0.8, Restitution: 0,
	}
}

// TopDownPlayerPreset returns defaults for an 8-directional character with
// no gravity and no rotation lock needed since nothing tips it.
func TopDownPlayerPreset(radius float64) (BodyType, ShapeSpec, bodyTuning) {
	return Dynamic, ShapeSpec{Kind: 1, Radius: radius}, bodyTuning{
		GravityScale: 0, LinearDamping: 0.9, CanRotate: true, Friction: 0.1, Restitution: 0,
	}
}

// StaticPlatformPreset returns defaults for level geometry: a Static box
// with high friction and no bounce.
func StaticPlatformPreset(halfWidth, halfHeight float64) (BodyType, ShapeSpec, bodyTuning) {
	return Static, ShapeSpec{Kind: 0, HalfExtentX: halfWidth, HalfExtentY: halfHeight}, bodyTuning{
		Friction: 0.9, Restitution: 0,
	}
}

// PushableBoxPreset returns defaults for a Dynamic box crates can push
// around: full rotation freedom, moderate friction, heavier damping so it
// doesn't slide forever.
func PushableBoxPreset(halfWidth, halfHeight float64) (BodyType, ShapeSpec, bodyTuning) {
	return Dynamic, ShapeSpec{Kind: 0, HalfExtentX: halfWidth, HalfExtentY: halfHeight}, bodyTuning{
		GravityScale: 1, LinearDamping: 0.3, CanRotate: true, Friction: 0.6, Restitution: 0,
	}
}

// BouncyPreset returns defaults for a body that conserves most of its
// velocity on impact (teacher demo's restitution=0.25 scaled up).
func BouncyPreset(radius float64) (BodyType, ShapeSpec, bodyTuning) {
	return Dynamic, ShapeSpec{Kind: 1, Radius: radius}, bodyTuning{
		GravityScale: 1, LinearDamping: 0, CanRotate: true, Friction: 0.2, Restitution: 0.85,
	}
}

// SlipperyPreset returns defaults for near-frictionless ice-like bodies.
func SlipperyPreset(halfWidth, halfHeight float64) (BodyType, ShapeSpec, bodyTuning) {
	return Dynamic, ShapeSpec{Kind: 0, HalfExtentX: halfWidth, HalfExtentY: halfHeight}, bodyTuning{
		GravityScale: 1, LinearDamping: 0, CanRotate: false, Friction: 0.01, Restitution: 0,
	}
}

// KinematicMoverPreset returns defaults for a Kinematic platform driven
// entirely by explicit position/velocity writes from user code.
func KinematicMoverPreset(halfWidth, halfHeight float64) (BodyType, ShapeSpec, bodyTuning) {
	return Kinematic, ShapeSpec{Kind: 0, HalfExtentX: halfWidth, HalfExtentY: halfHeight}, bodyTuning{
		Friction: 0.5, Restitution: 0,
	}
}

// bodyTuning carries the non-shape, non-position fields a preset fixes,
// for the caller to splice into a full Spec alongside its own position.
type bodyTuning struct {
	GravityScale   float64
	LinearDamping  float64
	AngularDamping float64
	CanRotate      bool
	Friction       float64
	Restitution    float64
}
