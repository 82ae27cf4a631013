// Package component defines the plain data values attached to entities.
// Every type here is a pure value: no methods beyond simple accessors, no
// behavior. See SPEC_FULL.md §3.
package component

// Transform2D is the local transform relative to the owning entity's
// parent (or the world, if it has none). Rotation is radians.
type Transform2D struct {
	X, Y    float64
	Rotation float64
	ScaleX, ScaleY float64
}

// DefaultTransform2D returns the identity transform (unit scale, no
// rotation, origin position). NewTransform2D-style zero values are wrong
// for scale (0,0 would collapse every sprite), so constructors should use
// this instead of a bare struct literal.
func DefaultTransform2D() Transform2D {
	return Transform2D{ScaleX: 1, ScaleY: 1}
}

// GlobalTransform2D is the cached world-space transform, written only by
// the transform propagation system (never by user code). It stores the
// composed affine matrix directly rather than position/rotation/scale,
// since composition is matrix multiplication and decomposing back to PRS
// per frame would be wasted work the sprite pipeline doesn't need.
type GlobalTransform2D struct {
	A, B, C, D float64 // 2x2 linear part
	Tx, Ty     float64 // translation
}

// IdentityGlobalTransform2D returns the identity affine matrix.
func IdentityGlobalTransform2D() GlobalTransform2D {
	return GlobalTransform2D{A: 1, D: 1}
}

// Position extracts the world-space translation.
func (g GlobalTransform2D) Position() (x, y float64) {
	return g.Tx, g.Ty
}
