// Package transform2d implements the affine composition math and the
// hierarchy propagation system described in SPEC_FULL.md §7. The matrix
// routines are ported from teacher phanxgames/willow's transform.go, with
// skew dropped (component.Transform2D carries no skew field) and the
// result expressed as component.GlobalTransform2D instead of teacher's
// unexported Node.worldTransform array.
package transform2d

import (
	"math"

	"github.com/insiculous2d/engine/component"
)

// mat is the [a, b, c, d, tx, ty] affine layout teacher's transform.go
// uses:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type mat [6]float64

var identity = mat{1, 0, 0, 1, 0, 0}

// computeLocal builds the local affine matrix from a Transform2D.
// Composition order is Scale -> Rotate -> Translate (teacher's order minus
// the pivot/skew stages, which this engine's Transform2D does not have).
func computeLocal(t component.Transform2D) mat {
	sin, cos := math.Sincos(t.Rotation)
	sx, sy := t.ScaleX, t.ScaleY

	a := cos * sx
	b := sin * sx
	c := -sin * sy
	d := cos * sy
	return mat{a, b, c, d, t.X, t.Y}
}

// multiply composes parent then child: result = parent * child.
func multiply(p, c mat) mat {
	return mat{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invert returns the inverse of m, or the identity if m is singular.
func invert(m mat) mat {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return mat{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies m to a point.
func transformPoint(m mat, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func (m mat) toGlobal() component.GlobalTransform2D {
	return component.GlobalTransform2D{A: m[0], B: m[1], C: m[2], D: m[3], Tx: m[4], Ty: m[5]}
}

func fromGlobal(g component.GlobalTransform2D) mat {
	return mat{g.A, g.B, g.C, g.D, g.Tx, g.Ty}
}

// WorldToLocal converts a world-space point into the space described by
// global (typically an entity's GlobalTransform2D).
func WorldToLocal(global component.GlobalTransform2D, wx, wy float64) (lx, ly float64) {
	return transformPoint(invert(fromGlobal(global)), wx, wy)
}

// LocalToWorld converts a point in the space described by global into
// world space.
func LocalToWorld(global component.GlobalTransform2D, lx, ly float64) (wx, wy float64) {
	return transformPoint(fromGlobal(global), lx, ly)
}

// ComposeLocal composes global with an additional local transform (for
// example a sprite's offset/rotation/scale relative to its entity's
// GlobalTransform2D), returning the result as a GlobalTransform2D. Used by
// the sprite pipeline's extraction step instead of the component-wise
// "position + rotated offset" arithmetic, since the matrix form composes
// correctly through rotated/scaled parents in one step.
func ComposeLocal(global component.GlobalTransform2D, local component.Transform2D) component.GlobalTransform2D {
	return multiply(fromGlobal(global), computeLocal(local)).toGlobal()
}

// RotatePoint rotates (x, y) by angle radians around the origin. The
// sprite pipeline does not call it; extraction composes a sprite's offset
// through ComposeLocal instead.
func RotatePoint(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}
