package render

import (
	"math"

	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

// Rect is an axis-aligned rectangle, used for visible-bounds and culling
// math (teacher's Rect, unchanged).
type Rect struct {
	X, Y, Width, Height float64
}

// Intersects reports whether r and o overlap (teacher Rect.Intersects).
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X && r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// ViewMatrix computes the view matrix for cam, viewing into a viewport of
// viewportW x viewportH logical pixels. Ported verbatim from teacher
// camera.go's computeViewMatrix: Translate(center) * Scale(zoom) *
// Rotate(-rotation) * Translate(-X, -Y), generalized from teacher's
// *Camera/Viewport struct to the ECS component.Camera (SPEC_FULL.md §4.2).
func ViewMatrix(cam component.Camera, viewportW, viewportH float64) [6]float64 {
	cx := viewportW / 2
	cy := viewportH / 2

	cos := math.Cos(-cam.Rotation)
	sin := math.Sin(-cam.Rotation)
	z := cam.Zoom
	if z == 0 {
		z = 1
	}

	a := z * cos
	b := z * sin
	c := -z * sin
	d := z * cos
	tx := cx + z*(-cos*cam.X+sin*cam.Y)
	ty := cy + z*(-sin*cam.X-cos*cam.Y)

	return [6]float64{a, b, c, d, tx, ty}
}

// IdentityViewMatrix returns the view used when no main Camera exists: an
// identity orthographic projection centered on the origin at the given
// logical viewport size (SPEC_FULL.md §4.2 draw-submission step 3).
func IdentityViewMatrix(viewportW, viewportH float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, viewportW / 2, viewportH / 2}
}

func invertMat(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return [6]float64{1, 0, 0, 1, 0, 0}
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

func transformPointMat(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// VisibleBounds returns the world-space AABB a camera with the given view
// matrix sees within a viewport of viewportW x viewportH (teacher camera.go
// VisibleBounds, used to cull sprites whose world AABB doesn't intersect
// it before they reach extraction's batching stage).
func VisibleBounds(view [6]float64, viewportW, viewportH float64) Rect {
	inv := invertMat(view)

	x0, y0 := transformPointMat(inv, 0, 0)
	x1, y1 := transformPointMat(inv, viewportW, 0)
	x2, y2 := transformPointMat(inv, viewportW, viewportH)
	x3, y3 := transformPointMat(inv, 0, viewportH)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// SelectMainCamera returns the Camera marked IsMain with the lowest entity
// index, and whether one was found (spec §3 "at most one entity should
// have is_main=true; ties broken by lowest entity index").
func SelectMainCamera(w *ecs.World) (component.Camera, bool) {
	var best component.Camera
	var bestID ecs.EntityID
	found := false

	for id, cam := range ecs.Query1[component.Camera](w) {
		if !cam.IsMain {
			continue
		}
		if !found || id.Index() < bestID.Index() {
			best, bestID = *cam, id
			found = true
		}
	}
	return best, found
}
