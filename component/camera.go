package component

// Camera projects world space onto a viewport. At most one live entity
// should carry IsMain=true; if several do, the render package breaks the
// tie by lowest entity index (SPEC_FULL.md §3).
type Camera struct {
	X, Y          float64
	Rotation      float64
	Zoom          float64
	ViewportWidth, ViewportHeight float64
	IsMain        bool
	Near, Far     float32
}

// DefaultCamera returns a camera centered on the origin with unit zoom and
// the given viewport, matching teacher's newCamera default (Zoom 1, no
// rotation).
func DefaultCamera(viewportWidth, viewportHeight float64) Camera {
	return Camera{Zoom: 1, ViewportWidth: viewportWidth, ViewportHeight: viewportHeight}
}
