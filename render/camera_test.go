package render

import (
	"math"
	"testing"

	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

func TestViewMatrixCentersCameraAtViewportCenter(t *testing.T) {
	cam := component.DefaultCamera(800, 600)
	view := ViewMatrix(cam, 800, 600)

	sx, sy := transformPointMat(view, 0, 0)
	if math.Abs(sx-400) > 1e-9 || math.Abs(sy-300) > 1e-9 {
		t.Errorf("world origin -> screen (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestViewMatrixZoomScalesDistanceFromCenter(t *testing.T) {
	cam := component.DefaultCamera(800, 600)
	cam.Zoom = 2
	view := ViewMatrix(cam, 800, 600)

	sx, _ := transformPointMat(view, 10, 0)
	if math.Abs(sx-420) > 1e-9 {
		t.Errorf("screen x at world (10,0) zoom=2 = %v, want 420", sx)
	}
}

func TestIdentityViewMatrixCentersOrigin(t *testing.T) {
	view := IdentityViewMatrix(800, 600)
	sx, sy := transformPointMat(view, 0, 0)
	if sx != 400 || sy != 300 {
		t.Errorf("identity view origin -> (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestVisibleBoundsMatchesViewportAtZoomOne(t *testing.T) {
	cam := component.DefaultCamera(800, 600)
	view := ViewMatrix(cam, 800, 600)
	bounds := VisibleBounds(view, 800, 600)

	if math.Abs(bounds.Width-800) > 1e-6 || math.Abs(bounds.Height-600) > 1e-6 {
		t.Errorf("bounds = %+v, want 800x600", bounds)
	}
}

func TestSelectMainCameraPicksLowestIndexOnTie(t *testing.T) {
	w := ecs.NewWorld()
	first := w.CreateEntity()
	second := w.CreateEntity()

	camA := component.DefaultCamera(800, 600)
	camA.IsMain = true
	camA.X = 1
	camB := component.DefaultCamera(800, 600)
	camB.IsMain = true
	camB.X = 2

	mustAdd(t, w, second, camB)
	mustAdd(t, w, first, camA)

	got, ok := SelectMainCamera(w)
	if !ok {
		t.Fatal("expected a main camera")
	}
	if got.X != 1 {
		t.Errorf("SelectMainCamera().X = %v, want 1 (lowest entity index)", got.X)
	}
}

func TestSelectMainCameraNoneFound(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	cam := component.DefaultCamera(800, 600)
	cam.IsMain = false
	mustAdd(t, w, e, cam)

	if _, ok := SelectMainCamera(w); ok {
		t.Error("SelectMainCamera found a camera with IsMain=false")
	}
}
