package transform2d

import (
	"math"
	"testing"

	"github.com/insiculous2d/engine/component"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func transformAt(x, y, rotation, sx, sy float64) component.Transform2D {
	return component.Transform2D{X: x, Y: y, Rotation: rotation, ScaleX: sx, ScaleY: sy}
}

func TestComputeLocalIdentity(t *testing.T) {
	m := computeLocal(component.DefaultTransform2D())
	if m != identity {
		t.Errorf("computeLocal(identity) = %v, want %v", m, identity)
	}
}

func TestTransformPointTranslation(t *testing.T) {
	m := mat{1, 0, 0, 1, 10, -5}
	x, y := transformPoint(m, 1, 1)
	if !almostEqual(x, 11) || !almostEqual(y, -4) {
		t.Errorf("transformPoint = (%v, %v), want (11, -4)", x, y)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := computeLocal(transformAt(3, 4, math.Pi/6, 2, 0.5))
	inv := invert(m)

	x, y := transformPoint(m, 7, -2)
	bx, by := transformPoint(inv, x, y)
	if !almostEqual(bx, 7) || !almostEqual(by, -2) {
		t.Errorf("invert round trip = (%v, %v), want (7, -2)", bx, by)
	}
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	singular := mat{0, 0, 0, 0, 5, 5}
	if got := invert(singular); got != identity {
		t.Errorf("invert(singular) = %v, want identity", got)
	}
}

func TestMultiplyComposesTranslation(t *testing.T) {
	parent := mat{1, 0, 0, 1, 10, 0}
	child := mat{1, 0, 0, 1, 0, 5}
	got := multiply(parent, child)
	want := mat{1, 0, 0, 1, 10, 5}
	if got != want {
		t.Errorf("multiply = %v, want %v", got, want)
	}
}

func TestRotatePointQuarterTurn(t *testing.T) {
	x, y := RotatePoint(1, 0, math.Pi/2)
	if !almostEqual(x, 0) || !almostEqual(y, 1) {
		t.Errorf("RotatePoint quarter turn = (%v, %v), want (0, 1)", x, y)
	}
}
