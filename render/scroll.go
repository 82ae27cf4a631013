package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/insiculous2d/engine/component"
)

// CameraScroll animates a Camera's X and Y toward a target over a fixed
// duration: one gween.Tween per axis, each tracked to completion
// independently so a camera that arrives on one axis before the other
// doesn't stall.
type CameraScroll struct {
	tweenX, tweenY *gween.Tween
	doneX, doneY   bool
}

// ScrollCameraTo starts an animation from cam's current position to
// (targetX, targetY) over duration seconds using easeFn.
func ScrollCameraTo(cam component.Camera, targetX, targetY float64, duration float32, easeFn ease.TweenFunc) *CameraScroll {
	return &CameraScroll{
		tweenX: gween.New(float32(cam.X), float32(targetX), duration, easeFn),
		tweenY: gween.New(float32(cam.Y), float32(targetY), duration, easeFn),
	}
}

// Update advances the scroll by dt seconds, writing the interpolated
// position into cam.X/cam.Y, and reports whether both axes have finished.
// A finished CameraScroll should be discarded by the caller.
func (s *CameraScroll) Update(cam *component.Camera, dt float32) bool {
	if s == nil {
		return true
	}
	if !s.doneX {
		val, done := s.tweenX.Update(dt)
		cam.X = float64(val)
		s.doneX = done
	}
	if !s.doneY {
		val, done := s.tweenY.Update(dt)
		cam.Y = float64(val)
		s.doneY = done
	}
	return s.doneX && s.doneY
}
