package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/ecs"
)

// DrawFrame performs the sprite pipeline's per-frame draw submission
// (SPEC_FULL.md §4.2 steps 2-5, §6 step 8 "extract sprites, merge UI draw
// commands, batch, submit"): write the camera uniform (the main Camera's
// view matrix, or an identity view centered on the viewport if none
// exists), extract sprites, sort and batch them, and submit one
// DrawTriangles32 call per batch. uiCmds (already converted to
// world-space sprite commands by ui.ToSpriteCommands, clip rects and
// all) are submitted afterward against an identity view, since the UI
// layer is screen-locked and must not move with the world camera. Step 1
// (surface acquire/recover) is not performed here or by the orchestrator:
// dst is the screen image ebiten passes to Draw, and ebiten manages the
// surface behind it.
func DrawFrame(dst *ebiten.Image, w *ecs.World, cache *asset.Cache, uiCmds []Command) {
	bounds := dst.Bounds()
	viewportW, viewportH := float64(bounds.Dx()), float64(bounds.Dy())

	var view [6]float64
	if cam, ok := SelectMainCamera(w); ok {
		vw, vh := cam.ViewportWidth, cam.ViewportHeight
		if vw == 0 {
			vw = viewportW
		}
		if vh == 0 {
			vh = viewportH
		}
		view = ViewMatrix(cam, vw, vh)
	} else {
		view = IdentityViewMatrix(viewportW, viewportH)
	}

	cmds := Extract(w)
	batches := SortAndBatch(cmds)
	Submit(dst, batches, view, cache)

	if len(uiCmds) > 0 {
		uiView := IdentityViewMatrix(viewportW, viewportH)
		uiBatches := SortAndBatch(uiCmds)
		Submit(dst, uiBatches, uiView, cache)
	}
}
