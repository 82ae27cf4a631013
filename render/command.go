// Package render implements the sprite extraction, batching, and draw
// submission pipeline (SPEC_FULL.md §4). Grounded on teacher
// phanxgames/willow's render.go/batch.go/camera.go: the same
// command-struct-then-sort-then-coalesced-DrawTriangles32 shape, adapted
// from a Node-tree walk to ECS extraction over (GlobalTransform2D, Sprite).
package render

import "github.com/insiculous2d/engine/component"

// UnitSize is the world-space pixel size of one unit scale (SPEC_FULL.md
// §4.2 "unit-size (80 px default)").
const UnitSize = 80.0

// FullTexRegion selects an entire texture (u=0, v=0, w=1, h=1), used by
// callers whose texture handle already points at exactly the image they
// want drawn (e.g. the UI layer's per-glyph textures).
var FullTexRegion = component.TexRegion{W: 1, H: 1}

// Command is one sprite draw, already resolved to world space and ready
// for sorting and batching. Mirrors teacher's RenderCommand, trimmed to
// the sprite-only fields this engine's pipeline needs.
type Command struct {
	TextureHandle uint32
	Transform     [6]float32 // a, b, c, d, tx, ty — world affine
	Region        component.TexRegion
	Color         component.Color
	Depth         float32

	// Clip is the physical-pixel scissor rect this command must be drawn
	// within, or nil for no clipping. Set by the UI integration layer
	// (SPEC_FULL.md §4.5 "PushClipRect/PopClipRect"); sprite extraction
	// never sets it.
	Clip *Rect
}

func sameClip(a, b *Rect) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// affine32 narrows a float64 affine matrix to float32, matching teacher
// render.go's affine32 helper used right before a command is queued.
func affine32(m [6]float64) [6]float32 {
	return [6]float32{
		float32(m[0]), float32(m[1]), float32(m[2]),
		float32(m[3]), float32(m[4]), float32(m[5]),
	}
}
