// Package ui implements the immediate-mode UI integration layer
// (SPEC_FULL.md §9 / spec.md §4.5): a per-frame DrawCommand builder in
// logical (screen-top-left) coordinates, converted to world-space sprite
// primitives the render package can batch alongside ordinary sprites.
// Grounded on teacher phanxgames/willow's habit of appending to a typed
// command slice and flushing on state change (render.go/batch.go), since
// no immediate-mode UI library appears anywhere in the pack.
package ui

import (
	"golang.org/x/image/font"

	"github.com/insiculous2d/engine/component"
)

// CommandKind discriminates the DrawCommand variants spec §4.5 lists.
type CommandKind int

const (
	CommandRect CommandKind = iota
	CommandRectRounded
	CommandRectBorder
	CommandText
	CommandCircle
	CommandLine
)

// DrawCommand is one UI primitive queued this frame, in logical
// (screen-top-left) coordinates. Only the fields relevant to Kind are
// populated; the rest are zero.
type DrawCommand struct {
	Kind CommandKind

	X, Y, W, H float64 // Rect/RectRounded/RectBorder/Text bounding box
	Radius     float64 // RectRounded corner radius, Circle radius
	Thickness  float64 // RectBorder/Line stroke thickness
	X2, Y2     float64 // Line endpoint

	Text      string
	Face      font.Face
	PixelSize int

	Color component.Color
	Depth float32

	// Clip is the clip rect (logical coordinates) active when this
	// command was recorded, or nil if PushClipRect was never called.
	Clip *LogicalRect
}

// LogicalRect is a rectangle in logical (pre-scale-factor) pixels.
type LogicalRect struct {
	X, Y, W, H float64
}
