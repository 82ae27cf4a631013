package ui

import (
	"golang.org/x/image/font"

	"github.com/insiculous2d/engine/component"
)

// Builder accumulates DrawCommands for one frame in logical coordinates.
// Call Reset at the start of each frame before issuing new commands.
type Builder struct {
	commands []DrawCommand
	clips    []LogicalRect
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Reset clears the command list and clip stack for a new frame. A
// non-empty clip stack at Reset time indicates a missing PopClipRect in
// the previous frame's UI code; Reset doesn't warn about it, it just
// drops the stale state.
func (b *Builder) Reset() {
	b.commands = b.commands[:0]
	b.clips = b.clips[:0]
}

// Commands returns the commands recorded so far this frame.
func (b *Builder) Commands() []DrawCommand {
	return b.commands
}

func (b *Builder) currentClip() *LogicalRect {
	if len(b.clips) == 0 {
		return nil
	}
	r := b.clips[len(b.clips)-1]
	return &r
}

func (b *Builder) push(cmd DrawCommand) {
	cmd.Clip = b.currentClip()
	b.commands = append(b.commands, cmd)
}

// Rect queues a filled rectangle at the 1x1 white texture handle.
func (b *Builder) Rect(x, y, w, h float64, col component.Color, depth float32) {
	b.push(DrawCommand{Kind: CommandRect, X: x, Y: y, W: w, H: h, Color: col, Depth: depth})
}

// RectRounded queues a filled rectangle with rounded corners of the given
// radius. The render conversion treats radius as advisory (it draws the
// same quad as Rect); true corner rounding would need a mesh or a
// signed-distance shader, neither of which this pipeline has.
func (b *Builder) RectRounded(x, y, w, h, radius float64, col component.Color, depth float32) {
	b.push(DrawCommand{Kind: CommandRectRounded, X: x, Y: y, W: w, H: h, Radius: radius, Color: col, Depth: depth})
}

// RectBorder queues an unfilled rectangle outline of the given stroke
// thickness, built from four Line primitives at conversion time.
func (b *Builder) RectBorder(x, y, w, h, thickness float64, col component.Color, depth float32) {
	b.push(DrawCommand{Kind: CommandRectBorder, X: x, Y: y, W: w, H: h, Thickness: thickness, Color: col, Depth: depth})
}

// Text queues one run of text, laid out by the caller's font.Face at
// pixelSize; each glyph becomes one quad at draw-conversion time (spec
// §4.5 "Text -> one quad per laid-out glyph").
func (b *Builder) Text(x, y float64, text string, face font.Face, pixelSize int, col component.Color, depth float32) {
	b.push(DrawCommand{Kind: CommandText, X: x, Y: y, Text: text, Face: face, PixelSize: pixelSize, Color: col, Depth: depth})
}

// Circle queues a filled circle of the given radius, drawn as a single
// quad (spec §4.5 "small colored quads").
func (b *Builder) Circle(x, y, radius float64, col component.Color, depth float32) {
	b.push(DrawCommand{Kind: CommandCircle, X: x, Y: y, Radius: radius, Color: col, Depth: depth})
}

// Line queues a line segment from (x1,y1) to (x2,y2) of the given
// thickness, drawn as a rotated quad (spec §4.5 "line as rotated quad
// with length and thickness").
func (b *Builder) Line(x1, y1, x2, y2, thickness float64, col component.Color, depth float32) {
	b.push(DrawCommand{Kind: CommandLine, X: x1, Y: y1, X2: x2, Y2: y2, Thickness: thickness, Color: col, Depth: depth})
}

// PushClipRect intersects rect with the current clip (if any) and pushes
// the result onto the clip stack; subsequent commands record the new
// clip until the matching PopClipRect.
func (b *Builder) PushClipRect(rect LogicalRect) {
	if cur := b.currentClip(); cur != nil {
		rect = intersectLogicalRect(*cur, rect)
	}
	b.clips = append(b.clips, rect)
}

// PopClipRect restores the clip stack to its state before the matching
// PushClipRect. No-op if the stack is empty.
func (b *Builder) PopClipRect() {
	if len(b.clips) == 0 {
		return
	}
	b.clips = b.clips[:len(b.clips)-1]
}

func intersectLogicalRect(a, b LogicalRect) LogicalRect {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.W, b.X+b.W)
	y1 := min(a.Y+a.H, b.Y+b.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return LogicalRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
