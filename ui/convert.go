package ui

import (
	"math"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/render"
)

// screenRectCenterToWorld is the single coordinate-flip helper spec §4.5
// names directly: it converts a logical screen-space rect (top-left
// origin, y-down) centered at (x+w/2, y+h/2) into the world-space point a
// sprite quad should be centered on (origin at the viewport center,
// y-up), given the logical viewport size.
func screenRectCenterToWorld(x, y, w, h, viewportW, viewportH float64) (wx, wy float64) {
	wx = x + w/2 - viewportW/2
	wy = viewportH/2 - (y + h/2)
	return
}

// ToSpriteCommands converts cmds (in logical coordinates) to world-space
// render.Commands at the given logical viewport size and physical scale
// factor, using cache to resolve the white-pixel handle and glyph
// textures (spec §4.5).
func ToSpriteCommands(cmds []DrawCommand, cache *asset.Cache, scaleFactor, viewportW, viewportH float64) []render.Command {
	out := make([]render.Command, 0, len(cmds))

	for _, cmd := range cmds {
		clip := toPhysicalClip(cmd.Clip, scaleFactor)

		switch cmd.Kind {
		case CommandRect, CommandRectRounded:
			out = append(out, rectCommand(cmd, viewportW, viewportH, clip))
		case CommandRectBorder:
			out = append(out, borderCommands(cmd, viewportW, viewportH, clip)...)
		case CommandCircle:
			out = append(out, circleCommand(cmd, viewportW, viewportH, clip))
		case CommandLine:
			out = append(out, lineCommand(cmd, viewportW, viewportH, clip))
		case CommandText:
			out = append(out, textCommands(cmd, cache, viewportW, viewportH, clip)...)
		}
	}
	return out
}

func toPhysicalClip(r *LogicalRect, scaleFactor float64) *render.Rect {
	if r == nil {
		return nil
	}
	return &render.Rect{
		X:      r.X * scaleFactor,
		Y:      r.Y * scaleFactor,
		Width:  r.W * scaleFactor,
		Height: r.H * scaleFactor,
	}
}

func quadTransform(cx, cy, w, h, rotation float64) [6]float32 {
	sin, cos := math.Sincos(rotation)
	a := cos * w
	b := sin * w
	c := -sin * h
	d := cos * h
	return [6]float32{float32(a), float32(b), float32(c), float32(d), float32(cx), float32(cy)}
}

func rectCommand(cmd DrawCommand, viewportW, viewportH float64, clip *render.Rect) render.Command {
	cx, cy := screenRectCenterToWorld(cmd.X, cmd.Y, cmd.W, cmd.H, viewportW, viewportH)
	return render.Command{
		TextureHandle: asset.WhiteHandle,
		Transform:     quadTransform(cx, cy, cmd.W, cmd.H, 0),
		Region:        render.FullTexRegion,
		Color:         cmd.Color,
		Depth:         cmd.Depth,
		Clip:          clip,
	}
}

func circleCommand(cmd DrawCommand, viewportW, viewportH float64, clip *render.Rect) render.Command {
	cx, cy := screenRectCenterToWorld(cmd.X-cmd.Radius, cmd.Y-cmd.Radius, cmd.Radius*2, cmd.Radius*2, viewportW, viewportH)
	return render.Command{
		TextureHandle: asset.WhiteHandle,
		Transform:     quadTransform(cx, cy, cmd.Radius*2, cmd.Radius*2, 0),
		Region:        render.FullTexRegion,
		Color:         cmd.Color,
		Depth:         cmd.Depth,
		Clip:          clip,
	}
}

func lineCommand(cmd DrawCommand, viewportW, viewportH float64, clip *render.Rect) render.Command {
	dx, dy := cmd.X2-cmd.X, cmd.Y2-cmd.Y
	length := math.Hypot(dx, dy)
	midX, midY := (cmd.X+cmd.X2)/2, (cmd.Y+cmd.Y2)/2
	cx, cy := screenRectCenterToWorld(midX-length/2, midY-cmd.Thickness/2, length, cmd.Thickness, viewportW, viewportH)
	angle := -math.Atan2(dy, dx)

	return render.Command{
		TextureHandle: asset.WhiteHandle,
		Transform:     quadTransform(cx, cy, length, cmd.Thickness, angle),
		Region:        render.FullTexRegion,
		Color:         cmd.Color,
		Depth:         cmd.Depth,
		Clip:          clip,
	}
}

func borderCommands(cmd DrawCommand, viewportW, viewportH float64, clip *render.Rect) []render.Command {
	t := cmd.Thickness
	edges := []DrawCommand{
		{Kind: CommandLine, X: cmd.X, Y: cmd.Y, X2: cmd.X + cmd.W, Y2: cmd.Y, Thickness: t, Color: cmd.Color, Depth: cmd.Depth},
		{Kind: CommandLine, X: cmd.X + cmd.W, Y: cmd.Y, X2: cmd.X + cmd.W, Y2: cmd.Y + cmd.H, Thickness: t, Color: cmd.Color, Depth: cmd.Depth},
		{Kind: CommandLine, X: cmd.X + cmd.W, Y: cmd.Y + cmd.H, X2: cmd.X, Y2: cmd.Y + cmd.H, Thickness: t, Color: cmd.Color, Depth: cmd.Depth},
		{Kind: CommandLine, X: cmd.X, Y: cmd.Y + cmd.H, X2: cmd.X, Y2: cmd.Y, Thickness: t, Color: cmd.Color, Depth: cmd.Depth},
	}
	out := make([]render.Command, 0, 4)
	for _, e := range edges {
		out = append(out, lineCommand(e, viewportW, viewportH, clip))
	}
	return out
}

func textCommands(cmd DrawCommand, cache *asset.Cache, viewportW, viewportH float64, clip *render.Rect) []render.Command {
	if cmd.Face == nil {
		return nil
	}
	var out []render.Command
	penX := cmd.X
	for _, r := range cmd.Text {
		if r == '\n' {
			continue
		}
		glyph := cache.Glyph(cmd.Face, r, cmd.PixelSize)
		bounds := glyph.Bounds()
		w, h := float64(bounds.Dx()), float64(bounds.Dy())

		handle := cache.GlyphHandle(cmd.Face, r, cmd.PixelSize)
		cx, cy := screenRectCenterToWorld(penX, cmd.Y, w, h, viewportW, viewportH)

		out = append(out, render.Command{
			TextureHandle: handle,
			Transform:     quadTransform(cx, cy, w, h, 0),
			Region:        render.FullTexRegion,
			Color:         cmd.Color,
			Depth:         cmd.Depth,
			Clip:          clip,
		})

		penX += float64(asset.Advance(cmd.Face, r).Ceil())
	}
	return out
}
