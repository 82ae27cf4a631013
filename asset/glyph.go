package asset

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// glyphKey identifies one rasterized glyph: font face, codepoint, and
// pixel size, matching SPEC_FULL.md §4.6 ("keyed by (font, codepoint,
// pixel_size)").
type glyphKey struct {
	face      font.Face
	codepoint rune
	pixelSize int
}

// Glyph returns the cached alpha-mask texture for (face, r, pixelSize),
// rasterizing and caching it on first request. The returned image is
// grayscale alpha only — callers tint it by modulating sprite color at
// render time, keeping the cache color-agnostic.
func (c *Cache) Glyph(face font.Face, r rune, pixelSize int) *ebiten.Image {
	key := glyphKey{face: face, codepoint: r, pixelSize: pixelSize}
	if img, ok := c.glyphs[key]; ok {
		return img
	}

	img := rasterizeGlyph(face, r)
	c.glyphs[key] = img
	return img
}

// GlyphHandle returns a texture handle bound to the rasterized glyph for
// (face, r, pixelSize), allocating one on first request so glyphs can
// flow through the same handle-based Command/Submit path as ordinary
// sprites (the UI integration layer's Text primitive, SPEC_FULL.md §4.5).
func (c *Cache) GlyphHandle(face font.Face, r rune, pixelSize int) uint32 {
	key := glyphKey{face: face, codepoint: r, pixelSize: pixelSize}
	if h, ok := c.glyphHandles[key]; ok {
		return h
	}
	img := c.Glyph(face, r, pixelSize)
	h := c.alloc(entry{image: img})
	c.glyphHandles[key] = h
	return h
}

// Advance returns the horizontal advance for r in face, in 26.6 fixed
// point (the unit font.Face already uses), so text layout can lay out
// glyphs without re-querying the font library per call site.
func Advance(face font.Face, r rune) fixed.Int26_6 {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return adv
}

func rasterizeGlyph(face font.Face, r rune) *ebiten.Image {
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, 0), r)
	if !ok || dr.Empty() {
		return ebiten.NewImage(1, 1)
	}
	w, h := dr.Dx(), dr.Dy()
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			img.Set(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return img
}
