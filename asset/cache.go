// Package asset implements the texture and glyph handle cache:
// handle-addressed textures with handle 0 reserved for an always-present
// 1x1 white pixel, idempotent path-based loading, and a color-agnostic
// glyph cache. Handles are not reference-counted and are never released. Grounded on teacher phanxgames/willow's
// atlas.go (region lookup, magenta-placeholder-on-miss idiom) and
// rendertexture.go (programmatic image construction).
package asset

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// WhiteHandle is the reserved handle for the 1x1 opaque white texture,
// always present (SPEC_FULL.md §3 asset lifecycle).
const WhiteHandle uint32 = 0

// Debug gates the magenta-placeholder warning log, mirroring teacher
// atlas.go's package-level globalDebug flag.
var Debug bool

type entry struct {
	image *ebiten.Image
	path  string // "" for solid/checkerboard; set for path-loaded textures
	solid *color.RGBA
}

// solidKey identifies a programmatic solid-color texture by its
// parameters, so CreateSolidColor can return an existing handle instead
// of leaking a duplicate for repeated requests of the same color.
type solidKey struct {
	w, h int
	col  color.RGBA
}

// Cache owns every loaded texture and the glyph cache built on top of it.
type Cache struct {
	entries    map[uint32]entry
	byPath     map[string]uint32
	bySolid    map[solidKey]uint32
	nextHandle uint32

	missing *ebiten.Image

	glyphs       map[glyphKey]*ebiten.Image
	glyphHandles map[glyphKey]uint32
}

// NewCache returns a cache with handle 0 already bound to a 1x1 white
// texture.
func NewCache() *Cache {
	c := &Cache{
		entries:      make(map[uint32]entry),
		byPath:       make(map[string]uint32),
		bySolid:      make(map[solidKey]uint32),
		glyphs:       make(map[glyphKey]*ebiten.Image),
		glyphHandles: make(map[glyphKey]uint32),
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	c.entries[WhiteHandle] = entry{image: white}
	c.nextHandle = 1
	return c
}

// LoadTexture decodes the image at path and returns its handle, reusing an
// existing handle if path was already loaded (idempotent on path
// equality, SPEC_FULL.md §4.6).
func (c *Cache) LoadTexture(path string) (uint32, error) {
	if h, ok := c.byPath[path]; ok {
		return h, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("asset: open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("asset: decode %q: %w", path, err)
	}

	h := c.alloc(entry{image: ebiten.NewImageFromImage(img), path: path})
	c.byPath[path] = h
	return h, nil
}

// CreateSolidColor allocates a programmatic w x h texture filled with a
// single color, reusing the existing handle if an identical (w, h, col)
// texture was already created (idempotent the same way LoadTexture is
// idempotent on path).
func (c *Cache) CreateSolidColor(w, h int, col color.RGBA) uint32 {
	key := solidKey{w, h, col}
	if h, ok := c.bySolid[key]; ok {
		return h
	}
	img := ebiten.NewImage(w, h)
	img.Fill(col)
	handle := c.alloc(entry{image: img, solid: &col})
	c.bySolid[key] = handle
	return handle
}

// CreateCheckerboard allocates a programmatic texture alternating between
// two colors in cellSize x cellSize squares.
func (c *Cache) CreateCheckerboard(w, h, cellSize int, a, b color.RGBA) uint32 {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col := a
			if ((x/cellSize)+(y/cellSize))%2 == 1 {
				col = b
			}
			img.Set(x, y, col)
		}
	}
	return c.alloc(entry{image: img})
}

func (c *Cache) alloc(e entry) uint32 {
	h := c.nextHandle
	c.nextHandle++
	c.entries[h] = e
	return h
}

// Image returns the ebiten image bound to handle, or a magenta/black
// checkerboard placeholder (with a debug warning) if handle is unknown,
// the same graceful-degradation idiom as teacher atlas.go's Region()
// magenta placeholder.
func (c *Cache) Image(handle uint32) *ebiten.Image {
	if e, ok := c.entries[handle]; ok {
		return e.image
	}
	if Debug {
		log.Printf("asset: texture handle %d not found, using checkerboard placeholder", handle)
	}
	return c.missingTexture()
}

// missingTexture lazily builds the placeholder Image() falls back to,
// via CreateCheckerboard, so an unknown handle reads as an obvious
// missing-texture pattern instead of a silent blank fill.
func (c *Cache) missingTexture() *ebiten.Image {
	if c.missing == nil {
		const cell = 8
		magenta := color.RGBA{R: 255, B: 255, A: 255}
		black := color.RGBA{A: 255}
		h := c.CreateCheckerboard(cell*2, cell*2, cell, magenta, black)
		c.missing = c.entries[h].image
	}
	return c.missing
}

// Has reports whether handle refers to a loaded texture.
func (c *Cache) Has(handle uint32) bool {
	_, ok := c.entries[handle]
	return ok
}

// GetTexturePath returns the source identifier for serialization:
// "#white" for handle 0, "#solid:RRGGBBAA" for solid colors, or the
// original load path. Returns ("", false) for unknown handles.
func (c *Cache) GetTexturePath(handle uint32) (string, bool) {
	e, ok := c.entries[handle]
	if !ok {
		return "", false
	}
	if handle == WhiteHandle {
		return "#white", true
	}
	if e.solid != nil {
		return fmt.Sprintf("#solid:%02X%02X%02X%02X", e.solid.R, e.solid.G, e.solid.B, e.solid.A), true
	}
	return e.path, true
}
