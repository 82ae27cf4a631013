package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/insiculous2d/engine/asset"
)

// unit quad corners (-0.5..0.5), matching SPEC_FULL.md §4.2's base vertex
// buffer description. Index order [0,1,2, 0,2,3] (two triangles, TL-TR-BR
// then TL-BR-BL) mirrors teacher batch.go's appendSpriteQuad winding.
var quadCorners = [4][2]float32{
	{-0.5, -0.5}, // TL
	{0.5, -0.5},  // TR
	{0.5, 0.5},   // BR
	{-0.5, 0.5},  // BL
}

// Submit draws every batch onto dst, transforming each sprite's unit quad
// by view*worldTransform and sampling the texture's atlas region. One
// ebiten.DrawTriangles32 call per batch, grounded on teacher batch.go's
// flushSpriteBatch (SPEC_FULL.md §4.2 "Draw submission" step 4).
func Submit(dst *ebiten.Image, batches []Batch, view [6]float64, cache *asset.Cache) {
	v32 := affine32(view)

	var verts []ebiten.Vertex
	var inds []uint16

	for _, batch := range batches {
		page := cache.Image(batch.TextureHandle)
		bounds := page.Bounds()
		pw, ph := float32(bounds.Dx()), float32(bounds.Dy())

		verts = verts[:0]
		inds = inds[:0]

		for _, cmd := range batch.Commands {
			appendQuad(&verts, &inds, cmd, v32, pw, ph)
		}
		if len(verts) == 0 {
			continue
		}

		target := dst
		if batch.Clip != nil {
			r := image.Rect(int(batch.Clip.X), int(batch.Clip.Y), int(batch.Clip.X+batch.Clip.Width), int(batch.Clip.Y+batch.Clip.Height))
			sub, ok := dst.SubImage(r).(*ebiten.Image)
			if !ok {
				continue
			}
			target = sub
		}

		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		target.DrawTriangles32(verts, inds, page, &op)
	}
}

// appendQuad appends one sprite's 4 vertices and 6 indices, composing the
// sprite's world transform with the camera's view matrix before writing
// screen-space vertex positions (teacher batch.go's appendSpriteQuad,
// generalized to take the view matrix as a parameter instead of reading
// it off *Scene).
func appendQuad(verts *[]ebiten.Vertex, inds *[]uint16, cmd Command, view [6]float32, pageW, pageH float32) {
	t := cmd.Transform
	a, b, c, d, tx, ty := t[0], t[1], t[2], t[3], t[4], t[5]
	va, vb, vc, vd, vtx, vty := view[0], view[1], view[2], view[3], view[4], view[5]

	r := cmd.Region
	ca := cmd.Color.A
	var cr, cg, cb float32
	if ca != 0 {
		cr, cg, cb = cmd.Color.R*ca, cmd.Color.G*ca, cmd.Color.B*ca
	}

	base := uint16(len(*verts))
	for _, corner := range quadCorners {
		// local -> world (sprite's own affine)
		lx, ly := corner[0], corner[1]
		wx := a*lx + c*ly + tx
		wy := b*lx + d*ly + ty
		// world -> screen (camera view matrix)
		sx := va*wx + vc*wy + vtx
		sy := vb*wx + vd*wy + vty

		// UV from normalized region to source-image pixel coordinates.
		u := (lx + 0.5)
		v := (ly + 0.5)
		srcX := (r.U + u*r.W) * pageW
		srcY := (r.V + v*r.H) * pageH

		*verts = append(*verts, ebiten.Vertex{
			DstX: sx, DstY: sy,
			SrcX: srcX, SrcY: srcY,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}

	*inds = append(*inds, base+0, base+1, base+2, base+0, base+2, base+3)
}
