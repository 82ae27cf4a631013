package component

// TexRegion is a texture-atlas region in normalized (u, v, w, h) coordinates,
// each in [0, 1]. Nothing clamps or wraps values outside that range; the
// render package scales them by the texture size as given.
type TexRegion struct {
	U, V, W, H float32
}

// Color is linear RGBA, each channel typically in [0, 1]. Nothing in the
// sprite path clamps it: the render package premultiplies RGB by A and
// submits the values as given.
type Color struct {
	R, G, B, A float32
}

// White is the default sprite tint: fully opaque, no color modulation.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Sprite is the visual a world-space entity presents to the sprite
// pipeline. Offset/Rotation/Scale are local to the entity's
// GlobalTransform2D, not additional hierarchy levels.
type Sprite struct {
	TextureHandle  uint32
	OffsetX, OffsetY float64
	Rotation       float64
	ScaleX, ScaleY float64
	Region         TexRegion
	Color          Color
	Depth          float32
}

// DefaultSprite returns a Sprite bound to textureHandle (asset.WhiteHandle
// for the reserved white pixel) at unit scale, full tint, zero depth.
func DefaultSprite(textureHandle uint32) Sprite {
	return Sprite{
		TextureHandle: textureHandle,
		ScaleX:        1,
		ScaleY:        1,
		Region:        TexRegion{W: 1, H: 1},
		Color:         White,
	}
}

// SpriteAnimation drives Sprite.Region by stepping through a list of frame
// regions at a fixed rate. When Playing, the frame orchestrator's
// animation-advance phase (SPEC_FULL.md §6 step 7) owns CurrentFrame and
// TimeAccumulator.
type SpriteAnimation struct {
	FPS             float64
	Frames          []TexRegion
	Playing         bool
	Looping         bool
	CurrentFrame    uint32
	TimeAccumulator float64
}

// CurrentRegion returns the frame region for the animation's current
// frame, or false if Frames is empty.
func (a SpriteAnimation) CurrentRegion() (TexRegion, bool) {
	if len(a.Frames) == 0 {
		return TexRegion{}, false
	}
	idx := int(a.CurrentFrame)
	if idx >= len(a.Frames) {
		idx = len(a.Frames) - 1
	}
	return a.Frames[idx], true
}
