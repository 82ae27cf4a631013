package render

import (
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
	"github.com/insiculous2d/engine/transform2d"
)

// Extract builds one Command per live (GlobalTransform2D, Sprite) entity
// (SPEC_FULL.md §4.2 "Extraction"). When the entity also carries a
// SpriteAnimation that is Playing, the animation's current frame region
// replaces the sprite's own Region.
func Extract(w *ecs.World) []Command {
	cmds := make([]Command, 0, ecs.Count[component.Sprite](w))

	for id, global, sprite := range ecs.Query2[component.GlobalTransform2D, component.Sprite](w) {
		region := sprite.Region
		if anim, err := ecs.Get[component.SpriteAnimation](w, id); err == nil && anim.Playing {
			if r, ok := anim.CurrentRegion(); ok {
				region = r
			}
		}

		local := component.Transform2D{
			X:        sprite.OffsetX,
			Y:        sprite.OffsetY,
			Rotation: sprite.Rotation,
			ScaleX:   sprite.ScaleX * UnitSize,
			ScaleY:   sprite.ScaleY * UnitSize,
		}
		world := transform2d.ComposeLocal(*global, local)

		cmds = append(cmds, Command{
			TextureHandle: sprite.TextureHandle,
			Transform:     affine32([6]float64{world.A, world.B, world.C, world.D, world.Tx, world.Ty}),
			Region:        region,
			Color:         sprite.Color,
			Depth:         sprite.Depth,
		})
	}

	return cmds
}
