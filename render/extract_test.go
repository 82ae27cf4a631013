package render

import (
	"testing"

	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

func TestExtractSkipsEntitiesWithoutSprite(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.IdentityGlobalTransform2D())

	cmds := Extract(w)
	if len(cmds) != 0 {
		t.Errorf("len(cmds) = %d, want 0 (no Sprite component)", len(cmds))
	}
}

func TestExtractUsesSpriteRegionByDefault(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.IdentityGlobalTransform2D())
	sprite := component.DefaultSprite(5)
	sprite.Region = component.TexRegion{U: 0.25, V: 0.5, W: 0.25, H: 0.25}
	mustAdd(t, w, e, sprite)

	cmds := Extract(w)
	if len(cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(cmds))
	}
	if cmds[0].Region.U != 0.25 {
		t.Errorf("Region.U = %v, want 0.25", cmds[0].Region.U)
	}
	if cmds[0].TextureHandle != 5 {
		t.Errorf("TextureHandle = %v, want 5", cmds[0].TextureHandle)
	}
}

func TestExtractPrefersPlayingAnimationRegion(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.IdentityGlobalTransform2D())
	mustAdd(t, w, e, component.DefaultSprite(1))
	mustAdd(t, w, e, component.SpriteAnimation{
		FPS:     10,
		Frames:  []component.TexRegion{{U: 0}, {U: 0.5}},
		Playing: true,
	})

	cmds := Extract(w)
	if len(cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(cmds))
	}
	if cmds[0].Region.U != 0 {
		t.Errorf("Region.U = %v, want 0 (frame 0 of animation)", cmds[0].Region.U)
	}
}

func TestExtractIgnoresNonPlayingAnimation(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.IdentityGlobalTransform2D())
	sprite := component.DefaultSprite(1)
	sprite.Region = component.TexRegion{U: 0.9}
	mustAdd(t, w, e, sprite)
	mustAdd(t, w, e, component.SpriteAnimation{
		Frames:  []component.TexRegion{{U: 0}},
		Playing: false,
	})

	cmds := Extract(w)
	if cmds[0].Region.U != 0.9 {
		t.Errorf("Region.U = %v, want 0.9 (sprite's own region, animation not playing)", cmds[0].Region.U)
	}
}

func mustAdd[T any](t *testing.T, w *ecs.World, id ecs.EntityID, value T) {
	t.Helper()
	if err := ecs.Add(w, id, value); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
}
