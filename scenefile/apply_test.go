package scenefile

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

func specFromYAML(t *testing.T, src string) ComponentSpec {
	t.Helper()
	var spec ComponentSpec
	if err := yaml.Unmarshal([]byte(src), &spec); err != nil {
		t.Fatalf("yaml.Unmarshal(%q): %v", src, err)
	}
	return spec
}

func TestComponentSpecUnmarshalRequiresKind(t *testing.T) {
	var spec ComponentSpec
	err := yaml.Unmarshal([]byte("x: 1\n"), &spec)
	if err == nil {
		t.Fatal("expected error for missing kind")
	}
}

func TestApplyTransform2DDefaultsScaleToOne(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	spec := specFromYAML(t, "kind: transform2d\nx: 3\ny: 4\n")

	if err := ApplyComponents(w, id, []ComponentSpec{spec}, "", asset.NewCache()); err != nil {
		t.Fatalf("ApplyComponents: %v", err)
	}
	got, err := ecs.Get[component.Transform2D](w, id)
	if err != nil {
		t.Fatalf("ecs.Get: %v", err)
	}
	if got.X != 3 || got.Y != 4 || got.ScaleX != 1 || got.ScaleY != 1 {
		t.Errorf("Transform2D = %+v, want X=3 Y=4 ScaleX=1 ScaleY=1", *got)
	}
}

func TestApplySpriteResolvesWhiteTexture(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	cache := asset.NewCache()
	spec := specFromYAML(t, "kind: sprite\ntexture: \"#white\"\ncolor: \"FF0000\"\n")

	if err := ApplyComponents(w, id, []ComponentSpec{spec}, "", cache); err != nil {
		t.Fatalf("ApplyComponents: %v", err)
	}
	got, err := ecs.Get[component.Sprite](w, id)
	if err != nil {
		t.Fatalf("ecs.Get: %v", err)
	}
	if got.TextureHandle != asset.WhiteHandle {
		t.Errorf("TextureHandle = %d, want WhiteHandle", got.TextureHandle)
	}
	if got.Color.R != 1 || got.Color.A != 1 {
		t.Errorf("Color = %+v, want R=1 A=1", got.Color)
	}
}

func TestApplyRigidBodyUnknownBodyTypeErrors(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	spec := specFromYAML(t, "kind: rigidbody\nbody_type: floaty\n")

	if err := ApplyComponents(w, id, []ComponentSpec{spec}, "", asset.NewCache()); err == nil {
		t.Error("expected error for unknown body_type")
	}
}

func TestApplyColliderBoxShape(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	spec := specFromYAML(t, "kind: collider\nshape: box\nhalf_extent_x: 2\nhalf_extent_y: 3\n")

	if err := ApplyComponents(w, id, []ComponentSpec{spec}, "", asset.NewCache()); err != nil {
		t.Fatalf("ApplyComponents: %v", err)
	}
	got, err := ecs.Get[component.Collider](w, id)
	if err != nil {
		t.Fatalf("ecs.Get: %v", err)
	}
	if got.Shape.Kind != component.ShapeBox || got.Shape.HalfExtentX != 2 || got.Shape.HalfExtentY != 3 {
		t.Errorf("Shape = %+v, want box 2x3", got.Shape)
	}
}

func TestApplyUnknownComponentKindErrors(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	spec := specFromYAML(t, "kind: nonsense\n")

	err := ApplyComponents(w, id, []ComponentSpec{spec}, "", asset.NewCache())
	if err == nil {
		t.Fatal("expected error for unrecognized component kind")
	}
}
