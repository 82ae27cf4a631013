package scenefile

import (
	"testing"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

const sampleScene = `
name: test scene
prefabs:
  enemy:
    - kind: sprite
      texture: "#white"
      color: "00FF00"
entities:
  - name: root
    prefab: enemy
    overrides:
      - kind: sprite
        texture: "#white"
        color: "FF0000"
    children:
      - name: child
        components:
          - kind: transform2d
            x: 1
            y: 2
`

func TestParseSampleScene(t *testing.T) {
	scene, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if scene.Name != "test scene" {
		t.Errorf("Name = %q", scene.Name)
	}
	if len(scene.Prefabs["enemy"]) != 1 {
		t.Fatalf("prefab enemy has %d components, want 1", len(scene.Prefabs["enemy"]))
	}
	if len(scene.Entities) != 1 || len(scene.Entities[0].Children) != 1 {
		t.Fatalf("unexpected entity tree: %+v", scene.Entities)
	}
}

func TestInstantiateAppliesOverridesAtopPrefab(t *testing.T) {
	scene, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	w := ecs.NewWorld()
	cache := asset.NewCache()

	roots, err := Instantiate(scene, w, "", cache)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if len(roots) != 1 {
		t.Fatalf("len(roots) = %d, want 1", len(roots))
	}

	sprite, err := ecs.Get[component.Sprite](w, roots[0])
	if err != nil {
		t.Fatalf("ecs.Get Sprite: %v", err)
	}
	if sprite.Color.R != 1 || sprite.Color.G != 0 {
		t.Errorf("override should win over prefab: Color = %+v, want red", sprite.Color)
	}

	name, err := ecs.Get[component.Name](w, roots[0])
	if err != nil {
		t.Fatalf("ecs.Get Name: %v", err)
	}
	if name.Value != "root" {
		t.Errorf("Name = %q, want %q", name.Value, "root")
	}
}

func TestInstantiateLinksChildToParent(t *testing.T) {
	scene, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	w := ecs.NewWorld()
	cache := asset.NewCache()

	roots, err := Instantiate(scene, w, "", cache)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	children := ecs.GetChildren(w, roots[0])
	if len(children) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(children))
	}
	transform, err := ecs.Get[component.Transform2D](w, children[0])
	if err != nil {
		t.Fatalf("ecs.Get Transform2D: %v", err)
	}
	if transform.X != 1 || transform.Y != 2 {
		t.Errorf("child Transform2D = %+v, want X=1 Y=2", *transform)
	}
}

func TestInstantiateUnknownPrefabErrors(t *testing.T) {
	scene, err := Parse([]byte("entities:\n  - prefab: missing\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := Instantiate(scene, w, "", asset.NewCache()); err == nil {
		t.Error("expected error for unknown prefab reference")
	}
}
