package scenefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

// Parse decodes raw YAML scene data without touching the filesystem or an
// ECS world, so callers can validate a scene before instantiating it.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenefile: parse: %w", err)
	}
	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %q: %w", path, err)
	}
	return Parse(data)
}

// Instantiate creates every entity the scene describes inside w, applying
// prefab components, then overrides, then the entity's own components,
// in that order (spec §6 "applied atop the prefab"), and resolving
// texture fields against assetsDir via cache. It returns the root
// entities in file order.
func Instantiate(scene *Scene, w *ecs.World, assetsDir string, cache *asset.Cache) ([]ecs.EntityID, error) {
	roots := make([]ecs.EntityID, 0, len(scene.Entities))
	for _, desc := range scene.Entities {
		id, err := instantiateOne(scene, desc, ecs.NilEntity, w, assetsDir, cache)
		if err != nil {
			return nil, err
		}
		roots = append(roots, id)
	}
	return roots, nil
}

func instantiateOne(scene *Scene, desc EntityDescriptor, parent ecs.EntityID, w *ecs.World, assetsDir string, cache *asset.Cache) (ecs.EntityID, error) {
	id := w.CreateEntity()

	if desc.Name != "" {
		if err := ecs.Add(w, id, component.Name{Value: desc.Name}); err != nil {
			return ecs.NilEntity, err
		}
	}

	if desc.Prefab != "" {
		prefabSpecs, ok := scene.Prefabs[desc.Prefab]
		if !ok {
			return ecs.NilEntity, fmt.Errorf("scenefile: entity references unknown prefab %q", desc.Prefab)
		}
		if err := ApplyComponents(w, id, prefabSpecs, assetsDir, cache); err != nil {
			return ecs.NilEntity, err
		}
	}

	if err := ApplyComponents(w, id, desc.Overrides, assetsDir, cache); err != nil {
		return ecs.NilEntity, err
	}
	if err := ApplyComponents(w, id, desc.Components, assetsDir, cache); err != nil {
		return ecs.NilEntity, err
	}

	if parent != ecs.NilEntity {
		if err := ecs.SetParent(w, id, parent); err != nil {
			return ecs.NilEntity, fmt.Errorf("scenefile: set parent: %w", err)
		}
	}

	for _, child := range desc.Children {
		if _, err := instantiateOne(scene, child, id, w, assetsDir, cache); err != nil {
			return ecs.NilEntity, err
		}
	}

	return id, nil
}
