// Package scenefile implements the YAML-backed scene serialization format
// (SPEC_FULL.md §8 / spec.md §6 "Scene file format"): name, optional
// physics/editor settings, a prefab map, and a recursive entity
// descriptor tree with component overrides applied atop each prefab. No
// scene format appears anywhere in the pack, so the schema is original
// code grounded on the component vocabulary SPEC_FULL.md §3 defines;
// gopkg.in/yaml.v3 is the pack's only structured-text dependency.
package scenefile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Scene is the root of a scene file.
type Scene struct {
	Name    string                     `yaml:"name"`
	Physics *PhysicsSettings           `yaml:"physics,omitempty"`
	Editor  *EditorSettings            `yaml:"editor,omitempty"`
	Prefabs map[string][]ComponentSpec `yaml:"prefabs,omitempty"`
	Entities []EntityDescriptor        `yaml:"entities,omitempty"`
}

// PhysicsSettings carries the scene's gravity and unit conversion.
// Instantiate does not apply it to the physics bridge; BuildScene copies
// it from its template unchanged.
type PhysicsSettings struct {
	GravityX       float64 `yaml:"gravity_x"`
	GravityY       float64 `yaml:"gravity_y"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter,omitempty"`
}

// EditorSettings carries editor-only camera placement; the runtime
// engine may ignore it entirely.
type EditorSettings struct {
	CameraX float64 `yaml:"camera_x"`
	CameraY float64 `yaml:"camera_y"`
	Zoom    float64 `yaml:"zoom"`
}

// EntityDescriptor is one node in the recursive entity tree. Name and
// Prefab are optional; Overrides apply atop the named prefab's own
// components (if any), then Components add further components of the
// entity's own, then Children are instantiated with this entity as
// their parent (spec §6).
type EntityDescriptor struct {
	Name       string             `yaml:"name,omitempty"`
	Prefab     string             `yaml:"prefab,omitempty"`
	Overrides  []ComponentSpec    `yaml:"overrides,omitempty"`
	Components []ComponentSpec    `yaml:"components,omitempty"`
	Children   []EntityDescriptor `yaml:"children,omitempty"`
}

// ComponentSpec defers decoding a component body until its Kind is
// known, since yaml.v3 has no first-class tagged-union support. Decode
// reads the spec into a kind-specific destination struct.
type ComponentSpec struct {
	Kind string
	node yaml.Node
}

func (c *ComponentSpec) UnmarshalYAML(value *yaml.Node) error {
	var peek struct {
		Kind string `yaml:"kind"`
	}
	if err := value.Decode(&peek); err != nil {
		return err
	}
	if peek.Kind == "" {
		return fmt.Errorf("scenefile: component missing required \"kind\" field")
	}
	c.Kind = peek.Kind
	c.node = *value
	return nil
}

func (c ComponentSpec) MarshalYAML() (interface{}, error) {
	return &c.node, nil
}

// Decode unmarshals the component's own fields into out (typically a
// pointer to a kind-specific struct in apply.go).
func (c ComponentSpec) Decode(out interface{}) error {
	return c.node.Decode(out)
}
