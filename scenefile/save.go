package scenefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

// SceneSaveError reports a failure flattening a live World entity into a
// scene descriptor, naming the offending entity and the step that failed.
type SceneSaveError struct {
	Entity ecs.EntityID
	Reason string
	Err    error
}

func (e *SceneSaveError) Error() string {
	return fmt.Sprintf("scenefile: save entity %s: %s: %v", e.Entity, e.Reason, e.Err)
}

func (e *SceneSaveError) Unwrap() error { return e.Err }

// Encode renders scene to its YAML scene-file form, the inverse of Parse.
func Encode(scene *Scene) ([]byte, error) {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return nil, fmt.Errorf("scenefile: encode: %w", err)
	}
	return data, nil
}

// Save renders scene and writes it to path, the inverse of Load.
func Save(scene *Scene, path string) error {
	data, err := Encode(scene)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scenefile: write %q: %w", path, err)
	}
	return nil
}

// BuildScene flattens every root entity in w (and its descendants) back
// into a scene tree, the inverse of Instantiate. template supplies the
// scene-level metadata (Name, Physics, Editor, Prefabs) to carry through
// unchanged; BuildScene never tries to recover that metadata from the
// World, since none of it corresponds to a component. The returned
// Scene always describes entities inline: Save never reconstructs which
// prefab (if any) a live entity originated from.
func BuildScene(template *Scene, w *ecs.World, cache *asset.Cache) (*Scene, error) {
	scene := &Scene{
		Name:    template.Name,
		Physics: template.Physics,
		Editor:  template.Editor,
		Prefabs: template.Prefabs,
	}
	for _, id := range ecs.GetRoots(w) {
		desc, err := describeEntity(w, id, cache)
		if err != nil {
			return nil, err
		}
		scene.Entities = append(scene.Entities, desc)
	}
	return scene, nil
}

func describeEntity(w *ecs.World, id ecs.EntityID, cache *asset.Cache) (EntityDescriptor, error) {
	var desc EntityDescriptor

	if n, err := ecs.Get[component.Name](w, id); err == nil {
		desc.Name = n.Value
	}

	specs, err := describeComponents(w, id, cache)
	if err != nil {
		return EntityDescriptor{}, err
	}
	desc.Components = specs

	for _, child := range ecs.GetChildren(w, id) {
		childDesc, err := describeEntity(w, child, cache)
		if err != nil {
			return EntityDescriptor{}, err
		}
		desc.Children = append(desc.Children, childDesc)
	}

	return desc, nil
}

// describeComponents emits one ComponentSpec per serializable component
// id carries, in the same kind order applyOne's switch recognizes them.
func describeComponents(w *ecs.World, id ecs.EntityID, cache *asset.Cache) ([]ComponentSpec, error) {
	var specs []ComponentSpec

	if t, err := ecs.Get[component.Transform2D](w, id); err == nil {
		spec, err := newComponentSpec("transform2d", struct {
			Kind     string  `yaml:"kind"`
			X        float64 `yaml:"x"`
			Y        float64 `yaml:"y"`
			Rotation float64 `yaml:"rotation"`
			ScaleX   float64 `yaml:"scale_x"`
			ScaleY   float64 `yaml:"scale_y"`
		}{"transform2d", t.X, t.Y, t.Rotation, t.ScaleX, t.ScaleY})
		if err != nil {
			return nil, &SceneSaveError{Entity: id, Reason: "encode transform2d", Err: err}
		}
		specs = append(specs, spec)
	}

	if c, err := ecs.Get[component.Camera](w, id); err == nil {
		spec, err := newComponentSpec("camera", struct {
			Kind           string  `yaml:"kind"`
			X              float64 `yaml:"x"`
			Y              float64 `yaml:"y"`
			Rotation       float64 `yaml:"rotation"`
			Zoom           float64 `yaml:"zoom"`
			ViewportWidth  float64 `yaml:"viewport_width"`
			ViewportHeight float64 `yaml:"viewport_height"`
			IsMain         bool    `yaml:"is_main"`
			Near           float32 `yaml:"near"`
			Far            float32 `yaml:"far"`
		}{"camera", c.X, c.Y, c.Rotation, c.Zoom, c.ViewportWidth, c.ViewportHeight, c.IsMain, c.Near, c.Far})
		if err != nil {
			return nil, &SceneSaveError{Entity: id, Reason: "encode camera", Err: err}
		}
		specs = append(specs, spec)
	}

	if s, err := ecs.Get[component.Sprite](w, id); err == nil {
		texture, err := EncodeTexture(s.TextureHandle, cache)
		if err != nil {
			return nil, &SceneSaveError{Entity: id, Reason: "encode sprite texture", Err: err}
		}
		spec, err := newComponentSpec("sprite", struct {
			Kind     string  `yaml:"kind"`
			Texture  string  `yaml:"texture"`
			OffsetX  float64 `yaml:"offset_x"`
			OffsetY  float64 `yaml:"offset_y"`
			Rotation float64 `yaml:"rotation"`
			ScaleX   float64 `yaml:"scale_x"`
			ScaleY   float64 `yaml:"scale_y"`
			Color    string  `yaml:"color"`
			Depth    float32 `yaml:"depth"`
		}{"sprite", texture, s.OffsetX, s.OffsetY, s.Rotation, s.ScaleX, s.ScaleY, FormatHexColor(s.Color), s.Depth})
		if err != nil {
			return nil, &SceneSaveError{Entity: id, Reason: "encode sprite", Err: err}
		}
		specs = append(specs, spec)
	}

	if rb, err := ecs.Get[component.RigidBody](w, id); err == nil {
		var bodyType string
		switch rb.BodyType {
		case component.Static:
			bodyType = "static"
		case component.Kinematic:
			bodyType = "kinematic"
		default:
			bodyType = "dynamic"
		}
		spec, err := newComponentSpec("rigidbody", struct {
			Kind            string  `yaml:"kind"`
			BodyType        string  `yaml:"body_type"`
			VelocityX       float64 `yaml:"velocity_x"`
			VelocityY       float64 `yaml:"velocity_y"`
			AngularVelocity float64 `yaml:"angular_velocity"`
			GravityScale    float64 `yaml:"gravity_scale"`
			LinearDamping   float64 `yaml:"linear_damping"`
			AngularDamping  float64 `yaml:"angular_damping"`
			CanRotate       bool    `yaml:"can_rotate"`
			CCDEnabled      bool    `yaml:"ccd_enabled"`
		}{"rigidbody", bodyType, rb.VelocityX, rb.VelocityY, rb.AngularVelocity, rb.GravityScale, rb.LinearDamping, rb.AngularDamping, rb.CanRotate, rb.CCDEnabled})
		if err != nil {
			return nil, &SceneSaveError{Entity: id, Reason: "encode rigidbody", Err: err}
		}
		specs = append(specs, spec)
	}

	if c, err := ecs.Get[component.Collider](w, id); err == nil {
		var shapeName string
		switch c.Shape.Kind {
		case component.ShapeCircle:
			shapeName = "circle"
		case component.ShapeCapsuleX:
			shapeName = "capsule_x"
		case component.ShapeCapsuleY:
			shapeName = "capsule_y"
		default:
			shapeName = "box"
		}
		spec, err := newComponentSpec("collider", struct {
			Kind        string  `yaml:"kind"`
			Shape       string  `yaml:"shape"`
			HalfExtentX float64 `yaml:"half_extent_x"`
			HalfExtentY float64 `yaml:"half_extent_y"`
			Radius      float64 `yaml:"radius"`
			HalfHeight  float64 `yaml:"half_height"`
			OffsetX     float64 `yaml:"offset_x"`
			OffsetY     float64 `yaml:"offset_y"`
			IsSensor    bool    `yaml:"is_sensor"`
			Friction    float64 `yaml:"friction"`
			Restitution float64 `yaml:"restitution"`
		}{"collider", shapeName, c.Shape.HalfExtentX, c.Shape.HalfExtentY, c.Shape.Radius, c.Shape.HalfHeight, c.OffsetX, c.OffsetY, c.IsSensor, c.Friction, c.Restitution})
		if err != nil {
			return nil, &SceneSaveError{Entity: id, Reason: "encode collider", Err: err}
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// newComponentSpec encodes body (a kind-specific struct whose first
// field is its own "kind" tag, matching the shape applyOne decodes) into
// a ComponentSpec ready for yaml.Marshal via ComponentSpec.MarshalYAML.
func newComponentSpec(kind string, body interface{}) (ComponentSpec, error) {
	var node yaml.Node
	if err := node.Encode(body); err != nil {
		return ComponentSpec{}, err
	}
	return ComponentSpec{Kind: kind, node: node}, nil
}
