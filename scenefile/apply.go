package scenefile

import (
	"fmt"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
)

// ApplyComponents decodes each spec and adds the resulting component to
// id, resolving texture fields against assetsDir via cache. Unknown
// kinds are a reported error with the offending kind name, per spec §6
// "unknown component kinds are an error with a helpful message".
func ApplyComponents(w *ecs.World, id ecs.EntityID, specs []ComponentSpec, assetsDir string, cache *asset.Cache) error {
	for _, spec := range specs {
		if err := applyOne(w, id, spec, assetsDir, cache); err != nil {
			return fmt.Errorf("scenefile: entity component %q: %w", spec.Kind, err)
		}
	}
	return nil
}

func applyOne(w *ecs.World, id ecs.EntityID, spec ComponentSpec, assetsDir string, cache *asset.Cache) error {
	switch spec.Kind {
	case "transform2d":
		var body struct {
			Kind     string  `yaml:"kind"`
			X        float64 `yaml:"x"`
			Y        float64 `yaml:"y"`
			Rotation float64 `yaml:"rotation"`
			ScaleX   float64 `yaml:"scale_x"`
			ScaleY   float64 `yaml:"scale_y"`
		}
		body.ScaleX, body.ScaleY = 1, 1
		if err := spec.Decode(&body); err != nil {
			return err
		}
		return ecs.Add(w, id, component.Transform2D{
			X: body.X, Y: body.Y, Rotation: body.Rotation, ScaleX: body.ScaleX, ScaleY: body.ScaleY,
		})

	case "name":
		var body struct {
			Kind  string `yaml:"kind"`
			Value string `yaml:"value"`
		}
		if err := spec.Decode(&body); err != nil {
			return err
		}
		return ecs.Add(w, id, component.Name{Value: body.Value})

	case "camera":
		var body struct {
			Kind          string  `yaml:"kind"`
			X             float64 `yaml:"x"`
			Y             float64 `yaml:"y"`
			Rotation      float64 `yaml:"rotation"`
			Zoom          float64 `yaml:"zoom"`
			ViewportWidth float64 `yaml:"viewport_width"`
			ViewportHeight float64 `yaml:"viewport_height"`
			IsMain        bool    `yaml:"is_main"`
			Near          float32 `yaml:"near"`
			Far           float32 `yaml:"far"`
		}
		if err := spec.Decode(&body); err != nil {
			return err
		}
		return ecs.Add(w, id, component.Camera{
			X: body.X, Y: body.Y, Rotation: body.Rotation, Zoom: body.Zoom,
			ViewportWidth: body.ViewportWidth, ViewportHeight: body.ViewportHeight,
			IsMain: body.IsMain, Near: body.Near, Far: body.Far,
		})

	case "sprite":
		var body struct {
			Kind           string  `yaml:"kind"`
			Texture        string  `yaml:"texture"`
			OffsetX        float64 `yaml:"offset_x"`
			OffsetY        float64 `yaml:"offset_y"`
			Rotation       float64 `yaml:"rotation"`
			ScaleX         float64 `yaml:"scale_x"`
			ScaleY         float64 `yaml:"scale_y"`
			Color          string  `yaml:"color"`
			Depth          float32 `yaml:"depth"`
		}
		if err := spec.Decode(&body); err != nil {
			return err
		}
		handle, err := ResolveTexture(body.Texture, assetsDir, cache)
		if err != nil {
			return err
		}
		s := component.DefaultSprite(handle)
		s.OffsetX, s.OffsetY = body.OffsetX, body.OffsetY
		s.Rotation = body.Rotation
		if body.ScaleX != 0 {
			s.ScaleX = body.ScaleX
		}
		if body.ScaleY != 0 {
			s.ScaleY = body.ScaleY
		}
		s.Depth = body.Depth
		if body.Color != "" {
			col, err := ParseHexColor(body.Color)
			if err != nil {
				return err
			}
			s.Color = col
		}
		return ecs.Add(w, id, s)

	case "rigidbody":
		var body struct {
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
		}
		if err := spec.Decode(&body); err != nil {
			return err
		}
		rb := component.DefaultRigidBody()
		switch body.BodyType {
		case "static":
			rb.BodyType = component.Static
		case "kinematic":
			rb.BodyType = component.Kinematic
		case "dynamic", "":
			rb.BodyType = component.Dynamic
		default:
			return fmt.Errorf("unknown rigidbody body_type %q", body.BodyType)
		}
		rb.VelocityX, rb.VelocityY = body.VelocityX, body.VelocityY
		rb.AngularVelocity = body.AngularVelocity
		rb.GravityScale = body.GravityScale
		rb.LinearDamping, rb.AngularDamping = body.LinearDamping, body.AngularDamping
		rb.CanRotate, rb.CCDEnabled = body.CanRotate, body.CCDEnabled
		return ecs.Add(w, id, rb)

	case "collider":
		var body struct {
			Kind         string  `yaml:"kind"`
			Shape        string  `yaml:"shape"`
			HalfExtentX  float64 `yaml:"half_extent_x"`
			HalfExtentY  float64 `yaml:"half_extent_y"`
			Radius       float64 `yaml:"radius"`
			HalfHeight   float64 `yaml:"half_height"`
			OffsetX      float64 `yaml:"offset_x"`
			OffsetY      float64 `yaml:"offset_y"`
			IsSensor     bool    `yaml:"is_sensor"`
			Friction     float64 `yaml:"friction"`
			Restitution  float64 `yaml:"restitution"`
		}
		if err := spec.Decode(&body); err != nil {
			return err
		}
		var shape component.Shape
		switch body.Shape {
		case "box", "":
			shape = component.BoxShape(body.HalfExtentX, body.HalfExtentY)
		case "circle":
			shape = component.CircleShape(body.Radius)
		case "capsule_x":
			shape = component.CapsuleXShape(body.HalfHeight, body.Radius)
		case "capsule_y":
			shape = component.CapsuleYShape(body.HalfHeight, body.Radius)
		default:
			return fmt.Errorf("unknown collider shape %q", body.Shape)
		}
		col := component.DefaultCollider(shape)
		col.OffsetX, col.OffsetY = body.OffsetX, body.OffsetY
		col.IsSensor = body.IsSensor
		if body.Friction != 0 {
			col.Friction = body.Friction
		}
		col.Restitution = body.Restitution
		return ecs.Add(w, id, col)

	default:
		return fmt.Errorf("unrecognized component kind %q", spec.Kind)
	}
}
