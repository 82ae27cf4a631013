// demo spawns a field of colored bouncing shapes under gravity, click to
// explode a burst of new bodies outward, and right-click to scroll the
// camera toward the clicked point, all driven through the frame orchestrator instead of a
// bespoke scene loop.
package main

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tanema/gween/ease"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
	"github.com/insiculous2d/engine/input"
	"github.com/insiculous2d/engine/orchestrator"
	"github.com/insiculous2d/engine/render"
)

const (
	screenW    = 1280
	screenH    = 720
	shapeCount = 100
)

const (
	actionClick     = "click"
	actionScrollCam = "scroll_camera"
)

var (
	cameraID     ecs.EntityID
	cameraScroll *render.CameraScroll
)

func main() {
	cfg := orchestrator.DefaultConfig()
	cfg.Title = "Insiculous 2D - bouncing shapes demo"
	cfg.LogicalWidth = screenW
	cfg.LogicalHeight = screenH
	cfg.ClearColor = component.Color{R: 0.06, G: 0.06, B: 0.09, A: 1}
	cfg.Gravity = 9.8 * 12

	o := orchestrator.New(cfg, update)
	if err := o.Init(); err != nil {
		log.Fatal(err)
	}

	o.Bridge().Sim.SetBounds(0, 0, screenW, screenH)
	o.Bindings().Bind(actionClick, input.MouseButtonSource(int(ebiten.MouseButtonLeft)))
	o.Bindings().Bind(actionScrollCam, input.MouseButtonSource(int(ebiten.MouseButtonRight)))
	o.SetTrackedSources([]input.Source{
		input.MouseButtonSource(int(ebiten.MouseButtonLeft)),
		input.MouseButtonSource(int(ebiten.MouseButtonRight)),
	})

	seedShapes(o.World(), o.Cache(), screenW, screenH)

	game, err := orchestrator.Game(o)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(game); err != nil {
		o.Shutdown()
		log.Fatal(err)
	}
	if err := o.Shutdown(); err != nil {
		log.Fatal(err)
	}
}

func update(ctx *orchestrator.Context) error {
	if ctx.Input.IsActionJustActivated(actionClick) {
		mx, my := ctx.Input.State.MousePosition()
		spawnBurst(ctx.World, ctx.Cache, mx, my)
	}

	cam, err := ecs.Get[component.Camera](ctx.World, cameraID)
	if err != nil {
		return err
	}
	if ctx.Input.IsActionJustActivated(actionScrollCam) {
		mx, my := ctx.Input.State.MousePosition()
		targetX := mx - float64(ctx.LogicalWidth)/2
		targetY := my - float64(ctx.LogicalHeight)/2
		cameraScroll = render.ScrollCameraTo(*cam, targetX, targetY, 0.6, ease.OutCubic)
	}
	if cameraScroll.Update(cam, float32(ctx.DeltaTime)) {
		cameraScroll = nil
	}

	drawHUD(ctx)
	return nil
}

func seedShapes(w *ecs.World, cache *asset.Cache, width, height int) {
	cameraID = w.CreateEntity()
	ecs.Add(w, cameraID, component.DefaultTransform2D())
	ecs.Add(w, cameraID, component.DefaultCamera(float64(width), float64(height)))
	cam, _ := ecs.Get[component.Camera](w, cameraID)
	cam.IsMain = true

	for i := 0; i < shapeCount; i++ {
		spawnShape(w, cache, rand.Float64()*float64(width), rand.Float64()*float64(height))
	}
}

func spawnBurst(w *ecs.World, cache *asset.Cache, x, y float64) {
	const burst = 20
	for i := 0; i < burst; i++ {
		id := spawnShape(w, cache, x, y)
		angle := 2 * math.Pi * float64(i) / burst
		rb, _ := ecs.Get[component.RigidBody](w, id)
		rb.VelocityX = math.Cos(angle) * 300
		rb.VelocityY = math.Sin(angle) * 300
	}
}

func spawnShape(w *ecs.World, cache *asset.Cache, x, y float64) ecs.EntityID {
	radius := 12.0 + rand.Float64()*18.0
	col := component.Color{
		R: float32(0.3 + rand.Float64()*0.7),
		G: float32(0.3 + rand.Float64()*0.7),
		B: float32(0.3 + rand.Float64()*0.7),
		A: 1,
	}
	handle := cache.CreateSolidColor(1, 1, color.RGBA{
		R: uint8(col.R * 255), G: uint8(col.G * 255), B: uint8(col.B * 255), A: 255,
	})

	id := w.CreateEntity()
	tr := component.DefaultTransform2D()
	tr.X, tr.Y = x, y
	tr.ScaleX, tr.ScaleY = radius*2, radius*2
	ecs.Add(w, id, tr)

	sprite := component.DefaultSprite(handle)
	sprite.Color = col
	ecs.Add(w, id, sprite)

	rb := component.DefaultRigidBody()
	rb.VelocityX = (rand.Float64() - 0.5) * 200
	ecs.Add(w, id, rb)

	collider := component.DefaultCollider(component.CircleShape(radius))
	collider.Restitution = 0.3
	ecs.Add(w, id, collider)

	return id
}

func drawHUD(ctx *orchestrator.Context) {
	ctx.UI.RectBorder(8, 8, 260, 28, 2, component.Color{R: 1, G: 1, B: 1, A: 0.4}, 0)
}
