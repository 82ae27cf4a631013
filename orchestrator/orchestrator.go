package orchestrator

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/audio"
	"github.com/insiculous2d/engine/behavior"
	"github.com/insiculous2d/engine/component"
	"github.com/insiculous2d/engine/ecs"
	"github.com/insiculous2d/engine/input"
	"github.com/insiculous2d/engine/physics"
	"github.com/insiculous2d/engine/render"
	"github.com/insiculous2d/engine/transform2d"
	"github.com/insiculous2d/engine/ui"
)

// maxDeltaTime bounds the clamped per-frame delta, preventing a
// spiral-of-death after a long pause (a stalled tab, a breakpoint) from
// feeding an enormous dt into physics and behavior in one jump.
const maxDeltaTime = 1.0 / 4.0

// UpdateFunc is the user's per-frame game logic callback (phase 3).
type UpdateFunc func(ctx *Context) error

// MixerFactory constructs the audio mixer during Init. Tests and headless
// hosts pass a factory returning audio.NewNullMixer(); a real game passes
// one constructing an audio.BeepMixer. Defaults to NullMixer if nil.
type MixerFactory func() (audio.Mixer, error)

// Orchestrator drives one frame end-to-end on a single thread and owns
// the composition of every manager package. It holds the lifecycle
// state machine from state.go and wires ecs.World,
// physics.Bridge, asset.Cache, audio.Mixer, input state/bindings, and
// ui.Builder together for the nine ordered frame phases.
type Orchestrator struct {
	cfg   Config
	state State

	world    *ecs.World
	bridge   *physics.Bridge
	cache    *asset.Cache
	mixer    audio.Mixer
	uiBuild  *ui.Builder
	inState  *input.State
	bindings *input.Bindings
	resolver *input.Resolver
	poller   input.Poller

	mixerFactory MixerFactory
	updateFn     UpdateFunc
	trackedSrcs  []input.Source

	scaleFactor float64
	err         error
}

// New creates an Orchestrator in state Created. Call Init, then Start,
// before the first Advance.
func New(cfg Config, update UpdateFunc) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		state:       Created,
		scaleFactor: 1,
		updateFn:    update,
	}
}

// State reports the orchestrator's current lifecycle state.
func (o *Orchestrator) State() State { return o.state }

// World exposes the live ECS world, mainly so a host can seed it (e.g.
// via scenefile.Instantiate) between Init and Start.
func (o *Orchestrator) World() *ecs.World { return o.world }

// Cache exposes the live asset cache for the same reason.
func (o *Orchestrator) Cache() *asset.Cache { return o.cache }

// Bridge exposes the physics bridge so a host can configure the
// simulator (bounds, solver passes) between Init and Start.
func (o *Orchestrator) Bridge() *physics.Bridge { return o.bridge }

// Bindings exposes the input action-binding table so a host can register
// its action scheme before Start.
func (o *Orchestrator) Bindings() *input.Bindings { return o.bindings }

// SetMixerFactory overrides how Init constructs the audio mixer. Must be
// called before Init; a nil factory (the default) yields a NullMixer.
func (o *Orchestrator) SetMixerFactory(f MixerFactory) { o.mixerFactory = f }

// SetTrackedSources installs the set of input sources BeginFrame polls
// every frame. Must be called before Start for edges to be observed.
func (o *Orchestrator) SetTrackedSources(srcs []input.Source) { o.trackedSrcs = srcs }

// SetPoller overrides the raw input poller (default input.EbitenPoller{}).
// Tests inject a synthetic Poller to drive deterministic input.
func (o *Orchestrator) SetPoller(p input.Poller) { o.poller = p }

// Init constructs every manager (ECS world, physics bridge, asset cache,
// audio mixer, input state) and transitions Created -> Initializing ->
// Initialized, or -> Error on failure.
func (o *Orchestrator) Init() error {
	if err := o.move(Initializing); err != nil {
		return err
	}

	o.world = ecs.NewWorld()
	ecs.InstallHierarchyHooks(o.world)
	o.bridge = physics.NewBridge()
	o.bridge.Sim.Gravity = o.cfg.Gravity
	o.cache = asset.NewCache()
	o.uiBuild = ui.NewBuilder()
	o.inState = input.NewState()
	o.bindings = input.NewBindings()
	o.resolver = input.NewResolver(o.inState, o.bindings)
	if o.poller == nil {
		o.poller = input.EbitenPoller{}
	}

	factory := o.mixerFactory
	if factory == nil {
		factory = func() (audio.Mixer, error) { return audio.NewNullMixer(), nil }
	}
	mixer, err := factory()
	if err != nil {
		o.fail(err)
		return err
	}
	o.mixer = mixer

	if err := o.move(Initialized); err != nil {
		o.fail(err)
		return err
	}
	return nil
}

// Start transitions Initialized -> Running. Only Running admits Advance/Render.
func (o *Orchestrator) Start() error {
	return o.move(Running)
}

// Shutdown transitions to ShuttingDown then ShutDown, releasing
// resources in reverse acquisition order: audio mixer, physics bodies,
// then dropping ECS/asset-cache references.
func (o *Orchestrator) Shutdown() error {
	if err := o.move(ShuttingDown); err != nil {
		return err
	}

	if o.mixer != nil {
		if err := o.mixer.Close(); err != nil {
			log.Printf("orchestrator: mixer close: %v", err)
		}
	}
	if o.bridge != nil {
		o.bridge.Sim.Clear()
	}
	o.world = nil
	o.cache = nil

	return o.move(ShutDown)
}

// Err returns the error that drove the lifecycle to Error, or nil.
func (o *Orchestrator) Err() error { return o.err }

func (o *Orchestrator) move(next State) error {
	s, err := transition(o.state, next)
	o.state = s
	return err
}

func (o *Orchestrator) fail(cause error) {
	o.err = cause
	o.state, _ = transition(o.state, Error)
}

// Resize updates the orchestrator's notion of logical window size and
// device scale factor, as driven by a window/event-surface resize
// notification. Logical size is left unchanged by a physical resize at
// a fixed scale factor; only an actual logical-size or scale change
// should call this.
func (o *Orchestrator) Resize(logicalWidth, logicalHeight int, scaleFactor float64) {
	o.cfg.LogicalWidth = logicalWidth
	o.cfg.LogicalHeight = logicalHeight
	if scaleFactor > 0 {
		o.scaleFactor = scaleFactor
	}
}

// Advance runs frame phases 1 through 7: event ingest, input edge
// compute, game update, behavior runner, physics, transform propagation,
// and sprite animation advance. It clamps dt to maxDeltaTime. Only valid
// in Running; any other state is a no-op, since a frame always either
// runs to completion or doesn't run at all, and a fatal error should
// stop future frames rather than run them partially. Render (phase 8)
// and input end-of-frame (phase 9) happen afterward in Render, once the
// host has an actual surface to draw to.
func (o *Orchestrator) Advance(dt float64) error {
	if o.state != Running {
		return nil
	}
	if dt > maxDeltaTime {
		dt = maxDeltaTime
	}

	// Phase 1-2: event ingest / input edge compute. Window events
	// themselves are ebiten's responsibility; this orchestrator's
	// contribution is folding raw device state into edges.
	o.inState.BeginFrame(o.trackedSrcs, o.poller)

	// Phase 3: game update.
	if o.updateFn != nil {
		ctx := &Context{
			World:         o.world,
			Cache:         o.cache,
			Mixer:         o.mixer,
			UI:            o.uiBuild,
			Input:         o.resolver,
			DeltaTime:     dt,
			LogicalWidth:  o.cfg.LogicalWidth,
			LogicalHeight: o.cfg.LogicalHeight,
		}
		if err := o.updateFn(ctx); err != nil {
			log.Printf("orchestrator: game update: %v", err)
		}
	}

	// Phase 4: behavior runner.
	behavior.Run(o.world, o.resolver, dt)

	// Phase 5: physics.
	o.bridge.Step(o.world, dt)

	// Phase 6: transform propagation.
	transform2d.Propagate(o.world)

	// Phase 7: sprite animation advance.
	advanceAnimations(o.world, dt)

	return nil
}

// Render runs frame phases 8 and 9: extract sprites, merge UI draw
// commands built during this frame's Advance, batch, submit to dst, then
// clear input just_pressed/just_released and retire this frame's UI
// commands. A no-op outside Running.
func (o *Orchestrator) Render(dst *ebiten.Image) {
	if o.state != Running {
		return
	}

	uiCmds := ui.ToSpriteCommands(o.uiBuild.Commands(), o.cache, o.scaleFactor,
		float64(o.cfg.LogicalWidth), float64(o.cfg.LogicalHeight))
	render.DrawFrame(dst, o.world, o.cache, uiCmds)

	o.inState.EndFrame()
	o.uiBuild.Reset()
}

// advanceAnimations steps every playing SpriteAnimation by dt seconds,
// looping or stopping at the last frame per its Looping flag.
func advanceAnimations(w *ecs.World, dt float64) {
	ecs.Query1[component.SpriteAnimation](w)(func(id ecs.EntityID, anim *component.SpriteAnimation) bool {
		if !anim.Playing || anim.FPS <= 0 || len(anim.Frames) == 0 {
			return true
		}
		frameDuration := 1.0 / anim.FPS
		anim.TimeAccumulator += dt
		for anim.TimeAccumulator >= frameDuration {
			anim.TimeAccumulator -= frameDuration
			anim.CurrentFrame++
			if int(anim.CurrentFrame) >= len(anim.Frames) {
				if anim.Looping {
					anim.CurrentFrame = 0
				} else {
					anim.CurrentFrame = uint32(len(anim.Frames) - 1)
					anim.Playing = false
					anim.TimeAccumulator = 0
					break
				}
			}
		}
		return true
	})
}
