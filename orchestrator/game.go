package orchestrator

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/insiculous2d/engine/component"
)

// gameShell implements ebiten.Game by delegating to an Orchestrator:
// game logic lives in Update, submission lives in Draw, split to match
// the orchestrator's Advance/Render phases.
type gameShell struct {
	orch *Orchestrator
	w, h int
}

// Game returns an ebiten.Game backed by o, which must already be past
// Init (so Bindings/SetTrackedSources have somewhere to write) but not
// yet Running; Game calls Start itself. Hosts that need to configure
// action bindings or tracked input sources before the first frame use
// this directly instead of Run.
func Game(o *Orchestrator) (ebiten.Game, error) {
	if err := o.Start(); err != nil {
		return nil, err
	}
	w, h := o.cfg.LogicalWidth, o.cfg.LogicalHeight
	if w == 0 {
		w = 800
	}
	if h == 0 {
		h = 600
	}
	return &gameShell{orch: o, w: w, h: h}, nil
}

// Run configures the ebiten window from cfg, drives Init/Start, and
// blocks in ebiten.RunGame until the window closes or a fatal error
// occurs. On return, the orchestrator has been shut down. Hosts that
// need to bind actions or declare tracked input sources before the
// first frame should call o.Init, configure it, then use Game directly
// instead of Run.
func Run(o *Orchestrator) error {
	cfg := o.cfg
	w, h := cfg.LogicalWidth, cfg.LogicalHeight
	if w == 0 {
		w = 800
	}
	if h == 0 {
		h = 600
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.TargetFPS > 0 {
		ebiten.SetTPS(cfg.TargetFPS)
	}

	if err := o.Init(); err != nil {
		return err
	}

	shell, err := Game(o)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(shell); err != nil {
		o.Shutdown()
		return err
	}
	return o.Shutdown()
}

// Update advances frame phases 1-7 at ebiten's tick rate, deriving dt as
// 1/ebiten.TPS() and trusting ebiten's own fixed tick scheduling rather
// than measuring wall-clock time itself.
func (g *gameShell) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	return g.orch.Advance(dt)
}

// Draw submits phases 8-9 against the live surface ebiten hands in.
func (g *gameShell) Draw(screen *ebiten.Image) {
	cfg := g.orch.cfg
	if cfg.ClearColor.A > 0 {
		screen.Fill(toRGBA(cfg.ClearColor))
	}
	g.orch.Render(screen)
}

func (g *gameShell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// toRGBA converts an engine Color (straight alpha, components in [0,1])
// to a premultiplied color.RGBA suitable for ebiten.Image.Fill.
func toRGBA(c component.Color) color.RGBA {
	return color.RGBA{
		R: clampByteColor(c.R * c.A),
		G: clampByteColor(c.G * c.A),
		B: clampByteColor(c.B * c.A),
		A: clampByteColor(c.A),
	}
}

func clampByteColor(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
