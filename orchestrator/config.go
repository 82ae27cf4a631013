package orchestrator

import "github.com/insiculous2d/engine/component"

// Config carries the engine's recognized configuration options: window
// title and logical size, clear color, an optional target frame rate,
// and the physics bridge's gravity. PixelsPerMeter and the fixed
// timestep are engine-wide constants in the physics package rather than
// per-Config values (see DESIGN.md); Gravity (physics.World's single
// Y-axis value, +Y down) is the one physics setting the bridge exposes
// as a mutable field, so it is the one Config actually wires through.
type Config struct {
	Title         string
	LogicalWidth  int
	LogicalHeight int
	ClearColor    component.Color
	TargetFPS     int // 0 means uncapped
	Gravity       float64
}

// DefaultConfig returns the engine's out-of-the-box settings: an 800x600
// window, black clear color, uncapped frame rate, and downward gravity
// matching the physics package's own default.
func DefaultConfig() Config {
	return Config{
		Title:         "Insiculous 2D",
		LogicalWidth:  800,
		LogicalHeight: 600,
		ClearColor:    component.Color{A: 1},
		Gravity:       9.8 * 3,
	}
}
