package orchestrator

import (
	"github.com/insiculous2d/engine/asset"
	"github.com/insiculous2d/engine/audio"
	"github.com/insiculous2d/engine/ecs"
	"github.com/insiculous2d/engine/input"
	"github.com/insiculous2d/engine/ui"
)

// Context is handed to the user's update callback every frame. User code
// may create/destroy entities, mutate components, enqueue UI draw
// commands, and query input; it must not retain World/Cache/Mixer/UI
// beyond the callback's return, since the orchestrator reuses them next
// frame.
type Context struct {
	World *ecs.World
	Cache *asset.Cache
	Mixer audio.Mixer
	UI    *ui.Builder
	Input *input.Resolver

	DeltaTime float64

	LogicalWidth  int
	LogicalHeight int
}
