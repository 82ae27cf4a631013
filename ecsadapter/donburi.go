// Package ecsadapter bridges this engine's collision events into an
// external donburi archetype world, for hosts that run their own
// donburi-based systems alongside this engine's ECS.
package ecsadapter

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/insiculous2d/engine/physics"
)

// CollisionEventType is the Donburi event type for bridged collision
// events. Subscribe to this in donburi systems to receive
// CollisionStarted/CollisionEnded notifications raised by a
// physics.Bridge.
var CollisionEventType = events.NewEventType[physics.Event]()

// CollisionBridge publishes physics.Bridge collision events into a
// donburi world, so donburi-backed systems can subscribe to
// CollisionEventType and react to them like any other donburi event.
type CollisionBridge struct {
	world donburi.World
}

// NewCollisionBridge wires br's collision callback to publish into
// world via CollisionEventType. Call events.ProcessAllEvents(world) (or
// CollisionEventType.ProcessEvents) once per frame, after the physics
// bridge has stepped, to deliver queued events to subscribers.
func NewCollisionBridge(world donburi.World, br *physics.Bridge) *CollisionBridge {
	cb := &CollisionBridge{world: world}
	br.OnCollision(cb.publish)
	return cb
}

func (cb *CollisionBridge) publish(e physics.Event) {
	CollisionEventType.Publish(cb.world, e)
}
