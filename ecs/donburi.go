package ecs

import (
	"github.com/phanxgames/grove"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for grove collisions.
var CollisionEventType = events.NewEventType[grove.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Collisions
// are queued on CollisionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) grove.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event grove.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
