package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	willow "github.com/phanxgames/willow-actions"
)

// ActionEventType is the Donburi event type for willow action lifecycle
// events. Subscribe to this in your ECS systems to learn when actions start,
// finish or are stopped.
var ActionEventType = events.NewEventType[willow.ActionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Action events are published to ActionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) willow.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event willow.ActionEvent) {
	ActionEventType.Publish(s.world, event)
}
