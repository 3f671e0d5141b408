package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	willow "github.com/phanxgames/willow-actions"
	"github.com/phanxgames/willow-actions/action"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []willow.ActionEvent
	ActionEventType.Subscribe(world, func(w donburi.World, e willow.ActionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(willow.ActionEvent{Type: willow.ActionStarted, Tag: 4, EntityID: 42})
	store.EmitEvent(willow.ActionEvent{Type: willow.ActionStopped})

	// Events are queued; process them.
	ActionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e0 := received[0]; e0.Type != willow.ActionStarted || e0.EntityID != 42 || e0.Tag != 4 {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Type != willow.ActionStopped {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store willow.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	ActionEventType.Subscribe(world, func(w donburi.World, e willow.ActionEvent) {
		count1++
	})
	ActionEventType.Subscribe(world, func(w donburi.World, e willow.ActionEvent) {
		count2++
	})

	store.EmitEvent(willow.ActionEvent{Type: willow.ActionFinished})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_SceneLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	scene := willow.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	var got []willow.ActionEventType
	ActionEventType.Subscribe(world, func(w donburi.World, e willow.ActionEvent) {
		if e.EntityID == 7 {
			got = append(got, e.Type)
		}
	})

	n := willow.NewContainer("unit")
	n.EntityID = 7
	scene.Root().AddChild(n)
	scene.RunAction(n, action.NewMoveBy(1, mgl64.Vec2{10, 0}))
	scene.Advance(1)
	ActionEventType.ProcessEvents(world)

	want := []willow.ActionEventType{willow.ActionStarted, willow.ActionFinished}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
}
