// Package ecs provides ECS adapters for willow's action lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges action events
// (started, finished, stopped) into a [Donburi] world as typed events.
// Subscribe to [ActionEventType] in your ECS systems to receive them. Each
// event carries the EntityID of the node the action ran on.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
