// Package willow is a small retained-mode 2D scene graph for [Ebitengine]
// driven by composable actions.
//
// Nodes, cameras and grids are the targets; the action package supplies
// the behaviors that run on them: moves, rotations, fades, jumps, splines,
// grid effects, and the combinators that sequence, overlap, repeat, ease and
// retime them.
//
// # Quick start
//
//	scene := willow.NewScene()
//	hero := willow.NewSprite("hero", img)
//	scene.Root().AddChild(hero)
//
//	scene.RunAction(hero, action.NewRepeatForever(action.NewSequence(
//		action.NewMoveBy(1, mgl64.Vec2{100, 0}),
//		action.NewMoveBy(1, mgl64.Vec2{-100, 0}),
//	)))
//
//	willow.Run(scene, willow.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scheduling
//
// Every scene owns an [ActionManager]. Adding an action starts it and runs
// its zeroing first tick at once, so the action is exactly dt seconds in
// after the next update. Finished actions are stopped and dropped; actions
// on disposed nodes are dropped too. Lifecycle events can be forwarded to
// an ECS with [Scene.SetEntityStore] (see willow/ecs for a [Donburi]
// adapter).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package willow
