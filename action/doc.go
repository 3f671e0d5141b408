// Package action implements willow's time-driven action system: small
// stateful behaviors that animate a target's properties once per frame.
//
// Every action maps wall-clock deltas onto a normalized [0, 1] progress
// value. Leaves such as [MoveBy] or [FadeTo] turn that progress into a
// property write; combinators such as [Sequence], [Spawn], [Repeat] and
// [RepeatForever] redistribute it among their children, so actions nest to
// any depth while keeping exact timing.
//
//	jump := action.NewSequence(
//		action.NewMoveBy(0.5, 0, -40),
//		action.NewEaseBounceOut(action.NewMoveBy(0.5, 0, 40)),
//	)
//	scene.RunAction(hero, action.NewRepeatForever(jump))
//
// # Stepping
//
// A scheduler calls [Action.StartWithTarget] once, then [Action.Step] every
// frame until [Action.IsDone]. The first Step after a start always applies
// progress 0 regardless of dt, which keeps a long first frame from skipping
// the start state. willow's ActionManager performs that first tick when the
// action is added.
//
// # Reversal
//
// Finite actions implement Reverse, which returns a new action that plays
// the receiver's effect backward. Relative leaves and all combinators
// reverse exactly; absolute "To" leaves panic because they have no defined
// inverse; elastic, back and bounce eases reverse structurally but are not
// bijective.
//
// # Targets
//
// A [Target] is any value. Leaves ask it for the capability they need
// ([Positioner], [Tintable], [GridHolder], ...) when they start. A missing
// required capability panics; a missing [Tintable] turns fade and tint
// leaves into no-ops.
package action
