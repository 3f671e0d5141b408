package action

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Speed ---

func TestSpeedScalesStep(t *testing.T) {
	n := newFakeNode()
	s := NewSpeed(NewMoveBy(2, mgl64.Vec2{10, 0}), 2)
	assert.InDelta(t, 1, s.Duration(), eps)

	drive(s, n, 0.5)
	assert.InDelta(t, 5, n.x, eps)
	assert.InDelta(t, 0.5, s.Elapsed(), eps)
	assert.False(t, s.IsDone())

	s.Step(0.5)
	assert.True(t, s.IsDone())
	assert.InDelta(t, 10, n.x, eps)
}

func TestSpeedRetime(t *testing.T) {
	n := newFakeNode()
	s := NewSpeed(NewMoveBy(1, mgl64.Vec2{10, 0}), 1)
	drive(s, n, 0.25)
	s.SetSpeed(3)
	s.Step(0.25)
	assert.InDelta(t, 10, n.x, eps)
	assert.Equal(t, 3.0, s.Speed())
}

func TestSpeedZeroNeverFinishes(t *testing.T) {
	s := NewSpeed(NewDelayTime(1), 0)
	assert.True(t, math.IsInf(s.Duration(), 1))
	drive(s, newFakeNode(), 100)
	assert.False(t, s.IsDone())
}

func TestSpeedInsideSequence(t *testing.T) {
	n := newFakeNode()
	seq := NewSequence(NewSpeed(NewMoveBy(2, mgl64.Vec2{4, 0}), 2), NewMoveBy(1, mgl64.Vec2{0, 4}))
	assert.InDelta(t, 2, seq.Duration(), eps)

	drive(seq, n, 0.5)
	assert.InDelta(t, 2, n.x, eps)
	seq.Step(1.5)
	assert.InDelta(t, 4, n.x, eps)
	assert.InDelta(t, 4, n.y, eps)
}

func TestSpeedRepeatForeverLoop(t *testing.T) {
	n := newFakeNode()
	r := NewRepeatForever(NewSpeed(NewMoveBy(1, mgl64.Vec2{1, 0}), 4))
	drive(r, n, 0.25, 0.25, 0.125)
	assert.InDelta(t, 2.5, n.x, eps)
}

func TestSpeedReverse(t *testing.T) {
	s := NewSpeed(NewMoveBy(1, mgl64.Vec2{1, 0}), 2)
	rev, ok := s.Reverse().(*Speed)
	require.True(t, ok)
	assert.Equal(t, 2.0, rev.Speed())
	assert.Equal(t, mgl64.Vec2{-1, 0}, rev.Inner().(*MoveBy).Delta())
}

// --- ReverseTime ---

func TestReverseTimePlaysBackward(t *testing.T) {
	inner := newRecorder(1)
	r := NewReverseTime(inner)
	drive(r, newFakeNode(), 0.25, 0.75)
	assert.Equal(t, []float64{1, 0.75, 0}, inner.ts)
	assert.True(t, r.IsDone())
}

func TestReverseTimeMoveReturnsToStart(t *testing.T) {
	n := newFakeNode()
	n.x = 3
	drive(NewReverseTime(NewMoveBy(1, mgl64.Vec2{10, 0})), n, 0.5, 0.5)
	// The reversed MoveBy begins at its end state relative to the start.
	assert.InDelta(t, 3, n.x, eps)
	assert.InDelta(t, 13, n.moves[0][0], eps)
}

func TestReverseTimeReverseIsForward(t *testing.T) {
	m := NewMoveBy(1, mgl64.Vec2{1, 0})
	r := NewReverseTime(m)
	fwd, ok := r.Reverse().(*MoveBy)
	require.True(t, ok)
	assert.NotSame(t, m, fwd)
	assert.Equal(t, m.Delta(), fwd.Delta())
}

// --- TargetedAction ---

func TestTargetedActionRunsOnForcedTarget(t *testing.T) {
	owner, other := newFakeNode(), newFakeNode()
	a := NewTargetedAction(other, NewMoveBy(1, mgl64.Vec2{5, 0}))
	drive(a, owner, 1)

	assert.Equal(t, Target(owner), a.Target())
	assert.InDelta(t, 0, owner.x, eps)
	assert.InDelta(t, 5, other.x, eps)
	assert.True(t, a.IsDone())
}

func TestTargetedActionReverseKeepsTarget(t *testing.T) {
	other := newFakeNode()
	a := NewTargetedAction(other, NewMoveBy(1, mgl64.Vec2{5, 0}))
	rev := a.Reverse().(*TargetedAction)
	assert.Equal(t, Target(other), rev.ForcedTarget())

	drive(NewSequence(a, rev), newFakeNode(), 2)
	assert.InDelta(t, 0, other.x, eps)
}

func TestTargetedActionNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewTargetedAction(nil, NewDelayTime(1)) })
}
