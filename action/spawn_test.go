package action

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSpawnDurationIsMax(t *testing.T) {
	cases := [][2]float64{{1, 2}, {2, 1}, {0.5, 0.5}, {3, 0.1}}
	for _, c := range cases {
		s := NewSpawn(NewDelayTime(c[0]), NewDelayTime(c[1]))
		assert.InDelta(t, max(c[0], c[1]), s.Duration(), eps, "%v", c)
	}
}

func TestSpawnCompletesBothChildren(t *testing.T) {
	n := newFakeNode()
	move := NewMoveBy(2, mgl64.Vec2{10, 0})
	rot := NewRotateBy(0.5, 1)
	s := NewSpawn(move, rot)

	drive(s, n, 0.25)
	assert.InDelta(t, 1.25, n.x, eps)
	assert.InDelta(t, 0.5, n.rot, eps)

	n.x, n.rot = 0, 0
	drive(s, n, 1, 1)
	assert.True(t, s.IsDone())
	assert.True(t, move.IsDone())
	assert.InDelta(t, 10, n.x, eps)
	assert.InDelta(t, 1, n.rot, eps)
}

func TestSpawnPadsShorterChild(t *testing.T) {
	short := newRecorder(1)
	long := newRecorder(4)
	s := NewSpawnPair(short, long)

	drive(s, newFakeNode(), 2)

	// Half way through the spawn the short child has already finished.
	assert.Equal(t, 1.0, short.last())
	assert.InDelta(t, 0.5, long.last(), eps)
	assert.True(t, short.IsDone())
}

func TestSpawnSameTickOrder(t *testing.T) {
	n := newFakeNode()
	// Both write X; the second child wins each frame.
	a, b := NewMoveTo(1, mgl64.Vec2{10, 0}), NewMoveTo(1, mgl64.Vec2{-10, 0})
	a.SetStackable(false)
	b.SetStackable(false)
	s := NewSpawn(a, b)
	drive(s, n, 1)
	assert.InDelta(t, -10, n.x, eps)
}

func TestSpawnStackableComposition(t *testing.T) {
	n := newFakeNode()
	s := NewSpawn(NewMoveBy(1, mgl64.Vec2{10, 0}), NewMoveBy(1, mgl64.Vec2{0, 10}))
	drive(s, n, 0.5, 0.5)
	assert.InDelta(t, 10, n.x, eps)
	assert.InDelta(t, 10, n.y, eps)
}

func TestSpawnReverseRoundTrip(t *testing.T) {
	build := func() *Spawn {
		return NewSpawn(NewMoveBy(1, mgl64.Vec2{3, 4}), NewScaleBy(2, 2, 3))
	}
	n := newFakeNode()
	drive(NewSequence(build(), build().Reverse()), n, 4)
	assert.InDelta(t, 0, n.x, eps)
	assert.InDelta(t, 0, n.y, eps)
	assert.InDelta(t, 1, n.sx, eps)
	assert.InDelta(t, 1, n.sy, eps)

	twice := newFakeNode()
	drive(build().Reverse().Reverse(), twice, 2)
	assert.InDelta(t, 3, twice.x, eps)
	assert.InDelta(t, 3, twice.sy, eps)
}

func TestSpawnStopsBoth(t *testing.T) {
	a, b := newRecorder(1), newRecorder(1)
	s := NewSpawnPair(a, b)
	drive(s, newFakeNode(), 0.5)
	s.Stop()
	assert.Equal(t, 1, a.stops)
	assert.Equal(t, 1, b.stops)
}
