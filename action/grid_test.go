package action

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridOf(t *testing.T, n *fakeNode) *fakeGrid {
	t.Helper()
	g, ok := n.grid.(*fakeGrid)
	require.True(t, ok, "node has no grid")
	return g
}

func TestGridActionCreatesGrid(t *testing.T) {
	n := newFakeNode()
	w := NewWaves3D(1, 2, 2, 1, 5)
	cols, rows := w.GridSize()
	assert.Equal(t, 2, cols)
	assert.Equal(t, 2, rows)

	drive(w, n)
	g := gridOf(t, n)
	assert.True(t, g.Active())
	assert.InDelta(t, math.Sin(0.2)*5, g.Vertex(1, 1)[2], eps)
	assert.InDelta(t, 10, g.Vertex(1, 1)[0], eps)
}

func TestGridActionReplacesGridWithoutReuse(t *testing.T) {
	n := newFakeNode()
	drive(NewWaves3D(1, 2, 2, 1, 5), n, 1)
	first := gridOf(t, n)

	drive(NewWaves3D(1, 2, 2, 1, 5), n)
	assert.NotSame(t, first, gridOf(t, n))
	assert.False(t, first.Active())
	assert.True(t, gridOf(t, n).Active())
}

func TestReuseGridContinuesDeformation(t *testing.T) {
	n := newFakeNode()
	drive(NewWaves3D(1, 2, 2, 1, 5), n, 0.25)
	g := gridOf(t, n)
	deformed := g.Vertex(2, 2)

	drive(NewReuseGrid(1), n)
	assert.Equal(t, 1, g.ReuseCount())

	drive(NewWaves3D(1, 2, 2, 1, 5), n)
	assert.Same(t, g, gridOf(t, n))
	assert.Equal(t, 0, g.ReuseCount())
	assert.Equal(t, deformed, g.OriginalVertex(2, 2))
}

func TestReuseGridSizeMismatchPanics(t *testing.T) {
	n := newFakeNode()
	drive(NewWaves3D(1, 2, 2, 1, 5), n)
	drive(NewReuseGrid(1), n)
	assert.Panics(t, func() { start(NewWaves3D(1, 3, 3, 1, 5), n) })
}

func TestStopGrid(t *testing.T) {
	n := newFakeNode()
	assert.NotPanics(t, func() { drive(NewStopGrid(), n) })

	drive(NewWaves3D(1, 2, 2, 1, 5), n)
	drive(NewStopGrid(), n)
	assert.False(t, gridOf(t, n).Active())
}

func TestRipple3D(t *testing.T) {
	n := newFakeNode()
	drive(NewRipple3D(1, 4, 4, mgl64.Vec2{0, 0}, 15, 2, 3), n)
	g := gridOf(t, n)
	assert.InDelta(t, math.Sin(1.5)*3, g.Vertex(0, 0)[2], eps)
	assert.InDelta(t, 0, g.Vertex(4, 4)[2], eps)
}

func TestLens3D(t *testing.T) {
	want := math.Exp(math.Log(1.0/3)*0.7) * 15 * 0.7
	for _, concave := range []bool{false, true} {
		n := newFakeNode()
		l := NewLens3D(1, 4, 4, mgl64.Vec2{20, 20}, 15)
		l.SetConcave(concave)
		drive(l, n, 0.5)
		g := gridOf(t, n)

		sign := 1.0
		if concave {
			sign = -1
		}
		assert.InDelta(t, sign*want, g.Vertex(1, 2)[2], 1e-9)
		// The lens center itself is left flat.
		assert.InDelta(t, 0, g.Vertex(2, 2)[2], eps)
		assert.InDelta(t, 0, g.Vertex(0, 0)[2], eps)
	}
}

func TestTwirlKeepsDistanceFromCenter(t *testing.T) {
	n := newFakeNode()
	c := mgl64.Vec2{10, 10}
	tw := NewTwirl(1, 2, 2, c, 1, 3)
	drive(tw, n, 0.25)
	g := gridOf(t, n)

	for i := 0; i <= 2; i++ {
		for j := 0; j <= 2; j++ {
			orig := g.OriginalVertex(i, j).Vec2().Sub(c).Len()
			got := g.Vertex(i, j).Vec2().Sub(c).Len()
			assert.InDelta(t, orig, got, 1e-9)
		}
	}
	assert.NotEqual(t, g.OriginalVertex(0, 0), g.Vertex(0, 0))
	assert.Equal(t, g.OriginalVertex(1, 1), g.Vertex(1, 1))
}

func TestShaky3D(t *testing.T) {
	n := newFakeNode()
	s := NewShaky3D(1, 3, 3, 2, false)
	s.SetRand(rand.New(rand.NewPCG(1, 2)))
	drive(s, n, 0.5)
	g := gridOf(t, n)
	for i := 0; i <= 3; i++ {
		for j := 0; j <= 3; j++ {
			d := g.Vertex(i, j).Sub(g.OriginalVertex(i, j))
			assert.LessOrEqual(t, math.Abs(d[0]), 2.0)
			assert.LessOrEqual(t, math.Abs(d[1]), 2.0)
			assert.Zero(t, d[2])
		}
	}

	still := newFakeNode()
	drive(NewShaky3D(1, 1, 1, 0, true), still, 1)
	g = gridOf(t, still)
	assert.Equal(t, g.OriginalVertex(1, 1), g.Vertex(1, 1))
}

func TestGridActionsReverseThroughTime(t *testing.T) {
	for _, a := range []IntervalAction{
		NewWaves3D(1, 1, 1, 1, 1),
		NewRipple3D(1, 1, 1, mgl64.Vec2{}, 1, 1, 1),
		NewLens3D(1, 1, 1, mgl64.Vec2{}, 1),
		NewTwirl(1, 1, 1, mgl64.Vec2{}, 1, 1),
		NewShaky3D(1, 1, 1, 1, false),
	} {
		_, ok := a.Reverse().(*ReverseTime)
		assert.True(t, ok, "%T", a)
	}
	assert.Panics(t, func() { NewWaves3D(1, 0, 2, 1, 1) })
}
