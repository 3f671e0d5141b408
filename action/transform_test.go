package action

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateBy(t *testing.T) {
	n := newFakeNode()
	n.rot = 0.5
	r := NewRotateBy(1, math.Pi)
	drive(r, n, 0.5)
	assert.InDelta(t, 0.5+math.Pi/2, n.rot, eps)
	r.Step(0.5)
	assert.InDelta(t, 0.5+math.Pi, n.rot, eps)

	drive(r.Reverse(), n, 1)
	assert.InDelta(t, 0.5, n.rot, eps)
}

func TestRotateToShortestArc(t *testing.T) {
	cases := []struct {
		name      string
		from, to  float64
		wantDelta float64
	}{
		{"forward", 0, 1, 1},
		{"backward", 1, 0, -1},
		{"wraps up", -3, 3, 6 - 2*math.Pi},
		{"wraps down", 3, -3, 2*math.Pi - 6},
		{"full turns ignored", 0, 4*math.Pi + 0.5, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := newFakeNode()
			n.rot = tc.from
			drive(NewRotateTo(1, tc.to), n, 1)
			assert.InDelta(t, tc.from+tc.wantDelta, n.rot, 1e-9)
		})
	}
}

func TestRotateToNotReversible(t *testing.T) {
	assert.PanicsWithValue(t, "action: RotateTo cannot be reversed", func() { NewRotateTo(1, 1).Reverse() })
}

func TestScaleBy(t *testing.T) {
	n := newFakeNode()
	n.sx, n.sy = 2, 1
	s := NewScaleBy(1, 3, 0.5)
	drive(s, n, 1)
	assert.InDelta(t, 6, n.sx, eps)
	assert.InDelta(t, 0.5, n.sy, eps)

	drive(s.Reverse(), n, 1)
	assert.InDelta(t, 2, n.sx, eps)
	assert.InDelta(t, 1, n.sy, eps)
}

func TestScaleTo(t *testing.T) {
	n := newFakeNode()
	s := NewScaleTo(1, 3, 5)
	drive(s, n, 0.5)
	assert.InDelta(t, 2, n.sx, eps)
	assert.InDelta(t, 3, n.sy, eps)
	assert.Panics(t, func() { s.Reverse() })
}

func TestSkewByAndTo(t *testing.T) {
	n := newFakeNode()
	drive(NewSkewBy(1, 0.2, -0.1), n, 1)
	assert.InDelta(t, 0.2, n.kx, eps)
	assert.InDelta(t, -0.1, n.ky, eps)

	drive(NewSkewBy(1, 0.2, -0.1).Reverse(), n, 1)
	assert.InDelta(t, 0, n.kx, eps)
	assert.InDelta(t, 0, n.ky, eps)

	drive(NewSkewTo(1, 0.4, 0.4), n, 0.5)
	assert.InDelta(t, 0.2, n.kx, eps)
	assert.InDelta(t, 0.2, n.ky, eps)
}
