package action

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// CatmullRomTension is the tension that turns a cardinal spline into a
// Catmull-Rom spline.
const CatmullRomTension = 0.5

// cardinalSplineAt evaluates the cardinal spline segment p1->p2 at t.
func cardinalSplineAt(p0, p1, p2, p3 mgl64.Vec2, tension, t float64) mgl64.Vec2 {
	t2 := t * t
	t3 := t2 * t
	s := (1 - tension) / 2

	b1 := s * (-t3 + 2*t2 - t)
	b2 := s*(-t3+t2) + (2*t3 - 3*t2 + 1)
	b3 := s*(t3-2*t2+t) + (-2*t3 + 3*t2)
	b4 := s * (t3 - t2)

	return p0.Mul(b1).Add(p1.Mul(b2)).Add(p2.Mul(b3)).Add(p3.Mul(b4))
}

// CardinalSplineTo moves the target through a list of absolute points.
type CardinalSplineTo struct {
	Interval
	stacking
	pos      Positioner
	points   []mgl64.Vec2
	tension  float64
	deltaT   float64
	previous mgl64.Vec2
	drift    mgl64.Vec2
	// offset is added to every spline point; By variants set it to the
	// start position.
	offset   mgl64.Vec2
	relative bool
}

// NewCardinalSplineTo moves the target through points with the given
// tension. Panics if points is empty.
func NewCardinalSplineTo(duration float64, points []mgl64.Vec2, tension float64) *CardinalSplineTo {
	a := newCardinalSpline(points, tension)
	a.init(a, duration)
	return a
}

func newCardinalSpline(points []mgl64.Vec2, tension float64) *CardinalSplineTo {
	if len(points) == 0 {
		panic("action: cardinal spline needs at least one point")
	}
	return &CardinalSplineTo{
		stacking: newStacking(),
		points:   slices.Clone(points),
		tension:  tension,
	}
}

// Points returns a copy of the control points.
func (a *CardinalSplineTo) Points() []mgl64.Vec2 { return slices.Clone(a.points) }

// Tension returns the spline tension.
func (a *CardinalSplineTo) Tension() float64 { return a.tension }

func (a *CardinalSplineTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.pos = mustHave[Positioner](target, "CardinalSpline")
	a.deltaT = 1
	if len(a.points) > 1 {
		a.deltaT = 1 / float64(len(a.points)-1)
	}
	a.previous = positionOf(a.pos)
	a.drift = mgl64.Vec2{}
	if a.relative {
		a.offset = a.previous
	}
}

func (a *CardinalSplineTo) point(i int) mgl64.Vec2 {
	return a.points[max(0, min(i, len(a.points)-1))]
}

func (a *CardinalSplineTo) Update(t float64) {
	var p int
	var lt float64
	if t == 1 {
		p = len(a.points) - 1
		lt = 1
	} else {
		p = int(t / a.deltaT)
		lt = (t - a.deltaT*float64(p)) / a.deltaT
	}

	next := cardinalSplineAt(a.point(p-1), a.point(p), a.point(p+1), a.point(p+2), a.tension, lt)
	if a.stackable {
		if diff := positionOf(a.pos).Sub(a.previous); diff != (mgl64.Vec2{}) {
			a.drift = a.drift.Add(diff)
		}
		next = next.Add(a.drift)
	}
	next = next.Add(a.offset)
	a.pos.SetPosition(next[0], next[1])
	a.previous = next
}

// Reverse runs through the points in the opposite order.
func (a *CardinalSplineTo) Reverse() FiniteTimeAction {
	pts := slices.Clone(a.points)
	slices.Reverse(pts)
	r := NewCardinalSplineTo(a.duration, pts, a.tension)
	r.stackable = a.stackable
	return r
}

func (a *CardinalSplineTo) Clone() Action {
	c := NewCardinalSplineTo(a.duration, a.points, a.tension)
	c.stackable = a.stackable
	return c
}

// CardinalSplineBy moves the target through points given relative to its
// start position.
type CardinalSplineBy struct{ CardinalSplineTo }

// NewCardinalSplineBy moves the target through points offset by its start
// position. Panics if points is empty.
func NewCardinalSplineBy(duration float64, points []mgl64.Vec2, tension float64) *CardinalSplineBy {
	a := &CardinalSplineBy{*newCardinalSpline(points, tension)}
	a.relative = true
	a.init(&a.CardinalSplineTo, duration)
	return a
}

// Reverse walks the same segments backward, ending where the path started
// relative to the end point.
func (a *CardinalSplineBy) Reverse() FiniteTimeAction {
	// Absolute points to per-segment differences.
	diffs := slices.Clone(a.points)
	p := diffs[0]
	for i := 1; i < len(diffs); i++ {
		cur := diffs[i]
		diffs[i] = cur.Sub(p)
		p = cur
	}

	// Differences in reverse order back to points, starting at the negated
	// last difference.
	rev := slices.Clone(diffs)
	slices.Reverse(rev)
	p = rev[len(rev)-1].Mul(-1)
	rev = append([]mgl64.Vec2{p}, rev[:len(rev)-1]...)
	for i := 1; i < len(rev); i++ {
		abs := rev[i].Mul(-1).Add(p)
		rev[i] = abs
		p = abs
	}

	r := NewCardinalSplineBy(a.duration, rev, a.tension)
	r.stackable = a.stackable
	return r
}

func (a *CardinalSplineBy) Clone() Action {
	c := NewCardinalSplineBy(a.duration, a.points, a.tension)
	c.stackable = a.stackable
	return c
}

// NewCatmullRomTo moves the target through absolute points on a
// Catmull-Rom spline.
func NewCatmullRomTo(duration float64, points []mgl64.Vec2) *CardinalSplineTo {
	return NewCardinalSplineTo(duration, points, CatmullRomTension)
}

// NewCatmullRomBy moves the target through relative points on a Catmull-Rom
// spline.
func NewCatmullRomBy(duration float64, points []mgl64.Vec2) *CardinalSplineBy {
	return NewCardinalSplineBy(duration, points, CatmullRomTension)
}
