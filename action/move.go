package action

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// anchor tracks the point a positional leaf moves relative to. When
// stacking is enabled, movement of the target made by anyone else since the
// previous tick is folded into the start point.
type anchor struct {
	stacking
	pos      Positioner
	start    mgl64.Vec2
	previous mgl64.Vec2
}

func newAnchor() anchor {
	return anchor{stacking: newStacking()}
}

func (a *anchor) bind(target Target, op string) {
	a.pos = mustHave[Positioner](target, op)
	a.start = positionOf(a.pos)
	a.previous = a.start
}

// origin returns the start point for this tick.
func (a *anchor) origin() mgl64.Vec2 {
	if a.stackable {
		a.start = a.start.Add(positionOf(a.pos).Sub(a.previous))
	}
	return a.start
}

func (a *anchor) place(p mgl64.Vec2) {
	a.pos.SetPosition(p[0], p[1])
	a.previous = p
}

func positionOf(p Positioner) mgl64.Vec2 {
	x, y := p.Position()
	return mgl64.Vec2{x, y}
}

// --- MoveBy / MoveTo ---

// MoveBy moves the target by a relative offset.
type MoveBy struct {
	Interval
	anchor
	delta mgl64.Vec2
}

// NewMoveBy moves the target by delta over duration seconds.
func NewMoveBy(duration float64, delta mgl64.Vec2) *MoveBy {
	a := &MoveBy{anchor: newAnchor(), delta: delta}
	a.init(a, duration)
	return a
}

// Delta returns the offset.
func (a *MoveBy) Delta() mgl64.Vec2 { return a.delta }

func (a *MoveBy) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.bind(target, "MoveBy")
}

func (a *MoveBy) Update(t float64) {
	a.place(a.origin().Add(a.delta.Mul(t)))
}

func (a *MoveBy) Reverse() FiniteTimeAction {
	r := NewMoveBy(a.duration, a.delta.Mul(-1))
	r.stackable = a.stackable
	return r
}

func (a *MoveBy) Clone() Action {
	c := NewMoveBy(a.duration, a.delta)
	c.stackable = a.stackable
	return c
}

// MoveTo moves the target to an absolute position.
type MoveTo struct {
	MoveBy
	end mgl64.Vec2
}

// NewMoveTo moves the target to end over duration seconds.
func NewMoveTo(duration float64, end mgl64.Vec2) *MoveTo {
	a := &MoveTo{MoveBy: MoveBy{anchor: newAnchor()}, end: end}
	a.init(&a.MoveBy, duration)
	return a
}

func (a *MoveTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.bind(target, "MoveTo")
	a.delta = a.end.Sub(a.start)
}

func (a *MoveTo) Reverse() FiniteTimeAction { return notReversible("MoveTo") }

func (a *MoveTo) Clone() Action {
	c := NewMoveTo(a.duration, a.end)
	c.stackable = a.stackable
	return c
}

// --- JumpBy / JumpTo ---

// JumpBy moves the target by an offset along parabolic hops.
type JumpBy struct {
	Interval
	anchor
	delta  mgl64.Vec2
	height float64
	jumps  int
}

// NewJumpBy moves the target by delta in jumps hops of the given height.
func NewJumpBy(duration float64, delta mgl64.Vec2, height float64, jumps int) *JumpBy {
	a := &JumpBy{anchor: newAnchor(), delta: delta, height: height, jumps: jumps}
	a.init(a, duration)
	return a
}

func (a *JumpBy) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.bind(target, "JumpBy")
}

func (a *JumpBy) Update(t float64) {
	frac := math.Mod(t*float64(a.jumps), 1)
	y := a.height*4*frac*(1-frac) + a.delta[1]*t
	x := a.delta[0] * t
	a.place(a.origin().Add(mgl64.Vec2{x, y}))
}

func (a *JumpBy) Reverse() FiniteTimeAction {
	r := NewJumpBy(a.duration, a.delta.Mul(-1), a.height, a.jumps)
	r.stackable = a.stackable
	return r
}

func (a *JumpBy) Clone() Action {
	c := NewJumpBy(a.duration, a.delta, a.height, a.jumps)
	c.stackable = a.stackable
	return c
}

// JumpTo hops the target to an absolute position.
type JumpTo struct {
	JumpBy
	end mgl64.Vec2
}

// NewJumpTo hops the target to end.
func NewJumpTo(duration float64, end mgl64.Vec2, height float64, jumps int) *JumpTo {
	a := &JumpTo{JumpBy: JumpBy{anchor: newAnchor(), height: height, jumps: jumps}, end: end}
	a.init(&a.JumpBy, duration)
	return a
}

func (a *JumpTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.bind(target, "JumpTo")
	a.delta = a.end.Sub(a.start)
}

func (a *JumpTo) Reverse() FiniteTimeAction { return notReversible("JumpTo") }

func (a *JumpTo) Clone() Action {
	c := NewJumpTo(a.duration, a.end, a.height, a.jumps)
	c.stackable = a.stackable
	return c
}

// --- BezierBy / BezierTo ---

// Bezier describes a cubic curve from the start position. For BezierBy the
// points are offsets from the start; for BezierTo they are absolute.
type Bezier struct {
	Control1 mgl64.Vec2
	Control2 mgl64.Vec2
	End      mgl64.Vec2
}

// at evaluates the curve starting at the origin. Overshooting eases can
// push t outside [0, 1], where the polynomial is extended.
func (b Bezier) at(t float64) mgl64.Vec2 {
	if t >= 0 && t <= 1 {
		return mgl64.CubicBezierCurve2D(t, mgl64.Vec2{}, b.Control1, b.Control2, b.End)
	}
	u := 1 - t
	return b.Control1.Mul(3 * u * u * t).
		Add(b.Control2.Mul(3 * u * t * t)).
		Add(b.End.Mul(t * t * t))
}

// BezierBy moves the target along a cubic Bezier curve relative to its
// start position.
type BezierBy struct {
	Interval
	anchor
	curve Bezier
}

// NewBezierBy moves the target along curve.
func NewBezierBy(duration float64, curve Bezier) *BezierBy {
	a := &BezierBy{anchor: newAnchor(), curve: curve}
	a.init(a, duration)
	return a
}

func (a *BezierBy) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.bind(target, "BezierBy")
}

func (a *BezierBy) Update(t float64) {
	a.place(a.origin().Add(a.curve.at(t)))
}

// Reverse retraces the curve from its end back to the start.
func (a *BezierBy) Reverse() FiniteTimeAction {
	c := a.curve
	r := NewBezierBy(a.duration, Bezier{
		Control1: c.Control2.Sub(c.End),
		Control2: c.Control1.Sub(c.End),
		End:      c.End.Mul(-1),
	})
	r.stackable = a.stackable
	return r
}

func (a *BezierBy) Clone() Action {
	c := NewBezierBy(a.duration, a.curve)
	c.stackable = a.stackable
	return c
}

// BezierTo moves the target along a cubic Bezier curve given in absolute
// coordinates.
type BezierTo struct {
	BezierBy
	to Bezier
}

// NewBezierTo moves the target along the absolute curve to.
func NewBezierTo(duration float64, to Bezier) *BezierTo {
	a := &BezierTo{BezierBy: BezierBy{anchor: newAnchor()}, to: to}
	a.init(&a.BezierBy, duration)
	return a
}

func (a *BezierTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.bind(target, "BezierTo")
	a.curve = Bezier{
		Control1: a.to.Control1.Sub(a.start),
		Control2: a.to.Control2.Sub(a.start),
		End:      a.to.End.Sub(a.start),
	}
}

func (a *BezierTo) Reverse() FiniteTimeAction { return notReversible("BezierTo") }

func (a *BezierTo) Clone() Action {
	c := NewBezierTo(a.duration, a.to)
	c.stackable = a.stackable
	return c
}
