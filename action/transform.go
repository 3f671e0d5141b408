package action

import "math"

// --- RotateBy / RotateTo ---

// RotateBy rotates the target by an angle in radians.
type RotateBy struct {
	Interval
	rot   Rotator
	angle float64
	start float64
}

// NewRotateBy rotates the target by angle radians.
func NewRotateBy(duration, angle float64) *RotateBy {
	a := &RotateBy{angle: angle}
	a.init(a, duration)
	return a
}

func (a *RotateBy) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.rot = mustHave[Rotator](target, "RotateBy")
	a.start = a.rot.RotationAngle()
}

func (a *RotateBy) Update(t float64) {
	a.rot.SetRotation(a.start + a.angle*t)
}

func (a *RotateBy) Reverse() FiniteTimeAction { return NewRotateBy(a.duration, -a.angle) }
func (a *RotateBy) Clone() Action             { return NewRotateBy(a.duration, a.angle) }

// RotateTo rotates the target to an absolute angle along the shorter arc.
type RotateTo struct {
	RotateBy
	end float64
}

// NewRotateTo rotates the target to angle radians.
func NewRotateTo(duration, angle float64) *RotateTo {
	a := &RotateTo{end: angle}
	a.init(&a.RotateBy, duration)
	return a
}

func (a *RotateTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.rot = mustHave[Rotator](target, "RotateTo")
	a.start = a.rot.RotationAngle()
	a.angle = shortestArc(a.start, a.end)
}

// shortestArc returns the signed rotation in (-Pi, Pi] from -> to.
func shortestArc(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func (a *RotateTo) Reverse() FiniteTimeAction { return notReversible("RotateTo") }
func (a *RotateTo) Clone() Action             { return NewRotateTo(a.duration, a.end) }

// --- ScaleBy / ScaleTo ---

// ScaleTo scales the target to absolute factors.
type ScaleTo struct {
	Interval
	sc             Scaler
	endX, endY     float64
	startX, startY float64
	deltaX, deltaY float64
	relative       bool
}

// NewScaleTo scales the target to (sx, sy).
func NewScaleTo(duration, sx, sy float64) *ScaleTo {
	a := &ScaleTo{endX: sx, endY: sy}
	a.init(a, duration)
	return a
}

func (a *ScaleTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.sc = mustHave[Scaler](target, "Scale")
	a.startX, a.startY = a.sc.Scale()
	if a.relative {
		a.deltaX = a.startX*a.endX - a.startX
		a.deltaY = a.startY*a.endY - a.startY
	} else {
		a.deltaX = a.endX - a.startX
		a.deltaY = a.endY - a.startY
	}
}

func (a *ScaleTo) Update(t float64) {
	a.sc.SetScale(a.startX+a.deltaX*t, a.startY+a.deltaY*t)
}

func (a *ScaleTo) Reverse() FiniteTimeAction { return notReversible("ScaleTo") }
func (a *ScaleTo) Clone() Action             { return NewScaleTo(a.duration, a.endX, a.endY) }

// ScaleBy multiplies the target's scale by (sx, sy).
type ScaleBy struct{ ScaleTo }

// NewScaleBy multiplies the target's scale by (sx, sy).
func NewScaleBy(duration, sx, sy float64) *ScaleBy {
	a := &ScaleBy{ScaleTo{endX: sx, endY: sy, relative: true}}
	a.init(&a.ScaleTo, duration)
	return a
}

func (a *ScaleBy) Reverse() FiniteTimeAction {
	return NewScaleBy(a.duration, 1/a.endX, 1/a.endY)
}

func (a *ScaleBy) Clone() Action { return NewScaleBy(a.duration, a.endX, a.endY) }

// --- SkewBy / SkewTo ---

// SkewTo skews the target to absolute angles in radians.
type SkewTo struct {
	Interval
	sk             Skewer
	endX, endY     float64
	startX, startY float64
	deltaX, deltaY float64
	relative       bool
}

// NewSkewTo skews the target to (kx, ky).
func NewSkewTo(duration, kx, ky float64) *SkewTo {
	a := &SkewTo{endX: kx, endY: ky}
	a.init(a, duration)
	return a
}

func (a *SkewTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.sk = mustHave[Skewer](target, "Skew")
	a.startX, a.startY = a.sk.Skew()
	if a.relative {
		a.deltaX, a.deltaY = a.endX, a.endY
	} else {
		a.deltaX = a.endX - a.startX
		a.deltaY = a.endY - a.startY
	}
}

func (a *SkewTo) Update(t float64) {
	a.sk.SetSkew(a.startX+a.deltaX*t, a.startY+a.deltaY*t)
}

func (a *SkewTo) Reverse() FiniteTimeAction { return notReversible("SkewTo") }
func (a *SkewTo) Clone() Action             { return NewSkewTo(a.duration, a.endX, a.endY) }

// SkewBy skews the target by (dx, dy) radians.
type SkewBy struct{ SkewTo }

// NewSkewBy skews the target by (dx, dy).
func NewSkewBy(duration, dx, dy float64) *SkewBy {
	a := &SkewBy{SkewTo{endX: dx, endY: dy, relative: true}}
	a.init(&a.SkewTo, duration)
	return a
}

func (a *SkewBy) Reverse() FiniteTimeAction { return NewSkewBy(a.duration, -a.endX, -a.endY) }
func (a *SkewBy) Clone() Action             { return NewSkewBy(a.duration, a.endX, a.endY) }
