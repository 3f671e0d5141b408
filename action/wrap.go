package action

import "math"

// --- Speed ---

// Speed plays an interval action faster or slower by scaling the time it
// is stepped with.
type Speed struct {
	base
	inner IntervalAction
	speed float64
}

// NewSpeed runs inner at speed times its normal rate. Panics if inner is
// not an interval action.
func NewSpeed(inner FiniteTimeAction, speed float64) *Speed {
	s := &Speed{inner: mustInterval(inner, "Speed"), speed: speed}
	s.tag = InvalidTag
	return s
}

// Inner returns the wrapped action.
func (s *Speed) Inner() IntervalAction { return s.inner }

// Speed returns the rate multiplier.
func (s *Speed) Speed() float64 { return s.speed }

// SetSpeed changes the rate multiplier, including while running.
func (s *Speed) SetSpeed(speed float64) { s.speed = speed }

// Duration returns the wall-clock duration: the inner duration divided by
// the speed. A speed of zero or less never finishes.
func (s *Speed) Duration() float64 {
	if s.speed <= 0 {
		return math.Inf(1)
	}
	return s.inner.Duration() / s.speed
}

// Elapsed returns the wall-clock time the inner action has been run for.
func (s *Speed) Elapsed() float64 {
	if s.speed <= 0 {
		return 0
	}
	return s.inner.Elapsed() / s.speed
}

func (s *Speed) StartWithTarget(target Target) {
	s.base.StartWithTarget(target)
	s.inner.StartWithTarget(target)
}

func (s *Speed) Stop() {
	s.inner.Stop()
	s.base.Stop()
}

func (s *Speed) Step(dt float64) {
	s.inner.Step(dt * s.speed)
}

// Update drives the inner action directly when a parent combinator owns
// the timeline.
func (s *Speed) Update(t float64) {
	advance(s.inner, t)
}

func (s *Speed) updateEased(linear, eased float64) {
	advanceEased(s.inner, linear, eased)
}

func (s *Speed) IsDone() bool { return s.inner.IsDone() }

func (s *Speed) Reverse() FiniteTimeAction {
	return NewSpeed(s.inner.Reverse(), s.speed)
}

func (s *Speed) Clone() Action {
	return NewSpeed(cloneFinite(s.inner), s.speed)
}

// --- ReverseTime ---

// ReverseTime plays an action backward.
type ReverseTime struct {
	Interval
	inner FiniteTimeAction
}

// NewReverseTime plays inner from its end state to its start state.
func NewReverseTime(inner FiniteTimeAction) *ReverseTime {
	mustFinite(inner, "ReverseTime")
	r := &ReverseTime{inner: inner}
	r.init(r, inner.Duration())
	return r
}

// Inner returns the wrapped action.
func (r *ReverseTime) Inner() FiniteTimeAction { return r.inner }

func (r *ReverseTime) StartWithTarget(target Target) {
	r.Interval.StartWithTarget(target)
	r.inner.StartWithTarget(target)
}

func (r *ReverseTime) Stop() {
	r.inner.Stop()
	r.Interval.Stop()
}

func (r *ReverseTime) Update(t float64) {
	advance(r.inner, 1-t)
}

// Reverse plays the inner action forward again.
func (r *ReverseTime) Reverse() FiniteTimeAction {
	return cloneFinite(r.inner)
}

func (r *ReverseTime) Clone() Action {
	return NewReverseTime(cloneFinite(r.inner))
}

// --- TargetedAction ---

// TargetedAction runs an action on a fixed target regardless of the target
// it is started with. The scheduler still tracks it under its own target.
type TargetedAction struct {
	Interval
	forced Target
	inner  FiniteTimeAction
}

// NewTargetedAction runs inner on forced.
func NewTargetedAction(forced Target, inner FiniteTimeAction) *TargetedAction {
	mustFinite(inner, "TargetedAction")
	if forced == nil {
		panic("action: TargetedAction needs a non-nil forced target")
	}
	a := &TargetedAction{forced: forced, inner: inner}
	a.init(a, inner.Duration())
	return a
}

// ForcedTarget returns the target the inner action runs on.
func (a *TargetedAction) ForcedTarget() Target { return a.forced }

// SetForcedTarget changes the target used the next time the action starts.
func (a *TargetedAction) SetForcedTarget(forced Target) { a.forced = forced }

// Inner returns the wrapped action.
func (a *TargetedAction) Inner() FiniteTimeAction { return a.inner }

func (a *TargetedAction) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.inner.StartWithTarget(a.forced)
}

func (a *TargetedAction) Stop() {
	a.inner.Stop()
	a.Interval.Stop()
}

func (a *TargetedAction) Update(t float64) {
	advance(a.inner, t)
}

func (a *TargetedAction) Reverse() FiniteTimeAction {
	return NewTargetedAction(a.forced, a.inner.Reverse())
}

func (a *TargetedAction) Clone() Action {
	return NewTargetedAction(a.forced, cloneFinite(a.inner))
}
