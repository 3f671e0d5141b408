package action

import (
	"fmt"
	"math"
)

// Repeat runs an action a fixed number of times.
type Repeat struct {
	Interval
	inner     FiniteTimeAction
	requested int
	times     int
	completed int
	next      float64
	instant   bool
}

// NewRepeat repeats inner times times. An instant inner runs once when the
// repeat starts and times-1 more times on its first tick. Panics if times
// is less than 1.
func NewRepeat(inner FiniteTimeAction, times int) *Repeat {
	mustFinite(inner, "repeat")
	if times < 1 {
		panic(fmt.Sprintf("action: repeat count must be at least 1, got %d", times))
	}
	r := &Repeat{inner: inner, requested: times, times: times}
	r.init(r, inner.Duration()*float64(times))
	if _, ok := inner.(InstantAction); ok {
		r.instant = true
		r.times--
	}
	return r
}

// Inner returns the repeated action.
func (r *Repeat) Inner() FiniteTimeAction { return r.inner }

// Times returns the repeat count the action was created with.
func (r *Repeat) Times() int { return r.requested }

// Completed returns how many repetitions have finished since the last start.
func (r *Repeat) Completed() int { return r.completed }

func (r *Repeat) fraction() float64 {
	return r.inner.Duration() / r.duration
}

func (r *Repeat) StartWithTarget(target Target) {
	r.completed = 0
	r.next = r.fraction()
	r.Interval.StartWithTarget(target)
	r.inner.StartWithTarget(target)
	if r.instant {
		r.inner.Update(1)
	}
}

func (r *Repeat) Stop() {
	r.inner.Stop()
	r.Interval.Stop()
}

// Update restarts the inner action at every repetition boundary t crosses
// and drives it with the progress left over inside the current repetition.
func (r *Repeat) Update(t float64) {
	frac := r.fraction()
	if t < r.next {
		advance(r.inner, clamp01(math.Mod(t*float64(r.requested), 1)))
		return
	}
	for t >= r.next && r.completed < r.times {
		advance(r.inner, 1)
		r.completed++
		r.inner.Stop()
		r.inner.StartWithTarget(r.target)
		r.next = frac * float64(r.completed+1)
	}
	// Float rounding can leave the last boundary just above 1.
	if t >= 1 && r.completed == r.times-1 {
		advance(r.inner, 1)
		r.completed++
	}
	if r.instant {
		return
	}
	if r.completed == r.times {
		r.inner.Stop()
		return
	}
	advance(r.inner, clamp01((t-(r.next-frac))/frac))
}

// IsDone reports whether every repetition has completed.
func (r *Repeat) IsDone() bool {
	return r.completed == r.times
}

func (r *Repeat) Reverse() FiniteTimeAction {
	return NewRepeat(r.inner.Reverse(), r.requested)
}

func (r *Repeat) Clone() Action {
	return NewRepeat(cloneFinite(r.inner), r.requested)
}

// RepeatForever restarts an interval action every time it finishes. It never
// reports done; remove it from the scheduler to end it.
type RepeatForever struct {
	Interval
	inner IntervalAction
}

// NewRepeatForever loops inner until stopped. Panics if inner is not an
// interval action.
func NewRepeatForever(inner FiniteTimeAction) *RepeatForever {
	r := &RepeatForever{inner: mustInterval(inner, "RepeatForever")}
	r.init(r, math.Inf(1))
	return r
}

// Inner returns the looped action.
func (r *RepeatForever) Inner() IntervalAction { return r.inner }

func (r *RepeatForever) StartWithTarget(target Target) {
	r.Interval.StartWithTarget(target)
	r.inner.StartWithTarget(target)
}

func (r *RepeatForever) Stop() {
	r.inner.Stop()
	r.Interval.Stop()
}

// Step advances the inner action. Time past the end of a loop is carried
// into the next one; whole loops skipped by a long frame are dropped so the
// phase within the loop is kept.
func (r *RepeatForever) Step(dt float64) {
	r.elapsed += dt
	r.inner.Step(dt)
	if !r.inner.IsDone() {
		return
	}
	d := r.inner.Duration()
	diff := r.inner.Elapsed() - d
	if diff > d {
		diff = math.Mod(diff, d)
	}
	r.inner.StartWithTarget(r.target)
	// The zero step consumes the inner action's first tick.
	r.inner.Step(0)
	r.inner.Step(diff)
}

// Update does nothing. RepeatForever has no normalized timeline.
func (r *RepeatForever) Update(t float64) {}

func (r *RepeatForever) IsDone() bool { return false }

func (r *RepeatForever) Reverse() FiniteTimeAction {
	return NewRepeatForever(r.inner.Reverse())
}

func (r *RepeatForever) Clone() Action {
	return NewRepeatForever(cloneFinite(r.inner))
}
