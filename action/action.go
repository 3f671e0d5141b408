package action

import (
	"fmt"
	"math"
)

// Epsilon is the shortest duration an interval action runs for. Shorter
// durations, including zero, are clamped to it so normalized time never
// divides by zero.
const Epsilon = 1.1920929e-07

// InvalidTag is the tag of an action that was never tagged.
const InvalidTag = -1

// Target is anything an action can be bound to. Leaves query the
// capabilities they need from it when they start.
type Target interface{}

// Action is a stateful, time-advancing behavior bound to a target.
type Action interface {
	// StartWithTarget binds the action to target and resets its progress.
	StartWithTarget(target Target)
	// Stop unbinds the action. It does not jump to the end state.
	Stop()
	// Step advances the action by dt seconds. Called once per frame.
	Step(dt float64)
	// Update applies normalized progress t.
	Update(t float64)
	IsDone() bool

	Target() Target
	OriginalTarget() Target
	Tag() int
	SetTag(tag int)

	// Clone returns an independent copy that has not been started.
	Clone() Action
}

// FiniteTimeAction is an action with a fixed duration that can be reversed.
type FiniteTimeAction interface {
	Action
	Duration() float64
	// Reverse returns a new action whose effect played forward equals the
	// receiver's effect played backward. The receiver is not modified.
	Reverse() FiniteTimeAction
}

// IntervalAction is a finite action driven by an elapsed-time clock.
type IntervalAction interface {
	FiniteTimeAction
	Elapsed() float64
}

// InstantAction is a finite action with zero duration that performs its
// effect once.
type InstantAction interface {
	FiniteTimeAction
	instant()
}

// base holds the identity and binding shared by every action.
type base struct {
	target         Target
	originalTarget Target
	tag            int
}

func (b *base) StartWithTarget(target Target) {
	if target == nil {
		panic("action: cannot start with a nil target")
	}
	b.originalTarget = target
	b.target = target
}

func (b *base) Stop() {
	b.target = nil
}

func (b *base) Target() Target         { return b.target }
func (b *base) OriginalTarget() Target { return b.originalTarget }
func (b *base) Tag() int               { return b.tag }
func (b *base) SetTag(tag int)         { b.tag = tag }

// updater is the part of the outer action an embedded clock dispatches to.
type updater interface {
	Update(t float64)
}

// Interval is the normalized-time engine embedded by every timed leaf and
// combinator. It turns accumulated elapsed time into progress in [0, 1] and
// hands it to the outer action's Update.
type Interval struct {
	base
	self      updater
	duration  float64
	elapsed   float64
	firstTick bool
}

// init prepares the clock. self is the outer action whose Update receives
// progress.
func (i *Interval) init(self updater, duration float64) {
	if duration < Epsilon {
		duration = Epsilon
	}
	i.self = self
	i.duration = duration
	i.elapsed = 0
	i.firstTick = true
	i.tag = InvalidTag
}

// Duration returns the duration in seconds.
func (i *Interval) Duration() float64 { return i.duration }

// Elapsed returns the seconds accumulated since the action started.
func (i *Interval) Elapsed() float64 { return i.elapsed }

// StartWithTarget binds target and rewinds the clock to progress 0.
func (i *Interval) StartWithTarget(target Target) {
	i.base.StartWithTarget(target)
	i.elapsed = 0
	i.firstTick = true
}

// Step advances the clock. The first step after a start ignores dt.
func (i *Interval) Step(dt float64) {
	if i.firstTick {
		i.firstTick = false
		i.elapsed = 0
	} else {
		i.elapsed += dt
	}
	i.self.Update(progress(i.elapsed, i.duration))
}

// IsDone reports whether the full duration has elapsed.
func (i *Interval) IsDone() bool {
	return i.elapsed >= i.duration
}

func (i *Interval) clock() *Interval { return i }

// clocked is implemented by every action embedding Interval.
type clocked interface {
	clock() *Interval
}

// progress converts elapsed seconds to normalized time in [0, 1].
func progress(elapsed, duration float64) float64 {
	return clamp01(elapsed / math.Max(duration, Epsilon))
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// advance drives a child to progress t on behalf of a combinator. The
// child's clock is moved along with it so IsDone and Elapsed reflect the
// progress it was given.
func advance(a FiniteTimeAction, t float64) {
	if c, ok := a.(clocked); ok {
		iv := c.clock()
		iv.elapsed = iv.duration * clamp01(t)
		iv.firstTick = false
	}
	a.Update(t)
}

// cloneFinite clones a and keeps its finite type.
func cloneFinite(a FiniteTimeAction) FiniteTimeAction {
	return a.Clone().(FiniteTimeAction)
}

// mustInterval asserts that a is an interval action. Wrappers that step
// their child independently need one.
func mustInterval(a FiniteTimeAction, op string) IntervalAction {
	iv, ok := a.(IntervalAction)
	if !ok {
		panic(fmt.Sprintf("action: %s needs an interval action, got %T", op, a))
	}
	return iv
}

// mustHave returns target as capability C or panics naming the operation.
func mustHave[C any](target Target, op string) C {
	c, ok := target.(C)
	if !ok {
		panic(fmt.Sprintf("action: %s target %T does not implement %T", op, target, (*C)(nil)))
	}
	return c
}

// mustFinite panics when a composes with an action that never ends.
func mustFinite(a FiniteTimeAction, op string) {
	if a == nil {
		panic(fmt.Sprintf("action: %s child must not be nil", op))
	}
	if math.IsInf(a.Duration(), 1) {
		panic(fmt.Sprintf("action: %s cannot contain %T, it never finishes", op, a))
	}
}

// notReversible panics for absolute actions that have no inverse.
func notReversible(name string) FiniteTimeAction {
	panic(fmt.Sprintf("action: %s cannot be reversed", name))
}
