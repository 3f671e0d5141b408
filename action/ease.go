package action

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// EaseKind selects the curve an Ease applies.
type EaseKind int

const (
	EaseRateIn EaseKind = iota
	EaseRateOut
	EaseRateInOut
	EaseExponentialIn
	EaseExponentialOut
	EaseExponentialInOut
	EaseSineIn
	EaseSineOut
	EaseSineInOut
	EaseElasticIn
	EaseElasticOut
	EaseElasticInOut
	EaseBackIn
	EaseBackOut
	EaseBackInOut
	EaseBounceIn
	EaseBounceOut
	EaseBounceInOut
	EaseQuadIn
	EaseQuadOut
	EaseQuadInOut
	EaseCubicIn
	EaseCubicOut
	EaseCubicInOut
	EaseQuartIn
	EaseQuartOut
	EaseQuartInOut
	EaseQuintIn
	EaseQuintOut
	EaseQuintInOut
	EaseCircIn
	EaseCircOut
	EaseCircInOut
	EaseCustom
)

// DefaultElasticPeriod is the period used when an elastic ease is given 0.
const DefaultElasticPeriod = 0.3

type easeInfo struct {
	name string
	fn   ease.TweenFunc
	dual EaseKind
}

// easeTable is indexed by EaseKind. Curves without fn are computed in
// closed form by Ease.remap.
var easeTable = [...]easeInfo{
	EaseRateIn:           {"EaseIn", nil, EaseRateOut},
	EaseRateOut:          {"EaseOut", nil, EaseRateIn},
	EaseRateInOut:        {"EaseInOut", nil, EaseRateInOut},
	EaseExponentialIn:    {"EaseExponentialIn", ease.InExpo, EaseExponentialOut},
	EaseExponentialOut:   {"EaseExponentialOut", ease.OutExpo, EaseExponentialIn},
	EaseExponentialInOut: {"EaseExponentialInOut", ease.InOutExpo, EaseExponentialInOut},
	EaseSineIn:           {"EaseSineIn", ease.InSine, EaseSineOut},
	EaseSineOut:          {"EaseSineOut", ease.OutSine, EaseSineIn},
	EaseSineInOut:        {"EaseSineInOut", ease.InOutSine, EaseSineInOut},
	EaseElasticIn:        {"EaseElasticIn", nil, EaseElasticOut},
	EaseElasticOut:       {"EaseElasticOut", nil, EaseElasticIn},
	EaseElasticInOut:     {"EaseElasticInOut", nil, EaseElasticInOut},
	EaseBackIn:           {"EaseBackIn", ease.InBack, EaseBackOut},
	EaseBackOut:          {"EaseBackOut", ease.OutBack, EaseBackIn},
	EaseBackInOut:        {"EaseBackInOut", ease.InOutBack, EaseBackInOut},
	EaseBounceIn:         {"EaseBounceIn", ease.InBounce, EaseBounceOut},
	EaseBounceOut:        {"EaseBounceOut", ease.OutBounce, EaseBounceIn},
	EaseBounceInOut:      {"EaseBounceInOut", ease.InOutBounce, EaseBounceInOut},
	EaseQuadIn:           {"EaseQuadraticIn", ease.InQuad, EaseQuadOut},
	EaseQuadOut:          {"EaseQuadraticOut", ease.OutQuad, EaseQuadIn},
	EaseQuadInOut:        {"EaseQuadraticInOut", ease.InOutQuad, EaseQuadInOut},
	EaseCubicIn:          {"EaseCubicIn", ease.InCubic, EaseCubicOut},
	EaseCubicOut:         {"EaseCubicOut", ease.OutCubic, EaseCubicIn},
	EaseCubicInOut:       {"EaseCubicInOut", ease.InOutCubic, EaseCubicInOut},
	EaseQuartIn:          {"EaseQuarticIn", ease.InQuart, EaseQuartOut},
	EaseQuartOut:         {"EaseQuarticOut", ease.OutQuart, EaseQuartIn},
	EaseQuartInOut:       {"EaseQuarticInOut", ease.InOutQuart, EaseQuartInOut},
	EaseQuintIn:          {"EaseQuinticIn", ease.InQuint, EaseQuintOut},
	EaseQuintOut:         {"EaseQuinticOut", ease.OutQuint, EaseQuintIn},
	EaseQuintInOut:       {"EaseQuinticInOut", ease.InOutQuint, EaseQuintInOut},
	EaseCircIn:           {"EaseCircleIn", ease.InCirc, EaseCircOut},
	EaseCircOut:          {"EaseCircleOut", ease.OutCirc, EaseCircIn},
	EaseCircInOut:        {"EaseCircleInOut", ease.InOutCirc, EaseCircInOut},
	EaseCustom:           {"EaseCustom", nil, EaseCustom},
}

func (k EaseKind) String() string {
	if k < 0 || int(k) >= len(easeTable) {
		return fmt.Sprintf("EaseKind(%d)", int(k))
	}
	return easeTable[k].name
}

// Dual returns the kind that plays the curve mirrored in time. In and Out
// swap; InOut and custom curves are their own dual.
func (k EaseKind) Dual() EaseKind {
	return easeTable[k].dual
}

// Ease remaps the progress of an interval action through a curve.
type Ease struct {
	Interval
	inner  IntervalAction
	kind   EaseKind
	rate   float64
	period float64
	fn     ease.TweenFunc
}

func newEase(inner FiniteTimeAction, kind EaseKind) *Ease {
	if kind < 0 || int(kind) >= len(easeTable) {
		panic(fmt.Sprintf("action: unknown ease kind %d", int(kind)))
	}
	e := &Ease{inner: mustInterval(inner, "ease"), kind: kind, fn: easeTable[kind].fn}
	e.init(e, inner.Duration())
	return e
}

// NewEase wraps inner with one of the fixed curves. Rate curves get a rate
// of 2 and elastic curves the default period; use the dedicated
// constructors to choose them.
func NewEase(inner FiniteTimeAction, kind EaseKind) *Ease {
	if kind == EaseCustom {
		panic("action: custom eases need NewEaseTween")
	}
	e := newEase(inner, kind)
	e.rate = 2
	e.period = DefaultElasticPeriod
	return e
}

// NewEaseIn applies t^rate.
func NewEaseIn(inner FiniteTimeAction, rate float64) *Ease {
	e := newEase(inner, EaseRateIn)
	e.rate = rate
	return e
}

// NewEaseOut applies t^(1/rate).
func NewEaseOut(inner FiniteTimeAction, rate float64) *Ease {
	e := newEase(inner, EaseRateOut)
	e.rate = rate
	return e
}

// NewEaseInOut applies EaseIn to the first half and a mirrored EaseIn to
// the second.
func NewEaseInOut(inner FiniteTimeAction, rate float64) *Ease {
	e := newEase(inner, EaseRateInOut)
	e.rate = rate
	return e
}

// NewEaseElastic applies an elastic curve with the given period. A period
// of 0 selects DefaultElasticPeriod, or 0.45 for EaseElasticInOut.
func NewEaseElastic(inner FiniteTimeAction, kind EaseKind, period float64) *Ease {
	switch kind {
	case EaseElasticIn, EaseElasticOut, EaseElasticInOut:
	default:
		panic(fmt.Sprintf("action: %v is not an elastic ease", kind))
	}
	e := newEase(inner, kind)
	e.period = period
	if period == 0 && kind != EaseElasticInOut {
		e.period = DefaultElasticPeriod
	}
	return e
}

// NewEaseTween applies any gween easing function. The function is called
// as fn(t, 0, 1, 1).
func NewEaseTween(inner FiniteTimeAction, fn ease.TweenFunc) *Ease {
	if fn == nil {
		panic("action: NewEaseTween needs an easing function")
	}
	e := newEase(inner, EaseCustom)
	e.fn = fn
	return e
}

// Kind returns the curve.
func (e *Ease) Kind() EaseKind { return e.kind }

// Rate returns the exponent of the rate curves.
func (e *Ease) Rate() float64 { return e.rate }

// Period returns the period of the elastic curves.
func (e *Ease) Period() float64 { return e.period }

// Inner returns the eased action.
func (e *Ease) Inner() IntervalAction { return e.inner }

func (e *Ease) StartWithTarget(target Target) {
	e.Interval.StartWithTarget(target)
	e.inner.StartWithTarget(target)
}

func (e *Ease) Stop() {
	e.inner.Stop()
	e.Interval.Stop()
}

func (e *Ease) Update(t float64) {
	advanceEased(e.inner, t, e.remap(t))
}

// easedUpdater is implemented by wrappers without a clock of their own that
// hand eased progress on to a clocked child.
type easedUpdater interface {
	updateEased(linear, eased float64)
}

// advanceEased drives inner with eased progress while keeping its clock on
// the linear timeline, so overshooting curves do not finish it early.
func advanceEased(inner FiniteTimeAction, linear, eased float64) {
	if w, ok := inner.(easedUpdater); ok {
		w.updateEased(linear, eased)
		return
	}
	if c, ok := inner.(clocked); ok {
		iv := c.clock()
		iv.elapsed = iv.duration * clamp01(linear)
		iv.firstTick = false
	}
	inner.Update(eased)
}

// remap evaluates the curve at t.
func (e *Ease) remap(t float64) float64 {
	switch e.kind {
	case EaseRateIn:
		return math.Pow(t, e.rate)
	case EaseRateOut:
		return math.Pow(t, 1/e.rate)
	case EaseRateInOut:
		t *= 2
		if t < 1 {
			return 0.5 * math.Pow(t, e.rate)
		}
		return 1 - 0.5*math.Pow(2-t, e.rate)
	case EaseElasticIn:
		return elasticIn(t, e.period)
	case EaseElasticOut:
		return elasticOut(t, e.period)
	case EaseElasticInOut:
		return elasticInOut(t, e.period)
	}
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float64(e.fn(float32(t), 0, 1, 1))
}

func elasticIn(t, period float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	s := period / 4
	t--
	return -math.Pow(2, 10*t) * math.Sin((t-s)*2*math.Pi/period)
}

func elasticOut(t, period float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	s := period / 4
	return math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/period) + 1
}

func elasticInOut(t, period float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	t *= 2
	if period == 0 {
		period = 0.3 * 1.5
	}
	s := period / 4
	t--
	if t < 0 {
		return -0.5 * math.Pow(2, 10*t) * math.Sin((t-s)*2*math.Pi/period)
	}
	return math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/period)*0.5 + 1
}

// Reverse reverses the inner action and applies the dual curve with the
// same rate and period.
func (e *Ease) Reverse() FiniteTimeAction {
	return e.rewrap(e.inner.Reverse(), e.kind.Dual())
}

func (e *Ease) Clone() Action {
	return e.rewrap(cloneFinite(e.inner), e.kind)
}

func (e *Ease) rewrap(inner FiniteTimeAction, kind EaseKind) *Ease {
	out := newEase(inner, kind)
	out.rate = e.rate
	out.period = e.period
	if kind == EaseCustom {
		out.fn = e.fn
	}
	return out
}
