package action

import "math"

// DelayTime waits without touching the target.
type DelayTime struct{ Interval }

// NewDelayTime waits for duration seconds.
func NewDelayTime(duration float64) *DelayTime {
	a := &DelayTime{}
	a.init(a, duration)
	return a
}

func (a *DelayTime) Update(t float64) {}

func (a *DelayTime) Reverse() FiniteTimeAction { return NewDelayTime(a.duration) }
func (a *DelayTime) Clone() Action             { return NewDelayTime(a.duration) }

// Blink toggles the target's visibility times times. Stopping it restores
// the visibility the target had when it started.
type Blink struct {
	Interval
	vis      Visibility
	times    int
	original bool
}

// NewBlink blinks the target times times over duration seconds.
func NewBlink(duration float64, times int) *Blink {
	a := &Blink{times: times}
	a.init(a, duration)
	return a
}

// Times returns the number of blinks.
func (a *Blink) Times() int { return a.times }

func (a *Blink) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.vis = mustHave[Visibility](target, "Blink")
	a.original = a.vis.IsVisible()
}

func (a *Blink) Stop() {
	if a.vis != nil {
		a.vis.SetVisible(a.original)
	}
	a.Interval.Stop()
}

func (a *Blink) Update(t float64) {
	if a.vis == nil || a.IsDone() || a.times <= 0 {
		return
	}
	slice := 1 / float64(a.times)
	m := math.Mod(t, slice)
	a.vis.SetVisible(m > slice/2)
}

func (a *Blink) Reverse() FiniteTimeAction { return NewBlink(a.duration, a.times) }
func (a *Blink) Clone() Action             { return NewBlink(a.duration, a.times) }

// --- ProgressTo / ProgressFromTo ---

// ProgressFromTo animates a progress target's percentage between two
// values in [0, 100].
type ProgressFromTo struct {
	Interval
	prog     Progressor
	from, to float64
}

// NewProgressFromTo animates the percentage from from to to.
func NewProgressFromTo(duration, from, to float64) *ProgressFromTo {
	a := &ProgressFromTo{from: from, to: to}
	a.init(a, duration)
	return a
}

func (a *ProgressFromTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.prog = mustHave[Progressor](target, "ProgressFromTo")
}

func (a *ProgressFromTo) Update(t float64) {
	a.prog.SetPercentage(a.from + (a.to-a.from)*t)
}

func (a *ProgressFromTo) Reverse() FiniteTimeAction {
	return NewProgressFromTo(a.duration, a.to, a.from)
}

func (a *ProgressFromTo) Clone() Action { return NewProgressFromTo(a.duration, a.from, a.to) }

// ProgressTo animates a progress target's percentage from its current value.
// A target that is already full starts again from 0, so a repeated
// ProgressTo(100) refills the bar each time.
type ProgressTo struct {
	Interval
	prog     Progressor
	from, to float64
}

// NewProgressTo animates the percentage to percent.
func NewProgressTo(duration, percent float64) *ProgressTo {
	a := &ProgressTo{to: percent}
	a.init(a, duration)
	return a
}

func (a *ProgressTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.prog = mustHave[Progressor](target, "ProgressTo")
	a.from = a.prog.Percentage()
	if a.from == 100 {
		a.from = 0
	}
}

func (a *ProgressTo) Update(t float64) {
	a.prog.SetPercentage(a.from + (a.to-a.from)*t)
}

func (a *ProgressTo) Reverse() FiniteTimeAction { return notReversible("ProgressTo") }
func (a *ProgressTo) Clone() Action             { return NewProgressTo(a.duration, a.to) }
