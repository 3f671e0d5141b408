package action

// --- FadeTo / FadeIn / FadeOut ---

// FadeTo animates the target's opacity. Targets without the RGBA
// capability are left untouched.
type FadeTo struct {
	Interval
	rgba Tintable
	to   float64
	from float64
}

// NewFadeTo fades the target to opacity in [0, 1].
func NewFadeTo(duration, opacity float64) *FadeTo {
	a := &FadeTo{to: opacity}
	a.init(a, duration)
	return a
}

func (a *FadeTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.rgba, _ = target.(Tintable)
	if a.rgba != nil {
		a.from = a.rgba.Opacity()
	}
}

func (a *FadeTo) Update(t float64) {
	if a.rgba == nil {
		return
	}
	a.rgba.SetAlpha(a.from + (a.to-a.from)*t)
}

func (a *FadeTo) Reverse() FiniteTimeAction { return notReversible("FadeTo") }
func (a *FadeTo) Clone() Action             { return NewFadeTo(a.duration, a.to) }

// FadeIn fades the target to fully opaque.
type FadeIn struct{ FadeTo }

// NewFadeIn creates a FadeIn action.
func NewFadeIn(duration float64) *FadeIn {
	a := &FadeIn{FadeTo{to: 1}}
	a.init(&a.FadeTo, duration)
	return a
}

func (a *FadeIn) Reverse() FiniteTimeAction { return NewFadeOut(a.duration) }
func (a *FadeIn) Clone() Action             { return NewFadeIn(a.duration) }

// FadeOut fades the target to fully transparent.
type FadeOut struct{ FadeTo }

// NewFadeOut creates a FadeOut action.
func NewFadeOut(duration float64) *FadeOut {
	a := &FadeOut{FadeTo{to: 0}}
	a.init(&a.FadeTo, duration)
	return a
}

func (a *FadeOut) Reverse() FiniteTimeAction { return NewFadeIn(a.duration) }
func (a *FadeOut) Clone() Action             { return NewFadeOut(a.duration) }

// --- TintTo / TintBy ---

// TintTo animates the target's tint to an absolute color. Components are in
// [0, 1].
type TintTo struct {
	Interval
	rgba     Tintable
	to       [3]float64
	from     [3]float64
	delta    [3]float64
	relative bool
}

// NewTintTo tints the target to (r, g, b).
func NewTintTo(duration, r, g, b float64) *TintTo {
	a := &TintTo{to: [3]float64{r, g, b}}
	a.init(a, duration)
	return a
}

func (a *TintTo) StartWithTarget(target Target) {
	a.Interval.StartWithTarget(target)
	a.rgba, _ = target.(Tintable)
	if a.rgba == nil {
		return
	}
	r, g, b := a.rgba.Tint()
	a.from = [3]float64{r, g, b}
	for i := range a.delta {
		if a.relative {
			a.delta[i] = a.to[i]
		} else {
			a.delta[i] = a.to[i] - a.from[i]
		}
	}
}

func (a *TintTo) Update(t float64) {
	if a.rgba == nil {
		return
	}
	a.rgba.SetTint(
		a.from[0]+a.delta[0]*t,
		a.from[1]+a.delta[1]*t,
		a.from[2]+a.delta[2]*t,
	)
}

func (a *TintTo) Reverse() FiniteTimeAction { return notReversible("TintTo") }
func (a *TintTo) Clone() Action             { return NewTintTo(a.duration, a.to[0], a.to[1], a.to[2]) }

// TintBy shifts the target's tint by a relative amount.
type TintBy struct{ TintTo }

// NewTintBy shifts the target's tint by (dr, dg, db).
func NewTintBy(duration, dr, dg, db float64) *TintBy {
	a := &TintBy{TintTo{to: [3]float64{dr, dg, db}, relative: true}}
	a.init(&a.TintTo, duration)
	return a
}

func (a *TintBy) Reverse() FiniteTimeAction {
	return NewTintBy(a.duration, -a.to[0], -a.to[1], -a.to[2])
}

func (a *TintBy) Clone() Action { return NewTintBy(a.duration, a.to[0], a.to[1], a.to[2]) }
