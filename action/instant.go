package action

// Instant is the zero-duration engine embedded by instant actions. Step
// applies the effect through the outer action's Update exactly as a full
// progress update would.
type Instant struct {
	base
	self updater
	done bool
}

func (i *Instant) init(self updater) {
	i.self = self
	i.tag = InvalidTag
}

// StartWithTarget binds target and arms the action again.
func (i *Instant) StartWithTarget(target Target) {
	i.base.StartWithTarget(target)
	i.done = false
}

// Step performs the effect.
func (i *Instant) Step(dt float64) {
	i.self.Update(1)
}

// IsDone reports whether the effect has run since the last start.
func (i *Instant) IsDone() bool { return i.done }

// Duration is always zero.
func (i *Instant) Duration() float64 { return 0 }

func (i *Instant) finish() { i.done = true }

func (i *Instant) instant() {}

// --- Show / Hide / ToggleVisibility ---

// Show makes the target visible.
type Show struct{ Instant }

// NewShow creates a Show action.
func NewShow() *Show {
	a := &Show{}
	a.init(a)
	return a
}

func (a *Show) Update(t float64) {
	if v, ok := a.target.(Visibility); ok {
		v.SetVisible(true)
	}
	a.finish()
}

func (a *Show) Reverse() FiniteTimeAction { return NewHide() }
func (a *Show) Clone() Action             { return NewShow() }

// Hide makes the target invisible.
type Hide struct{ Instant }

// NewHide creates a Hide action.
func NewHide() *Hide {
	a := &Hide{}
	a.init(a)
	return a
}

func (a *Hide) Update(t float64) {
	if v, ok := a.target.(Visibility); ok {
		v.SetVisible(false)
	}
	a.finish()
}

func (a *Hide) Reverse() FiniteTimeAction { return NewShow() }
func (a *Hide) Clone() Action             { return NewHide() }

// ToggleVisibility flips the target's visibility.
type ToggleVisibility struct{ Instant }

// NewToggleVisibility creates a ToggleVisibility action.
func NewToggleVisibility() *ToggleVisibility {
	a := &ToggleVisibility{}
	a.init(a)
	return a
}

func (a *ToggleVisibility) Update(t float64) {
	if v, ok := a.target.(Visibility); ok {
		v.SetVisible(!v.IsVisible())
	}
	a.finish()
}

func (a *ToggleVisibility) Reverse() FiniteTimeAction { return NewToggleVisibility() }
func (a *ToggleVisibility) Clone() Action             { return NewToggleVisibility() }

// --- Place ---

// Place moves the target to an absolute position.
type Place struct {
	Instant
	x, y float64
}

// NewPlace creates a Place action.
func NewPlace(x, y float64) *Place {
	a := &Place{x: x, y: y}
	a.init(a)
	return a
}

func (a *Place) Update(t float64) {
	mustHave[Positioner](a.target, "Place").SetPosition(a.x, a.y)
	a.finish()
}

func (a *Place) Reverse() FiniteTimeAction { return NewPlace(a.x, a.y) }
func (a *Place) Clone() Action             { return NewPlace(a.x, a.y) }

// --- CallFunc / CallFuncN ---

// CallFunc invokes a function.
type CallFunc struct {
	Instant
	fn func()
}

// NewCallFunc creates a CallFunc action. A nil fn is allowed and does nothing.
func NewCallFunc(fn func()) *CallFunc {
	a := &CallFunc{fn: fn}
	a.init(a)
	return a
}

func (a *CallFunc) Update(t float64) {
	if a.fn != nil {
		a.fn()
	}
	a.finish()
}

func (a *CallFunc) Reverse() FiniteTimeAction { return NewCallFunc(a.fn) }
func (a *CallFunc) Clone() Action             { return NewCallFunc(a.fn) }

// CallFuncN invokes a function with the action's target.
type CallFuncN struct {
	Instant
	fn func(Target)
}

// NewCallFuncN creates a CallFuncN action.
func NewCallFuncN(fn func(Target)) *CallFuncN {
	a := &CallFuncN{fn: fn}
	a.init(a)
	return a
}

func (a *CallFuncN) Update(t float64) {
	if a.fn != nil {
		a.fn(a.target)
	}
	a.finish()
}

func (a *CallFuncN) Reverse() FiniteTimeAction { return NewCallFuncN(a.fn) }
func (a *CallFuncN) Clone() Action             { return NewCallFuncN(a.fn) }

// --- RemoveSelf ---

// RemoveSelf detaches the target from its parent.
type RemoveSelf struct{ Instant }

// NewRemoveSelf creates a RemoveSelf action.
func NewRemoveSelf() *RemoveSelf {
	a := &RemoveSelf{}
	a.init(a)
	return a
}

func (a *RemoveSelf) Update(t float64) {
	mustHave[Detachable](a.target, "RemoveSelf").RemoveFromParent()
	a.finish()
}

func (a *RemoveSelf) Reverse() FiniteTimeAction { return NewRemoveSelf() }
func (a *RemoveSelf) Clone() Action             { return NewRemoveSelf() }

// --- extraAction ---

// extraAction does nothing. It pads single-element sequences and spawns so
// the pair constructors always have two children.
type extraAction struct{ Instant }

func newExtraAction() *extraAction {
	a := &extraAction{}
	a.init(a)
	return a
}

func (a *extraAction) Update(t float64)          { a.finish() }
func (a *extraAction) Reverse() FiniteTimeAction { return newExtraAction() }
func (a *extraAction) Clone() Action             { return newExtraAction() }
