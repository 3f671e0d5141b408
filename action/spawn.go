package action

// Spawn runs two actions at the same time. The shorter child is padded with
// a DelayTime so both reach their end exactly when the spawn does.
type Spawn struct {
	Interval
	one, two FiniteTimeAction
}

// NewSpawn runs all actions in parallel, folding pairs from the right. A
// single action is paired with a no-op. Panics if actions is empty.
func NewSpawn(actions ...FiniteTimeAction) *Spawn {
	switch len(actions) {
	case 0:
		panic("action: spawn needs at least one action")
	case 1:
		return NewSpawnPair(actions[0], newExtraAction())
	}
	var tail FiniteTimeAction = actions[len(actions)-1]
	for i := len(actions) - 2; i >= 0; i-- {
		tail = NewSpawnPair(actions[i], tail)
	}
	return tail.(*Spawn)
}

// NewSpawnPair runs one and two in parallel.
func NewSpawnPair(one, two FiniteTimeAction) *Spawn {
	mustFinite(one, "spawn")
	mustFinite(two, "spawn")
	d1, d2 := one.Duration(), two.Duration()
	s := &Spawn{one: one, two: two}
	s.init(s, max(d1, d2))
	if d1 > d2 {
		s.two = NewSequencePair(two, NewDelayTime(d1-d2))
	} else if d1 < d2 {
		s.one = NewSequencePair(one, NewDelayTime(d2-d1))
	}
	return s
}

func (s *Spawn) StartWithTarget(target Target) {
	s.Interval.StartWithTarget(target)
	s.one.StartWithTarget(target)
	s.two.StartWithTarget(target)
}

func (s *Spawn) Stop() {
	s.one.Stop()
	s.two.Stop()
	s.Interval.Stop()
}

// Update gives both children the same progress, first then second. When
// both write the same property the second one wins for this frame.
func (s *Spawn) Update(t float64) {
	advance(s.one, t)
	advance(s.two, t)
}

func (s *Spawn) Reverse() FiniteTimeAction {
	return NewSpawnPair(s.one.Reverse(), s.two.Reverse())
}

func (s *Spawn) Clone() Action {
	return NewSpawnPair(cloneFinite(s.one), cloneFinite(s.two))
}
