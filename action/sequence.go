package action

// Sequence runs two actions one after the other. Longer sequences are
// nested pairs built by NewSequence.
type Sequence struct {
	Interval
	actions [2]FiniteTimeAction
	split   float64
	last    int
}

// NewSequence chains actions in order. Pairs are folded from the right so
// NewSequence(a, b, c) is Sequence(a, Sequence(b, c)); a single action is
// paired with a no-op. Panics if actions is empty.
func NewSequence(actions ...FiniteTimeAction) *Sequence {
	switch len(actions) {
	case 0:
		panic("action: sequence needs at least one action")
	case 1:
		return NewSequencePair(actions[0], newExtraAction())
	}
	var tail FiniteTimeAction = actions[len(actions)-1]
	for i := len(actions) - 2; i >= 0; i-- {
		tail = NewSequencePair(actions[i], tail)
	}
	return tail.(*Sequence)
}

// NewSequencePair runs first, then second.
func NewSequencePair(first, second FiniteTimeAction) *Sequence {
	mustFinite(first, "sequence")
	mustFinite(second, "sequence")
	s := &Sequence{actions: [2]FiniteTimeAction{first, second}, last: -1}
	s.init(s, first.Duration()+second.Duration())
	s.split = first.Duration() / s.duration
	return s
}

// Actions returns the two children.
func (s *Sequence) Actions() (first, second FiniteTimeAction) {
	return s.actions[0], s.actions[1]
}

func (s *Sequence) StartWithTarget(target Target) {
	s.split = s.actions[0].Duration() / s.duration
	s.Interval.StartWithTarget(target)
	s.last = -1
}

// Stop stops the child that is currently running, if any.
func (s *Sequence) Stop() {
	if s.last != -1 {
		s.actions[s.last].Stop()
	}
	s.Interval.Stop()
}

// Update hands t to the child whose half of the timeline it falls in. A
// child that the timeline jumped over is forced to its end state (or, when
// playing backward, to its start state) before the other one runs.
func (s *Sequence) Update(t float64) {
	found := 0
	var local float64
	if t < s.split {
		if s.split != 0 {
			local = t / s.split
		} else {
			local = 1
		}
	} else {
		found = 1
		if s.split == 1 {
			local = 1
		} else {
			local = (t - s.split) / (1 - s.split)
		}
	}

	first, second := s.actions[0], s.actions[1]
	if found == 1 {
		switch s.last {
		case -1:
			// The first child was skipped entirely (long first frame).
			first.StartWithTarget(s.target)
			advance(first, 1)
			first.Stop()
		case 0:
			advance(first, 1)
			first.Stop()
		}
	} else if s.last == 1 {
		advance(second, 0)
		second.Stop()
	}

	active := s.actions[found]
	if found == s.last && active.IsDone() && local >= 1 {
		return
	}
	if found != s.last {
		active.StartWithTarget(s.target)
	}
	advance(active, local)
	s.last = found
}

func (s *Sequence) Reverse() FiniteTimeAction {
	return NewSequencePair(s.actions[1].Reverse(), s.actions[0].Reverse())
}

func (s *Sequence) Clone() Action {
	return NewSequencePair(cloneFinite(s.actions[0]), cloneFinite(s.actions[1]))
}
