package willow

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/phanxgames/willow-actions/action"
)

// ActionEventType identifies a point in an action's lifecycle.
type ActionEventType uint8

const (
	ActionStarted  ActionEventType = iota // the action was added and bound to its target
	ActionFinished                        // the action completed on its own
	ActionStopped                         // the action was removed before completing
)

func (t ActionEventType) String() string {
	switch t {
	case ActionStarted:
		return "started"
	case ActionFinished:
		return "finished"
	case ActionStopped:
		return "stopped"
	default:
		return fmt.Sprintf("ActionEventType(%d)", uint8(t))
	}
}

// ActionEvent reports an action lifecycle change to the EntityStore.
type ActionEvent struct {
	Type   ActionEventType
	Action action.Action
	Target action.Target
	Tag    int
	// EntityID is the target node's EntityID, or 0 when the target is not a
	// node.
	EntityID uint32
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, action lifecycle events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event ActionEvent)
}

// disposable targets are dropped once disposed.
type disposable interface {
	IsDisposed() bool
}

type scheduled struct {
	act action.Action
	// primed is set once the zeroing first tick has run.
	primed bool
}

type targetActions struct {
	target  action.Target
	actions []*scheduled
	paused  bool
}

// ActionManager runs actions against their targets. Actions for a target run
// in the order they were added; targets run in the order their first action
// was added.
//
// Targets are used as map keys and must be comparable, which every pointer
// type is.
type ActionManager struct {
	targets []*targetActions
	index   map[action.Target]*targetActions

	store EntityStore
	log   zerolog.Logger
}

// NewActionManager creates an empty manager that logs nowhere.
func NewActionManager() *ActionManager {
	return &ActionManager{
		index: make(map[action.Target]*targetActions),
		log:   zerolog.Nop(),
	}
}

// SetLogger sets the logger lifecycle messages are written to.
func (m *ActionManager) SetLogger(l zerolog.Logger) { m.log = l }

// SetEntityStore sets the optional ECS bridge.
func (m *ActionManager) SetEntityStore(store EntityStore) { m.store = store }

// AddAction binds a to target and schedules it. Unless paused, the action's
// zeroing first tick runs immediately, so the next Update already advances
// it by its dt. An action added paused is primed by the first update after
// its target resumes. Panics if a or target is nil.
func (m *ActionManager) AddAction(a action.Action, target action.Target, paused bool) {
	if a == nil {
		panic("willow: cannot add nil action")
	}
	if target == nil {
		panic("willow: cannot add action without target")
	}
	e := m.index[target]
	if e == nil {
		e = &targetActions{target: target, paused: paused}
		m.index[target] = e
		m.targets = append(m.targets, e)
	}
	s := &scheduled{act: a}
	e.actions = append(e.actions, s)
	if globalDebug {
		debugCheckActionCount(target, len(e.actions))
	}

	a.StartWithTarget(target)
	m.emit(ActionStarted, a, target)
	if !e.paused {
		m.prime(e, s)
	}
}

// prime runs the zeroing first tick and retires the action if that alone
// completed it.
func (m *ActionManager) prime(e *targetActions, s *scheduled) {
	s.primed = true
	s.act.Step(0)
	if s.act.IsDone() {
		m.retire(e, s, ActionFinished)
	}
}

// Update steps every action of every unpaused target by dt seconds and
// retires the ones that finish. Actions added during the update first run
// on the next one. Targets that have been disposed lose all their actions.
func (m *ActionManager) Update(dt float64) {
	nt := len(m.targets)
	for ti := 0; ti < nt; ti++ {
		e := m.targets[ti]
		if e.paused || len(e.actions) == 0 {
			continue
		}
		if d, ok := e.target.(disposable); ok && d.IsDisposed() {
			m.log.Debug().Str("target", targetName(e.target)).Int("actions", len(e.actions)).
				Msg("dropping actions of disposed target")
			m.RemoveAllActionsFromTarget(e.target)
			continue
		}

		n := len(e.actions)
		for i := 0; i < n && i < len(e.actions); i++ {
			s := e.actions[i]
			if s == nil {
				continue
			}
			if !s.primed {
				m.prime(e, s)
				continue
			}
			s.act.Step(dt)
			// The action may have removed itself while stepping.
			if e.actions[i] == s && s.act.IsDone() {
				m.retire(e, s, ActionFinished)
			}
			if e.paused {
				break
			}
		}
	}
	m.compact()
}

// retire stops s and clears its slot.
func (m *ActionManager) retire(e *targetActions, s *scheduled, why ActionEventType) {
	for i, c := range e.actions {
		if c == s {
			e.actions[i] = nil
			break
		}
	}
	s.act.Stop()
	m.emit(why, s.act, e.target)
}

// compact drops cleared slots and targets without actions.
func (m *ActionManager) compact() {
	live := m.targets[:0]
	for _, e := range m.targets {
		acts := e.actions[:0]
		for _, s := range e.actions {
			if s != nil {
				acts = append(acts, s)
			}
		}
		clear(e.actions[len(acts):])
		e.actions = acts
		if len(acts) == 0 && !e.paused {
			delete(m.index, e.target)
			continue
		}
		live = append(live, e)
	}
	clear(m.targets[len(live):])
	m.targets = live
}

func (m *ActionManager) emit(typ ActionEventType, a action.Action, target action.Target) {
	m.log.Debug().Str("event", typ.String()).Str("action", fmt.Sprintf("%T", a)).
		Int("tag", a.Tag()).Str("target", targetName(target)).Msg("action")
	if m.store == nil {
		return
	}
	ev := ActionEvent{Type: typ, Action: a, Target: target, Tag: a.Tag()}
	if n, ok := target.(*Node); ok {
		ev.EntityID = n.EntityID
	}
	m.store.EmitEvent(ev)
}

// --- Removal ---

// RemoveAction stops and removes a wherever it is scheduled. Removing an
// action that is not scheduled is a no-op.
func (m *ActionManager) RemoveAction(a action.Action) {
	if a == nil {
		return
	}
	e := m.index[a.OriginalTarget()]
	if e == nil {
		return
	}
	for _, s := range e.actions {
		if s != nil && s.act == a {
			m.retire(e, s, ActionStopped)
			return
		}
	}
}

// RemoveActionByTag stops and removes the first action on target with tag.
func (m *ActionManager) RemoveActionByTag(tag int, target action.Target) {
	if tag == action.InvalidTag {
		panic("willow: cannot remove actions with the invalid tag")
	}
	e := m.index[target]
	if e == nil {
		return
	}
	for _, s := range e.actions {
		if s != nil && s.act.Tag() == tag {
			m.retire(e, s, ActionStopped)
			return
		}
	}
}

// RemoveAllActionsByTag stops and removes every action on target with tag.
func (m *ActionManager) RemoveAllActionsByTag(tag int, target action.Target) {
	if tag == action.InvalidTag {
		panic("willow: cannot remove actions with the invalid tag")
	}
	e := m.index[target]
	if e == nil {
		return
	}
	for _, s := range e.actions {
		if s != nil && s.act.Tag() == tag {
			m.retire(e, s, ActionStopped)
		}
	}
}

// RemoveAllActionsFromTarget stops and removes every action on target.
func (m *ActionManager) RemoveAllActionsFromTarget(target action.Target) {
	e := m.index[target]
	if e == nil {
		return
	}
	for _, s := range e.actions {
		if s != nil {
			m.retire(e, s, ActionStopped)
		}
	}
}

// RemoveAllActions stops and removes every scheduled action.
func (m *ActionManager) RemoveAllActions() {
	for _, e := range m.targets {
		m.RemoveAllActionsFromTarget(e.target)
	}
}

// --- Lookup ---

// ActionByTag returns the first action on target with tag, or nil.
func (m *ActionManager) ActionByTag(tag int, target action.Target) action.Action {
	if tag == action.InvalidTag {
		panic("willow: cannot look up actions with the invalid tag")
	}
	if e := m.index[target]; e != nil {
		for _, s := range e.actions {
			if s != nil && s.act.Tag() == tag {
				return s.act
			}
		}
	}
	return nil
}

// NumRunningActions returns the number of actions scheduled on target.
func (m *ActionManager) NumRunningActions(target action.Target) int {
	e := m.index[target]
	if e == nil {
		return 0
	}
	count := 0
	for _, s := range e.actions {
		if s != nil {
			count++
		}
	}
	return count
}

// NumRunningActionsByTag returns the number of actions on target with tag.
func (m *ActionManager) NumRunningActionsByTag(tag int, target action.Target) int {
	e := m.index[target]
	if e == nil {
		return 0
	}
	count := 0
	for _, s := range e.actions {
		if s != nil && s.act.Tag() == tag {
			count++
		}
	}
	return count
}

// NumActions returns the number of scheduled actions across all targets.
func (m *ActionManager) NumActions() int {
	total := 0
	for _, e := range m.targets {
		total += m.NumRunningActions(e.target)
	}
	return total
}

// --- Pausing ---

// PauseTarget stops stepping the actions of target until ResumeTarget.
// Actions added to a paused target wait as well.
func (m *ActionManager) PauseTarget(target action.Target) {
	e := m.index[target]
	if e == nil {
		e = &targetActions{target: target}
		m.index[target] = e
		m.targets = append(m.targets, e)
	}
	e.paused = true
}

// ResumeTarget resumes the actions of target.
func (m *ActionManager) ResumeTarget(target action.Target) {
	if e := m.index[target]; e != nil {
		e.paused = false
	}
}

// IsTargetPaused reports whether target is paused.
func (m *ActionManager) IsTargetPaused(target action.Target) bool {
	e := m.index[target]
	return e != nil && e.paused
}

// PauseAllRunningActions pauses every target that has actions and returns
// them, for a later ResumeTargets.
func (m *ActionManager) PauseAllRunningActions() []action.Target {
	var paused []action.Target
	for _, e := range m.targets {
		if !e.paused && len(e.actions) > 0 {
			e.paused = true
			paused = append(paused, e.target)
		}
	}
	return paused
}

// ResumeTargets resumes every target in targets.
func (m *ActionManager) ResumeTargets(targets []action.Target) {
	for _, t := range targets {
		m.ResumeTarget(t)
	}
}

func targetName(t action.Target) string {
	if n, ok := t.(*Node); ok {
		return n.Name
	}
	return fmt.Sprintf("%T", t)
}
