package ecs

import "github.com/milk9111/towerdefense/ecs/component"

// StateMachine is a world resource holding the current value of a state type
// and the systems to run when a value is entered or exited.
type StateMachine[S comparable] struct {
	current S
	next    S
	pending bool
	entered bool

	onEnter map[S][]System
	onExit  map[S][]System
}

func NewStateMachine[S comparable](initial S) *StateMachine[S] {
	return &StateMachine[S]{
		current: initial,
		onEnter: make(map[S][]System),
		onExit:  make(map[S][]System),
	}
}

func (m *StateMachine[S]) Current() S {
	return m.current
}

// Set requests a transition, applied by the state transition system on the next frame.
// Requesting the current state is a no-op.
func (m *StateMachine[S]) Set(next S) {
	if m == nil {
		return
	}
	m.next = next
	m.pending = true
}

// Pending returns the requested next state, if any.
func (m *StateMachine[S]) Pending() (S, bool) {
	return m.next, m.pending
}

func (m *StateMachine[S]) OnEnter(state S, systems ...System) {
	m.onEnter[state] = append(m.onEnter[state], systems...)
}

func (m *StateMachine[S]) OnExit(state S, systems ...System) {
	m.onExit[state] = append(m.onExit[state], systems...)
}

// Apply enters the initial state on first use, then performs at most one pending transition.
// It reports whether a transition happened.
func (m *StateMachine[S]) Apply(w *World) bool {
	if m == nil {
		return false
	}
	if !m.entered {
		m.entered = true
		run(w, m.onEnter[m.current])
	}
	if !m.pending {
		return false
	}
	next := m.next
	m.pending = false
	if next == m.current {
		return false
	}
	run(w, m.onExit[m.current])
	m.current = next
	run(w, m.onEnter[next])
	return true
}

func run(w *World, systems []System) {
	for _, s := range systems {
		if s != nil {
			s.Update(w)
		}
	}
}

// StateTransitionSystem applies pending transitions of one state machine resource.
type StateTransitionSystem[S comparable] struct {
	handle component.ResourceHandle[StateMachine[S]]
}

func NewStateTransitionSystem[S comparable](h component.ResourceHandle[StateMachine[S]]) *StateTransitionSystem[S] {
	return &StateTransitionSystem[S]{handle: h}
}

func (s *StateTransitionSystem[S]) Update(w *World) {
	m, ok := Resource(w, s.handle)
	if !ok {
		return
	}
	m.Apply(w)
}

// InState holds while the state machine's current value equals state.
func InState[S comparable](h component.ResourceHandle[StateMachine[S]], state S) Condition {
	return func(w *World) bool {
		m, ok := Resource(w, h)
		return ok && m.current == state
	}
}

// SetState requests a transition on the state machine resource, if present.
func SetState[S comparable](w *World, h component.ResourceHandle[StateMachine[S]], next S) {
	if m, ok := Resource(w, h); ok {
		m.Set(next)
	}
}

// CurrentState returns the current value of the state machine resource.
func CurrentState[S comparable](w *World, h component.ResourceHandle[StateMachine[S]]) (S, bool) {
	m, ok := Resource(w, h)
	if !ok {
		var zero S
		return zero, false
	}
	return m.current, true
}
