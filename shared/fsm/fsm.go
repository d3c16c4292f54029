// Package fsm is a small named-state machine driver. It has no dependencies on
// the ECS or the engine so it can drive any entity that hands it a context.
package fsm

import "fmt"

// State is a reusable behaviour unit. The machine binds itself to each state
// when it is registered; states are never recreated across transitions.
type State[K comparable, C any] interface {
	Bind(m *Machine[K, C])
	Enter(ctx C, args ...any)
	Execute(ctx C)
	Exit(ctx C)
}

// Base can be embedded by states that don't need every hook.
type Base[K comparable, C any] struct {
	machine *Machine[K, C]
}

func (b *Base[K, C]) Bind(m *Machine[K, C]) { b.machine = m }

// Machine returns the machine this state was registered with.
func (b *Base[K, C]) Machine() *Machine[K, C] { return b.machine }

func (b *Base[K, C]) Enter(ctx C, args ...any) {}
func (b *Base[K, C]) Execute(ctx C)            {}
func (b *Base[K, C]) Exit(ctx C)               {}

// Machine holds exactly one active state at a time.
type Machine[K comparable, C any] struct {
	initial K
	current K
	active  bool
	states  map[K]State[K, C]
	ctx     C
}

// New registers states and stores the context forwarded to every hook.
// Nothing is entered until the first Step.
func New[K comparable, C any](initial K, states map[K]State[K, C], ctx C) *Machine[K, C] {
	m := &Machine[K, C]{
		initial: initial,
		states:  make(map[K]State[K, C], len(states)),
		ctx:     ctx,
	}
	for id, s := range states {
		s.Bind(m)
		m.states[id] = s
	}
	return m
}

// Step enters the initial state on first use, then executes the active state.
func (m *Machine[K, C]) Step() {
	if !m.active {
		m.current = m.initial
		m.active = true
		m.mustState(m.current).Enter(m.ctx)
	}
	m.mustState(m.current).Execute(m.ctx)
}

// Transition exits the active state (if any) and enters id, passing extra
// arguments after the stored context.
func (m *Machine[K, C]) Transition(id K, args ...any) {
	next := m.mustState(id)
	if m.active {
		m.mustState(m.current).Exit(m.ctx)
	}
	m.current = id
	m.active = true
	next.Enter(m.ctx, args...)
}

// Current reports the active state id. ok is false before the first Step or
// Transition.
func (m *Machine[K, C]) Current() (id K, ok bool) {
	return m.current, m.active
}

// Is reports whether id is the active state.
func (m *Machine[K, C]) Is(id K) bool {
	return m.active && m.current == id
}

// Context returns the context passed to every hook.
func (m *Machine[K, C]) Context() C {
	return m.ctx
}

func (m *Machine[K, C]) mustState(id K) State[K, C] {
	s, ok := m.states[id]
	if !ok {
		panic(fmt.Sprintf("fsm: unknown state %v", id))
	}
	return s
}
