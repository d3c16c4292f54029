package fsm

import (
	"reflect"
	"testing"
)

type recorder struct {
	calls []string
}

func (r *recorder) add(s string) { r.calls = append(r.calls, s) }

type recState struct {
	Base[string, *recorder]
	name     string
	lastArgs []any
}

func (s *recState) Enter(r *recorder, args ...any) {
	s.lastArgs = args
	r.add("enter:" + s.name)
}
func (s *recState) Execute(r *recorder) { r.add("execute:" + s.name) }
func (s *recState) Exit(r *recorder)    { r.add("exit:" + s.name) }

func newMachine(r *recorder) (*Machine[string, *recorder], map[string]*recState) {
	raw := map[string]*recState{
		"idle": {name: "idle"},
		"move": {name: "move"},
	}
	states := make(map[string]State[string, *recorder], len(raw))
	for k, v := range raw {
		states[k] = v
	}
	return New("idle", states, r), raw
}

func TestStepEntersInitialOnce(t *testing.T) {
	r := &recorder{}
	m, _ := newMachine(r)

	if _, ok := m.Current(); ok {
		t.Fatalf("fresh machine should have no active state")
	}

	m.Step()
	m.Step()

	want := []string{"enter:idle", "execute:idle", "execute:idle"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	if !m.Is("idle") {
		t.Fatalf("expected idle to be active")
	}
}

func TestTransitionExitsBeforeEnter(t *testing.T) {
	r := &recorder{}
	m, raw := newMachine(r)

	m.Step()
	r.calls = nil
	m.Transition("move", 42, "x")
	m.Step()

	want := []string{"exit:idle", "enter:move", "execute:move"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	if !reflect.DeepEqual(raw["move"].lastArgs, []any{42, "x"}) {
		t.Fatalf("extra args = %v", raw["move"].lastArgs)
	}
}

func TestTransitionBeforeStepSkipsInitialEnter(t *testing.T) {
	r := &recorder{}
	m, _ := newMachine(r)

	m.Transition("move")
	m.Step()

	want := []string{"enter:move", "execute:move"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
}

func TestStatesAreBoundAtRegistration(t *testing.T) {
	r := &recorder{}
	m, raw := newMachine(r)
	for name, s := range raw {
		if s.Machine() != m {
			t.Fatalf("state %s not bound to machine", name)
		}
	}
	if m.Context() != r {
		t.Fatalf("context not stored")
	}
}

func TestTransitionToUnknownStatePanics(t *testing.T) {
	r := &recorder{}
	m, _ := newMachine(r)
	m.Step()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown state")
		}
		if !m.Is("idle") {
			t.Fatalf("failed transition must not change the active state")
		}
	}()
	m.Transition("fly")
}
