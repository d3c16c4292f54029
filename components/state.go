package components

import (
	"github.com/automoto/skyball/config"
	"github.com/automoto/skyball/shared/fsm"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerContext is forwarded to every player state hook: the owning scene
// world and the controlled entity.
type PlayerContext struct {
	ECS   *ecs.ECS
	Entry *donburi.Entry
	Now   func() int64
}

// PlayerMachine drives the player's behaviour states.
type PlayerMachine = fsm.Machine[config.StateID, *PlayerContext]

// PlayerState is one behaviour of the player machine.
type PlayerState = fsm.State[config.StateID, *PlayerContext]

type StateData struct {
	Machine       *PlayerMachine
	PreviousState config.StateID
	StateTimer    int // frames spent in the current state
}

// Current returns the active state, StateNone before the first step.
func (s *StateData) Current() config.StateID {
	if s.Machine == nil {
		return config.StateNone
	}
	if id, ok := s.Machine.Current(); ok {
		return id
	}
	return config.StateNone
}

var State = donburi.NewComponentType[StateData]()
