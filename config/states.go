package config

// StateID identifies a player behaviour state.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Move
	Jump
	Dead
)

func (s StateID) String() string {
	if name, ok := StateToAnimation[s]; ok {
		return name
	}
	return "none"
}

// StateToAnimation maps a state to the animation it plays on enter.
var StateToAnimation = map[StateID]string{
	Idle: AnimIdle,
	Move: AnimMove,
	Jump: AnimJump,
	Dead: AnimDeath,
}
