package components

import (
	cfg "github.com/automoto/skyball/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the current and previous frame's pressed state for
// every action plus an optional pointer target. JustPressed/JustReleased are
// computed by comparing frames.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Click/tap this frame, in world coordinates.
	Clicked bool
	ClickX  float64
}

func (p *PlayerInputData) Pressed(a cfg.ActionID) bool {
	return p.Current[a]
}

func (p *PlayerInputData) JustPressed(a cfg.ActionID) bool {
	return p.Current[a] && !p.Previous[a]
}

func (p *PlayerInputData) JustReleased(a cfg.ActionID) bool {
	return !p.Current[a] && p.Previous[a]
}

// Advance shifts this frame's state into Previous and loads the next frame.
func (p *PlayerInputData) Advance(next [cfg.ActionCount]bool) {
	p.Previous = p.Current
	p.Current = next
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
