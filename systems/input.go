package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	minAimAngle  = -80.0
	maxAimAngle  = 10.0
	aimStepAngle = 1.5
)

// InputSnapshot is one frame of raw player input.
type InputSnapshot struct {
	Actions [cfg.ActionCount]bool
	Clicked bool
	ClickX  float64 // world coordinates
}

// InputSource produces one snapshot per frame. The window driver polls the
// keyboard and mouse; tests and headless runs script it.
type InputSource interface {
	Poll() InputSnapshot
}

// NoInput is a source that never presses anything.
type NoInput struct{}

func (NoInput) Poll() InputSnapshot { return InputSnapshot{} }

// NewInputSystem returns the system that feeds src into every player.
// Must run BEFORE UpdatePlayer in the system order.
func NewInputSystem(src InputSource) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		snap := src.Poll()
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			applyInput(entry, snap)
		})
	}
}

func applyInput(entry *donburi.Entry, snap InputSnapshot) {
	input := components.PlayerInput.Get(entry)
	input.Advance(snap.Actions)
	input.Clicked = snap.Clicked
	input.ClickX = snap.ClickX

	player := components.Player.Get(entry)
	x := centerX(entry)

	// Held direction keys keep a target one step ahead; clicks set it outright.
	reach := cfg.Player.StopThreshold + cfg.Player.MoveSpeed
	switch {
	case snap.Clicked:
		player.SetTarget(snap.ClickX)
	case input.Pressed(cfg.ActionMoveLeft) && !input.Pressed(cfg.ActionMoveRight):
		player.SetTarget(x - reach)
	case input.Pressed(cfg.ActionMoveRight) && !input.Pressed(cfg.ActionMoveLeft):
		player.SetTarget(x + reach)
	case input.JustReleased(cfg.ActionMoveLeft) || input.JustReleased(cfg.ActionMoveRight):
		player.ClearTarget()
	}

	if input.Pressed(cfg.ActionAimUp) {
		player.AimAngle = clampFloat(player.AimAngle-aimStepAngle, minAimAngle, maxAimAngle)
	}
	if input.Pressed(cfg.ActionAimDown) {
		player.AimAngle = clampFloat(player.AimAngle+aimStepAngle, minAimAngle, maxAimAngle)
	}
}

// clampFloat constrains a value to the range [min, max]
func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
