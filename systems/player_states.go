package systems

import (
	"math"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/shared/fsm"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type playerBase = fsm.Base[cfg.StateID, *components.PlayerContext]

// NewPlayerMachine builds the Idle/Move/Jump/Dead machine for a player
// entity and stores it on the entity's State component.
func NewPlayerMachine(e *ecs.ECS, entry *donburi.Entry, now func() int64) *components.PlayerMachine {
	ctx := &components.PlayerContext{ECS: e, Entry: entry, Now: now}
	m := fsm.New(cfg.Idle, map[cfg.StateID]components.PlayerState{
		cfg.Idle: &IdleState{},
		cfg.Move: &MoveState{},
		cfg.Jump: &JumpState{},
		cfg.Dead: &DeadState{},
	}, ctx)
	components.State.Get(entry).Machine = m
	return m
}

func playAnimation(entry *donburi.Entry, id cfg.StateID) {
	components.Animation.Get(entry).SetAnimation(cfg.StateToAnimation[id])
}

// centerX is the horizontal centre of the player's collider.
func centerX(entry *donburi.Entry) float64 {
	obj := components.Object.Get(entry)
	return obj.X + obj.W/2
}

// targetDistance is how far the player is from its move target.
func targetDistance(entry *donburi.Entry) float64 {
	return components.Player.Get(entry).TargetX - centerX(entry)
}

// IdleState stands still until there is somewhere to go or a jump.
type IdleState struct{ playerBase }

func (s *IdleState) Enter(ctx *components.PlayerContext, args ...any) {
	components.Physics.Get(ctx.Entry).SpeedX = 0
	playAnimation(ctx.Entry, cfg.Idle)
}

func (s *IdleState) Execute(ctx *components.PlayerContext) {
	input := components.PlayerInput.Get(ctx.Entry)
	if input.JustPressed(cfg.ActionJump) {
		s.Machine().Transition(cfg.Jump)
		return
	}
	player := components.Player.Get(ctx.Entry)
	if player.HasTarget && math.Abs(targetDistance(ctx.Entry)) > cfg.Player.StopThreshold {
		s.Machine().Transition(cfg.Move)
	}
}

// MoveState walks toward the move target and stops once within reach.
type MoveState struct{ playerBase }

func (s *MoveState) Enter(ctx *components.PlayerContext, args ...any) {
	playAnimation(ctx.Entry, cfg.Move)
}

func (s *MoveState) Execute(ctx *components.PlayerContext) {
	input := components.PlayerInput.Get(ctx.Entry)
	if input.JustPressed(cfg.ActionJump) {
		s.Machine().Transition(cfg.Jump)
		return
	}

	player := components.Player.Get(ctx.Entry)
	physics := components.Physics.Get(ctx.Entry)
	if !player.HasTarget {
		physics.SpeedX = 0
		s.Machine().Transition(cfg.Idle)
		return
	}

	dx := targetDistance(ctx.Entry)
	if math.Abs(dx) <= cfg.Player.StopThreshold {
		physics.SpeedX = 0
		player.ClearTarget()
		s.Machine().Transition(cfg.Idle)
		return
	}

	dir := 1.0
	if dx < 0 {
		dir = -1
	}
	physics.SpeedX = cfg.Player.MoveSpeed * dir
	player.Direction.X = dir
}

// JumpState is airborne movement. The first jump's animation is a window
// in which the jump can't be doubled; after it ends a fresh press of jump
// (the key must have been released since) gives one weaker second jump.
// Horizontal speed is locked to what it was on takeoff.
type JumpState struct {
	playerBase

	lockedSpeedX   float64
	jumpReleased   bool
	doubleJumpUsed bool
	falling        bool
}

func (s *JumpState) Enter(ctx *components.PlayerContext, args ...any) {
	physics := components.Physics.Get(ctx.Entry)
	physics.SpeedY = -cfg.Player.JumpVelocity
	s.lockedSpeedX = physics.SpeedX
	s.reset()
	playAnimation(ctx.Entry, cfg.Jump)
}

func (s *JumpState) Execute(ctx *components.PlayerContext) {
	input := components.PlayerInput.Get(ctx.Entry)
	physics := components.Physics.Get(ctx.Entry)
	anim := components.Animation.Get(ctx.Entry)

	if !input.Pressed(cfg.ActionJump) {
		s.jumpReleased = true
	}
	if input.JustPressed(cfg.ActionJump) && s.jumpReleased && anim.Finished() && !s.doubleJumpUsed {
		physics.SpeedY = -cfg.Player.DoubleJumpVelocity
		s.doubleJumpUsed = true
		s.falling = false
	}

	physics.SpeedX = s.lockedSpeedX

	if physics.SpeedY > 0 {
		s.falling = true
	}
	if s.falling && physics.Grounded() {
		if s.lockedSpeedX != 0 {
			s.Machine().Transition(cfg.Move)
		} else {
			s.Machine().Transition(cfg.Idle)
		}
	}
}

func (s *JumpState) Exit(ctx *components.PlayerContext) {
	s.reset()
}

func (s *JumpState) reset() {
	s.jumpReleased = false
	s.doubleJumpUsed = false
	s.falling = false
}

// DoubleJumpUsed reports whether the second jump was spent this flight.
func (s *JumpState) DoubleJumpUsed() bool { return s.doubleJumpUsed }

// DeadState freezes the player. Nothing leaves it.
type DeadState struct{ playerBase }

func (s *DeadState) Enter(ctx *components.PlayerContext, args ...any) {
	physics := components.Physics.Get(ctx.Entry)
	physics.SpeedX = 0
	physics.SpeedY = 0
	components.Player.Get(ctx.Entry).ClearTarget()
	playAnimation(ctx.Entry, cfg.Dead)
}
