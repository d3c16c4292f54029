package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction Vector // facing; X is -1 or 1

	// Movement target set by a click/tap. Cleared when reached.
	HasTarget bool
	TargetX   float64

	AimAngle float64 // degrees, negative is up
	SpawnX   float64
	SpawnY   float64
}

// Facing returns the horizontal facing direction.
func (p *PlayerData) Facing() float64 {
	if p.Direction.X < 0 {
		return -1
	}
	return 1
}

// SetTarget requests a walk to x.
func (p *PlayerData) SetTarget(x float64) {
	p.HasTarget = true
	p.TargetX = x
}

// ClearTarget drops the movement target.
func (p *PlayerData) ClearTarget() {
	p.HasTarget = false
	p.TargetX = 0
}

var Player = donburi.NewComponentType[PlayerData]()
