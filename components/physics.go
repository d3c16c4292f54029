package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is a velocity-settable body. Speeds are units per second.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object
}

// Grounded reports whether the body touched ground this frame.
func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil
}

var Physics = donburi.NewComponentType[PhysicsData]()
