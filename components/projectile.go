package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ProjectileData is the physical body behind a pooled shot. Speeds are units
// per second; drag is a deceleration in units per second squared.
type ProjectileData struct {
	SpeedX, SpeedY   float64
	AngularVelocity  float64 // degrees per second
	Rotation         float64
	Gravity          float64
	DragX, DragY     float64
	BounceX, BounceY float64
	Mass             float64
	CollideWorld     bool

	Active  bool
	Visible bool
	Scale   float64
	Tint    *color.RGBA // nil means untinted
}

var Projectile = donburi.NewComponentType[ProjectileData]()
