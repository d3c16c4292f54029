package systems

import (
	"github.com/automoto/skyball/systems/shooting"
	"github.com/yohamta/donburi/features/events"
)

type ProjectileFired struct {
	Serial uint64
	X, Y   float64
}

type ProjectileRetired struct {
	Serial uint64
	Reason shooting.RetireReason
}

type ProjectileImpact struct {
	X, Y    float64
	Surface string
}

type BallCollected struct {
	Count int // balls held after collecting
	Score int
}

var (
	ProjectileFiredEvent   = events.NewEventType[ProjectileFired]()
	ProjectileRetiredEvent = events.NewEventType[ProjectileRetired]()
	ProjectileImpactEvent  = events.NewEventType[ProjectileImpact]()
	BallCollectedEvent     = events.NewEventType[BallCollected]()
)
