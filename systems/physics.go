package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity. Movement happens in UpdateCollisions.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := FrameDelta()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Dead players are frozen in place.
		if e.HasComponent(components.State) && components.State.Get(e).Current() == cfg.Dead {
			return
		}

		physics := components.Physics.Get(e)
		physics.SpeedY += physics.Gravity * dt
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
	})
}
