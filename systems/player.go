package systems

import (
	"github.com/automoto/skyball/components"
	"github.com/automoto/skyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steps every player's behaviour machine.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		state := components.State.Get(playerEntry)
		if state.Machine == nil {
			return
		}

		before := state.Current()
		state.Machine.Step()
		if after := state.Current(); after != before {
			state.PreviousState = before
			state.StateTimer = 0
		} else {
			state.StateTimer++
		}
	})
}

// UpdateAnimations advances every playing animation by one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// PlayerShooter adapts a player entity to the shooting system.
type PlayerShooter struct {
	Entry *donburi.Entry
}

// Position is the centre of the player's collider.
func (p PlayerShooter) Position() (float64, float64) {
	obj := components.Object.Get(p.Entry)
	return obj.X + obj.W/2, obj.Y + obj.H/2
}

func (p PlayerShooter) Facing() float64 {
	return components.Player.Get(p.Entry).Facing()
}
