package systems

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/systems/shooting"
	"github.com/automoto/skyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewFireSystem returns the system that turns the fire action into a shot.
// A ball is only spent when the shot actually leaves, so a full projectile
// pool never eats ammunition.
func NewFireSystem(shooter *shooting.System) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		var players []*donburi.Entry
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			players = append(players, entry)
		})
		for _, entry := range players {
			TryFire(shooter, entry)
		}
	}
}

// TryFire fires from entry if the fire action was just pressed. It returns
// the projectile, or nil if nothing was fired.
func TryFire(shooter *shooting.System, entry *donburi.Entry) *shooting.Projectile {
	input := components.PlayerInput.Get(entry)
	if !input.JustPressed(cfg.ActionFire) {
		return nil
	}
	if components.State.Get(entry).Current() == cfg.Dead {
		return nil
	}

	inv := components.Inventory.Get(entry)
	if inv.IsEmpty() {
		return nil
	}

	player := components.Player.Get(entry)
	p := shooter.FireFromPlayer(PlayerShooter{Entry: entry}, shooting.WithAngle(player.AimAngle))
	if p == nil {
		return nil
	}
	inv.RemoveBall()
	return p
}
