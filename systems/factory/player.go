package factory

import (
	"github.com/automoto/skyball/archetypes"
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). The behaviour
// machine is attached by the systems package.
func CreatePlayer(ecs *ecs.ECS, x, y float64, now func() int64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
		AimAngle:  cfg.Shooting.DefaultAngle,
		SpawnX:    x,
		SpawnY:    y,
	})
	components.State.SetValue(player, components.StateData{
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})

	inv := components.NewBallInventory(cfg.Inventory.Capacity, now)
	for i := 0; i < cfg.Inventory.StartingBalls; i++ {
		inv.AddBall()
	}
	components.Inventory.Set(player, inv)

	components.Animation.Set(player, GenerateAnimations("player"))

	return player
}
