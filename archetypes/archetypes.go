package archetypes

import (
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
		components.Inventory,
		components.Score,
	)
	// Trail and Tween stay attached for the body's whole life so pooled
	// reuse never changes its archetype.
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Trail,
		components.Tween,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Terrain,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
