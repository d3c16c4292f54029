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

// CreateProjectile spawns an inactive ball body centred on (x, y). It is
// switched on by whoever fires it.
func CreateProjectile(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	size := cfg.Shooting.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.SetValue(p, components.ProjectileData{Scale: 1})
	return p
}

// DestroyProjectile removes a ball body from the space and the world.
func DestroyProjectile(ecs *ecs.ECS, p *donburi.Entry) {
	if !p.Valid() {
		return
	}
	RemoveFromSpace(ecs, components.Object.Get(p).Object)
	ecs.World.Remove(p.Entity())
}
