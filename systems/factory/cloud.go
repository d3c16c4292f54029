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

// CreateCloud spawns a collectible cloud at (x, y) drifting in direction.
func CreateCloud(ecs *ecs.ECS, x, y, direction float64, lane int) *donburi.Entry {
	cloud := archetypes.Cloud.Spawn(ecs)

	w, h := cfg.Cloud.Width, cfg.Cloud.Height
	obj := resolv.NewObject(x, y, w, h, tags.ResolvCloud)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = cloud
	components.Object.SetValue(cloud, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Cloud.SetValue(cloud, components.CloudData{
		SpeedX: cfg.Cloud.DriftSpeed * direction,
		Lane:   lane,
	})
	return cloud
}

// DestroyCloud removes a cloud from the space and the world.
func DestroyCloud(ecs *ecs.ECS, cloud *donburi.Entry) {
	if !cloud.Valid() {
		return
	}
	RemoveFromSpace(ecs, components.Object.Get(cloud).Object)
	ecs.World.Remove(cloud.Entity())
}
