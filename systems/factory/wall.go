package factory

import (
	"github.com/automoto/skyball/archetypes"
	"github.com/automoto/skyball/components"
	"github.com/automoto/skyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid piece of terrain made of surface.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64, surface string) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Terrain.SetValue(wall, components.TerrainData{Surface: surface})

	addToSpace(ecs, obj)
	return wall
}

// SurfaceOf returns the material of a terrain collision object.
func SurfaceOf(obj *resolv.Object) string {
	if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() && e.HasComponent(components.Terrain) {
		return components.Terrain.Get(e).Surface
	}
	return ""
}
