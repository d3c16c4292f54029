package factory

import (
	"github.com/automoto/skyball/archetypes"
	"github.com/automoto/skyball/components"
	"github.com/automoto/skyball/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex stores the level set and builds the selected level's
// terrain and dead zones into the collision space.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels to build")
	}
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	current := levels[levelIndex]
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: current,
	})

	for _, t := range current.Terrain {
		CreateWall(ecs, t.X, t.Y, t.W, t.H, t.Surface)
	}
	for _, z := range current.DeadZones {
		CreateDeadZone(ecs, z.X, z.Y, z.W, z.H)
	}
	return level
}
