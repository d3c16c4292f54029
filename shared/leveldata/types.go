// Package leveldata provides TMX level parsing. It has no dependencies on
// ebitengine, donburi or resolv; it is pure data.
package leveldata

import "github.com/automoto/skyball/shared/gamemath"

// Level holds everything the scene needs from a TMX file.
type Level struct {
	Name        string
	MapWidth    int
	MapHeight   int
	Terrain     []SolidRect
	DeadZones   []Rect
	SpawnPoints []SpawnPoint
	CloudLanes  []CloudLane
}

// Bounds returns the playable world area.
func (l *Level) Bounds() gamemath.Bounds {
	return gamemath.Bounds{W: float64(l.MapWidth), H: float64(l.MapHeight)}
}

// Rect is an axis-aligned area in world units.
type Rect struct {
	X, Y, W, H float64
}

// SolidRect is a piece of terrain. Surface names the material ("grass",
// "stone"...); collision response does not differentiate on it yet.
type SolidRect struct {
	Rect
	Surface string
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// CloudLane is a horizontal band clouds drift along. Direction is -1 or 1.
type CloudLane struct {
	Y         float64
	Direction float64
}
