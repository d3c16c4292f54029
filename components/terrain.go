package components

import "github.com/yohamta/donburi"

// TerrainData names what a solid is made of.
type TerrainData struct {
	Surface string
}

var Terrain = donburi.NewComponentType[TerrainData]()
