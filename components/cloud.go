package components

import "github.com/yohamta/donburi"

// CloudData is a drifting collectible that refills one ball.
type CloudData struct {
	SpeedX float64
	Lane   int
}

var Cloud = donburi.NewComponentType[CloudData]()
