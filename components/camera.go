package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the centre of the view in world coordinates.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // smoothed offset toward where the player faces
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData is a decaying shake on the camera.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
