package systems

import (
	"math"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the first player, keeping the level filling the
// screen wherever it is big enough to.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	// Look-ahead only moves while walking; standing still freezes it.
	if math.Abs(physics.SpeedX) > cfg.Camera.LookAheadSpeedThreshold {
		target := playerData.Direction.X * cfg.Camera.LookAheadDistanceX * cfg.Camera.LookAheadMovingScale
		camera.LookAheadX += (target - camera.LookAheadX) * cfg.Camera.LookAheadSmoothing
	}

	targetX := clampView(playerObject.X+playerObject.W/2+camera.LookAheadX, float64(level.MapWidth), float64(cfg.C.Width))
	targetY := clampView(playerObject.Y+playerObject.H/2, float64(level.MapHeight), float64(cfg.C.Height))

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

// clampView keeps a view of size screen inside [0, level]. A level smaller
// than the screen is centred.
func clampView(center, level, screen float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, center))
}

func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress
	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a shake, or strengthens the running one.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// ShakeOnImpact shakes the view whenever a ball hits terrain.
func ShakeOnImpact(w donburi.World) {
	ProjectileImpactEvent.Subscribe(w, func(w donburi.World, _ ProjectileImpact) {
		TriggerScreenShake(w, cfg.Camera.ImpactShake, cfg.Camera.ImpactShakeFrames)
	})
}

// CameraOffset is the world position of the screen's top-left corner.
func CameraOffset(w donburi.World) (float64, float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(cfg.C.Width)/2, camera.Position.Y - float64(cfg.C.Height)/2
}
