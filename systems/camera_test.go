package systems

import (
	"testing"

	"github.com/automoto/skyball/components"
	"github.com/automoto/skyball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

func TestClampView(t *testing.T) {
	tests := []struct {
		name                  string
		center, level, screen float64
		want                  float64
	}{
		{"inside", 500, 1000, 400, 500},
		{"left edge", 50, 1000, 400, 200},
		{"right edge", 990, 1000, 400, 800},
		{"level smaller than screen", 10, 300, 400, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampView(tt.center, tt.level, tt.screen); got != tt.want {
				t.Errorf("clampView(%v, %v, %v) = %v, want %v", tt.center, tt.level, tt.screen, got, tt.want)
			}
		})
	}
}

func TestImpactShakesCamera(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	camera := factory.CreateCamera(e, 100, 100)
	ShakeOnImpact(e.World)

	ProjectileImpactEvent.Publish(e.World, ProjectileImpact{X: 1, Y: 2, Surface: "stone"})
	if camera.HasComponent(components.ScreenShake) {
		t.Fatalf("shake started before events were processed")
	}
	events.ProcessAllEvents(e.World)
	if !camera.HasComponent(components.ScreenShake) {
		t.Fatalf("impact did not shake the camera")
	}

	frames := components.ScreenShake.Get(camera).Duration
	cam := components.Camera.Get(camera)
	for i := 0; i < frames; i++ {
		updateScreenShake(camera, cam)
	}
	if camera.HasComponent(components.ScreenShake) {
		t.Fatalf("shake outlived its duration")
	}
}
