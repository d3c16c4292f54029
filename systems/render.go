package systems

import (
	"image/color"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const cullPadding = 64.0

// DrawWorld draws every collision object in view as a flat rectangle and
// balls with their trails. There are no sprites.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	ox, oy := CameraOffset(ecs.World)

	// Culling bounds, padded so shapes don't pop at the edges.
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	minX, maxX := ox-cullPadding, ox+float64(width)+cullPadding
	minY, maxY := oy-cullPadding, oy+float64(height)+cullPadding

	for _, obj := range space.Objects() {
		if obj.X+obj.W < minX || obj.X > maxX || obj.Y+obj.H < minY || obj.Y > maxY {
			continue
		}
		var c color.RGBA
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = cfg.Ground
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.DarkBlue
		case obj.HasTags(tags.ResolvCloud):
			c = cfg.CloudWhite
		case obj.HasTags(tags.ResolvDeadZone):
			if !cfg.Debug.DrawColliders {
				continue
			}
			c = cfg.Red
		default:
			continue
		}
		vector.FillRect(screen, float32(obj.X-ox), float32(obj.Y-oy), float32(obj.W), float32(obj.H), c, false)
	}

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if !p.Visible {
			return
		}
		trail := components.Trail.Get(e)
		for i := 0; i < trail.Len(); i++ {
			pt := trail.At(i)
			vector.FillCircle(screen, float32(pt.X-ox), float32(pt.Y-oy), 2, trail.Color, false)
		}
		obj := components.Object.Get(e)
		r := float32(obj.W / 2 * p.Scale)
		vector.FillCircle(screen, float32(obj.X+obj.W/2-ox), float32(obj.Y+obj.H/2-oy), r, cfg.Orange, true)
	})
}
