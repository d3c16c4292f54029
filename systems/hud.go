package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin    = 10
	hudPipRadius = 6
	hudPipGap    = 4
	hudBarWidth  = 130
	hudBarHeight = 6
)

var hudEmptyPip = color.RGBA{40, 40, 40, 255}

// DrawHUD shows the ball inventory as pips, the aim angle as a bar and the
// score underneath. It ignores the camera.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	inv := components.Inventory.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	score := components.Score.Get(playerEntry)

	y := float32(hudMargin + hudPipRadius)
	for i := 0; i < inv.Capacity(); i++ {
		c := hudEmptyPip
		if i < inv.Count() {
			c = cfg.Orange
		}
		x := float32(hudMargin + hudPipRadius + i*(2*hudPipRadius+hudPipGap))
		vector.FillCircle(screen, x, y, hudPipRadius, c, true)
	}

	// Aim: full bar is straight up, empty is the lowest angle allowed.
	barY := float32(hudMargin + 2*hudPipRadius + hudPipGap)
	ratio := float32((maxAimAngle - player.AimAngle) / (maxAimAngle - minAimAngle))
	vector.FillRect(screen, hudMargin, barY, hudBarWidth, hudBarHeight, hudEmptyPip, false)
	vector.FillRect(screen, hudMargin, barY, hudBarWidth*ratio, hudBarHeight, cfg.LightGreen, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d  TPS %.0f", score.Score, ebiten.ActualTPS()),
		hudMargin, int(barY)+hudBarHeight+hudPipGap)
}
