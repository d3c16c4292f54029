package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/skyball/config"
	"github.com/automoto/skyball/input"
	"github.com/automoto/skyball/persistence"
	"github.com/automoto/skyball/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.PlatformerScene
	store  *persistence.Store
	device *input.Device
	paused bool

	// Shop browsing on the game over screen.
	shopIndex   int
	shopMessage string
}

func NewGame(store *persistence.Store) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		store:  store,
		device: input.NewDevice(),
	}
	g.device.ToWorldX = func(x int) float64 { return g.scene.ScreenToWorldX(x) }
	g.restart()
	return g
}

// restart throws the current run away and starts a fresh one.
func (g *Game) restart() {
	if g.scene != nil {
		g.scene.Destroy()
	}
	g.scene = scenes.NewPlatformerScene(scenes.Options{
		Input: g.device,
		Store: g.store,
	})
}

func (g *Game) Update() error {
	if actionJustPressed(config.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	if g.scene.Over() {
		if actionJustPressed(config.ActionJump) || actionJustPressed(config.ActionFire) {
			g.shopMessage = ""
			g.restart()
			return nil
		}
		g.updateShop()
		return nil
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	switch {
	case g.paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", config.C.Width/2-20, config.C.Height/2)
	case g.scene.Over():
		msg := fmt.Sprintf("GAME OVER  best %d  press jump to retry", g.store.Best())
		ebitenutil.DebugPrintAt(screen, msg, config.C.Width/2-120, config.C.Height/2)
		g.drawShop(screen, config.C.Width/2-120, config.C.Height/2+24)
	}
}

// updateShop lets the player browse with left/right and buy or equip the
// selected item with up.
func (g *Game) updateShop() {
	shop := g.scene.Shop()
	items := shop.Items()
	if len(items) == 0 {
		return
	}
	switch {
	case actionJustPressed(config.ActionMoveLeft):
		g.shopIndex = (g.shopIndex + len(items) - 1) % len(items)
	case actionJustPressed(config.ActionMoveRight):
		g.shopIndex = (g.shopIndex + 1) % len(items)
	case actionJustPressed(config.ActionAimUp):
		item := items[g.shopIndex]
		if !g.store.IsUnlocked(item.ID) {
			if err := shop.Unlock(item.ID); err != nil {
				g.shopMessage = err.Error()
				return
			}
		}
		if err := shop.Equip(item.ID); err != nil {
			g.shopMessage = err.Error()
			return
		}
		g.shopMessage = "equipped " + item.Name
		g.store.SaveOrWarn()
	}
}

func (g *Game) drawShop(screen *ebiten.Image, x, y int) {
	shop := g.scene.Shop()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("coins %d  shop: left/right to browse, up to buy or equip", g.store.Coins()), x, y)
	for i, item := range shop.Items() {
		marker := "  "
		if i == g.shopIndex {
			marker = "> "
		}
		status := fmt.Sprintf("%d coins", item.Cost)
		if equipped, ok := shop.Equipped(item.Slot); ok && equipped.ID == item.ID {
			status = "equipped"
		} else if g.store.IsUnlocked(item.ID) {
			status = "owned"
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s%-12s %-5s %s", marker, item.Name, item.Slot, status), x, y+16*(i+1))
	}
	if g.shopMessage != "" {
		ebitenutil.DebugPrintAt(screen, g.shopMessage, x, y+16*(len(shop.Items())+2))
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func actionJustPressed(id config.ActionID) bool {
	for _, key := range config.Input.Bindings[id].Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// runHeadless steps a scripted run without opening a window.
func runHeadless(store *persistence.Store, frames int) {
	script := &input.Script{}
	for i := 0; i < frames; i++ {
		switch {
		case i%90 == 30:
			script.Frames = append(script.Frames, input.Press(config.ActionFire))
		case i%120 == 60:
			script.Frames = append(script.Frames, input.Press(config.ActionJump))
		case i%240 < 120:
			script.Frames = append(script.Frames, input.Press(config.ActionMoveRight))
		default:
			script.Frames = append(script.Frames, input.Press(config.ActionMoveLeft))
		}
	}

	scene := scenes.NewPlatformerScene(scenes.Options{Input: script, Store: store})
	defer scene.Destroy()
	for i := 0; i < frames && !scene.Over(); i++ {
		scene.Update()
	}
	log.Printf("Headless run finished: projectiles=%d over=%v best=%d coins=%d",
		scene.Shooting().ActiveProjectileCount(), scene.Over(), store.Best(), store.Coins())
}

func main() {
	configPath := flag.String("config", "", "YAML file with tuning overrides")
	headlessFrames := flag.Int("headless-frames", 0, "Simulate this many frames without a window, then exit")
	debug := flag.Bool("debug", config.Debug.DrawColliders, "Draw dead zones")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverridesFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *headlessFrames > 0 {
		config.Debug.Headless = true
		config.Debug.HeadlessFrames = *headlessFrames
	}
	config.Debug.DrawColliders = *debug

	var backend persistence.Backend
	if gd, err := persistence.OpenGdata("skyball"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		backend = persistence.NewMemoryBackend()
	} else {
		backend = gd
	}
	store := persistence.NewStore(backend)
	if err := store.Load(); err != nil {
		log.Printf("Warning: Could not load profile: %v", err)
	}

	if config.Debug.Headless {
		runHeadless(store, config.Debug.HeadlessFrames)
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Skyball")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(store)); err != nil {
		log.Fatal(err)
	}
}
