package scenes

import (
	"math/rand"
	"sync"

	"github.com/automoto/skyball/assets"
	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/persistence"
	"github.com/automoto/skyball/shared/leveldata"
	"github.com/automoto/skyball/systems"
	factory2 "github.com/automoto/skyball/systems/factory"
	"github.com/automoto/skyball/systems/shooting"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// Options configure a PlatformerScene. Zero values pick sensible defaults.
type Options struct {
	Levels     []*leveldata.Level // defaults to the embedded levels
	LevelIndex int
	Input      systems.InputSource
	Store      *persistence.Store // defaults to an in-memory store
	Seed       int64
}

type PlatformerScene struct {
	opts Options
	once sync.Once

	ecs      *ecs.ECS
	clock    *systems.Clock
	timers   *systems.Timers
	host     *systems.WorldHost
	shooting *shooting.System
	clouds   *systems.Clouds
	shop     *systems.Shop
	store    *persistence.Store
	player   *donburi.Entry

	over bool
}

func NewPlatformerScene(opts Options) *PlatformerScene {
	return &PlatformerScene{opts: opts}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.over {
		return
	}

	ps.clock.Advance(systems.FrameDelta())
	ps.ecs.Update()

	if components.State.Get(ps.player).Current() == cfg.Dead {
		ps.finish()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// finish ends the run: the score is recorded and the profile saved once.
func (ps *PlatformerScene) finish() {
	ps.over = true
	ps.clouds.Stop()
	ps.store.RecordScore(components.Score.Get(ps.player).Score)
	ps.store.SaveOrWarn()
}

// Over reports whether the player died and the run ended.
func (ps *PlatformerScene) Over() bool { return ps.over }

func (ps *PlatformerScene) Player() *donburi.Entry     { return ps.player }
func (ps *PlatformerScene) Shooting() *shooting.System { return ps.shooting }
func (ps *PlatformerScene) Host() *systems.WorldHost   { return ps.host }
func (ps *PlatformerScene) Clouds() *systems.Clouds    { return ps.clouds }
func (ps *PlatformerScene) Shop() *systems.Shop        { return ps.shop }
func (ps *PlatformerScene) World() donburi.World       { return ps.ecs.World }

// ScreenToWorldX maps a screen column into the level under the camera.
func (ps *PlatformerScene) ScreenToWorldX(x int) float64 {
	if ps.ecs == nil {
		return float64(x)
	}
	ox, _ := systems.CameraOffset(ps.ecs.World)
	return float64(x) + ox
}

// Destroy releases every projectile and stops the scene for good.
func (ps *PlatformerScene) Destroy() {
	ps.once.Do(ps.configure)
	if !ps.over {
		ps.finish()
	}
	ps.shooting.Destroy()
	ps.timers.Clear()
}

func (ps *PlatformerScene) configure() {
	levels := ps.opts.Levels
	if len(levels) == 0 {
		levels = assets.MustLoadLevels()
	}
	input := ps.opts.Input
	if input == nil {
		input = systems.NoInput{}
	}
	ps.store = ps.opts.Store
	if ps.store == nil {
		ps.store = persistence.NewStore(persistence.NewMemoryBackend())
	}
	ps.shop = systems.NewShop(ps.store, cfg.Shop.Items)

	ps.ecs = ecs.NewECS(donburi.NewWorld())
	ps.clock = &systems.Clock{}
	ps.timers = &systems.Timers{}

	// Create the level entity and load level data FIRST.
	level := levels[0]
	if ps.opts.LevelIndex >= 0 && ps.opts.LevelIndex < len(levels) {
		level = levels[ps.opts.LevelIndex]
	}

	// Now create the space for collision detection using the level's dimensions.
	factory2.CreateSpace(ps.ecs, level.MapWidth, level.MapHeight, 16, 16)
	factory2.CreateLevelAtIndex(ps.ecs, levels, ps.opts.LevelIndex)

	factory2.CreateCamera(ps.ecs, float64(level.MapWidth)/2, float64(level.MapHeight)/2)
	systems.ShakeOnImpact(ps.ecs.World)

	spawn := level.SpawnPoints[0]
	ps.player = factory2.CreatePlayer(ps.ecs, spawn.X, spawn.Y, ps.clock.Now)
	systems.NewPlayerMachine(ps.ecs, ps.player, ps.clock.Now)

	ps.host = systems.NewWorldHost(ps.ecs, ps.clock, ps.timers, level.Bounds(), cfg.Host.MaxBodies)
	ps.host.SetTrailColor(ps.shop.TrailColor)
	ps.shooting = shooting.New(ps.host, cfg.Shooting, ps.host.Capabilities())
	ps.shooting.SetupTerrainCollision(ps.host.Terrain())

	ps.clouds = systems.NewClouds(ps.ecs, ps.timers, level, rand.New(rand.NewSource(ps.opts.Seed)), ps.store)
	ps.clouds.Start()

	ps.ecs.AddSystem(systems.NewInputSystem(input))
	ps.ecs.AddSystem(systems.NewFireSystem(ps.shooting))
	ps.ecs.AddSystem(systems.UpdatePlayer)
	ps.ecs.AddSystem(systems.UpdateAnimations)
	ps.ecs.AddSystem(systems.UpdatePhysics)
	ps.ecs.AddSystem(systems.UpdateCollisions)
	ps.ecs.AddSystem(systems.UpdateCamera)
	ps.ecs.AddSystem(ps.host.UpdateProjectiles)
	ps.ecs.AddSystem(ps.clouds.Update)
	ps.ecs.AddSystem(ps.updateTimers)
	ps.ecs.AddSystem(systems.UpdateTweens)
	ps.ecs.AddSystem(ps.emitUpdate)
	ps.ecs.AddSystem(processEvents)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
}

func (ps *PlatformerScene) updateTimers(_ *ecs.ECS) {
	ps.timers.Update(float32(systems.FrameDelta()))
}

func (ps *PlatformerScene) emitUpdate(_ *ecs.ECS) {
	ps.host.Emit(shooting.EventUpdate)
}

func processEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
