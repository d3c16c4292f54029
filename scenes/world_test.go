package scenes

import (
	"math"
	"testing"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/input"
	"github.com/automoto/skyball/persistence"
	"github.com/automoto/skyball/shared/leveldata"
	"github.com/automoto/skyball/systems"
	"github.com/automoto/skyball/systems/shooting"
)

// testLevel is flat ground with a deadly gap at x 400..480.
func testLevel(lanes ...leveldata.CloudLane) *leveldata.Level {
	return &leveldata.Level{
		Name:      "test",
		MapWidth:  1000,
		MapHeight: 600,
		Terrain: []leveldata.SolidRect{
			{Rect: leveldata.Rect{X: 0, Y: 448, W: 400, H: 32}, Surface: "grass"},
			{Rect: leveldata.Rect{X: 480, Y: 448, W: 520, H: 32}, Surface: "grass"},
		},
		DeadZones:   []leveldata.Rect{{X: 400, Y: 472, W: 80, H: 8}},
		SpawnPoints: []leveldata.SpawnPoint{{X: 64, Y: 400}},
		CloudLanes:  lanes,
	}
}

func newTestScene(t *testing.T, script *input.Script, lanes ...leveldata.CloudLane) (*PlatformerScene, *persistence.Store) {
	t.Helper()
	store := persistence.NewStore(persistence.NewMemoryBackend())
	ps := NewPlatformerScene(Options{
		Levels: []*leveldata.Level{testLevel(lanes...)},
		Input:  script,
		Store:  store,
		Seed:   1,
	})
	t.Cleanup(ps.Destroy)
	return ps, store
}

func idle(n int) []systems.InputSnapshot {
	return make([]systems.InputSnapshot, n)
}

func step(ps *PlatformerScene, frames int) {
	for i := 0; i < frames; i++ {
		ps.Update()
	}
}

func TestPlayerLandsIdle(t *testing.T) {
	ps, _ := newTestScene(t, &input.Script{})
	step(ps, 60)

	player := ps.Player()
	if !components.Physics.Get(player).Grounded() {
		t.Fatalf("player did not land")
	}
	if got := components.State.Get(player).Current(); got != cfg.Idle {
		t.Fatalf("state = %v, want Idle", got)
	}
	obj := components.Object.Get(player)
	if math.Abs(obj.Y+obj.H-448) > 0.5 {
		t.Fatalf("feet at %v, want on the ground at 448", obj.Y+obj.H)
	}
}

func TestClickMovesPlayerThenStops(t *testing.T) {
	frames := idle(30)
	frames = append(frames, systems.InputSnapshot{Clicked: true, ClickX: 214})
	ps, _ := newTestScene(t, &input.Script{Frames: frames})

	step(ps, 32)
	if got := components.State.Get(ps.Player()).Current(); got != cfg.Move {
		t.Fatalf("state after click = %v, want Move", got)
	}

	step(ps, 90)
	player := ps.Player()
	if got := components.State.Get(player).Current(); got != cfg.Idle {
		t.Fatalf("state after arriving = %v, want Idle", got)
	}
	obj := components.Object.Get(player)
	if d := math.Abs(obj.X + obj.W/2 - 214); d > cfg.Player.StopThreshold {
		t.Fatalf("stopped %v away from the target", d)
	}
	if components.Player.Get(player).HasTarget {
		t.Fatalf("target not cleared on arrival")
	}
}

func TestJumpLandsBackToIdle(t *testing.T) {
	frames := append(idle(30), input.Press(cfg.ActionJump))
	ps, _ := newTestScene(t, &input.Script{Frames: frames})

	step(ps, 31)
	player := ps.Player()
	if got := components.State.Get(player).Current(); got != cfg.Jump {
		t.Fatalf("state = %v, want Jump", got)
	}
	if components.Physics.Get(player).SpeedY >= 0 {
		t.Fatalf("jump gave no upward speed")
	}

	step(ps, 120)
	if got := components.State.Get(player).Current(); got != cfg.Idle {
		t.Fatalf("state after landing = %v, want Idle", got)
	}
}

func TestDoubleJumpOnlyOnce(t *testing.T) {
	frames := idle(30)
	frames = append(frames, input.Press(cfg.ActionJump)) // 30: take off
	frames = append(frames, idle(25)...)                 // jump animation plays out
	frames = append(frames, input.Press(cfg.ActionJump)) // 56: double jump
	frames = append(frames, idle(4)...)
	frames = append(frames, input.Press(cfg.ActionJump)) // 61: ignored
	ps, _ := newTestScene(t, &input.Script{Frames: frames})
	physics := components.Physics.Get(ps.Player())

	step(ps, 57)
	if physics.SpeedY > -250 {
		t.Fatalf("speedY after double jump = %v, want a fresh upward impulse", physics.SpeedY)
	}

	step(ps, 5)
	if physics.SpeedY < -250 {
		t.Fatalf("speedY = %v, a third jump was allowed", physics.SpeedY)
	}
}

func TestJumpLocksTakeoffSpeedAndLandsMoving(t *testing.T) {
	frames := idle(30)
	frames = append(frames, systems.InputSnapshot{Clicked: true, ClickX: 380}) // 30: start walking right
	frames = append(frames, idle(4)...)
	frames = append(frames, input.Press(cfg.ActionJump)) // 35: take off at walking speed
	frames = append(frames, idle(4)...)
	frames = append(frames, systems.InputSnapshot{Clicked: true, ClickX: 10}) // 40: steer back mid-air
	ps, _ := newTestScene(t, &input.Script{Frames: frames})
	player := ps.Player()
	physics := components.Physics.Get(player)

	step(ps, 36)
	if got := components.State.Get(player).Current(); got != cfg.Jump {
		t.Fatalf("state = %v, want Jump", got)
	}
	if physics.SpeedX != cfg.Player.MoveSpeed {
		t.Fatalf("takeoff speedX = %v, want %v", physics.SpeedX, cfg.Player.MoveSpeed)
	}

	step(ps, 6)
	if physics.SpeedX != cfg.Player.MoveSpeed {
		t.Fatalf("speedX changed in the air to %v", physics.SpeedX)
	}

	for i := 0; i < 120 && components.State.Get(player).Current() == cfg.Jump; i++ {
		step(ps, 1)
	}
	if got := components.State.Get(player).Current(); got != cfg.Move {
		t.Fatalf("state after landing = %v, want Move", got)
	}
}

// flightOf is the vertical motion of the player.
func flightOf(ps *PlatformerScene) (speedY, y float64) {
	return components.Physics.Get(ps.Player()).SpeedY, components.Object.Get(ps.Player()).Y
}

func TestJumpIgnoresSecondPress(t *testing.T) {
	takeoff := append(idle(30), input.Press(cfg.ActionJump))

	tests := []struct {
		name   string
		frames []systems.InputSnapshot
		steps  int
	}{
		{
			name:   "press during jump animation",
			frames: append(append(append(idle(30), input.Press(cfg.ActionJump)), idle(4)...), input.Press(cfg.ActionJump)),
			steps:  40,
		},
		{
			name: "jump held through the animation",
			frames: func() []systems.InputSnapshot {
				frames := idle(30)
				for i := 0; i < 50; i++ {
					frames = append(frames, input.Press(cfg.ActionJump))
				}
				return frames
			}(),
			steps: 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			single, _ := newTestScene(t, &input.Script{Frames: takeoff})
			ps, _ := newTestScene(t, &input.Script{Frames: tt.frames})

			step(single, tt.steps)
			step(ps, tt.steps)

			if got := components.State.Get(ps.Player()).Current(); got != cfg.Jump {
				t.Fatalf("state = %v, want Jump", got)
			}
			wantSpeed, wantY := flightOf(single)
			gotSpeed, gotY := flightOf(ps)
			if gotSpeed != wantSpeed || gotY != wantY {
				t.Fatalf("flight = (%v, %v), want single jump (%v, %v)", gotSpeed, gotY, wantSpeed, wantY)
			}
		})
	}
}

func TestFireSpendsOneBall(t *testing.T) {
	frames := append(idle(30), input.Press(cfg.ActionFire))
	ps, _ := newTestScene(t, &input.Script{Frames: frames})

	step(ps, 31)
	inv := components.Inventory.Get(ps.Player())
	if inv.Count() != cfg.Inventory.StartingBalls-1 {
		t.Fatalf("balls = %d, want %d", inv.Count(), cfg.Inventory.StartingBalls-1)
	}
	if n := ps.Shooting().ActiveProjectileCount(); n != 1 {
		t.Fatalf("active projectiles = %d, want 1", n)
	}
}

func TestFullPoolKeepsAmmunition(t *testing.T) {
	old := cfg.Inventory.StartingBalls
	cfg.Inventory.StartingBalls = cfg.Inventory.Capacity
	t.Cleanup(func() { cfg.Inventory.StartingBalls = old })

	frames := idle(30)
	for i := 0; i < cfg.Shooting.MaxProjectiles+1; i++ {
		frames = append(frames, input.Press(cfg.ActionFire), systems.InputSnapshot{})
	}
	ps, _ := newTestScene(t, &input.Script{Frames: frames})
	step(ps, len(frames))

	if n := ps.Shooting().ActiveProjectileCount(); n != cfg.Shooting.MaxProjectiles {
		t.Fatalf("active projectiles = %d, want %d", n, cfg.Shooting.MaxProjectiles)
	}
	want := cfg.Inventory.Capacity - cfg.Shooting.MaxProjectiles
	if got := components.Inventory.Get(ps.Player()).Count(); got != want {
		t.Fatalf("balls = %d, want %d", got, want)
	}
}

func TestEmptyInventoryFiresNothing(t *testing.T) {
	frames := append(idle(30), input.Press(cfg.ActionFire))
	ps, _ := newTestScene(t, &input.Script{Frames: frames})
	step(ps, 30)
	components.Inventory.Get(ps.Player()).Reset()

	step(ps, 1)
	if n := ps.Shooting().ActiveProjectileCount(); n != 0 {
		t.Fatalf("fired with no balls: %d projectiles", n)
	}
}

func TestDeadZoneEndsRun(t *testing.T) {
	ps, store := newTestScene(t, &input.Script{})
	step(ps, 30)
	components.Score.Get(ps.Player()).Score = 7

	obj := components.Object.Get(ps.Player())
	obj.X, obj.Y = 420, 440
	obj.Update()

	step(ps, 2)
	if got := components.State.Get(ps.Player()).Current(); got != cfg.Dead {
		t.Fatalf("state = %v, want Dead", got)
	}
	if !ps.Over() {
		t.Fatalf("run not over after death")
	}
	if store.Best() != 7 {
		t.Fatalf("best = %d, want 7", store.Best())
	}

	// Nothing moves once the run ends.
	x, y := obj.X, obj.Y
	step(ps, 10)
	if obj.X != x || obj.Y != y {
		t.Fatalf("player moved after the run ended")
	}
}

func TestTouchingCloudGivesBall(t *testing.T) {
	ps, store := newTestScene(t, &input.Script{}, leveldata.CloudLane{Y: 408, Direction: 1})
	step(ps, 30)

	cloud := ps.Clouds().Spawn()
	if cloud == nil {
		t.Fatalf("no cloud spawned")
	}
	player := components.Object.Get(ps.Player())
	cobj := components.Object.Get(cloud)
	cobj.X, cobj.Y = player.X-10, player.Y
	cobj.Update()

	before := components.Inventory.Get(ps.Player()).Count()
	step(ps, 1)

	if got := components.Inventory.Get(ps.Player()).Count(); got != before+1 {
		t.Fatalf("balls = %d, want %d", got, before+1)
	}
	if cloud.Valid() {
		t.Fatalf("collected cloud still in the world")
	}
	score := components.Score.Get(ps.Player())
	if score.Score != cfg.Cloud.ScorePerCloud || score.Collected != 1 {
		t.Fatalf("score = %+v", *score)
	}
	if store.Coins() != cfg.Cloud.ScorePerCloud {
		t.Fatalf("coins = %d", store.Coins())
	}
}

func TestFullInventoryLeavesCloud(t *testing.T) {
	ps, _ := newTestScene(t, &input.Script{}, leveldata.CloudLane{Y: 408, Direction: 1})
	step(ps, 30)
	inv := components.Inventory.Get(ps.Player())
	for inv.AddBall() {
	}

	cloud := ps.Clouds().Spawn()
	player := components.Object.Get(ps.Player())
	cobj := components.Object.Get(cloud)
	cobj.X, cobj.Y = player.X-10, player.Y
	cobj.Update()

	step(ps, 1)
	if !cloud.Valid() {
		t.Fatalf("cloud collected with a full inventory")
	}
	if inv.Count() != inv.Capacity() {
		t.Fatalf("balls = %d", inv.Count())
	}
}

func TestDestroyReleasesProjectiles(t *testing.T) {
	frames := append(idle(30), input.Press(cfg.ActionFire))
	ps, _ := newTestScene(t, &input.Script{Frames: frames})
	step(ps, 31)
	bodies := ps.Host().Bodies()
	if len(bodies) != 1 {
		t.Fatalf("bodies before destroy = %d, want 1", len(bodies))
	}
	body := bodies[0]

	ps.Destroy()
	if body.Active() {
		t.Fatalf("freed body still reports active")
	}
	if n := ps.Shooting().ActiveProjectileCount(); n != 0 {
		t.Fatalf("active projectiles after destroy = %d", n)
	}
	if n := len(ps.Host().Bodies()); n != 0 {
		t.Fatalf("bodies left after destroy = %d", n)
	}
	if n := ps.Host().ListenerCount(shooting.EventUpdate); n != 0 {
		t.Fatalf("listeners left after destroy = %d", n)
	}
}
