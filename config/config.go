package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Speeds are units per second.
type PlayerConfig struct {
	// Movement
	MoveSpeed          float64 `yaml:"move_speed"`
	StopThreshold      float64 `yaml:"stop_threshold"`      // distance at which a move target counts as reached
	JumpVelocity       float64 `yaml:"jump_velocity"`       // upward impulse of the first jump
	DoubleJumpVelocity float64 `yaml:"double_jump_velocity"` // weaker mid-air impulse

	// Physics
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// ShootingConfig holds projectile tuning. Lifespan is in milliseconds.
type ShootingConfig struct {
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	MaxProjectiles     int     `yaml:"max_projectiles"`
	ProjectileLifespan int64   `yaml:"projectile_lifespan"`

	DefaultAngle float64 `yaml:"default_angle"` // degrees, negative is up
	DefaultPower float64 `yaml:"default_power"`

	// Physical properties applied to every shot
	Gravity  float64 `yaml:"gravity"`
	BounceX  float64 `yaml:"bounce_x"`
	BounceY  float64 `yaml:"bounce_y"`
	DragX    float64 `yaml:"drag_x"`
	DragY    float64 `yaml:"drag_y"`
	Mass     float64 `yaml:"mass"`
	SpinRate float64 `yaml:"spin_rate"`

	BoundsBuffer  float64 `yaml:"bounds_buffer"`  // retire shots this far outside the world
	MuzzleForward float64 `yaml:"muzzle_forward"` // along facing
	MuzzleUp      float64 `yaml:"muzzle_up"`
	Size          float64 `yaml:"size"`

	// Fire "pop" tween
	PopScale    float32 `yaml:"pop_scale"`
	PopDuration float32 `yaml:"pop_duration"` // seconds
}

// InventoryConfig configures the ball counter.
type InventoryConfig struct {
	Capacity      int `yaml:"capacity"`
	StartingBalls int `yaml:"starting_balls"`
}

// CloudConfig configures collectible clouds.
type CloudConfig struct {
	SpawnInterval int64   `yaml:"spawn_interval"` // ms
	MaxClouds     int     `yaml:"max_clouds"`
	DriftSpeed    float64 `yaml:"drift_speed"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ScorePerCloud int     `yaml:"score_per_cloud"`
}

// HostConfig bounds what the world hands out to gameplay systems.
type HostConfig struct {
	MaxBodies   int `yaml:"max_bodies"`   // projectile bodies the ECS will allocate
	TrailLength int `yaml:"trail_length"` // positions kept per trail
}

// CameraConfig tunes how the view follows the player.
type CameraConfig struct {
	LookAheadDistanceX      float64 `yaml:"look_ahead_distance_x"`
	LookAheadMovingScale    float64 `yaml:"look_ahead_moving_scale"`
	LookAheadSpeedThreshold float64 `yaml:"look_ahead_speed_threshold"`
	LookAheadSmoothing      float64 `yaml:"look_ahead_smoothing"`
	FollowSmoothing         float64 `yaml:"follow_smoothing"`

	ImpactShake       float64 `yaml:"impact_shake"`        // pixels
	ImpactShakeFrames int     `yaml:"impact_shake_frames"` // frames
}

// ShopItem is a purchasable cosmetic.
type ShopItem struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Slot  string     `yaml:"slot"`
	Cost  int        `yaml:"cost"`
	Color color.RGBA `yaml:"-"`
}

// ShopConfig lists the cosmetic catalog.
type ShopConfig struct {
	Items []ShopItem `yaml:"-"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Headless       bool // run without a window
	HeadlessFrames int  // frames to simulate when headless
	DrawColliders  bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Shooting ShootingConfig
var Inventory InventoryConfig
var Cloud CloudConfig
var Host HostConfig
var Camera CameraConfig
var Shop ShopConfig
var Debug DebugConfig

// Shop slots
const (
	SlotTrail = "trail"
	SlotHat   = "hat"
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Sky          = color.RGBA{R: 135, G: 190, B: 235, A: 255}
	Ground       = color.RGBA{R: 70, G: 60, B: 50, A: 255}
	CloudWhite   = color.RGBA{R: 245, G: 245, B: 255, A: 230}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Player = PlayerConfig{
		MoveSpeed:          300,
		StopThreshold:      10,
		JumpVelocity:       400,
		DoubleJumpVelocity: 300,

		Gravity:      900,
		MaxFallSpeed: 900,

		CollisionWidth:  24,
		CollisionHeight: 40,
	}

	Shooting = DefaultShooting()

	Inventory = InventoryConfig{
		Capacity:      10,
		StartingBalls: 3,
	}

	Cloud = CloudConfig{
		SpawnInterval: 2500,
		MaxClouds:     6,
		DriftSpeed:    40,
		Width:         64,
		Height:        24,
		ScorePerCloud: 1,
	}

	Host = HostConfig{
		MaxBodies:   8,
		TrailLength: 12,
	}

	Camera = CameraConfig{
		LookAheadDistanceX:      60,
		LookAheadMovingScale:    1,
		LookAheadSpeedThreshold: 1,
		LookAheadSmoothing:      0.05,
		FollowSmoothing:         0.1,

		ImpactShake:       3,
		ImpactShakeFrames: 8,
	}

	Shop = ShopConfig{
		Items: []ShopItem{
			{ID: "trail_white", Name: "Chalk Trail", Slot: SlotTrail, Cost: 0, Color: White},
			{ID: "trail_orange", Name: "Ember Trail", Slot: SlotTrail, Cost: 10, Color: Orange},
			{ID: "trail_purple", Name: "Dusk Trail", Slot: SlotTrail, Cost: 25, Color: Purple},
			{ID: "hat_cap", Name: "Cap", Slot: SlotHat, Cost: 15, Color: LightBlue},
			{ID: "hat_crown", Name: "Crown", Slot: SlotHat, Cost: 50, Color: Yellow},
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Headless:       false,
		HeadlessFrames: 600,
	}
}

// DefaultShooting returns the stock projectile tuning.
func DefaultShooting() ShootingConfig {
	return ShootingConfig{
		ProjectileSpeed:    600,
		MaxProjectiles:     5,
		ProjectileLifespan: 5000,

		DefaultAngle: -30,
		DefaultPower: 1.0,

		Gravity:  400,
		BounceX:  0.6,
		BounceY:  0.4,
		DragX:    50,
		DragY:    20,
		Mass:     1,
		SpinRate: 200,

		BoundsBuffer:  100,
		MuzzleForward: 30,
		MuzzleUp:      -20,
		Size:          12,

		PopScale:    1.4,
		PopDuration: 0.15,
	}
}

// WithDefaults fills every zero field from DefaultShooting.
func (c ShootingConfig) WithDefaults() ShootingConfig {
	d := DefaultShooting()
	fill := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&c.ProjectileSpeed, d.ProjectileSpeed)
	fill(&c.DefaultAngle, d.DefaultAngle)
	fill(&c.DefaultPower, d.DefaultPower)
	fill(&c.Gravity, d.Gravity)
	fill(&c.BounceX, d.BounceX)
	fill(&c.BounceY, d.BounceY)
	fill(&c.DragX, d.DragX)
	fill(&c.DragY, d.DragY)
	fill(&c.Mass, d.Mass)
	fill(&c.SpinRate, d.SpinRate)
	fill(&c.BoundsBuffer, d.BoundsBuffer)
	fill(&c.MuzzleForward, d.MuzzleForward)
	fill(&c.MuzzleUp, d.MuzzleUp)
	fill(&c.Size, d.Size)
	if c.MaxProjectiles <= 0 {
		c.MaxProjectiles = d.MaxProjectiles
	}
	if c.ProjectileLifespan <= 0 {
		c.ProjectileLifespan = d.ProjectileLifespan
	}
	if c.PopScale == 0 {
		c.PopScale = d.PopScale
	}
	if c.PopDuration == 0 {
		c.PopDuration = d.PopDuration
	}
	return c
}

// ShopItemByID looks up a catalog entry.
func ShopItemByID(id string) (ShopItem, bool) {
	for _, item := range Shop.Items {
		if item.ID == id {
			return item, true
		}
	}
	return ShopItem{}, false
}
