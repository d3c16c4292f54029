// Package shooting turns a fire action into a pooled, self-retiring
// projectile. It knows nothing about ammunition; callers decide whether a
// shot may be taken and only pay for it when FireBall returns non-nil.
package shooting

import (
	"log"

	"github.com/automoto/skyball/config"
	"github.com/automoto/skyball/shared/gamemath"
)

// Aim are the per-shot trajectory options.
type Aim struct {
	Angle float64 // degrees, negative is up
	Power float64
}

// AimOption overrides part of the default aim.
type AimOption func(*Aim)

func WithAngle(deg float64) AimOption { return func(a *Aim) { a.Angle = deg } }
func WithPower(p float64) AimOption   { return func(a *Aim) { a.Power = p } }

// Trajectory is a launch velocity.
type Trajectory struct {
	VelocityX float64
	VelocityY float64
}

// TrajectoryInfo is a read-only preview for aiming UI.
type TrajectoryInfo struct {
	VelocityX float64
	VelocityY float64
	Angle     float64
	Direction float64
	Speed     float64
}

// System fires and retires projectiles.
type System struct {
	host      Host
	cfg       config.ShootingConfig
	caps      Capabilities
	pool      *Pool
	detach    func()
	destroyed bool
}

// New creates a shooting system. Zero fields in cfg take the values from
// config.DefaultShooting.
func New(host Host, cfg config.ShootingConfig, caps Capabilities) *System {
	cfg = cfg.WithDefaults()
	return &System{
		host: host,
		cfg:  cfg,
		caps: caps,
		pool: NewPool(host, cfg.MaxProjectiles),
	}
}

// MaxProjectiles is the pool capacity.
func (s *System) MaxProjectiles() int { return s.cfg.MaxProjectiles }

func (s *System) aim(opts []AimOption) Aim {
	a := Aim{Angle: s.cfg.DefaultAngle, Power: s.cfg.DefaultPower}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// CalculateTrajectory returns the launch velocity for direction (-1, 0 or 1).
func (s *System) CalculateTrajectory(direction float64, opts ...AimOption) Trajectory {
	a := s.aim(opts)
	vx, vy := gamemath.CalculateTrajectory(s.cfg.ProjectileSpeed, direction, a.Angle, a.Power)
	return Trajectory{VelocityX: vx, VelocityY: vy}
}

// TrajectoryInfo previews a shot without firing it.
func (s *System) TrajectoryInfo(direction float64, opts ...AimOption) TrajectoryInfo {
	a := s.aim(opts)
	t := s.CalculateTrajectory(direction, opts...)
	return TrajectoryInfo{
		VelocityX: t.VelocityX,
		VelocityY: t.VelocityY,
		Angle:     a.Angle,
		Direction: direction,
		Speed:     gamemath.Magnitude(t.VelocityX, t.VelocityY),
	}
}

// FireBall launches a projectile from (x, y). It returns nil when the pool is
// full or the host can't allocate a body; nothing changes in that case.
func (s *System) FireBall(x, y, direction float64, opts ...AimOption) *Projectile {
	if s.destroyed {
		return nil
	}
	if s.ActiveProjectileCount() >= s.cfg.MaxProjectiles {
		return nil
	}

	traj := s.CalculateTrajectory(direction, opts...)

	p := s.pool.acquire(x, y, s.watchBounds)
	if p == nil {
		return nil
	}

	b := p.Body
	b.SetActive(true)
	b.SetVisible(true)
	b.SetScale(1)
	b.ClearTint()
	b.SetGravity(s.cfg.Gravity)
	b.SetBounce(s.cfg.BounceX, s.cfg.BounceY)
	b.SetDrag(s.cfg.DragX, s.cfg.DragY)
	b.SetMass(s.cfg.Mass)
	b.SetCollideWorldBounds(false)
	b.SetVelocity(traj.VelocityX, traj.VelocityY)
	b.SetAngularVelocity(gamemath.Spin(traj.VelocityX, s.cfg.SpinRate))

	serial := p.serial
	s.host.ScheduleOnce(s.cfg.ProjectileLifespan, func() {
		// The slot may have been retired and reused since.
		if p.serial != serial || !s.pool.isTracked(p) {
			return
		}
		s.cleanup(p, RetireLifespan)
	})

	if s.caps.Trails != nil {
		p.trail = s.caps.Trails.AttachTrail(b)
	}
	if s.caps.Feedback != nil {
		s.caps.Feedback.Fired(b, x, y, direction)
	}
	if s.caps.Events != nil {
		s.caps.Events.ProjectileFired(p)
	}
	return p
}

// FireFromPlayer fires from the shooter's muzzle: forward along its facing
// and slightly above its origin.
func (s *System) FireFromPlayer(shooter Shooter, opts ...AimOption) *Projectile {
	if shooter == nil {
		return nil
	}
	x, y := shooter.Position()
	facing := shooter.Facing()
	dx, dy := gamemath.MuzzleOffset(facing, s.cfg.MuzzleForward, s.cfg.MuzzleUp)
	return s.FireBall(x+dx, y+dy, facing, opts...)
}

// ActiveProjectileCount returns the number of live projectiles, first
// dropping any whose body was deactivated without a cleanup.
func (s *System) ActiveProjectileCount() int {
	for _, p := range s.pool.stale() {
		s.prune(p)
	}
	return s.pool.live()
}

// IsTracked reports whether p is currently counted as live.
func (s *System) IsTracked(p *Projectile) bool {
	return s.pool.isTracked(p)
}

// ActiveProjectiles returns a snapshot of the tracked projectiles.
func (s *System) ActiveProjectiles() []*Projectile {
	return s.pool.snapshot()
}

// CleanupProjectile retires p. It is a no-op for nil or inactive projectiles
// and safe to call more than once.
func (s *System) CleanupProjectile(p *Projectile) {
	s.cleanup(p, RetireManual)
}

// CleanupAllProjectiles retires every tracked projectile.
func (s *System) CleanupAllProjectiles() {
	for _, p := range s.pool.snapshot() {
		s.cleanup(p, RetireShutdown)
	}
}

func (s *System) cleanup(p *Projectile, reason RetireReason) {
	if !p.Active() {
		return
	}

	s.teardown(p)

	b := p.Body
	b.SetVelocity(0, 0)
	b.SetAngularVelocity(0)
	b.SetActive(false)
	b.SetVisible(false)
	b.SetScale(1)
	b.ClearTint()

	if s.caps.Events != nil {
		s.caps.Events.ProjectileRetired(p, reason)
	}
}

// teardown releases everything a live projectile holds besides its body:
// the trail and the pool slot with its per-frame watcher.
func (s *System) teardown(p *Projectile) {
	if p.trail != nil {
		p.trail.Detach()
		p.trail = nil
	}
	s.pool.release(p)
}

// prune drops a projectile that was deactivated without a cleanup.
func (s *System) prune(p *Projectile) {
	if !s.pool.isTracked(p) {
		return
	}
	s.teardown(p)
	if s.caps.Events != nil {
		s.caps.Events.ProjectileRetired(p, RetirePruned)
	}
}

// watchBounds runs every frame for each live projectile.
func (s *System) watchBounds(p *Projectile) {
	if !p.Active() {
		s.prune(p)
		return
	}
	x, y := p.Body.Position()
	if gamemath.OutsideBounds(x, y, s.host.WorldBounds(), s.cfg.BoundsBuffer) {
		s.cleanup(p, RetireOutOfBounds)
	}
}

// SetupTerrainCollision makes projectiles retire on terrain contact. A nil
// group only logs a warning.
func (s *System) SetupTerrainCollision(terrain TerrainGroup) bool {
	if terrain == nil {
		log.Printf("Warning: shooting: no terrain group, projectiles will pass through terrain")
		return false
	}
	if s.detach != nil {
		s.detach()
	}
	s.detach = terrain.OnContact(func(b Body, surface string) {
		if p := s.pool.lookup(b); p != nil {
			s.HandleProjectileTerrainCollision(p, surface)
		}
	})
	return true
}

// HandleProjectileTerrainCollision stops and retires a projectile that hit
// terrain.
func (s *System) HandleProjectileTerrainCollision(p *Projectile, surface string) {
	if !p.Active() {
		return
	}
	s.applyCollisionResponse(p, surface)
	if s.caps.Feedback != nil {
		s.caps.Feedback.Impact(p.Body, surface)
	}
	s.cleanup(p, RetireCollision)
}

// applyCollisionResponse has a single policy for every surface for now.
func (s *System) applyCollisionResponse(p *Projectile, surface string) {
	p.Body.SetVelocity(0, 0)
	p.Body.SetAngularVelocity(0)
}

// Destroy retires everything, frees the pool's bodies and detaches from the
// host. The system fires nothing afterwards.
func (s *System) Destroy() {
	if s.destroyed {
		return
	}
	s.CleanupAllProjectiles()
	s.pool.destroy()
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	s.destroyed = true
}
