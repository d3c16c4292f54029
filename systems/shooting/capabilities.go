package shooting

// RetireReason says why a projectile went back to the pool.
type RetireReason int

const (
	RetireManual RetireReason = iota
	RetireCollision
	RetireLifespan
	RetireOutOfBounds
	RetirePruned
	RetireShutdown
)

func (r RetireReason) String() string {
	switch r {
	case RetireCollision:
		return "collision"
	case RetireLifespan:
		return "lifespan"
	case RetireOutOfBounds:
		return "out_of_bounds"
	case RetirePruned:
		return "pruned"
	case RetireShutdown:
		return "shutdown"
	default:
		return "manual"
	}
}

// TrailHandle is a visual trail attached to a body.
type TrailHandle interface {
	Detach()
}

// Trails attaches visual trails to fired bodies.
type Trails interface {
	AttachTrail(b Body) TrailHandle
}

// Feedback plays fire and impact effects.
type Feedback interface {
	Fired(b Body, x, y, direction float64)
	Impact(b Body, surface string)
}

// Events is told about projectile lifecycle changes.
type Events interface {
	ProjectileFired(p *Projectile)
	ProjectileRetired(p *Projectile, reason RetireReason)
}

// Capabilities are optional host features. A nil field means the feature is
// skipped; firing never fails because one is missing.
type Capabilities struct {
	Trails   Trails
	Feedback Feedback
	Events   Events
}
