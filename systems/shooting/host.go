package shooting

import "github.com/automoto/skyball/shared/gamemath"

// EventUpdate is the per-frame channel the host emits once per tick.
const EventUpdate = "update"

// ListenerID identifies a persistent subscription.
type ListenerID uint64

// Body is a pooled physical object handed out by the host. The system decides
// the values; the host applies them.
type Body interface {
	Position() (x, y float64)
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	SetAngularVelocity(v float64)
	AngularVelocity() float64
	Reset(x, y float64)

	SetActive(active bool)
	Active() bool
	SetVisible(visible bool)
	SetScale(scale float64)
	ClearTint()

	SetGravity(g float64)
	SetDrag(x, y float64)
	SetMass(m float64)
	SetBounce(x, y float64)
	SetCollideWorldBounds(collide bool)
}

// Host is everything the shooting system needs from the world it runs in.
type Host interface {
	// Allocate returns a body at (x, y) or nil when the host has none left.
	Allocate(x, y float64) Body
	// Free gives a body back to the host for good.
	Free(b Body)
	// Now is the current simulation time in milliseconds.
	Now() int64
	ScheduleOnce(delayMs int64, fn func())
	Subscribe(event string, fn func()) ListenerID
	Unsubscribe(event string, id ListenerID)
	WorldBounds() gamemath.Bounds
}

// ContactHandler receives a body that touched terrain of the given surface.
type ContactHandler func(b Body, surface string)

// TerrainGroup reports projectile contacts. OnContact returns a function
// that removes the handler.
type TerrainGroup interface {
	OnContact(h ContactHandler) (remove func())
}

// Shooter is anything that can fire from its own position.
type Shooter interface {
	Position() (x, y float64)
	Facing() float64
}
