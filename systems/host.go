package systems

import (
	"image/color"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/shared/gamemath"
	"github.com/automoto/skyball/systems/factory"
	"github.com/automoto/skyball/systems/shooting"
	"github.com/automoto/skyball/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type listener struct {
	id    shooting.ListenerID
	event string
	fn    func()
}

type contactHandler struct {
	id int
	fn shooting.ContactHandler
}

// WorldHost gives the shooting system bodies, time, timers and per-frame
// channels backed by the scene's ECS world.
type WorldHost struct {
	ecs       *ecs.ECS
	clock     *Clock
	timers    *Timers
	bounds    gamemath.Bounds
	maxBodies int

	bodies       []*ProjectileBody
	listeners    []listener
	nextListener shooting.ListenerID
	contacts     []contactHandler
	nextContact  int

	trailColor func() color.RGBA
}

// NewWorldHost creates a host that allocates at most maxBodies projectile
// entities. This budget is separate from the shooting pool's capacity.
func NewWorldHost(e *ecs.ECS, clock *Clock, timers *Timers, bounds gamemath.Bounds, maxBodies int) *WorldHost {
	return &WorldHost{
		ecs:        e,
		clock:      clock,
		timers:     timers,
		bounds:     bounds,
		maxBodies:  maxBodies,
		trailColor: func() color.RGBA { return cfg.White },
	}
}

// SetTrailColor sets where new trails take their colour from.
func (h *WorldHost) SetTrailColor(fn func() color.RGBA) {
	h.trailColor = fn
}

// Capabilities exposes every optional feature this host supports.
func (h *WorldHost) Capabilities() shooting.Capabilities {
	return shooting.Capabilities{Trails: h, Feedback: h, Events: h}
}

func (h *WorldHost) Allocate(x, y float64) shooting.Body {
	if len(h.bodies) >= h.maxBodies {
		return nil
	}
	b := &ProjectileBody{entry: factory.CreateProjectile(h.ecs, x, y)}
	h.bodies = append(h.bodies, b)
	return b
}

func (h *WorldHost) Free(b shooting.Body) {
	pb, ok := b.(*ProjectileBody)
	if !ok {
		return
	}
	for i, other := range h.bodies {
		if other == pb {
			h.bodies = append(h.bodies[:i], h.bodies[i+1:]...)
			break
		}
	}
	factory.DestroyProjectile(h.ecs, pb.entry)
}

// Bodies returns the allocated projectile bodies.
func (h *WorldHost) Bodies() []*ProjectileBody {
	return h.bodies
}

func (h *WorldHost) Now() int64 {
	return h.clock.Now()
}

func (h *WorldHost) ScheduleOnce(delayMs int64, fn func()) {
	h.timers.ScheduleOnce(delayMs, fn)
}

func (h *WorldHost) Subscribe(event string, fn func()) shooting.ListenerID {
	h.nextListener++
	h.listeners = append(h.listeners, listener{id: h.nextListener, event: event, fn: fn})
	return h.nextListener
}

func (h *WorldHost) Unsubscribe(event string, id shooting.ListenerID) {
	for i, l := range h.listeners {
		if l.id == id && l.event == event {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount is the number of live subscriptions to event.
func (h *WorldHost) ListenerCount(event string) int {
	n := 0
	for _, l := range h.listeners {
		if l.event == event {
			n++
		}
	}
	return n
}

// Emit calls every listener of event in subscription order. Listeners added
// during the call wait for the next emit; listeners removed are skipped.
func (h *WorldHost) Emit(event string) {
	snapshot := make([]listener, 0, len(h.listeners))
	for _, l := range h.listeners {
		if l.event == event {
			snapshot = append(snapshot, l)
		}
	}
	for _, l := range snapshot {
		if h.subscribed(l.id) {
			l.fn()
		}
	}
}

func (h *WorldHost) subscribed(id shooting.ListenerID) bool {
	for _, l := range h.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

func (h *WorldHost) WorldBounds() gamemath.Bounds {
	return h.bounds
}

// Terrain is the group of solid level geometry projectiles can hit.
func (h *WorldHost) Terrain() shooting.TerrainGroup {
	return terrainGroup{h}
}

type terrainGroup struct{ h *WorldHost }

func (t terrainGroup) OnContact(fn shooting.ContactHandler) func() {
	h := t.h
	h.nextContact++
	id := h.nextContact
	h.contacts = append(h.contacts, contactHandler{id: id, fn: fn})
	return func() {
		for i, c := range h.contacts {
			if c.id == id {
				h.contacts = append(h.contacts[:i], h.contacts[i+1:]...)
				return
			}
		}
	}
}

func (h *WorldHost) dispatchContact(b *ProjectileBody, surface string) {
	for _, c := range append([]contactHandler(nil), h.contacts...) {
		c.fn(b, surface)
	}
}

func (h *WorldHost) AttachTrail(b shooting.Body) shooting.TrailHandle {
	pb, ok := b.(*ProjectileBody)
	if !ok {
		return nil
	}
	trail := components.Trail.Get(pb.entry)
	trail.Attach(cfg.Host.TrailLength, h.trailColor())
	return trailHandle{pb.entry}
}

type trailHandle struct{ entry *donburi.Entry }

func (t trailHandle) Detach() {
	if t.entry.Valid() {
		components.Trail.Get(t.entry).Detach()
	}
}

// Fired plays the fire pop: the ball briefly swells and settles back.
func (h *WorldHost) Fired(b shooting.Body, x, y, direction float64) {
	pb, ok := b.(*ProjectileBody)
	if !ok || cfg.Shooting.PopDuration <= 0 {
		return
	}
	half := cfg.Shooting.PopDuration / 2
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, cfg.Shooting.PopScale, half, ease.OutQuad),
		gween.New(cfg.Shooting.PopScale, 1, half, ease.InQuad),
	)
	tw := components.Tween.Get(pb.entry)
	tw.Sequence = seq
	tw.Apply = func(v float32) { pb.data().Scale = float64(v) }
	tw.Done = func() { pb.data().Scale = 1 }
}

func (h *WorldHost) Impact(b shooting.Body, surface string) {
	x, y := b.Position()
	ProjectileImpactEvent.Publish(h.ecs.World, ProjectileImpact{X: x, Y: y, Surface: surface})
}

func (h *WorldHost) ProjectileFired(p *shooting.Projectile) {
	x, y := p.Body.Position()
	ProjectileFiredEvent.Publish(h.ecs.World, ProjectileFired{Serial: p.Serial(), X: x, Y: y})
}

func (h *WorldHost) ProjectileRetired(p *shooting.Projectile, reason shooting.RetireReason) {
	ProjectileRetiredEvent.Publish(h.ecs.World, ProjectileRetired{Serial: p.Serial(), Reason: reason})
}

// UpdateProjectiles moves every active ball, reports terrain contacts and
// bounces balls nobody retired.
func (h *WorldHost) UpdateProjectiles(e *ecs.ECS) {
	dt := FrameDelta()
	for _, b := range h.bodies {
		h.stepProjectile(b, dt)
	}
}

func (h *WorldHost) stepProjectile(b *ProjectileBody, dt float64) {
	p := b.data()
	if !p.Active {
		return
	}
	obj := b.obj()

	p.SpeedY += p.Gravity * dt
	p.SpeedX = gamemath.ApplyDrag(p.SpeedX, p.DragX, dt)
	p.SpeedY = gamemath.ApplyDrag(p.SpeedY, p.DragY, dt)
	p.Rotation += p.AngularVelocity * dt

	dx, dy := p.SpeedX*dt, p.SpeedY*dt
	if check := obj.Check(dx, dy, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			h.dispatchContact(b, factory.SurfaceOf(solids[0]))
			if !p.Active {
				return
			}
			dx, dy = bounce(p, obj.Check(dx, 0, tags.ResolvSolid) != nil, obj.Check(0, dy, tags.ResolvSolid) != nil, dx, dy)
		}
	}

	obj.X += dx
	obj.Y += dy
	if p.CollideWorld {
		clampToBounds(p, &obj.X, &obj.Y, obj.W, obj.H, h.bounds)
	}
	obj.Update()

	x, y := b.Position()
	components.Trail.Get(b.entry).Push(x, y)
}

func bounce(p *components.ProjectileData, hitX, hitY bool, dx, dy float64) (float64, float64) {
	if !hitX && !hitY {
		hitY = true
	}
	if hitX {
		p.SpeedX = -p.SpeedX * p.BounceX
		dx = 0
	}
	if hitY {
		p.SpeedY = -p.SpeedY * p.BounceY
		dy = 0
	}
	return dx, dy
}

func clampToBounds(p *components.ProjectileData, x, y *float64, w, h float64, b gamemath.Bounds) {
	if *x < b.X {
		*x = b.X
		p.SpeedX = -p.SpeedX * p.BounceX
	} else if *x+w > b.X+b.W {
		*x = b.X + b.W - w
		p.SpeedX = -p.SpeedX * p.BounceX
	}
	if *y < b.Y {
		*y = b.Y
		p.SpeedY = -p.SpeedY * p.BounceY
	} else if *y+h > b.Y+b.H {
		*y = b.Y + b.H - h
		p.SpeedY = -p.SpeedY * p.BounceY
	}
}

// ProjectileBody is a shooting.Body over a projectile entity.
type ProjectileBody struct {
	entry *donburi.Entry
}

// Entry is the backing entity.
func (b *ProjectileBody) Entry() *donburi.Entry { return b.entry }

func (b *ProjectileBody) data() *components.ProjectileData {
	return components.Projectile.Get(b.entry)
}

func (b *ProjectileBody) obj() *components.ObjectData {
	return components.Object.Get(b.entry)
}

func (b *ProjectileBody) Position() (float64, float64) {
	o := b.obj()
	return o.X + o.W/2, o.Y + o.H/2
}

func (b *ProjectileBody) Velocity() (float64, float64) {
	p := b.data()
	return p.SpeedX, p.SpeedY
}

func (b *ProjectileBody) SetVelocity(x, y float64) {
	p := b.data()
	p.SpeedX, p.SpeedY = x, y
}

func (b *ProjectileBody) SetAngularVelocity(v float64) { b.data().AngularVelocity = v }
func (b *ProjectileBody) AngularVelocity() float64     { return b.data().AngularVelocity }

func (b *ProjectileBody) Reset(x, y float64) {
	o := b.obj()
	o.X, o.Y = x-o.W/2, y-o.H/2
	o.Update()
	b.data().Rotation = 0
}

func (b *ProjectileBody) SetActive(active bool) {
	b.data().Active = active
	if !active {
		tw := components.Tween.Get(b.entry)
		tw.Sequence = nil
	}
}

func (b *ProjectileBody) Active() bool                 { return b.entry.Valid() && b.data().Active }
func (b *ProjectileBody) SetVisible(visible bool)      { b.data().Visible = visible }
func (b *ProjectileBody) SetScale(scale float64)       { b.data().Scale = scale }
func (b *ProjectileBody) ClearTint()                   { b.data().Tint = nil }
func (b *ProjectileBody) SetGravity(g float64)         { b.data().Gravity = g }
func (b *ProjectileBody) SetMass(m float64)            { b.data().Mass = m }
func (b *ProjectileBody) SetCollideWorldBounds(c bool) { b.data().CollideWorld = c }

func (b *ProjectileBody) SetDrag(x, y float64) {
	p := b.data()
	p.DragX, p.DragY = x, y
}

func (b *ProjectileBody) SetBounce(x, y float64) {
	p := b.data()
	p.BounceX, p.BounceY = x, y
}
