package shooting

// Projectile is a pooled shot. It never exists outside its Pool; retiring it
// deactivates the body instead of freeing it.
type Projectile struct {
	Body Body

	serial   uint64
	tracked  bool
	listener ListenerID
	trail    TrailHandle
}

// Active reports whether the projectile's body is live.
func (p *Projectile) Active() bool {
	return p != nil && p.Body != nil && p.Body.Active()
}

// Serial is the shot number of the current use of this slot.
func (p *Projectile) Serial() uint64 {
	if p == nil {
		return 0
	}
	return p.serial
}

// Pool owns both the fixed set of projectile slots and which of them are
// live. Acquiring a slot also subscribes its per-frame watcher and releasing
// it always unsubscribes, so the two can't drift apart.
type Pool struct {
	host     Host
	capacity int
	slots    []*Projectile
	byBody   map[Body]*Projectile
	serial   uint64
}

// NewPool creates an empty pool; bodies are allocated from host on demand.
func NewPool(host Host, capacity int) *Pool {
	return &Pool{
		host:     host,
		capacity: capacity,
		byBody:   make(map[Body]*Projectile, capacity),
	}
}

// Capacity is the maximum number of live projectiles.
func (p *Pool) Capacity() int { return p.capacity }

// acquire returns a slot positioned at (x, y) with watch subscribed to the
// per-frame channel, or nil if the pool or the host allocator is exhausted.
func (p *Pool) acquire(x, y float64, watch func(*Projectile)) *Projectile {
	if p.live() >= p.capacity {
		return nil
	}

	proj := p.freeSlot()
	if proj != nil {
		proj.Body.Reset(x, y)
	} else {
		if len(p.slots) >= p.capacity {
			return nil
		}
		body := p.host.Allocate(x, y)
		if body == nil {
			return nil
		}
		proj = &Projectile{Body: body}
		p.slots = append(p.slots, proj)
		p.byBody[body] = proj
	}

	p.serial++
	proj.serial = p.serial
	proj.tracked = true
	proj.listener = p.host.Subscribe(EventUpdate, func() { watch(proj) })
	return proj
}

// release stops tracking proj and drops its per-frame watcher. It reports
// whether proj was tracked.
func (p *Pool) release(proj *Projectile) bool {
	if proj == nil || !proj.tracked {
		return false
	}
	p.host.Unsubscribe(EventUpdate, proj.listener)
	proj.tracked = false
	proj.listener = 0
	return true
}

func (p *Pool) freeSlot() *Projectile {
	for _, s := range p.slots {
		if !s.tracked {
			return s
		}
	}
	return nil
}

// live counts tracked slots without pruning.
func (p *Pool) live() int {
	n := 0
	for _, s := range p.slots {
		if s.tracked {
			n++
		}
	}
	return n
}

// stale returns tracked slots whose body was deactivated behind our back.
func (p *Pool) stale() []*Projectile {
	var out []*Projectile
	for _, s := range p.slots {
		if s.tracked && !s.Active() {
			out = append(out, s)
		}
	}
	return out
}

// snapshot copies the tracked slots so callers may release while iterating.
func (p *Pool) snapshot() []*Projectile {
	out := make([]*Projectile, 0, len(p.slots))
	for _, s := range p.slots {
		if s.tracked {
			out = append(out, s)
		}
	}
	return out
}

func (p *Pool) isTracked(proj *Projectile) bool {
	return proj != nil && proj.tracked && p.byBody[proj.Body] == proj
}

func (p *Pool) lookup(b Body) *Projectile {
	return p.byBody[b]
}

// destroy releases every slot and hands the bodies back to the host. Slots
// still held by callers are left without a body.
func (p *Pool) destroy() {
	for _, s := range p.slots {
		p.release(s)
		p.host.Free(s.Body)
		s.Body = nil
	}
	p.slots = nil
	p.byBody = make(map[Body]*Projectile)
}
