package systems

import (
	"testing"

	"github.com/automoto/skyball/shared/gamemath"
	"github.com/automoto/skyball/systems/factory"
	"github.com/automoto/skyball/systems/shooting"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestHost(maxBodies int) (*ecs.ECS, *WorldHost) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 400, 400, 16, 16)
	h := NewWorldHost(e, &Clock{}, &Timers{}, gamemath.Bounds{W: 400, H: 400}, maxBodies)
	return e, h
}

func TestHostAllocateRespectsBudget(t *testing.T) {
	_, h := newTestHost(2)

	a := h.Allocate(10, 10)
	b := h.Allocate(20, 20)
	if a == nil || b == nil {
		t.Fatalf("allocation within budget failed")
	}
	if h.Allocate(30, 30) != nil {
		t.Fatalf("allocated past the budget")
	}

	entry := a.(*ProjectileBody).Entry()
	h.Free(a)
	if entry.Valid() {
		t.Fatalf("freed body's entity still alive")
	}
	if len(h.Bodies()) != 1 {
		t.Fatalf("bodies = %d, want 1", len(h.Bodies()))
	}
	if h.Allocate(30, 30) == nil {
		t.Fatalf("freed budget not reusable")
	}
}

func TestHostEmitSnapshotsListeners(t *testing.T) {
	_, h := newTestHost(1)

	var calls []string
	var second shooting.ListenerID
	h.Subscribe(shooting.EventUpdate, func() {
		calls = append(calls, "first")
		h.Unsubscribe(shooting.EventUpdate, second)
		h.Subscribe(shooting.EventUpdate, func() { calls = append(calls, "late") })
	})
	second = h.Subscribe(shooting.EventUpdate, func() { calls = append(calls, "second") })
	h.Subscribe("other", func() { calls = append(calls, "other") })

	h.Emit(shooting.EventUpdate)
	if len(calls) != 1 || calls[0] != "first" {
		t.Fatalf("calls = %v, want [first]", calls)
	}
	if n := h.ListenerCount(shooting.EventUpdate); n != 2 {
		t.Fatalf("listeners = %d, want 2", n)
	}
}

func TestHostTerrainContact(t *testing.T) {
	tests := []struct {
		name        string
		handle      bool
		wantSurface string
		wantSpeedY  float64
	}{
		{name: "no handler bounces", handle: false, wantSpeedY: -150},
		{name: "handler retires", handle: true, wantSurface: "stone", wantSpeedY: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, h := newTestHost(1)
			factory.CreateWall(e, 0, 100, 400, 20, "stone")

			var surface string
			if tt.handle {
				remove := h.Terrain().OnContact(func(b shooting.Body, s string) {
					surface = s
					b.SetActive(false)
				})
				defer remove()
			}

			b := h.Allocate(100, 90)
			b.SetBounce(1, 0.5)
			b.SetVelocity(0, 300)
			b.SetActive(true)

			h.UpdateProjectiles(e)

			if surface != tt.wantSurface {
				t.Fatalf("surface = %q, want %q", surface, tt.wantSurface)
			}
			if _, vy := b.Velocity(); vy != tt.wantSpeedY {
				t.Fatalf("speedY = %v, want %v", vy, tt.wantSpeedY)
			}
		})
	}
}

func TestHostInactiveBodiesStayPut(t *testing.T) {
	e, h := newTestHost(1)
	b := h.Allocate(50, 50)
	b.SetVelocity(100, 100)

	h.UpdateProjectiles(e)
	if x, y := b.Position(); x != 50 || y != 50 {
		t.Fatalf("inactive body moved to %v,%v", x, y)
	}
}
