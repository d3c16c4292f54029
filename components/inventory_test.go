package components

import (
	"math/rand"
	"testing"
)

func TestBallInventoryFillsToCapacity(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 10} {
		inv := NewBallInventory(capacity, nil)
		for i := 0; i < capacity; i++ {
			if !inv.AddBall() {
				t.Fatalf("capacity %d: add %d failed", capacity, i)
			}
		}
		if !inv.IsFull() {
			t.Fatalf("capacity %d: expected full", capacity)
		}
		if inv.AddBall() {
			t.Fatalf("capacity %d: add past capacity succeeded", capacity)
		}
		if inv.Count() != capacity {
			t.Fatalf("capacity %d: count = %d", capacity, inv.Count())
		}
	}
}

func TestBallInventoryScenario(t *testing.T) {
	inv := NewBallInventory(3, nil)
	for i := 0; i < 3; i++ {
		if !inv.AddBall() {
			t.Fatalf("add %d should succeed", i+1)
		}
	}
	if inv.AddBall() {
		t.Fatalf("4th add should fail")
	}
	for i := 0; i < 3; i++ {
		if !inv.RemoveBall() {
			t.Fatalf("remove %d should succeed", i+1)
		}
	}
	if !inv.IsEmpty() {
		t.Fatalf("expected empty after third removal")
	}
	if inv.RemoveBall() {
		t.Fatalf("4th remove should fail")
	}
	if !inv.IsEmpty() || inv.Count() != 0 {
		t.Fatalf("count = %d after failed removal", inv.Count())
	}
}

func TestBallInventoryStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inv := NewBallInventory(5, nil)
	for i := 0; i < 1000; i++ {
		if rng.Intn(2) == 0 {
			inv.AddBall()
		} else {
			inv.RemoveBall()
		}
		if inv.Count() < 0 || inv.Count() > inv.Capacity() {
			t.Fatalf("step %d: count %d outside [0, %d]", i, inv.Count(), inv.Capacity())
		}
	}
}

func TestBallInventoryTimestampAndReset(t *testing.T) {
	var clock int64 = 100
	inv := NewBallInventory(2, func() int64 { return clock })

	if inv.LastFill() != 0 {
		t.Fatalf("fresh inventory should have no fill time")
	}
	inv.AddBall()
	clock = 250
	inv.AddBall()
	if inv.LastFill() != 250 {
		t.Fatalf("last fill = %d, want 250", inv.LastFill())
	}

	clock = 400
	inv.AddBall() // full, must not stamp
	if inv.LastFill() != 250 {
		t.Fatalf("failed add stamped the clock: %d", inv.LastFill())
	}

	inv.Reset()
	if inv.Count() != 0 || inv.LastFill() != 0 || inv.Capacity() != 2 {
		t.Fatalf("reset left count=%d lastFill=%d capacity=%d", inv.Count(), inv.LastFill(), inv.Capacity())
	}
}

func TestBallInventoryNegativeCapacity(t *testing.T) {
	inv := NewBallInventory(-4, nil)
	if inv.Capacity() != 0 || !inv.IsFull() || !inv.IsEmpty() {
		t.Fatalf("negative capacity should behave like zero")
	}
}
