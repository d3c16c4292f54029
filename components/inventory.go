package components

import "github.com/yohamta/donburi"

// DefaultBallCapacity is used when an inventory is created without a capacity.
const DefaultBallCapacity = 10

// BallInventory is a bounded ammunition counter. count always stays within
// [0, capacity]; lastFill is the clock reading of the last successful AddBall
// (0 if never filled).
type BallInventory struct {
	capacity int
	count    int
	lastFill int64
	now      func() int64
}

// NewBallInventory creates an empty inventory. Negative capacities are
// clamped to zero; now may be nil, in which case fills are never stamped.
func NewBallInventory(capacity int, now func() int64) *BallInventory {
	if capacity < 0 {
		capacity = 0
	}
	return &BallInventory{capacity: capacity, now: now}
}

// AddBall adds one ball unless the inventory is full.
func (b *BallInventory) AddBall() bool {
	if b.count >= b.capacity {
		return false
	}
	b.count++
	if b.now != nil {
		b.lastFill = b.now()
	}
	return true
}

// RemoveBall takes one ball unless the inventory is empty.
func (b *BallInventory) RemoveBall() bool {
	if b.count <= 0 {
		return false
	}
	b.count--
	return true
}

func (b *BallInventory) IsFull() bool  { return b.count >= b.capacity }
func (b *BallInventory) IsEmpty() bool { return b.count <= 0 }

// Reset empties the inventory and forgets the last fill time.
func (b *BallInventory) Reset() {
	b.count = 0
	b.lastFill = 0
}

func (b *BallInventory) Count() int      { return b.count }
func (b *BallInventory) Capacity() int   { return b.capacity }
func (b *BallInventory) LastFill() int64 { return b.lastFill }

var Inventory = donburi.NewComponentType[BallInventory]()
