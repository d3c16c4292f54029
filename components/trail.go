package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// TrailData is a fixed-length ring of recent positions drawn behind a shot.
// It only records while Attached.
type TrailData struct {
	Attached bool
	Points   []Vector
	Next     int
	Filled   bool
	Color    color.RGBA
}

// Attach starts a fresh trail of length points.
func (t *TrailData) Attach(length int, c color.RGBA) {
	if cap(t.Points) >= length {
		t.Points = t.Points[:length]
	} else {
		t.Points = make([]Vector, length)
	}
	t.Next = 0
	t.Filled = false
	t.Color = c
	t.Attached = true
}

// Detach stops recording and forgets the points.
func (t *TrailData) Detach() {
	t.Attached = false
	t.Next = 0
	t.Filled = false
}

// Push records a position, overwriting the oldest once full.
func (t *TrailData) Push(x, y float64) {
	if !t.Attached || len(t.Points) == 0 {
		return
	}
	t.Points[t.Next] = Vector{X: x, Y: y}
	t.Next = (t.Next + 1) % len(t.Points)
	if t.Next == 0 {
		t.Filled = true
	}
}

// Len returns the number of recorded positions.
func (t *TrailData) Len() int {
	if t.Filled {
		return len(t.Points)
	}
	return t.Next
}

// At returns the i-th recorded position, oldest first.
func (t *TrailData) At(i int) Vector {
	if !t.Filled {
		return t.Points[i]
	}
	return t.Points[(t.Next+i)%len(t.Points)]
}

var Trail = donburi.NewComponentType[TrailData]()
