package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type timer struct {
	tween *gween.Tween
	fn    func()
}

// Timers runs one-shot callbacks after a delay of simulated time. Each delay
// is a linear tween over its duration; the callback fires when it finishes.
type Timers struct {
	pending []*timer
}

// ScheduleOnce calls fn once delayMs of simulated time has passed.
func (t *Timers) ScheduleOnce(delayMs int64, fn func()) {
	if delayMs < 0 {
		delayMs = 0
	}
	t.pending = append(t.pending, &timer{
		tween: gween.New(0, 1, float32(delayMs)/1000, ease.Linear),
		fn:    fn,
	})
}

// Update advances every timer by dt seconds. Callbacks scheduled from inside a
// callback start counting on the next update.
func (t *Timers) Update(dt float32) {
	current := t.pending
	t.pending = nil

	var keep []*timer
	for _, tm := range current {
		if _, done := tm.tween.Update(dt); done {
			tm.fn()
			continue
		}
		keep = append(keep, tm)
	}
	t.pending = append(keep, t.pending...)
}

// Len is the number of timers still waiting.
func (t *Timers) Len() int {
	return len(t.pending)
}

// Clear drops every pending timer without running it.
func (t *Timers) Clear() {
	t.pending = nil
}
