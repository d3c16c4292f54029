package animations

// Animation steps through a frame range at a fixed tick rate.
type Animation struct {
	First            int
	Last             int
	Step             int     // frames advanced per tick of the animation
	SpeedInTps       float32 // game ticks between animation ticks
	frameCounter     float32
	frame            int
	Looped           bool // went past Last at least once since Restart
	FreezeOnComplete bool // stay on Last instead of wrapping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter >= 0.0 {
		return
	}
	a.frameCounter = a.SpeedInTps
	a.frame += a.Step
	if a.frame <= a.Last {
		return
	}
	a.Looped = true
	if a.FreezeOnComplete {
		a.frame = a.Last
	} else {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame and clears Looped.
func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32, freeze bool) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:            first,
		Last:             last,
		Step:             step,
		SpeedInTps:       speed,
		frameCounter:     speed,
		frame:            first,
		FreezeOnComplete: freeze,
	}
}
