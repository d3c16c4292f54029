package systems

import cfg "github.com/automoto/skyball/config"

// Clock is simulated time, advanced once per frame.
type Clock struct {
	elapsed float64 // seconds
}

func (c *Clock) Advance(dt float64) {
	c.elapsed += dt
}

// Now returns the elapsed time in milliseconds.
func (c *Clock) Now() int64 {
	return int64(c.elapsed * 1000)
}

// Seconds returns the elapsed time in seconds.
func (c *Clock) Seconds() float64 {
	return c.elapsed
}

// FrameDelta is the fixed simulation step in seconds.
func FrameDelta() float64 {
	if cfg.C == nil || cfg.C.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.C.TPS)
}
