package gamemath

import "math"

// Bounds is an axis-aligned playable area.
type Bounds struct {
	X, Y, W, H float64
}

// CalculateTrajectory returns the launch velocity for a shot. angleDeg follows
// the screen convention (negative is up). Negative power is treated as its
// magnitude and a zero direction yields no horizontal speed.
func CalculateTrajectory(baseSpeed, direction, angleDeg, power float64) (velX, velY float64) {
	speed := baseSpeed * math.Abs(power)
	rad := angleDeg * math.Pi / 180
	return math.Cos(rad) * speed * direction, math.Sin(rad) * speed
}

// Magnitude returns the length of the vector (x, y).
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MuzzleOffset returns where a shot leaves the shooter relative to its origin.
func MuzzleOffset(facing, forward, up float64) (dx, dy float64) {
	return forward * facing, up
}

// Spin returns the angular velocity for a projectile moving at velX.
func Spin(velX, rate float64) float64 {
	return rate * Sign(velX)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// OutsideBounds reports whether (x, y) lies beyond b grown by buffer on every side.
func OutsideBounds(x, y float64, b Bounds, buffer float64) bool {
	return x < b.X-buffer || x > b.X+b.W+buffer ||
		y < b.Y-buffer || y > b.Y+b.H+buffer
}
