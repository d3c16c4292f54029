package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ApplyDrag slows speed toward zero by drag units/s over dt seconds.
func ApplyDrag(speed, drag, dt float64) float64 {
	return ApplyFriction(speed, drag*dt)
}
