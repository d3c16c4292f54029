package gamemath

import (
	"math"
	"testing"
)

const eps = 0.1

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestCalculateTrajectory(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		angle     float64
		power     float64
		wantX     float64
		wantY     float64
	}{
		{"default_right", 1, -30, 1, 519.615, -300},
		{"default_left", -1, -30, 1, -519.615, -300},
		{"flat", 1, 0, 1, 600, 0},
		{"flat_left", -1, 0, 1, -600, 0},
		{"half_power", 1, -30, 0.5, 259.808, -150},
		{"negative_power_is_magnitude", 1, -30, -1, 519.615, -300},
		{"zero_direction", 0, -30, 1, 0, -300},
		{"straight_up", 1, -90, 1, 0, -600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy := CalculateTrajectory(600, tt.direction, tt.angle, tt.power)
			if !near(vx, tt.wantX) || !near(vy, tt.wantY) {
				t.Fatalf("got (%.3f, %.3f), want (%.3f, %.3f)", vx, vy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCalculateTrajectoryMirrorsDirection(t *testing.T) {
	for _, angle := range []float64{-80, -45, -30, -1, 0, 15, 60} {
		rx, ry := CalculateTrajectory(600, 1, angle, 1)
		lx, ly := CalculateTrajectory(600, -1, angle, 1)
		if rx != -lx || ry != ly {
			t.Fatalf("angle %v: right (%v,%v) left (%v,%v)", angle, rx, ry, lx, ly)
		}
	}
}

func TestCalculateTrajectoryDeterministic(t *testing.T) {
	ax, ay := CalculateTrajectory(600, 1, -37.5, 0.8)
	bx, by := CalculateTrajectory(600, 1, -37.5, 0.8)
	if ax != bx || ay != by {
		t.Fatalf("identical inputs gave different outputs")
	}
}

func TestOutsideBounds(t *testing.T) {
	b := Bounds{X: 0, Y: 0, W: 800, H: 600}
	tests := []struct {
		x, y float64
		want bool
	}{
		{400, 300, false},
		{-100, 300, false},
		{-100.5, 300, true},
		{900, 300, false},
		{900.1, 300, true},
		{400, -101, true},
		{400, 701, true},
	}
	for _, tt := range tests {
		if got := OutsideBounds(tt.x, tt.y, b, 100); got != tt.want {
			t.Errorf("OutsideBounds(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSpinFollowsHorizontalDirection(t *testing.T) {
	if Spin(519, 200) != 200 || Spin(-1, 200) != -200 || Spin(0, 200) != 0 {
		t.Fatalf("unexpected spin values")
	}
}
