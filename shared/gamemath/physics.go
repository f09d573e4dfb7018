package gamemath

import "math"

// timeEpsilon absorbs float drift when summing fixed tick lengths.
const timeEpsilon = 1e-9

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

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Lerp interpolates from a to b by t, with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}

// Reached reports whether an accumulated elapsed time has hit duration.
func Reached(elapsed, duration float64) bool {
	return elapsed+timeEpsilon >= duration
}

// SurfaceForce shapes a desired horizontal force by the surface friction.
// Above baseline the force is divided by the friction. Between zero and baseline
// the current speed moves toward the force at dt*friction*lerpRate per tick.
// Exactly baseline (or non-positive friction) leaves the force unchanged.
func SurfaceForce(force, currentSpeed, friction, baseline, lerpRate, dt float64) float64 {
	if friction > baseline {
		return force / friction
	}
	if friction > 0 && friction < baseline {
		return Lerp(currentSpeed, force, dt*friction*lerpRate)
	}
	return force
}

// NormalizedX returns the x component of the unit vector along (x, y).
// A zero vector yields 0.
func NormalizedX(x, y float64) float64 {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0
	}
	return x / length
}
