package gamemath

// ApplyFriction reduces speed toward zero by friction amount without
// reversing its sign.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampFall limits downward (positive) speed to terminal, leaving upward
// speed untouched.
func ClampFall(speedY, terminal float64) float64 {
	if speedY > terminal {
		return terminal
	}
	return speedY
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// timerEpsilon absorbs float drift from summing many frame lengths.
const timerEpsilon = 1e-6

// CountDown decrements a timer by elapsed and floors it at zero.
func CountDown(remaining, elapsed float64) float64 {
	remaining -= elapsed
	if remaining <= timerEpsilon {
		return 0
	}
	return remaining
}
