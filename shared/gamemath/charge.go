package gamemath

// AccumulateCharge adds ratePerTick charge for elapsedMs of holding, capped
// at limit. tickMs is the frame length the rate was authored against.
func AccumulateCharge(charge, ratePerTick, elapsedMs, tickMs, limit float64) float64 {
	if tickMs <= 0 {
		return charge
	}
	charge += ratePerTick * elapsedMs / tickMs
	if charge > limit {
		return limit
	}
	return charge
}

// ChargeRatio returns charge/limit in [0, 1].
func ChargeRatio(charge, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return ClampFloat(charge/limit, 0, 1)
}

// CalculateDamage returns damage scaled by charge ratio.
func CalculateDamage(baseDamage, maxBonus int, chargeRatio float64) int {
	return baseDamage + int(float64(maxBonus)*chargeRatio)
}

// CalculateLaunchSpeed returns a per-tick projectile speed of base plus
// charge, capped at max.
func CalculateLaunchSpeed(base, charge, max float64) float64 {
	speed := base + charge
	if speed > max {
		return max
	}
	return speed
}

// CalculateShotSpeed returns speed scaled by charge ratio.
func CalculateShotSpeed(baseSpeed, chargeRatio float64) float64 {
	return baseSpeed * (1.0 + chargeRatio*0.5)
}
