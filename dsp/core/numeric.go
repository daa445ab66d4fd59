package core

import "math"

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// RatioDB returns 20*log10(num/den), the level of num relative to den.
// A zero reference yields +Inf unless num is zero too, which yields 0.
func RatioDB(num, den float64) float64 {
	num, den = math.Abs(num), math.Abs(den)
	if den == 0 {
		if num == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return LinearToDB(num / den)
}
