package core

import "math"

const (
	defaultEpsilon = 1e-12

	// DenormalThreshold is the magnitude below which filter and smoother
	// state is flushed to exact zero.
	DenormalThreshold = 1e-30

	// MinDB is the floor returned by GainToDB for silent or negative gains.
	MinDB = -240.0
)

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

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Recursive filters call it on their state once per block so that decaying
// tails end in true silence instead of stalling in subnormal arithmetic.
func FlushDenormals(x float64) float64 {
	if x > -DenormalThreshold && x < DenormalThreshold {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
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

// GainToDB is LinearToDB with a finite floor at MinDB. It is the variant
// used for metering, where -Inf and NaN must never reach an accumulator.
func GainToDB(linear float64) float64 {
	if !(linear > 0) {
		return MinDB
	}

	return math.Max(20*math.Log10(linear), MinDB)
}

// SignedPow returns |x|^p carrying the sign of x.
func SignedPow(x, p float64) float64 {
	switch {
	case x > 0:
		return math.Pow(x, p)
	case x < 0:
		return -math.Pow(-x, p)
	default:
		return 0
	}
}
