package param

import "math"

// Range is a closed parameter interval with a default value.
type Range struct {
	Min, Max float64
	Default  float64
}

// Clamp limits v to [Min, Max]. NaN maps to Default.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Default
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Normalize maps v to [0, 1] after clamping.
func (r Range) Normalize(v float64) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	return (r.Clamp(v) - r.Min) / span
}

// Denormalize maps n in [0, 1] back into the range.
func (r Range) Denormalize(n float64) float64 {
	if math.IsNaN(n) {
		return r.Default
	}
	n = math.Max(0, math.Min(1, n))
	return r.Min + n*(r.Max-r.Min)
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
