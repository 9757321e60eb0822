package param

import (
	"fmt"
	"math"
)

// Style selects the smoothing curve.
type Style int

const (
	// Exponential approaches the target with a one-pole curve and snaps to
	// it once the configured time has elapsed.
	Exponential Style = iota

	// Linear ramps to the target in equal steps.
	Linear
)

// String implements fmt.Stringer.
func (s Style) String() string {
	switch s {
	case Exponential:
		return "exponential"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// exponentialResidual is the fraction of a step left after the smoothing
// time has elapsed.
const exponentialResidual = 1e-4

// Smoother smooths a scalar toward a target one sample at a time.
type Smoother struct {
	style      Style
	timeMS     float64
	sampleRate float64

	steps int
	coeff float64

	current   float64
	target    float64
	step      float64
	remaining int
}

// NewSmoother returns a smoother with the given curve and time in
// milliseconds at sampleRate. The initial value is 0.
func NewSmoother(style Style, timeMS, sampleRate float64) (*Smoother, error) {
	if style != Exponential && style != Linear {
		return nil, fmt.Errorf("param: unknown smoothing style %v", style)
	}
	if timeMS < 0 || math.IsNaN(timeMS) || math.IsInf(timeMS, 0) {
		return nil, fmt.Errorf("param: smoothing time must be >= 0 and finite, got %v", timeMS)
	}

	s := &Smoother{style: style, timeMS: timeMS}
	if err := s.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return s, nil
}

// SetSampleRate recomputes the step count and coefficient for sampleRate.
// The current value is kept and any ramp in progress is completed.
func (s *Smoother) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("param: sample rate must be positive and finite, got %v", sampleRate)
	}

	s.sampleRate = sampleRate
	s.steps = int(math.Round(sampleRate * s.timeMS / 1000))
	if s.steps > 0 {
		s.coeff = math.Pow(exponentialResidual, 1/float64(s.steps))
	} else {
		s.coeff = 0
	}

	s.current = s.target
	s.remaining = 0
	return nil
}

// Style returns the smoothing curve.
func (s *Smoother) Style() Style { return s.style }

// TimeMS returns the smoothing time in milliseconds.
func (s *Smoother) TimeMS() float64 { return s.timeMS }

// Steps returns the number of samples a full transition takes.
func (s *Smoother) Steps() int { return s.steps }

// Reset jumps to v with no transition in progress.
func (s *Smoother) Reset(v float64) {
	s.current = v
	s.target = v
	s.step = 0
	s.remaining = 0
}

// SetTarget starts a transition toward v. Setting the current target again
// does not restart the transition.
func (s *Smoother) SetTarget(v float64) {
	if v == s.target {
		return
	}

	s.target = v
	if s.steps == 0 {
		s.current = v
		s.remaining = 0
		return
	}

	s.remaining = s.steps
	if s.style == Linear {
		s.step = (v - s.current) / float64(s.steps)
	}
}

// Next advances one sample and returns the new value.
func (s *Smoother) Next() float64 {
	if s.remaining == 0 {
		return s.current
	}

	s.remaining--
	switch {
	case s.remaining == 0:
		s.current = s.target
	case s.style == Linear:
		s.current += s.step
	default:
		s.current = s.target + (s.current-s.target)*s.coeff
	}

	return s.current
}

// Skip advances n samples at once and returns the new value.
func (s *Smoother) Skip(n int) float64 {
	if n <= 0 || s.remaining == 0 {
		return s.current
	}

	if n >= s.remaining {
		s.current = s.target
		s.remaining = 0
		return s.current
	}

	s.remaining -= n
	if s.style == Linear {
		s.current += s.step * float64(n)
	} else {
		s.current = s.target + (s.current-s.target)*math.Pow(s.coeff, float64(n))
	}

	return s.current
}

// Current returns the value without advancing.
func (s *Smoother) Current() float64 { return s.current }

// Target returns the value being approached.
func (s *Smoother) Target() float64 { return s.target }

// IsSmoothing reports whether a transition is in progress.
func (s *Smoother) IsSmoothing() bool { return s.remaining > 0 }
