package dynamics

import (
	"math"

	"github.com/cwbudde/colorfall/dsp/core"
)

// Envelope follows the power (x^2) of one channel with a one-pole smoother.
// The attack coefficient is used while the instantaneous power exceeds the
// envelope, the release coefficient otherwise.
type Envelope struct {
	value        float64
	attackAlpha  float64
	releaseAlpha float64
}

// SmoothingAlpha returns 1 - exp(-1/samples). A time constant below one
// sample yields 1 (no smoothing).
func SmoothingAlpha(samples float64) float64 {
	if !(samples > 1e-9) {
		return 1
	}
	return 1 - math.Exp(-1/samples)
}

// SetTimes sets the attack and release time constants in samples.
func (e *Envelope) SetTimes(attackSamples, releaseSamples float64) {
	e.attackAlpha = SmoothingAlpha(attackSamples)
	e.releaseAlpha = SmoothingAlpha(releaseSamples)
}

// Process feeds one sample and returns the detector level sqrt(envelope).
func (e *Envelope) Process(x float64) float64 {
	power := x * x

	alpha := e.releaseAlpha
	if power > e.value {
		alpha = e.attackAlpha
	}
	e.value += alpha * (power - e.value)

	return mathSqrt(e.value)
}

// Value returns the tracked power.
func (e *Envelope) Value() float64 { return e.value }

// Reset clears the tracked power.
func (e *Envelope) Reset() { e.value = 0 }

// FlushDenormals zeroes a decayed envelope.
func (e *Envelope) FlushDenormals() {
	e.value = core.FlushDenormals(e.value)
}
