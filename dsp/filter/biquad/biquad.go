//nolint:funcorder
package biquad

import "github.com/cwbudde/colorfall/dsp/core"

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + z1
//	z1 = B1*x - A1*y + z2
//	z2 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity returns coefficients that pass the input unchanged.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// State is the two-element delay line of one channel.
type State struct {
	Z1, Z2 float64
}

// Stereo is a biquad section with one coefficient set and independent
// left/right state.
type Stereo struct {
	Coefficients

	left, right State
}

// NewStereo returns a Stereo section initialized with c and zero state.
func NewStereo(c Coefficients) *Stereo {
	return &Stereo{Coefficients: c}
}

// SetCoefficients replaces the coefficient set. The delay lines are kept.
func (s *Stereo) SetCoefficients(c Coefficients) {
	s.Coefficients = c
}

// ProcessSample filters one stereo sample pair.
func (s *Stereo) ProcessSample(l, r float64) (float64, float64) {
	yl := s.B0*l + s.left.Z1
	s.left.Z1 = s.B1*l - s.A1*yl + s.left.Z2
	s.left.Z2 = s.B2*l - s.A2*yl

	yr := s.B0*r + s.right.Z1
	s.right.Z1 = s.B1*r - s.A1*yr + s.right.Z2
	s.right.Z2 = s.B2*r - s.A2*yr

	return yl, yr
}

// ProcessBlock filters left and right in place. Both slices must have the
// same length. Zero-alloc.
func (s *Stereo) ProcessBlock(left, right []float64) {
	if len(left) == 0 {
		return
	}

	_ = right[len(left)-1]

	s.left, s.right = processStereo(s.Coefficients, left, right, s.left, s.right)
}

// Reset clears both delay lines. Coefficients are kept.
func (s *Stereo) Reset() {
	s.left = State{}
	s.right = State{}
}

// State returns the current left and right delay-line state.
func (s *Stereo) State() (left, right State) {
	return s.left, s.right
}

// SetState restores previously saved delay-line state.
func (s *Stereo) SetState(left, right State) {
	s.left = left
	s.right = right
}

// FlushDenormals zeroes delay-line values that decayed below
// core.DenormalThreshold.
func (s *Stereo) FlushDenormals() {
	s.left.Z1 = core.FlushDenormals(s.left.Z1)
	s.left.Z2 = core.FlushDenormals(s.left.Z2)
	s.right.Z1 = core.FlushDenormals(s.right.Z1)
	s.right.Z2 = core.FlushDenormals(s.right.Z2)
}
