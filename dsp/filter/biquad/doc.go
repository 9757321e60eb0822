// Package biquad provides the stereo second-order IIR section used by every
// filter in the engine.
//
// A [Stereo] section holds one [Coefficients] set and an independent
// Direct Form II Transposed [State] per channel. Coefficients can be replaced
// at any time, even every sample, without touching the state, so a filter
// whose specification moves keeps ringing continuously instead of clicking.
//
// Block processing is dispatched to the fastest registered kernel for the
// running CPU (see internal/arch). All kernels compute the same recurrence as
// [Stereo.ProcessSample].
//
// Coefficient design (Linkwitz-Riley lowpass, peaking EQ) lives in
// dsp/filter/design.
package biquad
