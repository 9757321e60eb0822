// Package design provides biquad coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ cookbook lowpass sections in
// Linkwitz-Riley alignment for crossovers, and peaking sections whose gain is
// re-evaluated every sample through [PeakDesigner].
//
// Designers never fail. Out-of-range frequencies are clamped into
// (0, 0.49*sampleRate) and invalid sample rates yield the identity section.
package design
