package design

import (
	"math"

	"github.com/cwbudde/colorfall/dsp/filter/biquad"
)

const (
	// LinkwitzRileyQ is the section Q of a Linkwitz-Riley aligned lowpass.
	LinkwitzRileyQ = 1 / math.Sqrt2

	// MinFrequency is the lower clamp applied to design frequencies.
	MinFrequency = 1.0

	// MaxNyquistRatio caps design frequencies at this fraction of the
	// sample rate.
	MaxNyquistRatio = 0.49

	// peakEpsilon guards the peaking normalization against a vanishing a0.
	peakEpsilon = 1e-9
)

// Lowpass designs an RBJ cookbook lowpass biquad at freq (Hz) with quality
// factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Identity()
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2
	b2 := b0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// LinkwitzRileyLowpass designs the second-order lowpass used by each
// crossover stage: the cookbook lowpass with Q = 1/sqrt(2).
func LinkwitzRileyLowpass(freq, sampleRate float64) biquad.Coefficients {
	return Lowpass(freq, LinkwitzRileyQ, sampleRate)
}

// Peak designs a cookbook peaking-EQ biquad with gain in dB.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	d := NewPeakDesigner(freq, q, sampleRate)
	return d.Coefficients(gainDB)
}

// PeakDesigner holds the gain-independent terms of a peaking section, so
// that only the gain-dependent taps are evaluated when the gain changes
// every sample.
type PeakDesigner struct {
	cw, alpha float64
	valid     bool
}

// NewPeakDesigner precomputes cos(w0) and alpha for the given center
// frequency, Q, and sample rate.
func NewPeakDesigner(freq, q, sampleRate float64) PeakDesigner {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return PeakDesigner{}
	}

	q = normalizedQ(q)

	return PeakDesigner{
		cw:    math.Cos(w0),
		alpha: math.Sin(w0) / (2 * q),
		valid: true,
	}
}

// Coefficients returns the peaking section for gainDB. A zero-value
// designer returns the identity section.
func (d PeakDesigner) Coefficients(gainDB float64) biquad.Coefficients {
	if !d.valid {
		return biquad.Identity()
	}

	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		gainDB = 0
	}

	a := math.Pow(10, gainDB/40)
	aa := d.alpha * a
	ad := d.alpha / a

	inv := 1 / (1 + ad + peakEpsilon)

	return biquad.Coefficients{
		B0: (1 + aa) * inv,
		B1: -2 * d.cw * inv,
		B2: (1 - aa) * inv,
		A1: -2 * d.cw * inv,
		A2: (1 - ad) * inv,
	}
}

// ClampFrequency maps freq into the designable range [MinFrequency,
// MaxNyquistRatio*sampleRate]. Frequencies at or above Nyquist and
// non-finite values are pulled inside the range instead of rejected.
func ClampFrequency(freq, sampleRate float64) float64 {
	upper := MaxNyquistRatio * sampleRate
	switch {
	case math.IsNaN(freq) || freq <= 0:
		freq = MinFrequency
	case freq >= sampleRate/2 || math.IsInf(freq, 1):
		freq = upper
	}

	if freq > upper {
		freq = upper
	}

	return freq
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 2*MinFrequency || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	return 2 * math.Pi * ClampFrequency(freq, sampleRate) / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return LinkwitzRileyQ
	}

	return q
}

func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Identity()
	}

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
