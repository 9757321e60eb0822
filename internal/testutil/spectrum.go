package testutil

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Spectrum returns the Hann-windowed magnitude spectrum of signal, bins
// [0..N/2] for the next power-of-two FFT size N >= len(signal). Bin k is
// centered at k*sampleRate/N.
func Spectrum(signal []float64) ([]float64, error) {
	n := 1
	for n < len(signal) {
		n <<= 1
	}
	if n < 2 {
		return nil, fmt.Errorf("testutil: signal too short for spectrum: %d", len(signal))
	}

	in := make([]complex128, n)
	m := len(signal)
	for i, v := range signal {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(m))
		in[i] = complex(v*w, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("testutil: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("testutil: fft: %w", err)
	}

	mags := make([]float64, n/2+1)
	for k := range mags {
		mags[k] = math.Hypot(real(out[k]), imag(out[k]))
	}
	return mags, nil
}

// BinPeak returns the largest magnitude within +-width bins of center.
func BinPeak(mags []float64, center, width int) float64 {
	peak := 0.0
	for k := center - width; k <= center+width; k++ {
		if k >= 0 && k < len(mags) && mags[k] > peak {
			peak = mags[k]
		}
	}
	return peak
}
