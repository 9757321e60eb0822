// Package testutil holds deterministic signal generators and assertion
// helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// MultiTone sums equal-amplitude sines at the given frequencies. The result
// is scaled so its peak cannot exceed amplitude.
func MultiTone(freqs []float64, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	if len(freqs) == 0 {
		return out
	}
	scale := amplitude / float64(len(freqs))
	for _, f := range freqs {
		step := 2 * math.Pi * f / sampleRate
		for i := range out {
			out[i] += scale * math.Sin(step*float64(i))
		}
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Clone returns a copy of src.
func Clone(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

// RMS returns the root-mean-square level of signal, 0 for an empty slice.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range signal {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(signal)))
}

// RMSDB returns the RMS level in dB relative to full scale.
func RMSDB(signal []float64) float64 {
	return 20 * math.Log10(RMS(signal))
}
