package crossover

import (
	"fmt"
	"math"

	"github.com/cwbudde/colorfall/dsp/filter/biquad"
	"github.com/cwbudde/colorfall/dsp/filter/design"
)

const (
	// NumBands is the number of output bands.
	NumBands = 5

	// NumStages is the number of lowpass crossover stages.
	NumStages = NumBands - 1

	// TiltMaxSemitones is the cutoff shift at tilt = +-1.
	TiltMaxSemitones = 4.0

	// LowestBound is the lower edge of band 0 used for band centers.
	LowestBound = 20.0
)

// BaseFrequencies are the unshifted crossover cutoffs in Hz, lowest first.
var BaseFrequencies = [NumStages]float64{150, 800, 4000, 9000}

// ShiftFrequency shifts base geometrically by tilt*4 semitones.
func ShiftFrequency(base, tilt float64) float64 {
	return base * math.Exp2(tilt*TiltMaxSemitones/12)
}

// ShiftedFrequencies returns all four cutoffs shifted by tilt.
func ShiftedFrequencies(tilt float64) [NumStages]float64 {
	var out [NumStages]float64
	for i, f := range BaseFrequencies {
		out[i] = ShiftFrequency(f, tilt)
	}
	return out
}

// BandBounds returns the lower and upper edge of band for the given
// cutoffs. The outer edges are LowestBound and Nyquist.
func BandBounds(band int, cutoffs [NumStages]float64, sampleRate float64) (lo, hi float64) {
	switch {
	case band <= 0:
		return LowestBound, cutoffs[0]
	case band >= NumStages:
		return cutoffs[NumStages-1], sampleRate / 2
	default:
		return cutoffs[band-1], cutoffs[band]
	}
}

// BandCenter returns the geometric mean of the band edges.
func BandCenter(band int, cutoffs [NumStages]float64, sampleRate float64) float64 {
	lo, hi := BandBounds(band, cutoffs, sampleRate)
	return math.Sqrt(lo * hi)
}

// Bank splits a stereo signal into NumBands complementary bands.
type Bank struct {
	sampleRate float64
	tilt       float64
	cutoffs    [NumStages]float64
	stages     [NumStages]biquad.Stereo
	designed   bool
}

// New creates a bank at sampleRate with zero tilt.
func New(sampleRate float64) (*Bank, error) {
	b := &Bank{}
	if err := b.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return b, nil
}

// SetSampleRate redesigns all stages for sampleRate and clears their state.
func (b *Bank) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("crossover: sample rate must be positive and finite, got %v", sampleRate)
	}

	b.sampleRate = sampleRate
	b.designed = false
	b.SetTilt(b.tilt)
	b.Reset()
	return nil
}

// SampleRate returns the design sample rate.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Tilt returns the current tilt.
func (b *Bank) Tilt() float64 { return b.tilt }

// Cutoffs returns the current shifted cutoffs, lowest first.
func (b *Bank) Cutoffs() [NumStages]float64 { return b.cutoffs }

// SetTilt shifts all cutoffs by tilt (clamped to [-1, 1]). Coefficients
// are only recomputed when the tilt changes. Filter state is kept.
func (b *Bank) SetTilt(tilt float64) {
	if math.IsNaN(tilt) {
		tilt = 0
	}
	tilt = math.Max(-1, math.Min(1, tilt))

	if b.designed && tilt == b.tilt {
		return
	}

	b.tilt = tilt
	b.cutoffs = ShiftedFrequencies(tilt)
	for i, f := range b.cutoffs {
		b.stages[i].SetCoefficients(design.LinkwitzRileyLowpass(f, b.sampleRate))
	}
	b.designed = true
}

// ProcessSample splits one stereo sample into NumBands band samples per
// channel, band 0 lowest.
func (b *Bank) ProcessSample(l, r float64) (bandsL, bandsR [NumBands]float64) {
	for s := NumStages - 1; s >= 0; s-- {
		lpL, lpR := b.stages[s].ProcessSample(l, r)
		bandsL[s+1] = l - lpL
		bandsR[s+1] = r - lpR
		l, r = lpL, lpR
	}

	bandsL[0] = l
	bandsR[0] = r
	return bandsL, bandsR
}

// ProcessBlock splits left and right into the band buffers. Every band
// buffer must be at least len(left) long; left and right are not modified.
func (b *Bank) ProcessBlock(left, right []float64, bandsL, bandsR [NumBands][]float64) {
	n := len(left)
	if n == 0 {
		return
	}

	right = right[:n]
	curL, curR := left, right
	for s := NumStages - 1; s >= 0; s-- {
		lpL, lpR := bandsL[s][:n], bandsR[s][:n]
		hiL, hiR := bandsL[s+1][:n], bandsR[s+1][:n]

		// Below the top stage hiL aliases curL. The update is element-wise.
		copy(lpL, curL)
		copy(lpR, curR)
		b.stages[s].ProcessBlock(lpL, lpR)

		for i := range n {
			hiL[i] = curL[i] - lpL[i]
			hiR[i] = curR[i] - lpR[i]
		}

		curL, curR = lpL, lpR
	}
}

// Reset clears all stage state. Coefficients are kept.
func (b *Bank) Reset() {
	for i := range b.stages {
		b.stages[i].Reset()
	}
}

// FlushDenormals zeroes decayed stage state.
func (b *Bank) FlushDenormals() {
	for i := range b.stages {
		b.stages[i].FlushDenormals()
	}
}
