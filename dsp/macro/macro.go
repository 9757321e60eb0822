package macro

import (
	"fmt"
	"math"

	"github.com/cwbudde/colorfall/dsp/core"
	"github.com/cwbudde/colorfall/dsp/filter/crossover"
)

const (
	// NumBands is the number of processed bands.
	NumBands = crossover.NumBands

	// KneeMaxDB is the knee width at Amount = 1.
	KneeMaxDB = 8.0

	// MaxCompensationDB is the compensation EQ boost at full reference GR.
	MaxCompensationDB = 6.0

	// ReferenceGRDB is the gain reduction that drives the compensation EQ
	// to its full boost.
	ReferenceGRDB = -24.0

	tiltBiasSlope = 0.8
	tiltBiasMin   = 0.2
	tiltBiasMax   = 1.8

	eqQMin = 0.5
	eqQMax = 20.0
)

// FreqFactors bias compression toward the low bands, lowest first.
var FreqFactors = [NumBands]float64{1.5, 1.2, 1.0, 0.8, 0.5}

// Band holds the block-constant settings of one band.
type Band struct {
	Center         float64 // geometric band center in Hz
	AttackSamples  float64
	ReleaseSamples float64
	TiltBias       float64
	Intensity      float64
	ThresholdDB    float64
	Ratio          float64
	KneeDB         float64
	EQQ            float64
	EQGainScale    float64 // amount * tilt bias
}

// Settings is the output of one Map call.
type Settings struct {
	Amount, Tilt float64
	Drive        float64 // saturation drive
	SatTrim      float64 // saturation output trim
	Cutoffs      [crossover.NumStages]float64
	Bands        [NumBands]Band
}

// EQGainDB returns the compensation EQ gain for band given the band's
// smoothed gain reduction in dB (<= 0).
func (s *Settings) EQGainDB(band int, grDB float64) float64 {
	depth := core.Clamp(grDB/ReferenceGRDB, 0, 1)
	// Adding 0 turns a negative zero into +0.
	return MaxCompensationDB*depth*s.Bands[band].EQGainScale + 0
}

// Mapper derives per-band settings for a sample rate.
type Mapper struct {
	sampleRate float64
}

// NewMapper returns a Mapper for sampleRate.
func NewMapper(sampleRate float64) (*Mapper, error) {
	m := &Mapper{}
	if err := m.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return m, nil
}

// SetSampleRate changes the rate used for time constants and band bounds.
func (m *Mapper) SetSampleRate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("macro: sample rate must be positive and finite, got %v", sampleRate)
	}
	m.sampleRate = sampleRate
	return nil
}

// SampleRate returns the configured rate.
func (m *Mapper) SampleRate() float64 { return m.sampleRate }

// Map computes all band settings for amount in [0, 1] and tilt in [-1, 1].
// Out-of-range inputs are clamped and NaN maps to 0.
func (m *Mapper) Map(amount, tilt float64) Settings {
	if math.IsNaN(amount) {
		amount = 0
	}
	if math.IsNaN(tilt) {
		tilt = 0
	}
	amount = core.Clamp(amount, 0, 1)
	tilt = core.Clamp(tilt, -1, 1)

	s := Settings{
		Amount:  amount,
		Tilt:    tilt,
		Drive:   Drive(amount),
		SatTrim: SaturationTrim(amount),
		Cutoffs: crossover.ShiftedFrequencies(tilt),
	}

	ratio := 1.1 + 15*math.Pow(amount, 2.5)
	knee := KneeMaxDB * math.Pow(amount, 1.5)
	amountScale := 1 - math.Pow(amount, 0.75)*0.8
	qBase := 0.7 + 8*amount*amount

	for i := range s.Bands {
		b := &s.Bands[i]

		b.Center = crossover.BandCenter(i, s.Cutoffs, m.sampleRate)
		freqScale := core.Clamp(math.Sqrt(b.Center/2000), 0.5, 2)
		attackMS := 20 * amountScale / math.Sqrt(freqScale)
		releaseMS := 300 * amountScale / math.Pow(freqScale, 1.5)
		b.AttackSamples = attackMS * m.sampleRate / 1000
		b.ReleaseSamples = releaseMS * m.sampleRate / 1000

		b.TiltBias = TiltBias(i, tilt)
		b.Intensity = amount * b.TiltBias * FreqFactors[i]
		b.ThresholdDB = -10 - 25*b.Intensity - tilt*(-5)*(float64(i)/4-0.5)
		b.Ratio = ratio
		b.KneeDB = knee

		qTilt := 1 + tilt*(float64(i)-2)*0.4
		b.EQQ = core.Clamp(qBase*qTilt, eqQMin, eqQMax)
		b.EQGainScale = amount * b.TiltBias
	}

	return s
}

// TiltBias returns the processing weight of band for tilt. Low bands lose
// weight as tilt rises, high bands gain it, band 2 is neutral.
func TiltBias(band int, tilt float64) float64 {
	effect := core.SignedPow(tilt, 1.5)

	var bias float64
	switch {
	case band < 2:
		bias = 1 - tiltBiasSlope*effect
	case band == 2:
		bias = 1
	default:
		bias = 1 + tiltBiasSlope*effect
	}

	return core.Clamp(bias, tiltBiasMin, tiltBiasMax)
}

// Drive returns the saturation drive for amount.
func Drive(amount float64) float64 {
	return amount*0.9 + 0.1
}

// SaturationTrim returns the post-saturation output trim for amount.
func SaturationTrim(amount float64) float64 {
	return 1 - 0.3*amount
}
