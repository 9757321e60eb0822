package dynamics

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/colorfall/dsp/param"
)

// DefaultGainSmoothingMs is the gain-reduction smoothing time.
const DefaultGainSmoothingMs = 1.0

// BandConfig holds the block-constant settings of a Band.
type BandConfig struct {
	Gain           GainComputer
	AttackSamples  float64
	ReleaseSamples float64
	Drive          float64
	Trim           float64
}

// Band is a stereo dynamics processor with independent left and right
// envelopes. Each channel's target gain factor is smoothed before it is
// applied, and the signal is saturated before the gain is applied.
type Band struct {
	cfg BandConfig

	envL, envR Envelope
	grL, grR   *param.Smoother
}

// NewBand returns a Band whose gain factors are smoothed exponentially over
// smoothingMs at sampleRate.
func NewBand(sampleRate, smoothingMs float64) (*Band, error) {
	grL, err := param.NewSmoother(param.Exponential, smoothingMs, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("dynamics: gain smoother: %w", err)
	}

	grR, err := param.NewSmoother(param.Exponential, smoothingMs, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("dynamics: gain smoother: %w", err)
	}

	b := &Band{
		cfg: BandConfig{Gain: GainComputer{Ratio: 1}, Drive: 1, Trim: 1},
		grL: grL,
		grR: grR,
	}
	b.Reset()

	return b, nil
}

// SetSampleRate updates the smoother timing and resets the band.
func (b *Band) SetSampleRate(sampleRate float64) error {
	if err := b.grL.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("dynamics: %w", err)
	}
	if err := b.grR.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("dynamics: %w", err)
	}
	b.Reset()
	return nil
}

// Configure installs the settings for the next block.
func (b *Band) Configure(cfg BandConfig) {
	b.cfg = cfg
	b.envL.SetTimes(cfg.AttackSamples, cfg.ReleaseSamples)
	b.envR.SetTimes(cfg.AttackSamples, cfg.ReleaseSamples)
}

// Config returns the current settings.
func (b *Band) Config() BandConfig { return b.cfg }

// ProcessSample processes one stereo sample and returns the output.
func (b *Band) ProcessSample(l, r float64) (float64, float64) {
	gl, gr := b.nextGains(l, r)
	return SaturateDrive(l, b.cfg.Drive, b.cfg.Trim) * gl,
		SaturateDrive(r, b.cfg.Drive, b.cfg.Trim) * gr
}

// ProcessBlock processes left and right in place and writes the smoothed
// per-sample gain factors to gainL and gainR. All four slices must be at
// least len(left) long.
func (b *Band) ProcessBlock(left, right, gainL, gainR []float64) {
	n := len(left)
	if n == 0 {
		return
	}

	right = right[:n]
	gainL = gainL[:n]
	gainR = gainR[:n]

	drive, trim := b.cfg.Drive, b.cfg.Trim
	for i := range n {
		l, r := left[i], right[i]
		gainL[i], gainR[i] = b.nextGains(l, r)
		left[i] = SaturateDrive(l, drive, trim)
		right[i] = SaturateDrive(r, drive, trim)
	}

	vecmath.MulBlockInPlace(left, gainL)
	vecmath.MulBlockInPlace(right, gainR)
}

func (b *Band) nextGains(l, r float64) (float64, float64) {
	b.grL.SetTarget(b.cfg.Gain.Gain(b.envL.Process(l)))
	b.grR.SetTarget(b.cfg.Gain.Gain(b.envR.Process(r)))
	return b.grL.Next(), b.grR.Next()
}

// GainFactors returns the current smoothed left and right gain factors.
func (b *Band) GainFactors() (float64, float64) {
	return b.grL.Current(), b.grR.Current()
}

// Envelopes returns the tracked left and right power.
func (b *Band) Envelopes() (float64, float64) {
	return b.envL.Value(), b.envR.Value()
}

// Reset clears the envelopes and returns both gain factors to 1.
func (b *Band) Reset() {
	b.envL.Reset()
	b.envR.Reset()
	b.grL.Reset(1)
	b.grR.Reset(1)
}

// FlushDenormals zeroes decayed envelope state.
func (b *Band) FlushDenormals() {
	b.envL.FlushDenormals()
	b.envR.FlushDenormals()
}
