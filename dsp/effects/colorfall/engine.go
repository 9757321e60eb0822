package colorfall

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/colorfall/dsp/core"
	"github.com/cwbudde/colorfall/dsp/effects/dynamics"
	"github.com/cwbudde/colorfall/dsp/filter/crossover"
	"github.com/cwbudde/colorfall/dsp/macro"
	"github.com/cwbudde/colorfall/dsp/param"
)

// NumBands is the number of processed bands.
const NumBands = macro.NumBands

// Engine is the stereo multiband processor. It is not safe for concurrent
// use except for the Meter, which may be read from any goroutine.
type Engine struct {
	cfg Config

	mapper   *macro.Mapper
	bank     *crossover.Bank
	bands    [NumBands]*dynamics.Band
	eq       reactiveEQ
	loudness *loudnessMatcher

	meterSmoother *param.Smoother
	meter         Meter

	settings macro.Settings

	dryL, dryR   []float64
	bandL, bandR [NumBands][]float64
	gainL, gainR [NumBands][]float64
	ramp         []float64
}

// New creates an engine from the given options.
func New(opts ...Option) (*Engine, error) {
	cfg := ApplyOptions(opts...)

	if err := validateSampleRate(cfg.SampleRate); err != nil {
		return nil, err
	}
	if cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("colorfall: max block size must be positive, got %d", cfg.BlockSize)
	}

	e := &Engine{cfg: cfg}

	var err error
	if e.mapper, err = macro.NewMapper(cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("colorfall: %w", err)
	}
	if e.bank, err = crossover.New(cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("colorfall: %w", err)
	}
	for i := range e.bands {
		if e.bands[i], err = dynamics.NewBand(cfg.SampleRate, cfg.GainSmoothingMs); err != nil {
			return nil, fmt.Errorf("colorfall: band %d: %w", i, err)
		}
	}
	if e.loudness, err = newLoudnessMatcher(cfg.LoudnessTimeMs, cfg.SampleRate); err != nil {
		return nil, err
	}
	if e.meterSmoother, err = param.NewSmoother(param.Exponential, cfg.MeterTimeMs, cfg.SampleRate); err != nil {
		return nil, fmt.Errorf("colorfall: meter smoother: %w", err)
	}

	n := cfg.BlockSize
	e.dryL = make([]float64, n)
	e.dryR = make([]float64, n)
	e.ramp = make([]float64, n)
	for i := range NumBands {
		e.bandL[i] = make([]float64, n)
		e.bandR[i] = make([]float64, n)
		e.gainL[i] = make([]float64, n)
		e.gainR[i] = make([]float64, n)
	}

	e.eq.setSampleRate(cfg.SampleRate)
	e.settings = e.mapper.Map(AmountRange.Default, TiltRange.Default)
	e.Reset()

	return e, nil
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("colorfall: sample rate must be positive and finite, got %v", sampleRate)
	}
	return nil
}

// SampleRate returns the processing sample rate.
func (e *Engine) SampleRate() float64 { return e.cfg.SampleRate }

// MaxBlockSize returns the largest block processed in one pass.
func (e *Engine) MaxBlockSize() int { return e.cfg.BlockSize }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Meter returns the gain reduction meter.
func (e *Engine) Meter() *Meter { return &e.meter }

// Settings returns the band settings used for the last block.
func (e *Engine) Settings() macro.Settings { return e.settings }

// LoudnessCorrection returns the current loudness correction gain.
func (e *Engine) LoudnessCorrection() float64 { return e.loudness.correction() }

// BandGainReductionDB returns each band's gain reduction in dB on the last
// processed sample, averaged over both channels.
func (e *Engine) BandGainReductionDB() [NumBands]float64 { return e.eq.bandGRDB }

// Reset clears all filter, envelope and smoother state. Gain reduction
// factors and the loudness correction return to 1 and the meter to 0.
func (e *Engine) Reset() {
	e.bank.Reset()
	for _, b := range e.bands {
		b.Reset()
	}
	e.eq.reset()
	e.loudness.reset()
	e.meterSmoother.Reset(0)
	e.meter.Store(0)
}

// SetSampleRate switches to sampleRate and resets the engine. On error the
// previous configuration is kept.
func (e *Engine) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}
	if err := e.applySampleRate(sampleRate); err != nil {
		return fmt.Errorf("colorfall: %w", err)
	}

	e.cfg.SampleRate = sampleRate
	e.Reset()
	return nil
}

// applySampleRate forwards a validated rate to every component.
func (e *Engine) applySampleRate(sampleRate float64) error {
	setters := [...]func(float64) error{
		e.mapper.SetSampleRate,
		e.bank.SetSampleRate,
		e.loudness.smoother.SetSampleRate,
		e.meterSmoother.SetSampleRate,
	}
	for _, set := range setters {
		if err := set(sampleRate); err != nil {
			return err
		}
	}
	for i, b := range e.bands {
		if err := b.SetSampleRate(sampleRate); err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}
	}

	e.eq.setSampleRate(sampleRate)
	return nil
}

// ProcessBlock processes left and right in place with the given controls
// and returns the block-average gain reduction in dB: per sample, the sum
// over bands of each band's mean left/right gain reduction.
//
// Blocks longer than MaxBlockSize are processed in chunks, each of which is
// one loudness-matching block. The only error is a channel length mismatch.
func (e *Engine) ProcessBlock(left, right []float64, p Params) (float64, error) {
	if len(left) != len(right) {
		return 0, fmt.Errorf("colorfall: channel length mismatch: left %d, right %d", len(left), len(right))
	}

	n := len(left)
	if n == 0 {
		return 0, nil
	}

	p = p.Clamp()
	e.settings = e.mapper.Map(p.Amount, p.Tilt)
	s := &e.settings

	e.bank.SetTilt(s.Tilt)
	for i, b := range e.bands {
		sb := &s.Bands[i]
		b.Configure(dynamics.BandConfig{
			Gain: dynamics.GainComputer{
				ThresholdDB: sb.ThresholdDB,
				Ratio:       sb.Ratio,
				KneeDB:      sb.KneeDB,
			},
			AttackSamples:  sb.AttackSamples,
			ReleaseSamples: sb.ReleaseSamples,
			Drive:          s.Drive,
			Trim:           s.SatTrim,
		})
	}
	e.eq.configure(s)

	mix := newMixer(p.Mix, p.OutputDB)

	total := 0.0
	for start := 0; start < n; start += e.cfg.BlockSize {
		end := min(start+e.cfg.BlockSize, n)
		total += e.processChunk(left[start:end], right[start:end], s, mix)
	}

	return total / float64(n), nil
}

// processChunk runs one loudness block and returns the sum of per-sample
// gain reduction.
func (e *Engine) processChunk(left, right []float64, s *macro.Settings, mix mixer) float64 {
	n := len(left)
	dryL, dryR := e.dryL[:n], e.dryR[:n]
	copy(dryL, left)
	copy(dryR, right)

	e.bank.ProcessBlock(left, right, e.bandL, e.bandR)

	var gainL, gainR [NumBands][]float64
	for i, b := range e.bands {
		gainL[i], gainR[i] = e.gainL[i][:n], e.gainR[i][:n]
		b.ProcessBlock(e.bandL[i][:n], e.bandR[i][:n], gainL[i], gainR[i])
	}

	copy(left, e.bandL[0][:n])
	copy(right, e.bandR[0][:n])
	for i := 1; i < NumBands; i++ {
		vecmath.AddBlockInPlace(left, e.bandL[i][:n])
		vecmath.AddBlockInPlace(right, e.bandR[i][:n])
	}

	grSum := e.eq.process(s, left, right, &gainL, &gainR)

	// The correction uses the previous block's powers. The wet power is
	// measured before the correction is applied.
	ramp := e.ramp[:n]
	e.loudness.fill(ramp)
	e.loudness.measure(dryL, dryR, left, right)
	vecmath.MulBlockInPlace(left, ramp)
	vecmath.MulBlockInPlace(right, ramp)

	mix.apply(left, dryL)
	mix.apply(right, dryR)

	e.publishMeter(grSum/float64(n), n)
	e.flushDenormals()

	return grSum
}

func (e *Engine) publishMeter(blockGRDB float64, n int) {
	e.meterSmoother.SetTarget(blockGRDB)
	v := e.meterSmoother.Skip(n)
	e.meter.Store(core.Clamp(v, MeterMinDB, MeterMaxDB))
}

func (e *Engine) flushDenormals() {
	e.bank.FlushDenormals()
	for _, b := range e.bands {
		b.FlushDenormals()
	}
	e.eq.flushDenormals()
}
