package colorfall

import (
	"fmt"

	"github.com/cwbudde/colorfall/dsp/param"
)

// DefaultControlTimeMs is the ramp time of the macro controls.
const DefaultControlTimeMs = 50.0

const (
	controlAmount = iota
	controlTilt
	controlMix
	controlOutput
	numControls
)

var controlStyles = [numControls]param.Style{
	controlAmount: param.Linear,
	controlTilt:   param.Linear,
	controlMix:    param.Linear,
	controlOutput: param.Exponential,
}

// ControlSmoother ramps raw host control values at block rate for hosts
// that do not smooth automation themselves. Amount, Tilt and Mix move
// linearly; the output trim moves exponentially in dB.
type ControlSmoother struct {
	s [numControls]*param.Smoother
}

// NewControlSmoother returns a smoother resting at DefaultParams.
func NewControlSmoother(timeMs, sampleRate float64) (*ControlSmoother, error) {
	c := &ControlSmoother{}
	for i, style := range controlStyles {
		s, err := param.NewSmoother(style, timeMs, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("colorfall: control smoother: %w", err)
		}
		c.s[i] = s
	}

	c.Reset(DefaultParams())
	return c, nil
}

// SetSampleRate changes the rate. Ramps in progress complete immediately.
func (c *ControlSmoother) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}
	for _, s := range c.s {
		if err := s.SetSampleRate(sampleRate); err != nil {
			return fmt.Errorf("colorfall: control smoother: %w", err)
		}
	}
	return nil
}

// Reset jumps to p after clamping.
func (c *ControlSmoother) Reset(p Params) {
	for i, v := range p.Clamp().values() {
		c.s[i].Reset(v)
	}
}

// SetTarget starts ramps toward p after clamping.
func (c *ControlSmoother) SetTarget(p Params) {
	for i, v := range p.Clamp().values() {
		c.s[i].SetTarget(v)
	}
}

// Advance moves every ramp n samples forward and returns the controls for
// the next block.
func (c *ControlSmoother) Advance(n int) Params {
	var v [numControls]float64
	for i, s := range c.s {
		v[i] = s.Skip(n)
	}
	return paramsFrom(v)
}

// Current returns the controls without advancing.
func (c *ControlSmoother) Current() Params {
	var v [numControls]float64
	for i, s := range c.s {
		v[i] = s.Current()
	}
	return paramsFrom(v)
}

// IsSmoothing reports whether any control is still ramping.
func (c *ControlSmoother) IsSmoothing() bool {
	for _, s := range c.s {
		if s.IsSmoothing() {
			return true
		}
	}
	return false
}

func (p Params) values() [numControls]float64 {
	return [numControls]float64{
		controlAmount: p.Amount,
		controlTilt:   p.Tilt,
		controlMix:    p.Mix,
		controlOutput: p.OutputDB,
	}
}

func paramsFrom(v [numControls]float64) Params {
	return Params{
		Amount:   v[controlAmount],
		Tilt:     v[controlTilt],
		Mix:      v[controlMix],
		OutputDB: v[controlOutput],
	}
}
