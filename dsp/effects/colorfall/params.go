package colorfall

import (
	"github.com/cwbudde/colorfall/dsp/filter/crossover"
	"github.com/cwbudde/colorfall/dsp/param"
)

// Parameter ranges with the plugin defaults.
var (
	AmountRange = param.Range{Min: 0, Max: 1, Default: 0.1}
	TiltRange   = param.Range{Min: -1, Max: 1, Default: 0}
	MixRange    = param.Range{Min: 0, Max: 1, Default: 0.5}
	OutputRange = param.Range{Min: -24, Max: 24, Default: 0}
)

// Params are the four macro controls, already smoothed by the host.
type Params struct {
	Amount   float64 // processing intensity, [0, 1]
	Tilt     float64 // spectral emphasis, [-1, 1]
	Mix      float64 // dry/wet, [0, 1]
	OutputDB float64 // output trim in dB, [-24, 24]
}

// DefaultParams returns every control at its default.
func DefaultParams() Params {
	return Params{
		Amount:   AmountRange.Default,
		Tilt:     TiltRange.Default,
		Mix:      MixRange.Default,
		OutputDB: OutputRange.Default,
	}
}

// Clamp limits every control to its range. NaN falls back to the default.
func (p Params) Clamp() Params {
	return Params{
		Amount:   AmountRange.Clamp(p.Amount),
		Tilt:     TiltRange.Clamp(p.Tilt),
		Mix:      MixRange.Clamp(p.Mix),
		OutputDB: OutputRange.Clamp(p.OutputDB),
	}
}

// TiltSemitones returns the crossover shift in semitones for tilt.
func TiltSemitones(tilt float64) float64 {
	return TiltRange.Clamp(tilt) * crossover.TiltMaxSemitones
}
