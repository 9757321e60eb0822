package colorfall

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/colorfall/dsp/core"
)

// mixer is the constant-power dry/wet crossfade followed by the output trim.
type mixer struct {
	dryGain, wetGain float64
	outGain          float64
}

func newMixer(mix, outputDB float64) mixer {
	angle := mix * math.Pi / 2
	return mixer{
		dryGain: math.Cos(angle),
		wetGain: math.Sin(angle),
		outGain: core.DBToLinear(outputDB),
	}
}

// apply writes (dry*dryGain + wet*wetGain)*outGain into wet. dry is used as
// scratch.
func (m mixer) apply(wet, dry []float64) {
	vecmath.ScaleBlockInPlace(wet, m.wetGain)
	vecmath.ScaleBlockInPlace(dry, m.dryGain)
	vecmath.AddMulBlock(wet, wet, dry, m.outGain)
}
