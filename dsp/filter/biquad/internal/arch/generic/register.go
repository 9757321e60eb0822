package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "generic",
		SIMDLevel:     cpu.SIMDNone,
		Priority:      0,
		ProcessStereo: processStereo,
	})
}

func processStereo(c registry.Coefficients, left, right []float64, sl, sr registry.State) (registry.State, registry.State) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	for i, x := range left {
		y := b0*x + sl.Z1
		sl.Z1 = b1*x - a1*y + sl.Z2
		sl.Z2 = b2*x - a2*y
		left[i] = y
	}

	right = right[:len(left)]
	for i, x := range right {
		y := b0*x + sr.Z1
		sr.Z1 = b1*x - a1*y + sr.Z2
		sr.Z2 = b2*x - a2*y
		right[i] = y
	}

	return sl, sr
}
