//go:build arm64 && !purego

package unrolled

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "neon",
		SIMDLevel:     cpu.SIMDNEON,
		Priority:      15,
		ProcessStereo: processStereo,
	})
}
