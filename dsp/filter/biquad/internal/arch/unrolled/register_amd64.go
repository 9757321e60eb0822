//go:build amd64 && !purego

package unrolled

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:          "sse2",
		SIMDLevel:     cpu.SIMDSSE2,
		Priority:      10,
		ProcessStereo: processStereo,
	})
}
