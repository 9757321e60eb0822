package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	archregistry "github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/registry"
)

var (
	processStereoImpl     archregistry.ProcessStereoFn
	processStereoInitOnce sync.Once
)

func initProcessStereoKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no stereo kernel registered (missing generic fallback?)")
	}

	if entry.ProcessStereo == nil {
		panic("biquad: selected kernel missing ProcessStereo")
	}

	processStereoImpl = entry.ProcessStereo
}

func processStereo(c Coefficients, left, right []float64, sl, sr State) (State, State) {
	processStereoInitOnce.Do(initProcessStereoKernel)

	coeffs := archregistry.Coefficients{
		B0: c.B0,
		B1: c.B1,
		B2: c.B2,
		A1: c.A1,
		A2: c.A2,
	}

	nl, nr := processStereoImpl(coeffs, left, right,
		archregistry.State{Z1: sl.Z1, Z2: sl.Z2},
		archregistry.State{Z1: sr.Z1, Z2: sr.Z2})

	return State{Z1: nl.Z1, Z2: nl.Z2}, State{Z1: nr.Z1, Z2: nr.Z2}
}

// KernelName reports which block kernel the dispatcher selected.
func KernelName() string {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		return ""
	}

	return entry.Name
}
