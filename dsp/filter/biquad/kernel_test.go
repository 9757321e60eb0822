package biquad

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	archregistry "github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/colorfall/internal/testutil"
)

func resetProcessStereoDispatchForTest() {
	processStereoImpl = nil
	processStereoInitOnce = sync.Once{}
}

func TestRegisteredKernelsMatchReference(t *testing.T) {
	entries := archregistry.Global.ListEntries()
	if len(entries) == 0 {
		t.Fatal("no kernels registered")
	}

	c := archregistry.Coefficients(traced)

	for _, entry := range entries {
		t.Run(entry.Name, func(t *testing.T) {
			for _, n := range []int{1, 2, 3, 255, 1024} {
				left := testutil.DeterministicNoise(11, 1, n)
				right := testutil.DeterministicNoise(12, 1, n)
				wantL, wantR := testutil.Clone(left), testutil.Clone(right)

				ref := NewStereo(traced)
				ref.SetState(State{Z1: 0.1, Z2: -0.05}, State{Z1: -0.2, Z2: 0.03})
				for i := range wantL {
					wantL[i], wantR[i] = ref.ProcessSample(wantL[i], wantR[i])
				}

				sl, sr := entry.ProcessStereo(c, left, right,
					archregistry.State{Z1: 0.1, Z2: -0.05},
					archregistry.State{Z1: -0.2, Z2: 0.03})

				testutil.RequireSliceNearlyEqual(t, left, wantL, 1e-13)
				testutil.RequireSliceNearlyEqual(t, right, wantR, 1e-13)

				refL, refR := ref.State()
				if State(sl) != refL || State(sr) != refR {
					t.Fatalf("n=%d: state %v/%v, want %v/%v", n, sl, sr, refL, refR)
				}
			}
		})
	}
}

func TestForcedGenericDispatch(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	defer cpu.ResetDetection()

	resetProcessStereoDispatchForTest()
	defer resetProcessStereoDispatchForTest()

	if got := KernelName(); got != "generic" {
		t.Fatalf("KernelName() = %q, want generic", got)
	}

	left := []float64{1, 0, 0, 0}
	right := []float64{0, 0, 0, 0}
	s := NewStereo(traced)
	s.ProcessBlock(left, right)

	testutil.RequireSliceNearlyEqual(t, left, []float64{0.25, 0.55, 0.35, 0.048}, eps)
}

func TestKernelNameNotEmpty(t *testing.T) {
	if KernelName() == "" {
		t.Fatal("no kernel selected for this CPU")
	}
}
