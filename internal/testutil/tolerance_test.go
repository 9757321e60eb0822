package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-12, 2}, 1e-9)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestRMSDiff(t *testing.T) {
	d, err := RMSDiff([]float64{1, 1}, []float64{0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-1) > 1e-15 {
		t.Fatalf("RMSDiff = %v, want 1", d)
	}
	if _, err := RMSDiff([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
