//go:build (amd64 || arm64) && !purego

// Package unrolled registers a stereo biquad kernel that interleaves the left
// and right recurrences and unrolls two samples per iteration. The two
// channel chains are independent, so the CPU can overlap them.
package unrolled

import "github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/registry"

func processStereo(c registry.Coefficients, left, right []float64, sl, sr registry.State) (registry.State, registry.State) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	lz1, lz2 := sl.Z1, sl.Z2
	rz1, rz2 := sr.Z1, sr.Z2

	n := len(left)
	right = right[:n]

	i := 0
	for ; i+1 < n; i += 2 {
		xl0, xr0 := left[i], right[i]
		yl0 := b0*xl0 + lz1
		yr0 := b0*xr0 + rz1
		lz1n := b1*xl0 - a1*yl0 + lz2
		rz1n := b1*xr0 - a1*yr0 + rz2
		lz2n := b2*xl0 - a2*yl0
		rz2n := b2*xr0 - a2*yr0

		xl1, xr1 := left[i+1], right[i+1]
		yl1 := b0*xl1 + lz1n
		yr1 := b0*xr1 + rz1n
		lz1 = b1*xl1 - a1*yl1 + lz2n
		rz1 = b1*xr1 - a1*yr1 + rz2n
		lz2 = b2*xl1 - a2*yl1
		rz2 = b2*xr1 - a2*yr1

		left[i], right[i] = yl0, yr0
		left[i+1], right[i+1] = yl1, yr1
	}

	if i < n {
		xl, xr := left[i], right[i]
		yl := b0*xl + lz1
		yr := b0*xr + rz1
		lz1 = b1*xl - a1*yl + lz2
		rz1 = b1*xr - a1*yr + rz2
		lz2 = b2*xl - a2*yl
		rz2 = b2*xr - a2*yr
		left[i], right[i] = yl, yr
	}

	return registry.State{Z1: lz1, Z2: lz2}, registry.State{Z1: rz1, Z2: rz2}
}
