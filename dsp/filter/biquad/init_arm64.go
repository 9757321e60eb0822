//go:build arm64 && !purego

package biquad

import (
	_ "github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/colorfall/dsp/filter/biquad/internal/arch/unrolled" // register NEON-level unrolled backend
)
