package colorfall

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/colorfall/dsp/param"
)

// powerFloor is the mean-square power below which a block counts as silent
// and the correction target falls back to unity.
const powerFloor = 1e-6

// loudnessMatcher tracks the dry and wet block powers and derives a
// smoothed correction gain from the previous block's measurements.
type loudnessMatcher struct {
	smoother *param.Smoother

	dryPower float64
	wetPower float64
}

func newLoudnessMatcher(timeMs, sampleRate float64) (*loudnessMatcher, error) {
	s, err := param.NewSmoother(param.Exponential, timeMs, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("colorfall: loudness smoother: %w", err)
	}

	m := &loudnessMatcher{smoother: s}
	m.reset()
	return m, nil
}

// target returns sqrt(dry/wet) from the last completed block.
func (m *loudnessMatcher) target() float64 {
	if m.dryPower <= powerFloor || m.wetPower <= powerFloor {
		return 1
	}
	return math.Sqrt(m.dryPower / m.wetPower)
}

// fill starts the block and writes the per-sample correction gains to ramp.
func (m *loudnessMatcher) fill(ramp []float64) {
	m.smoother.SetTarget(m.target())
	for i := range ramp {
		ramp[i] = m.smoother.Next()
	}
}

// measure records the block powers for the next block.
func (m *loudnessMatcher) measure(dryL, dryR, wetL, wetR []float64) {
	m.dryPower = meanSquare(dryL, dryR)
	m.wetPower = meanSquare(wetL, wetR)
}

func (m *loudnessMatcher) correction() float64 { return m.smoother.Current() }

func (m *loudnessMatcher) reset() {
	m.smoother.Reset(1)
	m.dryPower = 0
	m.wetPower = 0
}

// meanSquare returns the stereo mean-square power (l^2 + r^2)/2 averaged
// over the block.
func meanSquare(left, right []float64) float64 {
	n := len(left)
	if n == 0 {
		return 0
	}
	sum := vecmath.DotProduct(left, left) + vecmath.DotProduct(right, right)
	return sum / float64(2*n)
}
