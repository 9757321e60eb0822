package colorfall

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/colorfall/dsp/param"
)

const (
	// MeterMinDB is the bottom of the gain reduction display range.
	MeterMinDB = -24.0

	// MeterMaxDB is the top of the gain reduction display range.
	MeterMaxDB = 0.0
)

// MeterRange is the display range of the meter.
var MeterRange = param.Range{Min: MeterMinDB, Max: MeterMaxDB, Default: MeterMaxDB}

// Meter is a float64 shared between the audio goroutine, which stores once
// per block, and any reader. The zero value reads 0.
type Meter struct {
	bits atomic.Uint64
}

// Load returns the last published gain reduction in dB.
func (m *Meter) Load() float64 {
	return math.Float64frombits(m.bits.Load())
}

// Store publishes v.
func (m *Meter) Store(v float64) {
	m.bits.Store(math.Float64bits(v))
}

// Normalized returns the published value as a display position in [0, 1],
// where 0 is MeterMinDB and 1 is no gain reduction.
func (m *Meter) Normalized() float64 {
	return MeterRange.Normalize(m.Load())
}
