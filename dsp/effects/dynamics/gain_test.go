package dynamics

import (
	"math"
	"testing"

	"github.com/cwbudde/colorfall/dsp/core"
	"github.com/cwbudde/colorfall/dsp/macro"
)

func TestGainReductionRegions(t *testing.T) {
	g := GainComputer{ThresholdDB: -20, Ratio: 4, KneeDB: 8}

	tests := []struct {
		name    string
		inputDB float64
		want    float64
	}{
		{"below knee", -30, 0},
		{"knee start", -24, 0},
		{"knee middle", -20, -0.75 * 16 / 16},
		{"knee end", -16, -0.75 * 4},
		{"above knee", -10, -0.75 * 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := core.DBToLinear(tt.inputDB)
			got := g.GainReductionDB(level)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("GR(%v dB) = %v, want %v", tt.inputDB, got, tt.want)
			}
		})
	}
}

func TestGainReductionContinuousAtKneeEdges(t *testing.T) {
	g := GainComputer{ThresholdDB: -15, Ratio: 6, KneeDB: 5}
	for _, edge := range []float64{-17.5, -12.5} {
		lo := g.gainReductionFromDB(edge - 1e-9)
		hi := g.gainReductionFromDB(edge + 1e-9)
		if math.Abs(lo-hi) > 1e-6 {
			t.Fatalf("discontinuity at %v: %v vs %v", edge, lo, hi)
		}
	}
}

func TestHardKnee(t *testing.T) {
	g := GainComputer{ThresholdDB: -10, Ratio: 2, KneeDB: 0}
	if gr := g.gainReductionFromDB(-10); gr != 0 {
		t.Fatalf("GR at threshold = %v, want 0", gr)
	}
	if gr := g.gainReductionFromDB(0); math.Abs(gr+5) > 1e-12 {
		t.Fatalf("GR 10 dB over = %v, want -5", gr)
	}
}

func TestGainNeverExpands(t *testing.T) {
	for _, g := range []GainComputer{
		{ThresholdDB: -10, Ratio: 0.5, KneeDB: 4},
		{ThresholdDB: -10, Ratio: math.NaN(), KneeDB: -3},
	} {
		for _, db := range []float64{-60, -10, 0, 12} {
			if gr := g.gainReductionFromDB(db); gr > 0 || math.IsNaN(gr) {
				t.Fatalf("%+v at %v dB: GR %v", g, db, gr)
			}
		}
	}
}

func TestGainFactorInUnitInterval(t *testing.T) {
	m, err := macro.NewMapper(48000)
	if err != nil {
		t.Fatal(err)
	}

	levels := []float64{0, 1e-20, 1e-6, 1e-3, 0.1, 0.5, 1, 2, 10, 1e6}
	for a := 0; a <= 10; a++ {
		for tl := -10; tl <= 10; tl++ {
			s := m.Map(float64(a)/10, float64(tl)/10)
			for i, b := range s.Bands {
				g := GainComputer{ThresholdDB: b.ThresholdDB, Ratio: b.Ratio, KneeDB: b.KneeDB}
				for _, lvl := range levels {
					f := g.Gain(lvl)
					if !(f > 0 && f <= 1) {
						t.Fatalf("amount %v tilt %v band %d level %v: factor %v", s.Amount, s.Tilt, i, lvl, f)
					}
				}
			}
		}
	}
}

func TestFactorToDB(t *testing.T) {
	if got := FactorToDB(1); got != 0 {
		t.Fatalf("FactorToDB(1) = %v", got)
	}
	if got := FactorToDB(0.5); math.Abs(got+6.0206) > 1e-3 {
		t.Fatalf("FactorToDB(0.5) = %v", got)
	}
	for _, f := range []float64{0, -1, math.NaN(), 1e-300} {
		if got := FactorToDB(f); got != core.MinDB {
			t.Fatalf("FactorToDB(%v) = %v, want %v", f, got, core.MinDB)
		}
	}
	if got := DBToFactor(-20); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("DBToFactor(-20) = %v", got)
	}
}
