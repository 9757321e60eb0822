package design

import (
	"math"
	"testing"

	"github.com/cwbudde/colorfall/dsp/filter/biquad"
	"github.com/cwbudde/colorfall/internal/testutil"
)

const sr = 48000.0

func TestLinkwitzRileyLowpassShape(t *testing.T) {
	for _, f := range []float64{150, 800, 4000, 9000} {
		c := LinkwitzRileyLowpass(f, sr)
		if db := c.MagnitudeDB(20, sr); math.Abs(db) > 0.05 {
			t.Fatalf("f=%v: passband gain at 20 Hz = %v dB", f, db)
		}
		if db := c.MagnitudeDB(f, sr); math.Abs(db+3.0103) > 0.01 {
			t.Fatalf("f=%v: gain at cutoff = %v dB, want -3.01", f, db)
		}
		if !c.IsStable() {
			t.Fatalf("f=%v: unstable section %+v", f, c)
		}
	}
}

func TestLowpassUnityDCGain(t *testing.T) {
	c := LinkwitzRileyLowpass(1000, sr)
	dc := (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	if math.Abs(dc-1) > 1e-12 {
		t.Fatalf("DC gain = %v, want 1", dc)
	}
}

func TestPeakGainAtCenter(t *testing.T) {
	tests := []struct {
		gainDB, q float64
	}{
		{6, 0.7},
		{-6, 0.7},
		{3, 4},
		{0.5, 20},
	}
	for _, tt := range tests {
		c := Peak(2000, tt.gainDB, tt.q, sr)
		got := c.MagnitudeDB(2000, sr)
		if math.Abs(got-tt.gainDB) > 1e-3 {
			t.Fatalf("gain=%v q=%v: center gain = %v dB", tt.gainDB, tt.q, got)
		}
		if far := c.MagnitudeDB(20, sr); math.Abs(far) > 0.1 {
			t.Fatalf("gain=%v q=%v: gain far from center = %v dB", tt.gainDB, tt.q, far)
		}
	}
}

func TestPeakZeroGainIsNearIdentity(t *testing.T) {
	c := Peak(1000, 0, 2, sr)
	for _, f := range []float64{50, 1000, 15000} {
		if db := c.MagnitudeDB(f, sr); math.Abs(db) > 1e-6 {
			t.Fatalf("0 dB peak at %v Hz = %v dB", f, db)
		}
	}
}

func TestPeakDesignerMatchesPeak(t *testing.T) {
	d := NewPeakDesigner(3000, 1.3, sr)
	for _, g := range []float64{-12, -1, 0, 2.5, 6} {
		got := d.Coefficients(g)
		want := Peak(3000, g, 1.3, sr)
		if got != want {
			t.Fatalf("gain %v: designer %+v, Peak %+v", g, got, want)
		}
	}
}

func TestZeroDesignerIsIdentity(t *testing.T) {
	var d PeakDesigner
	if got := d.Coefficients(6); got != biquad.Identity() {
		t.Fatalf("zero designer = %+v, want identity", got)
	}
}

func TestClampFrequency(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 1000, 1000},
		{"zero", 0, MinFrequency},
		{"negative", -50, MinFrequency},
		{"nan", math.NaN(), MinFrequency},
		{"nyquist", 24000, 0.49 * sr},
		{"above nyquist", 30000, 0.49 * sr},
		{"just below nyquist", 23990, 0.49 * sr},
		{"inf", math.Inf(1), 0.49 * sr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampFrequency(tt.in, sr); got != tt.want {
				t.Fatalf("ClampFrequency(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInvalidSampleRateYieldsIdentity(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if c := LinkwitzRileyLowpass(1000, rate); c != biquad.Identity() {
			t.Fatalf("rate %v: lowpass %+v, want identity", rate, c)
		}
		if c := Peak(1000, 6, 1, rate); c != biquad.Identity() {
			t.Fatalf("rate %v: peak %+v, want identity", rate, c)
		}
	}
}

func TestExtremeSettingsStayStable(t *testing.T) {
	for _, rate := range []float64{22050, 44100, 48000, 96000, 192000} {
		for _, f := range []float64{-1, 0, 1, 20, 150, 9000, 0.49 * rate, rate} {
			if c := LinkwitzRileyLowpass(f, rate); !c.IsStable() {
				t.Fatalf("lowpass f=%v rate=%v unstable", f, rate)
			}
			for _, q := range []float64{0.5, 0.7, 8.7, 20} {
				for _, g := range []float64{0, 1.5, 6} {
					c := Peak(f, g, q, rate)
					if !c.IsStable() {
						t.Fatalf("peak f=%v q=%v g=%v rate=%v unstable", f, q, g, rate)
					}
				}
			}
		}
	}
}

func TestSectionsFiniteOverLongNoise(t *testing.T) {
	if testing.Short() {
		t.Skip("long-run stability test")
	}

	const n = 1 << 20

	sets := map[string]biquad.Coefficients{
		"lr-150":      LinkwitzRileyLowpass(150, sr),
		"lr-9000":     LinkwitzRileyLowpass(9000, sr),
		"peak-q20-6":  Peak(40, 6, 20, sr),
		"peak-q0.5-6": Peak(20000, 6, 0.5, sr),
	}

	for name, c := range sets {
		t.Run(name, func(t *testing.T) {
			left := testutil.DeterministicNoise(21, 1, n)
			right := testutil.DeterministicNoise(22, 1, n)
			s := biquad.NewStereo(c)
			s.ProcessBlock(left, right)
			testutil.RequireFinite(t, left)
			testutil.RequireFinite(t, right)
		})
	}
}

func TestPeakDesignerZeroGainIsNearIdentity(t *testing.T) {
	d := NewPeakDesigner(1000, 1, sr)
	c := d.Coefficients(0)
	for _, f := range []float64{20, 1000, 20000} {
		if db := c.MagnitudeDB(f, sr); math.Abs(db) > 1e-6 {
			t.Fatalf("0 dB designer section at %v Hz = %v dB", f, db)
		}
	}
}
