package design_test

import (
	"fmt"

	"github.com/cwbudde/colorfall/dsp/filter/design"
)

func ExamplePeak() {
	c := design.Peak(1000, 6, 1, 48000)
	fmt.Printf("center: %.2f dB\n", c.MagnitudeDB(1000, 48000))
	// Output:
	// center: 6.00 dB
}

func ExamplePeakDesigner() {
	d := design.NewPeakDesigner(1000, 1, 48000)
	for _, g := range []float64{-6, 3, 6} {
		c := d.Coefficients(g)
		fmt.Printf("%.0f dB -> %.2f dB\n", g, c.MagnitudeDB(1000, 48000))
	}
	// Output:
	// -6 dB -> -6.00 dB
	// 3 dB -> 3.00 dB
	// 6 dB -> 6.00 dB
}
