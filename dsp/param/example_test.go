package param_test

import (
	"fmt"

	"github.com/cwbudde/colorfall/dsp/param"
)

func ExampleSmoother() {
	s, _ := param.NewSmoother(param.Linear, 1, 4000)
	s.Reset(0)
	s.SetTarget(1)
	for range 4 {
		fmt.Printf("%.2f\n", s.Next())
	}
	// Output:
	// 0.25
	// 0.50
	// 0.75
	// 1.00
}
