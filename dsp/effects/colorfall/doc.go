// Package colorfall implements a multiband dynamics, saturation and
// reactive-EQ engine with automatic loudness matching.
//
// The signal path of one block is:
//
//  1. a five-band complementary crossover whose cutoffs shift with Tilt,
//  2. per-band stereo compression with Amount/Tilt-derived thresholds,
//     ratios, knees and time constants, followed by cubic saturation,
//  3. a serial cascade of five peaking filters whose gains are recomputed
//     every sample from the gain reduction each band is applying,
//  4. a loudness correction that matches the wet signal power to the dry
//     signal power measured one block earlier,
//  5. a constant-power dry/wet mix and an output trim.
//
// [Engine.ProcessBlock] does not allocate or lock. The gain-reduction meter
// is published through an atomic value that other goroutines may read via
// [Engine.Meter].
//
//	eng, _ := colorfall.New(colorfall.WithSampleRate(48000))
//	p := colorfall.DefaultParams()
//	p.Amount = 0.6
//	grDB, err := eng.ProcessBlock(left, right, p)
package colorfall
