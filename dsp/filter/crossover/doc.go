// Package crossover provides the five-band complementary crossover used by
// the multiband dynamics stage.
//
// Four stereo lowpass sections in Linkwitz-Riley alignment are processed from
// the highest cutoff down to the lowest. At each stage the signal entering
// the stage is lowpassed and the difference between the two becomes the
// upper-adjacent band. The last lowpass output is the bottom band. Because
// every high band is obtained by subtraction, summing the five bands
// reconstructs the input exactly up to rounding.
//
// All four cutoffs shift together with a tilt control in [-1, 1] spanning
// +-4 semitones:
//
//	bank, _ := crossover.New(48000)
//	bank.SetTilt(0.5)
//	bandsL, bandsR := bank.ProcessSample(l, r)
package crossover
