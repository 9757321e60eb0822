package dynamics

import "github.com/cwbudde/colorfall/dsp/core"

// minLevel is the linear level of core.MinDB.
const minLevel = 1e-12

// FactorToDB converts a linear gain factor to dB using the package math
// backend. The result is floored at core.MinDB.
func FactorToDB(factor float64) float64 {
	if !(factor > minLevel) {
		return core.MinDB
	}
	return 20 * mathLog10(factor)
}

// DBToFactor converts dB to a linear gain factor using the package math
// backend.
func DBToFactor(db float64) float64 {
	return mathPower10(db / 20)
}

// GainComputer is a soft-knee downward compressor curve.
//
// Below ThresholdDB - KneeDB/2 no gain reduction is applied. Above
// ThresholdDB + KneeDB/2 the reduction is (ThresholdDB - in)*(1 - 1/Ratio).
// Inside the knee the two regions are joined by a quadratic.
type GainComputer struct {
	ThresholdDB float64
	Ratio       float64
	KneeDB      float64
}

// GainReductionDB returns the gain change in dB (<= 0) for a detector level
// given as a linear amplitude.
func (g GainComputer) GainReductionDB(level float64) float64 {
	return g.gainReductionFromDB(FactorToDB(level))
}

func (g GainComputer) gainReductionFromDB(inputDB float64) float64 {
	ratio := g.Ratio
	if !(ratio >= 1) {
		ratio = 1
	}
	slope := 1 - 1/ratio

	knee := g.KneeDB
	if !(knee > 0) {
		knee = 0
	}

	lower := g.ThresholdDB - knee/2
	upper := g.ThresholdDB + knee/2

	var gr float64
	switch {
	case inputDB <= lower:
		gr = 0
	case inputDB > upper || knee == 0:
		gr = (g.ThresholdDB - inputDB) * slope
	default:
		x := inputDB - lower
		gr = -slope * x * x / (2 * knee)
	}

	return min(gr, 0)
}

// Gain returns the linear gain factor in (0, 1] for level.
func (g GainComputer) Gain(level float64) float64 {
	return DBToFactor(g.GainReductionDB(level))
}
