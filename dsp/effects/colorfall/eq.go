package colorfall

import (
	"math"

	"github.com/cwbudde/colorfall/dsp/effects/dynamics"
	"github.com/cwbudde/colorfall/dsp/filter/biquad"
	"github.com/cwbudde/colorfall/dsp/filter/design"
	"github.com/cwbudde/colorfall/dsp/macro"
)

// reactiveEQ is the serial cascade of peaking filters, one per band. Center
// frequency and Q are fixed per block; the gain of each filter follows the
// gain reduction its band applies on the current sample.
type reactiveEQ struct {
	sampleRate float64
	designers  [macro.NumBands]design.PeakDesigner
	filters    [macro.NumBands]biquad.Stereo
	lastGainDB [macro.NumBands]float64
	bandGRDB   [macro.NumBands]float64
}

func (q *reactiveEQ) setSampleRate(sampleRate float64) {
	q.sampleRate = sampleRate
	q.reset()
}

// configure hoists the per-block terms of every filter.
func (q *reactiveEQ) configure(s *macro.Settings) {
	for i := range q.designers {
		b := &s.Bands[i]
		q.designers[i] = design.NewPeakDesigner(b.Center, b.EQQ, q.sampleRate)
		q.lastGainDB[i] = math.NaN()
	}
}

// process runs the cascade over wetL/wetR in place. gainL and gainR hold
// each band's smoothed per-sample gain factors. It returns the sum over all
// samples of the per-sample total gain reduction in dB.
func (q *reactiveEQ) process(s *macro.Settings, wetL, wetR []float64,
	gainL, gainR *[macro.NumBands][]float64,
) float64 {
	total := 0.0

	for j := range wetL {
		l, r := wetL[j], wetR[j]
		sample := 0.0

		for i := range q.filters {
			grDB := 0.5 * (dynamics.FactorToDB(gainL[i][j]) + dynamics.FactorToDB(gainR[i][j]))
			q.bandGRDB[i] = grDB
			sample += grDB

			gainDB := s.EQGainDB(i, grDB)
			if gainDB != q.lastGainDB[i] {
				q.filters[i].SetCoefficients(q.designers[i].Coefficients(gainDB))
				q.lastGainDB[i] = gainDB
			}

			l, r = q.filters[i].ProcessSample(l, r)
		}

		wetL[j], wetR[j] = l, r
		total += sample
	}

	return total
}

func (q *reactiveEQ) reset() {
	for i := range q.filters {
		q.filters[i].Reset()
		q.lastGainDB[i] = math.NaN()
		q.bandGRDB[i] = 0
	}
}

func (q *reactiveEQ) flushDenormals() {
	for i := range q.filters {
		q.filters[i].FlushDenormals()
	}
}
