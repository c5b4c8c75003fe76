package subscores

import (
	"math"

	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
)

// MomentumWeights are the default, config-overridable inner weights for
// Momentum Quality. They must sum to 1.0.
type MomentumWeights struct {
	Trend           float64
	VolAdjMomentum  float64
	SAMomentumGrade float64
	RelativeStrength float64
}

// DefaultMomentumWeights returns spec's defaults: trend 0.30, vol-adjusted
// momentum 0.25, SA momentum grade 0.25, relative strength 0.20.
func DefaultMomentumWeights() MomentumWeights {
	return MomentumWeights{Trend: 0.30, VolAdjMomentum: 0.25, SAMomentumGrade: 0.25, RelativeStrength: 0.20}
}

// MomentumInputs bundles the raw values Momentum Quality needs.
type MomentumInputs struct {
	SMA50, SMA200, Close float64

	// Raw12to1 is close[-21]/close[-252]-1: the 12-1 month momentum.
	Raw12to1 float64
	// AnnualizedVol is the realized annualized volatility used to
	// risk-adjust Raw12to1; floored at 0.05 before dividing.
	AnnualizedVol float64

	MomentumGrade ratings.Grade

	// BenchmarkAvailable gates whether RelativeStrength uses the
	// benchmark ratio or the spec's 0.5 default.
	BenchmarkAvailable     bool
	TickerReturn12to1      float64
	BenchmarkReturn12to1   float64
}

// MomentumQualityResult carries the composite score and the intermediate
// trend score, since the falling-knife cap (L2) also needs trend.
type MomentumQualityResult struct {
	Score      float64
	TrendScore float64
	VolAdjMom  float64
	RSScore    float64
}

// MomentumQuality computes the MQ sub-score in [0,1].
func MomentumQuality(in MomentumInputs, w MomentumWeights) MomentumQualityResult {
	trend := TrendScore(in.SMA50, in.SMA200, in.Close)

	vol := math.Max(in.AnnualizedVol, 0.05)
	volAdjRaw := in.Raw12to1 / vol
	volAdjMom := numerics.Clip((volAdjRaw+0.5)/2.5, 0, 1)

	saMomentum := in.MomentumGrade.Normalized()

	rs := 0.5
	if in.BenchmarkAvailable && in.BenchmarkReturn12to1 != 0 {
		ratio := in.TickerReturn12to1 / in.BenchmarkReturn12to1
		rs = numerics.Clip((ratio-0.3)/1.4, 0, 1)
	}

	score := w.Trend*trend + w.VolAdjMomentum*volAdjMom + w.SAMomentumGrade*saMomentum + w.RelativeStrength*rs
	return MomentumQualityResult{
		Score:      numerics.Clip(score, 0, 1),
		TrendScore: trend,
		VolAdjMom:  volAdjMom,
		RSScore:    rs,
	}
}
