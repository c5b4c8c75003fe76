package subscores

import (
	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
)

// TOWeights are the inner weights for Technical Oversold; spec defaults are
// 0.35/0.25/0.25/0.15 and must sum to 1.0.
type TOWeights struct {
	RSI  float64
	SMA  float64
	BB   float64
	MACD float64
}

// DefaultTOWeights returns spec's defaults.
func DefaultTOWeights() TOWeights {
	return TOWeights{RSI: 0.35, SMA: 0.25, BB: 0.25, MACD: 0.15}
}

// TOInputs bundles the raw technical readouts Technical Oversold needs.
type TOInputs struct {
	RSI14        float64
	PctFrom200D  float64 // (close - SMA200) / SMA200
	BBPctB       float64
	MACDCrossover numerics.Crossover
	MACDBelowZero bool
	MACDHistRising bool
}

// TechnicalOversold computes the TO sub-score in [0,1].
func TechnicalOversold(in TOInputs, w TOWeights) float64 {
	rsiScore := numerics.Clip((70-in.RSI14)/40, 0, 1)
	smaDistScore := numerics.Clip((0.10-in.PctFrom200D)/0.30, 0, 1)
	bbScore := 1 - numerics.Clip(in.BBPctB, 0, 1)
	macdScore := macdLadder(in.MACDCrossover, in.MACDBelowZero, in.MACDHistRising)

	score := w.RSI*rsiScore + w.SMA*smaDistScore + w.BB*bbScore + w.MACD*macdScore
	return numerics.Clip(score, 0, 1)
}

// macdLadder is the five-tier ladder over (crossover, below_zero,
// hist_rising): strongest for a bullish crossover out of oversold
// (below zero, histogram turning up), weakest for a confirmed bearish
// crossover.
func macdLadder(crossover numerics.Crossover, belowZero, histRising bool) float64 {
	switch {
	case crossover == numerics.CrossoverBullish && belowZero && histRising:
		return 1.0
	case crossover == numerics.CrossoverBullish:
		return 0.75
	case belowZero && histRising:
		return 0.5
	case crossover == numerics.CrossoverBearish:
		return 0.0
	default:
		return 0.25
	}
}
