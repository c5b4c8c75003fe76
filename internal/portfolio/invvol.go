// Package portfolio implements L6: inverse-volatility weighting,
// hierarchical risk parity, HIFO tax-lot selection, and the tax-loss
// harvester. Every operation here is a stand-alone numerical function
// over multi-asset returns or tax lots; none depend on the scoring path.
package portfolio

import (
	"math"

	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
)

const volFloor = 1e-6

// InverseVolConfig carries the lookback window, risk-aversion exponent,
// and minimum-history requirement.
type InverseVolConfig struct {
	Window     int     // default 252
	Eta        float64 // default 1.0
	MinPeriods int     // default 20
}

// DefaultInverseVolConfig returns spec's default inverse-vol parameters.
func DefaultInverseVolConfig() InverseVolConfig {
	return InverseVolConfig{Window: 252, Eta: 1.0, MinPeriods: 20}
}

// InverseVolWeights computes per-asset annualized volatility over the
// trailing window and weights each asset proportionally to (1/σ²)^η,
// normalized to sum to 1. Assets with fewer than MinPeriods observations
// are dropped entirely. Volatility is floored at 1e-6 to avoid a
// division blowup on a near-constant return series.
func InverseVolWeights(symbols []string, returns [][]float64, cfg InverseVolConfig) map[string]float64 {
	type kept struct {
		symbol string
		score  float64
	}
	var keptAssets []kept

	for i, r := range returns {
		if len(r) < cfg.MinPeriods {
			continue
		}
		window := r
		if len(window) > cfg.Window {
			window = window[len(window)-cfg.Window:]
		}
		sigma := annualizedStdDev(window)
		if sigma < volFloor {
			sigma = volFloor
		}
		score := math.Pow(1/(sigma*sigma), cfg.Eta)
		keptAssets = append(keptAssets, kept{symbol: symbols[i], score: score})
	}

	total := 0.0
	for _, k := range keptAssets {
		total += k.score
	}

	weights := make(map[string]float64, len(keptAssets))
	if total <= 0 {
		return weights
	}
	for _, k := range keptAssets {
		weights[k.symbol] = k.score / total
	}
	return weights
}

func annualizedStdDev(rets []float64) float64 {
	return math.Sqrt(numerics.SampleVariance(rets) * 252.0)
}
