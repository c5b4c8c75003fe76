package risk

import "github.com/ericfmiller/threshold-app-sub000/internal/numerics"

// TurbulenceRegime classifies a turbulence percentile.
type TurbulenceRegime string

const (
	TurbulenceCalm      TurbulenceRegime = "CALM"
	TurbulenceElevated  TurbulenceRegime = "ELEVATED"
	TurbulenceTurbulent TurbulenceRegime = "TURBULENT"
)

// TurbulenceConfig carries the rolling window, ridge epsilon, elevated
// percentile threshold, and minimum asset count.
type TurbulenceConfig struct {
	Window           int     // default 252
	RidgeEpsilon     float64 // default 1e-8
	ElevatedPctl     float64 // default 0.75
	TurbulentPctl    float64 // default 0.90
	MinAssets        int     // default 3
}

// DefaultTurbulenceConfig returns spec's default turbulence parameters.
func DefaultTurbulenceConfig() TurbulenceConfig {
	return TurbulenceConfig{Window: 252, RidgeEpsilon: 1e-8, ElevatedPctl: 0.75, TurbulentPctl: 0.90, MinAssets: 3}
}

// TurbulenceResult is the readout for a single observation day.
type TurbulenceResult struct {
	Index      float64
	Percentile float64
	Regime     TurbulenceRegime
}

// TurbulenceIndex computes the Mahalanobis turbulence index for every day
// past cfg.Window, using each day's preceding window of observations for
// its own mean/covariance. returns is asset-major: returns[asset][t].
// Requires at least cfg.MinAssets assets; otherwise returns nil.
func TurbulenceIndex(returns [][]float64, cfg TurbulenceConfig) []TurbulenceResult {
	if len(returns) < cfg.MinAssets || len(returns) == 0 {
		return nil
	}
	k := len(returns)
	obs := len(returns[0])
	if obs <= cfg.Window {
		return nil
	}

	raw := make([]float64, 0, obs-cfg.Window)
	for t := cfg.Window; t < obs; t++ {
		windowed := make([][]float64, k)
		for a := 0; a < k; a++ {
			windowed[a] = returns[a][t-cfg.Window : t]
		}
		mu := make([]float64, k)
		for a := range windowed {
			mu[a] = numerics.Mean(windowed[a])
		}
		cov := numerics.Ridge(numerics.Covariance(windowed), cfg.RidgeEpsilon)
		covInv, err := numerics.Inverse(cov)
		if err != nil {
			raw = append(raw, 0)
			continue
		}
		x := make([]float64, k)
		for a := 0; a < k; a++ {
			x[a] = returns[a][t]
		}
		raw = append(raw, numerics.Mahalanobis(x, mu, covInv))
	}

	out := make([]TurbulenceResult, len(raw))
	for i, d := range raw {
		pctl := numerics.PercentileRank(raw, d)
		out[i] = TurbulenceResult{Index: d, Percentile: pctl, Regime: classifyTurbulence(pctl, cfg)}
	}
	return out
}

func classifyTurbulence(pctl float64, cfg TurbulenceConfig) TurbulenceRegime {
	switch {
	case pctl >= cfg.TurbulentPctl:
		return TurbulenceTurbulent
	case pctl >= cfg.ElevatedPctl:
		return TurbulenceElevated
	default:
		return TurbulenceCalm
	}
}
