package risk

import "github.com/ericfmiller/threshold-app-sub000/internal/numerics"

// CrashRegime classifies the momentum-crash probability.
type CrashRegime string

const (
	CrashNormal   CrashRegime = "NORMAL"
	CrashCaution  CrashRegime = "CAUTION"
	CrashHighRisk CrashRegime = "HIGH_RISK"
)

// MomentumCrashConfig carries the lookback window, variance threshold,
// and minimum momentum weight floor.
type MomentumCrashConfig struct {
	VarianceWindow    int     // default 126
	VarianceThreshold float64 // default 0.01
	MinWeight         float64 // default 0.25
}

// DefaultMomentumCrashConfig returns spec's default momentum-crash
// parameters.
func DefaultMomentumCrashConfig() MomentumCrashConfig {
	return MomentumCrashConfig{VarianceWindow: 126, VarianceThreshold: 0.01, MinWeight: 0.25}
}

// MomentumCrashResult is the readout of the crash-protection overlay.
type MomentumCrashResult struct {
	IsBear         bool
	CrashProb      float64
	MomentumWeight float64
	Regime         CrashRegime
}

// MomentumCrash implements Daniel-Moskowitz momentum-crash protection:
// bear-market detection over the trailing 24 months of dailyReturns,
// WML-variance-scaled crash probability (falling back to market variance
// when wmlReturns is unavailable), and a momentum weight floor.
func MomentumCrash(dailyReturns, wmlReturns []float64, cfg MomentumCrashConfig) MomentumCrashResult {
	isBear := cumulativeReturn(trailingMonths(dailyReturns, 24)) < 0

	varianceSource := wmlReturns
	if len(varianceSource) == 0 {
		varianceSource = dailyReturns
	}
	window := trailingN(varianceSource, cfg.VarianceWindow)
	variance := numerics.SampleVariance(window)

	if !isBear {
		return MomentumCrashResult{IsBear: false, CrashProb: 0.05, MomentumWeight: 1.0, Regime: classifyCrash(0.05)}
	}

	ratio := variance / cfg.VarianceThreshold
	if ratio > 1 {
		ratio = 1
	}
	crashProb := 0.20 + 0.60*ratio
	if crashProb > 0.95 {
		crashProb = 0.95
	}
	momentumWeight := 1 - 0.75*crashProb
	if momentumWeight < cfg.MinWeight {
		momentumWeight = cfg.MinWeight
	}
	return MomentumCrashResult{IsBear: true, CrashProb: crashProb, MomentumWeight: momentumWeight, Regime: classifyCrash(crashProb)}
}

func classifyCrash(prob float64) CrashRegime {
	switch {
	case prob >= 0.50:
		return CrashHighRisk
	case prob >= 0.20:
		return CrashCaution
	default:
		return CrashNormal
	}
}

// trailingMonths approximates a 24-month window at ~21 trading days per
// month.
func trailingMonths(daily []float64, months int) []float64 {
	return trailingN(daily, months*21)
}

func trailingN(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}

// cumulativeReturn compounds a series of simple period returns.
func cumulativeReturn(rets []float64) float64 {
	total := 1.0
	for _, r := range rets {
		total *= 1 + r
	}
	return total - 1
}
