package risk

import "github.com/ericfmiller/threshold-app-sub000/internal/numerics"

// EBPRegime classifies an excess-bond-premium level.
type EBPRegime string

const (
	EBPAccommodative EBPRegime = "ACCOMMODATIVE"
	EBPNormal        EBPRegime = "NORMAL"
	EBPElevated      EBPRegime = "ELEVATED"
	EBPHighRisk      EBPRegime = "HIGH_RISK"
)

// EBPTrend is the 3-month directional reading.
type EBPTrend string

const (
	EBPTrendRising  EBPTrend = "rising"
	EBPTrendFalling EBPTrend = "falling"
	EBPTrendStable  EBPTrend = "stable"
)

// trendDeadband is the ±0.05 band within which the 3-month change is
// reported stable rather than rising/falling.
const trendDeadband = 0.05

// EBPResult is the readout of the monitor for the most recent level.
type EBPResult struct {
	Regime     EBPRegime
	Trend      EBPTrend
	Percentile float64
}

// EBPMonitor classifies the most recent EBP level, compares it against
// its value 3 months (63 trading days) earlier for the trend, and ranks
// it against the full loaded history.
func EBPMonitor(history []float64) EBPResult {
	if len(history) == 0 {
		return EBPResult{Regime: EBPAccommodative, Trend: EBPTrendStable, Percentile: 0.5}
	}
	latest := history[len(history)-1]

	trend := EBPTrendStable
	const threeMonthDays = 63
	if len(history) > threeMonthDays {
		prior := history[len(history)-1-threeMonthDays]
		delta := latest - prior
		switch {
		case delta > trendDeadband:
			trend = EBPTrendRising
		case delta < -trendDeadband:
			trend = EBPTrendFalling
		}
	}

	return EBPResult{
		Regime:     classifyEBP(latest),
		Trend:      trend,
		Percentile: numerics.PercentileRank(history, latest),
	}
}

func classifyEBP(level float64) EBPRegime {
	switch {
	case level >= 1.00:
		return EBPHighRisk
	case level >= 0.50:
		return EBPElevated
	case level >= 0:
		return EBPNormal
	default:
		return EBPAccommodative
	}
}
