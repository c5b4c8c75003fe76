package deployment

import "math"

// RiskRegime is the discrete classification of the aggregated composite.
type RiskRegime string

const (
	RiskNormal   RiskRegime = "NORMAL"
	RiskElevated RiskRegime = "ELEVATED"
	RiskHigh     RiskRegime = "HIGH_RISK"
)

// EBPRegime mirrors risk.EBPRegime without importing internal/risk, so the
// aggregator stays usable from contexts that only have the classified
// label, not the full risk package.
type EBPRegime string

const (
	EBPAccommodative EBPRegime = "ACCOMMODATIVE"
	EBPNormal        EBPRegime = "NORMAL"
	EBPElevated      EBPRegime = "ELEVATED"
	EBPHighRisk      EBPRegime = "HIGH_RISK"
)

// TurbulenceRegime mirrors risk.TurbulenceRegime.
type TurbulenceRegime string

const (
	TurbulenceCalm      TurbulenceRegime = "CALM"
	TurbulenceElevated  TurbulenceRegime = "ELEVATED"
	TurbulenceTurbulent TurbulenceRegime = "TURBULENT"
)

// EBPInput carries whichever of {regime} is available; missing maps to 0.
type EBPInput struct {
	Regime    EBPRegime
	HasRegime bool
}

// TurbulenceInput prefers a raw percentile over the coarse regime label.
type TurbulenceInput struct {
	Percentile    *float64
	Regime        TurbulenceRegime
	HasRegime     bool
}

// CrashInput prefers a raw crash probability over the coarse bear flag.
type CrashInput struct {
	CrashProbability *float64
	IsBear           bool
	HasBear          bool
}

// AggregatorWeights are the three composite weights; spec default
// {0.40, 0.30, 0.30}.
type AggregatorWeights struct {
	EBP    float64
	Turb   float64
	Crash  float64
}

// AggregatorConfig carries weights, regime thresholds, and penalties.
type AggregatorConfig struct {
	Weights            AggregatorWeights
	ElevatedThreshold  float64 // default 0.40
	HighRiskThreshold  float64 // default 0.70
	ElevatedPenalty    float64 // default 5
	HighRiskPenalty    float64 // default 10
}

// DefaultAggregatorConfig returns spec's default aggregator parameters.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		Weights:           AggregatorWeights{EBP: 0.40, Turb: 0.30, Crash: 0.30},
		ElevatedThreshold: 0.40,
		HighRiskThreshold: 0.70,
		ElevatedPenalty:   5,
		HighRiskPenalty:   10,
	}
}

// CompositeRisk is the aggregator's readout: a normalized composite score,
// its discrete regime, and the DCS penalty that regime carries.
type CompositeRisk struct {
	Composite float64
	Regime    RiskRegime
	Penalty   float64
}

func ebpScore(in EBPInput) float64 {
	if !in.HasRegime {
		return 0
	}
	switch in.Regime {
	case EBPAccommodative:
		return 0
	case EBPNormal:
		return 0.3
	case EBPElevated:
		return 0.6
	case EBPHighRisk:
		return 1
	default:
		return 0
	}
}

func turbulenceScore(in TurbulenceInput) float64 {
	if in.Percentile != nil {
		return numericsClip(*in.Percentile, 0, 1)
	}
	if !in.HasRegime {
		return 0
	}
	switch in.Regime {
	case TurbulenceCalm:
		return 0.1
	case TurbulenceElevated:
		return 0.6
	case TurbulenceTurbulent:
		return 0.9
	default:
		return 0
	}
}

func crashScore(in CrashInput) float64 {
	if in.CrashProbability != nil {
		return numericsClip(*in.CrashProbability, 0, 1)
	}
	if !in.HasBear {
		return 0
	}
	if in.IsBear {
		return 0.8
	}
	return 0.1
}

func numericsClip(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ComputeCompositeRisk normalizes the three independent L5 risk signals
// into [0,1], weights and clamps them into a composite, and classifies
// the result into a regime carrying a fixed DCS penalty.
//
// Calling with all three inputs absent (zero-value, Has*=false and nil
// percentiles/probabilities) yields NORMAL with penalty 0 — the
// aggregator's documented no-op baseline.
func ComputeCompositeRisk(ebp EBPInput, turb TurbulenceInput, crash CrashInput, cfg AggregatorConfig) CompositeRisk {
	e := ebpScore(ebp)
	t := turbulenceScore(turb)
	c := crashScore(crash)

	composite := numericsClip(cfg.Weights.EBP*e+cfg.Weights.Turb*t+cfg.Weights.Crash*c, 0, 1)

	var regime RiskRegime
	var penalty float64
	switch {
	case composite >= cfg.HighRiskThreshold:
		regime, penalty = RiskHigh, cfg.HighRiskPenalty
	case composite >= cfg.ElevatedThreshold:
		regime, penalty = RiskElevated, cfg.ElevatedPenalty
	default:
		regime, penalty = RiskNormal, 0
	}

	return CompositeRisk{Composite: composite, Regime: regime, Penalty: penalty}
}

// ApplyRiskOverlay subtracts the aggregator's penalty from dcs, clamped
// to [0,100].
func ApplyRiskOverlay(dcs float64, risk CompositeRisk) float64 {
	return numericsClip(dcs-risk.Penalty, 0, 100)
}
