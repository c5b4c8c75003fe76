package subscores

import (
	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
)

// FQWeights holds the four mutually exclusive weight schemes keyed on
// availability of yfinance-derived fundamentals (yf) and revision
// momentum (rm), per spec. Each scheme's weights must sum to 1.0.
type FQWeights struct {
	Base  FQScheme
	YF    FQScheme
	RM    FQScheme
	YFRM  FQScheme
}

// FQScheme is one weight assignment across the (up to six) FQ components.
type FQScheme struct {
	Quant               float64
	Profitability       float64
	Revisions           float64
	Growth              float64
	FCFYield            float64 // only used when YF available
	RevisionMomentum    float64 // only used when RM available
	ProfitabilitySABlend float64 // SA weight inside the profitability blend (rest goes to gross_profitability_pctl)
}

// DefaultFQWeights returns spec's base scheme (0.35/0.25/0.25/0.15) and
// config-overridable extensions for the yf/rm-augmented schemes.
func DefaultFQWeights() FQWeights {
	return FQWeights{
		Base: FQScheme{Quant: 0.35, Profitability: 0.25, Revisions: 0.25, Growth: 0.15},
		YF: FQScheme{
			Quant: 0.30, Profitability: 0.20, Revisions: 0.20, Growth: 0.10, FCFYield: 0.20,
			ProfitabilitySABlend: 0.60,
		},
		RM: FQScheme{
			Quant: 0.30, Profitability: 0.20, Revisions: 0.20, Growth: 0.10, RevisionMomentum: 0.20,
		},
		YFRM: FQScheme{
			Quant: 0.25, Profitability: 0.15, Revisions: 0.15, Growth: 0.10,
			FCFYield: 0.15, RevisionMomentum: 0.20, ProfitabilitySABlend: 0.60,
		},
	}
}

// FQInputs bundles the raw values Fundamental Quality needs.
type FQInputs struct {
	QuantNorm float64 // quant_score/5, already clipped to [0,1] by the caller

	ProfitabilityGrade ratings.Grade
	RevisionsGrade     ratings.Grade
	GrowthGrade        ratings.Grade

	YFAvailable            bool
	GrossProfitabilityPctl float64 // [0,1], meaningful only when YFAvailable
	FCFYieldPctl           float64 // [0,1], meaningful only when YFAvailable

	RMAvailable        bool
	RevisionMomentum   float64 // [0,1], meaningful only when RMAvailable
}

// FundamentalQuality computes the FQ sub-score in [0,1], selecting one of
// the four weight schemes by input availability.
func FundamentalQuality(in FQInputs, w FQWeights) float64 {
	scheme := w.Base
	switch {
	case in.YFAvailable && in.RMAvailable:
		scheme = w.YFRM
	case in.YFAvailable:
		scheme = w.YF
	case in.RMAvailable:
		scheme = w.RM
	}

	profitabilityNorm := in.ProfitabilityGrade.Normalized()
	if in.YFAvailable {
		profitabilityNorm = scheme.ProfitabilitySABlend*in.ProfitabilityGrade.Normalized() +
			(1-scheme.ProfitabilitySABlend)*in.GrossProfitabilityPctl
	}

	score := scheme.Quant*in.QuantNorm +
		scheme.Profitability*profitabilityNorm +
		scheme.Revisions*in.RevisionsGrade.Normalized() +
		scheme.Growth*in.GrowthGrade.Normalized()

	if in.YFAvailable {
		score += scheme.FCFYield * in.FCFYieldPctl
	}
	if in.RMAvailable {
		score += scheme.RevisionMomentum * in.RevisionMomentum
	}

	return numerics.Clip(score, 0, 1)
}
