package subscores

import (
	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
)

// VCWeights controls the optional yfinance blend; spec default is
// 0.65 SA / 0.35 (1 - ev/ebitda percentile).
type VCWeights struct {
	SAWeight float64
}

// DefaultVCWeights returns spec's default 0.65/0.35 split.
func DefaultVCWeights() VCWeights {
	return VCWeights{SAWeight: 0.65}
}

// ValuationContext computes the VC sub-score in [0,1]: the valuation
// letter grade normalized, optionally blended with an EV/EBITDA
// percentile from yfinance-derived fundamentals.
func ValuationContext(valuationGrade ratings.Grade, yfAvailable bool, evEBITDAPctl float64, w VCWeights) float64 {
	sa := valuationGrade.Normalized()
	if !yfAvailable {
		return sa
	}
	blended := w.SAWeight*sa + (1-w.SAWeight)*(1-numerics.Clip(evEBITDAPctl, 0, 1))
	return numerics.Clip(blended, 0, 1)
}
