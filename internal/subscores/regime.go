package subscores

import "github.com/ericfmiller/threshold-app-sub000/internal/numerics"

// MRWeights are the inner weights for Market Regime, split depending on
// whether a breadth reading is available.
type MRWeights struct {
	VIXWithBreadth    float64
	SPYWithBreadth    float64
	BreadthWeight     float64
	VIXWithoutBreadth float64
	SPYWithoutBreadth float64
}

// DefaultMRWeights returns spec's defaults: with breadth 0.50/0.30/0.20;
// without breadth 0.60/0.40.
func DefaultMRWeights() MRWeights {
	return MRWeights{
		VIXWithBreadth: 0.50, SPYWithBreadth: 0.30, BreadthWeight: 0.20,
		VIXWithoutBreadth: 0.60, SPYWithoutBreadth: 0.40,
	}
}

// VIXCurve is the contrarian VIX component: 0.2 below 14, linear 0.2->0.5
// on [14,20), linear 0.5->0.75 on [20,28), linear 0.75->1.0 on [28,vCap)
// and 1.0 at or beyond vCap (default 40).
func VIXCurve(vix, vCap float64) float64 {
	switch {
	case vix < 14:
		return 0.2
	case vix < 20:
		return lerp(vix, 14, 20, 0.2, 0.5)
	case vix < 28:
		return lerp(vix, 20, 28, 0.5, 0.75)
	case vix < vCap:
		return lerp(vix, 28, vCap, 0.75, 1.0)
	default:
		return 1.0
	}
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

// MarketRegime computes the MR sub-score in [0,1] from the VIX level,
// whether SPY trades above its 200-day SMA, and an optional breadth
// ratio. This is computed once per run (it is ticker-independent) and
// cached on ScoringContext; it is still exposed as a pure function so the
// calculation itself is directly testable.
func MarketRegime(vix float64, spyAbove200D bool, breadth *float64, w MRWeights, vixCap float64) float64 {
	vixScore := VIXCurve(vix, vixCap)
	spyScore := 0.4
	if spyAbove200D {
		spyScore = 1.0
	}

	if breadth != nil {
		b := numerics.Clip(*breadth, 0, 1)
		return numerics.Clip(w.VIXWithBreadth*vixScore+w.SPYWithBreadth*spyScore+w.BreadthWeight*b, 0, 1)
	}
	return numerics.Clip(w.VIXWithoutBreadth*vixScore+w.SPYWithoutBreadth*spyScore, 0, 1)
}
