// Package subscores implements the five sub-score calculators (L1):
// Momentum Quality, Fundamental Quality, Technical Oversold, Market Regime
// and Valuation Context, plus the revision-momentum helper they and the
// composition layer share. Every exported function returns a value in
// [0,1] and never errors — missing inputs degrade to the documented
// neutral fallback.
package subscores

// TrendScore is the four-tier classifier on (SMA50 vs SMA200, close vs
// SMA200) shared by Momentum Quality and the falling-knife cap in L2.
func TrendScore(sma50, sma200, close float64) float64 {
	above50 := sma50 > sma200
	aboveClose := close > sma200
	switch {
	case above50 && aboveClose:
		return 1.0
	case above50 && !aboveClose:
		return 0.5
	case !above50 && aboveClose:
		return 0.4
	default:
		return 0.1
	}
}
