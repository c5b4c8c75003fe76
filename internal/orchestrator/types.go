// Package orchestrator implements L7: score_ticker, which sequences
// L0-L4 for a single ticker and packages an immutable ScoringResult.
package orchestrator

import (
	"github.com/ericfmiller/threshold-app-sub000/internal/composite"
	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
	"github.com/ericfmiller/threshold-app-sub000/internal/runctx"
	"github.com/ericfmiller/threshold-app-sub000/internal/signals"
	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

// Technicals bundles every derived readout retained on the result,
// beyond the five sub-scores themselves.
type Technicals struct {
	RSI14       float64
	PctFrom200D float64
	Ret8w       float64

	MACDLine      float64
	MACDSignal    float64
	MACDHist      float64
	MACDCrossover numerics.Crossover

	OBVTrend      numerics.SlopeTrend
	OBVDivergence numerics.Divergence
	OBVStrength   float64

	BBPctB        float64
	BBLowerBreach bool

	RSIBullDiv         bool
	BottomTurning      bool
	QuantFreshnessWarn bool
	ReversalConfirmed  bool

	VolAdjMom   *float64
	RSVsSPY     *float64
}

// FallingKnifeCap is the falling-knife cap readout retained on the
// result when the cap actually fired.
type FallingKnifeCap struct {
	CapApplied  bool
	OriginalDCS float64
	CapValue    float64
}

// DrawdownDefense is the D-5 modifier readout retained on the result
// whenever a defense classification was available for the ticker.
type DrawdownDefense struct {
	Classification  composite.DefenseClass
	DownsideCapture float64
	ModifierApplied float64
}

// Result is the immutable per-ticker scoring output. It exclusively owns
// SignalBoard; nothing else holds a reference back into it.
type Result struct {
	Ticker string

	DCS       float64
	DCSSignal composite.Signal

	SubScores  subscores.Scores
	Technicals Technicals

	TrendScore      float64
	DaysBelowSMA3Pct int

	SignalBoard *signals.Board

	QuantDeterioration *float64
	RevisionMomentum   *subscores.RevisionMomentumResult
	YFFundamentals     *runctx.Fundamentals
	DrawdownDefenseRes *DrawdownDefense
	FallingKnife       *FallingKnifeCap
}

// SellFlags renders the SignalBoard's legacy flag strings, the stable
// "<prefix> <message>" contract older consumers parse.
func (r Result) SellFlags() []string {
	if r.SignalBoard == nil {
		return nil
	}
	return r.SignalBoard.ToLegacyFlags()
}
