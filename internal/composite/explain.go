package composite

import (
	"fmt"

	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

// Contribution is one sub-score's weighted points contribution to DCS.
type Contribution struct {
	Name   string
	Weight float64
	Value  float64 // sub-score in [0,1]
	Points float64 // Weight * Value
}

// Explanation is a serializable breakdown of how a DCS was composed, for
// operator visibility. Pure presentation of already-computed values; it
// never recomputes or alters DCS.
type Explanation struct {
	Ticker        string
	DCS           float64
	Signal        Signal
	Contributions []Contribution
	Reasons       []string
}

// Explain builds an Explanation from a composed DCS and the inputs that
// produced it. Callers pass the already-computed dcs (post-modifiers) so
// the explanation reflects what was actually returned to the caller.
func Explain(ticker string, s subscores.Scores, w Weights, dcs float64) Explanation {
	contributions := []Contribution{
		{Name: "MQ", Weight: w.MQ, Value: s.MQ, Points: w.MQ * s.MQ},
		{Name: "FQ", Weight: w.FQ, Value: s.FQ, Points: w.FQ * s.FQ},
		{Name: "TO", Weight: w.TO, Value: s.TO, Points: w.TO * s.TO},
		{Name: "MR", Weight: w.MR, Value: s.MR, Points: w.MR * s.MR},
		{Name: "VC", Weight: w.VC, Value: s.VC, Points: w.VC * s.VC},
	}

	var reasons []string
	for _, c := range contributions {
		reasons = append(reasons, fmt.Sprintf("%s contributed %.1f points (weight %.0f x value %.2f)", c.Name, c.Points, c.Weight, c.Value))
	}
	signal := ClassifyDCS(dcs)
	reasons = append(reasons, fmt.Sprintf("final DCS %.1f classifies as %s", dcs, signal))

	return Explanation{Ticker: ticker, DCS: dcs, Signal: signal, Contributions: contributions, Reasons: reasons}
}

// WeightSummary renders a one-line operator-facing summary of the active
// DCS weight allocation.
func (w Weights) WeightSummary() string {
	return fmt.Sprintf("MQ=%.0f FQ=%.0f TO=%.0f MR=%.0f VC=%.0f", w.MQ, w.FQ, w.TO, w.MR, w.VC)
}
