// Package composite implements DCS composition (L2): the weighted sum of
// sub-scores, the ordered post-composition modifiers (OBV boost,
// RSI-divergence boost, falling-knife cap, drawdown-defense modifier), and
// the DCS/VIX classifiers.
package composite

import (
	"fmt"

	"github.com/ericfmiller/threshold-app-sub000/internal/coreerr"
	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

// Weights are the five top-level DCS weights. They must sum to 100
// (spec's contract); Validate checks this.
type Weights struct {
	MQ float64
	FQ float64
	TO float64
	MR float64
	VC float64
}

// DefaultWeights returns spec's defaults: MQ 30, FQ 25, TO 20, MR 15, VC 10.
func DefaultWeights() Weights {
	return Weights{MQ: 30, FQ: 25, TO: 20, MR: 15, VC: 10}
}

// Validate returns an error when the weights do not sum to 100. This is a
// contract violation (spec §7): callers must construct weights once at
// calculator-build time and treat a validation failure as unrecoverable
// for the affected run.
func (w Weights) Validate() error {
	sum := w.MQ + w.FQ + w.TO + w.MR + w.VC
	if sum < 99.999 || sum > 100.001 {
		return fmt.Errorf("composite: dcs weights sum to %.4f, want 100: %w", sum, coreerr.ErrInvalidConfiguration)
	}
	return nil
}

// ComposeDCS computes raw_dcs = sum_k w_k * subscore_k, already on the
// [0,100] scale. Callers must Validate() the weights beforehand; ComposeDCS
// itself never errors so it can sit on the per-ticker hot path.
func ComposeDCS(s subscores.Scores, w Weights) float64 {
	return w.MQ*s.MQ + w.FQ*s.FQ + w.TO*s.TO + w.MR*s.MR + w.VC*s.VC
}
