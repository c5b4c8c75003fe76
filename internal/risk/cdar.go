package risk

import (
	"fmt"
	"sort"

	"github.com/ericfmiller/threshold-app-sub000/internal/coreerr"
	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
)

// CDaRCalculator computes Conditional Drawdown at Risk from a wealth
// curve. Validate runs at construction.
type CDaRCalculator struct {
	Alpha float64
}

// NewCDaRCalculator validates alpha ∈ (0, 1).
func NewCDaRCalculator(alpha float64) (CDaRCalculator, error) {
	c := CDaRCalculator{Alpha: alpha}
	if alpha <= 0 || alpha >= 1 {
		return c, fmt.Errorf("%w: CDaR alpha %.4f must be in (0, 1)", coreerr.ErrInvalidConfiguration, alpha)
	}
	return c, nil
}

// CDaRResult carries DaR and CDaR alongside the series max drawdown so
// callers can check max_dd ≥ CDaR ≥ DaR ≥ 0 directly.
type CDaRResult struct {
	DaR     float64
	CDaR    float64
	MaxDD   float64
}

// Compute derives the drawdown series from wealth, takes the alpha
// percentile of drawdowns as DaR, and averages every drawdown at or
// above DaR into CDaR.
func (c CDaRCalculator) Compute(wealth []float64) CDaRResult {
	dd := numerics.DrawdownSeries(wealth)
	if len(dd) == 0 {
		return CDaRResult{}
	}
	sorted := append([]float64(nil), dd...)
	sort.Float64s(sorted)

	idx := int(c.Alpha * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	dar := sorted[idx]

	var sum float64
	var count int
	for _, d := range dd {
		if d >= dar {
			sum += d
			count++
		}
	}
	cdar := dar
	if count > 0 {
		cdar = sum / float64(count)
	}
	maxDD := sorted[len(sorted)-1]
	return CDaRResult{DaR: dar, CDaR: cdar, MaxDD: maxDD}
}
