package portfolio

import (
	"sort"
	"time"
)

// defaultLongTermDays is the default long-term holding threshold (spec:
// ≥366 days).
const defaultLongTermDays = 366

// Lot is one open tax lot for a symbol.
type Lot struct {
	Symbol        string
	Shares        float64
	CostBasis     float64 // total cost for this lot, not per-share
	AcquiredDate  time.Time
}

func (l Lot) costBasisPerShare() float64 {
	if l.Shares == 0 {
		return 0
	}
	return l.CostBasis / l.Shares
}

// HIFOSelection is the readout of selecting lots to fill a sell quantity
// under Highest-In-First-Out ordering.
type HIFOSelection struct {
	TotalShares     float64
	TotalCostBasis  float64
	EstimatedGain   float64
	HoldingPeriods  []string // "short_term" or "long_term", one per lot consumed
}

// SelectHIFO sorts open lots by cost-basis-per-share descending and peels
// shares from the top until quantity is filled (or lots are exhausted).
// asOf is the sale date used to classify each consumed lot's holding
// period against longTermDays (0 uses the 366-day default).
func SelectHIFO(lots []Lot, quantity float64, salePrice float64, asOf time.Time, longTermDays int) HIFOSelection {
	if longTermDays <= 0 {
		longTermDays = defaultLongTermDays
	}
	sorted := append([]Lot(nil), lots...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].costBasisPerShare() > sorted[j].costBasisPerShare()
	})

	var result HIFOSelection
	remaining := quantity
	for _, lot := range sorted {
		if remaining <= 0 {
			break
		}
		take := lot.Shares
		if take > remaining {
			take = remaining
		}
		costBasis := take * lot.costBasisPerShare()

		result.TotalShares += take
		result.TotalCostBasis += costBasis
		result.EstimatedGain += take*salePrice - costBasis

		held := asOf.Sub(lot.AcquiredDate).Hours() / 24
		if held >= float64(longTermDays) {
			result.HoldingPeriods = append(result.HoldingPeriods, "long_term")
		} else {
			result.HoldingPeriods = append(result.HoldingPeriods, "short_term")
		}
		remaining -= take
	}
	return result
}
