package portfolio

import (
	"math"
	"sort"
	"time"
)

// washSaleWindowDays is the ±30 day window in which a buy/reinvest/
// transfer_in of the same symbol disallows a loss.
const washSaleWindowDays = 30

// Position is one open position considered for loss harvesting.
type Position struct {
	Symbol       string
	Shares       float64
	Price        float64
	CostBasis    float64
}

// TradeAction is a recent trade's side, used only to detect wash sales.
type TradeAction string

const (
	TradeBuy        TradeAction = "buy"
	TradeReinvest   TradeAction = "reinvest"
	TradeTransferIn TradeAction = "transfer_in"
	TradeSell       TradeAction = "sell"
)

// Trade is one recent trade, used to check for wash-sale-blocking
// repurchases near a harvest candidate's sell date.
type Trade struct {
	Symbol string
	Action TradeAction
	Date   time.Time
}

// HarvestCandidate is one position whose unrealized loss clears the
// harvesting threshold.
type HarvestCandidate struct {
	Symbol           string
	Loss             float64 // negative number (a loss)
	LossRatio        float64 // |loss| / cost_basis
	WashSaleBlocked  bool
}

// HarvestLosses evaluates every position's unrealized loss against
// threshold (fraction of cost basis), flags wash-sale blocking from
// recentTrades, and returns candidates sorted by descending absolute
// loss magnitude.
func HarvestLosses(positions []Position, recentTrades []Trade, sellDate time.Time, threshold float64) []HarvestCandidate {
	var out []HarvestCandidate
	for _, p := range positions {
		if p.CostBasis <= 0 {
			continue
		}
		loss := p.Shares*p.Price - p.CostBasis
		if loss >= 0 {
			continue
		}
		ratio := math.Abs(loss) / p.CostBasis
		if ratio < threshold {
			continue
		}
		out = append(out, HarvestCandidate{
			Symbol:          p.Symbol,
			Loss:            loss,
			LossRatio:       ratio,
			WashSaleBlocked: isWashSaleBlocked(p.Symbol, recentTrades, sellDate),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return math.Abs(out[i].Loss) > math.Abs(out[j].Loss)
	})
	return out
}

func isWashSaleBlocked(symbol string, trades []Trade, sellDate time.Time) bool {
	for _, t := range trades {
		if t.Symbol != symbol {
			continue
		}
		switch t.Action {
		case TradeBuy, TradeReinvest, TradeTransferIn:
		default:
			continue
		}
		daysApart := math.Abs(sellDate.Sub(t.Date).Hours() / 24)
		if daysApart <= washSaleWindowDays {
			return true
		}
	}
	return false
}
