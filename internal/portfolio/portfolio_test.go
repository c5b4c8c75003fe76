package portfolio

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestInverseVolWeightsSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	symbols := []string{"A", "B", "C"}
	returns := make([][]float64, 3)
	for i := range returns {
		series := make([]float64, 260)
		for j := range series {
			series[j] = rng.NormFloat64() * (0.005 + 0.002*float64(i))
		}
		returns[i] = series
	}
	weights := InverseVolWeights(symbols, returns, DefaultInverseVolConfig())

	var total float64
	for _, w := range weights {
		if w <= 0 {
			t.Fatalf("expected all weights positive, got %v", weights)
		}
		total += w
	}
	if math.Abs(total-1) > 1e-6 {
		t.Fatalf("expected weights to sum to 1, got %v", total)
	}
}

func TestInverseVolDropsShortHistoryAssets(t *testing.T) {
	symbols := []string{"A", "B"}
	returns := [][]float64{make([]float64, 252), make([]float64, 5)}
	weights := InverseVolWeights(symbols, returns, DefaultInverseVolConfig())
	if _, ok := weights["B"]; ok {
		t.Fatalf("expected short-history asset dropped, got %v", weights)
	}
	if weights["A"] != 1.0 {
		t.Fatalf("expected sole surviving asset to take full weight, got %v", weights)
	}
}

func TestHRPWeightsSumToOneAndPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 6
	symbols := make([]string, n)
	returns := make([][]float64, n)
	for i := 0; i < n; i++ {
		symbols[i] = string(rune('A' + i))
		series := make([]float64, 120)
		for j := range series {
			series[j] = rng.NormFloat64()*0.01 + 0.0002*float64(i%3)
		}
		returns[i] = series
	}
	weights := HRPWeights(symbols, returns, DefaultHRPConfig())

	var total float64
	for _, w := range weights {
		if w <= 0 {
			t.Fatalf("expected all weights positive, got %v", weights)
		}
		if w >= 0.95 {
			t.Fatalf("expected no single weight >= 0.95 for well-conditioned inputs, got %v", w)
		}
		total += w
	}
	if math.Abs(total-1) > 1e-4 {
		t.Fatalf("expected weights to sum to 1, got %v", total)
	}
}

func TestHRPFallsBackToEqualWeightOnInsufficientHistory(t *testing.T) {
	symbols := []string{"A", "B"}
	returns := [][]float64{make([]float64, 10), make([]float64, 10)}
	weights := HRPWeights(symbols, returns, DefaultHRPConfig())
	if weights["A"] != 0.5 || weights["B"] != 0.5 {
		t.Fatalf("expected equal-weight fallback, got %v", weights)
	}
}

func TestSelectHIFOOrdersByCostBasisDescending(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	lots := []Lot{
		{Symbol: "X", Shares: 10, CostBasis: 1500, AcquiredDate: now.AddDate(-2, 0, 0)}, // 150/share, long-term
		{Symbol: "X", Shares: 10, CostBasis: 800, AcquiredDate: now.AddDate(0, -1, 0)},  // 80/share, short-term
	}
	res := SelectHIFO(lots, 12, 100, now, 0)
	if res.TotalShares != 12 {
		t.Fatalf("expected 12 shares filled, got %v", res.TotalShares)
	}
	// Highest cost basis (150/share) lot consumed first: 10 shares @150 + 2 @80
	wantBasis := 10*150.0 + 2*80.0
	if math.Abs(res.TotalCostBasis-wantBasis) > 1e-9 {
		t.Fatalf("expected cost basis %v, got %v", wantBasis, res.TotalCostBasis)
	}
	if len(res.HoldingPeriods) != 2 || res.HoldingPeriods[0] != "long_term" {
		t.Fatalf("expected first consumed lot long_term, got %v", res.HoldingPeriods)
	}
}

func TestHarvestLossesThresholdAndSort(t *testing.T) {
	sellDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	positions := []Position{
		{Symbol: "A", Shares: 10, Price: 8, CostBasis: 100},  // loss -20, ratio 0.20
		{Symbol: "B", Shares: 10, Price: 5, CostBasis: 100},  // loss -50, ratio 0.50
		{Symbol: "C", Shares: 10, Price: 11, CostBasis: 100}, // gain, excluded
	}
	candidates := HarvestLosses(positions, nil, sellDate, 0.10)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Symbol != "B" {
		t.Fatalf("expected largest loss first, got %s", candidates[0].Symbol)
	}
}

func TestHarvestLossesWashSaleBlocked(t *testing.T) {
	sellDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	positions := []Position{{Symbol: "A", Shares: 10, Price: 8, CostBasis: 100}}
	trades := []Trade{{Symbol: "A", Action: TradeBuy, Date: sellDate.AddDate(0, 0, -10)}}
	candidates := HarvestLosses(positions, trades, sellDate, 0.10)
	if len(candidates) != 1 || !candidates[0].WashSaleBlocked {
		t.Fatalf("expected wash-sale-blocked candidate, got %+v", candidates)
	}
}
