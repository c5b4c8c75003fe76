package risk

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ericfmiller/threshold-app-sub000/internal/coreerr"
)

func TestNewCVaRCalculatorValidatesAlpha(t *testing.T) {
	if _, err := NewCVaRCalculator(0.4, CVaRHistorical); !errors.Is(err, coreerr.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for alpha below 0.5, got %v", err)
	}
	if _, err := NewCVaRCalculator(0.95, "bogus"); !errors.Is(err, coreerr.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for unknown method, got %v", err)
	}
	if _, err := NewCVaRCalculator(0.95, CVaRHistorical); err != nil {
		t.Fatalf("expected valid config to succeed, got %v", err)
	}
}

func TestCVaRHistoricalInvariant(t *testing.T) {
	calc, err := NewCVaRCalculator(0.95, CVaRHistorical)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	returns := make([]float64, 252)
	for i := range returns {
		returns[i] = rng.NormFloat64() * 0.01
	}
	res := calc.Compute(returns)
	if res.CVaR < res.VaR || res.VaR < 0 {
		t.Fatalf("expected CVaR >= VaR >= 0, got %+v", res)
	}
}

func TestCVaRInsufficientDataSentinel(t *testing.T) {
	calc, _ := NewCVaRCalculator(0.95, CVaRHistorical)
	res := calc.Compute([]float64{0.01, -0.02})
	if res != (CVaRResult{}) {
		t.Fatalf("expected zero-value sentinel, got %+v", res)
	}
}

func TestNewCDaRCalculatorValidatesAlpha(t *testing.T) {
	if _, err := NewCDaRCalculator(0); !errors.Is(err, coreerr.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for alpha=0")
	}
	if _, err := NewCDaRCalculator(1); !errors.Is(err, coreerr.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration for alpha=1")
	}
}

func TestCDaRInvariant(t *testing.T) {
	calc, err := NewCDaRCalculator(0.95)
	if err != nil {
		t.Fatal(err)
	}
	wealth := []float64{100, 105, 95, 90, 98, 80, 85, 70, 90, 100}
	res := calc.Compute(wealth)
	if !(res.MaxDD >= res.CDaR && res.CDaR >= res.DaR && res.DaR >= 0) {
		t.Fatalf("expected max_dd >= CDaR >= DaR >= 0, got %+v", res)
	}
}

func TestTurbulenceRequiresMinAssets(t *testing.T) {
	returns := [][]float64{make([]float64, 300), make([]float64, 300)}
	cfg := DefaultTurbulenceConfig()
	if got := TurbulenceIndex(returns, cfg); got != nil {
		t.Fatalf("expected nil with fewer than min_assets, got %v", got)
	}
}

func TestTurbulenceClassification(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cfg := TurbulenceConfig{Window: 60, RidgeEpsilon: 1e-6, ElevatedPctl: 0.75, TurbulentPctl: 0.90, MinAssets: 3}
	returns := make([][]float64, 4)
	for a := range returns {
		series := make([]float64, 200)
		for i := range series {
			series[i] = rng.NormFloat64() * 0.01
		}
		returns[a] = series
	}
	res := TurbulenceIndex(returns, cfg)
	if len(res) != 140 {
		t.Fatalf("expected 200-60=140 results, got %d", len(res))
	}
	for _, r := range res {
		if r.Percentile < 0 || r.Percentile > 1 {
			t.Fatalf("percentile out of bounds: %+v", r)
		}
	}
}

func TestMomentumCrashBullRegime(t *testing.T) {
	rets := make([]float64, 600)
	for i := range rets {
		rets[i] = 0.001
	}
	res := MomentumCrash(rets, nil, DefaultMomentumCrashConfig())
	if res.IsBear {
		t.Fatalf("expected bull regime for strictly positive returns")
	}
	if res.MomentumWeight != 1.0 || res.CrashProb != 0.05 {
		t.Fatalf("expected bull defaults, got %+v", res)
	}
}

func TestMomentumCrashBearRegime(t *testing.T) {
	rets := make([]float64, 600)
	for i := range rets {
		rets[i] = -0.002
	}
	res := MomentumCrash(rets, nil, DefaultMomentumCrashConfig())
	if !res.IsBear {
		t.Fatalf("expected bear regime for strictly negative returns")
	}
	if res.CrashProb > 0.95 || res.CrashProb < 0.20 {
		t.Fatalf("crash prob out of expected range: %v", res.CrashProb)
	}
	if res.MomentumWeight < DefaultMomentumCrashConfig().MinWeight {
		t.Fatalf("momentum weight below floor: %v", res.MomentumWeight)
	}
}

func TestEBPMonitorClassification(t *testing.T) {
	if got := EBPMonitor([]float64{}).Regime; got != EBPAccommodative {
		t.Fatalf("expected ACCOMMODATIVE for empty history, got %s", got)
	}
	history := append(make([]float64, 70), 1.2)
	res := EBPMonitor(history)
	if res.Regime != EBPHighRisk {
		t.Fatalf("expected HIGH_RISK at level 1.2, got %s", res.Regime)
	}
}

func TestEBPMonitorTrendDeadband(t *testing.T) {
	history := make([]float64, 64)
	for i := range history {
		history[i] = 0.5
	}
	history[63] = 0.52
	if got := EBPMonitor(history).Trend; got != EBPTrendStable {
		t.Fatalf("expected stable within deadband, got %s", got)
	}

	history[63] = 0.60
	if got := EBPMonitor(history).Trend; got != EBPTrendRising {
		t.Fatalf("expected rising beyond deadband, got %s", got)
	}
}
