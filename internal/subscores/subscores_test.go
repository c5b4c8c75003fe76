package subscores

import (
	"math"
	"testing"

	"github.com/ericfmiller/threshold-app-sub000/internal/numerics"
	"github.com/ericfmiller/threshold-app-sub000/internal/ratings"
)

func TestTrendScoreFourCells(t *testing.T) {
	cases := []struct {
		sma50, sma200, close float64
		want                 float64
	}{
		{110, 100, 120, 1.0},
		{110, 100, 90, 0.5},
		{90, 100, 110, 0.4},
		{90, 100, 80, 0.1},
	}
	for _, c := range cases {
		if got := TrendScore(c.sma50, c.sma200, c.close); got != c.want {
			t.Errorf("TrendScore(%v,%v,%v)=%v want %v", c.sma50, c.sma200, c.close, got, c.want)
		}
	}
}

func TestMomentumQualityInBounds(t *testing.T) {
	in := MomentumInputs{
		SMA50: 110, SMA200: 100, Close: 120,
		Raw12to1: 0.30, AnnualizedVol: 0.20,
		MomentumGrade:      ratings.GradeA,
		BenchmarkAvailable: true, TickerReturn12to1: 0.30, BenchmarkReturn12to1: 0.15,
	}
	res := MomentumQuality(in, DefaultMomentumWeights())
	if res.Score < 0 || res.Score > 1 {
		t.Fatalf("MQ out of bounds: %v", res.Score)
	}
}

func TestFundamentalQualitySchemeSelection(t *testing.T) {
	w := DefaultFQWeights()
	base := FundamentalQuality(FQInputs{
		QuantNorm: 0.8, ProfitabilityGrade: ratings.GradeA, RevisionsGrade: ratings.GradeBPlus, GrowthGrade: ratings.GradeB,
	}, w)
	if base < 0 || base > 1 {
		t.Fatalf("base FQ out of bounds: %v", base)
	}

	withYFRM := FundamentalQuality(FQInputs{
		QuantNorm: 0.8, ProfitabilityGrade: ratings.GradeA, RevisionsGrade: ratings.GradeBPlus, GrowthGrade: ratings.GradeB,
		YFAvailable: true, GrossProfitabilityPctl: 0.9, FCFYieldPctl: 0.7,
		RMAvailable: true, RevisionMomentum: 0.6,
	}, w)
	if withYFRM < 0 || withYFRM > 1 {
		t.Fatalf("yf+rm FQ out of bounds: %v", withYFRM)
	}
}

func TestTechnicalOversoldBounds(t *testing.T) {
	score := TechnicalOversold(TOInputs{
		RSI14: 25, PctFrom200D: -0.15, BBPctB: 0.1,
		MACDCrossover: numerics.CrossoverBullish, MACDBelowZero: true, MACDHistRising: true,
	}, DefaultTOWeights())
	if score < 0.7 {
		t.Fatalf("expected strongly oversold score, got %v", score)
	}
}

func TestVIXCurveMonotone(t *testing.T) {
	prev := VIXCurve(0, 40)
	for _, v := range []float64{10, 14, 18, 20, 25, 28, 35, 50} {
		cur := VIXCurve(v, 40)
		if cur < prev-1e-9 {
			t.Fatalf("VIX curve not monotone at %v: %v < %v", v, cur, prev)
		}
		prev = cur
	}
}

func TestMarketRegimeWithAndWithoutBreadth(t *testing.T) {
	w := DefaultMRWeights()
	breadth := 0.7
	withBreadth := MarketRegime(10, true, &breadth, w, 40)
	withoutBreadth := MarketRegime(10, true, nil, w, 40)
	if withBreadth < 0 || withBreadth > 1 || withoutBreadth < 0 || withoutBreadth > 1 {
		t.Fatalf("MR out of bounds: %v %v", withBreadth, withoutBreadth)
	}
}

func TestValuationContextBlend(t *testing.T) {
	saOnly := ValuationContext(ratings.GradeBPlus, false, 0.9, DefaultVCWeights())
	blended := ValuationContext(ratings.GradeBPlus, true, 0.9, DefaultVCWeights())
	if math.Abs(saOnly-ratings.GradeBPlus.Normalized()) > 1e-9 {
		t.Fatalf("expected pure SA normalization without yf, got %v", saOnly)
	}
	if blended == saOnly {
		t.Fatalf("expected yf blend to change the score")
	}
}

func TestRevisionMomentumRequiresFourSnapshots(t *testing.T) {
	res := RevisionMomentum("AAA", nil)
	if res.Available {
		t.Fatalf("expected unavailable with no history")
	}
}
