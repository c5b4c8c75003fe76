package portfolio

import "testing"

func TestDiagnoseCorrelationHighlyCorrelatedPair(t *testing.T) {
	symbols := []string{"A", "B"}
	returns := [][]float64{
		{0.01, -0.02, 0.03, 0.01, -0.01, 0.02, -0.015, 0.025},
		{0.011, -0.019, 0.031, 0.009, -0.012, 0.021, -0.014, 0.024},
	}
	diag := DiagnoseCorrelation(symbols, returns, 0.70)
	if diag.MaxOffDiag < 0.9 {
		t.Fatalf("expected near-identical series to be highly correlated, got %v", diag.MaxOffDiag)
	}
	if diag.IsDiversified {
		t.Fatalf("expected IsDiversified false above tolerance")
	}
}

func TestDiagnoseCorrelationSingleAssetIsTriviallyDiversified(t *testing.T) {
	diag := DiagnoseCorrelation([]string{"A"}, [][]float64{{0.01, 0.02}}, 0.70)
	if !diag.IsDiversified {
		t.Fatalf("expected single-asset basket to be trivially diversified")
	}
}
