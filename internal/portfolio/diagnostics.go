package portfolio

import "github.com/ericfmiller/threshold-app-sub000/internal/numerics"

// CorrelationDiagnostic is an optional, read-only view onto HRP's
// intermediate correlation structure: the off-diagonal correlations
// between every pair of symbols and the largest magnitude found. It does
// not feed back into HRPWeights; it exists purely so an operator can
// sanity-check how diversified a basket actually is.
type CorrelationDiagnostic struct {
	Matrix      map[string]map[string]float64
	MaxOffDiag  float64
	IsDiversified bool // true when MaxOffDiag is at or below the tolerance passed in
}

// DiagnoseCorrelation computes CorrelationDiagnostic for a basket of
// symbols, given the same trailing-return inputs HRPWeights consumes.
// tolerance is the maximum acceptable pairwise correlation magnitude; a
// typical value is 0.70 (spec's portfolio diversification guidance).
func DiagnoseCorrelation(symbols []string, returns [][]float64, tolerance float64) CorrelationDiagnostic {
	n := len(symbols)
	matrix := make(map[string]map[string]float64, n)
	maxOffDiag := 0.0
	if n < 2 {
		return CorrelationDiagnostic{Matrix: matrix, MaxOffDiag: 0, IsDiversified: true}
	}

	cov := numerics.Covariance(returns)
	corr := correlationFromCovariance(cov)

	for i, a := range symbols {
		matrix[a] = make(map[string]float64, n)
		for j, b := range symbols {
			matrix[a][b] = corr[i][j]
			if i != j {
				abs := corr[i][j]
				if abs < 0 {
					abs = -abs
				}
				if abs > maxOffDiag {
					maxOffDiag = abs
				}
			}
		}
	}

	return CorrelationDiagnostic{Matrix: matrix, MaxOffDiag: maxOffDiag, IsDiversified: maxOffDiag <= tolerance}
}
