package numerics

import "math"

// Matrix is a small dense row-major matrix. None of the spec's L5/L6
// operations need more than a few dozen assets, so a hand-rolled
// Gauss-Jordan inverse is sufficient; no linear-algebra library appears
// anywhere in the retrieval pack for this to be grounded on.
type Matrix [][]float64

// Covariance computes the sample covariance matrix of a set of asset
// return series (rows are assets, columns are observations).
func Covariance(returns [][]float64) Matrix {
	k := len(returns)
	cov := make(Matrix, k)
	for i := range cov {
		cov[i] = make([]float64, k)
	}
	if k == 0 {
		return cov
	}
	means := make([]float64, k)
	for i, r := range returns {
		means[i] = Mean(r)
	}
	n := len(returns[0])
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			var sum float64
			for t := 0; t < n; t++ {
				sum += (returns[i][t] - means[i]) * (returns[j][t] - means[j])
			}
			v := 0.0
			if n > 1 {
				v = sum / float64(n-1)
			}
			cov[i][j] = v
			cov[j][i] = v
		}
	}
	return cov
}

// Ridge adds eps to every diagonal element, regularizing a covariance
// matrix before inversion.
func Ridge(m Matrix, eps float64) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
		out[i][i] += eps
	}
	return out
}

// Inverse computes the matrix inverse via Gauss-Jordan elimination with
// partial pivoting. Callers are expected to Ridge() near-singular
// covariance matrices first, per spec's eps=1e-8 convention.
func Inverse(m Matrix) (Matrix, error) {
	n := len(m)
	aug := make(Matrix, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i], m[i])
		aug[i][n+i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := col
		maxVal := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if math.Abs(aug[r][col]) > maxVal {
				pivot = r
				maxVal = math.Abs(aug[r][col])
			}
		}
		if maxVal < 1e-12 {
			return nil, errSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for c := 0; c < 2*n; c++ {
			aug[col][c] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 2*n; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	inv := make(Matrix, n)
	for i := 0; i < n; i++ {
		inv[i] = aug[i][n:]
	}
	return inv, nil
}

var errSingular = &singularError{}

type singularError struct{}

func (e *singularError) Error() string { return "numerics: matrix is singular" }

// Mahalanobis computes the squared Mahalanobis distance (x-mu)' Sigma^-1
// (x-mu) given the already-inverted, ridge-regularized covariance.
func Mahalanobis(x, mu []float64, covInv Matrix) float64 {
	n := len(x)
	diff := make([]float64, n)
	for i := range diff {
		diff[i] = x[i] - mu[i]
	}
	var tmp float64
	for i := 0; i < n; i++ {
		var rowSum float64
		for j := 0; j < n; j++ {
			rowSum += covInv[i][j] * diff[j]
		}
		tmp += diff[i] * rowSum
	}
	return tmp
}
