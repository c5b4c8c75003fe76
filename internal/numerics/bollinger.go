package numerics

import "math"

// BollingerResult is the Bollinger-band readout for the most recent bar.
type BollingerResult struct {
	Lower       float64
	Upper       float64
	Middle      float64
	PctB        float64 // (close - lower) / (upper - lower)
	LowerBreach bool    // close < lower
}

// BollingerLowerBreach computes an n-period (default 20), k-sigma (default
// 2) Bollinger band off the trailing window and reports whether the last
// close has breached the lower band. Series shorter than n return a
// degenerate band centered on the last close with PctB = 0.5.
func BollingerLowerBreach(closes []float64, n int, k float64) BollingerResult {
	ln := len(closes)
	if n <= 0 || ln < n {
		last := 0.0
		if ln > 0 {
			last = closes[ln-1]
		}
		return BollingerResult{Lower: last, Upper: last, Middle: last, PctB: 0.5}
	}

	window := closes[ln-n:]
	mean := Mean(window)
	sd := StdDev(window, mean)

	lower := mean - k*sd
	upper := mean + k*sd
	close := closes[ln-1]

	pctB := 0.5
	if upper > lower {
		pctB = (close - lower) / (upper - lower)
	}

	return BollingerResult{
		Lower:       lower,
		Upper:       upper,
		Middle:      mean,
		PctB:        pctB,
		LowerBreach: close < lower,
	}
}

// Mean is the arithmetic mean; returns 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev is the population standard deviation about the supplied mean.
func StdDev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(xs)))
}
