// Package numerics implements the low-level technical indicators (L0) that
// every sub-score calculator builds on: RSI, MACD, OBV divergence, Bollinger
// bands, Yang-Zhang volatility, percentile rank, Mahalanobis distance and
// drawdown series. Every function is pure and tolerates short series by
// returning the documented sentinel rather than failing.
package numerics

// RSIResult carries both the full Wilder RSI series and the last scalar.
type RSIResult struct {
	Series []float64
	Last   float64
}

// RSI computes Wilder's Relative Strength Index over period days (default
// 14 per spec). Average gain/loss are exponentially smoothed with alpha =
// 1/period starting at bar `period`. Series entries before that point are
// NaN-sentinel-mapped to 50.0 (neutral), never NaN.
func RSI(closes []float64, period int) RSIResult {
	n := len(closes)
	out := make([]float64, n)
	for i := range out {
		out[i] = 50.0
	}
	if period <= 0 || n <= period {
		return RSIResult{Series: out, Last: 50.0}
	}

	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	// Seed with simple average over the first `period` diffs.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiFromAverages(avgGain, avgLoss)

	alpha := 1.0 / float64(period)
	for i := period + 1; i < n; i++ {
		avgGain = avgGain*(1-alpha) + gains[i]*alpha
		avgLoss = avgLoss*(1-alpha) + losses[i]*alpha
		out[i] = rsiFromAverages(avgGain, avgLoss)
	}

	return RSIResult{Series: out, Last: out[n-1]}
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
