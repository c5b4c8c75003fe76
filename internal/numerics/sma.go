package numerics

// SMA computes the simple moving average series over period n. Bars before
// the window fills repeat the first available average rather than emitting
// a ragged/undefined prefix.
func SMA(closes []float64, n int) []float64 {
	out := make([]float64, len(closes))
	if n <= 0 || len(closes) == 0 {
		return out
	}
	if len(closes) < n {
		avg := Mean(closes)
		for i := range out {
			out[i] = avg
		}
		return out
	}

	var windowSum float64
	for i := 0; i < n; i++ {
		windowSum += closes[i]
	}
	first := windowSum / float64(n)
	for i := 0; i < n; i++ {
		out[i] = first
	}
	for i := n; i < len(closes); i++ {
		windowSum += closes[i] - closes[i-n]
		out[i] = windowSum / float64(n)
	}
	return out
}

// SMALast returns SMA(closes, n) evaluated at the final bar only.
func SMALast(closes []float64, n int) float64 {
	s := SMA(closes, n)
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// ConsecutiveDaysBelowSMA scans backward from the last bar counting bars
// where (close-SMA)/SMA < threshold (default -0.03) until the streak
// breaks, per spec's "consecutive days below SMA_200" definition.
func ConsecutiveDaysBelowSMA(closes []float64, smaPeriod int, threshold float64) int {
	sma := SMA(closes, smaPeriod)
	count := 0
	for i := len(closes) - 1; i >= 0; i-- {
		if sma[i] <= 0 {
			break
		}
		pct := (closes[i] - sma[i]) / sma[i]
		if pct < threshold {
			count++
		} else {
			break
		}
	}
	return count
}

// PriceAcceleration computes ret_8w = close/close[-40]-1 (8 weeks of daily
// bars) and the acceleration: the average of the four most recent weekly
// returns minus the average of the four prior weekly returns. Weekly
// returns are 5-trading-day returns. Returns zero acceleration and
// ret8w=0 when history is insufficient (fewer than 41 bars).
func PriceAcceleration(closes []float64) (ret8w, acceleration float64) {
	n := len(closes)
	if n < 41 {
		return 0, 0
	}
	ret8w = closes[n-1]/closes[n-41] - 1

	weeklyReturn := func(endOffset int) float64 {
		end := n - 1 - endOffset
		start := end - 5
		if start < 0 || closes[start] == 0 {
			return 0
		}
		return closes[end]/closes[start] - 1
	}

	var recent, prior float64
	for w := 0; w < 4; w++ {
		recent += weeklyReturn(w * 5)
	}
	recent /= 4
	for w := 4; w < 8; w++ {
		prior += weeklyReturn(w * 5)
	}
	prior /= 4

	acceleration = recent - prior
	return ret8w, acceleration
}
