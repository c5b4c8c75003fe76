package numerics

import (
	"math"

	"github.com/ericfmiller/threshold-app-sub000/internal/series"
)

const tradingDaysPerYear = 252.0

// YangZhangVolatility computes annualized Yang-Zhang volatility over the
// trailing n bars (default 60), combining the overnight log-return
// variance, the open-to-close log-return variance and the Rogers-Satchell
// intraday component with k = 0.34/(1+(n+1)/(n-1)). Falls back to
// annualized close-to-close volatility when OHLC data is unavailable or
// history is too short.
func YangZhangVolatility(bars []series.Bar, n int) float64 {
	if n < 2 || len(bars) < n+1 {
		return closeToCloseVol(bars, n)
	}
	window := bars[len(bars)-n:]
	for _, b := range window {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 {
			return closeToCloseVol(bars, n)
		}
	}
	prevClose := bars[len(bars)-n-1].Close
	if prevClose <= 0 {
		return closeToCloseVol(bars, n)
	}

	overnight := make([]float64, n)
	openClose := make([]float64, n)
	rs := make([]float64, n)

	prev := prevClose
	for i, b := range window {
		overnight[i] = math.Log(b.Open / prev)
		openClose[i] = math.Log(b.Close / b.Open)
		logHO := math.Log(b.High / b.Open)
		logLO := math.Log(b.Low / b.Open)
		logHC := math.Log(b.High / b.Close)
		logLC := math.Log(b.Low / b.Close)
		rs[i] = logHO*logHC + logLO*logLC
		prev = b.Close
	}

	varOvernight := SampleVariance(overnight)
	varOpenClose := SampleVariance(openClose)
	meanRS := Mean(rs)

	k := 0.34 / (1.0 + float64(n+1)/float64(n-1))
	dailyVar := varOvernight + k*varOpenClose + (1-k)*meanRS
	if dailyVar < 0 {
		dailyVar = 0
	}
	return math.Sqrt(dailyVar * tradingDaysPerYear)
}

// closeToCloseVol is the annualized close-to-close fallback volatility
// estimator used when OHLC data is absent.
func closeToCloseVol(bars []series.Bar, n int) float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	if n > 0 && len(closes) > n {
		closes = closes[len(closes)-n-1:]
	}
	if len(closes) < 2 {
		return 0
	}
	rets := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 {
			continue
		}
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	if len(rets) < 2 {
		return 0
	}
	return math.Sqrt(SampleVariance(rets) * tradingDaysPerYear)
}

// SampleVariance is the unbiased (n-1) sample variance; 0 for fewer than
// two observations.
func SampleVariance(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	mean := Mean(xs)
	var sumSq float64
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return sumSq / float64(n-1)
}
