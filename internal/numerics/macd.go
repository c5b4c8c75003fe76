package numerics

// Crossover classifies the most recent sign change of (MACD line - signal
// line) over the last three bars.
type Crossover string

const (
	CrossoverBullish Crossover = "bullish"
	CrossoverBearish Crossover = "bearish"
	CrossoverNeutral Crossover = "neutral"
)

// MACDResult is the full MACD readout.
type MACDResult struct {
	Line       []float64
	Signal     []float64
	Histogram  []float64
	Crossover  Crossover
	HistRising bool // hist[t] > hist[t-1]
	BelowZero  bool // MACD[t] < 0
}

// MACD computes MACD line = EMA(fast) - EMA(slow), signal = EMA(signal) of
// the line, and histogram = line - signal. Defaults: fast=12, slow=26,
// signal=9. Series shorter than slow+signal return an all-zero, neutral
// result rather than failing.
func MACD(closes []float64, fast, slow, signal int) MACDResult {
	n := len(closes)
	if n < slow+signal {
		return MACDResult{
			Line: make([]float64, n), Signal: make([]float64, n), Histogram: make([]float64, n),
			Crossover: CrossoverNeutral,
		}
	}

	emaFast := ema(closes, fast)
	emaSlow := ema(closes, slow)
	line := make([]float64, n)
	for i := range line {
		line[i] = emaFast[i] - emaSlow[i]
	}
	sig := ema(line, signal)
	hist := make([]float64, n)
	for i := range hist {
		hist[i] = line[i] - sig[i]
	}

	res := MACDResult{Line: line, Signal: sig, Histogram: hist}
	res.Crossover = detectCrossover(hist)
	res.HistRising = hist[n-1] > hist[n-2]
	res.BelowZero = line[n-1] < 0
	return res
}

// detectCrossover scans the last three histogram values for a sign change.
func detectCrossover(hist []float64) Crossover {
	n := len(hist)
	if n < 3 {
		return CrossoverNeutral
	}
	for i := n - 1; i >= n-2; i-- {
		prev, curr := hist[i-1], hist[i]
		if prev <= 0 && curr > 0 {
			return CrossoverBullish
		}
		if prev >= 0 && curr < 0 {
			return CrossoverBearish
		}
	}
	return CrossoverNeutral
}

// ema computes the exponential moving average with period `n`, seeded by a
// simple average of the first n values; entries before that are copies of
// the seed so the series has no undefined prefix.
func ema(values []float64, n int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if n <= 0 || len(values) < n {
		v := values[0]
		for i := range out {
			out[i] = v
		}
		return out
	}

	var seed float64
	for i := 0; i < n; i++ {
		seed += values[i]
	}
	seed /= float64(n)
	for i := 0; i < n; i++ {
		out[i] = seed
	}

	alpha := 2.0 / float64(n+1)
	prev := seed
	for i := n; i < len(values); i++ {
		prev = values[i]*alpha + prev*(1-alpha)
		out[i] = prev
	}
	return out
}
