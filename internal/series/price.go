// Package series holds the bounded daily price/volume history each ticker
// is scored against.
package series

import (
	"fmt"
	"time"
)

// Bar is one daily OHLCV observation. Open, High, Low and Volume are
// optional: Yang-Zhang volatility degrades to a close-only fallback when
// open/high/low are zero, and OBV stays flat when volume is zero.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries is an immutable, date-ordered sequence of daily bars for one
// ticker. Once constructed it is read-only for the lifetime of a scoring
// run.
type PriceSeries struct {
	symbol string
	bars   []Bar
}

// NewPriceSeries validates and wraps bars into a PriceSeries. Dates must be
// strictly increasing and every Close must be positive.
func NewPriceSeries(symbol string, bars []Bar) (PriceSeries, error) {
	for i, b := range bars {
		if b.Close <= 0 {
			return PriceSeries{}, fmt.Errorf("series: bar %d close %.4f must be > 0", i, b.Close)
		}
		if i > 0 && !bars[i-1].Date.Before(b.Date) {
			return PriceSeries{}, fmt.Errorf("series: bar %d date %s does not strictly follow %s", i, b.Date, bars[i-1].Date)
		}
	}
	cp := make([]Bar, len(bars))
	copy(cp, bars)
	return PriceSeries{symbol: symbol, bars: cp}, nil
}

// Symbol returns the ticker this series belongs to.
func (p PriceSeries) Symbol() string { return p.symbol }

// Len returns the number of bars.
func (p PriceSeries) Len() int { return len(p.bars) }

// Bars returns the underlying bar slice. Callers must not mutate it; it is
// shared, not copied, for read performance.
func (p PriceSeries) Bars() []Bar { return p.bars }

// Closes returns the close price column.
func (p PriceSeries) Closes() []float64 {
	out := make([]float64, len(p.bars))
	for i, b := range p.bars {
		out[i] = b.Close
	}
	return out
}

// Volumes returns the volume column.
func (p PriceSeries) Volumes() []float64 {
	out := make([]float64, len(p.bars))
	for i, b := range p.bars {
		out[i] = b.Volume
	}
	return out
}

// HasOHLC reports whether every bar carries usable open/high/low data. The
// Yang-Zhang estimator does not call it; it checks its own window.
func (p PriceSeries) HasOHLC() bool {
	if len(p.bars) == 0 {
		return false
	}
	for _, b := range p.bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 {
			return false
		}
	}
	return true
}

// Last returns the most recent bar and true, or the zero Bar and false when
// the series is empty.
func (p PriceSeries) Last() (Bar, bool) {
	if len(p.bars) == 0 {
		return Bar{}, false
	}
	return p.bars[len(p.bars)-1], true
}

// Tail returns the last n bars (or all bars when the series is shorter).
func (p PriceSeries) Tail(n int) []Bar {
	if n <= 0 || len(p.bars) == 0 {
		return nil
	}
	if n > len(p.bars) {
		n = len(p.bars)
	}
	return p.bars[len(p.bars)-n:]
}
