// Package runctx defines ScoringContext, the per-run shared-immutable
// context threaded through every score_ticker call in L7. It is
// constructed once per run and never mutated afterward.
package runctx

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ericfmiller/threshold-app-sub000/internal/composite"
	"github.com/ericfmiller/threshold-app-sub000/internal/series"
	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

// PrevScore is the prior run's quant score snapshot for a ticker, used
// for quant-deterioration detection.
type PrevScore struct {
	QuantScore *float64
	Date       time.Time
}

// Fundamentals carries the percentile-ranked fundamentals the valuation
// and fundamental-quality sub-scores read for a single ticker.
type Fundamentals struct {
	FCFYieldPctl            *float64
	GrossProfitabilityPctl  *float64
	EVToEBITDAPctl          *float64
}

// DrawdownClassification is the defense-aware downside-capture label the
// falling-knife cap and D-5 modifier key off of.
type DrawdownClassification struct {
	Class           composite.DefenseClass
	DownsideCapture float64
}

// AdvancedOverlays carries the off-by-default trend-following and
// sentiment overlay inputs; nil/zero fields leave DCS unchanged.
type AdvancedOverlays struct {
	TrendFollowingEnabled bool
	TrendFollowingScore   float64 // blended into MQ at mq_blend_weight when enabled

	SentimentOverlayEnabled bool
	SentimentOverheated     bool
	SentimentMRReduction    float64 // fraction MR is scaled down by when overheated
}

// ScoringContext is the read-only, per-run context shared across every
// ticker scored in that run. Nothing in the core mutates it once
// constructed.
type ScoringContext struct {
	RunID uuid.UUID

	MarketRegimeScore float64
	VixRegime         composite.VixRegime
	SPYClose          *series.PriceSeries

	// GradeHistory is ordered newest-first, one entry per rating snapshot
	// across all tickers.
	GradeHistory []subscores.GradeSnapshot

	PrevScores              map[string]PrevScore
	YFFundamentals          map[string]Fundamentals
	DrawdownClassifications map[string]DrawdownClassification

	Advanced AdvancedOverlays

	// Logger receives Debug/Warn-level notices for sentinel fallbacks
	// (insufficient history, stale quant data, falling-knife cap engaged).
	// The zero value from New is zerolog.Nop(): silent by default, matching
	// the library's rule that only orchestration logs, never L0 numerics.
	Logger zerolog.Logger
}

// New constructs a ScoringContext carrying the caller-supplied
// run-correlation id.
// RunID exists purely for log correlation; it never feeds computation.
func New(marketRegimeScore float64, vixRegime composite.VixRegime, runID uuid.UUID) ScoringContext {
	return ScoringContext{
		RunID:                   runID,
		MarketRegimeScore:       marketRegimeScore,
		VixRegime:               vixRegime,
		PrevScores:              map[string]PrevScore{},
		YFFundamentals:          map[string]Fundamentals{},
		DrawdownClassifications: map[string]DrawdownClassification{},
		Logger:                  zerolog.Nop(),
	}
}
