// Package deployment implements L4: the Gate 3 parabolic filter,
// exemption rules, and the independent-risk aggregator that folds L5
// detectors into an optional DCS penalty.
package deployment

import "time"

// Sizing is the deployable-position-sizing decision Gate 3 produces.
type Sizing string

const (
	SizingFull         Sizing = "FULL"
	SizingThreeQuarter Sizing = "THREE_QUARTER"
	SizingHalf         Sizing = "HALF"
	SizingWait         Sizing = "WAIT"
	SizingFail         Sizing = "FAIL"
)

// Gate3Config carries the parabolic-filter thresholds.
type Gate3Config struct {
	RSIMax      float64 // default 80
	Ret8wMax    float64 // default 0.30
	GoldSizing  Sizing  // default THREE_QUARTER
}

// DefaultGate3Config returns spec's default Gate 3 parameters.
func DefaultGate3Config() Gate3Config {
	return Gate3Config{RSIMax: 80, Ret8wMax: 0.30, GoldSizing: SizingThreeQuarter}
}

// Gate3Result is the readout of the parabolic filter.
type Gate3Result struct {
	Pass   bool
	Sizing Sizing
}

// Gate3 applies the parabolic-extension filter. Comparisons are strict
// (">"), never "≥": a reading exactly at a threshold passes.
func Gate3(rsi14, ret8w float64, isGold bool, cfg Gate3Config) Gate3Result {
	rsiTriggered := rsi14 > cfg.RSIMax
	retTriggered := ret8w > cfg.Ret8wMax

	if isGold {
		if rsiTriggered {
			return Gate3Result{Pass: true, Sizing: cfg.GoldSizing}
		}
		return Gate3Result{Pass: true, Sizing: SizingFull}
	}

	switch {
	case rsiTriggered && retTriggered:
		return Gate3Result{Pass: false, Sizing: SizingFail}
	case rsiTriggered || retTriggered:
		return Gate3Result{Pass: false, Sizing: SizingWait}
	default:
		return Gate3Result{Pass: true, Sizing: SizingFull}
	}
}

// ExemptionType identifies why a ticker is exempt from Gate 3 entirely.
type ExemptionType string

const (
	ExemptionNone          ExemptionType = ""
	ExemptionCash          ExemptionType = "cash"
	ExemptionCryptoHalving ExemptionType = "crypto_halving"
)

// ExemptionResult is the readout of the exemption check.
type ExemptionResult struct {
	Exempt  bool
	Type    ExemptionType
	Expired bool
}

// CheckExemption evaluates the two exemption kinds in priority order:
// cash first (never expires), then crypto-halving (expires once today is
// past expiresAt). A nil expiresAt never expires.
func CheckExemption(isCash, isCryptoExempt bool, expiresAt *time.Time, today time.Time) ExemptionResult {
	if isCash {
		return ExemptionResult{Exempt: true, Type: ExemptionCash}
	}
	if isCryptoExempt {
		if expiresAt != nil && today.After(*expiresAt) {
			return ExemptionResult{Exempt: false, Type: ExemptionCryptoHalving, Expired: true}
		}
		return ExemptionResult{Exempt: true, Type: ExemptionCryptoHalving}
	}
	return ExemptionResult{Exempt: false, Type: ExemptionNone}
}
