package signals

import "fmt"

// The eleven factories below are the only places Type/Severity/LegacyPrefix
// literals are allowed to appear together; every other caller builds a
// Signal by calling one of these.

// SMABreachSell fires when price has closed below its long SMA for at
// least the configured consecutive-day threshold.
func SMABreachSell(daysBelow, threshold int) Signal {
	return Signal{
		Type:         TypeSellHard,
		Severity:     SeverityHigh,
		Message:      fmt.Sprintf("price below SMA for %d consecutive days (threshold %d)", daysBelow, threshold),
		LegacyPrefix: "[SELL]",
		Metadata:     map[string]interface{}{"days_below": daysBelow, "threshold": threshold},
	}
}

// SMABreachWarning fires when consecutive days below SMA is approaching
// but has not yet crossed the sell threshold.
func SMABreachWarning(daysBelow, threshold int) Signal {
	return Signal{
		Type:         TypeEarlyWarning,
		Severity:     SeverityMedium,
		Message:      fmt.Sprintf("price below SMA for %d consecutive days, sell threshold is %d", daysBelow, threshold),
		LegacyPrefix: "[WARN]",
		Metadata:     map[string]interface{}{"days_below": daysBelow, "threshold": threshold},
	}
}

// QuantDropSell fires on a sharp deterioration in the underlying quant
// grade score between consecutive snapshots.
func QuantDropSell(previous, current float64) Signal {
	return Signal{
		Type:         TypeSellHard,
		Severity:     SeverityHigh,
		Message:      fmt.Sprintf("quant score dropped from %.1f to %.1f", previous, current),
		LegacyPrefix: "[SELL]",
		Metadata:     map[string]interface{}{"previous": previous, "current": current},
	}
}

// EPSRevisionSell fires when EPS revision grades have turned decisively
// negative across the lookback window.
func EPSRevisionSell(direction string, delta float64) Signal {
	return Signal{
		Type:         TypeSellHard,
		Severity:     SeverityHigh,
		Message:      fmt.Sprintf("EPS revisions turned %s (delta %.2f)", direction, delta),
		LegacyPrefix: "[SELL]",
		Metadata:     map[string]interface{}{"direction": direction, "delta": delta},
	}
}

// EPSRevisionWarning fires on a milder negative shift in EPS revisions
// that does not yet justify a sell.
func EPSRevisionWarning(direction string, delta float64) Signal {
	return Signal{
		Type:         TypeEarlyWarning,
		Severity:     SeverityMedium,
		Message:      fmt.Sprintf("EPS revisions trending %s (delta %.2f)", direction, delta),
		LegacyPrefix: "[WARN]",
		Metadata:     map[string]interface{}{"direction": direction, "delta": delta},
	}
}

// QuantFreshnessWarning fires when price is already deeply oversold while
// the quant grade still reads elevated, asking the operator to confirm the
// quant snapshot hasn't simply gone stale.
func QuantFreshnessWarning(rsi, quantScore float64) Signal {
	return Signal{
		Type:         TypeVerify,
		Severity:     SeverityInfo,
		Message:      fmt.Sprintf("RSI %.1f oversold while quant grade %.1f still elevated, verify snapshot", rsi, quantScore),
		LegacyPrefix: "[VERIFY]",
		Metadata:     map[string]interface{}{"rsi": rsi, "quant_score": quantScore},
	}
}

// DefensiveHold fires when a HEDGE/DEFENSIVE classified ticker is in a
// FEAR/PANIC regime, overriding any sell-side pressure.
func DefensiveHold(class string, regime string) Signal {
	return Signal{
		Type:         TypeHoldOverride,
		Severity:     SeverityMedium,
		Message:      fmt.Sprintf("%s classification held through %s regime", class, regime),
		LegacyPrefix: "[HOLD]",
		Metadata:     map[string]interface{}{"defense_class": class, "vix_regime": regime},
	}
}

// AmplifierWarning fires when an AMPLIFIER-classified ticker is drawing
// down in a FEAR/PANIC regime, flagging elevated downside capture.
func AmplifierWarning(drawdown float64, regime string) Signal {
	return Signal{
		Type:         TypeTrimPriority,
		Severity:     SeverityHigh,
		Message:      fmt.Sprintf("amplifier drawdown %.1f%% in %s regime", drawdown*100, regime),
		LegacyPrefix: "[WARN]",
		Metadata:     map[string]interface{}{"drawdown": drawdown, "vix_regime": regime},
	}
}

// ReversalConfirmed fires once DCS has already cleared the buy-dip floor
// and price is breaching below its lower Bollinger band, the model's
// strongest buy-side confirmation.
func ReversalConfirmed(dcs float64, bbLowerBreach bool) Signal {
	return Signal{
		Type:         TypeBuyConfirmed,
		Severity:     SeverityLow,
		Message:      fmt.Sprintf("dcs %.1f with lower Bollinger breach=%t", dcs, bbLowerBreach),
		LegacyPrefix: "[BUY]",
		Metadata:     map[string]interface{}{"dcs": dcs, "bb_lower_breach": bbLowerBreach},
	}
}

// BottomTurning fires on early, unconfirmed signs of a base forming
// (MACD histogram rising while still below zero, RSI oversold, quant
// score at least 3).
func BottomTurning(rsi float64) Signal {
	return Signal{
		Type:         TypeBuyWatchlist,
		Severity:     SeverityLow,
		Message:      fmt.Sprintf("RSI recovering off oversold at %.1f", rsi),
		LegacyPrefix: "[WATCH]",
		Metadata:     map[string]interface{}{"rsi": rsi},
	}
}

// ConcentrationWarning fires when a single position's portfolio weight
// exceeds the configured concentration cap.
func ConcentrationWarning(weight, cap float64) Signal {
	return Signal{
		Type:         TypeDeploymentGate,
		Severity:     SeverityMedium,
		Message:      fmt.Sprintf("position weight %.1f%% exceeds cap %.1f%%", weight*100, cap*100),
		LegacyPrefix: "[TRIM]",
		Metadata:     map[string]interface{}{"weight": weight, "cap": cap},
	}
}
