package composite

import "math"

// ModifierConfig carries the config-overridable constants for the four
// post-composition modifiers. Defaults match spec.
type ModifierConfig struct {
	OBVMaxBoost     float64 // default 5
	RSIDivBoost     float64 // default 3
	RSIDivMinDCS    float64 // default 60

	FreefallCap  map[DefenseClass]float64
	DowntrendCap map[DefenseClass]float64

	D5Modifier map[DefenseClass]float64
}

// DefaultModifierConfig returns spec's default modifier constants.
func DefaultModifierConfig() ModifierConfig {
	return ModifierConfig{
		OBVMaxBoost:  5,
		RSIDivBoost:  3,
		RSIDivMinDCS: 60,
		FreefallCap: map[DefenseClass]float64{
			DefenseHedge: 50, DefenseDefensive: 45, DefenseModerate: 30,
			DefenseCyclical: 20, DefenseAmplifier: 15, DefenseUnknown: 30,
		},
		DowntrendCap: map[DefenseClass]float64{
			DefenseHedge: 70, DefenseDefensive: 60, DefenseModerate: 50,
			DefenseCyclical: 40, DefenseAmplifier: 30, DefenseUnknown: 50,
		},
		D5Modifier: map[DefenseClass]float64{
			DefenseHedge: 5, DefenseDefensive: 3, DefenseModerate: 0,
			DefenseCyclical: -3, DefenseAmplifier: -5,
		},
	}
}

// OBVBoost is post-composition modifier 1: if OBV divergence is bullish,
// add up to OBVMaxBoost scaled by its strength; otherwise dcs is
// unchanged. Result stays in [0,100].
func OBVBoost(dcs float64, bullishDivergence bool, strength float64, cfg ModifierConfig) float64 {
	if !bullishDivergence {
		return dcs
	}
	return math.Min(100, dcs+cfg.OBVMaxBoost*strength)
}

// RSIDivergenceBoost is post-composition modifier 2: if an RSI bullish
// divergence is detected and dcs is already at least RSIDivMinDCS, add a
// flat RSIDivBoost. Result stays in [0,100].
func RSIDivergenceBoost(dcs float64, divergenceDetected bool, cfg ModifierConfig) float64 {
	if !divergenceDetected || dcs < cfg.RSIDivMinDCS {
		return dcs
	}
	return math.Min(100, dcs+cfg.RSIDivBoost)
}

// FallingKnifeResult is the readout of the falling-knife cap.
type FallingKnifeResult struct {
	DCS            float64
	Classification DefenseClass
	CapApplied     bool
	OriginalDCS    float64
	CapValue       float64
}

// FallingKnifeCap is post-composition modifier 3: a defense-aware cap
// keyed on trend_score and defense classification. trend_score > 0.4
// applies no cap at all; it is never DCS-increasing.
func FallingKnifeCap(dcs, trendScore float64, class DefenseClass, cfg ModifierConfig) FallingKnifeResult {
	result := FallingKnifeResult{DCS: dcs, Classification: class, OriginalDCS: dcs}

	var table map[DefenseClass]float64
	switch {
	case trendScore <= 0.1:
		table = cfg.FreefallCap
	case trendScore <= 0.4:
		table = cfg.DowntrendCap
	default:
		return result
	}

	cap, ok := table[class]
	if !ok {
		cap = table[DefenseUnknown]
	}
	result.CapValue = cap
	if dcs > cap {
		result.DCS = cap
		result.CapApplied = true
	}
	return result
}

// DrawdownModifierResult is the readout of the D-5 drawdown-defense
// modifier.
type DrawdownModifierResult struct {
	DCS           float64
	ModifierApplied float64
}

// DrawdownModifier is post-composition modifier 4 (D-5): only active in
// FEAR/PANIC regimes and only when the defense classification is known;
// additive per class, clamped to [0,100].
func DrawdownModifier(dcs float64, regime VixRegime, class DefenseClass, cfg ModifierConfig) DrawdownModifierResult {
	if regime != VixFear && regime != VixPanic {
		return DrawdownModifierResult{DCS: dcs}
	}
	if class == DefenseUnknown {
		return DrawdownModifierResult{DCS: dcs}
	}
	delta, ok := cfg.D5Modifier[class]
	if !ok {
		return DrawdownModifierResult{DCS: dcs}
	}
	adjusted := math.Max(0, math.Min(100, dcs+delta))
	return DrawdownModifierResult{DCS: adjusted, ModifierApplied: delta}
}
