package composite

// DefenseClass is the per-ticker downside-capture label used by the
// falling-knife cap and the D-5 drawdown modifier.
type DefenseClass string

const (
	DefenseHedge      DefenseClass = "HEDGE"
	DefenseDefensive  DefenseClass = "DEFENSIVE"
	DefenseModerate   DefenseClass = "MODERATE"
	DefenseCyclical   DefenseClass = "CYCLICAL"
	DefenseAmplifier  DefenseClass = "AMPLIFIER"
	DefenseUnknown    DefenseClass = ""
)
