// Package signals implements the Signal taxonomy and SignalBoard state
// machine (L3): typed buy/sell/warning/override events with a priority
// resolution into one net action.
package signals

// Type is the sum type tag for a Signal. The eleven factory functions in
// factories.go are the only constructors that should ever set it, so a new
// kind of signal is added by adding a factory, not by spreading string
// literals through call sites.
type Type string

const (
	TypeSellHard       Type = "SELL_HARD"
	TypeEarlyWarning   Type = "EARLY_WARNING"
	TypeBuyConfirmed   Type = "BUY_CONFIRMED"
	TypeBuyWatchlist   Type = "BUY_WATCHLIST"
	TypeHoldOverride   Type = "HOLD_OVERRIDE"
	TypeTrimPriority   Type = "TRIM_PRIORITY"
	TypeDeploymentGate Type = "DEPLOYMENT_GATE"
	TypeVerify         Type = "VERIFY"
)

// Severity ranks a Signal's urgency.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

// Signal is a frozen record describing one triggered condition.
type Signal struct {
	Type         Type
	Severity     Severity
	Message      string
	LegacyPrefix string
	Metadata     map[string]interface{}
}

// LegacyFlag renders "<prefix> <message>", the stable public string
// contract SignalBoard.ToLegacyFlags() reproduces for every signal in
// insertion order.
func (s Signal) LegacyFlag() string {
	return s.LegacyPrefix + " " + s.Message
}

// ToMap serializes a Signal to a plain map, e.g. for JSON/YAML transport
// at the core's boundary.
func (s Signal) ToMap() map[string]interface{} {
	meta := make(map[string]interface{}, len(s.Metadata))
	for k, v := range s.Metadata {
		meta[k] = v
	}
	return map[string]interface{}{
		"type":          string(s.Type),
		"severity":      string(s.Severity),
		"message":       s.Message,
		"legacy_prefix": s.LegacyPrefix,
		"metadata":      meta,
	}
}

// FromMap deserializes a Signal from the map ToMap produces. Round-tripping
// ToMap/FromMap must preserve all five fields.
func FromMap(m map[string]interface{}) Signal {
	s := Signal{
		Type:         Type(stringField(m, "type")),
		Severity:     Severity(stringField(m, "severity")),
		Message:      stringField(m, "message"),
		LegacyPrefix: stringField(m, "legacy_prefix"),
	}
	if meta, ok := m["metadata"].(map[string]interface{}); ok {
		s.Metadata = make(map[string]interface{}, len(meta))
		for k, v := range meta {
			s.Metadata[k] = v
		}
	}
	return s
}

func stringField(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}
