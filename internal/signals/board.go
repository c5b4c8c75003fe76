package signals

// NetAction is the single resolved action a SignalBoard collapses to.
type NetAction string

const (
	ActionReview    NetAction = "REVIEW"
	ActionHold      NetAction = "HOLD"
	ActionWatch     NetAction = "WATCH"
	ActionTrim      NetAction = "TRIM"
	ActionBuy       NetAction = "BUY"
	ActionWatchlist NetAction = "WATCHLIST"
	ActionNone      NetAction = "NONE"
)

// Board is an ordered, append-only collection of Signals for one ticker
// evaluation. Insertion order is preserved for ToLegacyFlags; NetAction
// resolution is order-independent.
type Board struct {
	signals []Signal
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	return &Board{}
}

// Add appends a signal, preserving insertion order.
func (b *Board) Add(s Signal) {
	b.signals = append(b.signals, s)
}

// All returns every signal in insertion order.
func (b *Board) All() []Signal {
	out := make([]Signal, len(b.signals))
	copy(out, b.signals)
	return out
}

// Len reports how many signals are on the board.
func (b *Board) Len() int {
	return len(b.signals)
}

// ByType returns every signal of the given type, in insertion order.
func (b *Board) ByType(t Type) []Signal {
	var out []Signal
	for _, s := range b.signals {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// Sells returns SELL_HARD signals.
func (b *Board) Sells() []Signal { return b.ByType(TypeSellHard) }

// Warnings returns EARLY_WARNING signals.
func (b *Board) Warnings() []Signal { return b.ByType(TypeEarlyWarning) }

// Buys returns BUY_CONFIRMED and BUY_WATCHLIST signals, confirmed first.
func (b *Board) Buys() []Signal {
	return append(b.ByType(TypeBuyConfirmed), b.ByType(TypeBuyWatchlist)...)
}

// Holds returns HOLD_OVERRIDE signals.
func (b *Board) Holds() []Signal { return b.ByType(TypeHoldOverride) }

// Trims returns TRIM_PRIORITY signals.
func (b *Board) Trims() []Signal { return b.ByType(TypeTrimPriority) }

// Gates returns DEPLOYMENT_GATE signals.
func (b *Board) Gates() []Signal { return b.ByType(TypeDeploymentGate) }

// NetAction resolves the board to a single action via the fixed 8-rule
// precedence, first match wins:
//  1. ≥2 SELL_HARD                          → REVIEW
//  2. exactly 1 SELL_HARD ∧ any HOLD_OVERRIDE → HOLD
//  3. exactly 1 SELL_HARD                    → WATCH
//  4. any TRIM_PRIORITY (no sells)           → TRIM
//  5. any BUY_CONFIRMED                      → BUY
//  6. any BUY_WATCHLIST                      → WATCHLIST
//  7. any EARLY_WARNING                      → WATCH
//  8. otherwise                              → NONE
func (b *Board) NetAction() NetAction {
	sells := len(b.ByType(TypeSellHard))

	switch {
	case sells >= 2:
		return ActionReview
	case sells == 1 && len(b.ByType(TypeHoldOverride)) > 0:
		return ActionHold
	case sells == 1:
		return ActionWatch
	case len(b.ByType(TypeTrimPriority)) > 0:
		return ActionTrim
	case len(b.ByType(TypeBuyConfirmed)) > 0:
		return ActionBuy
	case len(b.ByType(TypeBuyWatchlist)) > 0:
		return ActionWatchlist
	case len(b.ByType(TypeEarlyWarning)) > 0:
		return ActionWatch
	default:
		return ActionNone
	}
}

// ToLegacyFlags renders every signal's LegacyFlag() in insertion order,
// the stable string-list contract older consumers parse.
func (b *Board) ToLegacyFlags() []string {
	out := make([]string, len(b.signals))
	for i, s := range b.signals {
		out[i] = s.LegacyFlag()
	}
	return out
}
