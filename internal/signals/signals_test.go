package signals

import "testing"

func TestSignalToMapFromMapRoundTrip(t *testing.T) {
	s := SMABreachSell(12, 10)
	m := s.ToMap()
	got := FromMap(m)

	if got.Type != s.Type || got.Severity != s.Severity || got.Message != s.Message || got.LegacyPrefix != s.LegacyPrefix {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, s)
	}
	if got.Metadata["days_below"] != s.Metadata["days_below"] {
		t.Fatalf("metadata not preserved: got %v, want %v", got.Metadata, s.Metadata)
	}
}

func TestLegacyFlagFormat(t *testing.T) {
	s := DefensiveHold("HEDGE", "PANIC")
	want := "[HOLD] HEDGE classification held through PANIC regime"
	if got := s.LegacyFlag(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNetActionEarlyWarningAlone(t *testing.T) {
	b := NewBoard()
	b.Add(SMABreachWarning(5, 10))
	if got := b.NetAction(); got != ActionWatch {
		t.Fatalf("lone early warning should resolve to WATCH, got %s", got)
	}
}

func TestNetActionTrimPriorityWithNoSells(t *testing.T) {
	b := NewBoard()
	b.Add(SMABreachWarning(5, 10))
	b.Add(AmplifierWarning(0.1, "FEAR"))
	if got := b.NetAction(); got != ActionTrim {
		t.Fatalf("trim_priority should outrank early_warning when there are no sells, got %s", got)
	}
}

func TestNetActionSingleSellHardIsWatch(t *testing.T) {
	b := NewBoard()
	b.Add(AmplifierWarning(0.1, "FEAR"))
	b.Add(SMABreachSell(15, 10))
	if got := b.NetAction(); got != ActionWatch {
		t.Fatalf("exactly one sell_hard with no hold override should resolve to WATCH, got %s", got)
	}
}

func TestNetActionSingleSellHardWithHoldOverrideIsHold(t *testing.T) {
	b := NewBoard()
	b.Add(SMABreachSell(15, 10))
	b.Add(DefensiveHold("HEDGE", "PANIC"))
	if got := b.NetAction(); got != ActionHold {
		t.Fatalf("exactly one sell_hard plus a hold_override should resolve to HOLD, got %s", got)
	}
}

func TestNetActionTwoSellHardIsReview(t *testing.T) {
	b := NewBoard()
	b.Add(SMABreachSell(15, 10))
	b.Add(QuantDropSell(4.5, 3.2))
	b.Add(DefensiveHold("HEDGE", "PANIC"))
	if got := b.NetAction(); got != ActionReview {
		t.Fatalf("two or more sell_hard should resolve to REVIEW regardless of hold_override, got %s", got)
	}
}

func TestNetActionBuyConfirmedOutranksWatchlistAndWarning(t *testing.T) {
	b := NewBoard()
	b.Add(SMABreachWarning(5, 10))
	b.Add(BottomTurning(28))
	b.Add(ReversalConfirmed(68, true))
	if got := b.NetAction(); got != ActionBuy {
		t.Fatalf("buy_confirmed should outrank buy_watchlist and early_warning, got %s", got)
	}
}

func TestNetActionBuyWatchlistOutranksWarning(t *testing.T) {
	b := NewBoard()
	b.Add(SMABreachWarning(5, 10))
	b.Add(BottomTurning(28))
	if got := b.NetAction(); got != ActionWatchlist {
		t.Fatalf("buy_watchlist should outrank early_warning, got %s", got)
	}
}

func TestNetActionEmptyBoardIsNone(t *testing.T) {
	b := NewBoard()
	if got := b.NetAction(); got != ActionNone {
		t.Fatalf("empty board should resolve to NONE, got %s", got)
	}
}

func TestToLegacyFlagsPreservesInsertionOrder(t *testing.T) {
	b := NewBoard()
	b.Add(BottomTurning(35))
	b.Add(ReversalConfirmed(70, true))
	b.Add(ConcentrationWarning(0.3, 0.2))

	flags := b.ToLegacyFlags()
	if len(flags) != 3 {
		t.Fatalf("expected 3 flags, got %d", len(flags))
	}
	if flags[0][:7] != "[WATCH]" {
		t.Fatalf("expected first flag to be watchlist, got %q", flags[0])
	}
	if flags[2][:6] != "[TRIM]" {
		t.Fatalf("expected last flag to be a concentration gate flag, got %q", flags[2])
	}
}

func TestSellsWarningsBuysHelpers(t *testing.T) {
	b := NewBoard()
	b.Add(SMABreachSell(12, 10))
	b.Add(QuantDropSell(70, 40))
	b.Add(EPSRevisionWarning("negative", -0.4))
	b.Add(ReversalConfirmed(70, true))
	b.Add(BottomTurning(32))

	if len(b.Sells()) != 2 {
		t.Fatalf("expected 2 sell signals, got %d", len(b.Sells()))
	}
	if len(b.Warnings()) != 1 {
		t.Fatalf("expected 1 warning signal, got %d", len(b.Warnings()))
	}
	if len(b.Buys()) != 2 {
		t.Fatalf("expected 2 buy signals (confirmed+watchlist), got %d", len(b.Buys()))
	}
}

func TestGatesReturnsDeploymentGateSignals(t *testing.T) {
	b := NewBoard()
	b.Add(ConcentrationWarning(0.3, 0.2))
	if len(b.Gates()) != 1 {
		t.Fatalf("expected 1 deployment gate signal, got %d", len(b.Gates()))
	}
}
