package deployment

import "testing"

func TestApplyPortfolioOverlayNoOpWhenDisabled(t *testing.T) {
	cfg := DefaultPortfolioOverlayConfig()
	state := PortfolioState{OpenPositions: 99, SectorWeight: 0.99, MaxPairCorrelation: 0.99}
	got := ApplyPortfolioOverlay(SizingFull, state, cfg)
	if got != SizingFull {
		t.Fatalf("expected no-op when disabled, got %v", got)
	}
}

func TestApplyPortfolioOverlayDowngradesPerBreach(t *testing.T) {
	cfg := DefaultPortfolioOverlayConfig()
	cfg.Enabled = true
	state := PortfolioState{OpenPositions: 8, SectorWeight: 0.30, MaxPairCorrelation: 0.10}
	got := ApplyPortfolioOverlay(SizingFull, state, cfg)
	if got != SizingHalf {
		t.Fatalf("expected two breaches to downgrade FULL to HALF, got %v", got)
	}
}

func TestApplyPortfolioOverlayNeverUpgradesFail(t *testing.T) {
	cfg := DefaultPortfolioOverlayConfig()
	cfg.Enabled = true
	got := ApplyPortfolioOverlay(SizingFail, PortfolioState{}, cfg)
	if got != SizingFail {
		t.Fatalf("expected FAIL to remain FAIL, got %v", got)
	}
}
