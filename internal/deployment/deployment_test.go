package deployment

import (
	"testing"
	"time"
)

func TestGate3BoundaryIsStrict(t *testing.T) {
	cfg := DefaultGate3Config()
	got := Gate3(80, 0.30, false, cfg)
	if !got.Pass || got.Sizing != SizingFull {
		t.Fatalf("exact boundary should pass at FULL, got %+v", got)
	}
}

func TestGate3FailsWhenBothTriggered(t *testing.T) {
	cfg := DefaultGate3Config()
	got := Gate3(85, 0.35, false, cfg)
	if got.Pass || got.Sizing != SizingFail {
		t.Fatalf("expected FAIL, got %+v", got)
	}
}

func TestGate3GoldSizing(t *testing.T) {
	cfg := DefaultGate3Config()
	got := Gate3(85, 0.35, true, cfg)
	if !got.Pass || got.Sizing != SizingThreeQuarter {
		t.Fatalf("gold over RSI max should pass at THREE_QUARTER, got %+v", got)
	}

	goldCalm := Gate3(50, 0.05, true, cfg)
	if !goldCalm.Pass || goldCalm.Sizing != SizingFull {
		t.Fatalf("gold with no triggers should pass at FULL, got %+v", goldCalm)
	}
}

func TestGate3SingleTriggerWaits(t *testing.T) {
	cfg := DefaultGate3Config()
	got := Gate3(85, 0.10, false, cfg)
	if got.Pass || got.Sizing != SizingWait {
		t.Fatalf("expected WAIT, got %+v", got)
	}
}

func TestExemptionPriorityCashBeatsCrypto(t *testing.T) {
	got := CheckExemption(true, true, nil, time.Now())
	if !got.Exempt || got.Type != ExemptionCash {
		t.Fatalf("cash should take priority, got %+v", got)
	}
}

func TestExemptionCryptoExpiry(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past := today.AddDate(0, -1, 0)

	expired := CheckExemption(false, true, &past, today)
	if expired.Exempt || !expired.Expired {
		t.Fatalf("expected expired exemption, got %+v", expired)
	}

	future := today.AddDate(0, 1, 0)
	active := CheckExemption(false, true, &future, today)
	if !active.Exempt || active.Expired {
		t.Fatalf("expected active exemption, got %+v", active)
	}
}

func TestAggregatorHighRiskScenario(t *testing.T) {
	cfg := DefaultAggregatorConfig()
	crashProb := 0.85
	turbPctl := 0.92

	risk := ComputeCompositeRisk(
		EBPInput{Regime: EBPHighRisk, HasRegime: true},
		TurbulenceInput{Percentile: &turbPctl},
		CrashInput{CrashProbability: &crashProb},
		cfg,
	)
	if risk.Composite < 0.70 {
		t.Fatalf("expected composite >= 0.70, got %v", risk.Composite)
	}
	if risk.Regime != RiskHigh || risk.Penalty != 10 {
		t.Fatalf("expected HIGH_RISK/10, got %+v", risk)
	}

	adjusted := ApplyRiskOverlay(72, risk)
	if adjusted != 62 {
		t.Fatalf("expected 62, got %v", adjusted)
	}
}

func TestAggregatorAllAbsentIsNormalNoOp(t *testing.T) {
	cfg := DefaultAggregatorConfig()
	risk := ComputeCompositeRisk(EBPInput{}, TurbulenceInput{}, CrashInput{}, cfg)
	if risk.Regime != RiskNormal || risk.Penalty != 0 {
		t.Fatalf("expected NORMAL/0 baseline, got %+v", risk)
	}
	if ApplyRiskOverlay(55, risk) != 55 {
		t.Fatalf("expected no-op on dcs when risk absent")
	}
}
