package config

import (
	"errors"
	"testing"

	"github.com/ericfmiller/threshold-app-sub000/internal/coreerr"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestLoadAppliesOverridesAndKeepsDefaults(t *testing.T) {
	data := []byte(`
dcs_weights:
  mq: 35
  fq: 20
  to: 20
  mr: 15
  vc: 10
`)
	cfg, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DCSWeights.MQ != 35 {
		t.Fatalf("expected override applied, got %v", cfg.DCSWeights.MQ)
	}
	if cfg.Gate3.RSIMax != 80 {
		t.Fatalf("expected gate3 default retained, got %v", cfg.Gate3.RSIMax)
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	data := []byte(`
dcs_weights:
  mq: 10
  fq: 10
  to: 10
  mr: 10
  vc: 10
`)
	_, err := Load(data)
	if !errors.Is(err, coreerr.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestLoadRejectsBadCVaRAlpha(t *testing.T) {
	data := []byte(`cvar_alpha: 0.3`)
	_, err := Load(data)
	if !errors.Is(err, coreerr.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestDefaultConfigPortfolioOverlayDisabled(t *testing.T) {
	cfg := Default()
	if cfg.PortfolioOverlay.Enabled {
		t.Fatalf("expected portfolio overlay disabled by default")
	}
}

func TestLoadLegacyTranslatesFlatShape(t *testing.T) {
	data := []byte(`
dcs_weight_mq: 35
dcs_weight_fq: 20
dcs_weight_to: 20
dcs_weight_mr: 15
dcs_weight_vc: 10
`)
	cfg, err := LoadLegacy(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DCSWeights.MQ != 35 || cfg.DCSWeights.FQ != 20 {
		t.Fatalf("expected legacy overrides applied, got %+v", cfg.DCSWeights)
	}
}
