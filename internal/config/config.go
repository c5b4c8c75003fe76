// Package config loads and validates the core's entire recognized
// configuration surface (spec §6): DCS weights, sub-score inner weights,
// modifier constants, classification boundaries, sell-criterion
// thresholds, Gate 3 parameters, aggregator parameters, and risk-module
// parameters. Parsing uses yaml.v3, the project's primary config format;
// a legacy yaml.v2-based loader is kept alongside it in legacy.go for
// older config files still in the field.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ericfmiller/threshold-app-sub000/internal/composite"
	"github.com/ericfmiller/threshold-app-sub000/internal/coreerr"
	"github.com/ericfmiller/threshold-app-sub000/internal/deployment"
	"github.com/ericfmiller/threshold-app-sub000/internal/risk"
	"github.com/ericfmiller/threshold-app-sub000/internal/subscores"
)

// Config is the fully-parsed, validated configuration for one scoring
// run. Every field has a documented default; Load fills in defaults
// before applying the parsed overrides.
type Config struct {
	DCSWeights composite.Weights `yaml:"dcs_weights"`

	MomentumWeights    subscores.MomentumWeights `yaml:"momentum_weights"`
	FundamentalWeights subscores.FQWeights       `yaml:"fundamental_weights"`
	OversoldWeights    subscores.TOWeights       `yaml:"oversold_weights"`
	RegimeWeights      subscores.MRWeights       `yaml:"regime_weights"`
	ValuationWeights   subscores.VCWeights       `yaml:"valuation_weights"`

	Modifiers composite.ModifierConfig `yaml:"modifiers"`

	VIXCap float64 `yaml:"vix_cap"`

	SellCriteria SellCriteriaConfig `yaml:"sell_criteria"`

	Gate3            deployment.Gate3Config            `yaml:"gate3"`
	Aggregator       deployment.AggregatorConfig       `yaml:"aggregator"`
	PortfolioOverlay deployment.PortfolioOverlayConfig `yaml:"portfolio_overlay"`

	CVaRAlpha   float64           `yaml:"cvar_alpha"`
	CVaRMethod  risk.CVaRMethod   `yaml:"cvar_method"`
	CDaRAlpha   float64           `yaml:"cdar_alpha"`
	Turbulence  risk.TurbulenceConfig     `yaml:"turbulence"`
	Crash       risk.MomentumCrashConfig  `yaml:"momentum_crash"`

	Advanced AdvancedConfig `yaml:"advanced"`
}

// SellCriteriaConfig carries the configurable thresholds the L7
// orchestrator and L3 signal factories read when evaluating sell
// criteria.
type SellCriteriaConfig struct {
	SMABreachDays          int     `yaml:"sma_breach_days"`
	SMABreachWarningDays   int     `yaml:"sma_breach_warning_days"`
	SMABreachThresholdPct  float64 `yaml:"sma_breach_threshold_pct"`
	QuantDropThreshold     float64 `yaml:"quant_drop_threshold"`
	QuantDropLookbackDays  int     `yaml:"quant_drop_lookback_days"`
}

// AdvancedConfig gates the off-by-default trend-following and sentiment
// overlays plus the MQ blend weight they share.
type AdvancedConfig struct {
	TrendFollowingEnabled bool    `yaml:"trend_following_enabled"`
	SentimentEnabled      bool    `yaml:"sentiment_enabled"`
	MQBlendWeight         float64 `yaml:"mq_blend_weight"`
}

// Default returns the config populated entirely with spec defaults.
func Default() Config {
	return Config{
		DCSWeights:         composite.DefaultWeights(),
		MomentumWeights:    subscores.DefaultMomentumWeights(),
		FundamentalWeights: subscores.DefaultFQWeights(),
		OversoldWeights:    subscores.DefaultTOWeights(),
		RegimeWeights:      subscores.DefaultMRWeights(),
		ValuationWeights:   subscores.DefaultVCWeights(),
		Modifiers:          composite.DefaultModifierConfig(),
		VIXCap:             40,
		SellCriteria: SellCriteriaConfig{
			SMABreachDays:         10,
			SMABreachWarningDays:  7,
			SMABreachThresholdPct: 0.03,
			QuantDropThreshold:    1.0,
			QuantDropLookbackDays: 30,
		},
		Gate3:            deployment.DefaultGate3Config(),
		Aggregator:       deployment.DefaultAggregatorConfig(),
		PortfolioOverlay: deployment.DefaultPortfolioOverlayConfig(),
		CVaRAlpha:  0.95,
		CVaRMethod: risk.CVaRHistorical,
		CDaRAlpha:  0.95,
		Turbulence: risk.DefaultTurbulenceConfig(),
		Crash:      risk.DefaultMomentumCrashConfig(),
		Advanced: AdvancedConfig{
			TrendFollowingEnabled: false,
			SentimentEnabled:      false,
			MQBlendWeight:         0.20,
		},
	}
}

// Load parses yaml bytes over the default config, so any field absent
// from the document keeps its documented default.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every contract-violation condition spec §7 names:
// DCS weights summing to 100, CVaR alpha in (0.5,1) with a known method,
// and CDaR alpha in (0,1). All failures wrap coreerr.ErrInvalidConfiguration.
func (c Config) Validate() error {
	if err := c.DCSWeights.Validate(); err != nil {
		return err
	}
	if c.CVaRAlpha <= 0.5 || c.CVaRAlpha >= 1 {
		return fmt.Errorf("%w: cvar_alpha %.4f must be in (0.5, 1)", coreerr.ErrInvalidConfiguration, c.CVaRAlpha)
	}
	if c.CVaRMethod != risk.CVaRHistorical && c.CVaRMethod != risk.CVaRParametric {
		return fmt.Errorf("%w: unknown cvar_method %q", coreerr.ErrInvalidConfiguration, c.CVaRMethod)
	}
	if c.CDaRAlpha <= 0 || c.CDaRAlpha >= 1 {
		return fmt.Errorf("%w: cdar_alpha %.4f must be in (0, 1)", coreerr.ErrInvalidConfiguration, c.CDaRAlpha)
	}
	return nil
}
