package config

import (
	"fmt"

	yamlv2 "gopkg.in/yaml.v2"
)

// legacyDoc mirrors the flat, pre-v2 config shape some older deployments
// still ship: only the handful of fields that predate the full Config
// surface. LoadLegacy translates it onto today's Config so both formats
// produce an equally-validated result.
type legacyDoc struct {
	DCSWeightMQ float64 `yaml:"dcs_weight_mq"`
	DCSWeightFQ float64 `yaml:"dcs_weight_fq"`
	DCSWeightTO float64 `yaml:"dcs_weight_to"`
	DCSWeightMR float64 `yaml:"dcs_weight_mr"`
	DCSWeightVC float64 `yaml:"dcs_weight_vc"`

	CVaRAlpha float64 `yaml:"cvar_alpha"`
	CDaRAlpha float64 `yaml:"cdar_alpha"`
}

// LoadLegacy parses the old flat yaml.v2 document shape and folds its
// values onto Default(), so omitted fields behave identically to Load.
func LoadLegacy(data []byte) (Config, error) {
	var doc legacyDoc
	if err := yamlv2.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("config: parse legacy: %w", err)
	}

	cfg := Default()
	if doc.DCSWeightMQ != 0 {
		cfg.DCSWeights.MQ = doc.DCSWeightMQ
	}
	if doc.DCSWeightFQ != 0 {
		cfg.DCSWeights.FQ = doc.DCSWeightFQ
	}
	if doc.DCSWeightTO != 0 {
		cfg.DCSWeights.TO = doc.DCSWeightTO
	}
	if doc.DCSWeightMR != 0 {
		cfg.DCSWeights.MR = doc.DCSWeightMR
	}
	if doc.DCSWeightVC != 0 {
		cfg.DCSWeights.VC = doc.DCSWeightVC
	}
	if doc.CVaRAlpha != 0 {
		cfg.CVaRAlpha = doc.CVaRAlpha
	}
	if doc.CDaRAlpha != 0 {
		cfg.CDaRAlpha = doc.CDaRAlpha
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
