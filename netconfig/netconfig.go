// Package netconfig holds the small YAML-loadable configuration model the
// solver contract's `netcfg` parameter represents. The core does
// not interpret netcfg fields beyond passing them to the solver; this
// package only centralizes the selection-facing defaults (fairness rule,
// epoch composition, SA hyperparameters) behind a single Options-style
// struct with a Default constructor, rather than scattering magic numbers
// across call sites.
package netconfig

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathsel/solver"
)

// NetworkConfig carries selection-relevant network/optimizer configuration.
// Anything the external solver itself needs beyond these fields is opaque
// to this module and passed through untouched.
type NetworkConfig struct {
	Fairness         solver.Fairness         `yaml:"fairness"`
	EpochComposition solver.EpochComposition `yaml:"epoch_composition"`

	// SA defaults for select_sa: t_start default 0.72, cooling
	// factor default 0.88.
	SATStart float64 `yaml:"sa_t_start"`
	SACool   float64 `yaml:"sa_cool"`

	Extra map[string]string `yaml:"extra,omitempty"`
}

// Default returns sensible defaults: Weighted fairness, Worst epoch
// composition, t_start=0.72, cool=0.88.
func Default() NetworkConfig {
	return NetworkConfig{
		Fairness:         solver.Weighted,
		EpochComposition: solver.Worst,
		SATStart:         0.72,
		SACool:           0.88,
	}
}

// Load reads a NetworkConfig from a YAML file at path, falling back to
// Default() values for any field the file omits.
func Load(path string) (NetworkConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return NetworkConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NetworkConfig{}, err
	}

	return cfg, nil
}

// Marshal serializes cfg to YAML bytes, used for debug artifacts alongside
// the solver's own Write/WriteSolution; both are best-effort.
func (c NetworkConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
