package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the game constants from the embedded YAML.
func Load() (TimberConfig, error) {
	return load(defaultTimberYAML)
}

// load decodes data on top of the hardcoded defaults, so omitted fields
// keep their default values. Data that is not valid YAML falls back to the
// defaults; values that decode but fail validation are an error.
func load(data []byte) (TimberConfig, error) {
	cfg := DefaultTimberConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cfg = DefaultTimberConfig()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
