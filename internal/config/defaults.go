package config

import (
	_ "embed"
)

//go:embed defaults/timber.yaml
var defaultTimberYAML []byte

// DefaultTimberConfig returns the hardcoded game constants.
func DefaultTimberConfig() TimberConfig {
	return TimberConfig{
		Timing: TimberTiming{
			TotalTimeMS:  10_000,
			TimeReduceMS: 1_000,
			FrameMS:      50,
		},
		Tree: TimberTree{
			Length: 20,
			Bonus:  25,
		},
	}
}
