// Package config provides the tuning constants for the game. The values are
// compiled into the binary as YAML and are not read from the user's disk.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TimberConfig contains all tuning constants for the game.
type TimberConfig struct {
	Timing TimberTiming `yaml:"timing"`
	Tree   TimberTree   `yaml:"tree"`
}

// TimberTiming defines the frame cadence and the per-tree time budget.
type TimberTiming struct {
	TotalTimeMS  int `yaml:"total_time_ms"`  // Budget for the first tree
	TimeReduceMS int `yaml:"time_reduce_ms"` // Budget lost after each felled tree
	FrameMS      int `yaml:"frame_ms"`       // Duration of one loop iteration
}

// TimberTree defines the shape and value of a tree.
type TimberTree struct {
	Length int `yaml:"length"` // Obstacles per tree
	Bonus  int `yaml:"bonus"`  // Score awarded for clearing a whole tree
}

// TotalTime returns the starting time budget for a tree.
func (c TimberConfig) TotalTime() time.Duration {
	return time.Duration(c.Timing.TotalTimeMS) * time.Millisecond
}

// TimeReduce returns how much the budget shrinks per felled tree.
func (c TimberConfig) TimeReduce() time.Duration {
	return time.Duration(c.Timing.TimeReduceMS) * time.Millisecond
}

// FrameTime returns the fixed duration of one frame.
func (c TimberConfig) FrameTime() time.Duration {
	return time.Duration(c.Timing.FrameMS) * time.Millisecond
}

// Validate checks that the constants describe a playable game.
func (c TimberConfig) Validate() error {
	var errs []error
	if c.Tree.Length <= 0 {
		errs = append(errs, fmt.Errorf("tree.length must be positive, got %d", c.Tree.Length))
	}
	if c.Timing.FrameMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.frame_ms must be positive, got %d", c.Timing.FrameMS))
	}
	if c.Timing.TotalTimeMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.total_time_ms must be positive, got %d", c.Timing.TotalTimeMS))
	}
	return errors.Join(errs...)
}
