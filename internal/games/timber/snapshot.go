package timber

import (
	"time"

	"github.com/vovakirdan/timber/internal/core"
)

// Snapshot captures the complete game state for rendering, logging and tests.
type Snapshot struct {
	Frames     uint64
	Track      []Obstacle // Copy, nearest first
	Score      int
	Trees      int
	Total      time.Duration
	Elapsed    time.Duration
	LastAction core.Action
	Alive      bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	track := make([]Obstacle, len(g.track))
	copy(track, g.track)

	return Snapshot{
		Frames:     g.frames,
		Track:      track,
		Score:      g.score,
		Trees:      g.trees,
		Total:      g.total,
		Elapsed:    g.elapsed,
		LastAction: g.lastAction,
		Alive:      g.alive,
	}
}
