// Package timber implements a tree-chopping reflex game.
// The player chops the trunk on the left or right, clearing the branch on
// the chopped side, before the per-tree time budget runs out.
package timber

import (
	"time"

	"github.com/vovakirdan/timber/internal/config"
	"github.com/vovakirdan/timber/internal/core"
)

// EndReason tells why a run ended.
type EndReason int

const (
	EndNone    EndReason = iota
	EndTimeout           // the tree's budget ran out
	EndMiss              // the chop hit the wrong side of a branch
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeout:
		return "timeout"
	case EndMiss:
		return "miss"
	default:
		return "none"
	}
}

// Outcome lists the effects the loop driver must perform after a step.
// Effects are applied in field order: redraw, game over, timer, cue.
type Outcome struct {
	Quit      bool      // tear down the display and stop the loop
	Restarted bool      // the state was reset this frame
	Redraw    bool      // draw the full playfield
	GameOver  bool      // draw the game-over panel
	Timer     bool      // draw the timer bar
	Cue       core.Cue  // sound to play, CueNone for silence
	Reason    EndReason // set together with GameOver

	// Elapsed is the time the timer bar shows. The frame's time is added
	// only after the bar is drawn, so this lags the state by one frame.
	Elapsed time.Duration
}

// Game holds the state of one run. It is owned by a single loop driver and
// is not safe for concurrent use.
type Game struct {
	cfg config.TimberConfig
	rng Rand

	track      []Obstacle    // Upcoming hazards, nearest first
	score      int           // Points this run
	trees      int           // Trees fully cleared
	total      time.Duration // Budget for the current tree
	elapsed    time.Duration // Time spent on the current tree
	lastAction core.Action   // Side the player last chopped
	alive      bool          // Whether the run is still in progress
	frames     uint64        // Frames advanced while alive
}

// New creates a game with the given constants and randomness source
// and starts the first run.
func New(cfg config.TimberConfig, rng Rand) *Game {
	g := &Game{
		cfg: cfg,
		rng: rng,
	}
	g.Reset()
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Timber"
}

// Reset starts a fresh run.
func (g *Game) Reset() {
	g.track = GenerateTrack(g.rng, g.cfg.Tree.Length)
	g.score = 0
	g.trees = 0
	g.total = g.cfg.TotalTime()
	g.elapsed = 0
	g.lastAction = core.ActionNothing
	g.alive = true
	g.frames = 0
}

// Alive reports whether the run is still in progress.
func (g *Game) Alive() bool {
	return g.alive
}

// Step advances the game by one frame given the action read this frame.
// Quit and Restart are honored in any state; everything else only while
// alive. The timeout check runs before the action is resolved.
func (g *Game) Step(action core.Action) Outcome {
	switch action {
	case core.ActionQuit:
		return Outcome{Quit: true}
	case core.ActionRestart:
		g.Reset()
		return Outcome{Restarted: true, Redraw: true}
	}

	if !g.alive {
		return Outcome{}
	}

	if TimedOut(g.elapsed, g.total) {
		return g.end(EndTimeout)
	}

	var out Outcome
	if action.IsChop() {
		g.lastAction = action
		if !ResolveChop(action, g.nearest()) {
			return g.end(EndMiss)
		}
		out.Cue = g.advance()
		out.Redraw = true
	}

	out.Timer = true
	out.Elapsed = g.elapsed
	g.elapsed += g.cfg.FrameTime()
	g.frames++
	return out
}

// nearest returns the obstacle closest to the player.
func (g *Game) nearest() Obstacle {
	if len(g.track) == 0 {
		panic("timber: chop against an empty track")
	}
	return g.track[0]
}

// advance removes the cleared obstacle and applies scoring.
// Returns the cue that matches what happened.
func (g *Game) advance() core.Cue {
	g.track = g.track[1:]
	if len(g.track) > 0 {
		g.score++
		return core.CueWood
	}

	g.track = GenerateTrack(g.rng, g.cfg.Tree.Length)
	g.score += g.cfg.Tree.Bonus
	g.trees++
	g.total -= g.cfg.TimeReduce()
	g.elapsed = 0
	return core.CueTree
}

// end freezes the run.
func (g *Game) end(reason EndReason) Outcome {
	g.alive = false
	return Outcome{
		GameOver: true,
		Cue:      core.CueGameOver,
		Reason:   reason,
	}
}
