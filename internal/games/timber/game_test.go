package timber

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/timber/internal/config"
	"github.com/vovakirdan/timber/internal/core"
)

func newTestGame(t *testing.T, track ...Obstacle) *Game {
	t.Helper()
	g := New(config.DefaultTimberConfig(), rand.New(rand.NewSource(42)))
	if len(track) > 0 {
		g.track = append([]Obstacle(nil), track...)
	}
	return g
}

// safeChop returns the chop that survives the given obstacle.
func safeChop(o Obstacle) core.Action {
	if o == RightBranch {
		return core.ActionRight
	}
	return core.ActionLeft
}

func TestNewGameInitialState(t *testing.T) {
	cfg := config.DefaultTimberConfig()
	g := New(cfg, rand.New(rand.NewSource(1)))
	s := g.Snapshot()

	if len(s.Track) != cfg.Tree.Length {
		t.Errorf("track length = %d, expected %d", len(s.Track), cfg.Tree.Length)
	}
	if s.Score != 0 || s.Trees != 0 {
		t.Errorf("score/trees = %d/%d, expected 0/0", s.Score, s.Trees)
	}
	if s.Total != cfg.TotalTime() {
		t.Errorf("total = %v, expected %v", s.Total, cfg.TotalTime())
	}
	if s.Elapsed != 0 {
		t.Errorf("elapsed = %v, expected 0", s.Elapsed)
	}
	if s.LastAction != core.ActionNothing {
		t.Errorf("last action = %v, expected Nothing", s.LastAction)
	}
	if !s.Alive {
		t.Error("new game should be alive")
	}
}

func TestChopOnBareTrunk(t *testing.T) {
	g := newTestGame(t, None, LeftBranch, RightBranch)

	out := g.Step(core.ActionRight)
	s := g.Snapshot()

	if len(s.Track) != 2 {
		t.Errorf("track length = %d, expected 2", len(s.Track))
	}
	if s.Score != 1 {
		t.Errorf("score = %d, expected 1", s.Score)
	}
	if out.Cue != core.CueWood {
		t.Errorf("cue = %v, expected wood", out.Cue)
	}
	if !out.Redraw || !out.Timer || out.GameOver {
		t.Errorf("unexpected outcome %+v", out)
	}
	if s.LastAction != core.ActionRight {
		t.Errorf("last action = %v, expected Right", s.LastAction)
	}
}

func TestNothingNeverChops(t *testing.T) {
	g := newTestGame(t, LeftBranch, None)

	out := g.Step(core.ActionNothing)
	s := g.Snapshot()

	if !s.Alive {
		t.Fatal("standing still next to a branch should not end the run")
	}
	if len(s.Track) != 2 || s.Score != 0 {
		t.Errorf("Nothing should not touch the track: len=%d score=%d", len(s.Track), s.Score)
	}
	if out.Redraw || out.Cue != core.CueNone {
		t.Errorf("Nothing should not redraw or play a cue: %+v", out)
	}
	if !out.Timer {
		t.Error("timer bar should still be drawn")
	}
	if s.Elapsed != 50*time.Millisecond {
		t.Errorf("elapsed = %v, expected one frame", s.Elapsed)
	}
}

func TestWrongSideEndsRun(t *testing.T) {
	g := newTestGame(t, LeftBranch, None)

	out := g.Step(core.ActionRight)
	s := g.Snapshot()

	if s.Alive {
		t.Fatal("chopping the wrong side should end the run")
	}
	if !out.GameOver || out.Cue != core.CueGameOver || out.Reason != EndMiss {
		t.Errorf("unexpected outcome %+v", out)
	}
	if out.Timer || out.Redraw {
		t.Errorf("a lost frame should not draw the playfield or timer: %+v", out)
	}
	if len(s.Track) != 2 {
		t.Errorf("failed chop should not remove the obstacle, len = %d", len(s.Track))
	}
	if s.Elapsed != 0 {
		t.Errorf("failed chop should not advance time, elapsed = %v", s.Elapsed)
	}
}

func TestTimeoutPrecedesChop(t *testing.T) {
	g := newTestGame(t)
	cfg := config.DefaultTimberConfig()
	frames := int(cfg.TotalTime() / cfg.FrameTime())

	for i := 0; i < frames; i++ {
		out := g.Step(core.ActionNothing)
		if out.GameOver {
			t.Fatalf("run ended early at frame %d", i)
		}
	}

	before := g.Snapshot()
	if before.Elapsed != before.Total {
		t.Fatalf("elapsed = %v, expected the whole budget %v", before.Elapsed, before.Total)
	}

	out := g.Step(safeChop(before.Track[0]))
	after := g.Snapshot()

	if after.Alive {
		t.Fatal("run should end once the budget is spent")
	}
	if !out.GameOver || out.Reason != EndTimeout || out.Cue != core.CueGameOver {
		t.Errorf("unexpected outcome %+v", out)
	}
	if after.LastAction != core.ActionNothing {
		t.Errorf("timed-out frame should not resolve the chop, last action = %v", after.LastAction)
	}
	if !reflect.DeepEqual(before.Track, after.Track) || before.Score != after.Score {
		t.Error("timed-out frame should not touch track or score")
	}
	if out.Timer {
		t.Error("timer bar should not be drawn after the budget is spent")
	}
}

func TestClearingLastSegmentFellsTree(t *testing.T) {
	g := newTestGame(t, RightBranch)
	cfg := config.DefaultTimberConfig()
	g.score = 7
	g.elapsed = 3 * time.Second

	out := g.Step(core.ActionRight)
	s := g.Snapshot()

	if len(s.Track) != cfg.Tree.Length {
		t.Errorf("track length = %d, expected regenerated %d", len(s.Track), cfg.Tree.Length)
	}
	if s.Trees != 1 {
		t.Errorf("trees = %d, expected 1", s.Trees)
	}
	if s.Score != 7+25 {
		t.Errorf("score = %d, expected %d", s.Score, 7+25)
	}
	if s.Total != 9*time.Second {
		t.Errorf("total = %v, expected 9s", s.Total)
	}
	// Reset to zero, then this frame's advance
	if s.Elapsed != cfg.FrameTime() {
		t.Errorf("elapsed = %v, expected %v", s.Elapsed, cfg.FrameTime())
	}
	if out.Cue != core.CueTree {
		t.Errorf("cue = %v, expected tree", out.Cue)
	}
}

func TestTimerDrawnBeforeTimeAdvances(t *testing.T) {
	tests := []struct {
		name    string
		track   []Obstacle
		elapsed time.Duration
		action  core.Action
		bar     time.Duration
		after   time.Duration
	}{
		{"first frame", []Obstacle{None, None}, 0, core.ActionNothing, 0, 50 * time.Millisecond},
		{"mid tree", []Obstacle{None, None}, 4950 * time.Millisecond, core.ActionNothing, 4950 * time.Millisecond, 5 * time.Second},
		{"last alive frame", []Obstacle{None, None}, 9950 * time.Millisecond, core.ActionNothing, 9950 * time.Millisecond, 10 * time.Second},
		{"tree felled", []Obstacle{LeftBranch}, 3 * time.Second, core.ActionLeft, 0, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, tc.track...)
			g.elapsed = tc.elapsed

			out := g.Step(tc.action)
			if !out.Timer {
				t.Fatalf("timer should be drawn, outcome %+v", out)
			}
			if out.Elapsed != tc.bar {
				t.Errorf("bar elapsed = %v, expected %v", out.Elapsed, tc.bar)
			}
			if s := g.Snapshot(); s.Elapsed != tc.after {
				t.Errorf("elapsed after step = %v, expected %v", s.Elapsed, tc.after)
			}
		})
	}
}

func TestStepInvariants(t *testing.T) {
	cfg := config.DefaultTimberConfig()
	g := New(cfg, rand.New(rand.NewSource(2024)))
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 2000 && g.Alive(); i++ {
		before := g.Snapshot()
		if len(before.Track) == 0 {
			t.Fatal("track observed empty")
		}

		if rng.Intn(3) == 0 {
			g.Step(core.ActionNothing)
			continue
		}

		out := g.Step(safeChop(before.Track[0]))
		after := g.Snapshot()
		if out.GameOver {
			if out.Reason != EndTimeout {
				t.Fatalf("safe chop ended the run with %v", out.Reason)
			}
			break
		}

		switch out.Cue {
		case core.CueWood:
			if len(after.Track) != len(before.Track)-1 {
				t.Fatalf("track length %d -> %d, expected decrease by 1", len(before.Track), len(after.Track))
			}
			if after.Score != before.Score+1 {
				t.Fatalf("score %d -> %d, expected +1", before.Score, after.Score)
			}
		case core.CueTree:
			if len(before.Track) != 1 || len(after.Track) != cfg.Tree.Length {
				t.Fatalf("tree felled with track %d -> %d", len(before.Track), len(after.Track))
			}
			if after.Trees != before.Trees+1 {
				t.Fatalf("trees %d -> %d, expected +1", before.Trees, after.Trees)
			}
			if after.Score != before.Score+cfg.Tree.Bonus {
				t.Fatalf("score %d -> %d, expected +%d", before.Score, after.Score, cfg.Tree.Bonus)
			}
			if after.Total != before.Total-cfg.TimeReduce() {
				t.Fatalf("total %v -> %v, expected -%v", before.Total, after.Total, cfg.TimeReduce())
			}
			if after.Elapsed != cfg.FrameTime() {
				t.Fatalf("elapsed after felling = %v", after.Elapsed)
			}
		default:
			t.Fatalf("surviving chop produced cue %v", out.Cue)
		}
		if after.Score < before.Score {
			t.Fatal("score decreased while alive")
		}
	}

	if g.Snapshot().Trees == 0 {
		t.Error("expected at least one felled tree")
	}
}

func TestBudgetCanGoNonPositive(t *testing.T) {
	cfg := config.DefaultTimberConfig()
	cfg.Timing.TotalTimeMS = 1000
	cfg.Timing.TimeReduceMS = 1000
	g := New(cfg, rand.New(rand.NewSource(8)))
	g.track = []Obstacle{None}

	g.Step(core.ActionLeft)
	if s := g.Snapshot(); s.Total != 0 || !s.Alive {
		t.Fatalf("after felling: total = %v alive = %v", s.Total, s.Alive)
	}

	out := g.Step(core.ActionNothing)
	if !out.GameOver || out.Reason != EndTimeout {
		t.Errorf("zero budget should time out on the next frame, got %+v", out)
	}
}

func TestFrozenAfterGameOver(t *testing.T) {
	g := newTestGame(t, LeftBranch, None, None)
	g.Step(core.ActionRight)
	frozen := g.Snapshot()

	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionNothing} {
		out := g.Step(a)
		if out != (Outcome{}) {
			t.Errorf("Step(%v) after game over = %+v, expected no effects", a, out)
		}
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("state changed after game over")
	}
}

func TestRestartResetsState(t *testing.T) {
	cfg := config.DefaultTimberConfig()
	g := newTestGame(t, None, None, LeftBranch)
	g.Step(core.ActionRight)
	g.Step(core.ActionRight)
	g.Step(core.ActionRight) // wrong side, run ends

	if g.Alive() {
		t.Fatal("setup: run should have ended")
	}

	out := g.Step(core.ActionRestart)
	s := g.Snapshot()

	if !out.Restarted || !out.Redraw {
		t.Errorf("unexpected outcome %+v", out)
	}
	if out.Timer || out.Cue != core.CueNone {
		t.Errorf("restart frame should do nothing else: %+v", out)
	}
	if !s.Alive || s.Score != 0 || s.Trees != 0 || s.Elapsed != 0 {
		t.Errorf("restart did not reset: %+v", s)
	}
	if s.Total != cfg.TotalTime() || len(s.Track) != cfg.Tree.Length {
		t.Errorf("restart did not restore budget/track: total=%v len=%d", s.Total, len(s.Track))
	}
	if s.LastAction != core.ActionNothing {
		t.Errorf("last action = %v, expected Nothing", s.LastAction)
	}
	if s.Frames != 0 {
		t.Errorf("frames = %d, expected 0", s.Frames)
	}
}

func TestRestartWhileAliveSkipsTimeAdvance(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.ActionNothing)
	g.Step(core.ActionRestart)

	if s := g.Snapshot(); s.Elapsed != 0 {
		t.Errorf("elapsed after restart = %v, expected 0", s.Elapsed)
	}
}

func TestQuitInAnyState(t *testing.T) {
	alive := newTestGame(t, LeftBranch)
	dead := newTestGame(t, LeftBranch)
	dead.Step(core.ActionRight)

	for name, g := range map[string]*Game{"alive": alive, "game over": dead} {
		t.Run(name, func(t *testing.T) {
			before := g.Snapshot()
			out := g.Step(core.ActionQuit)

			if out != (Outcome{Quit: true}) {
				t.Errorf("Step(Quit) = %+v, expected only Quit", out)
			}
			if !reflect.DeepEqual(before, g.Snapshot()) {
				t.Error("Quit should not mutate state")
			}
		})
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultTimberConfig()
	inputs := []core.Action{
		core.ActionLeft, core.ActionNothing, core.ActionRight, core.ActionLeft,
		core.ActionRight, core.ActionNothing, core.ActionLeft, core.ActionRight,
	}

	run := func() Snapshot {
		g := New(cfg, rand.New(rand.NewSource(12345)))
		for i := 0; i < 100; i++ {
			g.Step(inputs[i%len(inputs)])
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("determinism failed:\n%+v\n%+v", a, b)
	}
}

func TestChopAgainstEmptyTrackPanics(t *testing.T) {
	g := newTestGame(t)
	g.track = nil

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an empty track")
		}
	}()
	g.Step(core.ActionLeft)
}
