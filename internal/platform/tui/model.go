package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/timber/internal/audio"
	"github.com/vovakirdan/timber/internal/core"
	"github.com/vovakirdan/timber/internal/games/timber"
)

// Model is the Bubble Tea model that drives the game loop. Every tick is
// one frame: drain input, step the game, perform the step's effects.
type Model struct {
	game     *timber.Game
	screen   *core.Screen
	input    *core.InputQueue
	keys     KeyMap
	player   audio.Player
	logger   *log.Logger
	frame    time.Duration
	quitting bool
}

// NewModel creates a model for the given game and draws the first frame.
func NewModel(game *timber.Game, player audio.Player, logger *log.Logger, cfg core.RuntimeConfig) Model {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		input:  core.NewInputQueue(),
		keys:   DefaultKeyMap(),
		player: player,
		logger: logger,
		frame:  cfg.FrameTime,
	}
	timber.Render(m.screen, game.Snapshot())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.frame),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.input.Push(m.keys.Sequence(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize repaints the whole scene at the new size. Game state is
// left untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)

	snap := m.game.Snapshot()
	timber.Render(m.screen, snap)
	if snap.Alive {
		timber.RenderTimer(m.screen, snap)
	} else {
		timber.RenderGameOver(m.screen)
	}
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	action := core.DecodeInput(m.input.Drain())
	out := m.game.Step(action)

	// Leaving the alt screen restores the terminal's colors and cursor
	if out.Quit {
		m.quitting = true
		snap := m.game.Snapshot()
		m.logger.Info("quit", "score", snap.Score, "trees", snap.Trees)
		return m, tea.Quit
	}

	m.apply(out)
	return m, tickCmd(m.frame)
}

// apply performs the effects of a step in order.
func (m Model) apply(out timber.Outcome) {
	snap := m.game.Snapshot()

	if out.Restarted {
		m.logger.Info("restart")
	}
	if out.Redraw {
		timber.Render(m.screen, snap)
	}
	if out.GameOver {
		timber.RenderGameOver(m.screen)
		m.logger.Info("game over", "reason", out.Reason, "score", snap.Score, "trees", snap.Trees)
	}
	if out.Timer {
		bar := snap
		bar.Elapsed = out.Elapsed
		timber.RenderTimer(m.screen, bar)
	}

	switch out.Cue {
	case core.CueNone:
		return
	case core.CueTree:
		m.logger.Debug("tree felled", "trees", snap.Trees, "score", snap.Score, "budget", snap.Total)
	}
	m.player.Play(out.Cue)
}

// Quitting reports whether the loop has been asked to stop.
func (m Model) Quitting() bool {
	return m.quitting
}

// Screen returns the model's screen buffer.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// View renders the current screen buffer for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *timber.Game, player audio.Player, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, player, logger, cfg)
	logger.Info("start", "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
