package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/timber/internal/core"
)

// KeyMap holds the game's key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the fixed bindings of the game.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "chop left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "chop right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "repeat"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Sequence translates a key message back to the bytes a raw terminal
// sends for it, so the frame loop decodes one input format regardless of
// how keys were delivered. Keys with no byte form return nil.
func (km KeyMap) Sequence(msg tea.KeyMsg) []byte {
	switch {
	case key.Matches(msg, km.Left):
		return append([]byte(nil), core.SeqLeft...)
	case key.Matches(msg, km.Right):
		return append([]byte(nil), core.SeqRight...)
	case key.Matches(msg, km.Restart):
		return []byte("r")
	case key.Matches(msg, km.Quit):
		if msg.Type == tea.KeyCtrlC {
			return []byte{0x03}
		}
		return []byte("q")
	}

	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return nil
	}
	seq := []byte(string(msg.Runes))
	if msg.Alt {
		seq = append([]byte{0x1b}, seq...)
	}
	return seq
}
