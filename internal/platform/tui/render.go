package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/timber/internal/core"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorDefault: lipgloss.NoColor{},
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorMaroon:  lipgloss.Color("#800000"),
}

// colorPair is the styling key of a cell.
type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
var styleCache = map[colorPair]lipgloss.Style{}

// styleFor returns the style for a foreground/background pair.
func styleFor(p colorPair) lipgloss.Style {
	if style, ok := styleCache[p]; ok {
		return style
	}
	fg, ok := palette[p.fg]
	if !ok {
		fg = lipgloss.NoColor{}
	}
	bg, ok := palette[p.bg]
	if !ok {
		bg = lipgloss.NoColor{}
	}
	style := lipgloss.NewStyle().Foreground(fg).Background(bg)
	styleCache[p] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(pair).Render(run.String()))
		}
	}
	return sb.String()
}
