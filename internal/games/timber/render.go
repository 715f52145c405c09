package timber

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/timber/internal/core"
)

// Layout constants, in terminal columns and rows (1-based addressing).
const (
	segmentWidth  = 4  // Trunk and branch block width
	segmentHeight = 2  // Rows per track slot
	branchGap     = 4  // Distance from mid to the far edge of a branch
	timerRow      = 4  // Row of the timer bar
	timerCol      = 4  // First column of the timer bar
	timerMargin   = 8  // Columns not used by the timer bar
	panelWidth    = 18 // Game-over panel width
)

// Colors of the scene.
const (
	colorSky    = core.ColorBlue
	colorText   = core.ColorWhite
	colorTrunk  = core.ColorMaroon
	colorBranch = core.ColorGreen
	colorPlayer = core.ColorWhite
	colorFilled = core.ColorGreen
	colorRemain = core.ColorWhite
	colorPanel  = core.ColorRed
)

var block = strings.Repeat(" ", segmentWidth)

// Render draws the full playfield: sky, score header, tree and player.
// It repaints every cell, so rendering the same snapshot twice yields the
// same screen.
func Render(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()
	mid := w / 2

	// Pen colors left by a previous frame must not leak into the clear
	dst.SetForeground(colorText)
	dst.SetBackground(colorSky)
	dst.Clear()

	dst.MoveTo(2, 2)
	dst.Write(fmt.Sprintf("  Score: %d;  Trees: %d", s.Score, s.Trees))

	// Stump the player stands next to
	dst.SetBackground(colorTrunk)
	dst.MoveTo(mid-2, h-1)
	dst.Write(block)
	dst.MoveTo(mid-2, h)
	dst.Write(block)

	for i, o := range s.Track {
		height := i*segmentHeight + segmentHeight
		if height >= h {
			break
		}
		top, bottom := h-height-1, h-height

		dst.SetBackground(colorTrunk)
		dst.MoveTo(mid-2, top)
		dst.Write(block)
		dst.MoveTo(mid-2, bottom)
		dst.Write(block)

		col, ok := branchColumn(mid, o)
		if !ok {
			continue
		}
		dst.SetBackground(colorBranch)
		dst.MoveTo(col, top)
		dst.Write(block)
		dst.MoveTo(col, bottom)
		dst.Write(block)
	}

	dst.SetBackground(colorPlayer)
	dst.MoveTo(playerColumn(mid, s.LastAction), h)
	dst.Write(" ")
}

// branchColumn returns the first column of a branch block.
func branchColumn(mid int, o Obstacle) (int, bool) {
	switch o {
	case LeftBranch:
		return mid - 2 - branchGap, true
	case RightBranch:
		return mid + 2, true
	default:
		return 0, false
	}
}

// playerColumn returns the column of the player glyph for the last action.
func playerColumn(mid int, last core.Action) int {
	switch last {
	case core.ActionLeft:
		return mid - 4
	case core.ActionRight:
		return mid + 3
	default:
		return mid
	}
}

// RenderTimer draws the time bar over the header area. The filled part is
// proportional to elapsed/total. Nothing is drawn on narrow screens or once
// the budget is spent.
func RenderTimer(dst *core.Screen, s Snapshot) {
	w := dst.Width()
	if w <= timerMargin || s.Total <= s.Elapsed {
		return
	}

	span := w - timerMargin
	filled := int(float64(span) * (float64(s.Elapsed) / float64(s.Total)))
	filled = core.Clamp(filled, 0, span)

	dst.MoveTo(timerCol, timerRow)
	dst.SetBackground(colorFilled)
	dst.Write(strings.Repeat(" ", filled))
	dst.SetBackground(colorRemain)
	dst.Write(strings.Repeat(" ", span-filled))
}

// RenderGameOver draws the game-over panel centered on the screen.
func RenderGameOver(dst *core.Screen) {
	dst.SetBackground(colorPanel)
	dst.SetForeground(colorText)

	midX, midY := dst.Width()/2, dst.Height()/2
	col := midX - panelWidth/2

	lines := []string{
		"",
		"    GAME OVER!",
		"",
		" r - repeat",
		" q - quit",
	}
	for i, line := range lines {
		dst.MoveTo(col, midY-1+i)
		dst.Write(fmt.Sprintf("%-*s", panelWidth, line))
	}
}
