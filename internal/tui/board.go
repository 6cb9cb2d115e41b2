package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Board glyphs.
const (
	glyphHead = 'O'
	glyphBody = 'o'
	glyphFood = '*'
)

// boardScreenSize returns the screen dimensions needed for a grid: the cell
// area plus the border box.
func boardScreenSize(g game.Grid) (int, int) {
	n := g.Cells()
	return n + 2, n + 2
}

// hudLine formats the status line shown above the board. It lives outside the
// fixed-width board screen so a long name never clips the score or the tick
// interval.
func hudLine(run *game.Run, displayName string) string {
	return fmt.Sprintf(" %s - Score: %d  Tick: %dms",
		displayName, run.Score(), run.Interval().Milliseconds())
}

// renderBoard draws the run into dst: border box, food, and snake. Overlays
// (pause, game over) are drawn separately on top.
func renderBoard(dst *core.Screen, run *game.Run) {
	dst.Clear()

	g := run.Grid()
	n := g.Cells()

	// Border box; playfield starts one cell in.
	dst.DrawBox(0, 0, n+2, n+2)

	fx, fy := g.CellIndex(run.Food())
	dst.Set(1+fx, 1+fy, glyphFood)

	for i, seg := range run.Body() {
		cx, cy := g.CellIndex(seg)
		glyph := glyphBody
		if i == 0 {
			glyph = glyphHead
		}
		dst.Set(1+cx, 1+cy, glyph)
	}
}

// renderOverlay draws a centered two-line message box over the board.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Blank the box interior before drawing the frame and text.
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
