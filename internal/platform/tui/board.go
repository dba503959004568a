package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

const (
	cellWidth  = 7 // Width of each cell (including borders), fits values up to 6 digits
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// renderGame draws the full game view: HUD, board and overlays.
func (m GameModel) renderGame(dst *core.Screen) {
	dst.Clear()

	snap := m.sess.Snapshot()

	boardW := snap.GridSize*cellWidth + 1  // +1 for right border
	boardH := snap.GridSize*cellHeight + 1 // +1 for bottom border

	// Check screen size
	if m.width < boardW+2 || m.height < boardH+hudHeight+3 {
		renderTooSmall(dst, m.width, m.height)
		return
	}

	boardX := (m.width - boardW) / 2
	boardY := hudHeight + 1

	m.renderHUD(dst, snap, boardX, boardW)
	renderBoard(dst, snap, boardX, boardY)
	m.renderOverlays(dst, snap, boardX, boardY, boardW, boardH)
	m.renderFooter(dst, boardY+boardH+1)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen, width, height int) {
	msg := "Window too small"
	x := (width - len(msg)) / 2
	y := height / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (width - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score, move count and clock above the board.
func (m GameModel) renderHUD(dst *core.Screen, snap session.Snapshot, boardX, boardW int) {
	// Title
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColor(titleX, 0, title, core.ColorBrightYellow)

	// Score and best score
	scoreStr := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", snap.BestScore)
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX+len(scoreStr)+2 {
		bestX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(bestX, 1, bestStr)

	// Moves and elapsed time
	movesStr := fmt.Sprintf("Moves: %d", snap.MoveCount)
	dst.DrawText(boardX, 2, movesStr)

	timeStr := fmt.Sprintf("Time: %s", formatElapsed(snap.Elapsed))
	timeX := boardX + boardW - len(timeStr)
	if timeX < boardX+len(movesStr)+2 {
		timeX = boardX + len(movesStr) + 2
	}
	dst.DrawText(timeX, 2, timeStr)

	// Target tile
	targetStr := fmt.Sprintf("Target: %d", m.settings.Game.WinningValue)
	targetX := boardX + (boardW-len(targetStr))/2
	dst.DrawTextColor(targetX, 3, targetStr, core.ColorGray)
}

// renderBoard draws the grid with tiles.
func renderBoard(dst *core.Screen, snap session.Snapshot, boardX, boardY int) {
	size := snap.GridSize

	// Draw grid borders
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			// Draw horizontal line to the right
			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Draw vertical line down
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for i := range snap.Tiles {
		t := &snap.Tiles[i]

		cellX := boardX + t.Col*cellWidth + 1
		cellY := boardY + t.Row*cellHeight + 1

		// Center the value in the cell
		valStr := strconv.Itoa(t.Value)
		padLeft := (cellWidth - 1 - len(valStr)) / 2
		if padLeft < 0 {
			padLeft = 0
		}

		dst.DrawTextColor(cellX+padLeft, cellY, valStr, tileColor(t.Value))
	}
}

// renderOverlays draws state overlays on top of the board.
func (m GameModel) renderOverlays(dst *core.Screen, snap session.Snapshot, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch snap.State {
	case session.StatePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case session.StateWon:
		target := fmt.Sprintf("You built a %d tile!", m.settings.Game.WinningValue)
		drawOverlay(dst, centerX, centerY, "YOU WIN!", target, "C: keep going  R: restart")
	case session.StateOver:
		maxStr := fmt.Sprintf("Max tile: %d", snap.MaxTile())
		scoreStr := fmt.Sprintf("Score: %d", snap.Score)
		drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, maxStr, "Press R to restart")
	}
}

// renderFooter draws the controls hint and any active toast line.
func (m GameModel) renderFooter(dst *core.Screen, y int) {
	hint := "Arrows/WASD: Move | P: Pause | R: Restart | Q: Quit"
	hintX := (m.width - len(hint)) / 2
	dst.DrawTextColor(hintX, y, hint, core.ColorGray)

	if m.toast != "" {
		toastX := (m.width - len(m.toast)) / 2
		dst.DrawTextColor(toastX, y+1, m.toast, core.ColorBrightGreen)
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	// Draw box
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	// Draw border
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	// Draw text
	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// formatElapsed renders a duration as MM:SS.
func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
