package blockblast

import (
	"fmt"

	"github.com/vovakirdan/block-blast/internal/blast"
	"github.com/vovakirdan/block-blast/internal/core"
)

const (
	cellWidth = 2  // Terminal columns per board cell
	slotWidth = 12 // Width of one offered-piece column
	hudHeight = 3
)

const (
	blockRune   = '█'
	ghostRune   = '▒'
	emptyRune   = '·'
	cursorLeft  = '['
	cursorRight = ']'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := blast.Size*cellWidth + 2
	boardH := blast.Size + 2
	panelW := blast.SlotCount * slotWidth
	contentW := max(boardW, panelW)

	left := (g.screenW - contentW) / 2
	boardX := left + (contentW-boardW)/2
	boardY := hudHeight
	panelY := boardY + boardH + 1

	g.renderHUD(dst, left, contentW)
	g.renderBoard(dst, boardX, boardY)
	g.renderPieces(dst, left+(contentW-panelW)/2, panelY)
	g.renderStatus(dst, left, panelY+5)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title and the score line.
func (g *Game) renderHUD(dst *core.Screen, x, w int) {
	title := "BLOCK BLAST"
	dst.DrawTextColor(x+(w-len(title))/2, 0, title, core.ColorHighlight)

	dst.DrawText(x, 1, fmt.Sprintf("Score: %d", g.session.Score()))

	best := fmt.Sprintf("Best: %d", g.session.HighScore())
	dst.DrawTextColor(x+w-len(best), 1, best, core.ColorYellow)
}

// cellPos returns the screen position of a board cell's left column.
func cellPos(boardX, boardY, row, col int) (int, int) {
	return boardX + 1 + col*cellWidth, boardY + 1 + row
}

// drawCell paints one board cell, cellWidth columns wide.
func drawCell(dst *core.Screen, x, y int, r rune, fg core.Color) {
	for i := range cellWidth {
		dst.SetColor(x+i, y, r, fg)
	}
}

// renderBoard draws the grid, placed blocks, the flash and the preview.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBoxColor(core.NewRect(boardX, boardY, blast.Size*cellWidth+2, blast.Size+2), core.ColorGray)

	board := g.session.Board()
	flashColor := core.Color(g.flash.color())
	empty := core.Color(g.cfg.Theme.EmptyCell)

	for row := range blast.Size {
		for col := range blast.Size {
			x, y := cellPos(boardX, boardY, row, col)
			switch {
			case g.flash.covers(row, col) && !board.IsOccupied(row, col):
				drawCell(dst, x, y, blockRune, flashColor)
			case board.IsOccupied(row, col):
				drawCell(dst, x, y, blockRune, core.Color(board.Cell(row, col)))
			default:
				dst.SetColor(x, y, emptyRune, empty)
			}
		}
	}

	if g.session.GameOver() {
		return
	}

	piece := g.session.Piece(g.selected)
	if piece == nil || !g.cfg.Display.ShowGhost {
		x, y := cellPos(boardX, boardY, g.cursorRow, g.cursorCol)
		dst.SetColor(x-1, y, cursorLeft, core.ColorHighlight)
		dst.SetColor(x+cellWidth, y, cursorRight, core.ColorHighlight)
		return
	}

	ghost := core.Color(g.cfg.Theme.ValidPreview)
	if !g.session.CanPlace(g.selected, g.cursorRow, g.cursorCol) {
		ghost = core.Color(g.cfg.Theme.InvalidPreview)
	}
	for _, c := range piece.Cells {
		row, col := g.cursorRow+c.DY, g.cursorCol+c.DX
		if !blast.InBounds(row, col) {
			continue
		}
		x, y := cellPos(boardX, boardY, row, col)
		drawCell(dst, x, y, ghostRune, ghost)
	}
}

// renderPieces draws the three offered pieces below the board.
func (g *Game) renderPieces(dst *core.Screen, x, y int) {
	board := g.session.Board()

	for slot, piece := range g.session.Offered() {
		sx := x + slot*slotWidth + 1

		if piece == nil {
			dst.DrawTextColor(sx, y, fmt.Sprintf(" %d  ----", slot+1), core.ColorDim)
			continue
		}

		labelColor := core.ColorDefault
		marker := " "
		if slot == g.selected {
			labelColor = core.ColorHighlight
			marker = ">"
		}
		dst.DrawTextColor(sx, y, fmt.Sprintf("%s%d %s", marker, slot+1, piece.Name), labelColor)

		fg := core.Color(piece.Color)
		if g.showHints && !blast.FitsAnywhere(&board, piece) {
			fg = core.ColorDim
		}
		ox, oy := piece.Origin()
		for _, c := range piece.Cells {
			px := sx + 1 + (c.DX-ox)*cellWidth
			py := y + 1 + (c.DY - oy)
			drawCell(dst, px, py, blockRune, fg)
		}
	}
}

// renderStatus draws the message line and, with hints on, the fit count.
func (g *Game) renderStatus(dst *core.Screen, x, y int) {
	if g.message != "" {
		dst.DrawTextColor(x, y, g.message, core.ColorYellow)
	}

	if !g.showHints || g.session.GameOver() {
		return
	}
	piece := g.session.Piece(g.selected)
	if piece == nil {
		return
	}
	board := g.session.Board()
	n := len(blast.ValidPositions(&board, piece))
	hint := fmt.Sprintf("%s fits in %d place(s)", piece.Name, n)
	color := core.ColorGreen
	if n == 0 {
		hint = piece.Name + " does not fit anywhere"
		color = core.ColorRed
	}
	dst.DrawTextColor(x, y+1, hint, color)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.GameOver() {
		snap := g.session.Snapshot()
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Lines: %d", snap.Lines),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorHighlight)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
