package tetris

import (
	"fmt"

	"github.com/vovakirdan/tetrisus/internal/core"
)

// Layout constants for the terminal rendering.
const (
	cellW        = 2 // Screen columns per board cell
	visibleRows  = BoardHeight - 1
	boardFrameW  = BoardWidth*cellW + 2
	boardFrameH  = visibleRows + 2
	panelGap     = 2
	panelW       = 20
	layoutW      = boardFrameW + panelGap + panelW
	statsPanelH  = 7
	nextPanelH   = 6
	statusPanelH = 4
)

// MinScreenSize returns the smallest screen that fits the full layout.
func MinScreenSize() (w, h int) {
	return layoutW, boardFrameH
}

// Render draws the game to the screen. Row 0 of the board is the hidden
// buffer row and is never drawn.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	layout := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(layoutW, boardFrameH)

	frame := core.NewRect(layout.X, layout.Y, boardFrameW, boardFrameH)
	g.renderBoard(dst, frame)

	stats := core.NewRect(frame.Right()+panelGap, layout.Y, panelW, statsPanelH)
	next := stats.Below(nextPanelH)
	g.renderStats(dst, stats)
	g.renderNext(dst, next)
	g.renderStatus(dst, next.Below(statusPanelH))

	switch {
	case g.gameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.score)}
		if g.score > g.best {
			lines = append(lines, "New best!")
		}
		lines = append(lines, "R to restart")
		renderOverlay(dst, frame, lines...)
	case g.paused:
		renderOverlay(dst, frame, "PAUSED", "P to resume")
	}
}

// renderBoard draws the frame and the visible rows.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect) {
	dst.DrawBox(frame)
	for row := 1; row < BoardHeight; row++ {
		y := frame.Y + row // row 1 lands just inside the top edge
		for col := 0; col < BoardWidth; col++ {
			x := frame.X + 1 + col*cellW
			drawCell(dst, x, y, g.board[row][col])
		}
	}
}

func drawCell(dst *core.Screen, x, y int, c Cell) {
	if c == 0 {
		dst.SetColor(x, y, ' ', core.ColorDefault)
		dst.SetColor(x+1, y, '.', core.ColorGray)
		return
	}
	color := CellColor(c)
	dst.SetColor(x, y, '█', color)
	dst.SetColor(x+1, y, '█', color)
}

func (g *Game) renderStats(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	dst.DrawTextColor(r.X+2, r.Y+1, fmt.Sprintf("SCORE: %d", g.score), core.ColorWhite)
	dst.DrawText(r.X+2, r.Y+2, fmt.Sprintf("LEVEL: %d", g.level))
	dst.DrawText(r.X+2, r.Y+3, fmt.Sprintf("LINES: %d", g.lines))
	dst.DrawTextColor(r.X+2, r.Y+5, fmt.Sprintf("BEST:  %d", max(g.best, g.score)), core.ColorGray)
}

func (g *Game) renderNext(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	dst.DrawText(r.X+2, r.Y+1, "NEXT:")

	shape := g.NextShape()
	x0 := r.X + (r.W-shape.Width()*cellW)/2
	for i, row := range shape {
		for j, c := range row {
			if c != 0 {
				drawCell(dst, x0+j*cellW, r.Y+2+i, c)
			}
		}
	}
}

func (g *Game) renderStatus(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	if g.paused {
		dst.DrawTextColor(r.X+2, r.Y+1, "PAUSED", core.ColorAlert)
	}
	if g.muted {
		dst.DrawTextColor(r.X+2, r.Y+2, "MUTED", core.ColorGray)
	}
	if g.softDrop {
		dst.DrawTextColor(r.X+10, r.Y+1, "FAST", core.ColorWhite)
	}
}

// renderOverlay draws a boxed message centered on the given area.
func renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := area.Centered(boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		dst.DrawTextColor(x, box.Y+1+i, l, core.ColorAlert)
	}
}
