package tetris

import "github.com/vovakirdan/tetrisus/internal/core"

const (
	BoardWidth  = 10
	BoardHeight = 25 // row 0 is the hidden buffer row above the visible 24

	// GameOverRow is checked after every lock; anything left there ends the game.
	GameOverRow = 1
)

// Board is the playfield, indexed [row][col].
type Board [BoardHeight][BoardWidth]Cell

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	return b
}

// IsRowFull reports whether no cell in the row is empty.
func (b Board) IsRowFull(row int) bool {
	for _, c := range b[row] {
		if c == 0 {
			return false
		}
	}
	return true
}

// IsRowEmpty reports whether every cell in the row is empty.
func (b Board) IsRowEmpty(row int) bool {
	for _, c := range b[row] {
		if c != 0 {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Full rows are collected before any
// removal. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	var full []int
	for row := range b {
		if b.IsRowFull(row) {
			full = append(full, row)
		}
	}

	// Processing top-to-bottom keeps the collected indices valid: removing a
	// row only moves rows that are above every remaining index.
	for _, row := range full {
		copy(b[1:row+1], b[0:row])
		b[0] = [BoardWidth]Cell{}
	}
	return len(full)
}

// Apply adds the piece's tags to the board, or subtracts them when erase is
// set. Coordinates are clamped to the board edges.
func (b *Board) Apply(p *Piece, erase bool) {
	b.apply(p.Shape, p.X, p.Y, erase)
}

func (b *Board) apply(s Shape, x, y int, erase bool) {
	for i, row := range s {
		for j, c := range row {
			if c == 0 {
				continue
			}
			r, col := clampRow(y+i), clampCol(x+j)
			if erase {
				b[r][col] -= c
			} else {
				b[r][col] += c
			}
		}
	}
}

// Fits reports whether shape placed with its top-left at (x, y) stays inside
// the side walls and floor and touches no occupied cell. Rows above the top
// are allowed. The board is never modified; the probe runs on a copy.
func (b *Board) Fits(s Shape, x, y int) bool {
	probe := *b
	for i, row := range s {
		for j, c := range row {
			if c == 0 {
				continue
			}
			col, r := x+j, y+i
			if col < 0 || col >= BoardWidth || r >= BoardHeight {
				return false
			}
			cell := &probe[clampRow(r)][clampCol(col)]
			*cell += ProbeCell
			if *cell > ProbeCell {
				return false
			}
		}
	}
	return true
}

// Filled returns the number of non-empty cells.
func (b Board) Filled() int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c != 0 {
				n++
			}
		}
	}
	return n
}

func clampRow(r int) int {
	return core.Clamp(r, 0, BoardHeight-1)
}

func clampCol(c int) int {
	return core.Clamp(c, 0, BoardWidth-1)
}
