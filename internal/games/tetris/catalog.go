// Package tetris implements the falling-block puzzle simulation: the board,
// the seven pieces, legality probing, line clearing and the scoring state
// machine. Terminal concerns stay in the platform layer.
package tetris

import "github.com/vovakirdan/tetrisus/internal/core"

// Cell is a board or shape cell. 0 is empty, 1..7 name the piece kind that
// occupies it.
type Cell uint8

// Kind identifies one of the seven piece shapes. Its value equals the tag
// the shape writes into board cells.
type Kind uint8

const (
	KindI Kind = iota + 1
	KindT
	KindO
	KindS
	KindZ
	KindL
	KindJ
)

// KindCount is the number of distinct pieces.
const KindCount = 7

// ProbeCell marks a candidate cell during a legality probe. It is one above
// the largest kind tag, so a probe landing on any occupied cell exceeds it.
const ProbeCell = Cell(KindCount + 1)

// Shape is a piece occupancy matrix indexed [row][col].
type Shape [][]Cell

var catalog = [KindCount]Shape{
	{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	},
	{
		{0, 2, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	{
		{3, 3},
		{3, 3},
	},
	{
		{0, 4, 4},
		{4, 4, 0},
	},
	{
		{5, 5, 0},
		{0, 5, 5},
	},
	{
		{0, 0, 6},
		{6, 6, 6},
	},
	{
		{7, 0, 0},
		{7, 7, 7},
	},
}

var kindColors = [KindCount]core.Color{
	core.ColorCyan,    // I
	core.ColorMagenta, // T
	core.ColorYellow,  // O
	core.ColorGreen,   // S
	core.ColorRed,     // Z
	core.ColorBlue,    // L
	core.ColorOrange,  // J
}

// ShapeOf returns a fresh copy of the spawn shape for a kind.
// Unknown kinds yield nil.
func ShapeOf(k Kind) Shape {
	if !k.Valid() {
		return nil
	}
	return catalog[k-1].Clone()
}

// Valid reports whether k names one of the seven pieces.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindJ
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return string("ITOSZLJ"[k-1])
}

// CellColor maps a cell value to its display color. Values above the
// largest kind only appear while cells overlap and render gray.
func CellColor(c Cell) core.Color {
	switch {
	case c == 0:
		return core.ColorDefault
	case c <= KindCount:
		return kindColors[c-1]
	default:
		return core.ColorGray
	}
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// Kind returns the piece kind tagged in the shape's cells.
func (s Shape) Kind() Kind {
	for _, row := range s {
		for _, c := range row {
			if c != 0 {
				return Kind(c)
			}
		}
	}
	return 0
}

// Width returns the number of columns of the bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows of the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Rotate returns the shape turned 90 degrees clockwise. An R×C shape
// becomes C×R with out[i][j] = s[R-1-j][i]. The input is not modified.
func Rotate(s Shape) Shape {
	rows, cols := s.Height(), s.Width()
	out := make(Shape, cols)
	for i := 0; i < cols; i++ {
		out[i] = make([]Cell, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}
