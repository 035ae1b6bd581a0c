package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetrisus/internal/core"
)

func fillRow(b *Board, row int, v Cell) {
	for col := range b[row] {
		b[row][col] = v
	}
}

func TestIsRowFull(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.IsRowFull(24))
	assert.True(t, b.IsRowEmpty(24))

	fillRow(&b, 24, 1)
	assert.True(t, b.IsRowFull(24))
	assert.False(t, b.IsRowEmpty(24))

	b[24][9] = 0
	assert.False(t, b.IsRowFull(24))
}

func TestClearFullRowsSingle(t *testing.T) {
	b := NewBoard()
	fillRow(&b, 24, 1)
	b[23][0] = 2

	require.Equal(t, 1, b.ClearFullRows())
	assert.Equal(t, Cell(2), b[24][0])
	assert.Equal(t, 1, b.Filled())
	assert.True(t, b.IsRowEmpty(0))
}

func TestClearFullRowsKeepsOrder(t *testing.T) {
	b := NewBoard()
	fillRow(&b, 20, 1)
	fillRow(&b, 22, 1)
	b[19][5] = 6
	b[21][3] = 4
	b[23][1] = 7

	require.Equal(t, 2, b.ClearFullRows())

	// Rows below every cleared row stay put, the others drop by the
	// number of cleared rows beneath them.
	assert.Equal(t, Cell(7), b[23][1])
	assert.Equal(t, Cell(4), b[22][3])
	assert.Equal(t, Cell(6), b[21][5])
	assert.Equal(t, 3, b.Filled())
	for row := 0; row <= 20; row++ {
		assert.True(t, b.IsRowEmpty(row), "row %d", row)
	}
}

func TestClearFullRowsCounts(t *testing.T) {
	tests := []struct {
		name string
		rows []int
		want int
	}{
		{"none", nil, 0},
		{"single", []int{24}, 1},
		{"double", []int{23, 24}, 2},
		{"triple", []int{10, 15, 24}, 3},
		{"tetris", []int{21, 22, 23, 24}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			for _, r := range tt.rows {
				fillRow(&b, r, 5)
			}
			assert.Equal(t, tt.want, b.ClearFullRows())
			assert.Zero(t, b.Filled())
		})
	}
}

func TestApplyAddsAndErases(t *testing.T) {
	b := NewBoard()
	p := NewPiece(ShapeOf(KindO), 0, 0)

	b.Apply(p, false)
	assert.Equal(t, Cell(3), b[0][0])
	assert.Equal(t, Cell(3), b[0][1])
	assert.Equal(t, Cell(3), b[1][0])
	assert.Equal(t, Cell(3), b[1][1])
	assert.Equal(t, 4, b.Filled())

	b.Apply(p, true)
	assert.Zero(t, b.Filled())
}

func TestApplyClampsToEdges(t *testing.T) {
	b := NewBoard()
	// The I occupies columns 8..11 of row 1; the last two clamp onto column 9.
	p := NewPiece(ShapeOf(KindI), 8, 0)

	b.Apply(p, false)
	assert.Equal(t, Cell(1), b[1][8])
	assert.Equal(t, Cell(3), b[1][9])

	b.Apply(p, true)
	assert.Zero(t, b.Filled())
}

func TestFits(t *testing.T) {
	b := NewBoard()
	b[10][4] = 5

	tests := []struct {
		name string
		kind Kind
		x, y int
		want bool
	}{
		{"open space", KindO, 0, 0, true},
		{"bottom right corner", KindO, 8, 23, true},
		{"past right wall", KindO, 9, 0, false},
		{"past left wall", KindO, -1, 0, false},
		{"below floor", KindO, 0, 24, false},
		{"above top is allowed", KindI, 0, -2, true},
		{"clamped cells collide", KindO, 0, -1, false},
		{"empty rows ignored", KindI, 0, -1, true},
		{"overlaps occupied cell", KindO, 3, 9, false},
		{"touches occupied cell", KindO, 2, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b
			assert.Equal(t, tt.want, b.Fits(ShapeOf(tt.kind), tt.x, tt.y))
			assert.Equal(t, before, b, "Fits must not modify the board")
		})
	}
}

func TestRowQueriesOnGameBoard(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	assert.Equal(t, 4, g.Board().Filled())
	assert.True(t, g.Board().IsRowEmpty(24))
	assert.False(t, g.Board().IsRowFull(1))
	assert.Zero(t, NewBoard().Filled())
}
