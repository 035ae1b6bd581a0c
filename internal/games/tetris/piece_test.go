package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for k := KindI; k <= KindJ; k++ {
		t.Run(k.String(), func(t *testing.T) {
			s := ShapeOf(k)
			r := s
			for range 4 {
				r = Rotate(r)
			}
			assert.True(t, s.Equal(r))
		})
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	s := ShapeOf(KindS)
	r := Rotate(s)

	require.Equal(t, 3, r.Height())
	require.Equal(t, 2, r.Width())
	assert.True(t, r.Equal(Shape{
		{4, 0},
		{4, 4},
		{0, 4},
	}))
	assert.True(t, s.Equal(ShapeOf(KindS)), "Rotate must not modify its input")
}

func TestRotateI(t *testing.T) {
	r := Rotate(ShapeOf(KindI))
	assert.True(t, r.Equal(Shape{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	}))
}

func TestCatalog(t *testing.T) {
	for k := KindI; k <= KindJ; k++ {
		s := ShapeOf(k)
		assert.Equal(t, k, s.Kind())

		cells := 0
		for _, row := range s {
			for _, c := range row {
				if c != 0 {
					assert.Equal(t, Cell(k), c)
					cells++
				}
			}
		}
		assert.Equal(t, 4, cells, "kind %v", k)
	}

	assert.Nil(t, ShapeOf(0))
	assert.Nil(t, ShapeOf(8))
}

func TestCellColor(t *testing.T) {
	assert.NotEqual(t, CellColor(1), CellColor(2))
	assert.Equal(t, CellColor(ProbeCell), CellColor(ProbeCell+3))
	assert.NotEqual(t, CellColor(7), CellColor(ProbeCell))
}

func TestTryMoveRespectsWallsAndFloor(t *testing.T) {
	b := NewBoard()

	left := NewPiece(ShapeOf(KindO), 0, 0)
	assert.False(t, left.TryMove(&b, -1, 0, false))
	assert.True(t, left.TryMove(&b, 1, 0, false))

	right := NewPiece(ShapeOf(KindO), 8, 0)
	assert.False(t, right.TryMove(&b, 1, 0, false))

	floor := NewPiece(ShapeOf(KindO), 0, 23)
	assert.False(t, floor.TryMove(&b, 0, 1, false))
	assert.Zero(t, b.Filled())
}

func TestTryMoveRejectsRotationIntoWall(t *testing.T) {
	b := NewBoard()
	// Vertical I hugging the left wall: its column is x+1, so x = -1.
	p := NewPiece(Rotate(ShapeOf(KindI)), -1, 5)
	require.True(t, b.Fits(p.Shape, p.X, p.Y))
	assert.False(t, p.TryMove(&b, 0, 0, true))
}

func TestShiftErasesBeforeProbing(t *testing.T) {
	b := NewBoard()
	p := NewPiece(ShapeOf(KindO), 4, 5)
	b.Apply(p, false)

	require.True(t, p.Shift(&b, 0, 1, false))
	assert.Equal(t, 6, p.Y)
	assert.Equal(t, 4, b.Filled())
	assert.True(t, b.IsRowEmpty(5))
	assert.Equal(t, Cell(3), b[7][4])
}

func TestShiftBlockedKeepsPiece(t *testing.T) {
	b := NewBoard()
	b[10][4] = 1
	p := NewPiece(ShapeOf(KindO), 4, 8)
	b.Apply(p, false)

	assert.False(t, p.Shift(&b, 0, 1, false))
	assert.Equal(t, 8, p.Y)
	assert.Equal(t, 5, b.Filled())
	assert.Equal(t, Cell(3), b[9][5])
	assert.Equal(t, Cell(1), b[10][4])
}

func TestShiftRotates(t *testing.T) {
	b := NewBoard()
	p := NewPiece(ShapeOf(KindT), 4, 5)
	b.Apply(p, false)

	require.True(t, p.Shift(&b, 0, 0, true))
	assert.True(t, p.Shape.Equal(Rotate(ShapeOf(KindT))))
	assert.Equal(t, 4, b.Filled())
}

func TestDrop(t *testing.T) {
	b := NewBoard()
	p := NewPiece(ShapeOf(KindO), 4, 0)
	b.Apply(p, false)

	assert.Equal(t, 23, p.Drop(&b))
	assert.Equal(t, 23, p.Y)
	assert.Equal(t, Cell(3), b[24][4])
	assert.Equal(t, 4, b.Filled())
	assert.Zero(t, p.Drop(&b))
}

func TestLockedPieceDoesNotMove(t *testing.T) {
	b := NewBoard()
	p := NewPiece(ShapeOf(KindO), 4, 0)
	b.Apply(p, false)
	p.lock()

	assert.True(t, p.Locked())
	assert.Equal(t, PieceLocked, p.State())
	assert.False(t, p.Shift(&b, 0, 1, false))
	assert.Zero(t, p.Drop(&b))
	assert.Equal(t, 0, p.Y)
}
