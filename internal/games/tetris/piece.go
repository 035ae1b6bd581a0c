package tetris

// PieceState is the lifecycle state of an active piece.
type PieceState int

const (
	PieceFalling PieceState = iota
	PieceLocked
)

// String returns a human-readable name for the state.
func (s PieceState) String() string {
	switch s {
	case PieceFalling:
		return "falling"
	case PieceLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Piece is the falling piece: its current shape and the board position of
// the shape's top-left corner. While falling, its cells are kept applied to
// the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int
	state PieceState
}

// NewPiece creates a falling piece with the given shape at (x, y).
// The caller places it on the board.
func NewPiece(shape Shape, x, y int) *Piece {
	return &Piece{
		Kind:  shape.Kind(),
		Shape: shape,
		X:     x,
		Y:     y,
	}
}

// State returns the piece's lifecycle state.
func (p *Piece) State() PieceState {
	return p.state
}

// Locked reports whether the piece has been merged into the board.
func (p *Piece) Locked() bool {
	return p.state == PieceLocked
}

// TryMove reports whether the piece could move by (dx, dy), optionally
// rotating clockwise first. The piece's own cells must already be erased
// from b, otherwise they count as obstacles. Nothing is mutated.
func (p *Piece) TryMove(b *Board, dx, dy int, rotate bool) bool {
	shape := p.Shape
	if rotate {
		shape = Rotate(shape)
	}
	return b.Fits(shape, p.X+dx, p.Y+dy)
}

// Shift erases the piece, probes the move and re-places it, at the new
// position when legal or unchanged otherwise. Returns whether it moved.
func (p *Piece) Shift(b *Board, dx, dy int, rotate bool) bool {
	if p.Locked() {
		return false
	}

	b.Apply(p, true)
	ok := p.TryMove(b, dx, dy, rotate)
	if ok {
		p.X += dx
		p.Y += dy
		if rotate {
			p.Shape = Rotate(p.Shape)
		}
	}
	b.Apply(p, false)
	return ok
}

// Drop moves the piece down as far as it can go, at most one board height,
// and re-places it. Returns the number of rows travelled.
func (p *Piece) Drop(b *Board) int {
	if p.Locked() {
		return 0
	}

	b.Apply(p, true)
	rows := 0
	for range BoardHeight {
		if !p.TryMove(b, 0, 1, false) {
			break
		}
		p.Y++
		rows++
	}
	b.Apply(p, false)
	return rows
}

// lock marks the piece as merged into the board. Its cells are already there.
func (p *Piece) lock() {
	p.state = PieceLocked
}
