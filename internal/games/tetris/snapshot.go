package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lines     int
	Level     int
	Speed     int
	Locks     int
	PieceKind Kind
	PieceX    int
	PieceY    int
	Next      Kind
	SoftDrop  bool
	Muted     bool
	State     GameStateType
	Board     Board
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Speed:    g.speed,
		Locks:    g.locks,
		SoftDrop: g.softDrop,
		Muted:    g.muted,
		State:    state,
		Board:    g.board,
	}
	if g.piece != nil {
		snap.PieceKind = g.piece.Kind
		snap.PieceX = g.piece.X
		snap.PieceY = g.piece.Y
	}
	if g.queue != nil {
		snap.Next = g.queue.Peek()
	}
	return snap
}
