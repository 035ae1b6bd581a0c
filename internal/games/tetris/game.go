package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetrisus/internal/config"
	"github.com/vovakirdan/tetrisus/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "tetris"

// LockEvent describes a piece that failed a downward move and was merged
// into the board. Scoring for the lock has already been applied.
type LockEvent struct {
	Kind     Kind
	X, Y     int
	Rows     int // Rows cleared by this lock
	Score    int // Score after the lock
	Lines    int // Total rows cleared this game
	Level    int
	GameOver bool
}

// Game is the top-level state machine. It exclusively owns the board, the
// falling piece and the queue.
type Game struct {
	cfg    config.TetrisConfig
	rng    *rand.Rand
	store  BestScoreStore
	logger *log.Logger

	board Board
	piece *Piece
	queue *Queue

	subscribers []func(LockEvent)

	tick     uint64
	locks    int
	score    int
	lines    int
	level    int
	speed    int // Ticks between automatic drops
	counter  int // Ticks since the last automatic drop
	best     int // Best score read at the start of the game
	softDrop bool
	paused   bool
	muted    bool
	gameOver bool

	screenW int
	screenH int
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the tuning parameters. An invalid config is ignored and
// the defaults stay in place.
func WithConfig(cfg config.TetrisConfig) Option {
	return func(g *Game) {
		if cfg.Validate() == nil {
			g.cfg = cfg
		}
	}
}

// WithStore sets the best-score store.
func WithStore(s BestScoreStore) Option {
	return func(g *Game) {
		if s != nil {
			g.store = s
		}
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultTetrisConfig(),
		store:  &MemoryBest{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetrisus"
}

// Subscribe registers fn to be called once for every locked piece.
// Subscriptions survive new games.
func (g *Game) Subscribe(fn func(LockEvent)) {
	g.subscribers = append(g.subscribers, fn)
}

// Reset initializes/restarts the game with a fresh board, piece and queue.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.board = NewBoard()
	g.queue = NewQueue(g.rng)
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = 1
	g.softDrop = false
	g.speed = g.speedForLevel()
	g.counter = 0
	g.paused = false
	g.muted = false
	g.gameOver = false
	g.best = g.store.ReadBest()

	g.deal()
}

// NewGame persists the score if it beats the stored best, then starts over.
func (g *Game) NewGame() {
	g.SaveBest()

	var seed int64
	if g.rng != nil {
		seed = g.rng.Int63()
	}
	g.Reset(core.RuntimeConfig{
		Seed:    seed,
		ScreenW: g.screenW,
		ScreenH: g.screenH,
	})
}

// SaveBest writes the current score to the store if it beats the stored
// best. A failed write is logged and reported as false.
func (g *Game) SaveBest() bool {
	best := g.store.ReadBest()
	if g.score <= best {
		return false
	}
	if err := g.store.WriteBest(g.score); err != nil {
		g.logger.Warn("could not save best score", "score", g.score, "error", err)
		return false
	}
	g.logger.Info("new best score", "score", g.score, "previous", best)
	return true
}

// Step advances the game by one tick. The frame's commands are applied in
// order before the tick's automatic drop.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	locksBefore := g.locks

	for _, a := range input.Actions() {
		g.apply(a)
	}

	if g.canMove() {
		g.counter++
		if g.counter >= g.speed {
			g.counter = 0
			g.fall()
		}
	}

	return core.StepResult{State: g.State(), Locked: g.locks - locksBefore}
}

// apply routes one command to its operation.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionRestart:
		g.NewGame()
	case core.ActionPause:
		g.TogglePause()
	case core.ActionMute:
		g.ToggleMute()
	case core.ActionMoveLeft:
		g.MoveLeft()
	case core.ActionMoveRight:
		g.MoveRight()
	case core.ActionRotate:
		g.Rotate()
	case core.ActionSoftDropStart:
		g.StartSoftDrop()
	case core.ActionSoftDropEnd:
		g.EndSoftDrop()
	case core.ActionHardDrop:
		g.HardDrop()
	}
}

// canMove reports whether pieces accept movement right now.
func (g *Game) canMove() bool {
	return !g.paused && !g.gameOver && g.piece != nil
}

// MoveLeft shifts the piece one column left if legal.
func (g *Game) MoveLeft() bool {
	if !g.canMove() {
		return false
	}
	return g.piece.Shift(&g.board, -1, 0, false)
}

// MoveRight shifts the piece one column right if legal.
func (g *Game) MoveRight() bool {
	if !g.canMove() {
		return false
	}
	return g.piece.Shift(&g.board, 1, 0, false)
}

// Rotate turns the piece clockwise if legal.
func (g *Game) Rotate() bool {
	if !g.canMove() {
		return false
	}
	return g.piece.Shift(&g.board, 0, 0, true)
}

// StartSoftDrop forces one tick between drops until EndSoftDrop.
func (g *Game) StartSoftDrop() {
	if !g.canMove() {
		return
	}
	g.softDrop = true
	g.counter = 0
	g.speed = 1
}

// EndSoftDrop restores the level's drop speed. Accepted while paused.
func (g *Game) EndSoftDrop() {
	g.softDrop = false
	g.speed = g.speedForLevel()
}

// HardDrop drops the piece to its resting row and locks it.
func (g *Game) HardDrop() int {
	if !g.canMove() {
		return 0
	}
	rows := g.piece.Drop(&g.board)
	g.lock()
	return rows
}

// TogglePause flips the paused flag. Accepted at any time.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// ToggleMute flips the muted flag. It has no effect on the simulation.
func (g *Game) ToggleMute() {
	g.muted = !g.muted
}

// fall performs one downward move, locking the piece when it cannot move.
func (g *Game) fall() {
	if !g.piece.Shift(&g.board, 0, 1, false) {
		g.lock()
	}
}

// lock merges the piece, scores cleared rows and deals the next piece
// unless the stack reached the game-over row.
func (g *Game) lock() {
	p := g.piece
	p.lock()
	g.locks++

	rows := g.board.ClearFullRows()
	g.score += g.cfg.Scoring.Points(rows)
	g.lines += rows
	if lvl := g.lines / g.cfg.Level.LinesPerLevel; lvl > g.level {
		g.level = lvl
	}
	if !g.softDrop {
		g.speed = g.speedForLevel()
	}

	if g.board.IsRowEmpty(GameOverRow) {
		g.deal()
	} else {
		g.gameOver = true
		g.logger.Info("game over", "score", g.score, "lines", g.lines, "level", g.level)
	}

	ev := LockEvent{
		Kind:     p.Kind,
		X:        p.X,
		Y:        p.Y,
		Rows:     rows,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
	}
	g.logger.Debug("piece locked", "kind", p.Kind, "x", p.X, "y", p.Y, "rows", rows, "score", g.score)
	for _, fn := range g.subscribers {
		fn(ev)
	}
}

// deal takes the next piece from the queue and places it at the spawn point.
func (g *Game) deal() {
	g.piece = NewPiece(g.queue.Advance(), g.cfg.Spawn.Column, 0)
	g.board.Apply(g.piece, false)
}

func (g *Game) speedForLevel() int {
	return max(g.cfg.Speed.Min, g.cfg.Speed.Base-g.level)
}

// Board returns a copy of the cell grid, including the falling piece.
func (g *Game) Board() Board {
	return g.board
}

// Piece returns a copy of the falling (or last locked) piece, or the zero
// Piece before the first Reset.
func (g *Game) Piece() Piece {
	if g.piece == nil {
		return Piece{}
	}
	p := *g.piece
	p.Shape = p.Shape.Clone()
	return p
}

// Next returns the lookahead kind.
func (g *Game) Next() Kind {
	return g.queue.Peek()
}

// NextShape returns the lookahead's shape.
func (g *Game) NextShape() Shape {
	return g.queue.PeekShape()
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lines returns the rows cleared this game.
func (g *Game) Lines() int { return g.lines }

// Level returns the current level.
func (g *Game) Level() int { return g.level }

// Speed returns the ticks between automatic drops.
func (g *Game) Speed() int { return g.speed }

// Best returns the best score read when this game started.
func (g *Game) Best() int { return g.best }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// Muted reports whether sound effects are muted.
func (g *Game) Muted() bool { return g.muted }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// SoftDropping reports whether the soft-drop override is active.
func (g *Game) SoftDropping() bool { return g.softDrop }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Muted:    g.muted,
	}
}

var _ core.Game = (*Game)(nil)
