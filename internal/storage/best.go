package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetrisus/internal/games/tetris"
)

// BestScore adapts a Store to the game's best-score interface.
type BestScore struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewBestScore returns a best-score store for gameID backed by s.
// A nil logger discards read errors.
func NewBestScore(s *Store, gameID string, logger *log.Logger) *BestScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestScore{store: s, gameID: gameID, logger: logger}
}

// ReadBest returns the stored best, or 0 when nothing is stored or the read fails.
func (b *BestScore) ReadBest() int {
	score, err := b.store.BestScore(b.gameID)
	if err != nil {
		b.logger.Warn("could not read best score", "game", b.gameID, "error", err)
		return 0
	}
	return score
}

// WriteBest replaces the stored best.
func (b *BestScore) WriteBest(score int) error {
	return b.store.SetBestScore(b.gameID, score)
}

// GameRecorder returns a lock subscriber that stores every finished game.
func (s *Store) GameRecorder(session string, logger *log.Logger) func(tetris.LockEvent) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return func(ev tetris.LockEvent) {
		if !ev.GameOver {
			return
		}
		_, err := s.RecordGame(GameRecord{
			GameID:  tetris.GameID,
			Session: session,
			Score:   ev.Score,
			Lines:   ev.Lines,
			Level:   ev.Level,
		})
		if err != nil {
			logger.Warn("could not record game", "session", session, "error", err)
		}
	}
}

var _ tetris.BestScoreStore = (*BestScore)(nil)
