package tetris

import "sync"

// BestScoreStore persists the single best score across games.
type BestScoreStore interface {
	// ReadBest returns the stored best score, or 0 if none exists.
	ReadBest() int

	// WriteBest replaces the stored best score.
	WriteBest(score int) error
}

// MemoryBest keeps the best score in memory. It is the default store and is
// used when no persistent store is available.
type MemoryBest struct {
	mu    sync.Mutex
	score int
}

// ReadBest returns the stored score.
func (m *MemoryBest) ReadBest() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// WriteBest stores the score.
func (m *MemoryBest) WriteBest(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}
