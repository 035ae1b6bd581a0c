package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vovakirdan/tetrisus/internal/games/tetris"
)

// DefaultScoreFile is the legacy best-score file name.
const DefaultScoreFile = "score.json"

// scoreFile is the on-disk layout of the best-score file.
type scoreFile struct {
	Score int `json:"score"`
}

// FileBest keeps the best score in a small JSON file.
type FileBest struct {
	mu   sync.Mutex
	path string
}

// NewFileBest returns a file-backed best-score store. A leading ~ in path
// is expanded.
func NewFileBest(path string) (*FileBest, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileBest{path: path}, nil
}

// Path returns the file location.
func (f *FileBest) Path() string {
	return f.path
}

// ReadBest returns the stored score, or 0 if the file is missing or unreadable.
func (f *FileBest) ReadBest() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	var sf scoreFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return 0
	}
	return sf.Score
}

// WriteBest replaces the file contents atomically.
func (f *FileBest) WriteBest(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(scoreFile{Score: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode score: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".score-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cannot replace score file: %w", err)
	}
	return nil
}

var _ tetris.BestScoreStore = (*FileBest)(nil)
