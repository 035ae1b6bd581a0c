package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tetrisus/internal/games/tetris"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndTopGames(t *testing.T) {
	store := openTestStore(t)

	records := []GameRecord{
		{GameID: "tetris", Session: "a", Score: 100, Lines: 1, Level: 1},
		{GameID: "tetris", Session: "b", Score: 50, Lines: 0, Level: 1},
		{GameID: "tetris", Session: "a", Score: 2400, Lines: 23, Level: 2},
		{GameID: "other", Session: "c", Score: 9999},
	}
	for _, r := range records {
		if _, err := store.RecordGame(r); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	top, err := store.TopGames("tetris", 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}

	wantScores := []int{2400, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
	}
	if top[0].Lines != 23 || top[0].Level != 2 || top[0].Session != "a" {
		t.Errorf("top[0] = %+v, fields not preserved", top[0])
	}

	limited, err := store.TopGames("tetris", 2)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 games with limit, got %d", len(limited))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("tetris")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	if err := store.SetBestScore("tetris", 500); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	if err := store.SetBestScore("tetris", 800); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}

	best, err = store.BestScore("tetris")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 800 {
		t.Errorf("Expected best 800, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordGame(GameRecord{GameID: "tetris", Score: 100})
	store.SetBestScore("tetris", 100)
	store.RecordGame(GameRecord{GameID: "other", Score: 300})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	top, _ := store.TopGames("tetris", 10)
	if len(top) != 0 {
		t.Errorf("Expected 0 games after clear, got %d", len(top))
	}
	best, _ := store.BestScore("tetris")
	if best != 0 {
		t.Errorf("Expected best 0 after clear, got %d", best)
	}

	other, _ := store.TopGames("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game should be unaffected, got %d games", len(other))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.RecordGame(GameRecord{GameID: "tetris", Score: 100, Lines: 1})
	store.RecordGame(GameRecord{GameID: "tetris", Score: 300, Lines: 2})

	stats, err = store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalLines != 3 {
		t.Errorf("TotalLines = %d, expected 3", stats.TotalLines)
	}
}

func TestBestScoreAdapter(t *testing.T) {
	store := openTestStore(t)
	best := NewBestScore(store, tetris.GameID, nil)

	if got := best.ReadBest(); got != 0 {
		t.Errorf("ReadBest() = %d, expected 0", got)
	}
	if err := best.WriteBest(1234); err != nil {
		t.Fatalf("WriteBest() failed: %v", err)
	}
	if got := best.ReadBest(); got != 1234 {
		t.Errorf("ReadBest() = %d, expected 1234", got)
	}
}

func TestGameRecorderStoresFinishedGames(t *testing.T) {
	store := openTestStore(t)
	record := store.GameRecorder("session-1", nil)

	record(tetris.LockEvent{Score: 18, Lines: 0, Level: 1})
	record(tetris.LockEvent{Score: 418, Lines: 3, Level: 1, GameOver: true})

	top, err := store.TopGames(tetris.GameID, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("Expected only the finished game, got %d", len(top))
	}
	if top[0].Score != 418 || top[0].Lines != 3 || top[0].Session != "session-1" {
		t.Errorf("recorded %+v", top[0])
	}
}
