package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func run(score int) ScoreEntry {
	return ScoreEntry{Score: score, Seed: 42, WallDensity: 0.1, MoveInterval: 120 * time.Millisecond}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore(run(score)); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreSaveFillsRunID(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveScore(run(10))
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected a non-zero ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	given := run(20)
	given.RunID = "fixed-run"
	saved, err = store.SaveScore(given)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if saved.RunID != "fixed-run" {
		t.Errorf("RunID = %q, expected caller's value", saved.RunID)
	}

	// Run IDs are unique.
	if _, err := store.SaveScore(given); err == nil {
		t.Error("expected duplicate run ID to fail")
	}
}

func TestStoreRoundTripsRunParameters(t *testing.T) {
	store := openTestStore(t)

	e := ScoreEntry{
		Score:        7,
		Seed:         math.MaxUint64 - 3,
		WallDensity:  0.26,
		MoveInterval: 80 * time.Millisecond,
	}
	saved, err := store.SaveScore(e)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	got, err := store.ScoreByRunID(saved.RunID)
	if err != nil {
		t.Fatalf("ScoreByRunID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected the saved run")
	}
	if got.Seed != e.Seed {
		t.Errorf("Seed = %d, expected %d", got.Seed, e.Seed)
	}
	if got.WallDensity != e.WallDensity || got.MoveInterval != e.MoveInterval || got.Score != e.Score {
		t.Errorf("unexpected entry %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	missing, err := store.ScoreByRunID("nope")
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for unknown run, got %v, %v", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore(run((i + 1) * 100))
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{5, 9, 1} {
		store.SaveScore(run(score))
	}

	recent, err := store.RecentScores(2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 1 || recent[1].Score != 9 {
		t.Errorf("unexpected recent scores: %v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveScore(run(100))
	store.SaveScore(run(300))
	store.SaveScore(run(200))

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty store: %+v", stats)
	}

	store.SaveScore(run(10))
	store.SaveScore(run(30))

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(run(100))
	store.SaveScore(run(200))

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.matrixsnake/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".matrixsnake", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
