// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents one finished run.
type ScoreEntry struct {
	ID           int64
	RunID        string
	Score        int
	Seed         uint64
	WallDensity  float64
	MoveInterval time.Duration
	CreatedAt    time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			wall_density REAL NOT NULL,
			move_interval_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_created ON scores(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run. A missing RunID is filled with a new
// UUID. Returns the entry as stored, including its ID.
func (s *Store) SaveScore(e ScoreEntry) (ScoreEntry, error) {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}

	// Seeds use the full uint64 range; SQLite integers are signed.
	result, err := s.db.Exec(
		`INSERT INTO scores (run_id, score, seed, wall_density, move_interval_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		e.RunID, e.Score, int64(e.Seed), e.WallDensity, e.MoveInterval.Milliseconds(),
	)
	if err != nil {
		return e, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return e, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	e.ID = id

	return e, nil
}

// TopScores retrieves the top N runs ordered by score descending. Ties
// keep insertion order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, run_id, score, seed, wall_density, move_interval_ms, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentScores retrieves the most recent N runs, newest first.
func (s *Store) RecentScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, run_id, score, seed, wall_density, move_interval_ms, created_at
		 FROM scores
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// ScoreByRunID retrieves one run. Returns nil if it does not exist.
func (s *Store) ScoreByRunID(runID string) (*ScoreEntry, error) {
	entries, err := s.query(
		`SELECT id, run_id, score, seed, wall_density, move_interval_ms, created_at
		 FROM scores
		 WHERE run_id = ?`,
		runID,
	)
	if err != nil || len(entries) == 0 {
		return nil, err
	}
	return &entries[0], nil
}

func (s *Store) query(q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e          ScoreEntry
			seed       int64
			intervalMs int64
			createdAt  any
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Score, &seed, &e.WallDensity, &intervalMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Seed = uint64(seed)
		e.MoveInterval = time.Duration(intervalMs) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest recorded score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all recorded runs.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM scores ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
