// Package storage provides SQLite-based persistence for game results and
// achievements. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Callers treat the store as best-effort: a failed open or
// save never blocks gameplay.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Result records one finished (or abandoned) game.
type Result struct {
	ID           int64
	GridSize     int
	Score        int
	MaxTile      int
	Moves        int
	DurationSecs int
	CreatedAt    time.Time
}

// Unlock records one persisted achievement.
type Unlock struct {
	ID         string
	UnlockedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			grid_size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_grid ON results(grid_size);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(grid_size, score DESC);

		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveResult records a finished game. Returns the ID of the inserted row.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (grid_size, score, max_tile, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		r.GridSize, r.Score, r.MaxTile, r.Moves, r.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results for the given grid size,
// ordered by score descending.
func (s *Store) TopResults(gridSize, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, grid_size, score, max_tile, moves, duration_secs, created_at
		 FROM results
		 WHERE grid_size = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gridSize, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GridSize, &r.Score, &r.MaxTile, &r.Moves, &r.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestScore returns the highest score recorded for the given grid size.
// Returns 0 if no results exist.
func (s *Store) BestScore(gridSize int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE grid_size = ?",
		gridSize,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearResults deletes all results for the given grid size.
func (s *Store) ClearResults(gridSize int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE grid_size = ?", gridSize)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// UnlockAchievement records an achievement unlock. Idempotent: unlocking
// an already-unlocked id keeps the original timestamp.
func (s *Store) UnlockAchievement(id string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO achievements (id) VALUES (?)",
		id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot unlock achievement: %w", err)
	}
	return nil
}

// Achievements retrieves all persisted unlocks, oldest first.
func (s *Store) Achievements() ([]Unlock, error) {
	rows, err := s.db.Query(
		"SELECT id, unlocked_at FROM achievements ORDER BY unlocked_at ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var unlocks []Unlock
	for rows.Next() {
		var u Unlock
		var unlockedAt any
		if err := rows.Scan(&u.ID, &unlockedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		u.UnlockedAt = parseTimestamp(unlockedAt)
		unlocks = append(unlocks, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return unlocks, nil
}

// AchievementIDs returns just the unlocked ids, for restoring a session.
func (s *Store) AchievementIDs() ([]string, error) {
	unlocks, err := s.Achievements()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(unlocks))
	for i, u := range unlocks {
		ids[i] = u.ID
	}
	return ids, nil
}

// GridStats contains aggregated statistics for one grid size.
type GridStats struct {
	GridSize   int
	GamesCount int
	BestScore  int
	AvgScore   float64
	BestTile   int
	LastPlayed time.Time
}

// GetGridStats retrieves aggregated statistics for a specific grid size.
func (s *Store) GetGridStats(gridSize int) (*GridStats, error) {
	stats := &GridStats{GridSize: gridSize}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(max_tile), 0)
		 FROM results WHERE grid_size = ?`,
		gridSize,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.AvgScore, &stats.BestTile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get grid stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE grid_size = ? ORDER BY created_at DESC LIMIT 1`,
		gridSize,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
