// Package storage provides SQLite-based persistence for round results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundResult is one finished round as it is persisted.
type RoundResult struct {
	ID            int64
	Round         int
	Winner        core.PlayerID
	WinnerHealth  float64 // Winner's remaining health, 0..100
	DurationTicks int
	CreatedAt     time.Time
}

// WinCounts aggregates rounds won per player.
type WinCounts struct {
	Player1 int
	Player2 int
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round INTEGER NOT NULL,
			winner INTEGER NOT NULL,
			winner_health REAL NOT NULL DEFAULT 0,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_winner ON rounds(winner);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);
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

// SaveRound records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (round, winner, winner_health, duration_ticks) VALUES (?, ?, ?, ?)",
		r.Round, int(r.Winner), r.WinnerHealth, r.DurationTicks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, round, winner, winner_health, duration_ticks, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundResult
	for rows.Next() {
		var r RoundResult
		var winner int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Round, &winner, &r.WinnerHealth, &r.DurationTicks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = core.PlayerID(winner)
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Wins returns how many rounds each player has won across all sessions.
func (s *Store) Wins() (WinCounts, error) {
	var counts WinCounts

	rows, err := s.db.Query("SELECT winner, COUNT(*) FROM rounds GROUP BY winner")
	if err != nil {
		return counts, fmt.Errorf("storage: cannot query win counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var winner, n int
		if err := rows.Scan(&winner, &n); err != nil {
			return counts, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch core.PlayerID(winner) {
		case core.Player1:
			counts.Player1 = n
		case core.Player2:
			counts.Player2 = n
		}
	}

	if err := rows.Err(); err != nil {
		return counts, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearRounds deletes all recorded rounds.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
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
