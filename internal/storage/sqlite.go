// Package storage provides SQLite-based persistence for bounce streaks
// and user settings. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
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

// StreakEntry represents a single recorded bounce streak.
type StreakEntry struct {
	ID        int64
	VariantID string
	Streak    int
	CreatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS streaks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant_id TEXT NOT NULL,
			streak INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_streaks_variant_id ON streaks(variant_id);
		CREATE INDEX IF NOT EXISTS idx_streaks_top ON streaks(variant_id, streak DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
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

// SaveStreak records a finished bounce streak for the given variant.
// Streaks of one or less are not worth keeping and are silently dropped.
// Returns the ID of the inserted record, or 0 when dropped.
func (s *Store) SaveStreak(variantID string, streak int) (int64, error) {
	if streak <= 1 {
		return 0, nil
	}

	result, err := s.db.Exec(
		"INSERT INTO streaks (variant_id, streak) VALUES (?, ?)",
		variantID, streak,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save streak: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopStreaks retrieves the top N streaks for the given variant,
// ordered by streak descending.
func (s *Store) TopStreaks(variantID string, limit int) ([]StreakEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant_id, streak, created_at
		 FROM streaks
		 WHERE variant_id = ?
		 ORDER BY streak DESC
		 LIMIT ?`,
		variantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query streaks: %w", err)
	}
	defer rows.Close()

	var entries []StreakEntry
	for rows.Next() {
		var e StreakEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.VariantID, &e.Streak, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestStreak returns the longest recorded streak for the given variant.
// Returns 0 if no streaks exist.
func (s *Store) BestStreak(variantID string) (int, error) {
	var streak sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(streak) FROM streaks WHERE variant_id = ?",
		variantID,
	).Scan(&streak)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best streak: %w", err)
	}

	if !streak.Valid {
		return 0, nil
	}

	return int(streak.Int64), nil
}

// ClearStreaks deletes all streaks for the given variant.
func (s *Store) ClearStreaks(variantID string) error {
	_, err := s.db.Exec("DELETE FROM streaks WHERE variant_id = ?", variantID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear streaks: %w", err)
	}
	return nil
}

// VariantStats contains aggregated streak statistics for one variant.
type VariantStats struct {
	VariantID  string
	Runs       int
	BestStreak int
	AvgStreak  float64
	LastPlayed time.Time
}

// AllVariantStats retrieves streak statistics for every variant that has
// recorded streaks, keyed by variant ID.
func (s *Store) AllVariantStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant_id, COUNT(*), MAX(streak), AVG(streak), MAX(created_at)
		 FROM streaks
		 GROUP BY variant_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var v VariantStats
		var lastPlayed any
		if err := rows.Scan(&v.VariantID, &v.Runs, &v.BestStreak, &v.AvgStreak, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		v.LastPlayed = parseCreatedAt(lastPlayed)
		stats[v.VariantID] = &v
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Setting keys.
const (
	settingMuted       = "muted"
	settingLastVariant = "last_variant"
)

// setSetting upserts a settings value.
func (s *Store) setSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}

// getSetting reads a settings value; returns the fallback when unset.
func (s *Store) getSetting(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, nil
}

// SetMuted persists the mute toggle.
func (s *Store) SetMuted(muted bool) error {
	value := "0"
	if muted {
		value = "1"
	}
	return s.setSetting(settingMuted, value)
}

// Muted reports the persisted mute toggle. Defaults to false.
func (s *Store) Muted() (bool, error) {
	value, err := s.getSetting(settingMuted, "0")
	if err != nil {
		return false, err
	}
	return value == "1", nil
}

// SetLastVariant remembers the variant the user ran last.
func (s *Store) SetLastVariant(variantID string) error {
	return s.setSetting(settingLastVariant, variantID)
}

// LastVariant returns the variant the user ran last, or empty.
func (s *Store) LastVariant() (string, error) {
	return s.getSetting(settingLastVariant, "")
}

// parseCreatedAt handles the two shapes the driver returns for DATETIME
// columns.
func parseCreatedAt(raw any) time.Time {
	switch v := raw.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
