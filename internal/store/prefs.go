package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Preference keys.
const (
	PrefTheme = "theme"
)

// PrefsRepository persists key/value preferences.
type PrefsRepository struct {
	db *sql.DB
}

// NewPrefsRepository creates a new [PrefsRepository] with the given database connection
func NewPrefsRepository(db *sql.DB) *PrefsRepository {
	return &PrefsRepository{db: db}
}

// Set stores a preference value, replacing any previous value.
func (r *PrefsRepository) Set(key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}

	return nil
}

// Get retrieves a preference value, returning fallback when unset.
func (r *PrefsRepository) Get(key, fallback string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query preference: %w", err)
	}
	return value, nil
}
