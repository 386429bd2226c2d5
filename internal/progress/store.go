package progress

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store keeps one saved position per track path
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the progress database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open progress db %s: %w", path, err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS progress (
		track_path TEXT PRIMARY KEY,
		position   REAL NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init progress db %s: %w", path, err)
	}

	return &Store{db: db}, nil
}

// Save stores the position in seconds for a track, replacing any earlier
// value
func (s *Store) Save(trackPath string, seconds float64) error {
	_, err := s.db.Exec(
		`REPLACE INTO progress (track_path, position, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		trackPath, seconds,
	)
	if err != nil {
		return fmt.Errorf("save position for %s: %w", trackPath, err)
	}
	return nil
}

// Lookup returns the saved position for a track, or 0 when none is stored
func (s *Store) Lookup(trackPath string) (float64, error) {
	var position float64
	err := s.db.QueryRow(
		`SELECT position FROM progress WHERE track_path = ?`, trackPath,
	).Scan(&position)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lookup position for %s: %w", trackPath, err)
	}
	return position, nil
}

// Reset removes the saved position for a track
func (s *Store) Reset(trackPath string) error {
	_, err := s.db.Exec(`DELETE FROM progress WHERE track_path = ?`, trackPath)
	if err != nil {
		return fmt.Errorf("reset position for %s: %w", trackPath, err)
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
