// Package storage keeps an imported dictionary in a local sqlite database,
// so the solve can run against a frozen word source instead of whatever
// /usr/share/dict/words happens to contain today.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// DefaultPath returns the store location under the user's data directory,
// creating the directory if needed.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback: get home dir from user.Current()
		if u, userErr := user.Current(); userErr == nil {
			home = u.HomeDir
		} else {
			return "", err
		}
	}
	dataDir := filepath.Join(home, ".local", "share", "beemax")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "words.db"), nil
}

// Open opens (and if necessary creates) the dictionary store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS words (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		word TEXT NOT NULL UNIQUE,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// ImportWords inserts the given words, keeping insertion order via the
// autoincrement id. Words already present are skipped. Returns the number of
// newly inserted words.
func (s *Store) ImportWords(words []string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO words (word) VALUES (?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range words {
		res, err := stmt.Exec(w)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %q: %w", w, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}

	return inserted, tx.Commit()
}

// LoadWords returns every stored word in import order.
func (s *Store) LoadWords() ([]string, error) {
	rows, err := s.db.Query("SELECT word FROM words ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// Count returns the number of stored words.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
