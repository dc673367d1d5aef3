package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/janvogt/fcat/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Storage using a SQLite database.
// The database file is only created on the first Save, so a missing
// file still reports ErrNotFound from Load.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a new SQLiteStorage with the given database path.
// The file is not touched until Load or Save is called.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	return &SQLiteStorage{path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection if one was opened.
func (s *SQLiteStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// open lazily opens the database connection and runs migrations.
func (s *SQLiteStorage) open() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return db, nil
}

// migrate runs database migrations.
func migrate(db *sql.DB) error {
	var version int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		schema := `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS fruits (
				id TEXT PRIMARY KEY NOT NULL,
				position INTEGER NOT NULL,
				name TEXT NOT NULL,
				length REAL NOT NULL,
				width REAL NOT NULL,
				height REAL NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_fruits_position ON fruits(position);

			INSERT OR REPLACE INTO schema_version (version) VALUES (1);
		`
		if _, err := db.Exec(schema); err != nil {
			return err
		}
	}

	return nil
}

// Load reads the catalogue from the SQLite database in insertion order.
// Returns ErrNotFound if the database file does not exist yet.
func (s *SQLiteStorage) Load() (*model.Catalogue, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	db, err := s.open()
	if err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}

	rows, err := db.Query(`
		SELECT name, length, width, height
		FROM fruits
		ORDER BY position
	`)
	if err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	defer rows.Close()

	cat := model.NewCatalogue()
	for rows.Next() {
		var f model.Fruit
		if err := rows.Scan(&f.Name, &f.Length, &f.Width, &f.Height); err != nil {
			return nil, &ParseError{Path: s.path, Err: err}
		}
		cat.Add(f)
	}

	if err := rows.Err(); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}

	return cat, nil
}

// Save writes the catalogue to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (s *SQLiteStorage) Save(c *model.Catalogue) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM fruits"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO fruits (id, position, name, length, width, height)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, f := range c.Fruits {
		if _, err := stmt.Exec(uuid.NewString(), i, f.Name, f.Length, f.Width, f.Height); err != nil {
			return err
		}
	}

	return tx.Commit()
}
