// Package sqlite implements the repository interfaces on SQLite.
//
// The driver is modernc.org/sqlite, a pure-Go translation of SQLite, so the
// services cross-compile without CGo. Each service opens its own database
// file (or the two can share one); every connection runs the same idempotent
// schema bootstrap at startup.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps the connection pool and hands out the typed stores.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at dbPath, verifies the connection,
// and bootstraps the schema. Use ":memory:" for tests.
func New(dbPath string) (*DB, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// An in-memory database exists per connection; cap the pool at one so
	// every query in a test sees the same database.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows reads to proceed concurrently with a write.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Callers should defer this next to New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Users returns the credential store backed by this database.
func (db *DB) Users() *UserStore {
	return &UserStore{db: db}
}

// Notes returns the note store backed by this database.
func (db *DB) Notes() *NoteStore {
	return &NoteStore{db: db}
}

// migrate bootstraps the schema. CREATE TABLE IF NOT EXISTS keeps it safe to
// run on every startup; there is no schema evolution beyond this.
//
// The UNIQUE constraint on users.email is the actual uniqueness enforcement.
// The application-level lookup before insert only exists for a friendlier
// conflict message; a racing duplicate signup loses here, at the constraint.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// No foreign key to users: the notes service must not depend on the
	// users service's table being present in its database.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			owner_id INTEGER NOT NULL,
			title    TEXT NOT NULL,
			body     TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notes_owner_id ON notes(owner_id);
	`)
	if err != nil {
		return fmt.Errorf("creating notes table: %w", err)
	}

	return nil
}
