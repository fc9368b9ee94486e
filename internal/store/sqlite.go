package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ibarra/shelfr/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	title  TEXT    NOT NULL,
	author TEXT    NOT NULL,
	year   INTEGER NOT NULL,
	genre  TEXT    NOT NULL,
	read   INTEGER NOT NULL DEFAULT 0
);`

// SQLite persists the library in a single-table SQLite database. Insertion
// order rides on the autoincrement id.
type SQLite struct {
	db *sqlx.DB
}

// NewSQLite opens (or creates) the database at path and ensures the schema.
func NewSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite does not handle concurrent writers well.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Load reads every book in insertion order.
func (s *SQLite) Load() ([]model.Book, error) {
	var books []model.Book
	if err := s.db.Select(&books, `SELECT title, author, year, genre, read FROM books ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to read library: %w", err)
	}

	return books, nil
}

// Save replaces the table contents in one transaction.
func (s *SQLite) Save(books []model.Book) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM books`); err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("failed to clear library: %w", err)
	}

	for _, book := range books {
		if _, err := tx.NamedExec(`INSERT INTO books (title, author, year, genre, read)
			VALUES (:title, :author, :year, :genre, :read)`, book); err != nil {
			_ = tx.Rollback()

			return fmt.Errorf("failed to write library: %w", err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
