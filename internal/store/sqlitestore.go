// filepath: internal/store/sqlitestore.go
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"shopfront/internal/db/migrations"
	"shopfront/internal/models"
	"shopfront/internal/shared"
)

// configKey is the single row under which the document lives. The key is part
// of the on-disk contract shared with the file store and the import format.
const configKey = "websiteConfig"

// SQLiteStore keeps the document in an embedded SQLite database. It is the
// high-capacity backend: no quota, and writes survive documents far larger
// than the file store would accept.
type SQLiteStore struct {
	db *sql.DB
}

var _ Backend = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// The document store is single-writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

// Init runs the embedded goose migrations.
func (s *SQLiteStore) Init() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(s.db, "."); err != nil {
		return fmt.Errorf("failed to migrate config database: %w", err)
	}
	return nil
}

// Load reads the document row. A missing row reports shared.ErrNoDocument.
func (s *SQLiteStore) Load() (*models.Document, error) {
	var raw []byte
	err := squirrel.Select("value").
		From("config").
		Where(squirrel.Eq{"key": configKey}).
		RunWith(s.db).
		QueryRow().
		Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNoDocument
		}
		return nil, fmt.Errorf("failed to read config row: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored config: %w", err)
	}
	return &doc, nil
}

// Save upserts the document row.
func (s *SQLiteStore) Save(doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = squirrel.Insert("config").
		Columns("key", "value", "updated_at").
		Values(configKey, raw, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		RunWith(s.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to upsert config row: %w", err)
	}
	return nil
}

// DB exposes the raw handle for migration tooling.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
