package storage

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite persists snapshots in a single keyed table.
type SQLite struct{ db *sqlx.DB }

func OpenDB(dsn string) (*SQLite, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS snapshots(
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLite) Load(key string) ([]byte, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM snapshots WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLite) Save(key string, value []byte) error {
	_, err := s.db.Exec(`
	  INSERT INTO snapshots(key, value, updated_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	return err
}

func (s *SQLite) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE key = ?`, key)
	return err
}
