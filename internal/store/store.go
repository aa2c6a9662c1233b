package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ledgerVersion is the user_version stamped on databases created from
// schema.sql. Bump it together with the schema and teach ensureSchema the
// upgrade.
const ledgerVersion = 1

// ledgerPragmas are applied on every open. The ledger is written by one
// harness run at a time and read by history while that run is in flight.
var ledgerPragmas = []struct{ name, value string }{
	{"journal_mode", "WAL"},
	{"synchronous", "NORMAL"},
	{"busy_timeout", "5000"},
	{"foreign_keys", "ON"},
}

// SchemaVersionError reports a ledger written by a newer objcmp.
type SchemaVersionError struct {
	Found int
	Want  int
}

func (e *SchemaVersionError) Error() string {
	return fmt.Sprintf("run ledger has schema version %d, this build understands up to %d", e.Found, e.Want)
}

// Store is the SQLite run ledger.
type Store struct {
	db *sql.DB
}

// Open creates or opens the run ledger at path. A fresh file gets the
// current schema; an existing ledger is opened as is, unless it was
// written by a newer version, which yields *SchemaVersionError.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open run ledger: %w", err)
	}
	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open run ledger: %w", err)
	}
	for _, p := range ledgerPragmas {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA %s = %s", p.name, p.value)); err != nil {
			db.Close()
			return nil, fmt.Errorf("open run ledger: pragma %s: %w", p.name, err)
		}
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureSchema(db *sql.DB) error {
	raw, err := readPragma(db, "user_version")
	if err != nil {
		return err
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("run ledger: bad user_version %q", raw)
	}

	switch {
	case version > ledgerVersion:
		return &SchemaVersionError{Found: version, Want: ledgerVersion}
	case version == ledgerVersion:
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("run ledger: create schema: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schemaSQL); err != nil {
		return fmt.Errorf("run ledger: create schema: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", ledgerVersion)); err != nil {
		return fmt.Errorf("run ledger: stamp schema version: %w", err)
	}
	return tx.Commit()
}

func readPragma(db *sql.DB, name string) (string, error) {
	var value string
	if err := db.QueryRow("PRAGMA " + name).Scan(&value); err != nil {
		return "", fmt.Errorf("run ledger: read %s: %w", name, err)
	}
	return value, nil
}
