package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"courseboard/internal/schema"
)

// Store wraps a connection to the syllabus database.
//
// The serving layer opens the file read-only and immutable, so SQLite never
// creates WAL or journal files next to it and an external rebuild swap is
// simply picked up by the next Open. Callers open, query, and close;
// nothing holds a long-lived handle across a swap.
type Store struct {
	db *sql.DB
}

// Open opens the database at path for reading and writing, with foreign
// keys enforced. Used by tests and tooling; the serving path goes through
// OpenReadOnly.
func Open(path string) (*Store, error) {
	return open("file:" + path + "?_foreign_keys=on")
}

// OpenReadOnly opens the database read-only and immutable.
func OpenReadOnly(path string) (*Store, error) {
	return open("file:" + path + "?mode=ro&immutable=1")
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite allows one writer; a single pooled connection avoids
	// SQLITE_BUSY in the tools and is plenty for per-request reads.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// knownTables is every table the read API will touch. Table names reach
// SQL by interpolation, so anything outside this set is rejected first.
var knownTables = func() map[string]bool {
	m := make(map[string]bool, len(schema.Tabs)+1)
	m[schema.HomeTab.Table] = true
	for _, t := range schema.Tabs {
		m[t.Table] = true
	}
	return m
}()
