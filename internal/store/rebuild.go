package store

import (
	"database/sql"
	"fmt"
	"os"
)

// RebuildError reports a failed store rebuild. By the time a rebuild runs
// the seed script has already been written, so this is deliberately
// non-destructive: the previous store file is left in place and the
// operator resolves the script by hand.
type RebuildError struct {
	Stage string // "schema" or "seed"
	Err   error
}

func (e *RebuildError) Error() string {
	return fmt.Sprintf("REBUILD_FAILED: executing %s script: %v", e.Stage, e.Err)
}

func (e *RebuildError) Unwrap() error {
	return e.Err
}

// Rebuild recreates the database from the schema script plus the full seed
// script. This is a full replace, not a migration: the new store is built
// at a temporary path and renamed over dbPath only after both scripts
// execute cleanly, so a concurrent reader never observes a partial store.
func Rebuild(dbPath, schemaPath, seedPath string) error {
	schemaSQL, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema script: %w", err)
	}
	seedSQL, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("read seed script: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp-%d", dbPath, os.Getpid())
	os.Remove(tmpPath) // stale temp from a crashed run

	if err := buildAt(tmpPath, string(schemaSQL), string(seedSQL)); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, dbPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("swap rebuilt store into place: %w", err)
	}
	return nil
}

// buildAt creates a fresh database at path and replays both scripts.
// go-sqlite3 executes multi-statement scripts when Exec is called without
// bind arguments, which is what makes script replay work here.
func buildAt(path, schemaSQL, seedSQL string) error {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		return &RebuildError{Stage: "schema", Err: err}
	}
	if _, err := db.Exec(seedSQL); err != nil {
		return &RebuildError{Stage: "seed", Err: err}
	}
	return nil
}
