package importer

import (
	"fmt"
	"strings"
)

// ErrorCode categorizes import errors for CLI output.
type ErrorCode string

const (
	// ErrCodeSchemaMismatch indicates a required column is missing from the
	// source headers. Fatal: no row processing happens.
	ErrCodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"

	// ErrCodeRequiredFieldEmpty indicates a required value was empty after
	// trimming. Per-row: the row is skipped and the run continues.
	ErrCodeRequiredFieldEmpty ErrorCode = "REQUIRED_FIELD_EMPTY"
)

// SchemaMismatchError reports source headers that resolve to none of the
// required columns. course_name and teacher_name are the only columns with
// a NOT NULL contract and no safe default, so they are the only ones that
// can trigger this.
type SchemaMismatchError struct {
	Missing []string // canonical column names with no resolved source column
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s: no source column found for required column(s): %s",
		ErrCodeSchemaMismatch, strings.Join(e.Missing, ", "))
}

// RequiredFieldEmptyError reports a single row whose required value was
// empty after trimming. It is recorded and counted, never fatal.
type RequiredFieldEmptyError struct {
	Line   int    // 1-based source line (header is line 1)
	Column string // canonical column that was empty
}

func (e *RequiredFieldEmptyError) Error() string {
	return fmt.Sprintf("%s: line %d: %s is empty", ErrCodeRequiredFieldEmpty, e.Line, e.Column)
}
