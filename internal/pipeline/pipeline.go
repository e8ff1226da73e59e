// Package pipeline sequences one import run: back up, parse, normalize,
// splice the seed script, and optionally rebuild the store. It is a
// single-invocation batch orchestrator; all I/O is synchronous and a fatal
// error aborts the run with the pre-run backups intact.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"courseboard/internal/importer"
	"courseboard/internal/schema"
	"courseboard/internal/seed"
	"courseboard/internal/store"
)

// State names the stage a run has reached.
type State string

const (
	StateStart          State = "start"
	StateBackedUp       State = "backed_up"
	StateParsed         State = "parsed"
	StateNormalized     State = "normalized"
	StateSpliced        State = "spliced"
	StateRebuilt        State = "rebuilt"
	StateRebuildSkipped State = "rebuild_skipped"
	StateDone           State = "done"
	StateFailed         State = "failed"
)

// previewLimit caps the post-rebuild preview in the report.
const previewLimit = 5

// Options configures one import run.
type Options struct {
	CSVPath     string
	Tab         schema.Tab
	DBPath      string
	SchemaPath  string
	SeedPath    string
	AliasesPath string // optional YAML alias overrides
	SkipRebuild bool
}

// Report is the operator-facing summary of one run. On failure State is
// StateFailed and FailureReason carries the diagnosis; fields filled in
// before the failure remain set.
type Report struct {
	RunID               string                   `json:"run_id"`
	State               State                    `json:"state"`
	Table               string                   `json:"table"`
	RowsWritten         int                      `json:"rows_written"`
	Skipped             []importer.SkippedRow    `json:"skipped,omitempty"`
	UnmappedCategories  []importer.CategoryCount `json:"unmapped_categories,omitempty"`
	UnrecognizedColumns []string                 `json:"unrecognized_columns,omitempty"`
	DBBackup            string                   `json:"db_backup,omitempty"`
	SeedBackup          string                   `json:"seed_backup,omitempty"`
	Rebuilt             bool                     `json:"rebuilt"`
	Preview             []store.PreviewRow       `json:"preview,omitempty"`
	FailureReason       string                   `json:"failure_reason,omitempty"`
}

// Run executes one import to completion. The returned Report is never nil;
// when err is non-nil the report records how far the run got.
func Run(ctx context.Context, opts Options) (*Report, error) {
	report := &Report{
		RunID: newRunID(),
		State: StateStart,
		Table: opts.Tab.Table,
	}

	fail := func(err error) (*Report, error) {
		report.State = StateFailed
		report.FailureReason = err.Error()
		return report, err
	}

	if _, err := os.Stat(opts.CSVPath); err != nil {
		return fail(fmt.Errorf("source file: %w", err))
	}

	aliases := schema.DefaultAliases()
	if opts.AliasesPath != "" {
		merged, err := schema.LoadAliasOverrides(opts.AliasesPath, aliases)
		if err != nil {
			return fail(err)
		}
		aliases = merged
	}

	// Back up before any mutation. Failure here is fatal: without a safety
	// net we do not touch the originals.
	dbBackup, err := BackupFile(opts.DBPath)
	if err != nil {
		return fail(err)
	}
	seedBackup, err := BackupFile(opts.SeedPath)
	if err != nil {
		return fail(err)
	}
	report.DBBackup = dbBackup
	report.SeedBackup = seedBackup
	report.State = StateBackedUp

	// Category set is read live from the current store when present.
	categories := currentCategories(ctx, opts.DBPath)

	parsed, err := importer.ReadFile(opts.CSVPath, aliases, categories)
	if err != nil {
		return fail(err)
	}
	report.State = StateNormalized
	report.RowsWritten = len(parsed.Rows)
	report.Skipped = parsed.Skipped
	report.UnmappedCategories = parsed.UnmappedReport()
	report.UnrecognizedColumns = parsed.UnrecognizedColumns

	seedText, err := os.ReadFile(opts.SeedPath)
	if err != nil {
		return fail(fmt.Errorf("read seed script: %w", err))
	}
	updated, err := seed.SpliceBlock(string(seedText), opts.Tab.Table, parsed.Rows)
	if err != nil {
		return fail(err)
	}
	if err := seed.WriteAtomic(opts.SeedPath, []byte(updated)); err != nil {
		return fail(err)
	}
	report.State = StateSpliced

	if opts.SkipRebuild {
		report.State = StateRebuildSkipped
	} else {
		if err := store.Rebuild(opts.DBPath, opts.SchemaPath, opts.SeedPath); err != nil {
			// The seed script is already updated; that asymmetry is
			// intentional, so the report still shows the splice.
			return fail(err)
		}
		report.State = StateRebuilt
		report.Rebuilt = true
		report.Preview = previewRows(ctx, opts.DBPath, opts.Tab.Table)
	}

	report.State = StateDone
	return report, nil
}

// currentCategories reads the category lookup set from the store, or
// returns nil when the store is missing or unreadable. With no set to
// check against, non-blank categories pass through unvalidated.
func currentCategories(ctx context.Context, dbPath string) []string {
	s, err := store.OpenReadOnly(dbPath)
	if err != nil {
		return nil
	}
	defer s.Close()

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil
	}
	return categories
}

// previewRows fetches the preview best-effort; a preview failure never
// fails a run that already rebuilt successfully.
func previewRows(ctx context.Context, dbPath, table string) []store.PreviewRow {
	s, err := store.OpenReadOnly(dbPath)
	if err != nil {
		return nil
	}
	defer s.Close()

	preview, err := s.Preview(ctx, table, previewLimit)
	if err != nil {
		return nil
	}
	return preview
}

// newRunID returns a UUIDv7 so report IDs sort by time; falls back to v4
// if the system clock/randomness misbehaves.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
