package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"courseboard/internal/config"
	"courseboard/internal/importer"
	"courseboard/internal/pipeline"
	"courseboard/internal/schema"
	"courseboard/internal/seed"
	"courseboard/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	File        string
	Tab         string // logical tab id; empty triggers the interactive prompt
	DB          string
	Schema      string
	Seed        string
	Aliases     string
	SkipRebuild bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace a tab's seeded data from a CSV export",
		Long: `Replace one tab's seed block from a CSV export and rebuild the database.

The CSV must be UTF-8 with a header row; column order is irrelevant and
headers are matched against English and Hebrew aliases. The current
database and seed script are backed up before anything is touched.`,
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "path to CSV export (required)")
	cmd.Flags().StringVar(&opts.Tab, "tab", "", "target tab id (docs|tasks|notes|alerts|links|hs); prompts if omitted")
	cmd.Flags().StringVar(&opts.DB, "db", cfg.DBPath, "path to the SQLite database")
	cmd.Flags().StringVar(&opts.Schema, "schema", cfg.SchemaPath, "path to the schema script")
	cmd.Flags().StringVar(&opts.Seed, "seed", cfg.SeedPath, "path to the seed script")
	cmd.Flags().StringVar(&opts.Aliases, "aliases", "", "optional YAML file with extra header aliases")
	cmd.Flags().BoolVar(&opts.SkipRebuild, "no-rebuild", false, "only update the seed script, do not rebuild the database")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(opts *ImportOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	tab, err := selectTab(opts, cmd)
	if err != nil {
		formatter.Error(errCodeFor(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "tab selection", err)
	}
	formatter.VerboseLog("Selected: %s → table: %s", tab.LabelHe, tab.Table)

	report, err := pipeline.Run(cmd.Context(), pipeline.Options{
		CSVPath:     opts.File,
		Tab:         tab,
		DBPath:      opts.DB,
		SchemaPath:  opts.Schema,
		SeedPath:    opts.Seed,
		AliasesPath: opts.Aliases,
		SkipRebuild: opts.SkipRebuild,
	})
	if err != nil {
		formatter.Error(errCodeFor(err), err.Error(), report)
		var rebuildErr *store.RebuildError
		if errors.As(err, &rebuildErr) {
			// The splice already landed; only the rebuild is pending.
			fmt.Fprintln(formatter.Writer, "The seed script was updated but the database was NOT rebuilt; fix the script and run the rebuild command.")
			return WrapExitError(ExitFailure, "rebuild", err)
		}
		return WrapExitError(ExitCommandError, "import", err)
	}

	if opts.Format == "json" {
		return formatter.Success(report)
	}

	printReport(formatter.Writer, report)
	return nil
}

// selectTab resolves the target tab from the --tab flag, or interactively
// from the fixed list when the flag is absent.
func selectTab(opts *ImportOptions, cmd *cobra.Command) (schema.Tab, error) {
	if opts.Tab != "" {
		return schema.TabByID(strings.ToLower(strings.TrimSpace(opts.Tab)))
	}
	return promptTab(cmd.InOrStdin(), cmd.OutOrStdout())
}

// promptTab asks the operator to pick a tab by number.
func promptTab(in io.Reader, out io.Writer) (schema.Tab, error) {
	fmt.Fprintln(out, "Which tab do you want to replace?")
	for _, t := range schema.Tabs {
		fmt.Fprintf(out, "%d. %s\n", t.Number, t.LabelHe)
	}
	fmt.Fprintf(out, "Enter number (1-%d): ", len(schema.Tabs))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return schema.Tab{}, fmt.Errorf("read selection: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return schema.Tab{}, fmt.Errorf("invalid selection %q", strings.TrimSpace(line))
	}
	return schema.TabByNumber(n)
}

// printReport writes the human-readable run summary.
func printReport(w io.Writer, report *pipeline.Report) {
	if report.DBBackup != "" {
		fmt.Fprintf(w, "Backed up database to: %s\n", report.DBBackup)
	}
	if report.SeedBackup != "" {
		fmt.Fprintf(w, "Backed up seed script to: %s\n", report.SeedBackup)
	}

	fmt.Fprintf(w, "Updated seed block for table %q: %d row(s) written, %d skipped.\n",
		report.Table, report.RowsWritten, len(report.Skipped))
	if report.RowsWritten == 0 {
		fmt.Fprintln(w, "WARNING: no usable rows in the source file; the tab is now empty.")
	}
	for _, skip := range report.Skipped {
		fmt.Fprintf(w, "  - skipped line %d: %s is empty\n", skip.Line, skip.Column)
	}

	if len(report.UnrecognizedColumns) > 0 {
		fmt.Fprintf(w, "Unrecognized columns ignored: %s\n", strings.Join(report.UnrecognizedColumns, ", "))
	}

	if len(report.UnmappedCategories) > 0 {
		fmt.Fprintf(w, "WARNING: categories not in the lookup table were mapped to %q:\n", schema.DefaultCategory)
		for _, entry := range report.UnmappedCategories {
			name := entry.Category
			if name == "" {
				name = "(blank)"
			}
			fmt.Fprintf(w, "  - %s (%d rows)\n", name, entry.Count)
		}
	}

	if report.Rebuilt {
		fmt.Fprintln(w, "Database rebuilt from schema + seed.")
		if len(report.Preview) > 0 {
			fmt.Fprintf(w, "Preview from %q (top %d):\n", report.Table, len(report.Preview))
			for _, p := range report.Preview {
				fmt.Fprintf(w, "  - id=%d, course_name=%s, teacher_name=%s, category=%s\n",
					p.ID, p.CourseName, p.TeacherName, p.Category)
			}
		}
	} else {
		fmt.Fprintln(w, "Skipped database rebuild (--no-rebuild).")
	}

	fmt.Fprintf(w, "Done. run_id=%s\n", report.RunID)
}

// errCodeFor maps known error types to stable CLI error codes.
func errCodeFor(err error) string {
	var schemaErr *importer.SchemaMismatchError
	if errors.As(err, &schemaErr) {
		return string(importer.ErrCodeSchemaMismatch)
	}
	var blockErr *seed.BlockNotFoundError
	if errors.As(err, &blockErr) {
		return "BLOCK_NOT_FOUND"
	}
	var rebuildErr *store.RebuildError
	if errors.As(err, &rebuildErr) {
		return "REBUILD_FAILED"
	}
	return "IMPORT_ERROR"
}
