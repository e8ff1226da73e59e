package cli

import (
	"github.com/spf13/cobra"

	"courseboard/internal/config"
	"courseboard/internal/store"
)

// RebuildOptions holds flags for the rebuild command.
type RebuildOptions struct {
	*RootOptions
	DB     string
	Schema string
	Seed   string
}

// NewRebuildCommand creates the rebuild command.
func NewRebuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RebuildOptions{RootOptions: rootOpts}
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the database from the schema and seed scripts",
		Long: `Recreate the database from schema + seed.

The new store is built at a temporary path and swapped into place only
after both scripts execute cleanly, so readers never see a partial store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRebuild(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", cfg.DBPath, "path to the SQLite database")
	cmd.Flags().StringVar(&opts.Schema, "schema", cfg.SchemaPath, "path to the schema script")
	cmd.Flags().StringVar(&opts.Seed, "seed", cfg.SeedPath, "path to the seed script")

	return cmd
}

func runRebuild(opts *RebuildOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if err := store.Rebuild(opts.DB, opts.Schema, opts.Seed); err != nil {
		formatter.Error(errCodeFor(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "rebuild", err)
	}

	return formatter.Success("Database rebuilt from schema + seed.")
}
