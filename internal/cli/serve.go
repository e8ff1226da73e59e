package cli

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"courseboard/internal/config"
	"courseboard/internal/server"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr     string
	DB       string
	CacheTTL time.Duration
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the syllabus board",
		Long: `Serve the board: the rendered home page, one JSON endpoint per tab,
and a health check. The database is opened read-only per request, so an
import run can rebuild and swap it underneath a running server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().StringVar(&opts.DB, "db", cfg.DBPath, "path to the SQLite database")
	cmd.Flags().DurationVar(&opts.CacheTTL, "cache-ttl", cfg.CacheTTL, "tab result cache TTL")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	srv := server.New(opts.DB, opts.CacheTTL)
	formatter.VerboseLog("Serving %s on %s", opts.DB, opts.Addr)

	httpServer := &http.Server{
		Addr:              opts.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		formatter.Error("SERVE_ERROR", err.Error(), nil)
		return WrapExitError(ExitFailure, "serve", err)
	}
	return nil
}
