package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmellis/slidetrace/internal/store"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Database string
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report [run-id]",
		Short: "Report on archived extraction runs",
		Long: `Report on extraction runs archived with extract --db.

Without arguments, lists archived runs newest first. With a run id,
prints that run's per-slide events and summaries.

Example:
  slidetrace report --db runs.db
  slidetrace report --db runs.db 0190cafe-... --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "archive database path")

	return cmd
}

func runReport(cmd *cobra.Command, opts *ReportOptions, args []string) error {
	database := opts.Database
	if database == "" {
		database = opts.Config.Database
	}
	if database == "" {
		return NewExitError(ExitCommandError, "no archive database: pass --db or set database in config")
	}
	if _, err := os.Stat(database); err != nil {
		return WrapExitError(ExitCommandError, "archive database not found", err)
	}

	st, err := store.Open(database)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening archive database", err)
	}
	defer st.Close()

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if len(args) == 0 {
		runs, err := st.ListRuns(cmd.Context())
		if err != nil {
			return WrapExitError(ExitCommandError, "listing runs", err)
		}
		if opts.Format == "json" {
			return formatter.WriteJSON(runs)
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no archived runs")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d slide(s)  %s\n",
				r.ID, r.CreatedAt, r.SlideCount, r.Source)
		}
		return nil
	}

	deck, err := st.ReadRun(cmd.Context(), args[0])
	if errors.Is(err, store.ErrRunNotFound) {
		return NewExitError(ExitFailure, fmt.Sprintf("run %s not found", args[0]))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "reading run", err)
	}

	return formatter.WriteDeck(deck)
}
