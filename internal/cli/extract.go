package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dmellis/slidetrace/internal/extract"
	"github.com/dmellis/slidetrace/internal/shapes"
	"github.com/dmellis/slidetrace/internal/store"
)

// ExtractOptions holds flags for the extract command.
type ExtractOptions struct {
	*RootOptions
	ShapesPath string
	Database   string
	Workers    int
	FailFast   bool

	// RunGenerator allows overriding the run token generator (for
	// testing). If nil, defaults to UUIDv7Generator.
	RunGenerator extract.RunTokenGenerator
}

// NewExtractCommand creates the extract command.
func NewExtractCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExtractOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "extract <markup-file>...",
		Short: "Extract animation events from slide markup files",
		Long: `Extract animation events from per-slide timing markup files.

Each argument is one slide's raw animation markup; slides are numbered
in argument order. A shapes sidecar (--shapes) supplies slide titles
and the shape id to display name mapping used to label events.

Example:
  slidetrace extract slides/slide1.xml slides/slide2.xml --shapes deck.yaml
  slidetrace extract slides/*.xml --format json --db runs.db`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.ShapesPath, "shapes", "", "shape metadata sidecar (YAML)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "archive the run into this SQLite database")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "concurrent slide workers (default from config)")
	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "abort on the first slide that fails to parse")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *ExtractOptions, paths []string) error {
	// Flags override config; unset flags fall back.
	workers := opts.Workers
	if workers < 1 {
		workers = opts.Config.Workers
	}
	database := opts.Database
	if database == "" {
		database = opts.Config.Database
	}
	failFast := opts.FailFast || opts.Config.FailFast

	var sidecar *shapes.Sidecar
	if opts.ShapesPath != "" {
		sc, err := shapes.LoadSidecar(opts.ShapesPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading shapes sidecar", err)
		}
		sidecar = sc
	}

	inputs, err := loadSlideInputs(paths, sidecar)
	if err != nil {
		return err
	}

	runGen := opts.RunGenerator
	if runGen == nil {
		runGen = extract.UUIDv7Generator{}
	}

	ex := extract.New(
		extract.WithWorkers(workers),
		extract.WithRunTokenGenerator(runGen),
	)

	deck, err := ex.ExtractDeck(cmd.Context(), sourceLabel(paths), inputs)
	if err != nil {
		return WrapExitError(ExitCommandError, "extraction aborted", err)
	}

	if failFast {
		for _, slide := range deck.Slides {
			if slide.Error != "" {
				return NewExitError(ExitFailure,
					fmt.Sprintf("slide %d failed: %s", slide.SlideNumber, slide.Error))
			}
		}
	}

	if database != "" {
		st, err := store.Open(database)
		if err != nil {
			return WrapExitError(ExitCommandError, "opening archive database", err)
		}
		defer st.Close()
		if err := st.WriteRun(cmd.Context(), deck); err != nil {
			return WrapExitError(ExitCommandError, "archiving run", err)
		}
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.WriteDeck(deck)
}

// loadSlideInputs reads each markup file and pairs it with the
// sidecar's resolver and title for that slide number. File read errors
// are command errors: a missing input file is operator error, not a
// malformed slide.
func loadSlideInputs(paths []string, sidecar *shapes.Sidecar) ([]extract.SlideInput, error) {
	// Deterministic slide numbering regardless of shell glob order.
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	inputs := make([]extract.SlideInput, 0, len(sorted))
	for i, path := range sorted {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("reading %s", path), err)
		}

		number := i + 1
		resolver := shapes.Empty
		title := ""
		if sidecar != nil {
			resolver, title = sidecar.TableFor(number)
		}

		inputs = append(inputs, extract.SlideInput{
			Number:   number,
			Title:    title,
			Markup:   data,
			Resolver: resolver,
		})
	}
	return inputs, nil
}

// sourceLabel names the run after the inputs' shared context: the
// first file's directory, or the file itself for a single input.
func sourceLabel(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	return fmt.Sprintf("%s (+%d more)", paths[0], len(paths)-1)
}
