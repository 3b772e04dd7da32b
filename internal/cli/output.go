package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmellis/slidetrace/internal/extract"
	"github.com/dmellis/slidetrace/internal/timing"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Extraction failure (fail-fast tripped, run not found)
	ExitCommandError = 2 // Command error (invalid paths, database not found, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// WriteDeck renders a deck record in the configured format.
func (f *OutputFormatter) WriteDeck(deck extract.DeckRecord) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(deck)
	}
	return renderDeckText(f.Writer, deck)
}

// WriteJSON emits any payload as indented JSON; text format callers
// should render their own layout instead.
func (f *OutputFormatter) WriteJSON(data any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// renderDeckText prints the human-readable deck layout: one block per
// slide with its digest line, events, warnings, and failure reason.
func renderDeckText(w io.Writer, deck extract.DeckRecord) error {
	fmt.Fprintf(w, "run %s", deck.RunID)
	if deck.Source != "" {
		fmt.Fprintf(w, "  (%s)", deck.Source)
	}
	fmt.Fprintln(w)

	for _, slide := range deck.Slides {
		title := slide.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(w, "\nSlide %d: %s - %d animation(s), %s\n",
			slide.SlideNumber, title, slide.AnimationCount, slide.Summary.Headline)

		if slide.Error != "" {
			fmt.Fprintf(w, "  extraction failed: %s\n", slide.Error)
		}

		for _, ev := range slide.Animations {
			fmt.Fprintf(w, "  [%d] %s - %s (%s), %s",
				ev.SequenceIndex,
				ev.ShapeLabel,
				ev.EffectDescription,
				ev.EffectCategory,
				timing.TriggerString(ev.Trigger),
			)
			if ev.DurationMS > 0 {
				fmt.Fprintf(w, ", %dms", ev.DurationMS)
			}
			fmt.Fprintln(w)
		}

		for _, warn := range slide.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warn)
		}
	}
	return nil
}
