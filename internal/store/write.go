package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmellis/slidetrace/internal/extract"
	"github.com/dmellis/slidetrace/internal/timing"
)

// WriteRun archives a whole extraction run in a single transaction:
// the run row, one row per slide, and the flattened events.
//
// Uses ON CONFLICT(id) DO NOTHING on the run row for idempotency -
// archiving the same run twice is a no-op and leaves the first copy
// intact.
func (s *Store) WriteRun(ctx context.Context, deck extract.DeckRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, slide_count)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, deck.RunID, deck.Source, len(deck.Slides))
	if err != nil {
		return fmt.Errorf("write run %s: %w", deck.RunID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Run already archived; keep the original.
		return nil
	}

	for _, slide := range deck.Slides {
		warningsJSON, err := marshalWarnings(slide.Warnings)
		if err != nil {
			return fmt.Errorf("write run %s slide %d: %w", deck.RunID, slide.SlideNumber, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO slides
			(run_id, slide_number, title, total_events, headline, warnings, error)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			deck.RunID,
			slide.SlideNumber,
			slide.Title,
			slide.Summary.TotalEvents,
			slide.Summary.Headline,
			warningsJSON,
			slide.Error,
		)
		if err != nil {
			return fmt.Errorf("write run %s slide %d: %w", deck.RunID, slide.SlideNumber, err)
		}

		for _, ev := range slide.Animations {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO events
				(run_id, slide_number, sequence_index, shape_id, shape_label,
				 trigger_kind, delay_ms, category, description, duration_ms)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`,
				deck.RunID,
				slide.SlideNumber,
				ev.SequenceIndex,
				ev.SlideShapeID,
				ev.ShapeLabel,
				string(ev.Trigger.Kind()),
				timing.DelayMS(ev.Trigger),
				string(ev.EffectCategory),
				ev.EffectDescription,
				ev.DurationMS,
			)
			if err != nil {
				return fmt.Errorf("write run %s slide %d event %d: %w",
					deck.RunID, slide.SlideNumber, ev.SequenceIndex, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write run %s: %w", deck.RunID, err)
	}
	return nil
}

// marshalWarnings serializes warnings to the JSON column shape.
// nil serializes as an empty array, never null.
func marshalWarnings(ws []timing.Warning) (string, error) {
	if ws == nil {
		ws = []timing.Warning{}
	}
	b, err := json.Marshal(ws)
	if err != nil {
		return "", fmt.Errorf("marshal warnings: %w", err)
	}
	return string(b), nil
}
