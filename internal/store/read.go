package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmellis/slidetrace/internal/effect"
	"github.com/dmellis/slidetrace/internal/extract"
	"github.com/dmellis/slidetrace/internal/summary"
	"github.com/dmellis/slidetrace/internal/timing"
)

// ErrRunNotFound is returned when the requested run id is not in the
// archive.
var ErrRunNotFound = errors.New("run not found")

// RunInfo is one row of the run listing.
type RunInfo struct {
	ID         string `json:"id"`
	Source     string `json:"source,omitempty"`
	CreatedAt  string `json:"created_at"`
	SlideCount int    `json:"slide_count"`
}

// ListRuns returns archived runs, newest first. UUIDv7 run ids sort
// chronologically, so id order is creation order.
//
// Returns an empty slice (not nil) when the archive is empty.
func (s *Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, created_at, slide_count
		FROM runs
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunInfo{}
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.ID, &r.Source, &r.CreatedAt, &r.SlideCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun reconstructs a full deck record from the archive. Events are
// ordered by slide number then sequence index, and per-slide summaries
// are recomputed from the events so the summary invariant (total ==
// sum of category counts) holds by construction.
func (s *Store) ReadRun(ctx context.Context, runID string) (extract.DeckRecord, error) {
	deck := extract.DeckRecord{RunID: runID}

	err := s.db.QueryRowContext(ctx, `
		SELECT source FROM runs WHERE id = ?
	`, runID).Scan(&deck.Source)
	if err == sql.ErrNoRows {
		return extract.DeckRecord{}, ErrRunNotFound
	}
	if err != nil {
		return extract.DeckRecord{}, fmt.Errorf("query run %s: %w", runID, err)
	}

	slides, err := s.readSlides(ctx, runID)
	if err != nil {
		return extract.DeckRecord{}, err
	}

	events, err := s.readEvents(ctx, runID)
	if err != nil {
		return extract.DeckRecord{}, err
	}

	for i := range slides {
		slides[i].Animations = events[slides[i].SlideNumber]
		if slides[i].Animations == nil {
			slides[i].Animations = []timing.AnimationEvent{}
		}
		slides[i].AnimationCount = len(slides[i].Animations)
		slides[i].Summary = summary.Summarize(slides[i].Animations)
	}

	deck.Slides = slides
	return deck, nil
}

func (s *Store) readSlides(ctx context.Context, runID string) ([]extract.SlideRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slide_number, title, warnings, error
		FROM slides
		WHERE run_id = ?
		ORDER BY slide_number ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query slides: %w", err)
	}
	defer rows.Close()

	slides := []extract.SlideRecord{}
	for rows.Next() {
		var rec extract.SlideRecord
		var warningsJSON string
		if err := rows.Scan(&rec.SlideNumber, &rec.Title, &warningsJSON, &rec.Error); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		var ws []timing.Warning
		if err := json.Unmarshal([]byte(warningsJSON), &ws); err != nil {
			return nil, fmt.Errorf("decode warnings for slide %d: %w", rec.SlideNumber, err)
		}
		if len(ws) > 0 {
			rec.Warnings = ws
		}
		slides = append(slides, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slides: %w", err)
	}
	return slides, nil
}

func (s *Store) readEvents(ctx context.Context, runID string) (map[int][]timing.AnimationEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slide_number, sequence_index, shape_id, shape_label,
		       trigger_kind, delay_ms, category, description, duration_ms
		FROM events
		WHERE run_id = ?
		ORDER BY slide_number ASC, sequence_index ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := make(map[int][]timing.AnimationEvent)
	for rows.Next() {
		var slideNumber int
		var ev timing.AnimationEvent
		var kind string
		var delayMS int64
		var category string
		err := rows.Scan(
			&slideNumber,
			&ev.SequenceIndex,
			&ev.SlideShapeID,
			&ev.ShapeLabel,
			&kind,
			&delayMS,
			&category,
			&ev.EffectDescription,
			&ev.DurationMS,
		)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Trigger = timing.TriggerFromKind(timing.TriggerKind(kind), delayMS)
		ev.EffectCategory = effect.Category(category)
		events[slideNumber] = append(events[slideNumber], ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
