// Package extract orchestrates per-slide animation extraction for a
// whole deck.
//
// Slides are independent: slide N's interpretation has no data
// dependency on its neighbors, so the deck is fanned out across a
// bounded worker pool. Each worker gets its own markup tree and shape
// resolver snapshot; no shared mutable state exists between concurrent
// slides.
//
// Failures are isolated per slide: one malformed slide's markup never
// aborts extraction for the rest of the deck. A failed slide appears
// in the output with zero events and a recorded reason.
package extract

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmellis/slidetrace/internal/markup"
	"github.com/dmellis/slidetrace/internal/shapes"
	"github.com/dmellis/slidetrace/internal/summary"
	"github.com/dmellis/slidetrace/internal/timing"
)

// SlideInput is one slide's raw material: its animation markup and the
// shape resolver built from its metadata.
type SlideInput struct {
	Number   int
	Title    string
	Markup   []byte
	Resolver shapes.Resolver
}

// SlideRecord is the per-slide output record. Field names mirror the
// JSON shape consumed by downstream tooling.
type SlideRecord struct {
	SlideNumber    int                           `json:"slide_number"`
	Title          string                        `json:"title,omitempty"`
	Animations     []timing.AnimationEvent       `json:"animations"`
	AnimationCount int                           `json:"animation_count"`
	Summary        summary.SlideAnimationSummary `json:"summary"`
	Warnings       []timing.Warning              `json:"warnings,omitempty"`

	// Error records the reason a slide's extraction failed (malformed
	// markup). Empty for slides that extracted cleanly, including
	// slides that simply have no animations.
	Error string `json:"error,omitempty"`
}

// DeckRecord is the output for a whole extraction run.
type DeckRecord struct {
	RunID  string        `json:"run_id"`
	Source string        `json:"source,omitempty"`
	Slides []SlideRecord `json:"slides"`
}

// Extractor runs slide extraction with a bounded worker pool.
type Extractor struct {
	workers int
	runGen  RunTokenGenerator
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWorkers bounds the number of slides processed concurrently.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithRunTokenGenerator overrides the run id generator. Tests use
// FixedGenerator to keep golden output stable.
func WithRunTokenGenerator(g RunTokenGenerator) Option {
	return func(e *Extractor) {
		e.runGen = g
	}
}

// New creates an Extractor. Defaults: 4 workers, UUIDv7 run tokens.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		workers: 4,
		runGen:  UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractDeck processes all slides and assembles the deck record.
// Slide order in the output matches input order regardless of worker
// scheduling. Returns an error only on context cancellation; per-slide
// failures are recorded in the slide records.
func (e *Extractor) ExtractDeck(ctx context.Context, source string, slides []SlideInput) (DeckRecord, error) {
	deck := DeckRecord{
		RunID:  e.runGen.Generate(),
		Source: source,
		Slides: make([]SlideRecord, len(slides)),
	}

	slog.Info("extraction run starting",
		"run_id", deck.RunID,
		"source", source,
		"slides", len(slides),
		"workers", e.workers,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, in := range slides {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			deck.Slides[i] = ExtractSlide(gctx, in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return DeckRecord{}, err
	}

	slog.Info("extraction run finished", "run_id", deck.RunID)
	return deck, nil
}

// ExtractSlide runs the full pipeline for one slide: parse the markup,
// interpret the timing tree, summarize. Never fails - problems are
// recorded on the returned record so the caller can keep going with
// the rest of the deck.
func ExtractSlide(ctx context.Context, in SlideInput) SlideRecord {
	rec := SlideRecord{
		SlideNumber: in.Number,
		Title:       in.Title,
		Animations:  []timing.AnimationEvent{},
	}

	root, err := markup.Parse(in.Markup)
	if err != nil {
		slog.Warn("slide markup failed to parse",
			"slide", in.Number,
			"error", err,
		)
		rec.Error = err.Error()
		rec.Summary = summary.Summarize(nil)
		return rec
	}

	res, err := timing.Interpret(ctx, root, in.Resolver)
	switch {
	case errors.Is(err, timing.ErrNotATimingTree):
		// Legitimate outcome: the slide has no animations.
		slog.Debug("slide has no timing tree", "slide", in.Number)
	case err != nil:
		// Context cancellation; record and bail out of this slide.
		rec.Error = err.Error()
	default:
		rec.Animations = res.Events
		rec.Warnings = res.Warnings
	}

	rec.AnimationCount = len(rec.Animations)
	rec.Summary = summary.Summarize(rec.Animations)

	slog.Debug("slide extracted",
		"slide", in.Number,
		"events", rec.AnimationCount,
		"warnings", len(rec.Warnings),
	)
	return rec
}
