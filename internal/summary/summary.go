// Package summary aggregates a slide's event list into per-category
// counts and a human-readable digest.
package summary

import (
	"github.com/dmellis/slidetrace/internal/effect"
	"github.com/dmellis/slidetrace/internal/timing"
)

// HeadlineEmpty is the digest for a slide with no animation events.
const HeadlineEmpty = "no animations"

// SlideAnimationSummary is derived from a finalized event list. It is
// recomputed whole whenever the event list changes - never partially
// updated.
//
// INVARIANT: TotalEvents always equals the sum of EventsByCategory
// values; all five categories are always present, zero-filled.
type SlideAnimationSummary struct {
	TotalEvents      int                     `json:"total_events"`
	EventsByCategory map[effect.Category]int `json:"events_by_category"`
	Headline         string                  `json:"headline"`
}

// Summarize computes the summary for a finalized event list. Pure and
// deterministic.
//
// The headline names the dominant category; ties break by category
// priority order (entrance > exit > emphasis > motion-path > unknown).
// An empty event list yields "no animations".
func Summarize(events []timing.AnimationEvent) SlideAnimationSummary {
	counts := make(map[effect.Category]int, 5)
	for _, cat := range effect.Categories() {
		counts[cat] = 0
	}
	for _, ev := range events {
		counts[ev.EffectCategory]++
	}

	s := SlideAnimationSummary{
		TotalEvents:      len(events),
		EventsByCategory: counts,
		Headline:         HeadlineEmpty,
	}
	if len(events) == 0 {
		return s
	}

	// effect.Categories() is already in tie-break priority order, so a
	// strict > comparison implements the tie-break for free.
	best := effect.Unknown
	bestCount := -1
	for _, cat := range effect.Categories() {
		if counts[cat] > bestCount {
			best = cat
			bestCount = counts[cat]
		}
	}
	s.Headline = string(best)
	return s
}
