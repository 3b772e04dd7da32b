package timing

import (
	"fmt"

	"github.com/dmellis/slidetrace/internal/effect"
)

// GroupKind identifies a semantic timing tree node variant.
type GroupKind int

const (
	// Sequence nodes execute children in listed order, each new child
	// gated by its own trigger condition.
	Sequence GroupKind = iota

	// Parallel nodes start children according to independent trigger
	// conditions relative to the parent's start, not to each other.
	Parallel

	// EffectLeaf nodes apply a single animation effect to one target
	// shape.
	EffectLeaf
)

func (k GroupKind) String() string {
	switch k {
	case Sequence:
		return "sequence"
	case Parallel:
		return "parallel"
	case EffectLeaf:
		return "effect"
	default:
		return fmt.Sprintf("GroupKind(%d)", int(k))
	}
}

// TimingGroup is a semantic node of the timing tree, built from the
// generic markup tree by the interpreter's recursive walk.
//
// INVARIANT: every TimingGroup except the tree root has exactly one
// trigger condition. The root's Trigger is nil.
type TimingGroup struct {
	Kind     GroupKind
	Trigger  TriggerCondition
	Children []*TimingGroup

	// Effect is non-nil iff Kind == EffectLeaf.
	Effect *EffectInfo
}

// EffectInfo carries the classified effect data for a leaf.
type EffectInfo struct {
	ShapeRef    string
	Category    effect.Category
	Description string
	DurationMS  int64
}

// AnimationEvent is one discrete animation occurrence on a slide.
// Created once by the interpreter; immutable; owned by the per-slide
// event list with no back-references into the input tree.
type AnimationEvent struct {
	// SlideShapeID is a foreign reference into the shape resolver's id
	// space.
	SlideShapeID string `json:"slide_shape_id"`

	// ShapeLabel is the resolved display name, or a synthetic
	// placeholder when the resolver does not know the reference.
	ShapeLabel string `json:"shape_label"`

	// SequenceIndex is 0-based and strictly increasing in emission
	// order - the invariant the interpreter guarantees.
	SequenceIndex int `json:"sequence_index"`

	Trigger           TriggerCondition `json:"trigger"`
	EffectCategory    effect.Category  `json:"effect_category"`
	EffectDescription string           `json:"effect_description"`
	DurationMS        int64            `json:"duration_ms"`
}

// WarningCode categorizes non-fatal interpretation problems.
type WarningCode string

const (
	// WarnAmbiguousTrigger: multiple condition markers on one node;
	// the first encountered wins.
	WarnAmbiguousTrigger WarningCode = "AMBIGUOUS_TRIGGER"

	// WarnUnresolvedTarget: an effect leaf without a target shape
	// reference; the leaf is skipped.
	WarnUnresolvedTarget WarningCode = "UNRESOLVED_TARGET"
)

// Warning records a non-fatal problem encountered during
// interpretation. Warnings are data, returned alongside the events -
// interpretation never aborts on a malformed leaf or condition.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`

	// Node locates the offending markup node for diagnostics, as a
	// slash-separated path of tags with sibling indexes.
	Node string `json:"node,omitempty"`
}

func (w Warning) String() string {
	if w.Node != "" {
		return fmt.Sprintf("%s: %s (%s)", w.Code, w.Message, w.Node)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Result carries the interpreter's output: the ordered event list and
// any warnings accumulated along the way.
type Result struct {
	Events   []AnimationEvent `json:"events"`
	Warnings []Warning        `json:"warnings,omitempty"`
}
