// Package timing interprets a slide's animation timing tree.
//
// The timing tree is the nested markup structure encoding when and how
// animation effects fire on a slide: sequential and parallel groups,
// condition nodes, and per-property effect nodes. Its semantics -
// trigger type, ordering, duration, target shape - are encoded through
// node nesting, attribute codes, and sibling position rather than a
// flat record format.
//
// The interpreter walks the generic markup tree depth-first, restricted
// to recognized timing tags, builds a semantic TimingGroup tree, and
// flattens it into an ordered list of AnimationEvents.
//
// DETERMINISM:
//
// Interpretation is a pure, single-threaded computation over an
// in-memory tree: no I/O, no hidden state, no wall-clock reads. The
// same tree and resolver always yield byte-identical event lists.
// sequence_index is a strictly increasing counter incremented once per
// emitted event in depth-first pre-order - it reconstructs relative
// ordering but does not encode true overlapping timing.
//
// FAILURE POLICY:
//
// Degrade, don't abort. A malformed condition or an effect leaf with a
// missing target produces a warning and interpretation continues;
// partial animation information is more useful than none. The only
// hard failure is ErrNotATimingTree, the expected outcome for a slide
// without animations. Warnings travel in the Result value, never a
// side channel, so per-slide error locality survives concurrent
// processing of independent slides.
package timing
