package timing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmellis/slidetrace/internal/effect"
	"github.com/dmellis/slidetrace/internal/markup"
	"github.com/dmellis/slidetrace/internal/shapes"
)

// Recognized tags of the timing grammar. Unrecognized tags are skipped,
// never an error, to tolerate schema extensions.
const (
	tagTimingRoot   = "timing"
	tagNodeList     = "tnLst"
	tagChildList    = "childTnLst"
	tagParallel     = "par"
	tagSequence     = "seq"
	tagCommonNode   = "cTn"
	tagStartConds   = "stCondLst"
	tagCondition    = "cond"
	tagShapeTarget  = "spTgt"
	tagBehaviorBase = "cBhvr"
)

// behaviorTags are the per-property effect behaviors that mark a
// timing node as an effect leaf rather than a group.
var behaviorTags = map[string]bool{
	"anim":       true,
	"animEffect": true,
	"animMotion": true,
	"animRot":    true,
	"animScale":  true,
	"animClr":    true,
	"set":        true,
	"cmd":        true,
	"audio":      true,
	"video":      true,
}

// Node-type attribute codes marking ordered (click-stepped) groups.
var sequenceNodeTypes = map[string]bool{
	"mainSeq":        true,
	"interactiveSeq": true,
}

// Interpret walks a slide's markup tree and flattens it into an
// ordered list of animation events.
//
// It fails only when root is not the recognized timing root tag
// (ErrNotATimingTree) or the context is cancelled. Everything else
// degrades to warnings: ambiguous conditions keep the first, leaves
// without a target are skipped, unrecognized tags are ignored.
//
// The walk is pure - calling Interpret twice on the same tree and
// resolver yields identical results. Cancellation is checked between
// sibling iterations; no irrevocable side effects occur mid-walk.
func Interpret(ctx context.Context, root *markup.Node, resolver shapes.Resolver) (Result, error) {
	if root == nil || root.Tag != tagTimingRoot {
		return Result{}, ErrNotATimingTree
	}
	if resolver == nil {
		resolver = shapes.Empty
	}

	w := &walker{ctx: ctx, resolver: resolver}

	tree, err := w.buildRoot(root)
	if err != nil {
		return Result{}, err
	}

	res := Result{Warnings: w.warnings}
	res.Events = w.emit(tree)
	return res, nil
}

// walker carries interpretation state: the accumulated warnings and
// the strictly increasing event counter.
type walker struct {
	ctx      context.Context
	resolver shapes.Resolver
	warnings []Warning
	nextIdx  int
}

func (w *walker) warn(code WarningCode, node string, format string, args ...any) {
	w.warnings = append(w.warnings, Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Node:    node,
	})
}

// buildRoot constructs the semantic tree from the timing root. The
// root TimingGroup is a trigger-less Parallel group whose children are
// the top-level nodes of the tree's node list.
func (w *walker) buildRoot(root *markup.Node) (*TimingGroup, error) {
	top := &TimingGroup{Kind: Parallel}

	list := root.Child(tagNodeList)
	if list == nil {
		// A timing root without a node list is a valid, empty tree.
		return top, nil
	}

	for i, child := range list.Children {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
		g, err := w.buildGroup(child, fmt.Sprintf("%s[%d]", child.Tag, i))
		if err != nil {
			return nil, err
		}
		if g != nil {
			top.Children = append(top.Children, g)
		}
	}
	return top, nil
}

// buildGroup translates one par/seq markup node into a TimingGroup.
// Returns nil (and possibly a warning) when the node contributes
// nothing: unrecognized tag, missing common-node child, or an effect
// leaf without a target.
func (w *walker) buildGroup(n *markup.Node, path string) (*TimingGroup, error) {
	if n.Tag != tagParallel && n.Tag != tagSequence {
		// Unrecognized sibling (build lists, extension tags): skip.
		return nil, nil
	}

	ctn := n.Child(tagCommonNode)
	if ctn == nil {
		return nil, nil
	}

	trigger := w.extractTrigger(ctn, path)

	if isEffectLeaf(ctn) {
		return w.buildLeaf(ctn, trigger, path), nil
	}

	kind := Parallel
	if n.Tag == tagSequence || sequenceNodeTypes[ctn.Attr("nodeType")] {
		kind = Sequence
	}

	group := &TimingGroup{Kind: kind, Trigger: trigger}

	childList := ctn.Child(tagChildList)
	if childList == nil {
		return group, nil
	}
	for i, child := range childList.Children {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
		g, err := w.buildGroup(child, fmt.Sprintf("%s/%s[%d]", path, child.Tag, i))
		if err != nil {
			return nil, err
		}
		if g != nil {
			group.Children = append(group.Children, g)
		}
	}
	return group, nil
}

// buildLeaf constructs an EffectLeaf from a common node carrying
// preset attributes or behavior children. A leaf must reference
// exactly one target shape; a missing reference degrades to a warning
// and the leaf is dropped, leaving the rest of the tree intact.
func (w *walker) buildLeaf(ctn *markup.Node, trigger TriggerCondition, path string) *TimingGroup {
	ref := findShapeRef(ctn)
	if ref == "" {
		w.warn(WarnUnresolvedTarget, path, "effect leaf has no target shape reference")
		return nil
	}

	category, desc := effect.Classify(ctn)

	return &TimingGroup{
		Kind:    EffectLeaf,
		Trigger: trigger,
		Effect: &EffectInfo{
			ShapeRef:    ref,
			Category:    category,
			Description: desc,
			DurationMS:  extractDuration(ctn),
		},
	}
}

// extractTrigger derives the node's single trigger condition.
//
// The node-type attribute is the most explicit signal (clickEffect,
// afterGroup, withEffect, ...). When it is absent or unrecognized, the
// first condition node decides: an onClick event, or a bare numeric
// delay meaning a timed start. Multiple condition markers are
// malformed input - the first encountered wins and a warning is
// recorded.
//
// A node with no condition information at all starts with its parent:
// WithPrevious with zero delay.
func (w *walker) extractTrigger(ctn *markup.Node, path string) TriggerCondition {
	var cond *markup.Node
	if stl := ctn.Child(tagStartConds); stl != nil {
		conds := stl.ChildrenByTag(tagCondition)
		if len(conds) > 1 {
			w.warn(WarnAmbiguousTrigger, path,
				"%d condition markers present, first wins", len(conds))
		}
		if len(conds) > 0 {
			cond = conds[0]
		}
	}

	delay := int64(0)
	if cond != nil {
		delay, _ = parseMS(cond.Attr("delay"))
	}

	switch ctn.Attr("nodeType") {
	case "clickEffect", "clickPar":
		return OnClick{}
	case "afterEffect", "afterGroup":
		return AfterPrevious{DelayMS: delay}
	case "withEffect", "withGroup":
		return WithPrevious{DelayMS: delay}
	}

	if cond != nil {
		if cond.Attr("evt") == "onClick" {
			return OnClick{}
		}
		if _, ok := parseMS(cond.Attr("delay")); ok {
			return Timed{StartMS: delay}
		}
	}

	return WithPrevious{}
}

// isEffectLeaf reports whether a common node is a single effect rather
// than a group. Preset attributes are decisive; otherwise a child list
// holding behaviors but no nested groups marks a leaf.
func isEffectLeaf(ctn *markup.Node) bool {
	if ctn.HasAttr("presetClass") || ctn.HasAttr("presetID") {
		return true
	}
	childList := ctn.Child(tagChildList)
	if childList == nil {
		return false
	}
	hasBehavior := false
	for _, c := range childList.Children {
		if c.Tag == tagParallel || c.Tag == tagSequence {
			return false
		}
		if behaviorTags[c.Tag] {
			hasBehavior = true
		}
	}
	return hasBehavior
}

// findShapeRef returns the target shape id referenced by the leaf's
// behaviors, or "" when none is present.
func findShapeRef(ctn *markup.Node) string {
	if tgt := ctn.Find(tagShapeTarget); tgt != nil {
		return tgt.Attr("spid")
	}
	return ""
}

// extractDuration returns the leaf's duration in whole milliseconds:
// the common node's own dur attribute when numeric, else the longest
// behavior duration underneath it. Absent or non-numeric values
// (e.g. "indefinite") yield 0.
func extractDuration(ctn *markup.Node) int64 {
	if ms, ok := parseMS(ctn.Attr("dur")); ok {
		return ms
	}
	var longest int64
	childList := ctn.Child(tagChildList)
	if childList == nil {
		return 0
	}
	for _, b := range childList.Children {
		if !behaviorTags[b.Tag] {
			continue
		}
		bhvr := b.Child(tagBehaviorBase)
		if bhvr == nil {
			continue
		}
		inner := bhvr.Child(tagCommonNode)
		if inner == nil {
			continue
		}
		if ms, ok := parseMS(inner.Attr("dur")); ok && ms > longest {
			longest = ms
		}
	}
	return longest
}

// parseMS parses the source's native millisecond attribute values.
// Negative values are clamped to 0; "indefinite" and other non-numeric
// values report !ok.
func parseMS(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if ms < 0 {
		return 0, true
	}
	return ms, true
}

// emit flattens the semantic tree into events, assigning
// sequence_index in traversal order of emission: depth-first
// pre-order, one increment per emitted event. A Sequence group's
// children emit in listed order; a Parallel group's children emit in
// listed order among themselves as a single logical wave relative to
// siblings.
func (w *walker) emit(g *TimingGroup) []AnimationEvent {
	events := []AnimationEvent{}
	w.emitInto(g, &events)
	return events
}

func (w *walker) emitInto(g *TimingGroup, out *[]AnimationEvent) {
	if g.Kind == EffectLeaf {
		*out = append(*out, w.makeEvent(g))
		return
	}
	for _, child := range g.Children {
		w.emitInto(child, out)
	}
}

func (w *walker) makeEvent(leaf *TimingGroup) AnimationEvent {
	eff := leaf.Effect

	label := fmt.Sprintf("Shape %s", eff.ShapeRef)
	if info, ok := w.resolver.Resolve(eff.ShapeRef); ok {
		label = info.DisplayName
	}

	ev := AnimationEvent{
		SlideShapeID:      eff.ShapeRef,
		ShapeLabel:        label,
		SequenceIndex:     w.nextIdx,
		Trigger:           leaf.Trigger,
		EffectCategory:    eff.Category,
		EffectDescription: eff.Description,
		DurationMS:        eff.DurationMS,
	}
	w.nextIdx++
	return ev
}
