// Package effect classifies animation effect leaves into
// human-readable categories and descriptions.
//
// Classification is a fixed, compile-time-enumerable mapping: a
// preset-class code and preset id identify the effect family and the
// specific visual effect. There is no dynamic lookup - the set of
// recognized presets is finite and matched exhaustively, with an
// explicit fallback for everything else.
package effect

import (
	"strconv"

	"github.com/dmellis/slidetrace/internal/markup"
)

// Category is the effect family of an animation event.
type Category string

const (
	Entrance   Category = "entrance"
	Exit       Category = "exit"
	Emphasis   Category = "emphasis"
	MotionPath Category = "motion-path"
	Unknown    Category = "unknown"
)

// Categories lists all categories in priority order. The order is the
// summary tie-break order: entrance animations are the most
// presentation-salient, unknown the least.
func Categories() []Category {
	return []Category{Entrance, Exit, Emphasis, MotionPath, Unknown}
}

// Classify determines the category and description for an effect leaf.
//
// Precedence:
//  1. An explicit preset-class code on the leaf's timing node maps
//     directly to a category; a recognized preset id within that class
//     refines the description.
//  2. Absent a preset class, the behavior tag itself decides: a motion
//     behavior implies motion-path, property behaviors imply emphasis,
//     and a transition filter's direction implies entrance or exit.
//  3. Neither present: unknown category, generic description.
//
// Unknown preset ids within a known class still resolve to that class
// with a generic description rather than failing.
func Classify(leaf *markup.Node) (Category, string) {
	ctn := leaf
	if ctn.Tag != "cTn" {
		if found := leaf.Find("cTn"); found != nil {
			ctn = found
		}
	}

	if class := ctn.Attr("presetClass"); class != "" {
		if cat, ok := presetClassCategories[class]; ok {
			return cat, presetDescription(cat, ctn.Attr("presetID"))
		}
		return Unknown, genericDescription(Unknown)
	}

	if cat, desc, ok := classifyByBehavior(leaf); ok {
		return cat, desc
	}

	return Unknown, genericDescription(Unknown)
}

// classifyByBehavior inspects the leaf's behavior nodes when no preset
// class is present. The first recognized behavior in document order
// wins.
func classifyByBehavior(leaf *markup.Node) (Category, string, bool) {
	for _, tag := range behaviorTags {
		node := leaf.Find(tag)
		if node == nil {
			continue
		}
		switch tag {
		case "animMotion":
			return MotionPath, "motion along a path", true
		case "animClr":
			return Emphasis, "color change", true
		case "animRot":
			return Emphasis, "rotation", true
		case "animScale":
			return Emphasis, "grow/shrink", true
		case "animEffect":
			// The transition direction distinguishes entrances from
			// exits when the preset class is missing.
			switch node.Attr("transition") {
			case "in":
				return Entrance, genericDescription(Entrance), true
			case "out":
				return Exit, genericDescription(Exit), true
			}
			return Unknown, "transition filter effect", true
		}
	}
	return Unknown, "", false
}

// presetDescription resolves a preset id to its effect name within a
// category, falling back to the category's generic description.
func presetDescription(cat Category, presetID string) string {
	id, err := strconv.Atoi(presetID)
	if err != nil {
		return genericDescription(cat)
	}
	if names, ok := presetNames[cat]; ok {
		if name, ok := names[id]; ok {
			return name
		}
	}
	return genericDescription(cat)
}

func genericDescription(cat Category) string {
	switch cat {
	case Entrance:
		return "entrance effect"
	case Exit:
		return "exit effect"
	case Emphasis:
		return "emphasis effect"
	case MotionPath:
		return "motion path effect"
	default:
		return "unclassified effect"
	}
}
