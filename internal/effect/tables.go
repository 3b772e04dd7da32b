package effect

// presetClassCategories maps the preset-class attribute codes used by
// the timing markup to effect categories. OLE verbs and media calls
// carry no visual effect family, so they classify as unknown.
var presetClassCategories = map[string]Category{
	"entr":      Entrance,
	"exit":      Exit,
	"emph":      Emphasis,
	"path":      MotionPath,
	"verb":      Unknown,
	"mediacall": Unknown,
}

// behaviorTags lists the recognized per-property behavior tags, in the
// order they are consulted when no preset class is present.
var behaviorTags = []string{
	"animMotion",
	"animClr",
	"animRot",
	"animScale",
	"animEffect",
}

// presetNames maps (category, preset id) to the effect's display name.
// Entrance and exit share the same id space; the names differ (Fly In
// vs Fly Out). Ids absent here still resolve to the category with a
// generic description.
var presetNames = map[Category]map[int]string{
	Entrance: {
		1:  "Appear",
		2:  "Fly In",
		3:  "Blinds",
		4:  "Box",
		5:  "Checkerboard",
		6:  "Circle",
		8:  "Diamond",
		9:  "Dissolve In",
		10: "Fade",
		12: "Peek In",
		13: "Plus",
		14: "Random Bars",
		16: "Split",
		17: "Stretch",
		18: "Strips",
		19: "Swivel",
		20: "Wedge",
		21: "Wheel",
		22: "Wipe",
		23: "Zoom",
	},
	Exit: {
		1:  "Disappear",
		2:  "Fly Out",
		3:  "Blinds",
		4:  "Box",
		5:  "Checkerboard",
		6:  "Circle",
		8:  "Diamond",
		9:  "Dissolve Out",
		10: "Fade",
		12: "Peek Out",
		13: "Plus",
		14: "Random Bars",
		16: "Split",
		17: "Collapse",
		18: "Strips",
		19: "Swivel",
		20: "Wedge",
		21: "Wheel",
		22: "Wipe",
		23: "Zoom",
	},
	Emphasis: {
		1:  "Change Fill Color",
		2:  "Change Font",
		3:  "Change Font Color",
		4:  "Change Font Size",
		5:  "Change Font Style",
		6:  "Grow/Shrink",
		7:  "Change Line Color",
		8:  "Spin",
		9:  "Transparency",
		10: "Bold Flash",
	},
	MotionPath: {
		0: "Custom Path",
		1: "Circle",
		2: "Right Triangle",
		3: "Diamond",
		4: "Hexagon",
		5: "Pentagon",
		6: "Square",
		7: "Star",
		8: "Crescent Moon",
	},
}
