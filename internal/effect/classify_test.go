package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmellis/slidetrace/internal/markup"
)

func parseLeaf(t *testing.T, data string) *markup.Node {
	t.Helper()
	node, err := markup.Parse([]byte(data))
	require.NoError(t, err)
	return node
}

func TestClassify_PresetClass(t *testing.T) {
	cases := []struct {
		name     string
		markup   string
		category Category
		desc     string
	}{
		{
			"known entrance preset",
			`<cTn presetClass="entr" presetID="10"/>`,
			Entrance, "Fade",
		},
		{
			"known exit preset",
			`<cTn presetClass="exit" presetID="2"/>`,
			Exit, "Fly Out",
		},
		{
			"known emphasis preset",
			`<cTn presetClass="emph" presetID="8"/>`,
			Emphasis, "Spin",
		},
		{
			"known motion path preset",
			`<cTn presetClass="path" presetID="0"/>`,
			MotionPath, "Custom Path",
		},
		{
			"unknown id within known class",
			`<cTn presetClass="entr" presetID="9999"/>`,
			Entrance, "entrance effect",
		},
		{
			"missing id within known class",
			`<cTn presetClass="exit"/>`,
			Exit, "exit effect",
		},
		{
			"non-numeric id",
			`<cTn presetClass="emph" presetID="abc"/>`,
			Emphasis, "emphasis effect",
		},
		{
			"ole verb class",
			`<cTn presetClass="verb" presetID="1"/>`,
			Unknown, "unclassified effect",
		},
		{
			"unrecognized class code",
			`<cTn presetClass="wizardry" presetID="1"/>`,
			Unknown, "unclassified effect",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat, desc := Classify(parseLeaf(t, tc.markup))
			assert.Equal(t, tc.category, cat)
			assert.Equal(t, tc.desc, desc)
		})
	}
}

func TestClassify_BehaviorFallback(t *testing.T) {
	cases := []struct {
		name     string
		markup   string
		category Category
		desc     string
	}{
		{
			"motion behavior implies motion-path",
			`<par><cTn><childTnLst><animMotion/></childTnLst></cTn></par>`,
			MotionPath, "motion along a path",
		},
		{
			"color behavior implies emphasis",
			`<par><cTn><childTnLst><animClr/></childTnLst></cTn></par>`,
			Emphasis, "color change",
		},
		{
			"rotation behavior implies emphasis",
			`<par><cTn><childTnLst><animRot/></childTnLst></cTn></par>`,
			Emphasis, "rotation",
		},
		{
			"scale behavior implies emphasis",
			`<par><cTn><childTnLst><animScale/></childTnLst></cTn></par>`,
			Emphasis, "grow/shrink",
		},
		{
			"inbound transition filter implies entrance",
			`<par><cTn><childTnLst><animEffect transition="in"/></childTnLst></cTn></par>`,
			Entrance, "entrance effect",
		},
		{
			"outbound transition filter implies exit",
			`<par><cTn><childTnLst><animEffect transition="out"/></childTnLst></cTn></par>`,
			Exit, "exit effect",
		},
		{
			"directionless transition filter",
			`<par><cTn><childTnLst><animEffect/></childTnLst></cTn></par>`,
			Unknown, "transition filter effect",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat, desc := Classify(parseLeaf(t, tc.markup))
			assert.Equal(t, tc.category, cat)
			assert.Equal(t, tc.desc, desc)
		})
	}
}

func TestClassify_PresetClassBeatsBehavior(t *testing.T) {
	// An explicit preset class wins over the behavior tag.
	leaf := parseLeaf(t, `<par><cTn presetClass="exit" presetID="10"><childTnLst><animMotion/></childTnLst></cTn></par>`)
	cat, desc := Classify(leaf)
	assert.Equal(t, Exit, cat)
	assert.Equal(t, "Fade", desc)
}

func TestClassify_NothingRecognized(t *testing.T) {
	cat, desc := Classify(parseLeaf(t, `<par><cTn><childTnLst><set/></childTnLst></cTn></par>`))
	assert.Equal(t, Unknown, cat)
	assert.Equal(t, "unclassified effect", desc)
}

func TestCategories_PriorityOrder(t *testing.T) {
	assert.Equal(t,
		[]Category{Entrance, Exit, Emphasis, MotionPath, Unknown},
		Categories(),
	)
}
