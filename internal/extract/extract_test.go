package extract

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmellis/slidetrace/internal/effect"
	"github.com/dmellis/slidetrace/internal/shapes"
	"github.com/dmellis/slidetrace/internal/testutil"
	"github.com/dmellis/slidetrace/internal/timing"
)

func twoSlideInputs() []SlideInput {
	return []SlideInput{
		{
			Number:   1,
			Title:    "Welcome",
			Markup:   testutil.TwoEffectSlide(),
			Resolver: testutil.TitleSubtitleShapes(),
		},
		{
			Number:   2,
			Title:    "Agenda",
			Markup:   testutil.NoTimingSlide(),
			Resolver: shapes.Empty,
		},
	}
}

func TestExtractSlide_Animated(t *testing.T) {
	rec := ExtractSlide(context.Background(), twoSlideInputs()[0])

	assert.Equal(t, 1, rec.SlideNumber)
	assert.Empty(t, rec.Error)
	require.Len(t, rec.Animations, 2)
	assert.Equal(t, 2, rec.AnimationCount)
	assert.Equal(t, 2, rec.Summary.TotalEvents)
	assert.Equal(t, "entrance", rec.Summary.Headline)
	assert.Equal(t, 1, rec.Summary.EventsByCategory[effect.Entrance])
	assert.Equal(t, 1, rec.Summary.EventsByCategory[effect.Exit])
}

// A slide whose root is not a timing tree is a legitimate no-animation
// outcome, not a failure.
func TestExtractSlide_NoTimingTree(t *testing.T) {
	rec := ExtractSlide(context.Background(), twoSlideInputs()[1])

	assert.Empty(t, rec.Error)
	assert.Empty(t, rec.Animations)
	assert.Equal(t, 0, rec.AnimationCount)
	assert.Equal(t, "no animations", rec.Summary.Headline)
}

// Malformed markup is recorded on the slide record, never silently
// dropped and never fatal to the run.
func TestExtractSlide_MalformedMarkup(t *testing.T) {
	rec := ExtractSlide(context.Background(), SlideInput{
		Number: 3,
		Markup: testutil.MalformedSlide(),
	})

	assert.Contains(t, rec.Error, "malformed markup")
	assert.Empty(t, rec.Animations)
	assert.Equal(t, 0, rec.Summary.TotalEvents)
}

// One malformed slide must not abort extraction for the rest of the
// deck.
func TestExtractDeck_IsolatesSlideFailures(t *testing.T) {
	inputs := []SlideInput{
		{Number: 1, Markup: testutil.MalformedSlide()},
		{Number: 2, Markup: testutil.ClickSequenceSlide(2), Resolver: shapes.Empty},
	}

	ex := New(WithWorkers(2), WithRunTokenGenerator(FixedGenerator{Token: "run-iso"}))
	deck, err := ex.ExtractDeck(context.Background(), "deck", inputs)
	require.NoError(t, err)
	require.Len(t, deck.Slides, 2)

	assert.NotEmpty(t, deck.Slides[0].Error)
	assert.Empty(t, deck.Slides[1].Error)
	assert.Len(t, deck.Slides[1].Animations, 2)
}

// Output slide order matches input order regardless of worker count.
func TestExtractDeck_PreservesSlideOrder(t *testing.T) {
	var inputs []SlideInput
	for i := 1; i <= 8; i++ {
		inputs = append(inputs, SlideInput{
			Number: i,
			Markup: testutil.ClickSequenceSlide(i),
		})
	}

	ex := New(WithWorkers(4), WithRunTokenGenerator(FixedGenerator{Token: "run-order"}))
	deck, err := ex.ExtractDeck(context.Background(), "deck", inputs)
	require.NoError(t, err)
	require.Len(t, deck.Slides, 8)

	for i, slide := range deck.Slides {
		assert.Equal(t, i+1, slide.SlideNumber)
		assert.Equal(t, i+1, slide.AnimationCount)
	}
}

func TestExtractDeck_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := New(WithRunTokenGenerator(FixedGenerator{Token: "run-cancel"}))
	_, err := ex.ExtractDeck(ctx, "deck", twoSlideInputs())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractDeck_DefaultRunTokensAreUnique(t *testing.T) {
	ex := New()
	a, err := ex.ExtractDeck(context.Background(), "deck", nil)
	require.NoError(t, err)
	b, err := ex.ExtractDeck(context.Background(), "deck", nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}

// Golden comparison of the full deck record. Regenerate with:
//
//	go test ./internal/extract -update
func TestExtractDeck_Golden(t *testing.T) {
	ex := New(
		WithWorkers(2),
		WithRunTokenGenerator(FixedGenerator{Token: "test-run-0001"}),
	)

	deck, err := ex.ExtractDeck(context.Background(), "unit-test-deck", twoSlideInputs())
	require.NoError(t, err)

	data, err := json.MarshalIndent(deck, "", "  ")
	require.NoError(t, err)
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "two_slide_deck", data)
}

// The trigger variants survive a JSON round trip through their kind
// tags, the shape the archive store relies on.
func TestTriggerKindRoundTrip(t *testing.T) {
	cases := []timing.TriggerCondition{
		timing.OnClick{},
		timing.AfterPrevious{DelayMS: 500},
		timing.WithPrevious{DelayMS: 10},
		timing.Timed{StartMS: 2000},
	}
	for _, tc := range cases {
		got := timing.TriggerFromKind(tc.Kind(), timing.DelayMS(tc))
		assert.Equal(t, tc, got)
	}
}
