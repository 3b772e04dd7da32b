package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Resolve(t *testing.T) {
	table := NewTable(map[string]ShapeInfo{
		"4": {DisplayName: "Title 1", PlaceholderType: "TITLE"},
	})

	info, ok := table.Resolve("4")
	require.True(t, ok)
	assert.Equal(t, "Title 1", info.DisplayName)
	assert.Equal(t, "TITLE", info.PlaceholderType)

	_, ok = table.Resolve("99")
	assert.False(t, ok)
}

func TestTable_NormalizesDisplayNames(t *testing.T) {
	// "é" as combining sequence (e + U+0301) vs precomposed U+00E9.
	decomposed := "Cafe\u0301"
	precomposed := "Caf\u00e9"

	table := NewTable(map[string]ShapeInfo{
		"1": {DisplayName: decomposed},
	})

	info, ok := table.Resolve("1")
	require.True(t, ok)
	assert.Equal(t, precomposed, info.DisplayName)
}

func TestEmpty_ResolvesNothing(t *testing.T) {
	_, ok := Empty.Resolve("anything")
	assert.False(t, ok)
}
