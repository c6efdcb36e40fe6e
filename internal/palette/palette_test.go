package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjcad/mjcad/internal/assembly"
)

var (
	gray = assembly.Color{0.5, 0.5, 0.5, 1}
	red  = assembly.Color{0.8, 0.1, 0.1, 1}
	blue = assembly.Color{0.1, 0.1, 0.8, 0.25}
)

func partsWith(colors ...assembly.Color) []assembly.Part {
	parts := make([]assembly.Part, len(colors))
	for i, c := range colors {
		parts[i].Color = c
	}
	return parts
}

func TestBuildDeduplicates(t *testing.T) {
	p := Build(partsWith(gray, red, gray, gray, red))
	assert.Equal(t, 2, p.Len())
}

func TestBuildIsDeterministicAcrossInputOrder(t *testing.T) {
	a := Build(partsWith(gray, red, blue))
	b := Build(partsWith(blue, gray, red))

	assert.Equal(t, a.Entries(), b.Entries())

	for _, c := range []assembly.Color{gray, red, blue} {
		nameA, okA := a.Name(c)
		nameB, okB := b.Name(c)
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, nameA, nameB)
	}
}

func TestBuildNamesFollowChannelOrder(t *testing.T) {
	p := Build(partsWith(gray, red, blue))

	entries := p.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, []string{"color_0", "color_1", "color_2"}[i], e.Name)
	}
	for i := 1; i < len(entries); i++ {
		assert.True(t, less(entries[i-1].Color, entries[i].Color),
			"entries must ascend lexicographically")
	}
}

func TestBuildInvertsAlpha(t *testing.T) {
	p := Build(partsWith(blue)) // source alpha 0.25

	entries := p.Entries()
	require.Len(t, entries, 1)
	assert.InDelta(t, 0.75, entries[0].Color[3], 1e-12)

	// Lookup stays keyed by the source color.
	name, ok := p.Name(blue)
	require.True(t, ok)
	assert.Equal(t, entries[0].Name, name)

	_, ok = p.Name(entries[0].Color)
	assert.False(t, ok)
}

func TestBuildEmpty(t *testing.T) {
	p := Build(nil)
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Entries())

	_, ok := p.Name(gray)
	assert.False(t, ok)
}
