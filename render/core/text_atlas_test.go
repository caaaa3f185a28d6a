package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextAtlas_Glyphs(t *testing.T) {
	ta := NewTextAtlas()

	for r := rune(32); r < 127; r++ {
		_, ok := ta.Glyphs[r]
		assert.True(t, ok, "missing glyph %q", r)
	}
	assert.Equal(t, uint8(255), ta.AtlasImage.AlphaAt(0, 0).A)
}

func TestTextAtlas_Measure(t *testing.T) {
	ta := NewTextAtlas()

	w, h := ta.Measure("abc", 1)
	assert.Equal(t, float32(21), w)
	assert.Equal(t, ta.LineHeight(1), h)

	w, h = ta.Measure("ab\nabcd", 1)
	assert.Equal(t, float32(28), w)
	assert.Equal(t, 2*ta.LineHeight(1), h)

	_, h = ta.Measure("x", 2)
	assert.Equal(t, 2*ta.LineHeight(1), h)
}

func TestTextAtlas_BuildQuads(t *testing.T) {
	ta := NewTextAtlas()

	verts := ta.BuildQuads([]ScreenLabel{{Text: "hi\nyo", X: 400, Y: 300, Color: [4]float32{1, 1, 1, 1}}}, 800, 600)

	// One box and four glyphs, six vertices each.
	require.Len(t, verts, 5*6)
	assert.Equal(t, ta.BoxColor, verts[0].Color)
	for _, v := range verts {
		assert.GreaterOrEqual(t, v.Pos[0], float32(-1))
		assert.LessOrEqual(t, v.Pos[0], float32(1))
	}
}
