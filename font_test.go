package inputmodule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	b := RenderString("1")

	// first row of '1' is "..#.."
	assert.True(t, b.Get(glyphOffsetX+2, 0))
	assert.False(t, b.Get(glyphOffsetX+1, 0))
	// last row is "#####"
	for px := 0; px < GlyphWidth; px++ {
		assert.True(t, b.Get(glyphOffsetX+px, GlyphHeight-1))
	}
	assert.False(t, b.Get(0, GlyphHeight-1))
	assert.False(t, b.Get(Width-1, GlyphHeight-1))
}

func TestRenderStringPlacement(t *testing.T) {
	b := RenderString("AAAAA")
	a := RenderGlyphs(Letter('A'))
	for k := 0; k < MaxGlyphs; k++ {
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < Width; x++ {
				assert.Equal(t, a.Get(x, y), b.Get(x, y+glyphPitch*k), "glyph %d at %d/%d", k, x, y)
			}
		}
		// separator row
		for x := 0; x < Width; x++ {
			assert.False(t, b.Get(x, GlyphHeight+glyphPitch*k))
		}
	}
}

func TestRenderStringLimits(t *testing.T) {
	assert.Equal(t, RenderString("ABCDE"), RenderString("ABCDEFGH"))
	assert.Equal(t, RenderString("HELLO"), RenderString("hello"))
	assert.Equal(t, RenderString("?"), RenderString("§"))
	assert.Equal(t, Bitmap{}, RenderString(""))
}

func TestLetter(t *testing.T) {
	assert.True(t, HasLetter('a'))
	assert.True(t, HasLetter('9'))
	assert.False(t, HasLetter('~'))
	assert.Equal(t, Letter('?'), Letter('~'))
}

func TestSymbols(t *testing.T) {
	names := SymbolNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		_, has := Symbol(name)
		assert.True(t, has, name)
	}

	sun, has := Symbol("sun")
	require.True(t, has)
	assert.Equal(t, RenderGlyphs(sun, Letter('5')), RenderSymbols("sun", "5"))

	// multi character items that are no symbol are shown as '?'
	assert.Equal(t, RenderString("?"), RenderSymbols("xy"))

	names[0] = "changed"
	assert.NotEqual(t, "changed", SymbolNames()[0])
}
