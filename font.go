package inputmodule

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	GlyphWidth  = 5
	GlyphHeight = 6

	// MaxGlyphs is the number of glyphs that fit on the LED matrix, one below the other.
	MaxGlyphs = 5

	// each glyph is followed by one empty row and centered horizontally
	glyphPitch   = GlyphHeight + 1
	glyphOffsetX = (Width - GlyphWidth) / 2
)

// Glyph is a letter or symbol of the built in 5x6 font, indexed [y][x].
type Glyph [GlyphHeight][GlyphWidth]bool

func glyph(rows ...string) Glyph {
	var g Glyph
	if len(rows) != GlyphHeight {
		panic(fmt.Sprintf("inputmodule: glyph needs %d rows, got %d", GlyphHeight, len(rows)))
	}
	for y, row := range rows {
		if len(row) != GlyphWidth {
			panic(fmt.Sprintf("inputmodule: glyph row %q must be %d wide", row, GlyphWidth))
		}
		for x := 0; x < GlyphWidth; x++ {
			g[y][x] = row[x] == '#'
		}
	}
	return g
}

// Letter returns the glyph for r. Lowercase letters are drawn as uppercase,
// characters without a glyph as '?'.
func Letter(r rune) Glyph {
	if g, has := font[unicode.ToUpper(r)]; has {
		return g
	}
	return font['?']
}

// HasLetter reports whether r has its own glyph.
func HasLetter(r rune) bool {
	_, has := font[unicode.ToUpper(r)]
	return has
}

// Symbol returns the symbol with the given name, e.g. "sun" or ":)".
func Symbol(name string) (Glyph, bool) {
	g, has := symbols[name]
	return g, has
}

// SymbolNames returns the names of all symbols.
func SymbolNames() []string {
	return append([]string(nil), symbolOrder...)
}

// RenderGlyphs draws up to MaxGlyphs glyphs from top to bottom. Further glyphs are dropped.
func RenderGlyphs(glyphs ...Glyph) Bitmap {
	var b Bitmap
	if len(glyphs) > MaxGlyphs {
		glyphs = glyphs[:MaxGlyphs]
	}
	for k, g := range glyphs {
		for py := 0; py < GlyphHeight; py++ {
			for px := 0; px < GlyphWidth; px++ {
				if g[py][px] {
					b.Set(glyphOffsetX+px, py+glyphPitch*k, true)
				}
			}
		}
	}
	return b
}

// RenderString draws the first MaxGlyphs characters of s.
func RenderString(s string) Bitmap {
	glyphs := make([]Glyph, 0, MaxGlyphs)
	for _, r := range s {
		if len(glyphs) == MaxGlyphs {
			break
		}
		glyphs = append(glyphs, Letter(r))
	}
	return RenderGlyphs(glyphs...)
}

// RenderSymbols draws up to MaxGlyphs items. Each item is either a symbol
// name or a single character.
func RenderSymbols(items ...string) Bitmap {
	glyphs := make([]Glyph, 0, len(items))
	for _, item := range items {
		if g, has := Symbol(item); has {
			glyphs = append(glyphs, g)
			continue
		}
		r, size := utf8.DecodeRuneInString(item)
		if size == 0 || size != len(item) {
			r = '?'
		}
		glyphs = append(glyphs, Letter(r))
	}
	return RenderGlyphs(glyphs...)
}
