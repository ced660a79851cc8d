// Package asciiart renders text as fixed-height block glyphs.
package asciiart

import (
	"fmt"
	"sort"
	"strings"
)

// Rows is the fixed glyph height, in terminal lines.
const Rows = 5

// Font maps runes to fixed-height glyph patterns.
type Font struct {
	Name   string
	glyphs map[rune][Rows]string
}

// fonts is the registry of built-in fonts.
var fonts = map[string]*Font{
	"standard": {Name: "standard", glyphs: standardGlyphs},
}

// Fonts returns the sorted names of available fonts.
func Fonts() []string {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named font.
// Unknown names produce an error listing the available fonts.
func Lookup(name string) (*Font, error) {
	font, ok := fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %q not available. Available fonts: %s",
			name, strings.Join(Fonts(), ", "))
	}
	return font, nil
}

// glyph returns the pattern for r, falling back to the space glyph for
// runes the font does not cover.
func (f *Font) glyph(r rune) [Rows]string {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.glyphs[' ']
}
