package asciiart

import "strings"

// glyphGap separates adjacent glyphs; it is appended after every glyph,
// so rendered lines carry a trailing gap.
const glyphGap = "  "

// Render produces a Rows-line rendering of text in the named font.
// Input is uppercased before lookup; runes the font does not cover render
// as blanks. Unknown font names are the only error condition.
func Render(text, fontName string) (string, error) {
	font, err := Lookup(fontName)
	if err != nil {
		return "", err
	}

	var lines [Rows]strings.Builder
	for _, r := range strings.ToUpper(text) {
		glyph := font.glyph(r)
		for i := range lines {
			lines[i].WriteString(glyph[i])
			lines[i].WriteString(glyphGap)
		}
	}

	rendered := make([]string, Rows)
	for i := range lines {
		rendered[i] = lines[i].String()
	}
	return strings.Join(rendered, "\n"), nil
}
