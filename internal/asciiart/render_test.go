package asciiart

import (
	"strings"
	"testing"
)

func TestRender_AlwaysFiveLines(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single letter", "A"},
		{"word", "HELLO"},
		{"lowercase is uppercased", "hello"},
		{"digits", "42"},
		{"punctuation", "OK!?"},
		{"with spaces", "A B"},
		{"unknown runes fall back to blank", "A#B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := Render(tt.text, "standard")
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			lines := strings.Split(art, "\n")
			if len(lines) != Rows {
				t.Errorf("Render() produced %d lines, want %d", len(lines), Rows)
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render("SAVI", "standard")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := Render("SAVI", "standard")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if first != second {
		t.Error("Render() is not deterministic for identical input")
	}
}

func TestRender_CaseInsensitive(t *testing.T) {
	upper, _ := Render("GO", "standard")
	lower, _ := Render("go", "standard")
	if upper != lower {
		t.Error("Render() differs between upper and lower case input")
	}
}

func TestRender_UnknownRuneUsesBlankGlyph(t *testing.T) {
	unknown, err := Render("#", "standard")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	blank, err := Render(" ", "standard")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if unknown != blank {
		t.Errorf("unknown rune rendering = %q, want the blank glyph %q", unknown, blank)
	}
}

func TestRender_UnknownFont(t *testing.T) {
	_, err := Render("HI", "gothic")
	if err == nil {
		t.Fatal("expected error for unknown font")
	}
	if !strings.Contains(err.Error(), "gothic") {
		t.Errorf("error %q does not name the requested font", err)
	}
	for _, name := range Fonts() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not list known font %q", err, name)
		}
	}
}

func TestFonts(t *testing.T) {
	names := Fonts()
	if len(names) != 1 || names[0] != "standard" {
		t.Errorf("Fonts() = %v, want [standard]", names)
	}
}

func TestGlyphHeights(t *testing.T) {
	for r, glyph := range standardGlyphs {
		for i, row := range glyph {
			if row == "" {
				t.Errorf("glyph %q row %d is empty", r, i)
			}
		}
	}
}
