package asciiart

// standardGlyphs is the built-in block font. Glyph widths vary per rune;
// every glyph is exactly Rows lines tall.
var standardGlyphs = map[rune][Rows]string{
	'A': {
		" █████ ",
		"██   ██",
		"███████",
		"██   ██",
		"██   ██",
	},
	'B': {
		"██████ ",
		"██   ██",
		"██████ ",
		"██   ██",
		"██████ ",
	},
	'C': {
		" ██████",
		"██     ",
		"██     ",
		"██     ",
		" ██████",
	},
	'D': {
		"██████ ",
		"██   ██",
		"██   ██",
		"██   ██",
		"██████ ",
	},
	'E': {
		"███████",
		"██     ",
		"█████  ",
		"██     ",
		"███████",
	},
	'F': {
		"███████",
		"██     ",
		"█████  ",
		"██     ",
		"██     ",
	},
	'G': {
		" ██████",
		"██     ",
		"██   ██",
		"██   ██",
		" ██████",
	},
	'H': {
		"██   ██",
		"██   ██",
		"███████",
		"██   ██",
		"██   ██",
	},
	'I': {
		"██",
		"██",
		"██",
		"██",
		"██",
	},
	'J': {
		"     ██",
		"     ██",
		"     ██",
		"██   ██",
		" ██████",
	},
	'K': {
		"██   ██",
		"██  ██ ",
		"█████  ",
		"██  ██ ",
		"██   ██",
	},
	'L': {
		"██     ",
		"██     ",
		"██     ",
		"██     ",
		"███████",
	},
	'M': {
		"███    ███",
		"████  ████",
		"██ ████ ██",
		"██  ██  ██",
		"██      ██",
	},
	'N': {
		"███    ██",
		"████   ██",
		"██ ██  ██",
		"██  ██ ██",
		"██   ████",
	},
	'O': {
		" ██████ ",
		"██    ██",
		"██    ██",
		"██    ██",
		" ██████ ",
	},
	'P': {
		"██████ ",
		"██   ██",
		"██████ ",
		"██     ",
		"██     ",
	},
	'Q': {
		" ██████ ",
		"██    ██",
		"██ ██ ██",
		"██  ████",
		" ███████",
	},
	'R': {
		"██████ ",
		"██   ██",
		"██████ ",
		"██   ██",
		"██   ██",
	},
	'S': {
		" ██████",
		"██     ",
		" ██████",
		"      ██",
		"██████ ",
	},
	'T': {
		"████████",
		"   ██   ",
		"   ██   ",
		"   ██   ",
		"   ██   ",
	},
	'U': {
		"██    ██",
		"██    ██",
		"██    ██",
		"██    ██",
		" ██████ ",
	},
	'V': {
		"██    ██",
		"██    ██",
		"██    ██",
		" ██  ██ ",
		"  ████  ",
	},
	'W': {
		"██      ██",
		"██  ██  ██",
		"██ ████ ██",
		"████  ████",
		"███    ███",
	},
	'X': {
		"██   ██",
		" ██ ██ ",
		"  ███  ",
		" ██ ██ ",
		"██   ██",
	},
	'Y': {
		"██   ██",
		" ██ ██ ",
		"  ███  ",
		"   ██  ",
		"   ██  ",
	},
	'Z': {
		"███████",
		"    ██ ",
		"   ██  ",
		"  ██   ",
		"███████",
	},
	' ': {
		"   ",
		"   ",
		"   ",
		"   ",
		"   ",
	},
	'!': {
		"██",
		"██",
		"██",
		"  ",
		"██",
	},
	'?': {
		" ██████",
		"      ██",
		"  █████ ",
		"        ",
		"   ██   ",
	},
	'.': {
		"  ",
		"  ",
		"  ",
		"  ",
		"██",
	},
	',': {
		"  ",
		"  ",
		"  ",
		"██",
		"█ ",
	},
	'0': {
		" ██████ ",
		"██    ██",
		"██    ██",
		"██    ██",
		" ██████ ",
	},
	'1': {
		"   ██   ",
		" ████   ",
		"   ██   ",
		"   ██   ",
		"███████",
	},
	'2': {
		" ██████ ",
		"      ██",
		" ██████ ",
		"██      ",
		"███████",
	},
	'3': {
		" ██████ ",
		"      ██",
		" ██████ ",
		"      ██",
		" ██████ ",
	},
	'4': {
		"██    ██",
		"██    ██",
		"███████ ",
		"      ██",
		"      ██",
	},
	'5': {
		"███████ ",
		"██      ",
		"██████  ",
		"      ██",
		"███████ ",
	},
	'6': {
		" ██████ ",
		"██      ",
		"██████  ",
		"██    ██",
		" ██████ ",
	},
	'7': {
		"███████",
		"     ██",
		"    ██ ",
		"   ██  ",
		"  ██   ",
	},
	'8': {
		" ██████ ",
		"██    ██",
		" ██████ ",
		"██    ██",
		" ██████ ",
	},
	'9': {
		" ██████ ",
		"██    ██",
		" ███████",
		"      ██",
		" ██████ ",
	},
}
