package ansi

// The C0 control characters the layout engine reacts to. Everything else
// in the C0 range is passed through as a plain single-cell glyph.
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	GS  uint8 // GS is the group separator (Caret: ^]); it opens a hole marker.
}

// C0 (7-bit) control characters from ANSI.
var C0 = c0{
	NUL: 0x00,
	HT:  0x09,
	LF:  0x0A,
	CR:  0x0D,
	ESC: 0x1B,
	GS:  0x1D,
}

// SGRFinal terminates a select-graphic-rendition sequence such as
// "ESC [ 1 ; 31 m". Escape sequences are consumed up to and including it.
const SGRFinal = 'm'

// IsControl reports whether s is exactly the single control byte c.
func IsControl(s string, c uint8) bool {
	return len(s) == 1 && s[0] == c
}
