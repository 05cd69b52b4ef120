package ansi

import "fmt"

// DEL is the delete character, the only control outside the C0 range.
const DEL uint8 = 0x7f

var c0Names = [0x20]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// Control reports whether s is a lone C0 control or DEL, and returns it.
func Control(s string) (uint8, bool) {
	if len(s) != 1 {
		return 0, false
	}
	if b := s[0]; b < 0x20 || b == DEL {
		return b, true
	}
	return 0, false
}

// String names a byte for log records, e.g. "BEL (0x07)".
func String(val uint8) string {
	switch {
	case val < 0x20:
		return fmt.Sprintf("%s (0x%02X)", c0Names[val], val)
	case val == DEL:
		return "DEL (0x7F)"
	default:
		return fmt.Sprintf("0x%02X", val)
	}
}
