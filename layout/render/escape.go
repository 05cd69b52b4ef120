package render

import "strings"

var latexReplacer = strings.NewReplacer(
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`\`, `\textbackslash{}`,
	`^`, `\^{}`,
	`~`, `\~{}`,
)

// Escape makes text safe to typeset inside \mbox. C0 controls and DEL have
// no glyph and are dropped.
func Escape(text string) string {
	return latexReplacer.Replace(strings.Map(dropControl, text))
}

func dropControl(r rune) rune {
	if r < 0x20 || r == 0x7f {
		return -1
	}
	return r
}
