// Package token defines the classified display units the layout engine
// places on the grid.
package token

import (
	"fmt"

	"github.com/hnimtadd/fwtype/layout/size"
)

type Kind int

const (
	// A single-cell ASCII glyph.
	KindASCII Kind = iota
	// A glyph outside ASCII, budgeted as a double-cell character.
	KindWide
	// A raw escape sequence. It is carried through but never drawn.
	KindEscape
	// A labeled hole: a framed box holding a short marker.
	KindHole
	// Whitespace-only advance produced by a horizontal tab.
	KindSkip
	// Reserved; occupies its width and draws nothing.
	KindNop
)

// Fixed widths in cells. Skip widths depend on the column instead.
const (
	WidthASCII  size.CellCountInt = 1
	WidthWide   size.CellCountInt = 2
	WidthEscape size.CellCountInt = 1
	WidthHole   size.CellCountInt = 4
)

func (k Kind) String() string {
	switch k {
	case KindASCII:
		return "ascii"
	case KindWide:
		return "wide"
	case KindEscape:
		return "escape"
	case KindHole:
		return "hole"
	case KindSkip:
		return "skip"
	case KindNop:
		return "nop"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// prefix is the one letter used by the compact dump format.
func (k Kind) prefix() string {
	switch k {
	case KindASCII:
		return "a"
	case KindWide:
		return "m"
	case KindEscape:
		return "e"
	case KindHole:
		return "h"
	default:
		return "t"
	}
}

// Token is one classified unit of display content.
type Token struct {
	Kind Kind
	// Text is the cluster as read: the whole sequence for an escape, the
	// label for a hole, empty for skips.
	Text  string
	Width size.CellCountInt
}

func ASCII(s string) Token  { return Token{Kind: KindASCII, Text: s, Width: WidthASCII} }
func Escape(s string) Token { return Token{Kind: KindEscape, Text: s, Width: WidthEscape} }
func Hole(s string) Token   { return Token{Kind: KindHole, Text: s, Width: WidthHole} }

// Wide returns a wide token. Width is normally WidthWide; measured width
// policies may pass a narrower value.
func Wide(s string, width size.CellCountInt) Token {
	return Token{Kind: KindWide, Text: s, Width: width}
}

func Skip(width size.CellCountInt) Token {
	return Token{Kind: KindSkip, Width: width}
}

// IsVisible reports whether the renderer draws anything for the token.
func (t Token) IsVisible() bool {
	switch t.Kind {
	case KindASCII, KindWide, KindHole:
		return true
	default:
		return false
	}
}

// String renders the compact dump form, e.g. a"X"1, m"字"2, skip4.
func (t Token) String() string {
	switch t.Kind {
	case KindSkip, KindNop:
		return fmt.Sprintf("%s%d", t.Kind, t.Width)
	default:
		return fmt.Sprintf("%s%q%d", t.Kind.prefix(), t.Text, t.Width)
	}
}
