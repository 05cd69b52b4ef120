package row

import (
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/token"
)

// Builder accumulates the open row of the tokenizer. It is owned by a
// single tokenizer call; Close freezes its content into a Row and starts
// over.
type Builder struct {
	tokens []token.Token
	column size.CellCountInt
}

// Append places tk at the current column.
func (b *Builder) Append(tk token.Token) {
	b.tokens = append(b.tokens, tk)
	b.column += tk.Width
}

// Len returns the number of tokens in the open row.
func (b *Builder) Len() int {
	return len(b.tokens)
}

// Column returns the column the next token would start at.
func (b *Builder) Column() size.CellCountInt {
	return b.column
}

// Fits reports whether a token of width w can join the open row without
// passing limit. The first token of an empty row always fits.
func (b *Builder) Fits(w, limit size.CellCountInt) bool {
	return len(b.tokens) == 0 || b.column+w <= limit
}

// Close returns the open row as a closed Row without a line number and
// resets the builder. The returned row owns a fresh copy of the tokens.
func (b *Builder) Close(continued bool) Row {
	r := Row{
		LineNumber: NoLineNumber,
		Continued:  continued,
		Tokens:     make([]token.Token, len(b.tokens)),
	}
	copy(r.Tokens, b.tokens)
	r.CalcWidth()

	b.tokens = b.tokens[:0]
	b.column = 0
	return r
}
