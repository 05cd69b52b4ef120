package row

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/token"
)

// NoLineNumber marks a row that continues a wrapped input line.
const NoLineNumber = -1

// Row is one closed line of the output grid. Rows are values: once a
// Builder hands one out nothing else holds a reference to its tokens.
type Row struct {
	// The 1-based input line this row starts, or NoLineNumber for the
	// continuation rows of an overflowing line.
	LineNumber int

	// Sum of the token widths, kept in step by CalcWidth.
	Width size.CellCountInt

	// Whether the row was cut because the next token would overflow the
	// wrap column, as opposed to ending with its input line.
	Continued bool

	Tokens []token.Token
}

// HasLineNumber reports whether the row is the first row of its input line.
func (r *Row) HasLineNumber() bool {
	return r.LineNumber > 0
}

// CalcWidth recomputes Width from the tokens.
func (r *Row) CalcWidth() {
	var sum size.CellCountInt
	for _, tk := range r.Tokens {
		sum += tk.Width
	}
	r.Width = sum
}

// String renders the dump line: line number, width, a '*' for continued
// rows or '.' otherwise, then the tokens.
func (r Row) String() string {
	tks := make([]string, len(r.Tokens))
	for i, tk := range r.Tokens {
		tks[i] = tk.String()
	}
	mark := "."
	if r.Continued {
		mark = "*"
	}
	return fmt.Sprintf("%5d:%-3d %s %s", r.LineNumber, r.Width, mark, strings.Join(tks, " "))
}

// Chunk is an ordered run of rows: the rows of one input line, a page, or
// a whole stream.
type Chunk []Row

// Width returns the widest row in the chunk.
func (c Chunk) Width() size.CellCountInt {
	var w size.CellCountInt
	for i := range c {
		w = max(w, c[i].Width)
	}
	return w
}

// Tokens returns every token of the chunk in reading order.
func (c Chunk) Tokens() []token.Token {
	var toks []token.Token
	for i := range c {
		toks = append(toks, c[i].Tokens...)
	}
	return toks
}

func (c Chunk) String() string {
	lines := make([]string, len(c))
	for i, r := range c {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
