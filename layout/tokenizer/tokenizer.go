// Package tokenizer turns one logical input line into grid rows, wrapping
// greedily at the wrap column.
package tokenizer

import (
	"github.com/hnimtadd/fwtype/layout/grapheme"
	"github.com/hnimtadd/fwtype/layout/row"
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/token"
	"github.com/hnimtadd/fwtype/layout/utils"
)

type Options struct {
	TabStop    size.CellCountInt
	WrapColumn size.CellCountInt
	Policy     grapheme.WidthPolicy
}

// Tokenizer holds the classifier shared by all lines of a stream.
type Tokenizer struct {
	classifier *grapheme.Classifier
	wrap       size.CellCountInt
}

func New(opts Options) *Tokenizer {
	utils.Assert(opts.WrapColumn > 0, "wrap column must be positive")
	return &Tokenizer{
		classifier: grapheme.NewClassifier(opts.TabStop, opts.Policy),
		wrap:       opts.WrapColumn,
	}
}

// ParseLine is a one-shot helper around New(opts).Line(line).
func ParseLine(line string, opts Options) row.Chunk {
	return New(opts).Line(line)
}

// Line lays out one input line. Every line yields at least one row; an
// empty line yields a single empty row. Rows carry no line number, the
// caller tags the first one.
//
// When the next token does not fit, the open row is closed as continued
// and the token starts a new row. Tokens are never split, and a token
// wider than the wrap column sits alone on its own row.
func (t *Tokenizer) Line(line string) row.Chunk {
	var (
		chunk   row.Chunk
		builder row.Builder
	)
	cur := grapheme.NewCursor(line)
	for {
		tk, ok := t.classifier.Next(cur, builder.Column())
		if !ok {
			break
		}
		if !builder.Fits(tk.Width, t.wrap) {
			chunk = append(chunk, builder.Close(true))
			// A tab measured at the old column is re-measured at the
			// start of the fresh row so it still ends on a stop.
			if tk.Kind == token.KindSkip {
				tk.Width = t.classifier.Tabs.Skip(builder.Column())
			}
		}
		builder.Append(tk)
	}

	if builder.Len() > 0 || len(chunk) == 0 {
		chunk = append(chunk, builder.Close(false))
	}
	return chunk
}
