// Package stream drives the tokenizer over a whole input and measures the
// result: the widest row, the number of rows and the digits needed to
// number them.
package stream

import (
	"errors"
	"io"

	"github.com/hnimtadd/fwtype/layout/ansi"
	"github.com/hnimtadd/fwtype/layout/row"
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/token"
	"github.com/hnimtadd/fwtype/layout/tokenizer"
	"github.com/hnimtadd/fwtype/layout/utils"
	"github.com/hnimtadd/fwtype/logger"
)

// DigitWidthAuto sizes the line number gutter from the row count.
const DigitWidthAuto = 0

type Options struct {
	Tokenizer tokenizer.Options

	// Fixed number of digits for line numbers, or DigitWidthAuto.
	DigitWidth int

	// Normalize lines to NFC before tokenizing.
	Normalize bool

	Logger logger.Logger
}

// Measurement is the outcome of the first pass over an input.
type Measurement struct {
	// Every row of the input in order.
	Rows row.Chunk
	// The widest row, in cells.
	NChars size.CellCountInt
	// Number of rows.
	CRow int
	// Number of input lines.
	CLine int
	// Digits reserved for line numbers.
	NDigits int
}

// Aggregator collects the rows of consecutive input lines.
type Aggregator struct {
	tokenizer  *tokenizer.Tokenizer
	digitWidth int
	log        logger.Logger

	rows     row.Chunk
	maxWidth size.CellCountInt
	cline    int
}

func NewAggregator(opts Options) *Aggregator {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	return &Aggregator{
		tokenizer:  tokenizer.New(opts.Tokenizer),
		digitWidth: opts.DigitWidth,
		log:        log,
	}
}

// Add lays out the next input line. Its first row is tagged with the
// line's 1-based number.
func (a *Aggregator) Add(line string) {
	a.cline++
	chunk := a.tokenizer.Line(line)
	utils.Assert(len(chunk) > 0, "every line yields a row")

	chunk[0].LineNumber = a.cline
	a.maxWidth = max(a.maxWidth, chunk.Width())
	a.rows = append(a.rows, chunk...)
	a.reportControls(chunk)
}

// reportControls notes the control characters that were laid out as plain
// cells. They take a cell but print nothing.
func (a *Aggregator) reportControls(chunk row.Chunk) {
	for _, tk := range chunk.Tokens() {
		if tk.Kind != token.KindASCII {
			continue
		}
		if b, ok := ansi.Control(tk.Text); ok {
			a.log.Debug("control character", "line", a.cline, "char", ansi.String(b))
		}
	}
}

// Measurement returns what has been collected so far.
func (a *Aggregator) Measurement() *Measurement {
	crow := len(a.rows)
	ndigits := a.digitWidth
	if ndigits == DigitWidthAuto {
		ndigits = utils.DigitCount(crow)
	}
	return &Measurement{
		Rows:    a.rows,
		NChars:  a.maxWidth,
		CRow:    crow,
		CLine:   a.cline,
		NDigits: ndigits,
	}
}

// Aggregate reads r to the end and measures it. Any read failure, including
// invalid UTF-8, aborts the input and is returned.
func Aggregate(r io.Reader, opts Options) (*Measurement, error) {
	agg := NewAggregator(opts)
	lines := NewReader(r, opts.Normalize)
	for {
		line, err := lines.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		agg.Add(line)
	}

	m := agg.Measurement()
	agg.log.Debug("measured input",
		"nchars", m.NChars,
		"cline", m.CLine,
		"crow", m.CRow,
		"ndigits", m.NDigits,
	)
	return m, nil
}
