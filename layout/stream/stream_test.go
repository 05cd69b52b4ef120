package stream

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/fwtype/layout/grapheme"
	"github.com/hnimtadd/fwtype/layout/row"
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/tokenizer"
	"github.com/hnimtadd/fwtype/logger"
)

func testOptions(wrap int) Options {
	return Options{
		Tokenizer: tokenizer.Options{
			TabStop:    8,
			WrapColumn: sizeOf(wrap),
			Policy:     grapheme.PolicyFixed,
		},
		DigitWidth: DigitWidthAuto,
		Logger:     logger.Discard,
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	m, err := Aggregate(strings.NewReader(""), testOptions(64))
	require.NoError(t, err)
	assert.Equal(t, 0, m.CRow)
	assert.Equal(t, 0, m.CLine)
	assert.EqualValues(t, 0, m.NChars)
	assert.Equal(t, 1, m.NDigits)
	assert.Empty(t, m.Rows)
}

func TestAggregate_LineNumbersOnFirstRowOnly(t *testing.T) {
	m, err := Aggregate(strings.NewReader("abcdef\n\nxy\n"), testOptions(4))
	require.NoError(t, err)

	require.Len(t, m.Rows, 4)
	assert.Equal(t, 3, m.CLine)
	assert.Equal(t, 4, m.CRow)
	assert.EqualValues(t, 4, m.NChars)

	assert.Equal(t, 1, m.Rows[0].LineNumber)
	assert.True(t, m.Rows[0].Continued)
	assert.Equal(t, row.NoLineNumber, m.Rows[1].LineNumber)
	assert.False(t, m.Rows[1].Continued)
	assert.Equal(t, 2, m.Rows[2].LineNumber)
	assert.Empty(t, m.Rows[2].Tokens)
	assert.Equal(t, 3, m.Rows[3].LineNumber)
}

func TestAggregate_NCharsBoundsEveryRow(t *testing.T) {
	input := "short\n\tindented line\n字字字字字\n\x1b[1mbold\x1b[0m\n"
	m, err := Aggregate(strings.NewReader(input), testOptions(12))
	require.NoError(t, err)
	for _, r := range m.Rows {
		assert.LessOrEqual(t, r.Width, m.NChars)
	}
	assert.Equal(t, m.Rows.Width(), m.NChars)
}

func TestAggregate_ReportsControls(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := testOptions(64)
	opts.Logger = logger.New(logger.Options{Buffer: buf, Level: logger.DebugLevel, Type: logger.TypeText})

	m, err := Aggregate(strings.NewReader("plain\n\x1b[1ma\tb\n\x01\x02\x1d!\nx\x07y\n"), opts)
	require.NoError(t, err)
	// the controls still take their cell
	assert.EqualValues(t, 3, m.Rows[3].Width)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "control character"))
	assert.Contains(t, out, `line=3 char="SOH (0x01)"`)
	assert.Contains(t, out, `line=3 char="STX (0x02)"`)
	assert.Contains(t, out, `line=4 char="BEL (0x07)"`)
	assert.NotContains(t, out, "ESC")
	assert.NotContains(t, out, "HT")
}

func TestAggregate_DigitCount(t *testing.T) {
	tcs := []struct {
		lines   int
		ndigits int
	}{
		{1, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{1000, 4},
	}
	for _, tc := range tcs {
		input := strings.Repeat("x\n", tc.lines)
		m, err := Aggregate(strings.NewReader(input), testOptions(64))
		require.NoError(t, err)
		assert.Equal(t, tc.lines, m.CRow)
		assert.Equal(t, tc.ndigits, m.NDigits, "crow=%d", tc.lines)
	}
}

func TestAggregate_DigitCountFollowsRowsNotLines(t *testing.T) {
	// five lines wrapping into ten rows
	input := strings.Repeat("ab\n", 5)
	m, err := Aggregate(strings.NewReader(input), testOptions(1))
	require.NoError(t, err)
	assert.Equal(t, 5, m.CLine)
	assert.Equal(t, 10, m.CRow)
	assert.Equal(t, 2, m.NDigits)
}

func TestAggregate_FixedDigitWidth(t *testing.T) {
	opts := testOptions(64)
	opts.DigitWidth = 4
	m, err := Aggregate(strings.NewReader("a\nb\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, 4, m.NDigits)
}

func TestAggregate_InvalidInput(t *testing.T) {
	_, err := Aggregate(strings.NewReader("fine\n\xc3\x28\n"), testOptions(64))
	var invalid *InvalidUTF8Error
	assert.ErrorAs(t, err, &invalid)
}

func TestAggregator_Incremental(t *testing.T) {
	agg := NewAggregator(testOptions(64))
	assert.Equal(t, 1, agg.Measurement().NDigits)

	agg.Add("one")
	agg.Add("two")
	m := agg.Measurement()
	assert.Equal(t, 2, m.CLine)
	assert.Equal(t, 2, m.CRow)
	assert.EqualValues(t, 3, m.NChars)
	assert.Equal(t, 2, m.Rows[1].LineNumber)
}

func sizeOf(n int) size.CellCountInt {
	return size.CellCountInt(n)
}
