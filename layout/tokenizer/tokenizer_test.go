package tokenizer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/fwtype/layout/grapheme"
	"github.com/hnimtadd/fwtype/layout/row"
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/token"
)

func opts(tab, wrap size.CellCountInt) Options {
	return Options{TabStop: tab, WrapColumn: wrap, Policy: grapheme.PolicyFixed}
}

// classify returns the token stream of line without any wrapping.
func classify(line string, tab size.CellCountInt) []token.Token {
	c := grapheme.NewClassifier(tab, grapheme.PolicyFixed)
	cur := grapheme.NewCursor(line)
	var (
		toks []token.Token
		col  size.CellCountInt
	)
	for {
		tk, ok := c.Next(cur, col)
		if !ok {
			return toks
		}
		toks = append(toks, tk)
		col += tk.Width
	}
}

func TestParseLine_WrapAtOneColumn(t *testing.T) {
	got := ParseLine("AB", opts(8, 1))
	want := row.Chunk{
		{LineNumber: row.NoLineNumber, Width: 1, Continued: true, Tokens: []token.Token{token.ASCII("A")}},
		{LineNumber: row.NoLineNumber, Width: 1, Continued: false, Tokens: []token.Token{token.ASCII("B")}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLine_LeadingTab(t *testing.T) {
	got := ParseLine("\tX", opts(4, 80))
	want := row.Chunk{
		{LineNumber: row.NoLineNumber, Width: 5, Tokens: []token.Token{token.Skip(4), token.ASCII("X")}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLine_EmptyLineYieldsOneEmptyRow(t *testing.T) {
	got := ParseLine("", opts(8, 64))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Tokens)
	assert.EqualValues(t, 0, got[0].Width)
	assert.False(t, got[0].Continued)
}

func TestParseLine_LabelLessHoleYieldsOneEmptyRow(t *testing.T) {
	got := ParseLine("\x1d", opts(8, 64))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Tokens)
}

func TestParseLine_TokenWiderThanWrapColumn(t *testing.T) {
	got := ParseLine("a字b", opts(8, 1))
	require.Len(t, got, 3)
	assert.Equal(t, []token.Token{token.ASCII("a")}, got[0].Tokens)
	assert.Equal(t, []token.Token{token.Wide("字", 2)}, got[1].Tokens)
	assert.EqualValues(t, 2, got[1].Width)
	assert.True(t, got[1].Continued)
	assert.Equal(t, []token.Token{token.ASCII("b")}, got[2].Tokens)
	assert.False(t, got[2].Continued)
}

func TestParseLine_WideGlyphDoesNotSplit(t *testing.T) {
	got := ParseLine("abc字", opts(8, 4))
	require.Len(t, got, 2)
	assert.EqualValues(t, 3, got[0].Width)
	assert.True(t, got[0].Continued)
	assert.Equal(t, []token.Token{token.Wide("字", 2)}, got[1].Tokens)
}

func TestParseLine_ExactFitDoesNotWrap(t *testing.T) {
	got := ParseLine("abcd", opts(8, 4))
	require.Len(t, got, 1)
	assert.EqualValues(t, 4, got[0].Width)
	assert.False(t, got[0].Continued)
}

func TestParseLine_EscapeCountsTowardsWrap(t *testing.T) {
	got := ParseLine("ab\x1b[1mc", opts(8, 3))
	require.Len(t, got, 2)
	assert.Equal(t, []token.Token{token.ASCII("a"), token.ASCII("b"), token.Escape("\x1b[1m")}, got[0].Tokens)
	assert.EqualValues(t, 3, got[0].Width)
	assert.Equal(t, []token.Token{token.ASCII("c")}, got[1].Tokens)
}

func TestParseLine_TabRemeasuredAfterWrap(t *testing.T) {
	got := ParseLine("abcdef\tX", opts(4, 7))
	require.Len(t, got, 2)
	assert.EqualValues(t, 6, got[0].Width)
	assert.True(t, got[0].Continued)
	assert.Equal(t, []token.Token{token.Skip(4), token.ASCII("X")}, got[1].Tokens)
}

func TestParseLine_Properties(t *testing.T) {
	lines := []string{
		"",
		"plain ascii line that is long enough to wrap a few times",
		"\tindent\tand\ttabs\tall\tover",
		"混在した 行 with 字 and ascii",
		"\x1b[1;31mred\x1b[0m text \x1b[4",
		"hole \x1dA and \x1d字 markers",
		strings.Repeat("字", 40),
	}
	for _, wrap := range []size.CellCountInt{1, 2, 3, 7, 16, 64} {
		for _, line := range lines {
			o := opts(4, wrap)
			chunk := ParseLine(line, o)
			require.NotEmpty(t, chunk)

			for i, r := range chunk {
				var sum size.CellCountInt
				for _, tk := range r.Tokens {
					assert.GreaterOrEqual(t, tk.Width, size.CellCountInt(0))
					sum += tk.Width
				}
				assert.Equal(t, sum, r.Width, "width sum, line %q wrap %d", line, wrap)
				assert.Equal(t, row.NoLineNumber, r.LineNumber)

				last := i == len(chunk)-1
				assert.Equal(t, !last, r.Continued, "continued flag, line %q wrap %d row %d", line, wrap, i)
				if !last {
					next := chunk[i+1].Tokens[0]
					assert.Greater(t, r.Width+next.Width, wrap, "row %d should not have wrapped", i)
				}
				if len(r.Tokens) > 1 {
					assert.LessOrEqual(t, r.Width, wrap)
				}
			}

			// Wrapping only re-measures tabs; everything else survives
			// in order.
			want := classify(line, 4)
			got := chunk.Tokens()
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].Kind, got[i].Kind)
				assert.Equal(t, want[i].Text, got[i].Text)
				if want[i].Kind != token.KindSkip {
					assert.Equal(t, want[i].Width, got[i].Width)
				}
			}
		}
	}
}
