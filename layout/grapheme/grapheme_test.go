package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/token"
)

func classifyAll(t *testing.T, c *Classifier, line string) []token.Token {
	t.Helper()
	cur := NewCursor(line)
	var (
		toks []token.Token
		col  size.CellCountInt
	)
	for {
		tk, ok := c.Next(cur, col)
		if !ok {
			break
		}
		toks = append(toks, tk)
		col += tk.Width
	}
	require.True(t, cur.Done(), "cursor must be exhausted")
	return toks
}

func TestSplit(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Equal(t, []string{"a", "b"}, Split("ab"))
	// combining acute accent stays with its base letter
	assert.Equal(t, []string{"e\u0301", "x"}, Split("e\u0301x"))
	// ZWJ sequence is one cluster
	assert.Len(t, Split("\U0001F468\u200d\U0001F4BB!"), 2)
	// controls always break
	assert.Equal(t, []string{"\x1b", "[", "m"}, Split("\x1b[m"))
}

func TestCursor(t *testing.T) {
	cur := NewCursor("ab")
	s, ok := cur.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", s)

	s, _ = cur.Next()
	assert.Equal(t, "a", s)
	s, _ = cur.Next()
	assert.Equal(t, "b", s)
	assert.True(t, cur.Done())

	_, ok = cur.Next()
	assert.False(t, ok)
	_, ok = cur.Peek()
	assert.False(t, ok)
}

func TestClassifier_Rules(t *testing.T) {
	c := NewClassifier(8, PolicyFixed)

	tcs := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:     "plain ascii",
			input:    "Hi!",
			expected: []token.Token{token.ASCII("H"), token.ASCII("i"), token.ASCII("!")},
		},
		{
			name:     "tab from column zero",
			input:    "\tX",
			expected: []token.Token{token.Skip(8), token.ASCII("X")},
		},
		{
			name:     "tab after text",
			input:    "abc\tX",
			expected: []token.Token{token.ASCII("a"), token.ASCII("b"), token.ASCII("c"), token.Skip(5), token.ASCII("X")},
		},
		{
			name:     "wide glyphs",
			input:    "字\u00e9",
			expected: []token.Token{token.Wide("字", 2), token.Wide("\u00e9", 2)},
		},
		{
			name:     "combining sequence is one wide token",
			input:    "e\u0301",
			expected: []token.Token{token.Wide("e\u0301", 2)},
		},
		{
			name:     "sgr escape",
			input:    "\x1b[1;31mR\x1b[0m",
			expected: []token.Token{token.Escape("\x1b[1;31m"), token.ASCII("R"), token.Escape("\x1b[0m")},
		},
		{
			name:     "unterminated escape runs to end of line",
			input:    "a\x1b[1;3",
			expected: []token.Token{token.ASCII("a"), token.Escape("\x1b[1;3")},
		},
		{
			name:     "lone escape",
			input:    "\x1b",
			expected: []token.Token{token.Escape("\x1b")},
		},
		{
			name:     "hole takes exactly one cluster",
			input:    "\x1d12",
			expected: []token.Token{token.Hole("1"), token.ASCII("2")},
		},
		{
			name:     "hole with wide label",
			input:    "\x1d字",
			expected: []token.Token{token.Hole("字")},
		},
		{
			name:     "hole without label ends the line",
			input:    "x\x1d",
			expected: []token.Token{token.ASCII("x")},
		},
		{
			name:     "other controls are ascii",
			input:    "\x07",
			expected: []token.Token{token.ASCII("\x07")},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifyAll(t, c, tc.input))
		})
	}
}

// The escape budget of one cell is relied upon by every width sum
// downstream, even though nothing is drawn for it.
func TestClassifier_EscapeBudgetsOneCell(t *testing.T) {
	c := NewClassifier(8, PolicyFixed)
	toks := classifyAll(t, c, "\x1b[38;5;196m")
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindEscape, toks[0].Kind)
	assert.EqualValues(t, 1, toks[0].Width)
	assert.False(t, toks[0].IsVisible())
}

func TestClassifier_TabWidthDependsOnColumn(t *testing.T) {
	c := NewClassifier(4, PolicyFixed)
	for col := size.CellCountInt(0); col < 20; col++ {
		tk, ok := c.Next(NewCursor("\t"), col)
		require.True(t, ok)
		assert.Equal(t, token.KindSkip, tk.Kind)
		assert.Greater(t, tk.Width, size.CellCountInt(0))
		assert.LessOrEqual(t, tk.Width, size.CellCountInt(4))
		assert.Zero(t, (col+tk.Width)%4)
	}
}

func TestClassifier_MeasuredPolicy(t *testing.T) {
	c := NewClassifier(8, PolicyMeasured)
	toks := classifyAll(t, c, "字\u00e9")
	assert.Equal(t, []token.Token{token.Wide("字", 2), token.Wide("\u00e9", 1)}, toks)
}

func TestWidthPolicy_String(t *testing.T) {
	assert.Equal(t, "fixed", PolicyFixed.String())
	assert.Equal(t, "measured", PolicyMeasured.String())
}
