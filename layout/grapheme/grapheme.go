// Package grapheme classifies user-perceived characters into layout
// tokens.
//
// A line is first split into extended grapheme clusters, so a base letter
// and its combining marks, or a ZWJ emoji sequence, travel as one token.
// Classification then looks at the whole cluster: a cluster is ASCII only
// if every byte of it is.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/hnimtadd/fwtype/layout/ansi"
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/tabstops"
	"github.com/hnimtadd/fwtype/layout/token"
)

// Split returns the extended grapheme clusters of s in order.
func Split(s string) []string {
	clusters := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Cursor walks the clusters of one line. The classifier advances it by
// more than one cluster for escape sequences and holes.
type Cursor struct {
	clusters []string
	pos      int
}

func NewCursor(line string) *Cursor {
	return &Cursor{clusters: Split(line)}
}

// Done reports whether every cluster has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.clusters)
}

// Peek returns the next cluster without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.Done() {
		return "", false
	}
	return c.clusters[c.pos], true
}

// Next consumes and returns the next cluster.
func (c *Cursor) Next() (string, bool) {
	s, ok := c.Peek()
	if ok {
		c.pos++
	}
	return s, ok
}

// WidthPolicy decides the width of non-ASCII clusters.
type WidthPolicy int

const (
	// Every non-ASCII cluster is two cells wide.
	PolicyFixed WidthPolicy = iota
	// Non-ASCII clusters are measured with East Asian width rules and
	// clamped to one or two cells.
	PolicyMeasured
)

func (p WidthPolicy) String() string {
	switch p {
	case PolicyMeasured:
		return "measured"
	default:
		return "fixed"
	}
}

type Classifier struct {
	Tabs   tabstops.Tabstops
	Policy WidthPolicy
}

func NewClassifier(tabstop size.CellCountInt, policy WidthPolicy) *Classifier {
	return &Classifier{
		Tabs:   tabstops.NewTabstops(tabstop),
		Policy: policy,
	}
}

// Next classifies the cluster under the cursor, with col the column the
// token will start at. It returns false once the line is exhausted,
// including the case of a hole marker with no label after it.
//
// Rules, first match wins:
//  1. HT advances to the next tab stop.
//  2. ESC swallows clusters up to one ending in 'm', or to end of line.
//     The sequence is budgeted one cell although it is never drawn.
//  3. GS takes the following cluster as the label of a four-cell hole.
//  4. Any other all-ASCII cluster is one cell.
//  5. Anything else is a wide glyph.
func (c *Classifier) Next(cur *Cursor, col size.CellCountInt) (token.Token, bool) {
	q, ok := cur.Next()
	if !ok {
		return token.Token{}, false
	}

	switch {
	case ansi.IsControl(q, ansi.C0.HT):
		return token.Skip(c.Tabs.Skip(col)), true

	case ansi.IsControl(q, ansi.C0.ESC):
		var seq strings.Builder
		seq.WriteString(q)
		for {
			next, ok := cur.Next()
			if !ok {
				break
			}
			seq.WriteString(next)
			if strings.HasSuffix(next, string(rune(ansi.SGRFinal))) {
				break
			}
		}
		return token.Escape(seq.String()), true

	case ansi.IsControl(q, ansi.C0.GS):
		label, ok := cur.Next()
		if !ok {
			return token.Token{}, false
		}
		return token.Hole(label), true

	case isASCII(q):
		return token.ASCII(q), true

	default:
		return token.Wide(q, c.wideWidth(q)), true
	}
}

func (c *Classifier) wideWidth(cluster string) size.CellCountInt {
	if c.Policy != PolicyMeasured {
		return token.WidthWide
	}
	w := runewidth.StringWidth(cluster)
	return size.CellCountInt(max(1, min(w, int(token.WidthWide))))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
