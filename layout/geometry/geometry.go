// Package geometry derives the canvas dimensions of a picture from the
// measured input. All lengths are in picture units (1pt).
package geometry

import (
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/utils"
)

// Measure is what the first pass over an input tells the calculator.
type Measure struct {
	NChars  size.CellCountInt
	NDigits int
	Rows    int
}

type Options struct {
	Numbering bool

	// Width of one line number digit.
	NumeralWidth int

	CellWidth  int
	LineHeight int

	// Outer margin, on every side of the text frame and left of the
	// line numbers.
	Margin int
	// Gap between the line numbers and the text frame.
	SepMargin int

	// Lower bounds of the frame, in cells and rows.
	MinWidthChars int
	MinLineCount  int
}

// Geometry is computed once per input and shared by all of its pages.
type Geometry struct {
	Options

	NChars  size.CellCountInt
	NDigits int
	Rows    int

	// Width of the line number gutter.
	NumberWidth int
	// Left edge of the text frame.
	TextXOffset int

	TextWidth         int
	TextWidthFloor    int
	CanvasWidth       int
	CanvasHeight      int
	CanvasHeightFloor int
}

// Calculate lays out the canvas for m.
func Calculate(m Measure, opts Options) Geometry {
	utils.Assert(m.NChars >= 0 && m.Rows >= 0, "measure is never negative")

	g := Geometry{
		Options: opts,
		NChars:  m.NChars,
		NDigits: m.NDigits,
		Rows:    m.Rows,
	}
	if opts.Numbering {
		g.NumberWidth = opts.NumeralWidth * (m.NDigits + 1)
		g.TextXOffset = opts.Margin + g.NumberWidth + opts.SepMargin
	}
	g.TextWidth = 2*opts.Margin + int(m.NChars)*opts.CellWidth
	g.TextWidthFloor = 2*opts.Margin + opts.MinWidthChars*opts.CellWidth
	g.CanvasWidth = g.TextXOffset + g.TextWidth
	g.CanvasHeight = m.Rows*opts.LineHeight + 2*opts.Margin
	g.CanvasHeightFloor = opts.MinLineCount*opts.LineHeight + 2*opts.Margin
	return g
}

// FrameWidth is the width of the text frame, never below the floor.
func (g Geometry) FrameWidth() int {
	return max(g.TextWidth, g.TextWidthFloor)
}

// FrameCells is the number of cells across the text frame.
func (g Geometry) FrameCells() int {
	return max(int(g.NChars), g.MinWidthChars)
}

// PictureWidth is the width of a page picture, gutter included.
func (g Geometry) PictureWidth() int {
	return g.TextXOffset + g.FrameWidth()
}

// PageHeight returns the height of a page holding rows rows.
func (g Geometry) PageHeight(rows int) int {
	return max(rows*g.LineHeight+2*g.Margin, g.CanvasHeightFloor)
}
