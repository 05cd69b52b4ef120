// Package render writes pages as LaTeX picture environments. Every token
// is put at the coordinate of its cell; nothing is left to the LaTeX line
// breaker.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/fwtype/layout/geometry"
	"github.com/hnimtadd/fwtype/layout/pagelist"
	"github.com/hnimtadd/fwtype/layout/row"
	"github.com/hnimtadd/fwtype/layout/token"
	"github.com/hnimtadd/fwtype/layout/utils"
)

// Frame sides, as bits of Options.Frames.
const (
	FrameLeft   = 0x1
	FrameTop    = 0x2
	FrameRight  = 0x4
	FrameBottom = 0x8

	FrameAll = FrameLeft | FrameTop | FrameRight | FrameBottom
)

// Options are the drawing parameters that do not take part in the layout.
type Options struct {
	// Nominal glyph box.
	CellWidth  int
	CellHeight int

	Frames int

	Grid       bool
	GridHPitch int
	GridVPitch int

	// Subtracted from the baseline of ASCII glyphs.
	BaseDrift int

	// LaTeX lengths put before and after every page; empty for none.
	AboveGap string
	BelowGap string

	LineNumberOffset int
	SpaceMarking     bool
}

type Renderer struct {
	w    *bufio.Writer
	err  error
	opts Options
}

func New(w io.Writer, opts Options) *Renderer {
	return &Renderer{
		w:    bufio.NewWriter(w),
		opts: opts,
	}
}

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// flush writes out what is buffered and reports the first error since the
// previous flush.
func (r *Renderer) flush() error {
	if r.err == nil {
		r.err = r.w.Flush()
	}
	err := r.err
	r.err = nil
	return err
}

// BeginDocument opens a minimal article around the pages.
func (r *Renderer) BeginDocument() error {
	r.printf("\\documentclass{article} %%%%%% fwtype-opt\n")
	r.printf("\\begin{document} %%%%%% fwtype-opt\n")
	r.printf("\\par %%%%%% fwtype-opt\n")
	return r.flush()
}

func (r *Renderer) EndDocument() error {
	r.printf("\\end{document} %%%%%% fwtype-opt\n")
	return r.flush()
}

// Fingerprint identifies the layout of g drawn with the renderer's
// options. Documents can compare it to notice a changed layout.
func (r *Renderer) Fingerprint(g geometry.Geometry) uint64 {
	hashed, err := hashstructure.Hash(struct {
		Options  Options
		Geometry geometry.Geometry
	}{r.opts, g}, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash layout: %v", err))
	return hashed
}

// Page writes p as one self-contained picture.
func (r *Renderer) Page(g geometry.Geometry, p *pagelist.Page) error {
	r.printf("\n")
	if r.opts.AboveGap != "" {
		r.printf("\\vspace*{%s} %% above\n", r.opts.AboveGap)
	}
	r.printf("\\noindent%%\n{%%\n")
	r.preamble()
	r.printf("%% fwtype layout %016x\n", r.Fingerprint(g))
	r.printf("%% page %d rows %d-%d\n", p.Index+1, p.Offset+1, p.Offset+p.Len())
	r.printf("\\begin{picture}(%d,%d)\n", g.PictureWidth(), p.Height)
	r.frame(g, p)
	if r.opts.Grid {
		r.grid(g, p)
	}
	r.body(g, p)
	r.printf("\\end{picture}\n}\n")
	if r.opts.BelowGap != "" {
		r.printf("\\vspace*{%s} %% below\n", r.opts.BelowGap)
	}
	r.printf("\n")
	return r.flush()
}

func (r *Renderer) preamble() {
	cw, ch := r.opts.CellWidth, r.opts.CellHeight
	small := 2 * ch / 3

	r.printf("\\fboxsep=-.5pt%%\n")
	r.printf("\\setlength{\\unitlength}{1pt}%%\n")
	r.printf("\\ttfamily\\gtfamily%%\n")
	r.printf("%% csize w,h=%d, %d\n", cw, ch)
	r.printf("\\fontsize{%dpt}{%dpt}\\selectfont%%\n", ch, ch)
	r.printf("\\def\\numfont{\\fontsize{%dpt}{%dpt}\\selectfont}%%\n", small, small)
	r.printf("\\def\\spcmark{\\fontsize{%dpt}{%dpt}\\selectfont$\\triangle$}%%\n", small, small)
	r.printf("\\def\\VV{\\vrule width 0pt height 0.90em depth .25em}%%\n")
	r.printf("\\def\\FA#1#2#3{\\put(#1,#2){\\makebox(%d,%d){\\VV\\mbox{#3}}}}%%\n", cw, ch)
	r.printf("\\def\\FX#1#2#3{\\put(#1,#2){\\makebox(%d,%d){\\VV\\mbox{#3}}}}%%\n", cw, ch)
}

func (r *Renderer) frame(g geometry.Geometry, p *pagelist.Page) {
	x, w, h := g.TextXOffset, g.FrameWidth(), p.Height

	r.printf("%% frame\n\\thicklines\n")
	if r.opts.Frames&FrameAll == FrameAll {
		r.printf(" \\put(%d,0){\\framebox(%d,%d){}}\n", x, w, h)
	} else {
		if r.opts.Frames&FrameLeft != 0 {
			r.printf(" \\put(%d,0){\\line(0,1){%d}}\n", x, h)
		}
		if r.opts.Frames&FrameBottom != 0 {
			r.printf(" \\put(%d,0){\\line(1,0){%d}}\n", x, w)
		}
		if r.opts.Frames&FrameTop != 0 {
			r.printf(" \\put(%d,%d){\\line(-1,0){%d}}\n", x+w, h, w)
		}
		if r.opts.Frames&FrameRight != 0 {
			r.printf(" \\put(%d,%d){\\line(0,-1){%d}}\n", x+w, h, h)
		}
	}
	r.printf("\\thinlines\n")
}

// grid draws a vertical line every GridHPitch cells and a horizontal line
// every GridVPitch rows. Rows are counted across pages so the grid keeps
// its phase at page breaks.
func (r *Renderer) grid(g geometry.Geometry, p *pagelist.Page) {
	r.printf("%% grid\n\\linethickness{0.1pt}\n")
	if pitch := r.opts.GridHPitch; pitch > 0 {
		for gx := 0; gx <= g.FrameCells(); gx += pitch {
			r.printf("  \\put(%d,0){\\line(0,1){ %d } }\n",
				g.TextXOffset+g.Margin+gx*r.opts.CellWidth, p.Height)
		}
	}
	if pitch := r.opts.GridVPitch; pitch > 0 {
		for gy := 0; gy <= p.Len(); gy++ {
			if (p.Offset+gy)%pitch != 0 {
				continue
			}
			r.printf("  \\put(%d,%d){\\line(1,0){ %d } }\n",
				g.TextXOffset, p.Height-g.Margin-gy*g.LineHeight, g.FrameWidth())
		}
	}
	r.printf("\\thinlines\n")
}

func (r *Renderer) body(g geometry.Geometry, p *pagelist.Page) {
	r.printf("%% body\n")
	for i, rw := range p.Rows {
		y := p.Height - g.LineHeight*(i+1) - g.Margin
		if g.Numbering && rw.HasLineNumber() {
			r.lineNumber(g, rw, y)
		}
		r.row(g, rw, y)
	}
}

func (r *Renderer) lineNumber(g geometry.Geometry, rw row.Row, y int) {
	label := fmt.Sprintf("%*d", g.NDigits, r.opts.LineNumberOffset+rw.LineNumber)
	for k, ch := range []byte(label) {
		if ch == ' ' {
			continue
		}
		r.printf("{\\numfont\\FA{%d}{%d}{%c}}\n", g.Margin+g.NumeralWidth*k, y, ch)
	}
}

func (r *Renderer) row(g geometry.Geometry, rw row.Row, y int) {
	cw := r.opts.CellWidth
	x := g.TextXOffset + g.Margin
	for _, tk := range rw.Tokens {
		if tk.IsVisible() {
			r.token(tk, x, y)
		}
		x += int(tk.Width) * cw
	}
	if rw.Continued {
		r.printf(" \\FA{%d}{%d}{$\\ast$}\n", g.TextXOffset+g.FrameWidth(), y)
	}
}

func (r *Renderer) token(tk token.Token, x, y int) {
	cw := r.opts.CellWidth
	switch tk.Kind {
	case token.KindASCII:
		if tk.Text == " " {
			if r.opts.SpaceMarking {
				r.printf(" \\FA{%d}{%d}{\\spcmark}\n", x, y-r.opts.BaseDrift)
			}
			return
		}
		// controls escape to nothing and leave their cell blank
		if text := Escape(tk.Text); text != "" {
			r.printf(" \\FA{%d}{%d}{%s}\n", x, y-r.opts.BaseDrift, text)
		}
	case token.KindWide:
		r.printf(" \\FX{%d}{%d}{%s}\n", x+int(tk.Width-1)*cw/2, y, tk.Text)
	case token.KindHole:
		r.printf(" \\FA{%d}{%d}{\\fbox{\\hbox to 2em{\\hss\\VV{}%s\\hss}}}\n",
			x+3*cw/2, y, Escape(tk.Text))
	}
}
