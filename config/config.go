// Package config holds the parameters of a conversion. They are resolved
// once at startup, from defaults, an optional TOML file and the command
// line, and then passed by value.
package config

import (
	"fmt"

	"github.com/hnimtadd/fwtype/layout/grapheme"
	"github.com/hnimtadd/fwtype/layout/tabstops"
)

// Option names, shared by the command line flags and the TOML keys.
const (
	OptLineNumberOffset = "linenumoffset"
	OptLineNumberWidth  = "linenumwidth"
	OptAboveGap         = "above"
	OptBelowGap         = "below"
	OptTabStop          = "tabstop"
	OptGridHPitch       = "gridhpitch"
	OptGridVPitch       = "gridvpitch"
	OptLinesPerPage     = "llimit"
	OptWrapColumn       = "wlimit"
	OptBaseDrift        = "basedrift_a"
	OptMargin           = "outmargin"
	OptSepMargin        = "sepmargin"
	OptLineHeight       = "lineheight"
	OptCharSize         = "csize"
	OptGrid             = "grid"
	OptSpaceMarking     = "spcmarking"
	OptNumbering        = "numbering"
	OptStandalone       = "standalone"
	OptFrames           = "frames"
	OptNumeralWidth     = "numeral-width"
	OptMinWidth         = "min-width"
	OptMinLines         = "min-lines"
	OptWidthPolicy      = "width-policy"
	OptNormalize        = "nfc"
)

// CharSize is the nominal glyph box in points.
type CharSize struct {
	Width  int
	Height int
}

func (c CharSize) String() string {
	return fmt.Sprintf("%dx%d", c.Height, c.Width)
}

type Params struct {
	CharSize CharSize
	// Distance between baselines; 0 derives it from the glyph height.
	LineHeight int

	Margin    int
	SepMargin int
	// Frame sides: left 1, top 2, right 4, bottom 8.
	Frames int

	TabStop      int
	WrapColumn   int
	LinesPerPage int
	BaseDrift    int

	Grid       bool
	GridHPitch int
	GridVPitch int

	AboveGap string
	BelowGap string

	Numbering        bool
	LineNumberOffset int
	// Digits of the line numbers, or DigitWidthAuto.
	LineNumberWidth int
	// Width of one line number digit; 0 uses the glyph width.
	NumeralWidth int

	MinWidthChars int
	MinLineCount  int

	SpaceMarking bool
	Standalone   bool
	Normalize    bool
	WidthPolicy  string
}

func Default() Params {
	return Params{
		CharSize:        CharSize{Width: 5, Height: 10},
		Margin:          5,
		SepMargin:       2,
		Frames:          0xf,
		TabStop:         tabstops.TABSTOP_INTERVAL,
		WrapColumn:      64,
		LinesPerPage:    9999,
		GridHPitch:      5,
		GridVPitch:      5,
		LineNumberWidth: DigitWidthAuto,
		WidthPolicy:     grapheme.PolicyFixed.String(),
	}
}

// Resolve fills in the values left automatic.
func (p Params) Resolve() Params {
	if p.LineHeight == 0 {
		p.LineHeight = p.CharSize.Height * 12 / 10
	}
	if p.NumeralWidth == 0 {
		p.NumeralWidth = p.CharSize.Width
	}
	return p
}

// Validate checks resolved parameters and reports the first unusable one.
func (p Params) Validate() error {
	positive := []struct {
		option string
		value  int
	}{
		{OptTabStop, p.TabStop},
		{OptWrapColumn, p.WrapColumn},
		{OptLinesPerPage, p.LinesPerPage},
		{OptLineHeight, p.LineHeight},
		{OptGridHPitch, p.GridHPitch},
		{OptGridVPitch, p.GridVPitch},
		{OptNumeralWidth, p.NumeralWidth},
	}
	for _, v := range positive {
		if v.value <= 0 {
			return &Error{Option: v.option, Value: fmt.Sprint(v.value)}
		}
	}

	nonNegative := []struct {
		option string
		value  int
	}{
		{OptMargin, p.Margin},
		{OptSepMargin, p.SepMargin},
		{OptLineNumberOffset, p.LineNumberOffset},
		{OptLineNumberWidth, p.LineNumberWidth},
		{OptMinWidth, p.MinWidthChars},
		{OptMinLines, p.MinLineCount},
	}
	for _, v := range nonNegative {
		if v.value < 0 {
			return &Error{Option: v.option, Value: fmt.Sprint(v.value)}
		}
	}

	if p.CharSize.Width <= 0 || p.CharSize.Height <= 0 {
		return &Error{Option: OptCharSize, Value: p.CharSize.String()}
	}
	if p.Frames < 0 || p.Frames > 0xf {
		return &Error{Option: OptFrames, Value: fmt.Sprint(p.Frames)}
	}
	if _, err := p.Policy(); err != nil {
		return err
	}
	return nil
}

// Policy returns the width policy for wide clusters.
func (p Params) Policy() (grapheme.WidthPolicy, error) {
	switch p.WidthPolicy {
	case "", grapheme.PolicyFixed.String():
		return grapheme.PolicyFixed, nil
	case grapheme.PolicyMeasured.String():
		return grapheme.PolicyMeasured, nil
	}
	return 0, &Error{Option: OptWidthPolicy, Value: p.WidthPolicy}
}

// Set assigns one option from its textual form, as given on the command
// line. On error p is left unchanged.
func (p *Params) Set(option, val string) error {
	var err error
	next := *p
	switch option {
	case OptLineNumberOffset:
		next.LineNumberOffset, err = ParseUint(option, val)
	case OptLineNumberWidth:
		next.LineNumberWidth, err = ParseDigitWidth(option, val)
	case OptAboveGap:
		next.AboveGap = val
	case OptBelowGap:
		next.BelowGap = val
	case OptTabStop:
		next.TabStop, err = ParsePositiveInt(option, val)
	case OptGridHPitch:
		next.GridHPitch, err = ParsePositiveInt(option, val)
	case OptGridVPitch:
		next.GridVPitch, err = ParsePositiveInt(option, val)
	case OptLinesPerPage:
		next.LinesPerPage, err = ParsePositiveInt(option, val)
	case OptWrapColumn:
		next.WrapColumn, err = ParsePositiveInt(option, val)
	case OptBaseDrift:
		next.BaseDrift, err = ParseInt(option, val)
	case OptMargin:
		next.Margin, err = ParseUint(option, val)
	case OptSepMargin:
		next.SepMargin, err = ParseUint(option, val)
	case OptLineHeight:
		next.LineHeight, err = ParseLength(option, val)
	case OptCharSize:
		next.CharSize, err = ParseCharSize(option, val)
	case OptFrames:
		next.Frames, err = ParseUint(option, val)
	case OptNumeralWidth:
		next.NumeralWidth, err = ParseLength(option, val)
	case OptMinWidth:
		next.MinWidthChars, err = ParseUint(option, val)
	case OptMinLines:
		next.MinLineCount, err = ParseUint(option, val)
	case OptWidthPolicy:
		next.WidthPolicy = val
		_, err = next.Policy()
	case OptGrid:
		next.Grid, err = ParseBool(option, val)
	case OptSpaceMarking:
		next.SpaceMarking, err = ParseBool(option, val)
	case OptNumbering:
		next.Numbering, err = ParseBool(option, val)
	case OptStandalone:
		next.Standalone, err = ParseBool(option, val)
	case OptNormalize:
		next.Normalize, err = ParseBool(option, val)
	default:
		return fmt.Errorf("config: unknown option %q", option)
	}
	if err != nil {
		return err
	}
	*p = next
	return nil
}
