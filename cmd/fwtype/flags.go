package main

import (
	"github.com/spf13/pflag"

	"github.com/hnimtadd/fwtype/config"
)

type paramFlag struct {
	name      string
	shorthand string
	value     string
	usage     string
	boolean   bool
}

// paramFlags are the conversion parameters settable from the command
// line. Their values are applied with config.Params.Set, so they only
// override the configuration when given.
var paramFlags = []paramFlag{
	{name: config.OptLineNumberOffset, shorthand: "N", value: "0", usage: "line number offset"},
	{name: config.OptLineNumberWidth, shorthand: "W", value: "auto", usage: "line number width in digits"},
	{name: config.OptAboveGap, shorthand: "A", usage: `above gap like ".5em"`},
	{name: config.OptBelowGap, shorthand: "B", usage: `below gap like "12pt"`},
	{name: config.OptTabStop, shorthand: "t", value: "8", usage: "tab stop"},
	{name: config.OptGridHPitch, shorthand: "G", value: "5", usage: "grid pitch in horizontal, in cells"},
	{name: config.OptGridVPitch, shorthand: "Z", value: "5", usage: "grid pitch in vertical, in rows"},
	{name: config.OptLinesPerPage, shorthand: "l", value: "9999", usage: "line limit; rows per picture"},
	{name: config.OptWrapColumn, shorthand: "w", value: "64", usage: "width limit; columns per line"},
	{name: config.OptBaseDrift, shorthand: "b", value: "0", usage: "base drift for ASCII"},
	{name: config.OptMargin, shorthand: "m", value: "5", usage: "out margin width"},
	{name: config.OptSepMargin, shorthand: "s", value: "2", usage: "sep margin width"},
	{name: config.OptLineHeight, shorthand: "H", value: "auto", usage: "line height; csize height * 1.2 when auto"},
	{name: config.OptCharSize, shorthand: "c", value: "10x5", usage: `character size like "17" or "20x10" in pt`},
	{name: config.OptFrames, shorthand: "f", value: "15", usage: "set of frames: left 1, top 2, right 4, bottom 8"},
	{name: config.OptNumeralWidth, value: "auto", usage: "width of one line number digit"},
	{name: config.OptMinWidth, value: "0", usage: "minimum frame width in cells"},
	{name: config.OptMinLines, value: "0", usage: "minimum frame height in rows"},
	{name: config.OptWidthPolicy, value: "fixed", usage: "width of non-ASCII clusters: fixed or measured"},
	{name: config.OptGrid, shorthand: "g", usage: "grid", boolean: true},
	{name: config.OptSpaceMarking, shorthand: "u", usage: "space marking", boolean: true},
	{name: config.OptNumbering, shorthand: "n", usage: "numbering", boolean: true},
	{name: config.OptStandalone, shorthand: "S", usage: "add preamble and begin/end document", boolean: true},
	{name: config.OptNormalize, usage: "normalize input to NFC", boolean: true},
}

func addParamFlags(fs *pflag.FlagSet) {
	for _, f := range paramFlags {
		if f.boolean {
			fs.BoolP(f.name, f.shorthand, false, f.usage)
			continue
		}
		fs.StringP(f.name, f.shorthand, f.value, f.usage)
	}
}

// applyParamFlags copies the flags set on the command line into p.
func applyParamFlags(fs *pflag.FlagSet, p *config.Params) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || !isParamFlag(f.Name) {
			return
		}
		err = p.Set(f.Name, f.Value.String())
	})
	return err
}

func isParamFlag(name string) bool {
	for _, f := range paramFlags {
		if f.name == name {
			return true
		}
	}
	return false
}
