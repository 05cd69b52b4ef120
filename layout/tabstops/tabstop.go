package tabstops

import (
	"github.com/hnimtadd/fwtype/layout/size"
	"github.com/hnimtadd/fwtype/layout/utils"
)

const TABSTOP_INTERVAL = 8 // Default tabstop interval

// Tabstops places a stop every interval columns, starting at column 0.
//
// Lines have no declared maximum length, so stops are computed rather
// than stored.
type Tabstops struct {
	interval size.CellCountInt
}

// NewTabstops creates Tabstops for the given interval, which must be
// positive.
func NewTabstops(interval size.CellCountInt) Tabstops {
	utils.Assert(interval > 0, "tabstop interval must be positive")
	return Tabstops{interval: interval}
}

// Interval returns the distance between two stops.
func (t Tabstops) Interval() size.CellCountInt {
	return t.interval
}

// Next returns the first stop strictly right of col.
func (t Tabstops) Next(col size.CellCountInt) size.CellCountInt {
	return (col/t.interval)*t.interval + t.interval
}

// Skip returns how many cells a horizontal tab at col advances. The result
// is in (0, interval] and always lands on a stop.
func (t Tabstops) Skip(col size.CellCountInt) size.CellCountInt {
	return t.Next(col) - col
}
