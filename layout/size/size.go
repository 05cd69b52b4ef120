// Package size holds the unit types shared by the layout packages.
package size

// CellCountInt counts character cells on the layout grid. A plain ASCII
// glyph is one cell wide, a wide glyph two.
type CellCountInt int
