package core

import "math"

// Viewport maps logical game units to terminal cells.
// Game logic is always expressed in logical units; only the viewport knows
// how many units a single cell covers. Terminal cells are roughly twice as
// tall as they are wide, so the row scale is usually double the column scale.
//
// When MinHeight is set, short terminals get a coarser row scale so the
// field never measures less than MinHeight units vertically.
type Viewport struct {
	Cols        int
	Rows        int
	UnitsPerCol float64
	UnitsPerRow float64 // Effective row scale after Resize
	MinHeight   float64 // Minimum logical field height, 0 disables

	baseUnitsPerRow float64
}

// NewViewport creates a viewport for a cols x rows terminal.
func NewViewport(cols, rows int, unitsPerCol, unitsPerRow float64) Viewport {
	v := Viewport{UnitsPerCol: unitsPerCol, UnitsPerRow: unitsPerRow, baseUnitsPerRow: unitsPerRow}
	return v.Resize(cols, rows)
}

// WithMinHeight returns a copy of the viewport that keeps the field at least
// h units tall.
func (v Viewport) WithMinHeight(h float64) Viewport {
	v.MinHeight = max(h, 0)
	return v.Resize(v.Cols, v.Rows)
}

// Resize returns a copy of the viewport with new terminal dimensions.
// Negative sizes are treated as zero.
func (v Viewport) Resize(cols, rows int) Viewport {
	v.Cols = Max(cols, 0)
	v.Rows = Max(rows, 0)

	if v.baseUnitsPerRow == 0 {
		v.baseUnitsPerRow = v.UnitsPerRow
	}
	v.UnitsPerRow = v.baseUnitsPerRow
	if v.Rows > 0 && float64(v.Rows)*v.UnitsPerRow < v.MinHeight {
		v.UnitsPerRow = v.MinHeight / float64(v.Rows)
	}
	return v
}

// FieldSize returns the play field dimensions in logical units.
func (v Viewport) FieldSize() (w, h float64) {
	return float64(v.Cols) * v.UnitsPerCol, float64(v.Rows) * v.UnitsPerRow
}

// Col converts a logical x coordinate to a column index.
func (v Viewport) Col(x float64) int {
	if v.UnitsPerCol <= 0 {
		return 0
	}
	return int(math.Floor(x / v.UnitsPerCol))
}

// Row converts a logical y coordinate to a row index.
func (v Viewport) Row(y float64) int {
	if v.UnitsPerRow <= 0 {
		return 0
	}
	return int(math.Floor(y / v.UnitsPerRow))
}

// CellCenter returns the logical coordinates of the center of a cell.
func (v Viewport) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.UnitsPerCol, (float64(row) + 0.5) * v.UnitsPerRow
}
