// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package grid

// Layout is the cell geometry for one frame.
type Layout struct {
	Rows, Cols int

	// CellW and CellH are the size of every cell.
	CellW, CellH float64

	// StepX and StepY are the distances between neighbouring cell origins.
	StepX, StepY float64

	// OffsetX and OffsetY place the first cell (half the margin).
	OffsetX, OffsetY float64
}

// ComputeLayout splits a width x height canvas into rows x cols cells.
// margin and gap are fractions of the canvas dimension. Nonsensical values
// produce degenerate (possibly negative) cell sizes rather than an error.
func ComputeLayout(width, height float64, rows, cols int, margin, gap float64) Layout {
	l := Layout{Rows: max(rows, 0), Cols: max(cols, 0)}
	if l.Rows == 0 || l.Cols == 0 {
		return l
	}

	mw := width * margin
	mh := height * margin
	gw := gap * width
	gh := gap * height

	l.CellW = (width - gw*float64(l.Cols) - mw) / float64(l.Cols)
	l.CellH = (height - gh*float64(l.Rows) - mh) / float64(l.Rows)
	l.StepX = l.CellW + gw
	l.StepY = l.CellH + gh
	l.OffsetX = mw / 2
	l.OffsetY = mh / 2
	return l
}

// Cell returns the top-left corner of the cell in column col and row row.
func (l Layout) Cell(row, col int) (left, top float64) {
	return l.StepX*float64(col) + l.OffsetX, l.StepY*float64(row) + l.OffsetY
}

// Index maps a cell to its slot in the box store, row-major. Slots stay
// unique for any rows/cols combination.
func (l Layout) Index(row, col int) int {
	return row*l.Cols + col
}

// Count returns the number of cells.
func (l Layout) Count() int { return l.Rows * l.Cols }
