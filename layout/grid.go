// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"

	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// Grid lays out children in a fixed number of columns, filling rows
// left to right, top to bottom in child order. The number of rows
// follows from the number of children.
//
// Column widths and row heights are auto sized unless given
// directives with SetColumnWidths and SetRowHeights.
type Grid struct {
	// Padding is the space between the grid bounds and its cells.
	Padding geom.Margin
	// Hidden collapses the grid.
	Hidden bool
	// Children are the cells in row-major order. Collapsed children
	// keep their cell but contribute no size.
	Children []Node

	columns  int
	colSizes CellSizes
	rowSizes CellSizes

	// Measure results, used by Arrange.
	colWidths      []int
	rowHeights     []int
	totalFixed     geom.Size
	totalAutoFixed geom.Size
}

// NewGrid returns a grid with columns auto sized columns. A column
// count below 1 is treated as 1.
func NewGrid(columns int, children ...Node) *Grid {
	return &Grid{columns: columns, Children: children}
}

// ColumnCount returns the number of columns.
func (g *Grid) ColumnCount() int {
	if len(g.colSizes) > 0 {
		return len(g.colSizes)
	}
	if g.columns < 1 {
		return 1
	}
	return g.columns
}

// RowCount returns the number of rows needed for the children.
func (g *Grid) RowCount() int {
	cols := g.ColumnCount()
	return (len(g.Children) + cols - 1) / cols
}

// SetColumnCount sets the number of columns. It has no effect while
// column widths are set.
func (g *Grid) SetColumnCount(n int) error {
	if n < 1 {
		return &ConfigError{Op: "Grid.SetColumnCount", Err: ErrColumnCount}
	}
	g.columns = n
	return nil
}

// ColumnWidths returns the column directives. The result must not be
// modified.
func (g *Grid) ColumnWidths() CellSizes {
	return g.colSizes
}

// RowHeights returns the row directives. The result must not be
// modified.
func (g *Grid) RowHeights() CellSizes {
	return g.rowSizes
}

// SetColumnWidths sets one directive per column and the column count
// to len(widths). An empty widths makes all columns auto sized again,
// keeping the current column count.
func (g *Grid) SetColumnWidths(widths CellSizes) error {
	if err := widths.Validate(); err != nil {
		return &ConfigError{Op: "Grid.SetColumnWidths", Err: err}
	}
	if len(widths) == 0 {
		g.columns = g.ColumnCount()
		g.colSizes = nil
		return nil
	}
	g.colSizes = slices.Clone(widths)
	g.columns = len(widths)
	return nil
}

// SetRowHeights sets one directive per row. Rows past the end of
// heights are auto sized.
func (g *Grid) SetRowHeights(heights CellSizes) error {
	if err := heights.Validate(); err != nil {
		return &ConfigError{Op: "Grid.SetRowHeights", Err: err}
	}
	g.rowSizes = slices.Clone(heights)
	return nil
}

func (g *Grid) Collapsed() bool {
	return g.Hidden
}

// Measure measures every visible child against its cell constraint
// and returns the sum of the column widths and row heights plus
// padding.
func (g *Grid) Measure(available geom.Size) geom.Size {
	cols := g.ColumnCount()
	rows := g.RowCount()
	g.colWidths = resetCells(g.colWidths, cols)
	g.rowHeights = resetCells(g.rowHeights, rows)

	inner := deflate(available, g.Padding)
	g.totalFixed = geom.Size{
		Width:  g.colSizes.fixedTotal(cols),
		Height: g.rowSizes.fixedTotal(rows),
	}
	free := geom.Size{
		Width:  shrink(inner.Width, g.totalFixed.Width),
		Height: shrink(inner.Height, g.totalFixed.Height),
	}

	col, row := 0, 0
	for _, child := range g.Children {
		if col == cols {
			col = 0
			row++
		}
		if !child.Collapsed() {
			cs := geom.Size{
				Width:  cellConstraint(g.colSizes.at(col), free.Width),
				Height: cellConstraint(g.rowSizes.at(row), free.Height),
			}
			sz := child.Measure(cs)
			if sz.Width > g.colWidths[col] {
				g.colWidths[col] = sz.Width
			}
			if sz.Height > g.rowHeights[row] {
				g.rowHeights[row] = sz.Height
			}
		}
		col++
	}

	g.totalAutoFixed = geom.Size{
		Width:  resolveCells(g.colWidths, g.colSizes, inner.Width, inner.Width >= Unbounded),
		Height: resolveCells(g.rowHeights, g.rowSizes, inner.Height, inner.Height >= Unbounded),
	}
	return geom.Size{Width: sum(g.colWidths), Height: sum(g.rowHeights)}.Inflate(g.Padding)
}

// Arrange places the visible children in their cells. Proportional
// cells share the part of bounds left after the absolute and auto
// sized cells measured by the preceding Measure.
func (g *Grid) Arrange(bounds geom.Rect) geom.Size {
	cols := g.ColumnCount()
	rows := g.RowCount()
	if len(g.colWidths) != cols || len(g.rowHeights) != rows {
		panic("layout: Grid arranged without a matching Measure")
	}
	inner := bounds.Deflate(g.Padding)
	freeW := nonNegative(inner.Width - g.totalAutoFixed.Width)
	freeH := nonNegative(inner.Height - g.totalAutoFixed.Height)

	x, y := inner.X, inner.Y
	col, row := 0, 0
	var rowHeight int
	if rows > 0 {
		rowHeight = arrangedCell(g.rowSizes, g.rowHeights, 0, freeH)
	}
	for _, child := range g.Children {
		if col == cols {
			col = 0
			row++
			x = inner.X
			y += rowHeight
			rowHeight = arrangedCell(g.rowSizes, g.rowHeights, row, freeH)
		}
		w := arrangedCell(g.colSizes, g.colWidths, col, freeW)
		if !child.Collapsed() {
			child.Arrange(geom.Rect{X: x, Y: y, Width: w, Height: rowHeight})
		}
		x += w
		col++
	}

	var used geom.Size
	for i := range g.colWidths {
		used.Width += arrangedCell(g.colSizes, g.colWidths, i, freeW)
	}
	for i := range g.rowHeights {
		used.Height += arrangedCell(g.rowSizes, g.rowHeights, i, freeH)
	}
	return used.Inflate(g.Padding)
}

// cellConstraint returns the size offered to the content of a cell
// with directive d, where free is the space left after absolute
// cells. Proportional cells of an unbounded axis are unbounded.
func cellConstraint(d float32, free int) int {
	switch kindOf(d) {
	case cellAbsolute:
		return int(d)
	case cellProportional:
		if free >= Unbounded {
			return free
		}
		return fraction(d, free)
	default:
		return free
	}
}

// resolveCells replaces the measured content sizes of absolute cells
// with their directive, grows proportional cells to their share of
// the space left after the other cells, and returns the total of the
// absolute and auto sized cells.
func resolveCells(sizes []int, dirs CellSizes, inner int, unbounded bool) int {
	total := 0
	for i := range sizes {
		switch d := dirs.at(i); kindOf(d) {
		case cellAbsolute:
			sizes[i] = int(d)
			total += sizes[i]
		case cellAuto:
			total += sizes[i]
		}
	}
	if unbounded {
		return total
	}
	free := nonNegative(inner - total)
	for i := range sizes {
		if d := dirs.at(i); kindOf(d) == cellProportional {
			if s := fraction(d, free); s > sizes[i] {
				sizes[i] = s
			}
		}
	}
	return total
}

// arrangedCell returns the final size of cell i.
func arrangedCell(dirs CellSizes, measured []int, i, free int) int {
	switch d := dirs.at(i); kindOf(d) {
	case cellAbsolute:
		return int(d)
	case cellProportional:
		return fraction(d, free)
	default:
		return measured[i]
	}
}

// resetCells returns s with length n and all elements zero. The
// backing array is only replaced when it is too small.
func resetCells(s []int, n int) []int {
	if len(s) != n {
		s = slices.Grow(s[:0], n)[:n]
	}
	for i := range s {
		s[i] = 0
	}
	return s
}

func sum(s []int) int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}
