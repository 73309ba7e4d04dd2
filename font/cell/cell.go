// SPDX-License-Identifier: Unlicense OR MIT

// Package cell implements a measuring surface for character-cell
// displays such as terminals. Every rune occupies one or two cells
// according to its East Asian width; fonts only select the cell size.
package cell

import (
	"github.com/mattn/go-runewidth"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// Measurer measures text in whole cells.
type Measurer struct {
	// CellWidth and CellHeight are the size of one cell in layout
	// units. Zero means 1.
	CellWidth, CellHeight int
}

// Measure implements the measuring surface of package text.
func (m Measurer) Measure(_ font.Font, s string) geom.Size {
	w, h := m.CellWidth, m.CellHeight
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return geom.Size{
		Width:  runewidth.StringWidth(s) * w,
		Height: h,
	}
}
