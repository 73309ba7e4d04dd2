// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
	"math"
)

// CellSizes are the size directives of the columns or rows of a
// Grid, one per column or row. Each directive is one of:
//
//   - NaN: the cell is as large as its content (see Auto).
//   - [0, 1]: the cell receives that fraction of the space left after
//     absolute and auto sized cells.
//   - > 1: the cell is exactly that many layout units.
//
// The proportional directives of one CellSizes must not sum to more
// than 1.
type CellSizes []float32

var (
	// ErrProportionOverflow reports proportional directives summing
	// to more than 1.
	ErrProportionOverflow = errors.New("proportional cell sizes exceed 1")
	// ErrInvalidCellSize reports a negative or infinite directive.
	ErrInvalidCellSize = errors.New("invalid cell size")
	// ErrColumnCount reports a column count below 1.
	ErrColumnCount = errors.New("column count must be positive")
)

// ConfigError is returned when a container is given an invalid
// configuration. Nothing is applied when a setter fails.
type ConfigError struct {
	// Op is the failed operation, such as "Grid.SetColumnWidths".
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("layout: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// proportionSlack absorbs float32 rounding in sums such as
// 0.1 + 0.2 + 0.7.
const proportionSlack = 1e-5

type cellKind uint8

const (
	cellAuto cellKind = iota
	cellProportional
	cellAbsolute
)

// Auto returns the directive for a content sized cell.
func Auto() float32 {
	return float32(math.NaN())
}

// Fraction returns the directive for a cell taking f of the space
// left by the absolute and auto cells. f must lie in [0, 1].
func Fraction(f float32) float32 {
	if !(f >= 0 && f <= 1) {
		panic(fmt.Errorf("layout: cell fraction %g outside [0, 1]", f))
	}
	return f
}

// Fixed returns the directive for a cell of exactly px layout units.
// Sizes of one unit or less cannot be expressed, because they denote
// proportions; Fixed panics for them.
func Fixed(px int) float32 {
	if px <= 1 {
		panic(fmt.Errorf("layout: fixed cell size %d is not above 1", px))
	}
	return float32(px)
}

// Validate reports whether s is a valid set of directives.
func (s CellSizes) Validate() error {
	var sum float64
	for i, d := range s {
		switch {
		case math.IsNaN(float64(d)):
		case d < 0, math.IsInf(float64(d), 0):
			return fmt.Errorf("%w: %g at index %d", ErrInvalidCellSize, d, i)
		case d <= 1:
			sum += float64(d)
		}
	}
	if sum > 1+proportionSlack {
		return fmt.Errorf("%w: sum is %g", ErrProportionOverflow, sum)
	}
	return nil
}

// at returns the directive for cell i. Cells past the end of s are
// auto sized.
func (s CellSizes) at(i int) float32 {
	if i < len(s) {
		return s[i]
	}
	return Auto()
}

// fixedTotal returns the sum of the absolute directives among the
// first n cells.
func (s CellSizes) fixedTotal(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		if d := s.at(i); kindOf(d) == cellAbsolute {
			total += int(d)
		}
	}
	return total
}

func kindOf(d float32) cellKind {
	switch {
	case math.IsNaN(float64(d)):
		return cellAuto
	case d <= 1:
		return cellProportional
	default:
		return cellAbsolute
	}
}

// fraction returns d of free, truncated.
func fraction(d float32, free int) int {
	return int(float64(d) * float64(free))
}
