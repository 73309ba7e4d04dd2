// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the two-pass measure and arrange protocol
and the containers built on it.

A layout pass first calls Measure on the root with the available
size. Containers measure their children in turn and report the size
they desire. Arrange then assigns every node its final bounds, top
down, using the sizes computed by Measure. Arrange must follow a
Measure of the same tree; containers panic when it does not.

Layout is single threaded. The tree, including container
configuration and child lists, must not change during a pass.
*/
package layout

import (
	"math"

	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// Node is an element of a layout tree.
type Node interface {
	// Measure returns the size the node desires within the available
	// size. Measure may recurse into children.
	Measure(available geom.Size) geom.Size
	// Arrange positions the node within bounds and returns the size
	// it actually uses.
	Arrange(bounds geom.Rect) geom.Size
	// Collapsed reports whether the node is excluded from layout.
	// Collapsed nodes are neither measured nor arranged.
	Collapsed() bool
}

// Unbounded is the available extent that imposes no limit. Sizes
// derived from an Unbounded extent are never proportional.
const Unbounded = math.MaxInt32 / 2

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Layout runs a complete pass over root: Measure with the size of
// bounds followed by Arrange within bounds.
func Layout(root Node, bounds geom.Rect) geom.Size {
	root.Measure(bounds.Size())
	return root.Arrange(bounds)
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func axisSize(a Axis, main, cross int) geom.Size {
	if a == Horizontal {
		return geom.Size{Width: main, Height: cross}
	} else {
		return geom.Size{Width: cross, Height: main}
	}
}

func axisPoint(a Axis, main, cross int) geom.Point {
	if a == Horizontal {
		return geom.Point{X: main, Y: cross}
	} else {
		return geom.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz geom.Size) int {
	if a == Horizontal {
		return sz.Width
	} else {
		return sz.Height
	}
}

func axisCross(a Axis, sz geom.Size) int {
	if a == Horizontal {
		return sz.Height
	} else {
		return sz.Width
	}
}

// deflate shrinks sz by m. Unbounded extents stay unbounded.
func deflate(sz geom.Size, m geom.Margin) geom.Size {
	d := sz.Deflate(m)
	if sz.Width >= Unbounded {
		d.Width = Unbounded
	}
	if sz.Height >= Unbounded {
		d.Height = Unbounded
	}
	return d
}

// shrink returns v less used, never below zero. Unbounded stays
// unbounded.
func shrink(v, used int) int {
	if v >= Unbounded {
		return v
	}
	return nonNegative(v - used)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
