// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"

	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// Stack lays out children one after another along an axis. Every
// child is as long as it measured along the axis and as wide as the
// stack across it.
type Stack struct {
	// Axis is the stacking direction.
	Axis Axis
	// Padding is the space between the stack bounds and its children.
	Padding geom.Margin
	// Hidden collapses the stack.
	Hidden bool
	// Children in stacking order. Collapsed children take no space.
	Children []Node

	// measured holds the Measure result of each child, used by
	// Arrange.
	measured []geom.Size
}

func (s *Stack) Collapsed() bool {
	return s.Hidden
}

// Measure measures the visible children in order. Each child is
// offered only what its predecessors left along the axis.
func (s *Stack) Measure(available geom.Size) geom.Size {
	n := len(s.Children)
	if len(s.measured) != n {
		s.measured = slices.Grow(s.measured[:0], n)[:n]
	}
	inner := deflate(available, s.Padding)
	remaining := axisMain(s.Axis, inner)
	cross := axisCross(s.Axis, inner)
	var main, maxCross int
	for i, child := range s.Children {
		s.measured[i] = geom.Size{}
		if child.Collapsed() {
			continue
		}
		sz := child.Measure(axisSize(s.Axis, remaining, cross))
		s.measured[i] = sz
		m := axisMain(s.Axis, sz)
		main += m
		remaining = shrink(remaining, m)
		if c := axisCross(s.Axis, sz); c > maxCross {
			maxCross = c
		}
	}
	return axisSize(s.Axis, main, maxCross).Inflate(s.Padding)
}

// Arrange places the visible children one after another, giving each
// the full cross extent of bounds.
func (s *Stack) Arrange(bounds geom.Rect) geom.Size {
	if len(s.measured) != len(s.Children) {
		panic("layout: Stack arranged without a matching Measure")
	}
	inner := bounds.Deflate(s.Padding)
	cross := axisCross(s.Axis, inner.Size())
	origin := inner.Min()
	var main int
	for i, child := range s.Children {
		if child.Collapsed() {
			continue
		}
		m := axisMain(s.Axis, s.measured[i])
		sz := axisSize(s.Axis, m, cross)
		p := origin.Add(axisPoint(s.Axis, main, 0))
		child.Arrange(geom.Rect{X: p.X, Y: p.Y, Width: sz.Width, Height: sz.Height})
		main += m
	}
	return axisSize(s.Axis, main, cross).Inflate(s.Padding)
}
