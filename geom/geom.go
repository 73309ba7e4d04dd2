// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom implements the integer geometry used by layout:
points, sizes, rectangles and margins in layout units.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package geom

import "fmt"

// A Point is a two dimensional point.
type Point struct {
	X, Y int
}

// Size is a width and height.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle given by its top left corner
// and its size.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Margin is the space around (or inside) the edges of a rectangle.
// It is used for both margins and padding.
type Margin struct {
	Left, Top, Right, Bottom int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// UniformMargin returns a Margin with v applied to all edges.
func UniformMargin(v int) Margin {
	return Margin{Left: v, Top: v, Right: v, Bottom: v}
}

// Add returns the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the component-wise sum of s and s2.
func (s Size) Add(s2 Size) Size {
	return Size{Width: s.Width + s2.Width, Height: s.Height + s2.Height}
}

// Sub returns the component-wise difference s-s2.
func (s Size) Sub(s2 Size) Size {
	return Size{Width: s.Width - s2.Width, Height: s.Height - s2.Height}
}

// Max returns the component-wise maximum of s and s2.
func (s Size) Max(s2 Size) Size {
	if s2.Width > s.Width {
		s.Width = s2.Width
	}
	if s2.Height > s.Height {
		s.Height = s2.Height
	}
	return s
}

// Inflate grows s by the totals of m.
func (s Size) Inflate(m Margin) Size {
	return s.Add(m.Size())
}

// Deflate shrinks s by the totals of m. Neither dimension goes
// below zero.
func (s Size) Deflate(m Margin) Size {
	s = s.Sub(m.Size())
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}

// Empty reports whether s has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Size returns r's width and height.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Min returns the top left corner of r.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom right corner of r, exclusive.
func (r Rect) Max() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Add offsets r with the vector p.
func (r Rect) Add(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Inflate grows r outwards by m.
func (r Rect) Inflate(m Margin) Rect {
	return Rect{
		X:      r.X - m.Left,
		Y:      r.Y - m.Top,
		Width:  r.Width + m.Left + m.Right,
		Height: r.Height + m.Top + m.Bottom,
	}
}

// Deflate shrinks r inwards by m. The resulting size is clamped
// at zero.
func (r Rect) Deflate(m Margin) Rect {
	sz := r.Size().Deflate(m)
	return Rect{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  sz.Width,
		Height: sz.Height,
	}
}

// Contains reports whether p lies in r.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.X+r.Width &&
		r.Y <= p.Y && p.Y < r.Y+r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min(), r.Size())
}

// Size returns the horizontal and vertical totals of m.
func (m Margin) Size() Size {
	return Size{Width: m.Left + m.Right, Height: m.Top + m.Bottom}
}
