// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/TeamDoodz/Gwen.Net-sub001/geom"

// Box is a leaf node of a fixed size. A Box without content serves as
// a spacer.
type Box struct {
	Size   geom.Size
	Hidden bool

	bounds geom.Rect
}

func (b *Box) Measure(available geom.Size) geom.Size {
	return b.Size
}

// Arrange takes all of bounds.
func (b *Box) Arrange(bounds geom.Rect) geom.Size {
	b.bounds = bounds
	return bounds.Size()
}

func (b *Box) Collapsed() bool {
	return b.Hidden
}

// Bounds returns where the box was last arranged.
func (b *Box) Bounds() geom.Rect {
	return b.bounds
}
