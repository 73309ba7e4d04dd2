// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/layout"
)

// Fit scales a widget to fit the space it is given.
type Fit uint8

const (
	// Unscaled does not alter the scale of a widget.
	Unscaled Fit = iota
	// Contain scales widget as large as possible without cropping
	// and it preserves aspect-ratio.
	Contain
	// Cover scales the widget to cover the available area and
	// preserves aspect-ratio.
	Cover
	// ScaleDown scales the widget smaller without cropping,
	// when it exceeds the available area.
	// It preserves aspect-ratio.
	ScaleDown
	// Fill stretches the widget to the available area and does not
	// preserve aspect-ratio.
	Fill
)

// scale returns the size of a widget of size sz fitted to avail. The
// result never exceeds avail. Unbounded axes of avail do not constrain
// the scale.
func (fit Fit) scale(avail, sz geom.Size) geom.Size {
	if fit == Unscaled || sz.Width == 0 || sz.Height == 0 {
		return constrain(avail, sz)
	}

	sx, sy := ratio(avail.Width, sz.Width), ratio(avail.Height, sz.Height)
	switch {
	case sx < 0 && sy < 0:
		return sz
	case sx < 0:
		sx = sy
	case sy < 0:
		sy = sx
	}

	switch fit {
	case Contain:
		sx = min(sx, sy)
		sy = sx
	case Cover:
		sx = max(sx, sy)
		sy = sx
	case ScaleDown:
		s := min(sx, sy)
		// The widget would need to be scaled up, no change needed.
		if s >= 1 {
			return constrain(avail, sz)
		}
		sx, sy = s, s
	case Fill:
	}

	scaled := geom.Size{
		Width:  int(float32(sz.Width) * sx),
		Height: int(float32(sz.Height) * sy),
	}
	return constrain(avail, scaled)
}

// ratio returns avail/n, or -1 when avail is unbounded.
func ratio(avail, n int) float32 {
	if avail >= layout.Unbounded {
		return -1
	}
	return float32(avail) / float32(n)
}

func constrain(avail, sz geom.Size) geom.Size {
	return geom.Size{
		Width:  min(sz.Width, avail.Width),
		Height: min(sz.Height, avail.Height),
	}
}

func (fit Fit) String() string {
	switch fit {
	case Unscaled:
		return "Unscaled"
	case Contain:
		return "Contain"
	case Cover:
		return "Cover"
	case ScaleDown:
		return "ScaleDown"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}
