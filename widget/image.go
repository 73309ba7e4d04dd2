// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/text"
)

// Image is a leaf node that reserves space for a named image.
type Image struct {
	// Name identifies the image to the renderer and the Sizer.
	Name string
	// Size is the size of the image. The zero Size asks Sizer.
	Size geom.Size
	// Sizer provides the intrinsic size of images without an
	// explicit size. It may be nil.
	Sizer text.ImageSizer
	// Fit specifies how to scale the image to the available space.
	// By default it does not do any scaling.
	Fit Fit
	// Hidden collapses the image.
	Hidden bool

	bounds geom.Rect
}

// Intrinsic returns the unscaled size of the image.
func (im *Image) Intrinsic() geom.Size {
	if im.Size != (geom.Size{}) || im.Sizer == nil {
		return im.Size
	}
	sz, _ := im.Sizer.ImageSize(im.Name)
	return sz
}

func (im *Image) Measure(available geom.Size) geom.Size {
	return im.Fit.scale(available, im.Intrinsic())
}

// Arrange fits the image to bounds, anchored at the top left corner.
func (im *Image) Arrange(bounds geom.Rect) geom.Size {
	sz := im.Fit.scale(bounds.Size(), im.Intrinsic())
	im.bounds = geom.Rect{X: bounds.X, Y: bounds.Y, Width: sz.Width, Height: sz.Height}
	return sz
}

func (im *Image) Collapsed() bool {
	return im.Hidden
}

// Bounds returns where the image was last arranged.
func (im *Image) Bounds() geom.Rect {
	return im.bounds
}
