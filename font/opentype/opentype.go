// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype implements measuring surfaces for rich text on top
// of golang.org/x/image/font.
//
// A Collection maps font handles to parsed OpenType faces, falling back
// through weight, style and typeface when no exact face is registered.
// A FaceMeasurer measures with one fixed face regardless of the handle.
package opentype

import (
	"fmt"

	xfont "golang.org/x/image/font"
	otf "golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/unit"
)

// DefaultSize is the text size used for fonts with a zero Size.
const DefaultSize = unit.Sp(16)

// Face is a parsed OpenType font. A Face is safe to share between
// collections.
type Face struct {
	font *otf.Font
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := otf.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing opentype font: %w", err)
	}
	return Face{font: f}, nil
}

// Collection measures text with registered faces.
//
// If a font matches no registered face, Collection falls back to
// the regular weight and style, and then to the typeface of the
// first registered face.
//
// Sized faces are created lazily and kept until Close. A Collection
// must not be used concurrently.
type Collection struct {
	// Metric converts font sizes to layout units.
	Metric unit.Metric
	// Hinting is passed to every face. The zero value is no hinting.
	Hinting xfont.Hinting

	def   font.Typeface
	faces map[font.Font]Face
	sized map[font.Font]xfont.Face
}

// Register adds a face for fnt. The size of fnt is ignored; the
// first registered typeface becomes the default.
func (c *Collection) Register(fnt font.Font, f Face) {
	if c.faces == nil {
		c.def = fnt.Typeface
		c.faces = make(map[font.Font]Face)
		c.sized = make(map[font.Font]xfont.Face)
	}
	// Treat all font sizes equally.
	fnt.Size = 0
	c.faces[fnt] = f
}

// Measure returns the advance of s and the line height of fnt,
// rounded up to whole layout units.
func (c *Collection) Measure(fnt font.Font, s string) geom.Size {
	return measureFace(c.faceFor(fnt), s)
}

// Face returns the sized face for fnt, as used by Measure. The face
// belongs to c and is released by Close.
func (c *Collection) Face(fnt font.Font) xfont.Face {
	return c.faceFor(fnt)
}

// Close releases the sized faces created so far.
func (c *Collection) Close() error {
	var firstErr error
	for k, f := range c.sized {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(c.sized, k)
	}
	return firstErr
}

func (c *Collection) faceFor(fnt font.Font) xfont.Face {
	if fnt.Size == 0 {
		fnt.Size = DefaultSize
	}
	if f, ok := c.sized[fnt]; ok {
		return f
	}
	src, ok := c.faceForFont(fnt)
	if !ok {
		panic("opentype: no faces registered")
	}
	f, err := otf.NewFace(src.font, &otf.FaceOptions{
		Size:    c.Metric.SpPx(fnt.Size),
		DPI:     72,
		Hinting: c.Hinting,
	})
	if err != nil {
		// NewFace only fails for invalid options, which are fixed above.
		panic(fmt.Errorf("opentype: creating face for %v: %w", fnt, err))
	}
	c.sized[fnt] = f
	return f
}

func (c *Collection) faceForStyle(fnt font.Font) (Face, bool) {
	if f, ok := c.faces[fnt]; ok {
		return f, true
	}
	alt := fnt
	alt.Weight = font.Normal
	if f, ok := c.faces[alt]; ok {
		return f, true
	}
	alt = fnt
	alt.Style = font.Regular
	if f, ok := c.faces[alt]; ok {
		return f, true
	}
	alt.Weight = font.Normal
	f, ok := c.faces[alt]
	return f, ok
}

func (c *Collection) faceForFont(fnt font.Font) (Face, bool) {
	fnt.Size = 0
	if f, ok := c.faceForStyle(fnt); ok {
		return f, true
	}
	fnt.Typeface = c.def
	return c.faceForStyle(fnt)
}

// FaceMeasurer measures every font with the same face. It is useful
// with fixed faces such as basicfont.Face7x13.
type FaceMeasurer struct {
	Face xfont.Face
}

// Measure implements the measuring surface of package text.
func (m FaceMeasurer) Measure(_ font.Font, s string) geom.Size {
	return measureFace(m.Face, s)
}

func measureFace(f xfont.Face, s string) geom.Size {
	var adv fixed.Int26_6
	if s != "" {
		adv = xfont.MeasureString(f, s)
	}
	return geom.Size{
		Width:  adv.Ceil(),
		Height: f.Metrics().Height.Ceil(),
	}
}
