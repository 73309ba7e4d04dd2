// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides the font handle used by rich text: a
typeface, style, weight and size. Measuring surfaces map a Font
to a concrete face.
*/
package font

import (
	"fmt"

	"github.com/TeamDoodz/Gwen.Net-sub001/unit"
)

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface, style, weight and size.
// Font is comparable and may be used as a map key.
type Font struct {
	// Typeface identifies a particular typeface design. The empty
	// string denotes the default typeface.
	Typeface Typeface
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
	// Size is the text size. Measuring surfaces substitute their own
	// default for a zero Size.
	Size unit.Sp
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// With returns f with its size replaced by sz.
func (f Font) With(sz unit.Sp) Font {
	f.Size = sz
	return f
}

func (f Font) String() string {
	tf := f.Typeface
	if tf == "" {
		tf = "default"
	}
	return fmt.Sprintf("%s %s %s %gsp", tf, f.Style, f.Weight, float32(f.Size))
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
