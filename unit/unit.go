// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Layout works in integer layout units (the px of this package).
Device independent pixels, Dp, describe sizes that look the same
across displays; scaled pixels, Sp, are Dp with the user's text
scale applied and are used for font sizes.

A Metric converts both to layout units.
*/
package unit

import "math"

// Dp represents device independent pixels.
type Dp float32

// Sp represents scaled pixels, used for text sizes.
type Sp float32

// Metric converts Dp and Sp to layout units.
type Metric struct {
	// PxPerDp is the layout units per Dp. Zero means 1.
	PxPerDp float32
	// PxPerSp is the layout units per Sp. Zero means 1.
	PxPerSp float32
}

// Dp converts v to layout units.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

// Sp converts v to layout units.
func (c Metric) Sp(v Sp) int {
	return int(math.Round(float64(nonZero(c.PxPerSp)) * float64(v)))
}

// SpPx is like Sp but keeps the fractional part, for font faces
// that accept fractional sizes.
func (c Metric) SpPx(v Sp) float64 {
	return float64(nonZero(c.PxPerSp)) * float64(v)
}

// PxToDp converts layout units to Dp.
func (c Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / nonZero(c.PxPerDp))
}

// PxToSp converts layout units to Sp.
func (c Metric) PxToSp(v int) Sp {
	return Sp(float32(v) / nonZero(c.PxPerSp))
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
