// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

func TestFaceMeasurer(t *testing.T) {
	m := FaceMeasurer{Face: basicfont.Face7x13}
	if got, want := m.Measure(font.Font{}, "abc"), geom.Sz(21, 13); got != want {
		t.Errorf("Measure(abc) = %v, want %v", got, want)
	}
	if got, want := m.Measure(font.Font{Weight: font.Bold}, ""), geom.Sz(0, 13); got != want {
		t.Errorf("Measure(\"\") = %v, want %v", got, want)
	}
}

func newCollection(t *testing.T) *Collection {
	t.Helper()
	reg, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	bold, err := Parse(gobold.TTF)
	if err != nil {
		t.Fatal(err)
	}
	c := new(Collection)
	c.Register(font.Font{Typeface: "Go"}, reg)
	c.Register(font.Font{Typeface: "Go", Weight: font.Bold}, bold)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCollectionMeasure(t *testing.T) {
	c := newCollection(t)
	small := c.Measure(font.Font{Size: 10}, "hello")
	large := c.Measure(font.Font{Size: 20}, "hello")
	if small.Width <= 0 || small.Height <= 0 {
		t.Fatalf("empty measurement %v", small)
	}
	if large.Width <= small.Width || large.Height <= small.Height {
		t.Errorf("20sp %v not larger than 10sp %v", large, small)
	}
	if again := c.Measure(font.Font{Size: 10}, "hello"); again != small {
		t.Errorf("repeated measurement differs: %v != %v", again, small)
	}
	if empty := c.Measure(font.Font{Size: 10}, ""); empty.Width != 0 || empty.Height != small.Height {
		t.Errorf("empty string measured %v, want 0x%d", empty, small.Height)
	}
}

func TestCollectionFallback(t *testing.T) {
	c := newCollection(t)
	reg := c.Measure(font.Font{}, "mmmm")
	// No italic face is registered; the regular face is used.
	if got := c.Measure(font.Font{Style: font.Italic}, "mmmm"); got != reg {
		t.Errorf("italic fallback = %v, want regular %v", got, reg)
	}
	// Unknown typefaces fall back to the default typeface.
	if got := c.Measure(font.Font{Typeface: "Missing"}, "mmmm"); got != reg {
		t.Errorf("typeface fallback = %v, want %v", got, reg)
	}
	bold := c.Measure(font.Font{Weight: font.Bold}, "mmmm")
	if got := c.Measure(font.Font{Weight: font.Bold, Style: font.Italic}, "mmmm"); got != bold {
		t.Errorf("bold italic fallback = %v, want bold %v", got, bold)
	}
}

func TestEmptyCollectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("measuring with an empty collection did not panic")
		}
	}()
	new(Collection).Measure(font.Font{}, "x")
}

func TestCollectionFace(t *testing.T) {
	c := newCollection(t)
	f := c.Face(font.Font{Size: 12})
	if f != c.Face(font.Font{Size: 12}) {
		t.Error("sized face not reused")
	}
	if f == c.Face(font.Font{Size: 14}) {
		t.Error("faces of different sizes are shared")
	}
	if got, want := f.Metrics().Height.Ceil(), c.Measure(font.Font{Size: 12}, "").Height; got != want {
		t.Errorf("face height %d, measured %d", got, want)
	}
}
