// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont provides the Go fonts as an opentype.Collection.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/font/opentype"
)

// Typefaces registered by Collection.
const (
	Typeface     font.Typeface = "Go"
	MonoTypeface font.Typeface = "Go Mono"
)

type entry struct {
	font font.Font
	face opentype.Face
}

var (
	once    sync.Once
	entries []entry
)

func load() {
	once.Do(func() {
		register(font.Font{Typeface: Typeface}, goregular.TTF)
		register(font.Font{Typeface: Typeface, Style: font.Italic}, goitalic.TTF)
		register(font.Font{Typeface: Typeface, Weight: font.Bold}, gobold.TTF)
		register(font.Font{Typeface: Typeface, Style: font.Italic, Weight: font.Bold}, gobolditalic.TTF)
		register(font.Font{Typeface: Typeface, Weight: font.Medium}, gomedium.TTF)
		register(font.Font{Typeface: MonoTypeface}, gomono.TTF)
		register(font.Font{Typeface: MonoTypeface, Weight: font.Bold}, gomonobold.TTF)
	})
}

func register(fnt font.Font, ttf []byte) {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	entries = append(entries, entry{font: fnt, face: face})
}

// Collection returns a new collection of the Go font faces, with Go
// Regular as the default. The font data is parsed once and shared;
// each collection keeps its own sized faces.
func Collection() *opentype.Collection {
	load()
	c := new(opentype.Collection)
	for _, e := range entries {
		c.Register(e.font, e.face)
	}
	return c
}
