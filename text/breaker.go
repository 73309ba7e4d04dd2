// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// Measurer is a font metrics surface.
type Measurer interface {
	// Measure returns the advance width of s in font f and the line
	// height of f, in layout units. Measure of the empty string
	// returns a zero width and the line height.
	Measure(f font.Font, s string) geom.Size
}

// ImageSizer provides the intrinsic size of named images.
type ImageSizer interface {
	ImageSize(name string) (geom.Size, bool)
}

// TextBlock is a positioned run of text on one line. Blocks are
// derived from a paragraph by a LineBreaker and refer back to the
// part they came from by index.
type TextBlock struct {
	Text string
	// Pos is the top left corner of the block, relative to the
	// paragraph's origin.
	Pos  geom.Point
	Size geom.Size
	// Line is the index of the line holding the block.
	Line int
	// Part is the index of the source part in the paragraph, or -1
	// for blocks without one.
	Part int
	// Font is the font the block was measured with.
	Font font.Font
}

// Bounds returns the rectangle covered by b.
func (b TextBlock) Bounds() geom.Rect {
	return geom.Rect{X: b.Pos.X, Y: b.Pos.Y, Width: b.Size.Width, Height: b.Size.Height}
}

// LineBreaker wraps paragraphs into lines.
//
// LineBreak is a function of its arguments and the fields of the
// LineBreaker; it keeps no state between calls.
type LineBreaker struct {
	// Measurer measures words. It must not be nil.
	Measurer Measurer
	// Font is the default font. Parts use it until a font part
	// selects another.
	Font font.Font
	// Images sizes images without an explicit size. It may be nil.
	Images ImageSizer
}

// LineBreak wraps p into lines no wider than width and returns the
// resulting blocks in reading order.
//
// A word is moved to the next line when it would end beyond
// width less the right margin; a word that exactly fits stays. A word
// that does not fit on an empty line is placed anyway. Spaces that
// would begin a wrapped line are dropped.
//
// An empty paragraph yields a single empty block one line high, as
// does every line left empty by trailing breaks. An image paragraph
// yields a single block for the image.
func (b *LineBreaker) LineBreak(p *Paragraph, width int) []TextBlock {
	if p.kind == ImageParagraph {
		return []TextBlock{b.imageBlock(p)}
	}
	w := wrapper{
		m:     b.Measurer,
		style: p.style,
		limit: width - p.style.Margin.Right,
		y:     p.style.Margin.Top,
	}
	w.x = w.lineStart()
	var cur font.Font
	for i, part := range p.parts {
		if part.Kind == LineBreakPart {
			w.breakLine(b.resolve(cur))
			continue
		}
		words := part.Split(&cur)
		f := b.resolve(cur)
		for _, word := range words {
			if word == "\n" {
				w.breakLine(f)
				continue
			}
			sz := w.m.Measure(f, word)
			if !w.empty() && (w.wrap || w.x+sz.Width > w.limit) {
				// Spaces never begin a wrapped line; the break waits
				// for the next word.
				if isSpace(word) {
					w.wrap = true
					continue
				}
				w.breakLine(f)
			}
			w.place(i, word, sz, f)
		}
	}
	// Lines opened by trailing breaks, and the single line of an
	// empty paragraph, hold an empty block so that they count
	// towards the paragraph's extent.
	if n := len(w.blocks); n == 0 || w.blocks[n-1].Line < w.line {
		f := b.resolve(cur)
		w.blocks = append(w.blocks, TextBlock{
			Pos:  geom.Point{X: w.lineStart(), Y: w.y},
			Size: geom.Size{Height: w.m.Measure(f, "").Height},
			Line: w.line,
			Part: -1,
			Font: f,
		})
	}
	return w.blocks
}

// resolve maps the zero Font to the default font. Fonts without a
// size take the size of the default font.
func (b *LineBreaker) resolve(f font.Font) font.Font {
	if f == (font.Font{}) {
		return b.Font
	}
	if f.Size == 0 {
		f.Size = b.Font.Size
	}
	return f
}

func (b *LineBreaker) imageBlock(p *Paragraph) TextBlock {
	sz := p.image.Size
	if sz == (geom.Size{}) && b.Images != nil {
		if isz, ok := b.Images.ImageSize(p.image.Name); ok {
			sz = isz
		}
	}
	return TextBlock{
		Pos:  geom.Point{X: p.style.Margin.Left + p.style.FirstLineIndent, Y: p.style.Margin.Top},
		Size: sz,
		Part: -1,
	}
}

// wrapper is the state of one LineBreak call.
type wrapper struct {
	m     Measurer
	style ParagraphStyle
	limit int

	blocks []TextBlock
	line   int
	x, y   int
	// height is the height of the current line so far.
	height int
	// placed counts the words on the current line.
	placed int
	// wrap is set when spaces overflowed the current line.
	wrap bool
}

func (w *wrapper) lineStart() int {
	indent := w.style.RemainingLinesIndent
	if w.line == 0 {
		indent = w.style.FirstLineIndent
	}
	return w.style.Margin.Left + indent
}

func (w *wrapper) empty() bool {
	return w.placed == 0
}

// breakLine ends the current line. Empty lines are as high as f.
func (w *wrapper) breakLine(f font.Font) {
	h := w.height
	if w.empty() {
		h = w.m.Measure(f, "").Height
	}
	w.y += h
	w.line++
	w.x = w.lineStart()
	w.height = 0
	w.placed = 0
	w.wrap = false
}

// place adds word at the end of the current line, extending the last
// block when it comes from the same part.
func (w *wrapper) place(part int, word string, sz geom.Size, f font.Font) {
	if n := len(w.blocks); n > 0 && w.blocks[n-1].Line == w.line && w.blocks[n-1].Part == part {
		last := &w.blocks[n-1]
		last.Text += word
		last.Size.Width += sz.Width
		if sz.Height > last.Size.Height {
			last.Size.Height = sz.Height
		}
	} else {
		w.blocks = append(w.blocks, TextBlock{
			Text: word,
			Pos:  geom.Point{X: w.x, Y: w.y},
			Size: sz,
			Line: w.line,
			Part: part,
			Font: f,
		})
	}
	w.x += sz.Width
	if sz.Height > w.height {
		w.height = sz.Height
	}
	w.placed++
}

// Extent returns the size covered by blocks, laid out from p,
// including p's margins.
func Extent(p *Paragraph, blocks []TextBlock) geom.Size {
	var sz geom.Size
	for _, b := range blocks {
		br := b.Bounds().Max()
		if br.X > sz.Width {
			sz.Width = br.X
		}
		if br.Y > sz.Height {
			sz.Height = br.Y
		}
	}
	m := p.style.Margin
	sz.Width += m.Right
	sz.Height += m.Bottom
	return sz
}

// HitTest returns the block containing pt.
func HitTest(blocks []TextBlock, pt geom.Point) (TextBlock, bool) {
	for _, b := range blocks {
		if b.Bounds().Contains(pt) {
			return b, true
		}
	}
	return TextBlock{}, false
}

// LinkAt returns the link part of p under pt, given the blocks p was
// broken into.
func (p *Paragraph) LinkAt(blocks []TextBlock, pt geom.Point) (Part, bool) {
	b, ok := HitTest(blocks, pt)
	if !ok {
		return Part{}, false
	}
	part, ok := p.Part(b.Part)
	if !ok || part.Kind != LinkPart {
		return Part{}, false
	}
	return part, true
}
