// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/exp/slices"

	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/text"
)

// RichText is a leaf node that wraps a text.Document to the width it
// is given. Paragraphs are stacked vertically, each as high as its
// wrapped lines and margins.
type RichText struct {
	Document *text.Document
	// Breaker wraps the paragraphs. It must not be nil.
	Breaker *text.LineBreaker
	Hidden  bool

	arranged []Arranged
}

// Arranged is a paragraph and its blocks from the last Arrange, in
// the coordinates of the bounds passed to Arrange.
type Arranged struct {
	Paragraph *text.Paragraph
	Blocks    []text.TextBlock
}

func (r *RichText) Collapsed() bool {
	return r.Hidden
}

// Measure wraps the document at available.Width.
func (r *RichText) Measure(available geom.Size) geom.Size {
	var sz geom.Size
	for _, p := range r.paragraphs() {
		ext := text.Extent(p, r.Breaker.LineBreak(p, available.Width))
		sz.Height += ext.Height
		sz.Width = max(sz.Width, ext.Width)
	}
	return sz
}

// Arrange wraps the document at bounds.Width and keeps the resulting
// blocks.
func (r *RichText) Arrange(bounds geom.Rect) geom.Size {
	ps := r.paragraphs()
	r.arranged = slices.Grow(r.arranged[:0], len(ps))
	var sz geom.Size
	for _, p := range ps {
		blocks := r.Breaker.LineBreak(p, bounds.Width)
		ext := text.Extent(p, blocks)
		off := geom.Point{X: bounds.X, Y: bounds.Y + sz.Height}
		for i := range blocks {
			blocks[i].Pos = blocks[i].Pos.Add(off)
		}
		r.arranged = append(r.arranged, Arranged{Paragraph: p, Blocks: blocks})
		sz.Height += ext.Height
		sz.Width = max(sz.Width, ext.Width)
	}
	return sz
}

// Arranged returns the paragraphs laid out by the last Arrange.
func (r *RichText) Arranged() []Arranged {
	return r.arranged
}

// Blocks returns the blocks of every paragraph from the last Arrange,
// in document order.
func (r *RichText) Blocks() []text.TextBlock {
	var all []text.TextBlock
	for _, a := range r.arranged {
		all = append(all, a.Blocks...)
	}
	return all
}

// LinkAt returns the hyperlink under pt, as of the last Arrange.
func (r *RichText) LinkAt(pt geom.Point) (text.Part, bool) {
	for _, a := range r.arranged {
		if link, ok := a.Paragraph.LinkAt(a.Blocks, pt); ok {
			return link, true
		}
	}
	return text.Part{}, false
}

func (r *RichText) paragraphs() []*text.Paragraph {
	if r.Document == nil {
		return nil
	}
	return r.Document.Paragraphs()
}
