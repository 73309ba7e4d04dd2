// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text implements rich text documents and their line breaking.

A Document is an ordered list of paragraphs. A text paragraph is an
ordered list of parts: runs of text, hyperlinks, font changes and
hard line breaks. An image paragraph holds a single image.

Documents are built once with the chaining methods of Paragraph and
read thereafter:

	var doc text.Document
	doc.Paragraph(text.ParagraphStyle{FirstLineIndent: 20}).
		Text("Read the ").
		Link("manual", "https://example.com/manual").
		Text(" first.")

A LineBreaker turns a paragraph and an available width into
positioned TextBlocks.
*/
package text

import (
	"image/color"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// Document is an ordered sequence of paragraphs. Paragraphs can
// only be appended.
type Document struct {
	paragraphs []*Paragraph
}

// ParagraphKind distinguishes text from image paragraphs.
type ParagraphKind uint8

const (
	TextParagraph ParagraphKind = iota
	ImageParagraph
)

// ParagraphStyle holds the layout hints of a paragraph.
type ParagraphStyle struct {
	// Margin surrounds the paragraph content.
	Margin geom.Margin
	// FirstLineIndent offsets the first line from the left margin.
	FirstLineIndent int
	// RemainingLinesIndent offsets every other line.
	RemainingLinesIndent int
}

// ImageSpec describes the image of an image paragraph.
type ImageSpec struct {
	// Name identifies the image to the renderer.
	Name string
	// Size is the laid out size. The zero Size asks the line
	// breaker's ImageSizer.
	Size geom.Size
	// Region selects part of the image texture. The zero Region
	// selects all of it.
	Region geom.Rect
	// Tint is multiplied with the image. The zero Tint means none.
	Tint color.NRGBA
}

// Paragraph is a text or image paragraph of a Document.
type Paragraph struct {
	kind  ParagraphKind
	style ParagraphStyle
	parts []Part
	image ImageSpec
}

// Paragraph appends a text paragraph and returns it.
func (d *Document) Paragraph(s ParagraphStyle) *Paragraph {
	p := &Paragraph{kind: TextParagraph, style: s}
	d.paragraphs = append(d.paragraphs, p)
	return p
}

// Image appends an image paragraph and returns it.
func (d *Document) Image(img ImageSpec, s ParagraphStyle) *Paragraph {
	p := &Paragraph{kind: ImageParagraph, style: s, image: img}
	d.paragraphs = append(d.paragraphs, p)
	return p
}

// Paragraphs returns the paragraphs in document order. The result
// must not be modified.
func (d *Document) Paragraphs() []*Paragraph {
	return d.paragraphs
}

// Kind returns whether p is a text or an image paragraph.
func (p *Paragraph) Kind() ParagraphKind {
	return p.kind
}

// Style returns the layout hints of p.
func (p *Paragraph) Style() ParagraphStyle {
	return p.style
}

// Image returns the image of an image paragraph.
func (p *Paragraph) Image() ImageSpec {
	return p.image
}

// Parts returns the parts of a text paragraph. The result must not
// be modified.
func (p *Paragraph) Parts() []Part {
	return p.parts
}

// Part returns the part at index i, as referenced by TextBlock.Part.
func (p *Paragraph) Part(i int) (Part, bool) {
	if i < 0 || i >= len(p.parts) {
		return Part{}, false
	}
	return p.parts[i], true
}

// Text appends a run of text in the current font.
func (p *Paragraph) Text(s string) *Paragraph {
	return p.Append(Part{Kind: TextPart, Text: s})
}

// Styled appends a run of colored text.
func (p *Paragraph) Styled(s string, c color.NRGBA) *Paragraph {
	return p.Append(Part{Kind: TextPart, Text: s, Color: c})
}

// Link appends a hyperlink labelled label.
func (p *Paragraph) Link(label, url string) *Paragraph {
	return p.Append(Part{Kind: LinkPart, Text: label, URL: url})
}

// LinkStyle styles a hyperlink.
type LinkStyle struct {
	Color      color.NRGBA
	HoverColor color.NRGBA
	HoverFont  *font.Font
}

// StyledLink appends a styled hyperlink.
func (p *Paragraph) StyledLink(label, url string, s LinkStyle) *Paragraph {
	return p.Append(Part{
		Kind:       LinkPart,
		Text:       label,
		URL:        url,
		Color:      s.Color,
		HoverColor: s.HoverColor,
		HoverFont:  s.HoverFont,
	})
}

// Font switches the font of the parts that follow. A nil f restores
// the default font.
func (p *Paragraph) Font(f *font.Font) *Paragraph {
	return p.Append(Part{Kind: FontPart, Font: f})
}

// LineBreak appends a hard line break.
func (p *Paragraph) LineBreak() *Paragraph {
	return p.Append(Part{Kind: LineBreakPart})
}

// Append adds parts to a text paragraph. Parts cannot be added to
// image paragraphs.
func (p *Paragraph) Append(parts ...Part) *Paragraph {
	if p.kind == ImageParagraph {
		panic("text: parts added to an image paragraph")
	}
	p.parts = append(p.parts, parts...)
	return p
}

func (k ParagraphKind) String() string {
	switch k {
	case TextParagraph:
		return "TextParagraph"
	case ImageParagraph:
		return "ImageParagraph"
	default:
		panic("unreachable")
	}
}
