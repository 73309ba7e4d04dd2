// SPDX-License-Identifier: Unlicense OR MIT

// Package config reads the YAML documents of the richwrap command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/layout"
	"github.com/TeamDoodz/Gwen.Net-sub001/text"
	"github.com/TeamDoodz/Gwen.Net-sub001/unit"
)

// Defaults applied to fields left empty.
const (
	DefaultWidth = 80
	DefaultFace  = "cell"
	DefaultSize  = unit.Sp(16)
)

// Config is a rich text document and the layout it is wrapped in.
type Config struct {
	// Width is the layout width in layout units.
	Width int `yaml:"width,omitempty"`
	// Face selects the measuring surface: cell, basic or go.
	Face string `yaml:"face,omitempty"`
	// Size is the default text size, for the go face.
	Size    unit.Sp           `yaml:"size,omitempty"`
	Padding Margin            `yaml:"padding,omitempty"`
	Grid    *GridConfig       `yaml:"grid,omitempty"`
	Images  map[string]Size   `yaml:"images,omitempty"`
	Paras   []ParagraphConfig `yaml:"paragraphs"`
}

// GridConfig lays the paragraphs out as the cells of a grid, in
// row-major order.
type GridConfig struct {
	Columns int       `yaml:"columns,omitempty"`
	Widths  CellSizes `yaml:"widths,omitempty"`
	Heights CellSizes `yaml:"heights,omitempty"`
}

type Margin struct {
	Left   int `yaml:"left,omitempty"`
	Top    int `yaml:"top,omitempty"`
	Right  int `yaml:"right,omitempty"`
	Bottom int `yaml:"bottom,omitempty"`
}

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ParagraphConfig is a text paragraph, or an image paragraph when
// Image is set.
type ParagraphConfig struct {
	Margin      Margin       `yaml:"margin,omitempty"`
	FirstIndent int          `yaml:"first_indent,omitempty"`
	RestIndent  int          `yaml:"rest_indent,omitempty"`
	Parts       []PartConfig `yaml:"parts,omitempty"`
	Image       *ImageConfig `yaml:"image,omitempty"`
}

type ImageConfig struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Tint   string `yaml:"tint,omitempty"`
}

// PartConfig is one part of a paragraph. Exactly one of Text, Link,
// Font and Break must be set.
type PartConfig struct {
	Text  *string     `yaml:"text,omitempty"`
	Color string      `yaml:"color,omitempty"`
	Link  *LinkConfig `yaml:"link,omitempty"`
	// Font switches the font. An empty mapping restores the default
	// font.
	Font  *FontConfig `yaml:"font,omitempty"`
	Break bool        `yaml:"break,omitempty"`
}

type LinkConfig struct {
	Label      string      `yaml:"label"`
	URL        string      `yaml:"url"`
	HoverColor string      `yaml:"hover_color,omitempty"`
	HoverFont  *FontConfig `yaml:"hover_font,omitempty"`
}

type FontConfig struct {
	Typeface string  `yaml:"typeface,omitempty"`
	Style    string  `yaml:"style,omitempty"`
	Weight   string  `yaml:"weight,omitempty"`
	Size     unit.Sp `yaml:"size,omitempty"`
}

// CellSizes are grid cell directives. In YAML each directive is
// "auto", a fraction in [0, 1] or an absolute size above 1.
type CellSizes layout.CellSizes

func (s *CellSizes) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: cell sizes must be a sequence", n.Line)
	}
	sizes := make(CellSizes, 0, len(n.Content))
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: invalid cell size", c.Line)
		}
		if strings.EqualFold(c.Value, "auto") {
			sizes = append(sizes, layout.Auto())
			continue
		}
		v, err := strconv.ParseFloat(c.Value, 32)
		if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("line %d: invalid cell size %q", c.Line, c.Value)
		}
		sizes = append(sizes, float32(v))
	}
	*s = sizes
	return nil
}

// Load reads the document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a document and applies defaults. Unknown fields are
// errors.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	cfg := new(Config)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.Face = strings.ToLower(strings.TrimSpace(cfg.Face))
	if cfg.Face == "" {
		cfg.Face = DefaultFace
	}
	switch cfg.Face {
	case "cell", "basic", "go":
	default:
		return nil, fmt.Errorf("unknown face %q", cfg.Face)
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Width < 0 {
		return nil, fmt.Errorf("negative width %d", cfg.Width)
	}
	if cfg.Size == 0 {
		cfg.Size = DefaultSize
	}
	return cfg, nil
}

// Document builds the rich text document of every paragraph.
func (c *Config) Document() (*text.Document, error) {
	doc := new(text.Document)
	for i, p := range c.Paras {
		if err := p.build(doc); err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
	}
	return doc, nil
}

// Cells builds a document per paragraph, for the cells of a grid.
func (c *Config) Cells() ([]*text.Document, error) {
	docs := make([]*text.Document, len(c.Paras))
	for i, p := range c.Paras {
		docs[i] = new(text.Document)
		if err := p.build(docs[i]); err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
	}
	return docs, nil
}

// ApplyGrid configures g from the grid section.
func (c *Config) ApplyGrid(g *layout.Grid) error {
	if c.Grid == nil {
		return errors.New("no grid section")
	}
	if c.Grid.Columns != 0 {
		if err := g.SetColumnCount(c.Grid.Columns); err != nil {
			return err
		}
	}
	if len(c.Grid.Widths) > 0 {
		if err := g.SetColumnWidths(layout.CellSizes(c.Grid.Widths)); err != nil {
			return err
		}
	}
	if len(c.Grid.Heights) > 0 {
		if err := g.SetRowHeights(layout.CellSizes(c.Grid.Heights)); err != nil {
			return err
		}
	}
	return nil
}

// ImageSize implements text.ImageSizer with the images section.
func (c *Config) ImageSize(name string) (geom.Size, bool) {
	sz, ok := c.Images[name]
	return geom.Sz(sz.Width, sz.Height), ok
}

// Font returns the default font of the document.
func (c *Config) Font() font.Font {
	return font.Font{Size: c.Size}
}

func (m Margin) margin() geom.Margin {
	return geom.Margin{Left: m.Left, Top: m.Top, Right: m.Right, Bottom: m.Bottom}
}

// PaddingMargin returns the padding around the document.
func (c *Config) PaddingMargin() geom.Margin {
	return c.Padding.margin()
}

func (p ParagraphConfig) build(doc *text.Document) error {
	style := text.ParagraphStyle{
		Margin:               p.Margin.margin(),
		FirstLineIndent:      p.FirstIndent,
		RemainingLinesIndent: p.RestIndent,
	}
	if p.Image != nil {
		if len(p.Parts) > 0 {
			return errors.New("image paragraphs have no parts")
		}
		tint, err := parseColor(p.Image.Tint)
		if err != nil {
			return err
		}
		doc.Image(text.ImageSpec{
			Name: p.Image.Name,
			Size: geom.Sz(p.Image.Width, p.Image.Height),
			Tint: tint,
		}, style)
		return nil
	}
	para := doc.Paragraph(style)
	for i, pc := range p.Parts {
		part, err := pc.part()
		if err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		para.Append(part)
	}
	return nil
}

func (pc PartConfig) part() (text.Part, error) {
	set := 0
	for _, ok := range []bool{pc.Text != nil, pc.Link != nil, pc.Font != nil, pc.Break} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return text.Part{}, errors.New("exactly one of text, link, font and break must be set")
	}
	col, err := parseColor(pc.Color)
	if err != nil {
		return text.Part{}, err
	}
	switch {
	case pc.Text != nil:
		return text.Part{Kind: text.TextPart, Text: *pc.Text, Color: col}, nil
	case pc.Link != nil:
		hover, err := parseColor(pc.Link.HoverColor)
		if err != nil {
			return text.Part{}, err
		}
		var hoverFont *font.Font
		if pc.Link.HoverFont != nil {
			hoverFont, err = pc.Link.HoverFont.font()
			if err != nil {
				return text.Part{}, err
			}
		}
		return text.Part{
			Kind:       text.LinkPart,
			Text:       pc.Link.Label,
			URL:        pc.Link.URL,
			Color:      col,
			HoverColor: hover,
			HoverFont:  hoverFont,
		}, nil
	case pc.Font != nil:
		f, err := pc.Font.font()
		if err != nil {
			return text.Part{}, err
		}
		return text.Part{Kind: text.FontPart, Font: f}, nil
	default:
		return text.Part{Kind: text.LineBreakPart}, nil
	}
}

var (
	styles = map[string]font.Style{
		"regular": font.Regular,
		"italic":  font.Italic,
	}
	weights = map[string]font.Weight{
		"thin":       font.Thin,
		"extralight": font.ExtraLight,
		"light":      font.Light,
		"normal":     font.Normal,
		"medium":     font.Medium,
		"semibold":   font.SemiBold,
		"bold":       font.Bold,
		"extrabold":  font.ExtraBold,
		"black":      font.Black,
	}
)

// font returns the font described by fc, or nil for an empty fc.
func (fc *FontConfig) font() (*font.Font, error) {
	if *fc == (FontConfig{}) {
		return nil, nil
	}
	f := &font.Font{Typeface: font.Typeface(fc.Typeface), Size: fc.Size}
	if fc.Style != "" {
		s, ok := styles[strings.ToLower(fc.Style)]
		if !ok {
			return nil, fmt.Errorf("unknown font style %q", fc.Style)
		}
		f.Style = s
	}
	if fc.Weight != "" {
		w, ok := weights[strings.ToLower(fc.Weight)]
		if !ok {
			return nil, fmt.Errorf("unknown font weight %q", fc.Weight)
		}
		f.Weight = w
	}
	return f, nil
}

// parseColor parses "#rrggbb" and "#rrggbbaa". The empty string is
// the zero color.
func parseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 8 || err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
