// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/TeamDoodz/Gwen.Net-sub001/cmd/richwrap/internal/config"
	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/font/cell"
	"github.com/TeamDoodz/Gwen.Net-sub001/font/gofont"
	"github.com/TeamDoodz/Gwen.Net-sub001/font/opentype"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/layout"
	"github.com/TeamDoodz/Gwen.Net-sub001/text"
	"github.com/TeamDoodz/Gwen.Net-sub001/widget"
)

var (
	width    = flag.Int("width", 0, "layout width, overriding the document's")
	face     = flag.String("face", "", "measuring surface (cell, basic, go), overriding the document's")
	gridMode = flag.Bool("grid", false, "lay the paragraphs out as grid cells")
	blocks   = flag.Bool("blocks", false, "list the positioned text blocks instead of drawing them")
	pngDir   = flag.String("png", "", "write a PNG rendering of each document to `dir`")
	scale    = flag.Int("scale", 1, "PNG scale factor")
)

type options struct {
	width  int
	face   string
	grid   bool
	blocks bool
	pngDir string
	scale  int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("richwrap: ")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	opts := options{
		width:  *width,
		face:   *face,
		grid:   *gridMode,
		blocks: *blocks,
		pngDir: *pngDir,
		scale:  *scale,
	}
	if err := mainErr(os.Stdout, flag.Args(), opts); err != nil {
		log.Fatal(err)
	}
}

func mainErr(w io.Writer, paths []string, opts options) error {
	if len(paths) == 0 {
		return errors.New("specify a document")
	}
	if opts.scale < 1 {
		return fmt.Errorf("invalid -scale %d", opts.scale)
	}
	switch opts.face {
	case "", "cell", "basic", "go":
	default:
		return fmt.Errorf("invalid -face %s", opts.face)
	}
	outs := make([]bytes.Buffer, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			return process(&outs[i], path, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range outs {
		if len(paths) > 1 {
			fmt.Fprintf(w, "==> %s <==\n", paths[i])
		}
		if _, err := outs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// surface measures text and, except for cells, provides the faces to
// draw it with.
type surface struct {
	text.Measurer
	face  func(font.Font) xfont.Face
	close func() error
}

func newSurface(name string) *surface {
	switch name {
	case "basic":
		return &surface{
			Measurer: opentype.FaceMeasurer{Face: basicfont.Face7x13},
			face:     func(font.Font) xfont.Face { return basicfont.Face7x13 },
		}
	case "go":
		c := gofont.Collection()
		return &surface{
			Measurer: &text.CachedMeasurer{Measurer: c},
			face:     c.Face,
			close:    c.Close,
		}
	default:
		return &surface{Measurer: cell.Measurer{}}
	}
}

func (s *surface) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func process(w io.Writer, path string, opts options) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if opts.width != 0 {
		cfg.Width = opts.width
	}
	if opts.face != "" {
		cfg.Face = opts.face
	}
	surf := newSurface(cfg.Face)
	defer surf.Close()

	texts, root, err := buildTree(cfg, surf, opts.grid)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	sz := root.Measure(geom.Sz(cfg.Width, layout.Unbounded))
	sz = root.Arrange(geom.Rect{Width: cfg.Width, Height: sz.Height})

	switch {
	case opts.blocks || cfg.Face != "cell":
		printBlocks(w, texts)
	default:
		drawCells(w, sz, texts)
	}
	if opts.pngDir != "" && surf.face != nil {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
		if err := writePNG(filepath.Join(opts.pngDir, name), sz, texts, surf.face, opts.scale); err != nil {
			return err
		}
	}
	return nil
}

// buildTree returns the layout tree of cfg and its text leaves. In
// grid mode every paragraph is a cell; without a grid section the
// cells form a single row.
func buildTree(cfg *config.Config, surf *surface, grid bool) ([]*widget.RichText, layout.Node, error) {
	br := &text.LineBreaker{
		Measurer: surf,
		Font:     cfg.Font(),
		Images:   cfg,
	}
	root := &layout.Stack{Axis: layout.Vertical, Padding: cfg.PaddingMargin()}
	if !grid {
		doc, err := cfg.Document()
		if err != nil {
			return nil, nil, err
		}
		rt := &widget.RichText{Document: doc, Breaker: br}
		root.Children = []layout.Node{rt}
		return []*widget.RichText{rt}, root, nil
	}
	docs, err := cfg.Cells()
	if err != nil {
		return nil, nil, err
	}
	g := layout.NewGrid(max(1, len(docs)))
	if cfg.Grid != nil {
		if err := cfg.ApplyGrid(g); err != nil {
			return nil, nil, err
		}
	}
	var texts []*widget.RichText
	for _, doc := range docs {
		rt := &widget.RichText{Document: doc, Breaker: br}
		texts = append(texts, rt)
		g.Children = append(g.Children, rt)
	}
	root.Children = []layout.Node{g}
	return texts, root, nil
}

func printBlocks(w io.Writer, texts []*widget.RichText) {
	for _, rt := range texts {
		for _, a := range rt.Arranged() {
			for _, b := range a.Blocks {
				if a.Paragraph.Kind() == text.ImageParagraph {
					fmt.Fprintf(w, "%d %v image %s\n", b.Line, b.Bounds(), a.Paragraph.Image().Name)
					continue
				}
				fmt.Fprintf(w, "%d %v %q\n", b.Line, b.Bounds(), b.Text)
			}
		}
	}
}

// drawCells draws cell measured blocks as text. Images are filled
// with '#'.
func drawCells(w io.Writer, sz geom.Size, texts []*widget.RichText) {
	rows := make([][]rune, sz.Height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(" ", sz.Width))
	}
	set := func(x, y int, r rune) {
		if y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) {
			rows[y][x] = r
		}
	}
	for _, rt := range texts {
		for _, a := range rt.Arranged() {
			for _, b := range a.Blocks {
				if a.Paragraph.Kind() == text.ImageParagraph {
					for y := b.Pos.Y; y < b.Pos.Y+b.Size.Height; y++ {
						for x := b.Pos.X; x < b.Pos.X+b.Size.Width; x++ {
							set(x, y, '#')
						}
					}
					continue
				}
				x := b.Pos.X
				for _, r := range b.Text {
					set(x, b.Pos.Y, r)
					// Wide runes cover the following cell.
					for i := 1; i < runewidth.RuneWidth(r); i++ {
						set(x+i, b.Pos.Y, 0)
					}
					x += runewidth.RuneWidth(r)
				}
			}
		}
	}
	for _, row := range rows {
		line := strings.ReplaceAll(string(row), "\x00", "")
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
