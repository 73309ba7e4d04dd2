// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/TeamDoodz/Gwen.Net-sub001/font"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/text"
	"github.com/TeamDoodz/Gwen.Net-sub001/widget"
)

var (
	textColor  = color.NRGBA{A: 0xff}
	linkColor  = color.NRGBA{B: 0xee, A: 0xff}
	imageColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// writePNG draws the arranged texts onto a white image of size sz,
// enlarged scale times.
func writePNG(path string, sz geom.Size, texts []*widget.RichText, faceFor func(font.Font) xfont.Face, scale int) error {
	img := image.NewNRGBA(image.Rect(0, 0, sz.Width, sz.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for _, rt := range texts {
		for _, a := range rt.Arranged() {
			drawParagraph(img, a, faceFor)
		}
	}
	if scale > 1 {
		dst := image.NewNRGBA(image.Rect(0, 0, sz.Width*scale, sz.Height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func drawParagraph(dst draw.Image, a widget.Arranged, faceFor func(font.Font) xfont.Face) {
	if a.Paragraph.Kind() == text.ImageParagraph {
		spec := a.Paragraph.Image()
		fill := imageColor
		if spec.Tint != (color.NRGBA{}) {
			fill = spec.Tint
		}
		for _, b := range a.Blocks {
			draw.Draw(dst, rect(b.Bounds()), image.NewUniform(fill), image.Point{}, draw.Over)
		}
		return
	}
	for _, b := range a.Blocks {
		part, ok := a.Paragraph.Part(b.Part)
		if !ok || b.Text == "" {
			continue
		}
		col := part.Color
		if col == (color.NRGBA{}) {
			col = textColor
			if part.Kind == text.LinkPart {
				col = linkColor
			}
		}
		face := faceFor(b.Font)
		baseline := b.Pos.Y + face.Metrics().Ascent.Ceil()
		d := xfont.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(b.Pos.X, baseline),
		}
		d.DrawString(b.Text)
		if part.Kind == text.LinkPart {
			underline := image.Rect(b.Pos.X, baseline+1, b.Pos.X+b.Size.Width, baseline+2)
			draw.Draw(dst, underline, image.NewUniform(col), image.Point{}, draw.Over)
		}
	}
}

func rect(r geom.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}
