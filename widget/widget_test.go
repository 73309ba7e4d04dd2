// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TeamDoodz/Gwen.Net-sub001/font/cell"
	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
	"github.com/TeamDoodz/Gwen.Net-sub001/layout"
	"github.com/TeamDoodz/Gwen.Net-sub001/text"
)

type imageSizes map[string]geom.Size

func (m imageSizes) ImageSize(name string) (geom.Size, bool) {
	sz, ok := m[name]
	return sz, ok
}

func newRichText() *RichText {
	doc := new(text.Document)
	doc.Paragraph(text.ParagraphStyle{Margin: geom.Margin{Bottom: 1}}).Text("hello world")
	doc.Paragraph(text.ParagraphStyle{}).Link("go", "https://go.dev")
	return &RichText{
		Document: doc,
		Breaker:  &text.LineBreaker{Measurer: cell.Measurer{}},
	}
}

func TestRichText(t *testing.T) {
	rt := newRichText()
	if got, want := rt.Measure(geom.Sz(8, layout.Unbounded)), geom.Sz(6, 4); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
	if got, want := rt.Arrange(geom.Rect{X: 10, Y: 20, Width: 8, Height: 4}), geom.Sz(6, 4); got != want {
		t.Errorf("Arrange() = %v, want %v", got, want)
	}
	if n := len(rt.Arranged()); n != 2 {
		t.Errorf("got %d arranged paragraphs, want 2", n)
	}
	var got []string
	var pos []geom.Point
	for _, b := range rt.Blocks() {
		got = append(got, b.Text)
		pos = append(pos, b.Pos)
	}
	if diff := cmp.Diff([]string{"hello ", "world", "go"}, got); diff != "" {
		t.Errorf("blocks (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]geom.Point{{X: 10, Y: 20}, {X: 10, Y: 21}, {X: 10, Y: 23}}, pos); diff != "" {
		t.Errorf("block positions (-want +got):\n%s", diff)
	}

	if link, ok := rt.LinkAt(geom.Pt(11, 23)); !ok || link.URL != "https://go.dev" {
		t.Errorf("LinkAt(11,23) = %+v, %v", link, ok)
	}
	if _, ok := rt.LinkAt(geom.Pt(11, 20)); ok {
		t.Error("LinkAt over plain text found a link")
	}
}

func TestRichTextRewraps(t *testing.T) {
	rt := newRichText()
	layout.Layout(rt, geom.Rect{Width: 8, Height: 10})
	if n := len(rt.Blocks()); n != 3 {
		t.Fatalf("got %d blocks at width 8, want 3", n)
	}
	layout.Layout(rt, geom.Rect{Width: 80, Height: 10})
	if n := len(rt.Blocks()); n != 2 {
		t.Errorf("got %d blocks at width 80, want 2", n)
	}
}

func TestRichTextEmpty(t *testing.T) {
	rt := &RichText{Breaker: &text.LineBreaker{Measurer: cell.Measurer{}}}
	if got := rt.Measure(geom.Sz(10, 10)); got != (geom.Size{}) {
		t.Errorf("Measure() of no document = %v", got)
	}
	rt.Arrange(geom.Rect{Width: 10, Height: 10})
	if len(rt.Blocks()) != 0 {
		t.Error("no document produced blocks")
	}
}

func TestImage(t *testing.T) {
	sizer := imageSizes{"logo": geom.Sz(50, 25)}
	im := &Image{Name: "logo", Sizer: sizer, Fit: Contain}
	if got, want := im.Measure(geom.Sz(100, 100)), geom.Sz(100, 50); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
	if got, want := im.Arrange(geom.Rect{X: 5, Y: 5, Width: 40, Height: 40}), geom.Sz(40, 20); got != want {
		t.Errorf("Arrange() = %v, want %v", got, want)
	}
	if got, want := im.Bounds(), (geom.Rect{X: 5, Y: 5, Width: 40, Height: 20}); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	explicit := &Image{Name: "logo", Size: geom.Sz(8, 8), Sizer: sizer}
	if got, want := explicit.Intrinsic(), geom.Sz(8, 8); got != want {
		t.Errorf("explicit Intrinsic() = %v, want %v", got, want)
	}
	unknown := &Image{Name: "missing", Sizer: sizer}
	if got := unknown.Intrinsic(); got != (geom.Size{}) {
		t.Errorf("unknown image Intrinsic() = %v, want 0x0", got)
	}
}

func TestWidgetsInGrid(t *testing.T) {
	rt := newRichText()
	box := &Box{Size: geom.Sz(3, 3)}
	hidden := &Box{Size: geom.Sz(50, 50), Hidden: true}
	g := layout.NewGrid(2, rt, box, hidden)
	if err := g.SetColumnWidths(layout.CellSizes{layout.Fixed(8), layout.Auto()}); err != nil {
		t.Fatal(err)
	}
	if got, want := layout.Layout(g, geom.Rect{Width: 20, Height: 10}), geom.Sz(11, 4); got != want {
		t.Errorf("Layout() = %v, want %v", got, want)
	}
	if got, want := box.Bounds(), (geom.Rect{X: 8, Width: 3, Height: 4}); got != want {
		t.Errorf("box arranged at %v, want %v", got, want)
	}
	if got := hidden.Bounds(); got != (geom.Rect{}) {
		t.Errorf("hidden box arranged at %v", got)
	}
	if got, want := rt.Blocks()[1].Pos, geom.Pt(0, 1); got != want {
		t.Errorf("second line at %v, want %v", got, want)
	}
}

func TestRichTextTrailingBreak(t *testing.T) {
	doc := new(text.Document)
	doc.Paragraph(text.ParagraphStyle{}).Text("hi").LineBreak()
	rt := &RichText{Document: doc, Breaker: &text.LineBreaker{Measurer: cell.Measurer{}}}
	if got, want := rt.Measure(geom.Sz(10, 10)), geom.Sz(2, 2); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}
