// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TeamDoodz/Gwen.Net-sub001/geom"
)

// leaf is a fixed size node that records how it was laid out.
type leaf struct {
	size   geom.Size
	hidden bool

	constraints []geom.Size
	bounds      []geom.Rect
}

func newLeaf(w, h int) *leaf {
	return &leaf{size: geom.Sz(w, h)}
}

func (l *leaf) Measure(available geom.Size) geom.Size {
	l.constraints = append(l.constraints, available)
	return l.size
}

func (l *leaf) Arrange(bounds geom.Rect) geom.Size {
	l.bounds = append(l.bounds, bounds)
	return bounds.Size()
}

func (l *leaf) Collapsed() bool {
	return l.hidden
}

func (l *leaf) lastBounds(t *testing.T) geom.Rect {
	t.Helper()
	if len(l.bounds) == 0 {
		t.Fatalf("leaf %v was never arranged", l.size)
	}
	return l.bounds[len(l.bounds)-1]
}

func nodes(leaves ...*leaf) []Node {
	ns := make([]Node, len(leaves))
	for i, l := range leaves {
		ns[i] = l
	}
	return ns
}

func TestCellSizesValidate(t *testing.T) {
	tests := []struct {
		name  string
		sizes CellSizes
		want  error
	}{
		{"empty", nil, nil},
		{"auto", CellSizes{Auto(), Auto()}, nil},
		{"exactly one", CellSizes{0.25, 0.25, 0.5}, nil},
		{"rounded one", CellSizes{0.1, 0.2, 0.7}, nil},
		{"with absolute", CellSizes{0.5, 200, Auto(), 0.5}, nil},
		{"over one", CellSizes{0.5, 0.6}, ErrProportionOverflow},
		{"single over", CellSizes{1, 0.01}, ErrProportionOverflow},
		{"negative", CellSizes{-1}, ErrInvalidCellSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sizes.Validate()
			if !errors.Is(err, tc.want) || (tc.want == nil) != (err == nil) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGridConfigurationErrors(t *testing.T) {
	g := NewGrid(2)
	if err := g.SetColumnWidths(CellSizes{0.5, 0.5, 0.5}); !errors.Is(err, ErrProportionOverflow) {
		t.Fatalf("SetColumnWidths = %v, want ErrProportionOverflow", err)
	}
	var cerr *ConfigError
	if err := g.SetRowHeights(CellSizes{0.9, 0.2}); !errors.As(err, &cerr) {
		t.Fatalf("SetRowHeights = %v, want a *ConfigError", err)
	} else if cerr.Op != "Grid.SetRowHeights" {
		t.Errorf("ConfigError.Op = %q", cerr.Op)
	}
	if got := g.ColumnCount(); got != 2 {
		t.Errorf("failed configuration changed the column count to %d", got)
	}
	if len(g.ColumnWidths()) != 0 || len(g.RowHeights()) != 0 {
		t.Error("failed configuration was applied")
	}
	if err := g.SetColumnCount(0); !errors.Is(err, ErrColumnCount) {
		t.Errorf("SetColumnCount(0) = %v, want ErrColumnCount", err)
	}
}

func TestGridColumnWidthsSetCount(t *testing.T) {
	g := NewGrid(2)
	if err := g.SetColumnWidths(CellSizes{Auto(), 0.5, Fixed(20), 0.5}); err != nil {
		t.Fatal(err)
	}
	if got := g.ColumnCount(); got != 4 {
		t.Errorf("ColumnCount() = %d, want 4", got)
	}
	if err := g.SetColumnWidths(nil); err != nil {
		t.Fatal(err)
	}
	if got := g.ColumnCount(); got != 4 {
		t.Errorf("ColumnCount() after clearing widths = %d, want 4", got)
	}
}

func TestGridRowMajorFill(t *testing.T) {
	var leaves []*leaf
	for i := 0; i < 7; i++ {
		leaves = append(leaves, newLeaf(10, 10+i))
	}
	g := NewGrid(3, nodes(leaves...)...)
	if got := g.RowCount(); got != 3 {
		t.Fatalf("RowCount() = %d, want 3", got)
	}
	sz := g.Measure(geom.Sz(100, 100))
	if want := geom.Sz(30, 12+15+16); sz != want {
		t.Errorf("Measure() = %v, want %v", sz, want)
	}
	if diff := cmp.Diff([]int{12, 15, 16}, g.rowHeights); diff != "" {
		t.Errorf("row heights (-want +got):\n%s", diff)
	}
	g.Arrange(geom.Rect{Width: sz.Width, Height: sz.Height})
	wantRows := []int{0, 0, 0, 1, 1, 1, 2}
	rowY := []int{0, 12, 27}
	rowH := []int{12, 15, 16}
	for i, l := range leaves {
		got := l.lastBounds(t)
		r, c := wantRows[i], i%3
		want := geom.Rect{X: c * 10, Y: rowY[r], Width: 10, Height: rowH[r]}
		if got != want {
			t.Errorf("child %d arranged at %v, want %v", i, got, want)
		}
	}
}

func TestGridCollapsedChild(t *testing.T) {
	a, b, c := newLeaf(10, 10), newLeaf(50, 50), newLeaf(20, 5)
	b.hidden = true
	g := NewGrid(2, a, b, c)
	sz := g.Measure(geom.Sz(100, 100))
	if want := geom.Sz(20, 15); sz != want {
		t.Errorf("Measure() = %v, want %v", sz, want)
	}
	used := g.Arrange(geom.Rect{Width: 100, Height: 100})
	if want := geom.Sz(20, 15); used != want {
		t.Errorf("Arrange() = %v, want %v", used, want)
	}
	if len(b.constraints) != 0 || len(b.bounds) != 0 {
		t.Errorf("collapsed child was laid out: %v %v", b.constraints, b.bounds)
	}
	if got, want := c.lastBounds(t), (geom.Rect{X: 0, Y: 10, Width: 20, Height: 5}); got != want {
		t.Errorf("child after collapsed cell arranged at %v, want %v", got, want)
	}
}

func TestGridEmpty(t *testing.T) {
	g := &Grid{Padding: geom.Margin{Left: 1, Top: 2, Right: 3, Bottom: 4}}
	if got, want := g.Measure(geom.Sz(50, 50)), geom.Sz(4, 6); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
	if got, want := g.Arrange(geom.Rect{Width: 50, Height: 50}), geom.Sz(4, 6); got != want {
		t.Errorf("Arrange() = %v, want %v", got, want)
	}
}

func TestGridPadding(t *testing.T) {
	l := newLeaf(10, 10)
	g := NewGrid(1, l)
	g.Padding = geom.UniformMargin(5)
	if got, want := Layout(g, geom.Rect{X: 100, Y: 200, Width: 20, Height: 20}), geom.Sz(20, 20); got != want {
		t.Errorf("Layout() = %v, want %v", got, want)
	}
	if got, want := l.constraints[0], geom.Sz(10, 10); got != want {
		t.Errorf("child constraint %v, want %v", got, want)
	}
	if got, want := l.lastBounds(t), (geom.Rect{X: 105, Y: 205, Width: 10, Height: 10}); got != want {
		t.Errorf("child arranged at %v, want %v", got, want)
	}
}

func TestGridMixedDirectives(t *testing.T) {
	a, b, c, d := newLeaf(10, 10), newLeaf(30, 10), newLeaf(5, 10), newLeaf(5, 10)
	g := NewGrid(1, a, b, c, d)
	if err := g.SetColumnWidths(CellSizes{Fixed(50), Auto(), Fraction(0.5), 0.5}); err != nil {
		t.Fatal(err)
	}
	sz := g.Measure(geom.Sz(200, 10))
	if want := geom.Sz(200, 10); sz != want {
		t.Errorf("Measure() = %v, want %v", sz, want)
	}
	constraints := []int{a.constraints[0].Width, b.constraints[0].Width, c.constraints[0].Width, d.constraints[0].Width}
	if diff := cmp.Diff([]int{50, 150, 75, 75}, constraints); diff != "" {
		t.Errorf("cell constraints (-want +got):\n%s", diff)
	}
	if want := geom.Sz(80, 10); g.totalAutoFixed != want {
		t.Errorf("totalAutoFixed = %v, want %v", g.totalAutoFixed, want)
	}

	g.Arrange(geom.Rect{Width: 200, Height: 10})
	want := []geom.Rect{
		{X: 0, Width: 50, Height: 10},
		{X: 50, Width: 30, Height: 10},
		{X: 80, Width: 60, Height: 10},
		{X: 140, Width: 60, Height: 10},
	}
	for i, l := range []*leaf{a, b, c, d} {
		if got := l.lastBounds(t); got != want[i] {
			t.Errorf("child %d arranged at %v, want %v", i, got, want[i])
		}
	}

	// A final size above the measured one grows only the proportional cells.
	used := g.Arrange(geom.Rect{Width: 300, Height: 10})
	if want := geom.Sz(300, 10); used != want {
		t.Errorf("Arrange() = %v, want %v", used, want)
	}
	if got, want := c.lastBounds(t), (geom.Rect{X: 80, Width: 110, Height: 10}); got != want {
		t.Errorf("proportional child arranged at %v, want %v", got, want)
	}
	if got, want := d.lastBounds(t), (geom.Rect{X: 190, Width: 110, Height: 10}); got != want {
		t.Errorf("proportional child arranged at %v, want %v", got, want)
	}
}

func TestGridFixedRowHeight(t *testing.T) {
	l := newLeaf(10, 10)
	g := NewGrid(1, l)
	if err := g.SetRowHeights(CellSizes{Fixed(40)}); err != nil {
		t.Fatal(err)
	}
	if got, want := g.Measure(geom.Sz(100, 100)), geom.Sz(10, 40); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
	if got := l.constraints[0].Height; got != 40 {
		t.Errorf("child height constraint %d, want 40", got)
	}
}

func TestGridUnbounded(t *testing.T) {
	a, b := newLeaf(10, 10), newLeaf(20, 10)
	g := NewGrid(2, a, b)
	if err := g.SetColumnWidths(CellSizes{0.5, Auto()}); err != nil {
		t.Fatal(err)
	}
	if got, want := g.Measure(geom.Sz(Unbounded, Unbounded)), geom.Sz(30, 10); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestGridArrangeWithoutMeasure(t *testing.T) {
	g := NewGrid(2, newLeaf(1, 1))
	defer func() {
		if recover() == nil {
			t.Error("Arrange without Measure did not panic")
		}
	}()
	g.Arrange(geom.Rect{Width: 10, Height: 10})
}

func TestGridNested(t *testing.T) {
	inner := NewGrid(2, newLeaf(10, 10), newLeaf(10, 10))
	outer := NewGrid(1, inner, newLeaf(5, 5))
	if got, want := outer.Measure(geom.Sz(100, 100)), geom.Sz(20, 15); got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestCellDirectiveHelpers(t *testing.T) {
	for _, f := range []func(){
		func() { Fixed(1) },
		func() { Fraction(1.5) },
		func() { Fraction(Auto()) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("invalid directive did not panic")
				}
			}()
			f()
		}()
	}
}
