package text

import (
	"testing"

	"github.com/lixenwraith/textura/canvas"
	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/style"
	"github.com/lixenwraith/textura/terminal"
)

func TestCharsPlaneFlow(t *testing.T) {
	c := canvas.New(10, 3)
	p := New(c, Chars)
	if err := p.PrintAt(grid.Point{}, "abc"); err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := p.Get(grid.Point{X: i}); got != want {
			t.Errorf("plane cell %d = %q", i, got)
		}
		cell, _ := c.CellAt(grid.Point{X: i})
		if cell.Grapheme() != want {
			t.Errorf("canvas cell %d = %q", i, cell.Grapheme())
		}
	}
}

func TestLineWrapAtRightEdge(t *testing.T) {
	c := canvas.New(3, 3)
	p := New(c, Chars)
	if err := p.Print("abcd"); err != nil {
		t.Fatal(err)
	}
	if got := p.Get(grid.Point{X: 0, Y: 1}); got != "d" {
		t.Errorf("wrapped grapheme = %q", got)
	}
}

func TestWrapSurvivesResize(t *testing.T) {
	c := canvas.New(3, 3)
	p := New(c, Chars)
	c.Resize(5, 3)
	if err := p.Print("abcdef"); err != nil {
		t.Fatal(err)
	}
	if got := p.Get(grid.Point{X: 0, Y: 1}); got != "f" {
		t.Errorf("grapheme after resized wrap = %q", got)
	}
	if got := p.Get(grid.Point{X: 4, Y: 0}); got != "e" {
		t.Errorf("last column = %q", got)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	c := canvas.New(4, 4)
	p := New(c, Chars)
	if err := p.Set(grid.Point{X: 4, Y: 0}, "x"); err != ErrOutOfBounds {
		t.Errorf("err = %v", err)
	}
	if err := p.Set(grid.Point{X: 3, Y: 3}, "x"); err != nil {
		t.Errorf("in-bounds set: %v", err)
	}
}

func TestOverflowDroppedDuringFlow(t *testing.T) {
	c := canvas.New(3, 1)
	p := New(c, Chars)
	// wraps below the last row and falls off the plane
	if err := p.Print("abcdef"); err != nil {
		t.Fatal(err)
	}
	if got := p.Get(grid.Point{X: 0, Y: 1}); got != "" {
		t.Errorf("off-plane cell = %q", got)
	}
}

func TestResolutionSizes(t *testing.T) {
	c := canvas.New(8, 8)
	cases := []struct {
		res  Resolution
		want grid.Point
	}{
		{Chars, grid.Point{X: 8, Y: 8}},
		{Block, grid.Point{X: 1, Y: 1}},
		{Square, grid.Point{X: 1, Y: 2}},
		{Quadrant, grid.Point{X: 2, Y: 2}},
		{Sextant, grid.Point{X: 2, Y: 3}},
		{Braille, grid.Point{X: 2, Y: 4}},
	}
	for _, tc := range cases {
		if got := New(c, tc.res).Size(); got != tc.want {
			t.Errorf("%v size = %v, want %v", tc.res, got, tc.want)
		}
	}
}

func TestPaddingInsets(t *testing.T) {
	c := canvas.New(10, 5)
	p := New(c, Chars)
	p.SetPadding(1, 1, 2, 0)
	if got := p.Size(); got != (grid.Point{X: 7, Y: 4}) {
		t.Fatalf("padded size = %v", got)
	}
	if err := p.PrintAt(grid.Point{}, "x"); err != nil {
		t.Fatal(err)
	}
	cell, _ := c.CellAt(grid.Point{X: 1, Y: 1})
	if cell.Grapheme() != "x" {
		t.Errorf("padded origin renders %q at canvas (1,1)", cell.Grapheme())
	}
}

func TestDrawBorderFramesAndInsets(t *testing.T) {
	c := canvas.New(8, 8)
	p := New(c, Chars)
	p.DrawBorder(canvas.DefaultStyle)
	if got := p.Size(); got != (grid.Point{X: 6, Y: 6}) {
		t.Fatalf("size after border = %v", got)
	}
	corners := map[grid.Point]rune{
		{X: 0, Y: 0}: '┌', {X: 7, Y: 0}: '┐',
		{X: 0, Y: 7}: '└', {X: 7, Y: 7}: '┘',
	}
	for pos, want := range corners {
		cell, _ := c.CellAt(pos)
		if cell.Rune != want {
			t.Errorf("corner %v = %q, want %q", pos, cell.Rune, want)
		}
	}
	if cell, _ := c.CellAt(grid.Point{X: 3, Y: 0}); cell.Rune != '─' {
		t.Errorf("top edge = %q", cell.Rune)
	}
	if cell, _ := c.CellAt(grid.Point{X: 0, Y: 3}); cell.Rune != '│' {
		t.Errorf("left edge = %q", cell.Rune)
	}
	if err := p.PrintAt(grid.Point{}, "x"); err != nil {
		t.Fatal(err)
	}
	cell, _ := c.CellAt(grid.Point{X: 1, Y: 1})
	if cell.Grapheme() != "x" {
		t.Errorf("inset origin renders %q at canvas (1,1)", cell.Grapheme())
	}
}

func TestDrawBorderPixelOutline(t *testing.T) {
	c := canvas.New(8, 8)
	p := New(c, Quadrant)
	p.DrawBorder(canvas.DefaultStyle)
	// 8x8 canvas at quadrant is a 2x2 plane; the outline runs along the
	// outermost pixel ring, so the top-left canvas cell must hold a glyph
	cell, _ := c.CellAt(grid.Point{})
	if cell.Rune == 0 || cell.Rune == ' ' {
		t.Errorf("no outline pixel in the corner cell, rune = %q", cell.Rune)
	}
	if got := p.Size(); got != (grid.Point{}) {
		t.Errorf("2x2 plane should be fully consumed by the border, size = %v", got)
	}
}

func TestBrailleGlyphBlit(t *testing.T) {
	c := canvas.New(8, 8)
	p := New(c, Braille)
	if err := p.PrintAt(grid.Point{}, "A"); err != nil {
		t.Fatal(err)
	}
	// an 8x8 glyph covers 4x2 canvas cells on the braille surface
	found := false
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			cell, _ := c.CellAt(grid.Point{X: x, Y: y})
			if cell.Rune >= 0x2800 && cell.Rune <= 0x28FF {
				found = true
			}
		}
	}
	if !found {
		t.Error("no braille cells written for the glyph")
	}
}

func TestUnknownGlyphFallback(t *testing.T) {
	bm := RenderGlyph("☃", "")
	if !bm.Any() {
		t.Error("fallback bitmap is empty")
	}
	if bm.At(0, 0) == bm.At(1, 0) {
		t.Error("fallback is not a checkerboard")
	}
}

func TestColoredMarkupReachesCanvas(t *testing.T) {
	c := canvas.New(10, 2)
	p := New(c, Chars)
	if err := p.Print("a[color:red]b"); err != nil {
		t.Fatal(err)
	}
	cell, _ := c.CellAt(grid.Point{X: 1, Y: 0})
	if cell.Fg != terminal.FromRGB(terminal.RGB{R: 255}) {
		t.Errorf("fg = %+v", cell.Fg)
	}
	cell, _ = c.CellAt(grid.Point{})
	if cell.Fg != terminal.Default {
		t.Errorf("unstyled fg = %+v", cell.Fg)
	}
}

func TestUpdateReplaysSpecialMarks(t *testing.T) {
	c := canvas.New(10, 2)
	p := New(c, Chars)
	red := terminal.FromRGB(terminal.RGB{R: 255})
	p.Marks().SetSpecial(&style.SpecialMark{
		Mark: style.Mark{Attributes: []style.Attribute{{ID: style.AttrForeground, Color: red}}},
		Index: func(tick, textLen int) int {
			return tick % textLen
		},
	})
	if err := p.Print("abcde"); err != nil {
		t.Fatal(err)
	}
	if p.Writings() != 1 {
		t.Fatalf("retained writings = %d", p.Writings())
	}

	firstRed := func() int {
		for x := 0; x < 5; x++ {
			cell, _ := c.CellAt(grid.Point{X: x})
			if cell.Fg == red {
				return x
			}
		}
		return -1
	}
	if got := firstRed(); got != 0 {
		t.Fatalf("styled column at tick 0 = %d", got)
	}
	if err := p.Update(); err != nil {
		t.Fatal(err)
	}
	if got := firstRed(); got != 1 {
		t.Errorf("styled column at tick 1 = %d", got)
	}
}

func TestTransformerMarkupOnPlane(t *testing.T) {
	c := canvas.New(10, 2)
	p := New(c, Chars)
	if err := p.Print("[transformer: upper 1]ab"); err != nil {
		t.Fatal(err)
	}
	cell, _ := c.CellAt(grid.Point{})
	if cell.Grapheme() != "A" {
		t.Errorf("transformed cell = %q", cell.Grapheme())
	}
	cell, _ = c.CellAt(grid.Point{X: 1})
	if cell.Grapheme() != "b" {
		t.Errorf("cell past the span = %q", cell.Grapheme())
	}
}

func TestClearKeepsFlow(t *testing.T) {
	c := canvas.New(3, 2)
	p := New(c, Chars)
	if err := p.Print("ab"); err != nil {
		t.Fatal(err)
	}
	p.Clear()
	if p.Get(grid.Point{}) != "" || p.Writings() != 0 {
		t.Fatal("clear left state behind")
	}
	if err := p.Print("abcd"); err != nil {
		t.Fatal(err)
	}
	if got := p.Get(grid.Point{X: 0, Y: 1}); got != "d" {
		t.Errorf("wrap after clear = %q", got)
	}
}
