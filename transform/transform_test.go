package transform

import (
	"testing"

	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/terminal"
)

func TestApplyNilChannelsPassThrough(t *testing.T) {
	tr := &Transformer{Name: "noop"}
	in := CellState{Char: "x", Fg: terminal.FromRGB(terminal.RGB{R: 1}), Effects: terminal.AttrBold}
	if got := tr.Apply(in, Env{}); got != in {
		t.Errorf("noop transformer changed state: %+v", got)
	}
}

func TestApplySeesSourceState(t *testing.T) {
	tr := &Transformer{
		Char: func(env Env) string { return env.Source.Char + env.Source.Char },
		Effects: func(env Env) terminal.Attr {
			if env.Source.Char == "a" {
				return terminal.AttrBold
			}
			return 0
		},
	}
	got := tr.Apply(CellState{Char: "a"}, Env{})
	if got.Char != "aa" {
		t.Errorf("char = %q", got.Char)
	}
	if got.Effects != terminal.AttrBold {
		t.Error("effects channel saw the rewritten char, not the source")
	}
}

func TestContainerOrderAndSpan(t *testing.T) {
	doubler := &Transformer{Char: func(env Env) string { return env.Source.Char + env.Source.Char }}
	bang := &Transformer{Char: func(env Env) string { return env.Source.Char + "!" }}

	c := NewContainer().Add(doubler, 0, 0).Add(bang, 2, 3)

	got := c.Process(CellState{Char: "x"}, grid.Point{}, 0, 0)
	if got.Char != "xx" {
		t.Errorf("index 0 char = %q, want doubler only", got.Char)
	}
	got = c.Process(CellState{Char: "x"}, grid.Point{}, 0, 3)
	if got.Char != "xx!" {
		t.Errorf("index 3 char = %q, want both in attachment order", got.Char)
	}
	got = c.Process(CellState{Char: "x"}, grid.Point{}, 0, 5)
	if got.Char != "xx" {
		t.Errorf("index 5 char = %q, want span ended", got.Char)
	}
}

func TestContainerMutationsShareNothing(t *testing.T) {
	a := &Transformer{Name: "a"}
	base := NewContainer().Add(a, 0, 0)
	grown := base.Add(&Transformer{Name: "b"}, 0, 0)
	if base.Len() != 1 || grown.Len() != 2 {
		t.Fatalf("len base = %d, grown = %d", base.Len(), grown.Len())
	}
	shrunk := grown.Remove(a)
	if shrunk.Len() != 1 || grown.Len() != 2 {
		t.Errorf("remove mutated the source container")
	}
}

func TestContainerExpired(t *testing.T) {
	open := &Transformer{Name: "open"}
	short := &Transformer{Name: "short"}
	c := NewContainer().Add(open, 0, 0).Add(short, 0, 2)

	if got := c.Expired(1); got.Len() != 2 {
		t.Errorf("len after Expired(1) = %d", got.Len())
	}
	got := c.Expired(2)
	if got.Len() != 1 {
		t.Fatalf("len after Expired(2) = %d", got.Len())
	}
	if got.items[0].T != open {
		t.Error("unbounded span expired")
	}
}

func TestGradientEndpointsAndClamp(t *testing.T) {
	g := NewGradient(
		Stop{At: 0, Color: terminal.RGB{R: 255}},
		Stop{At: 1, Color: terminal.RGB{B: 255}},
	)
	if got := g.At(-1); got != (terminal.RGB{R: 255}) {
		t.Errorf("At(-1) = %+v", got)
	}
	if got := g.At(2); got != (terminal.RGB{B: 255}) {
		t.Errorf("At(2) = %+v", got)
	}
	mid := g.At(0.5)
	if mid == (terminal.RGB{R: 255}) || mid == (terminal.RGB{B: 255}) {
		t.Errorf("At(0.5) = %+v, want interpolated", mid)
	}
}

func TestEnvFraction(t *testing.T) {
	if got := (Env{Index: 3, Len: 0}).Fraction(); got != 0 {
		t.Errorf("unbounded fraction = %v", got)
	}
	if got := (Env{Index: 2, Len: 5}).Fraction(); got != 0.5 {
		t.Errorf("fraction = %v", got)
	}
}

func TestLibraryBuiltins(t *testing.T) {
	up, ok := Lookup("upper")
	if !ok {
		t.Fatal("upper not registered")
	}
	if got := up.Apply(CellState{Char: "ß"}, Env{}); got.Char != "SS" {
		t.Errorf("upper(ß) = %q", got.Char)
	}

	inv, _ := Lookup("invert")
	got := inv.Apply(CellState{Effects: terminal.AttrReverse}, Env{})
	if got.Effects != 0 {
		t.Errorf("invert on reversed cell = %v", got.Effects)
	}

	cyc, _ := Lookup("cycle")
	a := cyc.Apply(CellState{}, Env{Index: 0, Tick: 0})
	b := cyc.Apply(CellState{}, Env{Index: 0, Tick: 7})
	if a.Fg == b.Fg {
		t.Error("cycle foreground does not move with the tick")
	}
}
