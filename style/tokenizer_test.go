package style

import (
	"errors"
	"testing"

	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/terminal"
)

func parseOne(t *testing.T, markup string) *Parsed {
	t.Helper()
	p, err := NewTokenizer(markup).Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", markup, err)
	}
	return p
}

func TestParsePlainText(t *testing.T) {
	p := parseOne(t, "plain text")
	if got := p.String(); got != "plain text" {
		t.Errorf("text = %q", got)
	}
	if len(p.Marks) != 0 {
		t.Errorf("marks = %v, want none", p.Marks)
	}
}

func TestParseColorPushPop(t *testing.T) {
	p := parseOne(t, "a[color:red]b[/color]c")
	if got := p.String(); got != "abc" {
		t.Fatalf("text = %q", got)
	}
	push := p.Marks[1]
	if len(push) != 1 || len(push[0].Attributes) != 1 {
		t.Fatalf("marks at 1 = %+v", push)
	}
	a := push[0].Attributes[0]
	if a.ID != AttrForeground || !a.Color.Concrete() || a.Color.Val.R != 255 {
		t.Errorf("push attribute = %+v", a)
	}
	pop := p.Marks[2]
	if len(pop) != 1 || len(pop[0].Pops) != 1 || pop[0].Pops[0] != AttrForeground {
		t.Errorf("marks at 2 = %+v", pop)
	}
}

func TestParseDirectionSugar(t *testing.T) {
	p := parseOne(t, "[up]x")
	mk := p.Marks[0][0]
	if len(mk.Attributes) != 1 || mk.Attributes[0].ID != AttrDirection {
		t.Fatalf("mark = %+v", mk)
	}
	if mk.Attributes[0].Direction != grid.Up {
		t.Errorf("direction = %v", mk.Attributes[0].Direction)
	}
}

func TestParseMoves(t *testing.T) {
	cases := []struct {
		markup string
		moveTo *Move
		rmove  *grid.Point
	}{
		{"[5,3]", &Move{X: Axis{N: 5}, Y: Axis{N: 3}}, nil},
		{"[+2,-1]", nil, &grid.Point{X: 2, Y: -1}},
		{"[+1,3]", &Move{X: Axis{Retain: true}, Y: Axis{N: 3}}, &grid.Point{X: 1}},
		{"[2,+1]", &Move{X: Axis{N: 2}, Y: Axis{Retain: true}}, &grid.Point{Y: 1}},
	}
	for _, tc := range cases {
		p := parseOne(t, tc.markup+"x")
		mk := p.Marks[0][0]
		if tc.moveTo == nil != (mk.MoveTo == nil) {
			t.Errorf("%s: MoveTo = %+v, want %+v", tc.markup, mk.MoveTo, tc.moveTo)
			continue
		}
		if tc.moveTo != nil && *mk.MoveTo != *tc.moveTo {
			t.Errorf("%s: MoveTo = %+v, want %+v", tc.markup, *mk.MoveTo, *tc.moveTo)
		}
		if tc.rmove == nil != (mk.RMove == nil) {
			t.Errorf("%s: RMove = %+v, want %+v", tc.markup, mk.RMove, tc.rmove)
			continue
		}
		if tc.rmove != nil && *mk.RMove != *tc.rmove {
			t.Errorf("%s: RMove = %+v, want %+v", tc.markup, *mk.RMove, *tc.rmove)
		}
	}
}

func TestParseMalformedMoveFatal(t *testing.T) {
	_, err := NewTokenizer("a[5,x]b").Parse()
	var me *MarkupError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want MarkupError", err)
	}
	if me.Offset != 1 {
		t.Errorf("offset = %d", me.Offset)
	}
}

func TestParseUnknownTagIgnored(t *testing.T) {
	p := parseOne(t, "a[bogus]b")
	if got := p.String(); got != "ab" {
		t.Fatalf("text = %q", got)
	}
	for _, mk := range p.Marks[1] {
		if !mk.Empty() {
			t.Errorf("unknown tag produced directives: %+v", mk)
		}
	}
}

func TestParseBracketEscape(t *testing.T) {
	p := parseOne(t, "a[[color:red]b")
	if got := p.String(); got != "a[[color:red]b" {
		t.Errorf("text = %q", got)
	}
	if len(p.Marks) != 0 {
		t.Errorf("escaped bracket produced marks: %v", p.Marks)
	}
}

func TestParseEffects(t *testing.T) {
	p := parseOne(t, "[effect: bold|underline]x")
	a := p.Marks[0][0].Attributes[0]
	if a.ID != AttrEffects {
		t.Fatalf("attribute = %+v", a)
	}
	want := terminal.AttrBold | terminal.AttrUnderline
	if a.Effects != want {
		t.Errorf("effects = %v, want %v", a.Effects, want)
	}

	p = parseOne(t, "[effects: transparent]x")
	if got := p.Marks[0][0].Attributes[0].Effects; !got.Transparent() {
		t.Errorf("transparent effects = %v", got)
	}
}

func TestParseTransformerSpanBackfill(t *testing.T) {
	p := parseOne(t, "[transformer: upper]abc[/transformer]def")
	open := p.Marks[0][0]
	if got := open.Attributes[0].Text; got != "upper 3" {
		t.Errorf("span backfill = %q", got)
	}
	if got := p.Marks[3][0].Pops; len(got) != 1 || got[0] != AttrTransformer {
		t.Errorf("close mark = %+v", p.Marks[3][0])
	}

	// explicit span on the opening tag wins
	p = parseOne(t, "[transformer: upper 9]abc[/transformer]")
	if got := p.Marks[0][0].Attributes[0].Text; got != "upper 9" {
		t.Errorf("explicit span rewritten to %q", got)
	}
}

func TestParseMarksShareOffset(t *testing.T) {
	p := parseOne(t, "a[color:red][background:blue]b")
	if len(p.Marks[1]) != 2 {
		t.Fatalf("marks at 1 = %+v", p.Marks[1])
	}
	if p.Marks[1][0].Attributes[0].ID != AttrForeground {
		t.Error("first mark at shared offset is not the first token")
	}
}

func TestParseFeedIncremental(t *testing.T) {
	tk := NewTokenizer("a[col")
	tk.Feed("or:red]b")
	p, err := tk.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "ab" {
		t.Errorf("text = %q", got)
	}
	if len(p.Marks[1]) != 1 {
		t.Errorf("marks = %+v", p.Marks)
	}
}

func TestParseGraphemeOffsets(t *testing.T) {
	p := parseOne(t, "éx[color:red]y")
	// the combining accent folds into one cluster
	if len(p.Text) != 3 {
		t.Fatalf("clusters = %q", p.Text)
	}
	if len(p.Marks[2]) != 1 {
		t.Errorf("marks = %+v", p.Marks)
	}
}
