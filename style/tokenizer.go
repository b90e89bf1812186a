package style

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/terminal"
)

// Parsed is the output of one tokenizer run: the text stripped of
// markup, split into grapheme clusters, and the marks keyed by cluster
// offset. A slot holds marks in encounter order.
type Parsed struct {
	Text  []string
	Marks map[int][]*Mark
}

// String returns the stripped text
func (p *Parsed) String() string {
	return strings.Join(p.Text, "")
}

// Tokenizer parses markup text. Directives sit in square brackets:
// [color: red] pushes, [/color] pops, [x,y] moves the cursor (either
// coordinate may be prefixed + or - for a relative move on that axis),
// and the bare direction words are sugar for [direction: ...]. "[["
// escapes a literal bracket pair. A tokenizer is transient: feed in any
// number of chunks, then parse once.
type Tokenizer struct {
	raw strings.Builder
}

// NewTokenizer creates a tokenizer preloaded with initial text
func NewTokenizer(initial string) *Tokenizer {
	t := &Tokenizer{}
	t.raw.WriteString(initial)
	return t
}

// Feed appends more raw markup before parsing
func (t *Tokenizer) Feed(s string) {
	t.raw.WriteString(s)
}

// rawToken is a bracketed directive stripped out of the text
type rawToken struct {
	plainOff int
	rawOff   int
	body     string
}

// Parse strips directives from the fed text and converts them to marks.
// Unknown directive names are dropped; malformed coordinates, colors,
// and directions are fatal.
func (t *Tokenizer) Parse() (*Parsed, error) {
	raw := t.raw.String()
	var plain strings.Builder
	var tokens []rawToken

	for i := 0; i < len(raw); {
		c := raw[i]
		if c != '[' {
			plain.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(raw) && raw[i+1] == '[' {
			plain.WriteString("[[")
			i += 2
			continue
		}
		end := strings.IndexByte(raw[i:], ']')
		if end < 0 {
			plain.WriteString(raw[i:])
			break
		}
		tokens = append(tokens, rawToken{
			plainOff: plain.Len(),
			rawOff:   i,
			body:     strings.Trim(raw[i+1:i+end], "[]"),
		})
		i += end + 1
	}

	text, starts := splitGraphemes(plain.String())
	clusterAt := func(byteOff int) int {
		if byteOff >= plain.Len() {
			return len(text)
		}
		return sort.Search(len(starts), func(i int) bool { return starts[i] > byteOff }) - 1
	}

	marks, err := tokensToMarks(tokens, clusterAt, len(text))
	if err != nil {
		return nil, err
	}
	return &Parsed{Text: text, Marks: marks}, nil
}

// MustParse parses a literal markup string, panicking on malformed
// input. For markup written in source, not user data.
func MustParse(markup string) *Parsed {
	p, err := NewTokenizer(markup).Parse()
	if err != nil {
		panic(err)
	}
	return p
}

func splitGraphemes(s string) (clusters []string, starts []int) {
	g := uniseg.NewGraphemes(s)
	off := 0
	for g.Next() {
		c := g.Str()
		clusters = append(clusters, c)
		starts = append(starts, off)
		off += len(c)
	}
	return clusters, starts
}

// openTransformer stages an unclosed transformer tag so its close can
// backfill the span length
type openTransformer struct {
	mark    *Mark
	openIdx int
	value   string
}

func tokensToMarks(tokens []rawToken, clusterAt func(int) int, textLen int) (map[int][]*Mark, error) {
	marks := map[int][]*Mark{}
	var transformers []openTransformer

	for _, tok := range tokens {
		idx := clusterAt(tok.plainOff)
		mk, err := tokenToMark(tok, idx, &transformers)
		if err != nil {
			return nil, err
		}
		marks[idx] = append(marks[idx], mk)
	}
	return marks, nil
}

func tokenToMark(tok rawToken, idx int, transformers *[]openTransformer) (*Mark, error) {
	action, value, hasValue := strings.Cut(tok.body, ":")
	action = strings.ToLower(strings.TrimSpace(action))
	value = strings.TrimSpace(value)
	if action == "effect" {
		action = "effects"
	}
	if action != "transformer" && action != "font" && action != "char" {
		value = strings.ToLower(value)
	}
	if !hasValue {
		if _, ok := grid.DirectionByName(action); ok {
			value = action
			action = "direction"
		}
	}

	opening := true
	if strings.HasPrefix(action, "/") {
		opening = false
		action = action[1:]
	}

	mk := &Mark{}
	switch action {
	case "color", "foreground", "background":
		id := AttrForeground
		if action == "background" {
			id = AttrBackground
		}
		if !opening {
			mk.Pops = []AttrID{id}
			break
		}
		c, err := terminal.ParseColor(value)
		if err != nil {
			return nil, &MarkupError{Offset: tok.rawOff, Token: tok.body, Reason: err.Error()}
		}
		mk.Attributes = []Attribute{{ID: id, Color: c}}
	case "effects":
		if !opening {
			mk.Pops = []AttrID{AttrEffects}
			break
		}
		attr := terminal.ParseAttr(value)
		if value == "transparent" {
			attr = terminal.AttrTransparent
		}
		mk.Attributes = []Attribute{{ID: AttrEffects, Effects: attr}}
	case "direction":
		if !opening {
			mk.Pops = []AttrID{AttrDirection}
			break
		}
		d, ok := grid.DirectionByName(value)
		if !ok {
			return nil, &MarkupError{Offset: tok.rawOff, Token: tok.body, Reason: "unknown direction"}
		}
		mk.Attributes = []Attribute{{ID: AttrDirection, Direction: d}}
	case "char":
		if !opening {
			mk.Pops = []AttrID{AttrChar}
			break
		}
		mk.Attributes = []Attribute{{ID: AttrChar, Text: value}}
	case "font":
		if !opening {
			mk.Pops = []AttrID{AttrFont}
			break
		}
		mk.Attributes = []Attribute{{ID: AttrFont, Text: value}}
	case "transformer":
		if opening {
			mk.Attributes = []Attribute{{ID: AttrTransformer, Text: value}}
			*transformers = append(*transformers, openTransformer{mark: mk, openIdx: idx, value: value})
			break
		}
		mk.Pops = []AttrID{AttrTransformer}
		if n := len(*transformers); n > 0 {
			open := (*transformers)[n-1]
			*transformers = (*transformers)[:n-1]
			if !strings.Contains(open.value, " ") {
				open.mark.Attributes[0].Text = open.value + " " + strconv.Itoa(idx-open.openIdx)
			}
		}
	default:
		if opening && strings.Contains(action, ",") {
			if err := parseMove(action, mk); err != nil {
				return nil, &MarkupError{Offset: tok.rawOff, Token: tok.body, Reason: err.Error()}
			}
		}
		// unknown directive names fall through as empty marks
	}
	return mk, nil
}

// parseMove parses a coordinate pair. A +/- prefix makes that axis a
// relative move while the other may independently be absolute.
func parseMove(pair string, mk *Mark) error {
	xs, ys, _ := strings.Cut(pair, ",")
	xs = strings.TrimSpace(xs)
	ys = strings.TrimSpace(ys)
	nx, err := strconv.Atoi(xs)
	if err != nil {
		return err
	}
	ny, err := strconv.Atoi(ys)
	if err != nil {
		return err
	}
	xRel := xs[0] == '+' || xs[0] == '-'
	yRel := ys[0] == '+' || ys[0] == '-'
	switch {
	case xRel && yRel:
		mk.RMove = &grid.Point{X: nx, Y: ny}
	case xRel:
		mk.MoveTo = &Move{X: Axis{Retain: true}, Y: Axis{N: ny}}
		mk.RMove = &grid.Point{X: nx}
	case yRel:
		mk.MoveTo = &Move{X: Axis{N: nx}, Y: Axis{Retain: true}}
		mk.RMove = &grid.Point{Y: ny}
	default:
		mk.MoveTo = &Move{X: Axis{N: nx}, Y: Axis{N: ny}}
	}
	return nil
}
