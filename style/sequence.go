package style

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/transform"
)

// Plane is the rendering surface a styled sequence flows onto
type Plane interface {
	Size() grid.Point
	Marks() *MarkMap
	Tick() int
	// Transformer resolves a markup transformer name, consulted before
	// the package-level transform library.
	Transformer(name string) (*transform.Transformer, bool)
	// PlaceChar writes one styled grapheme; index is the offset in the
	// text run, for span-relative transformer pipelines.
	PlaceChar(g string, pos grid.Point, ctx *Context, index int)
}

// stackEntry is one pushed value on an attribute's private stack
type stackEntry struct {
	attr   Attribute
	tr     *transform.Container
	origin Origin
}

// activeSpan tracks a transformer's remaining lifetime in the run
type activeSpan struct {
	t     *transform.Transformer
	start int
	span  int
}

// StyledSequence replays marks over a text run, yielding each grapheme
// with the attribute state and cursor position in effect when it is
// emitted. Cursor moves and attribute pushes are cumulative, so random
// index access replays from the start; sequential access is
// incremental. A sequence is single-use per iteration and holds all
// its state privately, so separate goroutines may drive separate
// sequences against one plane.
type StyledSequence struct {
	text     []string
	seq      map[int][]*Mark
	specials []*SpecialMark
	plane    Plane
	parent   Context
	start    grid.Point

	ctx     *Context
	pos     grid.Point
	lastIdx int
	sanity  int
	marks   *RenderMarks
	stacks  map[AttrID][]stackEntry
	active  []activeSpan
}

// NewStyledSequence binds parsed text to a plane. parent supplies the
// initial attribute values; nil means the defaults. start is the
// position of the first grapheme.
func NewStyledSequence(p *Parsed, plane Plane, parent *Context, start grid.Point) *StyledSequence {
	if parent == nil {
		parent = NewContext()
	}
	return &StyledSequence{
		text:    p.Text,
		seq:     p.Marks,
		plane:   plane,
		parent:  parent.Snapshot(),
		start:   start,
		lastIdx: -1,
	}
}

// AddSpecial attaches a sequence-local special mark, concretized on
// every pass
func (s *StyledSequence) AddSpecial(mk *SpecialMark) {
	s.specials = append(s.specials, mk)
}

// HasSpecials reports whether any mark placement varies with the tick
func (s *StyledSequence) HasSpecials() bool {
	return len(s.specials) > 0
}

// Text returns the plain text of the run
func (s *StyledSequence) Text() []string {
	return s.text
}

func (s *StyledSequence) enterIteration() {
	s.ctx = &Context{}
	s.resetContext()
	s.resetStacks()
	s.active = nil
	s.lastIdx = -1
	s.pos = s.start

	mm := NewMarkMap(nil)
	tick := 0
	if s.plane != nil {
		mm = s.plane.Marks()
		tick = s.plane.Tick()
	}
	s.marks = mm.Prepare(s.seq, s.specials, tick, len(s.text))
}

func (s *StyledSequence) resetContext() {
	*s.ctx = s.parent
}

func (s *StyledSequence) resetStacks() {
	s.stacks = map[AttrID][]stackEntry{
		AttrChar:        {{attr: Attribute{ID: AttrChar, Text: s.parent.Char}}},
		AttrForeground:  {{attr: Attribute{ID: AttrForeground, Color: s.parent.Fg}}},
		AttrBackground:  {{attr: Attribute{ID: AttrBackground, Color: s.parent.Bg}}},
		AttrEffects:     {{attr: Attribute{ID: AttrEffects, Effects: s.parent.Effects}}},
		AttrDirection:   {{attr: Attribute{ID: AttrDirection, Direction: s.parent.Direction}}},
		AttrFont:        {{attr: Attribute{ID: AttrFont, Text: s.parent.Font}}},
		AttrTransformer: {{tr: s.parent.Transformers}},
	}
}

// processTo brings the attribute state and cursor up to text offset i.
// One step past the last processed offset applies incrementally;
// anything else replays from the start.
func (s *StyledSequence) processTo(i int) error {
	if s.lastIdx == -1 && i == 0 {
		s.pos = s.start
	} else if s.lastIdx == -1 || i != s.lastIdx+1 {
		return s.replayTo(i)
	}
	for _, placed := range s.marks.GetFull(i, s.pos) {
		s.applyMark(placed, i)
	}
	s.lastIdx = i
	return nil
}

func (s *StyledSequence) replayTo(i int) error {
	s.sanity++
	defer func() { s.sanity-- }()
	if s.sanity > 1 {
		return ErrRenderReentrancy
	}
	s.resetContext()
	s.resetStacks()
	s.active = nil
	s.lastIdx = -1
	for j := 0; j <= i; j++ {
		if err := s.processTo(j); err != nil {
			return err
		}
		s.detachExpired(j)
	}
	return nil
}

func (s *StyledSequence) applyMark(p Placed, index int) {
	mk := p.M
	for _, id := range mk.Pops {
		s.popAttr(id, p.Origin)
	}
	for _, a := range mk.Attributes {
		s.pushAttr(a, p.Origin, index)
	}
	if mk.MoveTo != nil {
		x, y := s.pos.X, s.pos.Y
		if !mk.MoveTo.X.Retain {
			x = mk.MoveTo.X.N
		}
		if !mk.MoveTo.Y.Retain {
			y = mk.MoveTo.Y.N
		}
		s.pos = grid.Point{X: x, Y: y}
	}
	if mk.RMove != nil {
		s.pos = s.pos.Add(*mk.RMove)
	}
}

// popAttr removes the topmost entry on id's stack that was pushed from
// the same origin as the closing mark, then restores the new top into
// the live context. Closes with no matching open degrade silently.
func (s *StyledSequence) popAttr(id AttrID, origin Origin) {
	st := s.stacks[id]
	for i := len(st) - 1; i >= 1; i-- {
		if st[i].origin == origin {
			s.stacks[id] = append(st[:i], st[i+1:]...)
			break
		}
	}
	s.writeTop(id)
}

func (s *StyledSequence) pushAttr(a Attribute, origin Origin, index int) {
	if a.ID == AttrTransformer {
		s.pushTransformer(a.Text, origin, index)
		return
	}
	s.stacks[a.ID] = append(s.stacks[a.ID], stackEntry{attr: a, origin: origin})
	s.ctx.apply(a)
}

// pushTransformer resolves "name" or "name span" and pushes a grown
// pipeline. The span defaults to the remainder of the text; the
// transformer detaches itself when the span runs out, whether or not
// its tag is ever closed.
func (s *StyledSequence) pushTransformer(spec string, origin Origin, index int) {
	name, spanStr, hasSpan := strings.Cut(spec, " ")
	span := len(s.text) - index
	if hasSpan {
		n, err := strconv.Atoi(strings.TrimSpace(spanStr))
		if err != nil {
			return
		}
		span = n
	}
	tr, ok := s.lookupTransformer(name)
	if !ok {
		return
	}
	grown := s.ctx.Transformers.Add(tr, index, span)
	s.stacks[AttrTransformer] = append(s.stacks[AttrTransformer], stackEntry{tr: grown, origin: origin})
	s.active = append(s.active, activeSpan{t: tr, start: index, span: span})
	s.ctx.Transformers = grown
}

func (s *StyledSequence) lookupTransformer(name string) (*transform.Transformer, bool) {
	if s.plane != nil {
		if tr, ok := s.plane.Transformer(name); ok {
			return tr, true
		}
	}
	return transform.Lookup(name)
}

func (s *StyledSequence) writeTop(id AttrID) {
	st := s.stacks[id]
	if len(st) == 0 {
		return
	}
	top := st[len(st)-1]
	if id == AttrTransformer {
		s.ctx.Transformers = top.tr
	} else {
		s.ctx.apply(top.attr)
	}
}

// detachExpired drops transformers whose span ended before offset
// index, removing them from the live pipeline and from every pushed
// snapshot so later pops cannot revive them.
func (s *StyledSequence) detachExpired(index int) {
	kept := s.active[:0]
	for _, a := range s.active {
		if index-a.start < a.span {
			kept = append(kept, a)
			continue
		}
		s.ctx.Transformers = s.ctx.Transformers.Remove(a.t)
		st := s.stacks[AttrTransformer]
		for i := range st {
			if st[i].tr != nil {
				st[i].tr = st[i].tr.Remove(a.t)
			}
		}
	}
	s.active = kept
}

// Each iterates the run, calling fn once per grapheme with the
// attribute state and cell position in effect for it. The context
// passed to fn is live; callers must copy what they keep.
func (s *StyledSequence) Each(fn func(index int, g string, ctx *Context, pos grid.Point) error) error {
	s.enterIteration()
	for index, g := range s.text {
		if err := s.processTo(index); err != nil {
			return err
		}
		pos := s.pos
		s.pos = s.pos.Add(s.ctx.Direction)
		s.detachExpired(index)
		if err := fn(index, g, s.ctx, pos); err != nil {
			return err
		}
	}
	return nil
}

// Render flows the run onto the bound plane. Double-width graphemes
// take an extra advance when flowing right so the following grapheme
// lands past the wide cell.
func (s *StyledSequence) Render() error {
	if s.plane == nil {
		return nil
	}
	return s.Each(func(index int, g string, ctx *Context, pos grid.Point) error {
		s.plane.PlaceChar(g, pos, ctx, index)
		shown := g
		if ctx.Char != "" {
			shown = ctx.Char
		}
		if ctx.Direction == grid.Right && runewidth.StringWidth(shown) == 2 {
			s.pos = s.pos.Add(ctx.Direction)
		}
		return nil
	})
}
