// Package text renders styled text onto a canvas at one of several
// sub-character resolutions. A plane owns a sparse grapheme grid, the
// mark store steering markup flow, and the retained text runs that
// animate on each tick.
package text

import (
	"errors"

	"github.com/lixenwraith/textura/canvas"
	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/style"
	"github.com/lixenwraith/textura/subpixel"
	"github.com/lixenwraith/textura/transform"
)

// ErrOutOfBounds reports a direct indexed write outside the plane.
// Text overflowing an edge during markup rendering is dropped silently
// instead; running off the plane is ordinary flow behavior.
var ErrOutOfBounds = errors.New("position outside plane")

// Resolution fixes how many plane cells pack into one canvas glyph.
// Chars maps one plane cell to one canvas cell directly; the rest
// rasterize glyphs to 8x8 pixel boxes on a sub-character surface.
type Resolution struct {
	name string
	ppc  grid.Point
	set  subpixel.CharSet
}

var (
	Chars    = Resolution{name: "chars"}
	Block    = Resolution{name: "block", ppc: grid.Point{X: 1, Y: 1}, set: subpixel.Block}
	Square   = Resolution{name: "square", ppc: grid.Point{X: 1, Y: 2}, set: subpixel.Half}
	Quadrant = Resolution{name: "quadrant", ppc: grid.Point{X: 2, Y: 2}, set: subpixel.Quadrant}
	Sextant  = Resolution{name: "sextant", ppc: grid.Point{X: 2, Y: 3}, set: subpixel.Sextant}
	Braille  = Resolution{name: "braille", ppc: grid.Point{X: 2, Y: 4}, set: subpixel.Braille}
)

func (r Resolution) String() string {
	return r.name
}

// TextPlane is a character grid at one resolution bound to a canvas.
// It satisfies style.Plane, so styled sequences flow onto it directly.
type TextPlane struct {
	canvas *canvas.Canvas
	res    Resolution
	ctx    *style.Context
	marks  *style.MarkMap

	cells        map[grid.Point]string
	pad          [4]int
	writings     []*style.StyledSequence
	ticks        int
	transformers map[string]*transform.Transformer
	cursor       grid.Point
	flowRows     int
}

// New binds a plane to a canvas at the given resolution
func New(c *canvas.Canvas, res Resolution) *TextPlane {
	p := &TextPlane{
		canvas:       c,
		res:          res,
		ctx:          style.NewContext(),
		cells:        map[grid.Point]string{},
		transformers: map[string]*transform.Transformer{},
	}
	p.marks = style.NewMarkMap(p)
	p.ensureFlowMarks()
	return p
}

// Size returns the plane dimensions in plane cells, tracking the
// canvas size and padding lazily.
func (p *TextPlane) Size() grid.Point {
	cs := p.canvas.Size()
	w, h := cs.X, cs.Y
	if p.res.set != nil {
		w = cs.X * p.res.ppc.X / GlyphSize
		h = cs.Y * p.res.ppc.Y / GlyphSize
	}
	w -= p.pad[0] + p.pad[2]
	h -= p.pad[1] + p.pad[3]
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return grid.Point{X: w, Y: h}
}

// Marks exposes the plane's mark store
func (p *TextPlane) Marks() *style.MarkMap {
	return p.marks
}

// Tick returns the frame counter driving special marks and animated
// transformers
func (p *TextPlane) Tick() int {
	return p.ticks
}

// Context returns the plane's drawing context
func (p *TextPlane) Context() *style.Context {
	return p.ctx
}

// Transformer resolves a markup transformer name against the plane
// registry
func (p *TextPlane) Transformer(name string) (*transform.Transformer, bool) {
	tr, ok := p.transformers[name]
	return tr, ok
}

// RegisterTransformer makes tr addressable from markup on this plane,
// shadowing the package-level library.
func (p *TextPlane) RegisterTransformer(name string, tr *transform.Transformer) {
	p.transformers[name] = tr
}

// SetPadding insets the plane by the given number of plane cells per
// edge
func (p *TextPlane) SetPadding(left, top, right, bottom int) {
	p.pad = [4]int{left, top, right, bottom}
	p.ensureFlowMarks()
}

// DrawBorder reserves one cell along each edge and draws a frame in the
// freed ring, insetting the writable area the way SetPadding does. The
// chars resolution frames with box-drawing glyphs; pixel resolutions get
// a one-pixel rectangle around the old plane area. Repeated calls nest.
// Planes narrower than two cells on an axis only gain the inset.
func (p *TextPlane) DrawBorder(st canvas.Style) {
	area := p.Size()
	off := grid.Point{X: p.pad[0], Y: p.pad[1]}
	p.SetPadding(p.pad[0]+1, p.pad[1]+1, p.pad[2]+1, p.pad[3]+1)
	if area.X < 2 || area.Y < 2 {
		return
	}
	if p.res.set != nil {
		r := grid.NewRect(off.Scale(GlyphSize), area.Scale(GlyphSize))
		p.canvas.Pixels(p.res.set).Rect(r, st, false)
		return
	}
	w, h := area.X, area.Y
	for x := 1; x < w-1; x++ {
		p.canvas.SetCell(off.Add(grid.Point{X: x}), "─", st)
		p.canvas.SetCell(off.Add(grid.Point{X: x, Y: h - 1}), "─", st)
	}
	for y := 1; y < h-1; y++ {
		p.canvas.SetCell(off.Add(grid.Point{Y: y}), "│", st)
		p.canvas.SetCell(off.Add(grid.Point{X: w - 1, Y: y}), "│", st)
	}
	p.canvas.SetCell(off, "┌", st)
	p.canvas.SetCell(off.Add(grid.Point{X: w - 1}), "┐", st)
	p.canvas.SetCell(off.Add(grid.Point{Y: h - 1}), "└", st)
	p.canvas.SetCell(off.Add(grid.Point{X: w - 1, Y: h - 1}), "┘", st)
}

// At moves the cursor for the next Print
func (p *TextPlane) At(pos grid.Point) *TextPlane {
	p.cursor = pos
	return p
}

// Print parses markup and flows it onto the plane from the current
// cursor. Runs whose mark placement varies with the tick are retained
// and re-rendered by Update.
func (p *TextPlane) Print(markup string) error {
	parsed, err := style.NewTokenizer(markup).Parse()
	if err != nil {
		return err
	}
	return p.Write(parsed)
}

// PrintAt positions the cursor and prints
func (p *TextPlane) PrintAt(pos grid.Point, markup string) error {
	return p.At(pos).Print(markup)
}

// Write flows already-parsed text onto the plane
func (p *TextPlane) Write(parsed *style.Parsed) error {
	seq := style.NewStyledSequence(parsed, p, p.ctx, p.cursor)
	return p.render(seq)
}

// WriteSequence flows a hand-built sequence onto the plane, retaining
// it for tick replay when it carries special marks.
func (p *TextPlane) WriteSequence(seq *style.StyledSequence) error {
	return p.render(seq)
}

func (p *TextPlane) render(seq *style.StyledSequence) error {
	p.ensureFlowMarks()
	if err := seq.Render(); err != nil {
		return err
	}
	if seq.HasSpecials() || p.marks.HasSpecials() {
		p.writings = append(p.writings, seq)
	}
	return nil
}

// Writings returns the number of retained animated runs
func (p *TextPlane) Writings() int {
	return len(p.writings)
}

// Update advances the frame counter and replays every retained run.
// Called once per externally driven frame.
func (p *TextPlane) Update() error {
	p.ticks++
	p.ensureFlowMarks()
	for _, seq := range p.writings {
		if err := seq.Render(); err != nil {
			return err
		}
	}
	return nil
}

// Set writes one grapheme directly, styled by the plane context.
// Unlike markup flow, indexed writes outside the plane are an error.
func (p *TextPlane) Set(pos grid.Point, g string) error {
	if !p.inBounds(pos) {
		return ErrOutOfBounds
	}
	p.cells[pos] = g
	p.blit(pos, transform.CellState{
		Char:    g,
		Fg:      p.ctx.Fg,
		Bg:      p.ctx.Bg,
		Effects: p.ctx.Effects,
	}, p.ctx.Font)
	return nil
}

// Get returns the grapheme stored at pos, empty when unset
func (p *TextPlane) Get(pos grid.Point) string {
	return p.cells[pos]
}

// Clear drops all text, retained runs, and marks, keeping the flow
// marks at the right edge.
func (p *TextPlane) Clear() {
	p.cells = map[grid.Point]string{}
	p.writings = nil
	p.marks.Clear()
	p.flowRows = 0
	p.ensureFlowMarks()
}

// Refresh re-blits the stored grid with the current plane context,
// e.g. after the canvas was cleared.
func (p *TextPlane) Refresh() {
	for pos, g := range p.cells {
		p.blit(pos, transform.CellState{
			Char:    g,
			Fg:      p.ctx.Fg,
			Bg:      p.ctx.Bg,
			Effects: p.ctx.Effects,
		}, p.ctx.Font)
	}
}

// PlaceChar receives one styled grapheme from a flowing sequence.
// Out-of-plane positions are dropped; overflowing text is expected.
func (p *TextPlane) PlaceChar(g string, pos grid.Point, ctx *style.Context, index int) {
	if ctx.Char != "" {
		g = ctx.Char
	}
	if !p.inBounds(pos) {
		return
	}
	p.cells[pos] = g
	state := transform.CellState{Char: g, Fg: ctx.Fg, Bg: ctx.Bg, Effects: ctx.Effects}
	state = ctx.Transformers.Process(state, pos, p.ticks, index)
	p.blit(pos, state, ctx.Font)
}

func (p *TextPlane) inBounds(pos grid.Point) bool {
	s := p.Size()
	return pos.X >= 0 && pos.X < s.X && pos.Y >= 0 && pos.Y < s.Y
}

// blit projects one plane cell onto the canvas: directly for Chars,
// through the glyph rasterizer and the resolution's pixel surface
// otherwise.
func (p *TextPlane) blit(pos grid.Point, state transform.CellState, font string) {
	off := pos.Add(grid.Point{X: p.pad[0], Y: p.pad[1]})
	st := canvas.Style{Fg: state.Fg, Bg: state.Bg, Attr: state.Effects}
	if p.res.set == nil {
		p.canvas.SetCell(off, state.Char, st)
		return
	}
	bm := RenderGlyph(state.Char, font)
	p.canvas.Pixels(p.res.set).Blit(off.Scale(GlyphSize), bm, st, true)
}

// ensureFlowMarks keeps one mark per row just past the right edge that
// sends the cursor to the start of the next row, giving plain text its
// line-wrapping flow. The x coordinate is edge-relative so width
// changes need no re-registration; rows are topped up when the height
// grows.
func (p *TextPlane) ensureFlowMarks() {
	h := p.Size().Y
	if h == p.flowRows {
		return
	}
	for y := p.flowRows; y < h; y++ {
		p.marks.Set(style.Ref(style.FromEnd(0), style.Abs(y)), newlineMark())
	}
	for y := h; y < p.flowRows; y++ {
		p.marks.Delete(style.Ref(style.FromEnd(0), style.Abs(y)))
	}
	p.flowRows = h
}

func newlineMark() *style.Mark {
	return &style.Mark{
		MoveTo: &style.Move{X: style.Axis{N: 0}, Y: style.Axis{Retain: true}},
		RMove:  &grid.Point{Y: 1},
	}
}
