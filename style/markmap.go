package style

import "github.com/lixenwraith/textura/grid"

// Sizer reports the current size of the surface a mark map is bound to
type Sizer interface {
	Size() grid.Point
}

// MarkMap stores the marks bound to one text plane. Cells are
// addressable absolutely or edge-relatively; both stores plus the
// special marks merge at read time. The map itself is never consumed
// during rendering: Prepare derives a frozen view per render pass.
type MarkMap struct {
	sizer    Sizer
	cells    map[grid.Point][]*Mark
	relative map[CellRef][]*Mark
	special  []*SpecialMark
}

// NewMarkMap creates an empty mark map. sizer may be nil for maps not
// bound to a plane; edge-relative marks on such maps never resolve.
func NewMarkMap(sizer Sizer) *MarkMap {
	m := &MarkMap{sizer: sizer}
	m.Clear()
	return m
}

// Clear drops every stored mark
func (m *MarkMap) Clear() {
	m.cells = map[grid.Point][]*Mark{}
	m.relative = map[CellRef][]*Mark{}
	m.special = nil
}

// Len counts stored cell entries, edge-relative entries included.
// Spellings collapsed at read time still count as stored.
func (m *MarkMap) Len() int {
	return len(m.cells) + len(m.relative)
}

// Set appends mk at ref. Marks at one slot stay an ordered sequence;
// collisions never collapse.
func (m *MarkMap) Set(ref CellRef, mk *Mark) {
	if ref.Relative() {
		m.relative[ref] = append(m.relative[ref], mk)
		return
	}
	pos := grid.Point{X: ref.X.N, Y: ref.Y.N}
	m.cells[pos] = append(m.cells[pos], mk)
}

// SetRect appends mk at every absolute cell of r
func (m *MarkMap) SetRect(r grid.Rect, mk *Mark) {
	r.EachCell(func(p grid.Point) {
		m.Set(At(p), mk)
	})
}

// SetSpecial registers a mark whose placement is recomputed per pass
func (m *MarkMap) SetSpecial(mk *SpecialMark) {
	m.special = append(m.special, mk)
}

// HasSpecials reports whether any registered mark moves with the tick
func (m *MarkMap) HasSpecials() bool {
	return len(m.special) > 0
}

// Get returns the marks at ref, merging the four equivalent spellings
// of the resolved position in store order: absolute first, then the
// edge-relative variants.
func (m *MarkMap) Get(ref CellRef) []*Mark {
	if m.sizer == nil {
		if ref.Relative() {
			return m.relative[ref]
		}
		return m.cells[grid.Point{X: ref.X.N, Y: ref.Y.N}]
	}
	size := m.sizer.Size()
	pos := ref.Resolve(size)
	var out []*Mark
	for i, sp := range spellings(pos, size) {
		if i == 0 {
			out = append(out, m.cells[pos]...)
			continue
		}
		out = append(out, m.relative[sp]...)
	}
	return out
}

// Delete removes the logical entry at ref across all four spellings,
// reporting whether anything was stored there.
func (m *MarkMap) Delete(ref CellRef) bool {
	if m.sizer == nil {
		if ref.Relative() {
			_, ok := m.relative[ref]
			delete(m.relative, ref)
			return ok
		}
		pos := grid.Point{X: ref.X.N, Y: ref.Y.N}
		_, ok := m.cells[pos]
		delete(m.cells, pos)
		return ok
	}
	size := m.sizer.Size()
	pos := ref.Resolve(size)
	found := false
	for i, sp := range spellings(pos, size) {
		if i == 0 {
			if _, ok := m.cells[pos]; ok {
				delete(m.cells, pos)
				found = true
			}
			continue
		}
		if _, ok := m.relative[sp]; ok {
			delete(m.relative, sp)
			found = true
		}
	}
	return found
}

// Origin tags where a placed mark came from; pops only remove pushes
// that share their origin.
type Origin uint8

const (
	OriginOriginal Origin = iota
	OriginPlane
	OriginSequence
)

// Placed is a mark resolved to a concrete placement for one render pass
type Placed struct {
	M      *Mark
	Origin Origin
}

// RenderMarks is the frozen per-pass view a sequence replays against.
// Specials are concretized for one tick and edge-relative cells are
// resolved against the plane size captured at Prepare time; a plane
// resize is picked up by the next Prepare, never mid-render.
type RenderMarks struct {
	cells      map[grid.Point][]*Mark
	specialPos map[grid.Point][]*Mark
	specialIdx map[int][]*Mark
	seq        map[int][]*Mark
}

// Prepare derives the render view: seq holds the sequence-local marks
// keyed by text offset, extra any sequence-local special marks. The
// parent map is not touched.
func (m *MarkMap) Prepare(seq map[int][]*Mark, extra []*SpecialMark, tick, textLen int) *RenderMarks {
	r := &RenderMarks{
		cells:      make(map[grid.Point][]*Mark, len(m.cells)+len(m.relative)),
		specialPos: map[grid.Point][]*Mark{},
		specialIdx: map[int][]*Mark{},
		seq:        seq,
	}
	for pos, marks := range m.cells {
		r.cells[pos] = marks
	}
	if m.sizer != nil {
		size := m.sizer.Size()
		for ref, marks := range m.relative {
			pos := ref.Resolve(size)
			merged := make([]*Mark, 0, len(r.cells[pos])+len(marks))
			merged = append(merged, r.cells[pos]...)
			merged = append(merged, marks...)
			r.cells[pos] = merged
		}
	}
	for _, sm := range m.special {
		r.placeSpecial(sm, tick, textLen)
	}
	for _, sm := range extra {
		r.placeSpecial(sm, tick, textLen)
	}
	return r
}

func (r *RenderMarks) placeSpecial(sm *SpecialMark, tick, textLen int) {
	switch {
	case sm.Index != nil:
		i := sm.Index(tick, textLen)
		r.specialIdx[i] = append(r.specialIdx[i], &sm.Mark)
	case sm.Pos != nil:
		p := sm.Pos(tick, textLen)
		r.specialPos[p] = append(r.specialPos[p], &sm.Mark)
	}
}

// GetFull returns every mark applying at text offset idx with the
// cursor at pos, in evaluation order: specials at the cursor cell,
// specials at the text offset, plane cells, then sequence-local marks.
// Later entries override earlier ones when they touch one attribute.
func (r *RenderMarks) GetFull(idx int, pos grid.Point) []Placed {
	var out []Placed
	for _, mk := range r.specialPos[pos] {
		out = append(out, Placed{M: mk, Origin: OriginPlane})
	}
	for _, mk := range r.specialIdx[idx] {
		out = append(out, Placed{M: mk, Origin: OriginSequence})
	}
	for _, mk := range r.cells[pos] {
		out = append(out, Placed{M: mk, Origin: OriginPlane})
	}
	for _, mk := range r.seq[idx] {
		out = append(out, Placed{M: mk, Origin: OriginSequence})
	}
	return out
}
