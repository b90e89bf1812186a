package style

import "github.com/lixenwraith/textura/grid"

// Axis is one coordinate of an absolute move. Retain keeps the cursor's
// current value on that axis.
type Axis struct {
	Retain bool
	N      int
}

// Move is an absolute cursor target with per-axis retain
type Move struct {
	X, Y Axis
}

// Mark is a directive bound to a text offset or plane cell: push
// attribute values, pop previously pushed ones, and/or move the cursor.
// A mark is immutable once stored; render state never lives on it.
type Mark struct {
	Attributes []Attribute
	Pops       []AttrID
	MoveTo     *Move
	RMove      *grid.Point
}

// Empty reports whether the mark carries no directives at all
func (m *Mark) Empty() bool {
	return len(m.Attributes) == 0 && len(m.Pops) == 0 && m.MoveTo == nil && m.RMove == nil
}

// SpecialMark is a mark whose placement is recomputed from the frame
// tick and text length once per render pass. Exactly one of Index and
// Pos is set: Index places the mark at a text offset, Pos at a plane
// cell.
type SpecialMark struct {
	Mark
	Index func(tick, textLen int) int
	Pos   func(tick, textLen int) grid.Point
}
