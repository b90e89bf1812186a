package terminal

// Cell is one rendered character cell. Comb carries the tail of a grapheme
// cluster when the glyph is more than a single rune (kept as a string so
// cells stay comparable for diffing).
type Cell struct {
	Rune rune
	Comb string
	Fg   Color
	Bg   Color
	Attr Attr
}

// EmptyCell is an unwritten cell: no glyph, surface-default colors
var EmptyCell = Cell{Fg: Default, Bg: Default}

// Grapheme reassembles the full glyph for the cell, empty if unwritten
func (c Cell) Grapheme() string {
	if c.Rune == 0 {
		return ""
	}
	return string(c.Rune) + c.Comb
}

// cellEqual compares two cells for diffing (standalone for inlining).
// Unwritten cells only need matching background.
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Comb != b.Comb || a.Attr != b.Attr {
		return false
	}
	if a.Rune == 0 {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}
