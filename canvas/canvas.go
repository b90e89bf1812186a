// Package canvas provides the character-cell drawing target: a cell buffer
// with dirty tracking, a write lock scoped to the canvas, and sub-character
// pixel surfaces for the block/quadrant/sextant/braille resolutions.
package canvas

import (
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/terminal"
)

// Style bundles the drawing attributes applied to a cell write. Transparent
// channels preserve whatever the destination cell already holds.
type Style struct {
	Fg   terminal.Color
	Bg   terminal.Color
	Attr terminal.Attr
}

// DefaultStyle draws with surface-default colors and no attributes
var DefaultStyle = Style{Fg: terminal.Default, Bg: terminal.Default}

// TransparentStyle preserves all channels of the destination cell
var TransparentStyle = Style{
	Fg:   terminal.Transparent,
	Bg:   terminal.Transparent,
	Attr: terminal.AttrTransparent,
}

// Canvas is a character-cell buffer. All cell writes across every plane
// and surface targeting one canvas are serialized by its single mutex,
// keeping dirty-region and last-written bookkeeping consistent.
type Canvas struct {
	mu      sync.Mutex
	width   int
	height  int
	cells   []terminal.Cell
	touched []bool

	// Concrete colors that cell writes with "default" color resolve
	// against at flush time. Left as terminal.Default they fall through
	// to the terminal's own defaults.
	DefaultFg terminal.Color
	DefaultBg terminal.Color

	lastPos grid.Point
}

// New creates a canvas with the given dimensions in character cells
func New(width, height int) *Canvas {
	c := &Canvas{
		DefaultFg: terminal.Default,
		DefaultBg: terminal.Default,
	}
	c.allocate(width, height)
	return c
}

func (c *Canvas) allocate(width, height int) {
	size := width * height
	c.cells = make([]terminal.Cell, size)
	c.touched = make([]bool, size)
	for i := range c.cells {
		c.cells[i] = terminal.EmptyCell
	}
	c.width = width
	c.height = height
}

// Size returns the canvas dimensions in character cells
func (c *Canvas) Size() grid.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return grid.Point{X: c.width, Y: c.height}
}

// Resize reallocates the buffer, dropping previous content
func (c *Canvas) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allocate(width, height)
}

// Clear resets every cell to empty and marks the whole canvas dirty
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.cells {
		c.cells[i] = terminal.EmptyCell
		c.touched[i] = true
	}
}

func (c *Canvas) inBounds(p grid.Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// CellAt returns the cell at p, and false when p is out of bounds
func (c *Canvas) CellAt(p grid.Point) (terminal.Cell, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.inBounds(p) {
		return terminal.Cell{}, false
	}
	return c.cells[p.Y*c.width+p.X], true
}

// LastPos returns the position of the most recent in-bounds cell write
func (c *Canvas) LastPos() grid.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPos
}

// SetCell writes a grapheme with the given style. Out-of-bounds writes are
// dropped. Double-width graphemes shadow the following cell so stale
// glyphs cannot show through. Returns false when clipped.
func (c *Canvas) SetCell(p grid.Point, g string, st Style) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setCellLocked(p, g, st)
}

func (c *Canvas) setCellLocked(p grid.Point, g string, st Style) bool {
	if !c.inBounds(p) {
		return false
	}
	idx := p.Y*c.width + p.X
	cell := c.cells[idx]

	var r rune
	var comb string
	for i, rr := range g {
		if i == 0 {
			r = rr
		} else {
			comb = g[i:]
			break
		}
	}
	cell.Rune = r
	cell.Comb = comb
	applyStyle(&cell, st)

	c.cells[idx] = cell
	c.touched[idx] = true
	c.lastPos = p

	if runewidth.StringWidth(g) == 2 && c.inBounds(p.Add(grid.Right)) {
		shadow := c.cells[idx+1]
		shadow.Rune = 0
		shadow.Comb = ""
		shadow.Bg = cell.Bg
		c.cells[idx+1] = shadow
		c.touched[idx+1] = true
	}
	return true
}

// applyStyle merges a style into a cell honoring transparency
func applyStyle(cell *terminal.Cell, st Style) {
	if st.Fg.Kind != terminal.KindTransparent {
		cell.Fg = st.Fg
	}
	if st.Bg.Kind != terminal.KindTransparent {
		cell.Bg = st.Bg
	}
	if !st.Attr.Transparent() {
		cell.Attr = st.Attr.Concrete()
	}
}

// setRuneLocked rewrites only the rune of a cell, used by pixel surfaces
// that fold several pixels into one glyph
func (c *Canvas) setRuneLocked(p grid.Point, r rune, st Style) {
	idx := p.Y*c.width + p.X
	cell := c.cells[idx]
	cell.Rune = r
	cell.Comb = ""
	if r == ' ' {
		cell.Rune = 0
	}
	applyStyle(&cell, st)
	c.cells[idx] = cell
	c.touched[idx] = true
	c.lastPos = p
}

// Snapshot copies the current cells for a flusher and clears dirty flags.
// Flushers diff against their own previous frame, so the copy is enough.
func (c *Canvas) Snapshot() (cells []terminal.Cell, width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]terminal.Cell, len(c.cells))
	copy(out, c.cells)
	for i := range c.touched {
		c.touched[i] = false
	}
	return out, c.width, c.height
}

// resolveDefaults maps default-colored channels to the canvas defaults
func (c *Canvas) resolveDefaults(cell terminal.Cell) terminal.Cell {
	if cell.Fg.Kind == terminal.KindDefault && c.DefaultFg.Concrete() {
		cell.Fg = c.DefaultFg
	}
	if cell.Bg.Kind == terminal.KindDefault && c.DefaultBg.Concrete() {
		cell.Bg = c.DefaultBg
	}
	return cell
}
