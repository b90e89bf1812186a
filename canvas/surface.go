package canvas

import (
	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/subpixel"
)

// Surface addresses the canvas as logical pixels at one sub-character
// packing. Pixel writes fold into the block glyph of the covering cell;
// a cell holding a foreign (non-set) rune is treated as empty and
// overwritten.
type Surface struct {
	c   *Canvas
	set subpixel.CharSet
}

// Pixels returns the pixel surface for one sub-character packing
func (c *Canvas) Pixels(set subpixel.CharSet) *Surface {
	return &Surface{c: c, set: set}
}

// Size returns surface dimensions in logical pixels
func (s *Surface) Size() grid.Point {
	return s.c.Size().MulP(s.set.Size())
}

// cellFor splits a pixel position into covering cell and inner offset
func (s *Surface) cellFor(p grid.Point) (cell, inner grid.Point) {
	unit := s.set.Size()
	return p.DivP(unit), p.ModP(unit)
}

// SetAt turns the pixel at p on, drawing with st. Out-of-bounds pixels
// are dropped: overflow is expected, recoverable behavior.
func (s *Surface) SetAt(p grid.Point, st Style) {
	cell, inner := s.cellFor(p)
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	if !s.c.inBounds(cell) {
		return
	}
	cur := s.c.cells[cell.Y*s.c.width+cell.X].Rune
	if !s.set.Contains(cur) {
		cur = ' '
	}
	s.c.setRuneLocked(cell, s.set.Set(inner, cur), st)
}

// ResetAt turns the pixel at p off, keeping the cell's colors
func (s *Surface) ResetAt(p grid.Point) {
	cell, inner := s.cellFor(p)
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	if !s.c.inBounds(cell) {
		return
	}
	cur := s.c.cells[cell.Y*s.c.width+cell.X].Rune
	if !s.set.Contains(cur) {
		cur = ' '
	}
	s.c.setRuneLocked(cell, s.set.Reset(inner, cur), TransparentStyle)
}

// GetAt reports whether the pixel at p is on
func (s *Surface) GetAt(p grid.Point) bool {
	cell, inner := s.cellFor(p)
	c, ok := s.c.CellAt(cell)
	if !ok {
		return false
	}
	return s.set.Get(inner, c.Rune)
}

// Blit projects a bitmap onto the surface with its top-left at p.
// On pixels draw with st; when erase is set, off pixels clear the
// corresponding surface pixel instead of leaving it alone.
func (s *Surface) Blit(p grid.Point, bm *Bitmap, st Style, erase bool) {
	for y := 0; y < bm.H; y++ {
		for x := 0; x < bm.W; x++ {
			target := p.Add(grid.Point{X: x, Y: y})
			if bm.At(x, y) {
				s.SetAt(target, st)
			} else if erase {
				s.ResetAt(target)
			}
		}
	}
}

// Line draws a straight pixel line from a to b (Bresenham)
func (s *Surface) Line(a, b grid.Point, st Style) {
	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	for {
		s.SetAt(a, st)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}

// Rect draws a rectangle outline, or fills it when fill is set
func (s *Surface) Rect(r grid.Rect, st Style, fill bool) {
	if r.Empty() {
		return
	}
	if fill {
		r.EachCell(func(p grid.Point) { s.SetAt(p, st) })
		return
	}
	last := r.Max.Sub(grid.Point{X: 1, Y: 1})
	s.Line(r.Min, grid.Point{X: last.X, Y: r.Min.Y}, st)
	s.Line(grid.Point{X: last.X, Y: r.Min.Y}, last, st)
	s.Line(last, grid.Point{X: r.Min.X, Y: last.Y}, st)
	s.Line(grid.Point{X: r.Min.X, Y: last.Y}, r.Min, st)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
