package style

import "github.com/lixenwraith/textura/grid"

// Coord is one axis of a mark position: either an absolute offset from
// the near edge or an offset counted back from the far edge. FromEnd 0
// is one past the last cell, which is where the cursor lands right
// after writing the final column.
type Coord struct {
	FromEdge bool
	N        int
}

// Abs returns an absolute axis coordinate. Negative values count back
// from the far edge, so -1 is the last cell.
func Abs(n int) Coord {
	if n < 0 {
		return Coord{FromEdge: true, N: -n}
	}
	return Coord{N: n}
}

// FromEnd returns a far-edge-relative axis coordinate: resolved as
// size - n against the plane's current size.
func FromEnd(n int) Coord {
	return Coord{FromEdge: true, N: n}
}

// Resolve returns the concrete offset for the given axis size
func (c Coord) Resolve(size int) int {
	if c.FromEdge {
		return size - c.N
	}
	return c.N
}

// CellRef addresses one plane cell, possibly edge-relatively on either
// axis. Edge-relative refs re-resolve whenever the plane size changes.
type CellRef struct {
	X, Y Coord
}

// At builds a fully absolute cell reference
func At(p grid.Point) CellRef {
	return CellRef{X: Abs(p.X), Y: Abs(p.Y)}
}

// Ref builds a cell reference from two axis coordinates
func Ref(x, y Coord) CellRef {
	return CellRef{X: x, Y: y}
}

// Relative reports whether either axis depends on the plane size
func (r CellRef) Relative() bool {
	return r.X.FromEdge || r.Y.FromEdge
}

// Resolve returns the concrete cell for the given plane size
func (r CellRef) Resolve(size grid.Point) grid.Point {
	return grid.Point{X: r.X.Resolve(size.X), Y: r.Y.Resolve(size.Y)}
}

// spellings returns the four equivalent ways of addressing pos on a
// plane of the given size: plain, x-from-edge, y-from-edge, and both.
// The merge in Get and Delete treats them as one logical entry.
func spellings(pos, size grid.Point) [4]CellRef {
	ex := FromEnd(size.X - pos.X)
	ey := FromEnd(size.Y - pos.Y)
	return [4]CellRef{
		{X: Coord{N: pos.X}, Y: Coord{N: pos.Y}},
		{X: ex, Y: Coord{N: pos.Y}},
		{X: Coord{N: pos.X}, Y: ey},
		{X: ex, Y: ey},
	}
}
