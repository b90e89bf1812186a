package grid

// Rect is a half-open cell region [Min.X, Max.X) x [Min.Y, Max.Y)
type Rect struct {
	Min, Max Point
}

// NewRect builds a rect from origin and size, normalizing negative sizes
func NewRect(origin, size Point) Rect {
	r := Rect{Min: origin, Max: origin.Add(size)}
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Size returns width/height of the rect
func (r Rect) Size() Point {
	return Point{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y}
}

// Contains reports whether p falls inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Empty reports whether the rect covers no cells
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// EachCell calls fn for every cell position in row-major order
func (r Rect) EachCell(fn func(Point)) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fn(Point{x, y})
		}
	}
}
