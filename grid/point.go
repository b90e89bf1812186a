package grid

// Point is a position or offset on an integer cell grid.
// It doubles as a size (width X, height Y) and as a direction unit vector.
type Point struct {
	X, Y int
}

// Text flow directions as unit vectors
var (
	Right = Point{1, 0}
	Left  = Point{-1, 0}
	Down  = Point{0, 1}
	Up    = Point{0, -1}
)

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p with both axes multiplied by n
func (p Point) Scale(n int) Point {
	return Point{p.X * n, p.Y * n}
}

// MulP returns per-axis product p * q
func (p Point) MulP(q Point) Point {
	return Point{p.X * q.X, p.Y * q.Y}
}

// DivP returns per-axis floor division p / q, q axes must be non-zero
func (p Point) DivP(q Point) Point {
	return Point{floorDiv(p.X, q.X), floorDiv(p.Y, q.Y)}
}

// ModP returns per-axis floored remainder p mod q, always non-negative for q > 0
func (p Point) ModP(q Point) Point {
	return Point{p.X - floorDiv(p.X, q.X)*q.X, p.Y - floorDiv(p.Y, q.Y)*q.Y}
}

// floorDiv rounds toward negative infinity, unlike Go's truncated division
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DirectionByName maps markup direction words to unit vectors
func DirectionByName(name string) (Point, bool) {
	switch name {
	case "right":
		return Right, true
	case "left":
		return Left, true
	case "down":
		return Down, true
	case "up":
		return Up, true
	}
	return Point{}, false
}
