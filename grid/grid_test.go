package grid

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	if got := p.Add(Point{1, -2}); got != (Point{4, 2}) {
		t.Errorf("Add: expected (4,2), got %v", got)
	}
	if got := p.Sub(Point{1, 1}); got != (Point{2, 3}) {
		t.Errorf("Sub: expected (2,3), got %v", got)
	}
	if got := p.MulP(Point{2, 4}); got != (Point{6, 16}) {
		t.Errorf("MulP: expected (6,16), got %v", got)
	}
}

func TestDivModFloored(t *testing.T) {
	cases := []struct {
		p, q, div, mod Point
	}{
		{Point{5, 9}, Point{2, 4}, Point{2, 2}, Point{1, 1}},
		{Point{-1, -1}, Point{2, 4}, Point{-1, -1}, Point{1, 3}},
		{Point{8, 8}, Point{2, 4}, Point{4, 2}, Point{0, 0}},
	}
	for _, c := range cases {
		if got := c.p.DivP(c.q); got != c.div {
			t.Errorf("DivP(%v, %v): expected %v, got %v", c.p, c.q, c.div, got)
		}
		if got := c.p.ModP(c.q); got != c.mod {
			t.Errorf("ModP(%v, %v): expected %v, got %v", c.p, c.q, c.mod, got)
		}
	}
}

func TestDirectionByName(t *testing.T) {
	d, ok := DirectionByName("up")
	if !ok || d != Up {
		t.Errorf("Expected Up, got %v ok=%v", d, ok)
	}
	if _, ok := DirectionByName("diagonal"); ok {
		t.Error("Expected unknown direction to report ok=false")
	}
}

func TestRectCells(t *testing.T) {
	r := NewRect(Point{1, 1}, Point{2, 3})
	if r.Size() != (Point{2, 3}) {
		t.Errorf("Size: expected (2,3), got %v", r.Size())
	}
	var count int
	r.EachCell(func(p Point) {
		if !r.Contains(p) {
			t.Errorf("EachCell yielded out-of-rect point %v", p)
		}
		count++
	})
	if count != 6 {
		t.Errorf("Expected 6 cells, got %d", count)
	}
	if r.Contains(Point{3, 1}) {
		t.Error("Contains should be exclusive of Max")
	}
}
