package subpixel

import (
	"testing"

	"github.com/lixenwraith/textura/grid"
)

func TestSetResetRoundTrip(t *testing.T) {
	sets := map[string]CharSet{
		"block":    Block,
		"half":     Half,
		"quadrant": Quadrant,
		"sextant":  Sextant,
		"braille":  Braille,
	}
	for name, cs := range sets {
		size := cs.Size()
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				p := grid.Point{X: x, Y: y}
				r := cs.Set(p, ' ')
				if !cs.Get(p, r) {
					t.Errorf("%s: pixel %v not set in %q", name, p, r)
				}
				if !cs.Contains(r) {
					t.Errorf("%s: Set produced rune %q outside the set", name, r)
				}
				back := cs.Reset(p, r)
				if cs.Get(p, back) {
					t.Errorf("%s: pixel %v still set after reset in %q", name, p, back)
				}
				if back != ' ' {
					t.Errorf("%s: expected empty glyph after reset, got %q", name, back)
				}
			}
		}
	}
}

func TestQuadrantGlyphs(t *testing.T) {
	// Upper-left pixel alone is the UL quadrant glyph
	if r := Quadrant.Set(grid.Point{X: 0, Y: 0}, ' '); r != '▘' {
		t.Errorf("Expected UL quadrant, got %q", r)
	}
	// All four pixels make a full block
	r := rune(' ')
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r = Quadrant.Set(grid.Point{X: x, Y: y}, r)
		}
	}
	if r != '█' {
		t.Errorf("Expected full block, got %q", r)
	}
}

func TestHalfGlyphs(t *testing.T) {
	top := Half.Set(grid.Point{X: 0, Y: 0}, ' ')
	if top != '▀' {
		t.Errorf("Expected upper half block, got %q", top)
	}
	both := Half.Set(grid.Point{X: 0, Y: 1}, top)
	if both != '█' {
		t.Errorf("Expected full block, got %q", both)
	}
}

func TestBrailleDots(t *testing.T) {
	// Dot 1 is the top-left pixel
	if r := Braille.Set(grid.Point{X: 0, Y: 0}, ' '); r != '⠁' {
		t.Errorf("Expected dot-1 pattern, got %U", r)
	}
	// Dot 7 (bottom-left) uses the high bits
	if r := Braille.Set(grid.Point{X: 0, Y: 3}, ' '); r != '⡀' {
		t.Errorf("Expected dot-7 pattern, got %U", r)
	}
	// Foreign runes are treated as empty
	if r := Braille.Set(grid.Point{X: 1, Y: 0}, 'A'); r != '⠈' {
		t.Errorf("Expected dot-4 pattern from empty, got %U", r)
	}
}

func TestSextantHandoffGlyphs(t *testing.T) {
	// Left column fully set falls back to the left half block
	r := rune(' ')
	for y := 0; y < 3; y++ {
		r = Sextant.Set(grid.Point{X: 0, Y: y}, r)
	}
	if r != '▌' {
		t.Errorf("Expected left half block, got %q (%U)", r, r)
	}
	// All six pixels make a full block
	for y := 0; y < 3; y++ {
		r = Sextant.Set(grid.Point{X: 1, Y: y}, r)
	}
	if r != '█' {
		t.Errorf("Expected full block, got %q (%U)", r, r)
	}
	// First sextant pattern
	if r := Sextant.Set(grid.Point{X: 0, Y: 0}, ' '); r != '\U0001FB00' {
		t.Errorf("Expected BLOCK SEXTANT-1, got %U", r)
	}
}
