// Package subpixel implements the bit algebra of Unicode block characters
// used to pack several logical pixels into one terminal glyph: full blocks,
// half blocks, quadrants, sextants, and braille patterns.
package subpixel

import "github.com/lixenwraith/textura/grid"

// CharSet is one sub-character pixel packing. A glyph of the set encodes
// Size().X x Size().Y pixels; Set/Reset/Get manipulate one pixel inside a
// glyph. Runes outside the set are treated as empty when written through.
type CharSet interface {
	// Size returns pixels per glyph (width, height)
	Size() grid.Point
	// Set turns the pixel at p on inside r, returning the new rune
	Set(p grid.Point, r rune) rune
	// Reset turns the pixel at p off inside r, returning the new rune
	Reset(p grid.Point, r rune) rune
	// Get reports whether the pixel at p is on in r
	Get(p grid.Point, r rune) bool
	// Contains reports whether r is a glyph of this set
	Contains(r rune) bool
}

const empty = ' '

// maskSet implements CharSet for packings that are a pure LUT from a pixel
// bitmask to a rune. Bit index for pixel (x, y) is x + size.X*y.
type maskSet struct {
	size   grid.Point
	runes  []rune       // bitmask -> rune
	toMask map[rune]int // rune -> bitmask
}

func newMaskSet(size grid.Point, runes []rune) *maskSet {
	s := &maskSet{size: size, runes: runes, toMask: make(map[rune]int, len(runes))}
	for mask, r := range runes {
		s.toMask[r] = mask
	}
	return s
}

func (s *maskSet) Size() grid.Point { return s.size }

func (s *maskSet) bit(p grid.Point) int {
	return 1 << (p.X + s.size.X*p.Y)
}

func (s *maskSet) mask(r rune) int {
	if m, ok := s.toMask[r]; ok {
		return m
	}
	return 0
}

func (s *maskSet) Set(p grid.Point, r rune) rune {
	return s.runes[s.mask(r)|s.bit(p)]
}

func (s *maskSet) Reset(p grid.Point, r rune) rune {
	return s.runes[s.mask(r)&^s.bit(p)]
}

func (s *maskSet) Get(p grid.Point, r rune) bool {
	return s.mask(r)&s.bit(p) != 0
}

func (s *maskSet) Contains(r rune) bool {
	_, ok := s.toMask[r]
	return ok
}

// Block packs one pixel per glyph: space or full block
var Block CharSet = newMaskSet(grid.Point{X: 1, Y: 1}, []rune{empty, '█'})

// Half packs 1x2 pixels per glyph using upper/lower half blocks
var Half CharSet = newMaskSet(grid.Point{X: 1, Y: 2}, []rune{
	empty, '▀', '▄', '█',
})

// Quadrant packs 2x2 pixels per glyph. Mask bits: 1=UL 2=UR 4=LL 8=LR.
var Quadrant CharSet = newMaskSet(grid.Point{X: 2, Y: 2}, []rune{
	empty,    // ----
	'▘', // UL
	'▝', // UR
	'▀', // upper half
	'▖', // LL
	'▌', // left half
	'▞', // UR+LL
	'▛', // UL+UR+LL
	'▗', // LR
	'▚', // UL+LR
	'▐', // right half
	'▜', // UL+UR+LR
	'▄', // lower half
	'▙', // UL+LL+LR
	'▟', // UR+LL+LR
	'█', // full
})

// Sextant packs 2x3 pixels per glyph using the Unicode 13 block sextants.
// The U+1FB00 range omits the empty, left-half, right-half, and full
// patterns, which live elsewhere in the block elements.
var Sextant CharSet = newMaskSet(grid.Point{X: 2, Y: 3}, sextantRunes())

func sextantRunes() []rune {
	runes := make([]rune, 64)
	for mask := 0; mask < 64; mask++ {
		switch mask {
		case 0:
			runes[mask] = empty
		case 0b010101: // left column
			runes[mask] = '▌'
		case 0b101010: // right column
			runes[mask] = '▐'
		case 0b111111:
			runes[mask] = '█'
		default:
			r := rune(0x1FB00 + mask - 1)
			if mask > 0b010101 {
				r--
			}
			if mask > 0b101010 {
				r--
			}
			runes[mask] = r
		}
	}
	return runes
}

// Braille packs 2x4 pixels per glyph on the U+2800 block. Dot bits are not
// row-major, so it maps pixel coordinates through the dot numbering.
type brailleSet struct{}

// Braille is the 2x4 braille-pattern packing
var Braille CharSet = brailleSet{}

// brailleBits maps (x + 2*y) to the braille dot bit
var brailleBits = [8]int{
	0x01, 0x08, // (0,0) (1,0)
	0x02, 0x10, // (0,1) (1,1)
	0x04, 0x20, // (0,2) (1,2)
	0x40, 0x80, // (0,3) (1,3)
}

func (brailleSet) Size() grid.Point { return grid.Point{X: 2, Y: 4} }

func brailleMask(r rune) int {
	if r >= 0x2800 && r <= 0x28FF {
		return int(r - 0x2800)
	}
	return 0
}

func (brailleSet) Set(p grid.Point, r rune) rune {
	return rune(0x2800 + (brailleMask(r) | brailleBits[p.X+2*p.Y]))
}

func (brailleSet) Reset(p grid.Point, r rune) rune {
	m := brailleMask(r) &^ brailleBits[p.X+2*p.Y]
	if m == 0 {
		return empty
	}
	return rune(0x2800 + m)
}

func (brailleSet) Get(p grid.Point, r rune) bool {
	return brailleMask(r)&brailleBits[p.X+2*p.Y] != 0
}

func (brailleSet) Contains(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}
