package canvas

// Bitmap is a 1-bit pixel raster, the unit of sub-cell blitting: glyph
// rasterizers produce one per character and surfaces project it onto the
// canvas at their own pixel resolution.
type Bitmap struct {
	W, H int
	bits []bool
}

// NewBitmap allocates an all-off bitmap
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, bits: make([]bool, w*h)}
}

// Set writes one pixel, ignoring out-of-range coordinates
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return
	}
	b.bits[y*b.W+x] = on
}

// At reads one pixel, off when out of range
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return false
	}
	return b.bits[y*b.W+x]
}

// Any reports whether at least one pixel is on
func (b *Bitmap) Any() bool {
	for _, v := range b.bits {
		if v {
			return true
		}
	}
	return false
}
