package text

import "github.com/lixenwraith/textura/canvas"

// GlyphSize is the pixel box every rasterized glyph occupies
const GlyphSize = 8

// checkerboard stands in for glyphs the font does not cover, keeping
// the spacing of the surrounding text intact
var checkerboard = [8]uint8{0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55}

// RenderGlyph rasterizes a grapheme to an 8x8 bitmap. Only the builtin
// font exists for now, so the font name selects nothing yet; it is
// threaded through so planes can carry a font attribute.
func RenderGlyph(g string, font string) *canvas.Bitmap {
	rows := checkerboard
	for _, r := range g {
		if known, ok := font8x8[r]; ok {
			rows = known
		}
		break
	}
	bm := canvas.NewBitmap(GlyphSize, GlyphSize)
	for y := 0; y < GlyphSize; y++ {
		row := rows[y]
		for x := 0; x < GlyphSize; x++ {
			if row&(0x80>>x) != 0 {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}
