package canvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/textura/terminal"
)

// FlushTcell pushes the canvas onto a tcell screen. tcell diffs
// internally, so the whole cell set is handed over each call; Show is
// left to the caller so several canvases can composite into one frame.
func (c *Canvas) FlushTcell(s tcell.Screen) {
	cells, width, height := c.Snapshot()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := c.resolveDefaults(cells[y*width+x])
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			var comb []rune
			if cell.Comb != "" {
				comb = []rune(cell.Comb)
			}
			s.SetContent(x, y, r, comb, tcellStyle(cell))
		}
	}
}

// tcellStyle converts a cell's resolved style to tcell's representation
func tcellStyle(cell terminal.Cell) tcell.Style {
	st := tcell.StyleDefault
	if cell.Fg.Concrete() {
		st = st.Foreground(tcell.NewRGBColor(
			int32(cell.Fg.Val.R), int32(cell.Fg.Val.G), int32(cell.Fg.Val.B)))
	}
	if cell.Bg.Concrete() {
		st = st.Background(tcell.NewRGBColor(
			int32(cell.Bg.Val.R), int32(cell.Bg.Val.G), int32(cell.Bg.Val.B)))
	}
	a := cell.Attr.Concrete()
	if a.Has(terminal.AttrBold) {
		st = st.Bold(true)
	}
	if a.Has(terminal.AttrDim) {
		st = st.Dim(true)
	}
	if a.Has(terminal.AttrItalic) {
		st = st.Italic(true)
	}
	if a.Has(terminal.AttrUnderline) {
		st = st.Underline(true)
	}
	if a.Has(terminal.AttrBlink) {
		st = st.Blink(true)
	}
	if a.Has(terminal.AttrReverse) {
		st = st.Reverse(true)
	}
	if a.Has(terminal.AttrStrike) {
		st = st.StrikeThrough(true)
	}
	return st
}
