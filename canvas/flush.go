package canvas

import (
	"bufio"
	"io"

	"github.com/lixenwraith/textura/terminal"
)

// Flush emits the canvas through a diffing terminal writer. Only cells
// changed since the writer's previous frame produce output.
func (c *Canvas) Flush(w *terminal.Writer) error {
	cells, width, height := c.Snapshot()
	for i := range cells {
		cells[i] = c.resolveDefaults(cells[i])
	}
	return w.Flush(cells, width, height)
}

// Dump writes the whole canvas to w as plain lines with inline SGR
// sequences, suitable for piping. Rows are newline-terminated and the
// style is reset at each row end so partial reads stay sane.
func (c *Canvas) Dump(w io.Writer, mode terminal.ColorMode) error {
	cells, width, height := c.Snapshot()

	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		var last Style
		var lastValid bool
		for x := 0; x < width; x++ {
			cell := c.resolveDefaults(cells[y*width+x])
			st := Style{Fg: cell.Fg, Bg: cell.Bg, Attr: cell.Attr}
			if mode != terminal.ColorModeMono && (!lastValid || st != last) {
				terminal.WriteSGR(bw, cell.Fg, cell.Bg, cell.Attr, mode)
				last = st
				lastValid = true
			}
			if cell.Rune == 0 {
				bw.WriteByte(' ')
			} else {
				bw.WriteString(cell.Grapheme())
			}
		}
		if mode != terminal.ColorModeMono {
			terminal.WriteSGRReset(bw)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
