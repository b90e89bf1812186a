package terminal

import (
	"bufio"
	"io"
)

// Writer emits frames of cells as ANSI sequences, diffing each frame
// against the previous one so unchanged regions produce no output.
type Writer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    Color
	lastBg    Color
	lastAttr  Attr
	lastValid bool
}

// NewWriter creates a frame writer targeting w
func NewWriter(w io.Writer, mode ColorMode) *Writer {
	return &Writer{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: mode,
	}
}

// Reset clears the front buffer so the next flush redraws everything
func (o *Writer) Reset() {
	o.resize(0, 0)
}

// resize updates buffer dimensions and invalidates all diff state
func (o *Writer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// Flush writes one frame, emitting only cells that changed since the
// previous flush. Cursor moves and style changes are coalesced.
func (o *Writer) Flush(cells []Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return nil
	}

	w := o.writer

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			if cellEqual(cells[idx], o.front[idx]) {
				x++
				continue
			}

			// Position cursor once for this dirty run
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			for x < width {
				cidx := rowStart + x
				c := cells[cidx]
				if cellEqual(c, o.front[cidx]) {
					break
				}

				o.writeStyle(c.Fg, c.Bg, c.Attr)

				if c.Rune == 0 {
					w.WriteByte(' ')
				} else {
					w.WriteRune(c.Rune)
					if c.Comb != "" {
						w.WriteString(c.Comb)
					}
				}

				o.front[cidx] = c
				x++
				o.cursorX++
			}
		}
	}

	return w.Flush()
}

// writeStyle emits color/attr sequences only when they differ from the
// last emitted style
func (o *Writer) writeStyle(fg, bg Color, attr Attr) {
	w := o.writer
	if o.lastValid && fg == o.lastFg && bg == o.lastBg && attr == o.lastAttr {
		return
	}

	// Attribute removal has no individual "off" in common terminals worth
	// tracking, so reset and replay when attrs shrink
	if !o.lastValid || o.lastAttr.Concrete() != attr.Concrete() {
		w.Write(csiReset)
		writeAttrs(w, attr)
		writeFg(w, fg, o.colorMode)
		writeBg(w, bg, o.colorMode)
	} else {
		if !o.lastValid || fg != o.lastFg {
			writeFg(w, fg, o.colorMode)
		}
		if !o.lastValid || bg != o.lastBg {
			writeBg(w, bg, o.colorMode)
		}
	}

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// Clear wipes the terminal and the diff state
func (o *Writer) Clear() error {
	o.writer.Write(csiClear)
	o.Reset()
	return o.writer.Flush()
}

// EnterScreen switches to the alternate screen and hides the cursor
func (o *Writer) EnterScreen() error {
	o.writer.Write(csiAltScreenEnter)
	o.writer.Write(csiCursorHide)
	o.writer.Write(csiClear)
	return o.writer.Flush()
}

// ExitScreen restores the main screen, cursor, and default style
func (o *Writer) ExitScreen() error {
	o.writer.Write(csiReset)
	o.writer.Write(csiCursorShow)
	o.writer.Write(csiAltScreenExit)
	return o.writer.Flush()
}
