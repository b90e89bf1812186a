package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// Color prefixes
	csiFg256     = []byte("\x1b[38;5;") // followed by N;m
	csiBg256     = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB     = []byte("\x1b[48;2;") // followed by R;G;B;m
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")

	// Attribute sequences
	csiAttrBold      = []byte("\x1b[1m")
	csiAttrDim       = []byte("\x1b[2m")
	csiAttrItalic    = []byte("\x1b[3m")
	csiAttrUnderline = []byte("\x1b[4m")
	csiAttrBlink     = []byte("\x1b[5m")
	csiAttrReverse   = []byte("\x1b[7m")
	csiAttrStrike    = []byte("\x1b[9m")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward writes cursor forward N positions
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write([]byte("\x1b[C"))
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('C')
}

// writeFg emits the foreground color sequence for the given mode
func writeFg(w *bufio.Writer, c Color, mode ColorMode) {
	if mode == ColorModeMono {
		return
	}
	switch c.Kind {
	case KindDefault, KindTransparent:
		w.Write(csiDefaultFg)
	case KindRGB:
		if mode == ColorModeTrueColor {
			w.Write(csiFgRGB)
			writeInt(w, int(c.Val.R))
			w.WriteByte(';')
			writeInt(w, int(c.Val.G))
			w.WriteByte(';')
			writeInt(w, int(c.Val.B))
			w.WriteByte('m')
		} else {
			w.Write(csiFg256)
			writeInt(w, int(Index256(c.Val)))
			w.WriteByte('m')
		}
	}
}

// writeBg emits the background color sequence for the given mode
func writeBg(w *bufio.Writer, c Color, mode ColorMode) {
	if mode == ColorModeMono {
		return
	}
	switch c.Kind {
	case KindDefault, KindTransparent:
		w.Write(csiDefaultBg)
	case KindRGB:
		if mode == ColorModeTrueColor {
			w.Write(csiBgRGB)
			writeInt(w, int(c.Val.R))
			w.WriteByte(';')
			writeInt(w, int(c.Val.G))
			w.WriteByte(';')
			writeInt(w, int(c.Val.B))
			w.WriteByte('m')
		} else {
			w.Write(csiBg256)
			writeInt(w, int(Index256(c.Val)))
			w.WriteByte('m')
		}
	}
}

// WriteSGR emits a full style change: reset followed by attributes and
// colors. Used by plain (non-diffing) renderers.
func WriteSGR(w *bufio.Writer, fg, bg Color, attr Attr, mode ColorMode) {
	w.Write(csiReset)
	writeAttrs(w, attr)
	writeFg(w, fg, mode)
	writeBg(w, bg, mode)
}

// WriteSGRReset emits a bare style reset
func WriteSGRReset(w *bufio.Writer) {
	w.Write(csiReset)
}

// writeAttrs emits attribute sequences for every set bit
func writeAttrs(w *bufio.Writer, a Attr) {
	a = a.Concrete()
	if a&AttrBold != 0 {
		w.Write(csiAttrBold)
	}
	if a&AttrDim != 0 {
		w.Write(csiAttrDim)
	}
	if a&AttrItalic != 0 {
		w.Write(csiAttrItalic)
	}
	if a&AttrUnderline != 0 {
		w.Write(csiAttrUnderline)
	}
	if a&AttrBlink != 0 {
		w.Write(csiAttrBlink)
	}
	if a&AttrReverse != 0 {
		w.Write(csiAttrReverse)
	}
	if a&AttrStrike != 0 {
		w.Write(csiAttrStrike)
	}
}
