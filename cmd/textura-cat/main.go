// textura-cat renders markup text to stdout, optionally animating
// tick-driven marks for a fixed number of frames.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/textura/canvas"
	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/terminal"
	"github.com/lixenwraith/textura/text"
)

func main() {
	var (
		colorStr string
		resStr   string
		width    int
		height   int
		ticks    int
		fps      int
	)

	log.SetFlags(0)
	log.SetPrefix("textura-cat: ")

	flag.StringVar(&colorStr, "c", "auto", "Color depth: 'auto', 'mono', '256', or 'true'")
	flag.StringVar(&resStr, "r", "chars", "Resolution: 'chars', 'block', 'square', 'quadrant', 'sextant', or 'braille'")
	flag.IntVar(&width, "w", 80, "Canvas width in cells")
	flag.IntVar(&height, "h", 24, "Canvas height in cells")
	flag.IntVar(&ticks, "ticks", 0, "Animate this many frames instead of printing once")
	flag.IntVar(&fps, "fps", 10, "Frames per second when animating")
	flag.Parse()

	markup, err := readMarkup()
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	if markup == "" {
		fmt.Fprintln(os.Stderr, "Usage: textura-cat [options] <markup...>  (or markup on stdin)")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	mode := terminal.DetectColorMode()
	switch colorStr {
	case "auto":
	case "mono", "no":
		mode = terminal.ColorModeMono
	case "256", "8":
		mode = terminal.ColorMode256
	case "true", "truecolor", "24":
		mode = terminal.ColorModeTrueColor
	default:
		log.Fatalf("unknown color mode %q", colorStr)
	}

	res, ok := resolutionByName(resStr)
	if !ok {
		log.Fatalf("unknown resolution %q", resStr)
	}

	c := canvas.New(width, height)
	plane := text.New(c, res)
	if err := plane.PrintAt(grid.Point{}, markup); err != nil {
		log.Fatalf("rendering: %v", err)
	}

	if ticks <= 0 {
		if err := c.Dump(os.Stdout, mode); err != nil {
			log.Fatalf("writing output: %v", err)
		}
		return
	}

	if err := animate(c, plane, mode, ticks, fps); err != nil {
		log.Fatalf("animating: %v", err)
	}
}

func readMarkup() (string, error) {
	if flag.NArg() > 0 {
		out := ""
		for i, arg := range flag.Args() {
			if i > 0 {
				out += " "
			}
			out += arg
		}
		return out, nil
	}
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func resolutionByName(name string) (text.Resolution, bool) {
	switch name {
	case "chars", "1":
		return text.Chars, true
	case "block":
		return text.Block, true
	case "square":
		return text.Square, true
	case "quadrant":
		return text.Quadrant, true
	case "sextant":
		return text.Sextant, true
	case "braille":
		return text.Braille, true
	}
	return text.Resolution{}, false
}

func animate(c *canvas.Canvas, plane *text.TextPlane, mode terminal.ColorMode, ticks, fps int) error {
	if fps < 1 {
		fps = 1
	}
	w := terminal.NewWriter(os.Stdout, mode)
	if err := w.EnterScreen(); err != nil {
		return err
	}
	defer w.ExitScreen()

	frame := time.NewTicker(time.Second / time.Duration(fps))
	defer frame.Stop()

	for i := 0; i < ticks; i++ {
		if err := c.Flush(w); err != nil {
			return err
		}
		<-frame.C
		if err := plane.Update(); err != nil {
			return err
		}
	}
	return nil
}
