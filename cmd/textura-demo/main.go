// textura-demo runs an animated markup scene on a tcell screen. The
// scene comes from a TOML file, or a builtin one when no file is given.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/textura/canvas"
	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/style"
	"github.com/lixenwraith/textura/terminal"
	"github.com/lixenwraith/textura/text"
)

// Scene is the demo configuration
type Scene struct {
	FPS        int    `toml:"fps"`
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Items      []Item `toml:"item"`
}

// Item is one piece of text in the scene
type Item struct {
	X       int    `toml:"x"`
	Y       int    `toml:"y"`
	Markup  string `toml:"markup"`
	Sweep   bool   `toml:"sweep"`
	SweepBy string `toml:"sweep_color"`
}

var builtinScene = Scene{
	FPS:        12,
	Background: "#101020",
	Items: []Item{
		{X: 2, Y: 1, Markup: "[color:yellow][effect:bold]textura[/effect][/color] styled text demo"},
		{X: 2, Y: 3, Markup: "[transformer: cycle]rainbow pipeline over a text run"},
		{X: 2, Y: 5, Markup: "marks can [color:red]push[/color], [background:blue]layer[/background] and [2,+2]teleport", Sweep: true, SweepBy: "#00ff88"},
	},
}

func main() {
	var scenePath string
	log.SetFlags(0)
	log.SetPrefix("textura-demo: ")

	flag.StringVar(&scenePath, "scene", "", "TOML scene file (builtin scene when empty)")
	flag.Parse()

	scene := builtinScene
	if scenePath != "" {
		data, err := os.ReadFile(scenePath)
		if err != nil {
			log.Fatalf("reading scene: %v", err)
		}
		scene = Scene{FPS: builtinScene.FPS}
		if err := toml.Unmarshal(data, &scene); err != nil {
			log.Fatalf("parsing scene: %v", err)
		}
	}
	if scene.FPS < 1 {
		scene.FPS = 1
	}

	if err := run(scene); err != nil {
		log.Fatal(err)
	}
}

func run(scene Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	c := canvas.New(w, h)
	applySceneColors(c, scene)
	plane := text.New(c, text.Chars)

	if err := populate(plane, scene); err != nil {
		return err
	}

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	frame := time.NewTicker(time.Second / time.Duration(scene.FPS))
	defer frame.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					close(quit)
					return nil
				}
			case *tcell.EventResize:
				w, h = ev.Size()
				c.Resize(w, h)
				plane.Refresh()
				screen.Sync()
			}
		case <-frame.C:
			if err := plane.Update(); err != nil {
				close(quit)
				return err
			}
			c.FlushTcell(screen)
			screen.Show()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func applySceneColors(c *canvas.Canvas, scene Scene) {
	if scene.Background != "" {
		if col, err := terminal.ParseColor(scene.Background); err == nil {
			c.DefaultBg = col
		}
	}
	if scene.Foreground != "" {
		if col, err := terminal.ParseColor(scene.Foreground); err == nil {
			c.DefaultFg = col
		}
	}
}

// populate prints every scene item. Swept items carry a special mark
// that walks a highlight color across the run, one step per tick.
func populate(plane *text.TextPlane, scene Scene) error {
	for _, item := range scene.Items {
		if !item.Sweep {
			if err := plane.PrintAt(grid.Point{X: item.X, Y: item.Y}, item.Markup); err != nil {
				return err
			}
			continue
		}
		parsed, err := style.NewTokenizer(item.Markup).Parse()
		if err != nil {
			return err
		}
		col := terminal.NewColor(0, 255, 136)
		if item.SweepBy != "" {
			if parsedCol, err := terminal.ParseColor(item.SweepBy); err == nil {
				col = parsedCol
			}
		}
		seq := style.NewStyledSequence(parsed, plane, plane.Context(), grid.Point{X: item.X, Y: item.Y})
		seq.AddSpecial(&style.SpecialMark{
			Mark: style.Mark{Attributes: []style.Attribute{{ID: style.AttrForeground, Color: col}}},
			Index: func(tick, textLen int) int {
				if textLen == 0 {
					return 0
				}
				return tick % textLen
			},
		})
		seq.AddSpecial(&style.SpecialMark{
			Mark: style.Mark{Pops: []style.AttrID{style.AttrForeground}},
			Index: func(tick, textLen int) int {
				if textLen == 0 {
					return 0
				}
				return tick%textLen + 1
			},
		})
		if err := plane.WriteSequence(seq); err != nil {
			return err
		}
	}
	return nil
}
