package transform

import (
	"strings"
	"sync"

	"github.com/lixenwraith/textura/terminal"
)

// The library maps markup names to transformers so text can attach a
// pipeline by name. Registration replaces silently, letting programs
// shadow the builtins.
var (
	libMu   sync.RWMutex
	library = map[string]*Transformer{}
)

// Register stores t in the library under name
func Register(name string, t *Transformer) {
	libMu.Lock()
	defer libMu.Unlock()
	library[name] = t
}

// Lookup returns the transformer registered under name
func Lookup(name string) (*Transformer, bool) {
	libMu.RLock()
	defer libMu.RUnlock()
	t, ok := library[name]
	return t, ok
}

// rainbow is the cycle builtin's palette
var rainbow = NewGradient(
	Stop{At: 0, Color: terminal.RGB{R: 255}},
	Stop{At: 1.0 / 6, Color: terminal.RGB{R: 255, G: 165}},
	Stop{At: 2.0 / 6, Color: terminal.RGB{R: 255, G: 255}},
	Stop{At: 3.0 / 6, Color: terminal.RGB{G: 255}},
	Stop{At: 4.0 / 6, Color: terminal.RGB{B: 255}},
	Stop{At: 5.0 / 6, Color: terminal.RGB{R: 139, B: 255}},
	Stop{At: 1, Color: terminal.RGB{R: 255}},
)

const cyclePeriod = 24

func init() {
	Register("upper", &Transformer{
		Name: "upper",
		Char: func(env Env) string { return strings.ToUpper(env.Source.Char) },
	})
	Register("lower", &Transformer{
		Name: "lower",
		Char: func(env Env) string { return strings.ToLower(env.Source.Char) },
	})
	Register("invert", &Transformer{
		Name: "invert",
		Effects: func(env Env) terminal.Attr {
			return env.Source.Effects ^ terminal.AttrReverse
		},
	})
	// cycle shifts a rainbow along the span one step per tick
	Register("cycle", &Transformer{
		Name: "cycle",
		Foreground: func(env Env) terminal.Color {
			phase := (env.Index + env.Tick) % cyclePeriod
			if phase < 0 {
				phase += cyclePeriod
			}
			return terminal.FromRGB(rainbow.At(float64(phase) / float64(cyclePeriod-1)))
		},
	})
}
