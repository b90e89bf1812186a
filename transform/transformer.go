// Package transform provides per-cell styling pipelines. A Transformer
// rewrites one or more channels of a rendered cell as a function of its
// position, animation tick, and place in a text run; containers stack
// transformers so spans of marked-up text carry their own pipelines.
package transform

import (
	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/terminal"
)

// CellState is the styled payload a transformer pipeline operates on
type CellState struct {
	Char    string
	Fg      terminal.Color
	Bg      terminal.Color
	Effects terminal.Attr
}

// Env carries the context a channel function may depend on. Index and Len
// are relative to the transformer's span inside a text run; Len is 0 when
// the span is unbounded.
type Env struct {
	Pos    grid.Point
	Tick   int
	Index  int
	Len    int
	Source CellState
}

// Fraction returns Index/(Len-1) in [0,1], or 0 for unbounded spans.
// Handy for gradients that sweep a span once.
func (e Env) Fraction() float64 {
	if e.Len <= 1 {
		return 0
	}
	return float64(e.Index) / float64(e.Len-1)
}

// Transformer rewrites cell channels. Nil channel functions pass the
// channel through unchanged.
type Transformer struct {
	Name       string
	Char       func(Env) string
	Foreground func(Env) terminal.Color
	Background func(Env) terminal.Color
	Effects    func(Env) terminal.Attr
}

// Apply runs the transformer's channels over st. The source state is
// exposed unmodified through env so channels can depend on each other's
// inputs without ordering effects.
func (t *Transformer) Apply(st CellState, env Env) CellState {
	env.Source = st
	out := st
	if t.Char != nil {
		out.Char = t.Char(env)
	}
	if t.Foreground != nil {
		out.Fg = t.Foreground(env)
	}
	if t.Background != nil {
		out.Bg = t.Background(env)
	}
	if t.Effects != nil {
		out.Effects = t.Effects(env)
	}
	return out
}
