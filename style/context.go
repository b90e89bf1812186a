// Package style implements inline text styling: a markup tokenizer, marks
// that push and pop drawing attributes or move the cursor, a per-plane
// mark store addressable by absolute, edge-relative, and time-varying
// positions, and the state machine that replays marks over a text run to
// produce styled, positioned graphemes.
package style

import (
	"github.com/lixenwraith/textura/grid"
	"github.com/lixenwraith/textura/terminal"
	"github.com/lixenwraith/textura/transform"
)

// AttrID identifies one styleable attribute of the drawing context
type AttrID uint8

const (
	AttrChar AttrID = iota
	AttrForeground
	AttrBackground
	AttrEffects
	AttrDirection
	AttrFont
	AttrTransformer
)

// Attribute is one attribute value to push. ID selects which of the
// value fields is meaningful.
type Attribute struct {
	ID        AttrID
	Color     terminal.Color
	Effects   terminal.Attr
	Direction grid.Point
	Text      string
}

// Context is the drawing state a text run renders against. It is an
// explicit value passed by handle; nothing here is ambient or global.
// Char, when set, substitutes every rendered grapheme.
type Context struct {
	Char         string
	Fg           terminal.Color
	Bg           terminal.Color
	Effects      terminal.Attr
	Direction    grid.Point
	Font         string
	Transformers *transform.Container
}

// NewContext returns a context with flow to the right, surface-default
// colors, and an empty transformer pipeline.
func NewContext() *Context {
	return &Context{
		Fg:           terminal.Default,
		Bg:           terminal.Default,
		Direction:    grid.Right,
		Transformers: transform.NewContainer(),
	}
}

// Snapshot returns a copy of the current state. The transformer
// container is immutable, so a shallow copy is a full snapshot.
func (c *Context) Snapshot() Context {
	return *c
}

// Guard snapshots the context and returns the restore func, intended
// for defer at the top of a scoped render.
func (c *Context) Guard() func() {
	saved := *c
	return func() { *c = saved }
}

// apply writes one attribute value into the context
func (c *Context) apply(a Attribute) {
	switch a.ID {
	case AttrChar:
		c.Char = a.Text
	case AttrForeground:
		c.Fg = a.Color
	case AttrBackground:
		c.Bg = a.Color
	case AttrEffects:
		c.Effects = a.Effects
	case AttrDirection:
		c.Direction = a.Direction
	case AttrFont:
		c.Font = a.Text
	}
}
