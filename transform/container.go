package transform

import "github.com/lixenwraith/textura/grid"

// Active is a transformer bound into a text run: Start is the run index
// where it attached, Span the number of cells it covers (0 = open-ended).
type Active struct {
	T     *Transformer
	Start int
	Span  int
}

// covers reports whether the active span includes run index i
func (a Active) covers(i int) bool {
	if i < a.Start {
		return false
	}
	return a.Span == 0 || i < a.Start+a.Span
}

// Container is an immutable stack of active transformers. Mutations
// return a new container sharing nothing with the old one, so text runs
// can snapshot pipelines per position without copying on read.
type Container struct {
	items []Active
}

// NewContainer returns an empty pipeline
func NewContainer() *Container {
	return &Container{}
}

// Len returns the number of active transformers
func (c *Container) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Add returns a container with t appended, spanning span cells from start
func (c *Container) Add(t *Transformer, start, span int) *Container {
	items := make([]Active, 0, c.Len()+1)
	if c != nil {
		items = append(items, c.items...)
	}
	items = append(items, Active{T: t, Start: start, Span: span})
	return &Container{items: items}
}

// Remove returns a container with the topmost occurrence of t dropped
func (c *Container) Remove(t *Transformer) *Container {
	if c == nil {
		return NewContainer()
	}
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].T == t {
			items := make([]Active, 0, len(c.items)-1)
			items = append(items, c.items[:i]...)
			items = append(items, c.items[i+1:]...)
			return &Container{items: items}
		}
	}
	return c
}

// Expired returns a container with every span that ends at or before run
// index i dropped. Unbounded spans never expire.
func (c *Container) Expired(i int) *Container {
	if c == nil || len(c.items) == 0 {
		return c
	}
	keep := c.items[:0:0]
	for _, a := range c.items {
		if a.Span != 0 && i >= a.Start+a.Span {
			continue
		}
		keep = append(keep, a)
	}
	if len(keep) == len(c.items) {
		return c
	}
	return &Container{items: keep}
}

// Process pushes st through every active transformer covering run index
// idx, in attachment order.
func (c *Container) Process(st CellState, pos grid.Point, tick, idx int) CellState {
	if c == nil {
		return st
	}
	for _, a := range c.items {
		if !a.covers(idx) {
			continue
		}
		env := Env{
			Pos:   pos,
			Tick:  tick,
			Index: idx - a.Start,
			Len:   a.Span,
		}
		st = a.T.Apply(st, env)
	}
	return st
}
