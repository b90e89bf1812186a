package transform

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/textura/terminal"
)

// Stop anchors a color at a position in [0,1] along a gradient
type Stop struct {
	At    float64
	Color terminal.RGB
}

// Gradient interpolates between color stops in HCL space, which keeps
// perceived lightness steady across the ramp.
type Gradient struct {
	stops []Stop
}

// NewGradient builds a gradient from at least one stop. Stops are sorted
// by position; queries outside the stop range clamp to the end colors.
func NewGradient(stops ...Stop) *Gradient {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return &Gradient{stops: sorted}
}

// At returns the gradient color at position t in [0,1]
func (g *Gradient) At(t float64) terminal.RGB {
	if len(g.stops) == 0 {
		return terminal.RGBBlack
	}
	if t <= g.stops[0].At {
		return g.stops[0].Color
	}
	last := g.stops[len(g.stops)-1]
	if t >= last.At {
		return last.Color
	}
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].At >= t })
	lo, hi := g.stops[i-1], g.stops[i]
	span := hi.At - lo.At
	if span <= 0 {
		return hi.Color
	}
	frac := (t - lo.At) / span
	blended := toColorful(lo.Color).BlendHcl(toColorful(hi.Color), frac).Clamped()
	return fromColorful(blended)
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) terminal.RGB {
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

// ForegroundGradient builds a transformer sweeping the gradient across
// the transformer's span. Unbounded spans sample the start color.
func ForegroundGradient(name string, g *Gradient) *Transformer {
	return &Transformer{
		Name: name,
		Foreground: func(env Env) terminal.Color {
			return terminal.FromRGB(g.At(env.Fraction()))
		},
	}
}
