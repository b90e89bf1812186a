package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind tags the three ways a drawing color can be specified
type ColorKind uint8

const (
	// KindRGB is a concrete 24-bit value
	KindRGB ColorKind = iota
	// KindDefault resolves to the owning surface's default color for the
	// channel it is applied to (foreground or background)
	KindDefault
	// KindTransparent inherits whatever the destination cell already holds
	KindTransparent
)

// Color is a drawing color: concrete RGB, surface default, or transparent
type Color struct {
	Kind ColorKind
	Val  RGB
}

var (
	// Default is the surface-default color sentinel
	Default = Color{Kind: KindDefault}
	// Transparent preserves the destination cell's existing value
	Transparent = Color{Kind: KindTransparent}
)

// FromRGB wraps a concrete RGB value
func FromRGB(c RGB) Color {
	return Color{Kind: KindRGB, Val: c}
}

// NewColor builds a concrete color from components
func NewColor(r, g, b uint8) Color {
	return Color{Kind: KindRGB, Val: RGB{r, g, b}}
}

// Concrete reports whether the color carries an RGB value
func (c Color) Concrete() bool {
	return c.Kind == KindRGB
}

func (c Color) String() string {
	switch c.Kind {
	case KindDefault:
		return "default"
	case KindTransparent:
		return "transparent"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.Val.R, c.Val.G, c.Val.B)
}

// colorNames covers the CSS basic palette plus a few common extras.
// Matches are case-insensitive.
var colorNames = map[string]RGB{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"lime":    {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"aqua":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"fuchsia": {255, 0, 255},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"silver":  {192, 192, 192},
	"maroon":  {128, 0, 0},
	"olive":   {128, 128, 0},
	"navy":    {0, 0, 128},
	"teal":    {0, 128, 128},
	"purple":  {128, 0, 128},
	"orange":  {255, 165, 0},
	"brown":   {165, 42, 42},
	"pink":    {255, 192, 203},
}

// ParseColor resolves a color spelled as a name ("red"), the sentinels
// "default"/"transparent", a hex literal ("#f80", "#ff8800"), or a numeric
// triplet "(r, g, b)" with either 0-255 ints or 0-1 floats.
func ParseColor(spec string) (Color, error) {
	s := strings.TrimSpace(strings.ToLower(spec))
	switch s {
	case "default":
		return Default, nil
	case "transparent":
		return Transparent, nil
	}

	if rgb, ok := colorNames[s]; ok {
		return FromRGB(rgb), nil
	}

	if strings.HasPrefix(s, "#") {
		if len(s) == 4 { // #rgb shorthand
			s = "#" + strings.Repeat(string(s[1]), 2) +
				strings.Repeat(string(s[2]), 2) +
				strings.Repeat(string(s[3]), 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("terminal: bad hex color %q: %w", spec, err)
		}
		r, g, b := c.RGB255()
		return NewColor(r, g, b), nil
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return parseTriplet(s[1 : len(s)-1])
	}

	return Color{}, fmt.Errorf("terminal: unknown color %q", spec)
}

// parseTriplet handles "(r, g, b)" components: 0-255 integers, or floats
// in [0, 1] when any component contains a decimal point
func parseTriplet(body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("terminal: color triplet needs 3 components, got %d", len(parts))
	}
	var vals [3]float64
	var isFloat bool
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.Contains(p, ".") {
			isFloat = true
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Color{}, fmt.Errorf("terminal: bad color component %q: %w", p, err)
		}
		vals[i] = v
	}
	scale := 1.0
	if isFloat {
		scale = 255.0
	}
	clamp := func(v float64) uint8 {
		v *= scale
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v + 0.5)
	}
	return NewColor(clamp(vals[0]), clamp(vals[1]), clamp(vals[2])), nil
}
