package terminal

import "strings"

// Attr is a bitfield of terminal text attributes
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrike

	// AttrTransparent is not a terminal capability: it marks an effects
	// value that inherits whatever the destination cell already has.
	// Stripped before emission.
	AttrTransparent

	AttrNone Attr = 0
)

// attrNames maps markup effect names to bits. Unknown names resolve to 0.
var attrNames = map[string]Attr{
	"bold":          AttrBold,
	"dim":           AttrDim,
	"faint":         AttrDim,
	"italic":        AttrItalic,
	"underline":     AttrUnderline,
	"blink":         AttrBlink,
	"reverse":       AttrReverse,
	"strike":        AttrStrike,
	"strikethrough": AttrStrike,
	"transparent":   AttrTransparent,
}

// Has returns true if all bits in attr are set
func (a Attr) Has(attr Attr) bool {
	return a&attr == attr
}

// Transparent reports whether this effects value inherits the cell's effects
func (a Attr) Transparent() bool {
	return a&AttrTransparent != 0
}

// Concrete strips the transparent marker, leaving emittable bits
func (a Attr) Concrete() Attr {
	return a &^ AttrTransparent
}

// ParseAttr resolves a bar-separated effect list ("blink|underline").
// Unrecognized names contribute nothing, matching forward-compatible
// treatment of unknown markup values.
func ParseAttr(spec string) Attr {
	var a Attr
	for _, name := range strings.Split(spec, "|") {
		a |= attrNames[strings.TrimSpace(strings.ToLower(name))]
	}
	return a
}
