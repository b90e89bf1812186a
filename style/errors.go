package style

import (
	"errors"
	"fmt"
)

// ErrRenderReentrancy reports a mark replay that restarted itself, which
// only happens with a pathological mark configuration.
var ErrRenderReentrancy = errors.New("mark replay loop detected")

// MarkupError reports malformed markup. Offset is the byte offset of the
// offending token in the raw input.
type MarkupError struct {
	Offset int
	Token  string
	Reason string
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("markup error at offset %d in [%s]: %s", e.Offset, e.Token, e.Reason)
}
