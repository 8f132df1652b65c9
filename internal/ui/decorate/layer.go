// Package decorate composes behavior layers around the visual bases in
// components. Layers are declared once per component kind with a Builder and
// validated when the definition is built; each rendered instance then owns
// its own layer state.
package decorate

import "fmt"

// Layer is one behavior wrapped around a base. The numeric order is the
// required nesting order, outermost first.
type Layer int

const (
	// Pure skips re-rendering when nothing observable changed.
	Pure Layer = iota
	// Toggleable owns selected state and flips it on activation.
	Toggleable
	// Spottable makes the component focusable.
	Spottable
	// Skinnable merges the active skin class.
	Skinnable
)

func (l Layer) String() string {
	switch l {
	case Pure:
		return "Pure"
	case Toggleable:
		return "Toggleable"
	case Spottable:
		return "Spottable"
	case Skinnable:
		return "Skinnable"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

func (l Layer) valid() bool {
	return l >= Pure && l <= Skinnable
}
