// Package blend implements the Porter-Duff operators used to stack icon layers.
//
// All operations work with premultiplied alpha values in the range 0-255,
// the same layout as image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a compositing operator.
type Mode uint8

const (
	// ModeSourceOver draws the source on top of the destination.
	ModeSourceOver Mode = iota
	// ModeDestinationIn keeps the destination where the source is opaque.
	ModeDestinationIn
	// ModeDestinationOut keeps the destination where the source is transparent.
	ModeDestinationOut
)

// String returns the CSS-style operator name.
func (m Mode) String() string {
	switch m {
	case ModeSourceOver:
		return "source-over"
	case ModeDestinationIn:
		return "destination-in"
	case ModeDestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// Func is the signature for per-pixel blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the blend function for the given mode.
// Returns SourceOver for unknown modes.
func FuncFor(mode Mode) Func {
	switch mode {
	case ModeDestinationIn:
		return DestinationIn
	case ModeDestinationOut:
		return DestinationOut
	default:
		return SourceOver
	}
}
