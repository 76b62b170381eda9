package sparkicon

import (
	"image/color"

	"github.com/coworktask/sparkicon/internal/blend"
)

// Common colors.
var (
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.NRGBA{A: 255}
	Transparent = color.NRGBA{}
)

// RGBA creates a straight-alpha color from 0-255 components.
func RGBA(r, g, b, a uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Gray creates an opaque gray.
func Gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// premultiplied converts a straight-alpha color to the canvas pixel format.
func premultiplied(c color.NRGBA) color.RGBA {
	r, g, b, a := blend.Premultiply(c.R, c.G, c.B, c.A)
	return color.RGBA{R: r, G: g, B: b, A: a}
}
