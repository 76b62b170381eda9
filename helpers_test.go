package sparkicon

import (
	"image/color"
	"testing"
)

// filled returns a canvas cleared to col.
func filled(w, h int, col color.NRGBA) *Canvas {
	c := NewCanvas(w, h)
	c.Clear(col)
	return c
}

// near reports whether a and b differ by at most tol.
func near(a, b, tol uint8) bool {
	if a > b {
		return a-b <= tol
	}
	return b-a <= tol
}

func assertPixel(t *testing.T, c *Canvas, x, y int, want color.RGBA, tol uint8) {
	t.Helper()
	got := c.PixelAt(x, y)
	if !near(got.R, want.R, tol) || !near(got.G, want.G, tol) ||
		!near(got.B, want.B, tol) || !near(got.A, want.A, tol) {
		t.Errorf("pixel (%d,%d) = %v, want %v (±%d)", x, y, got, want, tol)
	}
}
