package sparkicon

import (
	"fmt"
	"image"

	"github.com/coworktask/sparkicon/internal/blend"
	"github.com/coworktask/sparkicon/internal/filter"
)

// Mask is a single-channel intensity raster used to gate a layer's alpha.
// Values range from 0 (suppress) to 255 (keep).
type Mask struct {
	img *image.Alpha
}

// NewMask creates a new mask with all values 0.
func NewMask(width, height int) *Mask {
	return &Mask{img: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// NewMaskFilled creates a new mask with all values set to v.
func NewMaskFilled(width, height int, v uint8) *Mask {
	m := NewMask(width, height)
	m.Fill(v)
	return m
}

// Alpha returns an image.Alpha view sharing the mask data.
func (m *Mask) Alpha() *image.Alpha { return m.img }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle { return m.img.Rect }

// Width returns the mask width.
func (m *Mask) Width() int { return m.img.Rect.Dx() }

// Height returns the mask height.
func (m *Mask) Height() int { return m.img.Rect.Dy() }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	return m.img.AlphaAt(x, y).A
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, v uint8) {
	if !(image.Point{X: x, Y: y}).In(m.img.Rect) {
		return
	}
	m.img.Pix[m.img.PixOffset(x, y)] = v
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(v uint8) {
	for i := range m.img.Pix {
		m.img.Pix[i] = v
	}
}

// Invert inverts all mask values (255 - value).
func (m *Mask) Invert() {
	for i, v := range m.img.Pix {
		m.img.Pix[i] = 255 - v
	}
}

// Multiply intersects m with o in place: each value becomes m*o/255.
func (m *Mask) Multiply(o *Mask) error {
	if o.Width() != m.Width() || o.Height() != m.Height() {
		return fmt.Errorf("multiply %dx%d mask by %dx%d mask: %w",
			m.Width(), m.Height(), o.Width(), o.Height(), ErrSizeMismatch)
	}
	for i, v := range o.img.Pix {
		m.img.Pix[i] = blend.MulDiv255(m.img.Pix[i], v)
	}
	return nil
}

// Blur softens the mask with a directional Gaussian blur.
func (m *Mask) Blur(radiusX, radiusY float64) {
	filter.BlurAlpha(m.img, radiusX, radiusY)
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.Width(), m.Height())
	copy(clone.img.Pix, m.img.Pix)
	return clone
}
