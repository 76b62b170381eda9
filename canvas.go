package sparkicon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/coworktask/sparkicon/internal/blend"
	"github.com/coworktask/sparkicon/internal/filter"
)

// Canvas is a premultiplied RGBA8 pixel buffer.
//
// A Canvas is owned by whoever is building it: renderers mutate only the
// canvas they are given, and a layer is dropped once composited.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// RGBA returns an image.RGBA view sharing the canvas pixels.
// Drawing into the view draws into the canvas.
func (c *Canvas) RGBA() *image.RGBA { return c.img }

// Pix returns the raw premultiplied pixel data.
func (c *Canvas) Pix() []uint8 { return c.img.Pix }

// SetPixel replaces a single pixel with the straight-alpha color col.
// Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, premultiplied(col))
}

// PixelAt returns the premultiplied pixel at (x, y).
// Returns transparent black outside the canvas.
func (c *Canvas) PixelAt(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col color.NRGBA) {
	if len(c.img.Pix) == 0 {
		return
	}
	p := premultiplied(col)
	row := c.img.Pix[:c.Width()*4]
	for i := 0; i < len(row); i += 4 {
		row[i+0] = p.R
		row[i+1] = p.G
		row[i+2] = p.B
		row[i+3] = p.A
	}
	c.replicateRow(0, 1, c.Height())
}

// FillRows paints every row with the color returned by fn for that row.
// fn is called once per row; rows with an unchanged color are copied.
func (c *Canvas) FillRows(fn func(y int) color.NRGBA) {
	w := c.Width()
	var prev color.RGBA
	for y := 0; y < c.Height(); y++ {
		p := premultiplied(fn(y))
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+w*4]
		if y > 0 && p == prev {
			copy(row, c.img.Pix[(y-1)*c.img.Stride:(y-1)*c.img.Stride+w*4])
			continue
		}
		for i := 0; i < len(row); i += 4 {
			row[i+0] = p.R
			row[i+1] = p.G
			row[i+2] = p.B
			row[i+3] = p.A
		}
		prev = p
	}
}

// replicateRow copies row src into rows [from, to).
func (c *Canvas) replicateRow(src, from, to int) {
	w := c.Width() * 4
	s := c.img.Pix[src*c.img.Stride : src*c.img.Stride+w]
	for y := from; y < to; y++ {
		copy(c.img.Pix[y*c.img.Stride:y*c.img.Stride+w], s)
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	clone := NewCanvas(c.Width(), c.Height())
	copy(clone.img.Pix, c.img.Pix)
	return clone
}

// ContentBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. It is empty for a fully transparent canvas.
func (c *Canvas) ContentBounds() image.Rectangle {
	var r image.Rectangle
	w := c.Width()
	for y := 0; y < c.Height(); y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+w*4]
		first, last := -1, -1
		for x := 0; x < w; x++ {
			if row[x*4+3] != 0 {
				if first < 0 {
					first = x
				}
				last = x
			}
		}
		if first >= 0 {
			r = r.Union(image.Rect(first, y, last+1, y+1))
		}
	}
	return r
}

// Opaque reports whether every pixel has alpha 255.
func (c *Canvas) Opaque() bool {
	return c.img.Opaque()
}

// ApplyMask scales every pixel's alpha by the mask intensity: 0 suppresses
// the pixel, 255 leaves it unchanged. Color channels scale with alpha
// because the canvas is premultiplied.
func (c *Canvas) ApplyMask(m *Mask) error {
	return c.maskWith(m, blend.ModeDestinationIn, "apply")
}

// Erase is the complement of ApplyMask: it removes each pixel in
// proportion to the mask intensity, so 255 clears the pixel and 0 keeps it.
func (c *Canvas) Erase(m *Mask) error {
	return c.maskWith(m, blend.ModeDestinationOut, "erase")
}

func (c *Canvas) maskWith(m *Mask, mode blend.Mode, verb string) error {
	if m.Width() != c.Width() || m.Height() != c.Height() {
		return fmt.Errorf("%s %dx%d mask to %dx%d canvas: %w",
			verb, m.Width(), m.Height(), c.Width(), c.Height(), ErrSizeMismatch)
	}
	w := c.Width()
	for y := 0; y < c.Height(); y++ {
		blend.MaskSpan(
			c.img.Pix[y*c.img.Stride:y*c.img.Stride+w*4],
			m.img.Pix[y*m.img.Stride:y*m.img.Stride+w],
			mode,
		)
	}
	return nil
}

// Blur applies a Gaussian blur with the given radius (standard deviation)
// to the whole canvas in place.
func (c *Canvas) Blur(radius float64) {
	c.BlurXY(radius, radius)
}

// BlurXY applies a directional Gaussian blur with independent horizontal
// and vertical radii. Only the region the content can reach is processed.
func (c *Canvas) BlurXY(radiusX, radiusY float64) {
	if radiusX <= 0 && radiusY <= 0 {
		return
	}
	f := filter.NewBlurFilterXY(radiusX, radiusY)
	f.Apply(c.img, c.img, f.ExpandBounds(c.ContentBounds()))
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
