package filter

import (
	"image"
	"image/color"
	"math"
)

// DropShadowFilter renders the soft shadow cast by an image.
// The filter extracts the alpha channel, offsets it, blurs it and
// colorizes it. Unlike a full drop-shadow effect it writes only the
// shadow, so the caller decides where it goes in the layer stack.
type DropShadowFilter struct {
	// OffsetX is the horizontal shadow offset in pixels.
	OffsetX float64

	// OffsetY is the vertical shadow offset in pixels.
	OffsetY float64

	// BlurRadius is the shadow blur radius in pixels.
	BlurRadius float64

	// Color is the shadow color; its alpha scales the shadow density.
	Color color.NRGBA
}

// NewDropShadowFilter creates a new drop shadow filter.
func NewDropShadowFilter(offsetX, offsetY, blurRadius float64, c color.NRGBA) *DropShadowFilter {
	return &DropShadowFilter{
		OffsetX:    offsetX,
		OffsetY:    offsetY,
		BlurRadius: blurRadius,
		Color:      c,
	}
}

// Apply writes the shadow of src into dst. dst is overwritten across the
// intersection of both images; src and dst must not be the same image.
//
// The algorithm:
//  1. Extract alpha channel from src, shifted by the offset
//  2. Apply Gaussian blur to the alpha
//  3. Colorize with the shadow color (premultiplied)
func (f *DropShadowFilter) Apply(src, dst *image.RGBA) {
	if src == nil || dst == nil {
		return
	}
	bounds := src.Rect.Intersect(dst.Rect)
	if bounds.Empty() {
		return
	}
	width, height := bounds.Dx(), bounds.Dy()

	alpha := make([]float32, width*height)
	extractAlpha(src, alpha, bounds, int(math.Round(f.OffsetX)), int(math.Round(f.OffsetY)))

	if f.BlurRadius > 0 {
		blurred := make([]float32, width*height)
		blurAlphaChannel(alpha, blurred, width, height, f.BlurRadius, f.BlurRadius)
		alpha = blurred
	}

	colorize(dst, alpha, bounds, f.Color)
}

// extractAlpha copies the alpha channel of src into a float32 buffer,
// normalized to [0, 1]. The buffer pixel at (x, y) reads the source at
// (x - offsetX, y - offsetY), so the shadow moves by the offset.
func extractAlpha(src *image.RGBA, alpha []float32, bounds image.Rectangle, offsetX, offsetY int) {
	width := bounds.Dx()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		srcY := y - offsetY
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			srcX := x - offsetX
			i := (y-bounds.Min.Y)*width + (x - bounds.Min.X)
			if !(image.Point{X: srcX, Y: srcY}).In(src.Rect) {
				alpha[i] = 0
				continue
			}
			alpha[i] = float32(src.Pix[src.PixOffset(srcX, srcY)+3]) / 255
		}
	}
}

// blurAlphaChannel applies Gaussian blur to a single-channel buffer.
func blurAlphaChannel(src, dst []float32, width, height int, radiusX, radiusY float64) {
	kernelX := cachedKernel(radiusX)
	kernelY := cachedKernel(radiusY)
	halfX, halfY := len(kernelX)/2, len(kernelY)/2

	temp := make([]float32, width*height)

	// Horizontal pass
	for y := 0; y < height; y++ {
		row := src[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernelX {
				sum += row[clampInt(x+k-halfX, 0, width-1)] * weight
			}
			temp[y*width+x] = sum
		}
	}

	// Vertical pass
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernelY {
				sum += temp[clampInt(y+k-halfY, 0, height-1)*width+x] * weight
			}
			dst[y*width+x] = sum
		}
	}
}

// colorize writes the premultiplied shadow color scaled by alpha into dst.
func colorize(dst *image.RGBA, alpha []float32, bounds image.Rectangle, c color.NRGBA) {
	width := bounds.Dx()
	baseA := float32(c.A) / 255

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		out := dst.Pix[dst.PixOffset(bounds.Min.X, y):]
		for x := 0; x < width; x++ {
			a := alpha[(y-bounds.Min.Y)*width+x] * baseA
			out[x*4+0] = clampUint8(float32(c.R) * a)
			out[x*4+1] = clampUint8(float32(c.G) * a)
			out[x*4+2] = clampUint8(float32(c.B) * a)
			out[x*4+3] = clampUint8(a * 255)
		}
	}
}
