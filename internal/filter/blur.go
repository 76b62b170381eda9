package filter

import (
	"image"
)

// BlurFilter applies separable Gaussian blur to a premultiplied RGBA image.
// The horizontal and vertical passes run independently, giving
// O(w*h*(rx+ry)) work instead of O(w*h*rx*ry).
type BlurFilter struct {
	// RadiusX is the horizontal blur radius (standard deviation) in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius (standard deviation) in pixels.
	RadiusY float64
}

// NewBlurFilter creates a new blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{RadiusX: radius, RadiusY: radius}
}

// NewBlurFilterXY creates a directional blur filter with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{RadiusX: radiusX, RadiusY: radiusY}
}

// ExpandBounds returns the region a blur of r can reach.
func (f *BlurFilter) ExpandBounds(r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return r
	}
	ex, ey := KernelExtent(f.RadiusX), KernelExtent(f.RadiusY)
	return image.Rect(r.Min.X-ex, r.Min.Y-ey, r.Max.X+ex, r.Max.Y+ey)
}

// Apply blurs src into dst within bounds. src and dst may be the same image.
// Pixels outside bounds are left untouched; reads past the image edge
// repeat the edge pixel.
func (f *BlurFilter) Apply(src, dst *image.RGBA, bounds image.Rectangle) {
	if src == nil || dst == nil {
		return
	}
	bounds = bounds.Intersect(src.Rect).Intersect(dst.Rect)
	if bounds.Empty() {
		return
	}

	width, height := bounds.Dx(), bounds.Dy()
	temp := make([]float32, width*height*4)

	// Pass 1: horizontal (src -> temp)
	blurHorizontal(src, temp, bounds, cachedKernel(f.RadiusX))

	// Pass 2: vertical (temp -> dst)
	blurVertical(temp, dst, bounds, cachedKernel(f.RadiusY))
}

// blurHorizontal convolves each row of bounds with kernel.
func blurHorizontal(src *image.RGBA, temp []float32, bounds image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	minX, maxX := src.Rect.Min.X, src.Rect.Max.X-1
	width := bounds.Dx()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := src.Pix[src.PixOffset(minX, y):]
		ti := (y - bounds.Min.Y) * width * 4

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, minX, maxX) - minX
				p := row[kx*4 : kx*4+4 : kx*4+4]
				r += float32(p[0]) * weight
				g += float32(p[1]) * weight
				b += float32(p[2]) * weight
				a += float32(p[3]) * weight
			}
			temp[ti+0] = r
			temp[ti+1] = g
			temp[ti+2] = b
			temp[ti+3] = a
			ti += 4
		}
	}
}

// blurVertical convolves each column of temp with kernel and writes dst.
// Rows past the bounds edge repeat the edge row.
func blurVertical(temp []float32, dst *image.RGBA, bounds image.Rectangle, kernel []float32) {
	half := len(kernel) / 2
	width, height := bounds.Dx(), bounds.Dy()

	for y := 0; y < height; y++ {
		out := dst.Pix[dst.PixOffset(bounds.Min.X, bounds.Min.Y+y):]

		for x := 0; x < width; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				ti := (ky*width + x) * 4
				r += temp[ti+0] * weight
				g += temp[ti+1] * weight
				b += temp[ti+2] * weight
				a += temp[ti+3] * weight
			}

			// Premultiplied channels may not exceed alpha.
			ca := clampUint8(a)
			out[x*4+0] = minByte(clampUint8(r), ca)
			out[x*4+1] = minByte(clampUint8(g), ca)
			out[x*4+2] = minByte(clampUint8(b), ca)
			out[x*4+3] = ca
		}
	}
}

// BlurAlpha applies a separable Gaussian blur to a single-channel image in
// place, with independent horizontal and vertical radii.
func BlurAlpha(img *image.Alpha, radiusX, radiusY float64) {
	if img == nil || img.Rect.Empty() {
		return
	}
	width, height := img.Rect.Dx(), img.Rect.Dy()
	buf := make([]float32, width*height)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for x, v := range row {
			buf[y*width+x] = float32(v)
		}
	}

	out := make([]float32, width*height)
	blurAlphaChannel(buf, out, width, height, radiusX, radiusY)

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width]
		for x := range row {
			row[x] = clampUint8(out[y*width+x])
		}
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and rounds to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}
