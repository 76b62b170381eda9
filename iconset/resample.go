package iconset

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Resampler scales src to a size×size image.
type Resampler func(src image.Image, size int) image.Image

// Lanczos resamples with a three-lobe Lanczos filter. It is the default.
func Lanczos(src image.Image, size int) image.Image {
	return imaging.Resize(src, size, size, imaging.Lanczos)
}

// Interpolator adapts an x/image/draw interpolator, such as draw.CatmullRom
// or draw.ApproxBiLinear, to a Resampler.
func Interpolator(f draw.Interpolator) Resampler {
	return func(src image.Image, size int) image.Image {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		f.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
		return dst
	}
}
