package sparkicon

import (
	"image"
	"math"
)

// Profile maps a normalized position t ∈ [0, 1] to an intensity in [0, 1].
// Values outside [0, 1] are clamped when the mask is built.
type Profile func(t float64) float64

// Quadratic eases in: t².
func Quadratic(t float64) float64 { return t * t }

// FadeOutQuadratic eases out from full intensity: (1−t)².
func FadeOutQuadratic(t float64) float64 { return (1 - t) * (1 - t) }

// Truncated scales p to [0, peak] and truncates it to a whole alpha level.
// A mask built from the result holds that level exactly, so applying it to
// an opaque layer yields alpha floor(peak·p(t)) with no further rounding.
func Truncated(p Profile, peak uint8) Profile {
	return func(t float64) float64 {
		return math.Floor(float64(peak)*p(t)) / 255
	}
}

// intensity converts a profile value to a mask byte.
func intensity(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// VerticalGradientMask returns a mask that is 255 above row y0, falls
// linearly to 0 at row y1 and stays 0 below. y1 must be greater than y0.
func VerticalGradientMask(width, height, y0, y1 int) *Mask {
	m := NewMask(width, height)
	span := float64(y1 - y0)
	for y := 0; y < height; y++ {
		var v uint8
		switch {
		case y < y0:
			v = 255
		case y >= y1 || span <= 0:
			v = 0
		default:
			v = uint8(255 * (1 - float64(y-y0)/span))
		}
		fillMaskRow(m, y, 0, width, v)
	}
	return m
}

// BandMask returns a mask that is zero outside rect. Inside, every row has
// the intensity profile(t) with t = (y − rect.Min.Y) / span, so t is 0 on the
// top row and reaches 1 span rows below it. A span of zero or less uses the
// height of rect.
func BandMask(width, height int, rect image.Rectangle, span float64, profile Profile) *Mask {
	m := NewMask(width, height)
	if span <= 0 {
		span = float64(rect.Dy())
	}
	top := rect.Min.Y
	rect = rect.Intersect(m.Bounds())
	if rect.Empty() {
		return m
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		fillMaskRow(m, y, rect.Min.X, rect.Max.X, intensity(profile(float64(y-top)/span)))
	}
	return m
}

// RadialMask returns a circular falloff around center: a pixel at distance
// d < radius gets intensity profile(1 − d/radius), pixels beyond get 0.
func RadialMask(width, height int, center Point, radius float64, profile Profile) *Mask {
	return SteppedRadialMask(width, height, center, radius, 0, profile)
}

// SteppedRadialMask is RadialMask with the falloff quantized into concentric
// rings step pixels apart, counted inward from radius. A pixel takes the
// value of the smallest ring that still encloses it. A step of zero or less
// gives the continuous falloff.
func SteppedRadialMask(width, height int, center Point, radius, step float64, profile Profile) *Mask {
	m := NewMask(width, height)
	if radius <= 0 {
		return m
	}
	bounds := image.Rect(
		int(math.Floor(center.X-radius)), int(math.Floor(center.Y-radius)),
		int(math.Ceil(center.X+radius))+1, int(math.Ceil(center.Y+radius))+1,
	).Intersect(m.Bounds())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := m.img.Pix[y*m.img.Stride:]
		dy := float64(y) + 0.5 - center.Y
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-center.X, dy)
			if d >= radius {
				continue
			}
			if step > 0 {
				d = ringRadius(d, radius, step)
			}
			row[x] = intensity(profile(1 - d/radius))
		}
	}
	return m
}

// ringRadius returns the smallest positive radius of the form radius − k·step
// that is not less than d.
func ringRadius(d, radius, step float64) float64 {
	r := radius - step*math.Floor((radius-d)/step)
	if r <= 0 {
		r += step
	}
	return r
}

// ShapeMask returns the anti-aliased coverage of s's interior.
func ShapeMask(width, height int, s Shape) *Mask {
	m := NewMask(width, height)
	shapeCoverage(m.img, s)
	return m
}

// fillMaskRow sets row y of m to v over columns [x0, x1).
func fillMaskRow(m *Mask, y, x0, x1 int, v uint8) {
	row := m.img.Pix[y*m.img.Stride+x0 : y*m.img.Stride+x1]
	for i := range row {
		row[i] = v
	}
}
