package sparkicon

import (
	"math/rand/v2"
)

// NoiseLayer returns a sparse grain texture. Only pixels with even x and
// even y are touched; odd rows and columns stay transparent. Each touched
// pixel draws v uniformly from [−amplitude, amplitude] and becomes white
// (v > 0) or black (v ≤ 0) with alpha |v|.
//
// The generator is seeded from seed alone, so equal arguments give
// bit-identical layers.
func NoiseLayer(width, height, amplitude int, seed uint64) *Canvas {
	c := NewCanvas(width, height)
	if amplitude <= 0 {
		return c
	}
	if amplitude > 255 {
		amplitude = 255
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	for y := 0; y < height; y += 2 {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+width*4]
		for x := 0; x < width; x += 2 {
			v := rng.IntN(2*amplitude+1) - amplitude
			a := uint8(abs(v))
			var lum uint8 // premultiplied: white at alpha a is (a, a, a, a)
			if v > 0 {
				lum = a
			}
			row[x*4+0] = lum
			row[x*4+1] = lum
			row[x*4+2] = lum
			row[x*4+3] = a
		}
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
