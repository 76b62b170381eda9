package iconset

import "fmt"

// Variant is one point size and scale factor of the icon set.
type Variant struct {
	Size  int // points
	Scale int // pixels per point
}

// Pixels returns the edge length of the variant's raster.
func (v Variant) Pixels() int { return v.Size * v.Scale }

// String returns the variant as it appears in filenames, e.g. "16x16@2x".
func (v Variant) String() string {
	return fmt.Sprintf("%dx%d@%dx", v.Size, v.Size, v.Scale)
}

// sizeLabel is the manifest size field, e.g. "16x16".
func (v Variant) sizeLabel() string { return fmt.Sprintf("%dx%d", v.Size, v.Size) }

// scaleLabel is the manifest scale field, e.g. "2x".
func (v Variant) scaleLabel() string { return fmt.Sprintf("%dx", v.Scale) }

// Variants returns the macOS app icon variants in manifest order:
// 16, 32, 128, 256 and 512 points, each at 1x and 2x.
func Variants() []Variant {
	sizes := []int{16, 32, 128, 256, 512}
	out := make([]Variant, 0, 2*len(sizes))
	for _, s := range sizes {
		out = append(out, Variant{Size: s, Scale: 1}, Variant{Size: s, Scale: 2})
	}
	return out
}
