package sparkicon

import (
	"fmt"

	"github.com/coworktask/sparkicon/internal/blend"
)

// Composite draws layers onto dst with the source-over operator, in order:
// later layers land on top of earlier ones.
//
// Fully transparent layer pixels leave dst unchanged, fully opaque ones
// replace it, and translucent ones blend in proportion to their alpha.
// Every layer must match dst's dimensions; on mismatch nothing after the
// offending layer is drawn.
func Composite(dst *Canvas, layers ...*Canvas) error {
	for i, layer := range layers {
		if layer.Width() != dst.Width() || layer.Height() != dst.Height() {
			return fmt.Errorf("layer %d is %dx%d, canvas is %dx%d: %w",
				i, layer.Width(), layer.Height(), dst.Width(), dst.Height(), ErrSizeMismatch)
		}
		over(dst, layer)
	}
	return nil
}

// over composites src onto dst row by row.
func over(dst, src *Canvas) {
	w := dst.Width() * 4
	for y := 0; y < dst.Height(); y++ {
		s := src.img.Pix[y*src.img.Stride : y*src.img.Stride+w]
		if blend.Transparent(s) {
			continue
		}
		blend.SourceOverSpan(dst.img.Pix[y*dst.img.Stride:y*dst.img.Stride+w], s)
	}
}
