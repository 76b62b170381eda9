package filter

import (
	"image"
	"image/color"
	"testing"
)

func TestDropShadowNoBlurOffsets(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.SetRGBA(2, 2, color.RGBA{R: 255, A: 255})
	dst := image.NewRGBA(src.Rect)

	f := NewDropShadowFilter(3, 4, 0, color.NRGBA{A: 255})
	f.Apply(src, dst)

	if got := dst.RGBAAt(5, 6); got != (color.RGBA{A: 255}) {
		t.Errorf("shadow at offset = %v, want opaque black", got)
	}
	if got := dst.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("shadow at source position = %v, want transparent", got)
	}
}

func TestDropShadowColorAndDensity(t *testing.T) {
	src := filledRGBA(6, 6, color.RGBA{A: 255})
	dst := image.NewRGBA(src.Rect)

	f := NewDropShadowFilter(0, 0, 0, color.NRGBA{R: 255, A: 128})
	f.Apply(src, dst)

	got := dst.RGBAAt(3, 3)
	if got.A != 128 || got.R != 128 || got.G != 0 {
		t.Errorf("shadow pixel = %v, want premultiplied red at alpha 128", got)
	}
}

func TestDropShadowBlurSoftensEdge(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			src.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	dst := image.NewRGBA(src.Rect)
	NewDropShadowFilter(0, 0, 3, color.NRGBA{A: 255}).Apply(src, dst)

	inside := alphaAt(dst, 20, 20)
	edge := alphaAt(dst, 10, 20)
	outside := alphaAt(dst, 7, 20)
	if !(inside > edge && edge > outside && outside > 0) {
		t.Errorf("alpha profile inside=%d edge=%d outside=%d, want decreasing and soft", inside, edge, outside)
	}
}

func TestDropShadowTransparentColor(t *testing.T) {
	src := filledRGBA(4, 4, color.RGBA{A: 255})
	dst := filledRGBA(4, 4, color.RGBA{R: 9, A: 9})
	NewDropShadowFilter(0, 0, 1, color.NRGBA{}).Apply(src, dst)
	for i, v := range dst.Pix {
		if v != 0 {
			t.Fatalf("dst.Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestExtractAlphaWithOffset(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(0, 0, color.RGBA{A: 255})
	alpha := make([]float32, 16)

	extractAlpha(src, alpha, src.Rect, 1, 2)
	if alpha[2*4+1] != 1 {
		t.Errorf("alpha at (1,2) = %v, want 1", alpha[2*4+1])
	}
	if alpha[0] != 0 {
		t.Errorf("alpha at (0,0) = %v, want 0", alpha[0])
	}
}
