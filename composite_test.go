package sparkicon

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func gradientBackground(w, h int) *Canvas {
	c := NewCanvas(w, h)
	c.FillRows(func(y int) color.NRGBA { return RGBA(uint8(y*7), 40, uint8(255-y*3), 255) })
	return c
}

func TestCompositeTransparentLayerIsIdentity(t *testing.T) {
	bg := gradientBackground(32, 32)
	want := append([]byte(nil), bg.Pix()...)

	if err := Composite(bg, NewCanvas(32, 32)); err != nil {
		t.Fatalf("Composite() = %v", err)
	}
	if !bytes.Equal(bg.Pix(), want) {
		t.Error("transparent layer changed the background")
	}
}

func TestCompositeOpaqueLayerReplaces(t *testing.T) {
	bg := gradientBackground(16, 16)
	layer := NewCanvas(16, 16)
	for y := 4; y < 8; y++ {
		for x := 2; x < 10; x++ {
			layer.SetPixel(x, y, RGBA(12, 34, 56, 255))
		}
	}
	before := bg.PixelAt(0, 0)

	if err := Composite(bg, layer); err != nil {
		t.Fatalf("Composite() = %v", err)
	}
	assertPixel(t, bg, 5, 5, color.RGBA{12, 34, 56, 255}, 0)
	assertPixel(t, bg, 0, 0, before, 0)
}

func TestCompositeTranslucent(t *testing.T) {
	dst := filled(4, 4, White)
	if err := Composite(dst, filled(4, 4, RGBA(0, 0, 0, 128))); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, dst, 2, 2, color.RGBA{127, 127, 127, 255}, 0)
}

func TestCompositeOrder(t *testing.T) {
	dst := NewCanvas(4, 4)
	red := filled(4, 4, RGBA(255, 0, 0, 255))
	blue := filled(4, 4, RGBA(0, 0, 255, 255))
	if err := Composite(dst, red, blue); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, dst, 1, 1, color.RGBA{0, 0, 255, 255}, 0)
}

func TestCompositeSizeMismatch(t *testing.T) {
	dst := NewCanvas(8, 8)
	err := Composite(dst, NewCanvas(8, 8), NewCanvas(4, 8))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Composite() = %v, want ErrSizeMismatch", err)
	}
}

func BenchmarkComposite(b *testing.B) {
	dst := gradientBackground(512, 512)
	layer := NoiseLayer(512, 512, 4, 42)
	b.ReportAllocs()
	for b.Loop() {
		_ = Composite(dst, layer)
	}
}
