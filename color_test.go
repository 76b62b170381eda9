package sparkicon

import (
	"image/color"
	"testing"
)

func TestPremultiplied(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.RGBA
	}{
		{"opaque white", White, color.RGBA{255, 255, 255, 255}},
		{"opaque black", Black, color.RGBA{0, 0, 0, 255}},
		{"transparent", Transparent, color.RGBA{}},
		{"half red", RGBA(255, 0, 0, 128), color.RGBA{128, 0, 0, 128}},
		{"transparent keeps no color", RGBA(200, 100, 50, 0), color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := premultiplied(tt.in); got != tt.want {
				t.Errorf("premultiplied(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(RGBA(1, 2, 3, 255), 9)
	if c != (color.NRGBA{1, 2, 3, 9}) {
		t.Errorf("WithAlpha = %v", c)
	}
	if g := Gray(77); g != (color.NRGBA{77, 77, 77, 255}) {
		t.Errorf("Gray(77) = %v", g)
	}
}
