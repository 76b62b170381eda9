package iconset

import "testing"

func TestVariants(t *testing.T) {
	want := []string{
		"16x16@1x", "16x16@2x", "32x32@1x", "32x32@2x", "128x128@1x",
		"128x128@2x", "256x256@1x", "256x256@2x", "512x512@1x", "512x512@2x",
	}
	got := Variants()
	if len(got) != len(want) {
		t.Fatalf("len(Variants()) = %d, want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.String() != want[i] {
			t.Errorf("Variants()[%d] = %s, want %s", i, v, want[i])
		}
	}
}

func TestVariantLabels(t *testing.T) {
	tests := []struct {
		v                  Variant
		pixels             int
		sizeLabel, scaleLb string
	}{
		{Variant{16, 1}, 16, "16x16", "1x"},
		{Variant{32, 2}, 64, "32x32", "2x"},
		{Variant{512, 2}, 1024, "512x512", "2x"},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if got := tt.v.Pixels(); got != tt.pixels {
				t.Errorf("Pixels() = %d, want %d", got, tt.pixels)
			}
			if got := tt.v.sizeLabel(); got != tt.sizeLabel {
				t.Errorf("sizeLabel() = %q, want %q", got, tt.sizeLabel)
			}
			if got := tt.v.scaleLabel(); got != tt.scaleLb {
				t.Errorf("scaleLabel() = %q, want %q", got, tt.scaleLb)
			}
		})
	}
}
