package sparkicon

import (
	"fmt"
	"image/color"
	"strings"
)

// Appearance selects the parameter set for a whole icon build.
type Appearance int

const (
	// Dark renders pale glass over a near-black background.
	Dark Appearance = iota
	// Light renders smoky glass over a pale gray background.
	Light
)

// String returns "dark" or "light".
func (a Appearance) String() string {
	switch a {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("Appearance(%d)", int(a))
	}
}

// ParseAppearance parses "dark" or "light", case-insensitively.
func ParseAppearance(s string) (Appearance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	default:
		return 0, fmt.Errorf("sparkicon: unknown appearance %q", s)
	}
}

// Palette holds every appearance-specific constant of the recipe.
// Positions and radii are fractions of the icon size.
type Palette struct {
	// Background returns the opaque row color at t = y/size.
	Background func(t float64) color.NRGBA

	GlowCenter   Point // fractional
	GlowRadius   float64
	GlowColor    color.NRGBA // alpha is the peak glow alpha
	SparkColor   color.NRGBA
	ShadowAlpha  uint8
	HighlightA   uint8
	RimAlpha     uint8
	InnerColor   color.NRGBA
	TaskColor    color.NRGBA
	TaskDimColor color.NRGBA
	ReflectAlpha uint8
	NoiseAmp     int
}

// PaletteFor returns the parameter set for a.
func PaletteFor(a Appearance) (Palette, error) {
	switch a {
	case Dark:
		return darkPalette(), nil
	case Light:
		return lightPalette(), nil
	default:
		return Palette{}, fmt.Errorf("sparkicon: no palette for %v", a)
	}
}

func darkPalette() Palette {
	return Palette{
		Background: func(t float64) color.NRGBA {
			v := int(15 + (30-15)*t)
			return RGBA(uint8(v), uint8(v), uint8(min(255, int(float64(v)*1.08))), 255)
		},
		GlowCenter:   Pt(0.48, 0.25),
		GlowRadius:   0.5,
		GlowColor:    RGBA(100, 120, 180, 12),
		SparkColor:   RGBA(200, 210, 240, 55),
		ShadowAlpha:  50,
		HighlightA:   70,
		RimAlpha:     25,
		InnerColor:   RGBA(180, 195, 230, 25),
		TaskColor:    RGBA(255, 255, 255, 180),
		TaskDimColor: RGBA(255, 255, 255, 70),
		ReflectAlpha: 18,
		NoiseAmp:     4,
	}
}

func lightPalette() Palette {
	return Palette{
		Background: func(t float64) color.NRGBA {
			return Gray(uint8(int(245 - (245-225)*t)))
		},
		GlowCenter:   Pt(0.50, 0.65),
		GlowRadius:   0.4,
		GlowColor:    RGBA(0, 0, 30, 8),
		SparkColor:   RGBA(60, 55, 90, 50),
		ShadowAlpha:  20,
		HighlightA:   90,
		RimAlpha:     25,
		InnerColor:   RGBA(40, 35, 70, 20),
		TaskColor:    RGBA(40, 40, 60, 180),
		TaskDimColor: RGBA(40, 40, 60, 70),
		ReflectAlpha: 30,
		NoiseAmp:     3,
	}
}
