package sparkicon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/coworktask/sparkicon/internal/filter"
)

// Stage is one step of the icon recipe. Render returns a new layer the
// size of the scene; the assembler composites it over everything rendered
// by earlier stages.
type Stage struct {
	Name   string
	Render func(s *Scene) (*Canvas, error)
}

// Stage names, in paint order.
const (
	StageBackground   = "background"
	StageAmbientGlow  = "ambient-glow"
	StagePrimaryGlyph = "primary-glyph"
	StageInnerDepth   = "inner-depth"
	StageDecorations  = "decorative-elements"
	StageReflection   = "specular-reflection"
	StageNoise        = "texture-noise"
)

// Recipe returns the fixed, ordered list of stages that builds an icon.
func Recipe() []Stage {
	return []Stage{
		{StageBackground, renderBackground},
		{StageAmbientGlow, renderAmbientGlow},
		{StagePrimaryGlyph, renderPrimaryGlyph},
		{StageInnerDepth, renderInnerDepth},
		{StageDecorations, renderDecorations},
		{StageReflection, renderReflection},
		{StageNoise, renderNoise},
	}
}

// GlyphParts returns the layers of the glass spark, bottom to top. The
// primary-glyph stage flattens them onto one transparent layer before it is
// composited over the icon.
func GlyphParts() []Stage {
	return []Stage{
		{"shadow", renderGlyphShadow},
		{"body", renderGlyphBody},
		{"highlight", renderGlyphHighlight},
		{"rim", renderGlyphRim},
	}
}

// Scene carries the inputs shared by all stages of one build.
type Scene struct {
	Appearance Appearance
	Palette    Palette
	Size       int
	Seed       uint64
}

// px converts a fraction of the icon size to whole pixels, truncating.
func (s *Scene) px(f float64) float64 {
	return math.Floor(f * float64(s.Size))
}

// unit is the size of one pixel of the 1024 reference icon.
func (s *Scene) unit() float64 {
	return float64(s.Size) / DefaultSize
}

// center is the spark center, slightly above the middle.
func (s *Scene) center() Point {
	return Pt(math.Floor(float64(s.Size)/2), s.px(0.48))
}

// radius is the spark tip radius.
func (s *Scene) radius() float64 {
	return s.px(0.30)
}

func (s *Scene) layer() *Canvas {
	return NewCanvas(s.Size, s.Size)
}

func (s *Scene) spark(center Point, radius float64) (Shape, error) {
	return SampleSpark(Spark(center, radius))
}

func renderBackground(s *Scene) (*Canvas, error) {
	c := s.layer()
	size := float64(s.Size)
	c.FillRows(func(y int) color.NRGBA {
		return s.Palette.Background(float64(y) / size)
	})
	return c, nil
}

// renderAmbientGlow lays concentric rings, 3 reference pixels apart, whose
// alpha grows quadratically towards the center up to the glow color's alpha.
func renderAmbientGlow(s *Scene) (*Canvas, error) {
	p := s.Palette
	c := s.layer()
	c.Clear(WithAlpha(p.GlowColor, 255))
	center := Pt(s.px(p.GlowCenter.X)+0.5, s.px(p.GlowCenter.Y)+0.5)
	m := SteppedRadialMask(s.Size, s.Size, center, s.px(p.GlowRadius), 3*s.unit(),
		Truncated(Quadratic, p.GlowColor.A))
	if err := c.ApplyMask(m); err != nil {
		return nil, err
	}
	return c, nil
}

func renderPrimaryGlyph(s *Scene) (*Canvas, error) {
	glass := s.layer()
	for _, part := range GlyphParts() {
		layer, err := part.Render(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", part.Name, err)
		}
		if err := Composite(glass, layer); err != nil {
			return nil, fmt.Errorf("%s: %w", part.Name, err)
		}
	}
	return glass, nil
}

func renderGlyphShadow(s *Scene) (*Canvas, error) {
	shape, err := s.spark(s.center(), math.Floor(s.radius()*1.02))
	if err != nil {
		return nil, err
	}
	caster := s.layer()
	FillShape(caster, shape, Black)

	u := s.unit()
	c := s.layer()
	shadow := filter.NewDropShadowFilter(2*u, 6*u, 16*u, WithAlpha(Black, s.Palette.ShadowAlpha))
	shadow.Apply(caster.img, c.img)
	return c, nil
}

func renderGlyphBody(s *Scene) (*Canvas, error) {
	shape, err := s.spark(s.center(), s.radius())
	if err != nil {
		return nil, err
	}
	c := s.layer()
	FillShape(c, shape, s.Palette.SparkColor)
	return c, nil
}

// renderGlyphHighlight draws a smaller, raised spark in white and fades it
// out towards the lower half, leaving a gloss on the upper prongs.
func renderGlyphHighlight(s *Scene) (*Canvas, error) {
	center, r := s.center(), s.radius()
	shape, err := s.spark(Pt(center.X, center.Y-math.Floor(r*0.08)), math.Floor(r*0.88))
	if err != nil {
		return nil, err
	}
	c := s.layer()
	FillShape(c, shape, WithAlpha(White, s.Palette.HighlightA))

	y0 := int(center.Y - math.Floor(r*0.3))
	y1 := int(center.Y + math.Floor(r*0.1))
	if err := c.ApplyMask(VerticalGradientMask(s.Size, s.Size, y0, y1)); err != nil {
		return nil, err
	}
	return c, nil
}

// renderGlyphRim keeps only a thin band of a slightly larger spark by
// cutting out the interior of a slightly smaller one.
func renderGlyphRim(s *Scene) (*Canvas, error) {
	center, r := s.center(), s.radius()
	outer, err := s.spark(center, math.Floor(r*1.01))
	if err != nil {
		return nil, err
	}
	inner, err := s.spark(center, math.Floor(r*0.97))
	if err != nil {
		return nil, err
	}

	c := s.layer()
	FillShape(c, outer, WithAlpha(White, s.Palette.RimAlpha))
	if err := c.Erase(ShapeMask(s.Size, s.Size, inner)); err != nil {
		return nil, err
	}
	return c, nil
}

func renderInnerDepth(s *Scene) (*Canvas, error) {
	shape, err := s.spark(s.center(), s.px(0.22))
	if err != nil {
		return nil, err
	}
	c := s.layer()
	FillShape(c, shape, s.Palette.InnerColor)
	c.Blur(4 * s.unit())
	return c, nil
}

// renderDecorations draws the task list under the spark: two checked rows
// and one pending row, each followed by a bar.
func renderDecorations(s *Scene) (*Canvas, error) {
	p := s.Palette
	center, r := s.center(), s.radius()

	listTop := center.Y + math.Floor(r*0.85)
	spacing := s.px(0.055)
	listX := center.X - s.px(0.10)
	barStart := center.X - s.px(0.04)
	barEnd := center.X + s.px(0.12)
	barW := math.Max(3, s.px(0.007))
	checkW := math.Max(3, s.px(0.009))
	check := s.px(0.018)
	ringW := math.Max(2, s.px(0.004))

	// Integer coordinates address pixels; strokes run through pixel centers.
	at := func(x, y float64) Point { return Pt(x+0.5, y+0.5) }

	c := s.layer()
	for i := 0; i < 3; i++ {
		y := listTop + float64(i)*spacing
		col := p.TaskColor
		if i < 2 {
			StrokePolyline(c, []Point{
				at(listX-check, y),
				at(listX-check*0.15, y+check*0.7),
				at(listX+check, y-check*0.55),
			}, checkW, col, StrokeRoundJoin)
		} else {
			col = p.TaskDimColor
			cr := math.Floor(check * 0.5)
			StrokeEllipse(c, at(listX, y), cr, cr, ringW, col)
		}
		StrokeLine(c, at(barStart, y), at(barEnd, y), barW, col)
	}
	return c, nil
}

// renderReflection draws a short horizontal glint across the upper spark,
// fading downward and clipped to the spark outline. Row alpha is
// floor(peak·t²), t falling from 1 over 0.04 of the icon size.
func renderReflection(s *Scene) (*Canvas, error) {
	shape, err := s.spark(s.center(), s.px(0.29))
	if err != nil {
		return nil, err
	}
	top := int(s.px(0.28))
	band := image.Rect(int(s.px(0.32)), top, int(s.px(0.68))+1, top+int(s.px(0.04)))

	m := BandMask(s.Size, s.Size, band, 0.04*float64(s.Size),
		Truncated(FadeOutQuadratic, s.Palette.ReflectAlpha))
	if err := m.Multiply(ShapeMask(s.Size, s.Size, shape)); err != nil {
		return nil, err
	}

	c := s.layer()
	c.Clear(White)
	if err := c.ApplyMask(m); err != nil {
		return nil, err
	}
	return c, nil
}

func renderNoise(s *Scene) (*Canvas, error) {
	return NoiseLayer(s.Size, s.Size, s.Palette.NoiseAmp, s.Seed), nil
}
