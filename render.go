package sparkicon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// FillShape paints the anti-aliased interior of s onto c with col,
// alpha-blended over what is already there.
func FillShape(c *Canvas, s Shape, col color.NRGBA) {
	r := vector.NewRasterizer(c.Width(), c.Height())
	s.rasterize(r)
	r.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{})
}

// StrokeStyle selects how stroke ends and corners are drawn.
type StrokeStyle int

const (
	// StrokeFlat draws butt ends and bevelled corners.
	StrokeFlat StrokeStyle = iota
	// StrokeRoundJoin draws butt ends and rounded corners.
	StrokeRoundJoin
	// StrokeRound draws rounded ends and rounded corners.
	StrokeRound
)

func (s StrokeStyle) params() (rasterx.CapFunc, rasterx.GapFunc, rasterx.JoinMode) {
	switch s {
	case StrokeRoundJoin:
		return rasterx.ButtCap, rasterx.RoundGap, rasterx.Round
	case StrokeRound:
		return rasterx.RoundCap, rasterx.RoundGap, rasterx.Round
	default:
		return rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel
	}
}

// newDasher returns a rasterx stroker drawing into c.
func newDasher(c *Canvas, width float64, style StrokeStyle) *rasterx.Dasher {
	w, h := c.Width(), c.Height()
	scanner := rasterx.NewScannerGV(w, h, c.img, c.img.Bounds())
	d := rasterx.NewDasher(w, h, scanner)
	capFn, gapFn, join := style.params()
	d.SetStroke(fixed.Int26_6(math.Round(width*64)), 4*64, capFn, capFn, gapFn, join, nil, 0)
	return d
}

// StrokePolyline strokes the open polyline through pts with the given width.
// Overlapping segments of one polyline are covered once.
func StrokePolyline(c *Canvas, pts []Point, width float64, col color.NRGBA, style StrokeStyle) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	d := newDasher(c, width, style)
	d.Start(pts[0].fixed())
	for _, pt := range pts[1:] {
		d.Line(pt.fixed())
	}
	d.Stop(false)
	d.SetColor(col)
	d.Draw()
}

// StrokeLine strokes the segment a-b with flat ends.
func StrokeLine(c *Canvas, a, b Point, width float64, col color.NRGBA) {
	StrokePolyline(c, []Point{a, b}, width, col, StrokeFlat)
}

// StrokeEllipse outlines the ellipse inscribed in the box center±(rx, ry).
// The outline lies inside the box, like a border drawn inward.
func StrokeEllipse(c *Canvas, center Point, rx, ry, width float64, col color.NRGBA) {
	if width <= 0 || rx <= 0 || ry <= 0 {
		return
	}
	inset := width / 2
	d := newDasher(c, width, StrokeRound)
	rasterx.AddEllipse(center.X, center.Y, math.Max(rx-inset, 0), math.Max(ry-inset, 0), 0, d)
	d.SetColor(col)
	d.Draw()
}

// FillEllipse paints the interior of the ellipse center±(rx, ry).
func FillEllipse(c *Canvas, center Point, rx, ry float64, col color.NRGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	w, h := c.Width(), c.Height()
	f := rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, c.img, c.img.Bounds()))
	rasterx.AddEllipse(center.X, center.Y, rx, ry, 0, f)
	f.SetColor(col)
	f.Draw()
}

// shapeCoverage renders the coverage of s into an alpha image.
func shapeCoverage(dst *image.Alpha, s Shape) {
	r := vector.NewRasterizer(dst.Rect.Dx(), dst.Rect.Dy())
	r.DrawOp = draw.Src
	s.rasterize(r)
	r.Draw(dst, dst.Rect, image.Opaque, image.Point{})
}
