package sparkicon

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Default spark sampling parameters.
const (
	DefaultSparkSteps    = 360
	DefaultSparkExponent = 1.8
	DefaultSparkProngs   = 5
	DefaultSparkTipRatio = 0.38
)

// SparkParams describes a rounded N-pronged star.
type SparkParams struct {
	Center Point
	Radius float64 // distance from Center to a prong tip

	// Prongs is the number of prongs (N ≥ 2).
	Prongs int

	// TipRatio is the valley radius as a fraction of Radius, in (0, 1).
	TipRatio float64

	// Steps is the number of polygon points. Zero selects DefaultSparkSteps.
	Steps int

	// Exponent rounds the prong tips; it must exceed 1. Zero selects
	// DefaultSparkExponent.
	Exponent float64
}

// Spark returns parameters for the icon's standard five-pronged spark.
func Spark(center Point, radius float64) SparkParams {
	return SparkParams{
		Center:   center,
		Radius:   radius,
		Prongs:   DefaultSparkProngs,
		TipRatio: DefaultSparkTipRatio,
	}
}

func (p SparkParams) withDefaults() SparkParams {
	if p.Steps == 0 {
		p.Steps = DefaultSparkSteps
	}
	if p.Exponent == 0 {
		p.Exponent = DefaultSparkExponent
	}
	return p
}

func (p SparkParams) validate() error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	switch {
	case !finite(p.Center.X) || !finite(p.Center.Y):
		return fmt.Errorf("center %v: %w", p.Center, ErrInvalidGeometry)
	case !finite(p.Radius) || p.Radius <= 0:
		return fmt.Errorf("radius %v: %w", p.Radius, ErrInvalidGeometry)
	case p.Prongs < 2:
		return fmt.Errorf("prongs %d: %w", p.Prongs, ErrInvalidGeometry)
	case !(p.TipRatio > 0 && p.TipRatio < 1):
		return fmt.Errorf("tip ratio %v: %w", p.TipRatio, ErrInvalidGeometry)
	case p.Steps < 3:
		return fmt.Errorf("steps %d: %w", p.Steps, ErrInvalidGeometry)
	case !finite(p.Exponent) || p.Exponent <= 1:
		return fmt.Errorf("exponent %v: %w", p.Exponent, ErrInvalidGeometry)
	}
	return nil
}

// Shape is an immutable closed polygon sampled from a parametric curve.
type Shape struct {
	center Point
	points []Point
}

// SampleSpark traces a rounded N-pronged star as a closed polygon.
//
// For each of Steps angles θ evenly covering [0, 2π) the prong intensity is
// |cos(N·θ/2)|^Exponent and the radius moves from TipRatio·Radius in the
// valleys to Radius at the tips in proportion to it. The last point wraps
// back to the first, so the polygon is closed.
func SampleSpark(p SparkParams) (Shape, error) {
	p = p.withDefaults()
	if err := p.validate(); err != nil {
		return Shape{}, err
	}

	n := float64(p.Prongs)
	valley := p.TipRatio * p.Radius
	span := p.Radius - valley

	points := make([]Point, p.Steps)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(p.Steps)
		lobe := math.Pow(math.Abs(math.Cos(n*theta/2)), p.Exponent)
		points[i] = p.Center.Polar(valley+span*lobe, theta)
	}
	return Shape{center: p.Center, points: points}, nil
}

// Center returns the point the shape was sampled around.
func (s Shape) Center() Point { return s.center }

// Len returns the number of polygon points.
func (s Shape) Len() int { return len(s.points) }

// Points returns a copy of the polygon points.
func (s Shape) Points() []Point {
	return append([]Point(nil), s.points...)
}

// Radii returns the minimum and maximum distance from the center to any
// polygon point.
func (s Shape) Radii() (lo, hi float64) {
	if len(s.points) == 0 {
		return 0, 0
	}
	lo = math.Inf(1)
	for _, pt := range s.points {
		d := pt.Distance(s.center)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Bounds returns the integer pixel rectangle covering the polygon.
func (s Shape) Bounds() image.Rectangle {
	if len(s.points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range s.points {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// rasterize adds the closed polygon to r.
func (s Shape) rasterize(r *vector.Rasterizer) {
	if len(s.points) == 0 {
		return
	}
	r.MoveTo(float32(s.points[0].X), float32(s.points[0].Y))
	for _, pt := range s.points[1:] {
		r.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.ClosePath()
}
