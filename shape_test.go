package sparkicon

import (
	"errors"
	"math"
	"testing"
)

func TestSampleSparkPoints(t *testing.T) {
	tests := []struct {
		name  string
		steps int
		want  int
	}{
		{"default steps", 0, DefaultSparkSteps},
		{"coarse", 36, 36},
		{"triangle", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Spark(Pt(50, 50), 40)
			p.Steps = tt.steps
			s, err := SampleSpark(p)
			if err != nil {
				t.Fatalf("SampleSpark() = %v", err)
			}
			if s.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.want)
			}
		})
	}
}

func TestSampleSparkRadii(t *testing.T) {
	const r = 307.0
	tests := []struct {
		name   string
		prongs int
		tip    float64
	}{
		{"five prongs", 5, DefaultSparkTipRatio},
		{"four prongs", 4, 0.5},
		{"six prongs", 6, 0.2},
		{"two prongs", 2, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Spark(Pt(512, 491), r)
			p.Prongs = tt.prongs
			p.TipRatio = tt.tip
			s, err := SampleSpark(p)
			if err != nil {
				t.Fatalf("SampleSpark() = %v", err)
			}
			lo, hi := s.Radii()
			if math.Abs(hi-r) > 1e-9 {
				t.Errorf("max radius = %v, want %v", hi, r)
			}
			if math.Abs(lo-tt.tip*r) > 1e-9 {
				t.Errorf("min radius = %v, want %v", lo, tt.tip*r)
			}
		})
	}
}

func TestSampleSparkFirstPointIsTip(t *testing.T) {
	s, err := SampleSpark(Spark(Pt(10, 20), 5))
	if err != nil {
		t.Fatal(err)
	}
	first := s.Points()[0]
	if math.Abs(first.X-15) > 1e-9 || math.Abs(first.Y-20) > 1e-9 {
		t.Errorf("first point = %v, want (15, 20)", first)
	}
	if s.Center() != Pt(10, 20) {
		t.Errorf("Center() = %v", s.Center())
	}
}

func TestShapePointsIsCopy(t *testing.T) {
	s, err := SampleSpark(Spark(Pt(0, 0), 10))
	if err != nil {
		t.Fatal(err)
	}
	pts := s.Points()
	pts[0] = Pt(999, 999)
	if s.Points()[0] == Pt(999, 999) {
		t.Error("Points() exposes internal storage")
	}
}

func TestShapeBounds(t *testing.T) {
	s, err := SampleSpark(Spark(Pt(50, 50), 20))
	if err != nil {
		t.Fatal(err)
	}
	b := s.Bounds()
	if b.Min.X < 30 || b.Max.X > 70 || b.Min.Y < 30 || b.Max.Y > 70 {
		t.Errorf("Bounds() = %v, want within (30,30)-(70,70)", b)
	}
	if b.Max.X != 70 {
		t.Errorf("Bounds().Max.X = %d, want 70 (tip at angle 0)", b.Max.X)
	}
}

func TestSampleSparkInvalid(t *testing.T) {
	base := Spark(Pt(10, 10), 10)
	tests := []struct {
		name   string
		modify func(p *SparkParams)
	}{
		{"zero radius", func(p *SparkParams) { p.Radius = 0 }},
		{"negative radius", func(p *SparkParams) { p.Radius = -1 }},
		{"nan radius", func(p *SparkParams) { p.Radius = math.NaN() }},
		{"one prong", func(p *SparkParams) { p.Prongs = 1 }},
		{"tip ratio zero", func(p *SparkParams) { p.TipRatio = 0 }},
		{"tip ratio one", func(p *SparkParams) { p.TipRatio = 1 }},
		{"too few steps", func(p *SparkParams) { p.Steps = 2 }},
		{"flat exponent", func(p *SparkParams) { p.Exponent = 1 }},
		{"infinite center", func(p *SparkParams) { p.Center.X = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.modify(&p)
			if _, err := SampleSpark(p); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("SampleSpark() = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}
