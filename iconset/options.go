package iconset

import "golang.org/x/image/draw"

// Option configures an Export.
//
// Example:
//
//	// Default: every macOS variant, Lanczos resampling
//	m, err := iconset.Export(dir, light, dark)
//
//	// Only the Retina variants, resampled with Catmull-Rom
//	m, err := iconset.Export(dir, light, dark,
//	    iconset.WithVariants(retina),
//	    iconset.WithFilter(draw.CatmullRom))
type Option func(*options)

type options struct {
	resample Resampler
	variants []Variant
}

func defaultOptions() options {
	return options{
		resample: Lanczos,
		variants: Variants(),
	}
}

// WithResampler sets the function used to scale the master images.
// A nil resampler keeps the default.
func WithResampler(r Resampler) Option {
	return func(o *options) {
		if r != nil {
			o.resample = r
		}
	}
}

// WithFilter resamples with an x/image/draw interpolator instead of the
// default Lanczos filter. A nil filter keeps the current resampler.
func WithFilter(f draw.Interpolator) Option {
	return func(o *options) {
		if f != nil {
			o.resample = Interpolator(f)
		}
	}
}

// WithVariants replaces the exported variant list.
func WithVariants(v []Variant) Option {
	return func(o *options) {
		o.variants = append([]Variant(nil), v...)
	}
}
