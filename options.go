package sparkicon

// DefaultSize is the edge length of the master icon raster.
const DefaultSize = 1024

// DefaultSeed seeds the texture noise.
const DefaultSeed = 42

// minSize is the smallest canvas the recipe's integer geometry still fits.
const minSize = 16

// Option configures a Build.
//
// Example:
//
//	// Master icon at the default 1024×1024
//	icon, err := sparkicon.Build(sparkicon.Light)
//
//	// Small preview with a different noise pattern
//	icon, err := sparkicon.Build(sparkicon.Light, sparkicon.WithSize(256), sparkicon.WithSeed(7))
type Option func(*options)

type options struct {
	size int
	seed uint64
}

func defaultOptions() options {
	return options{
		size: DefaultSize,
		seed: DefaultSeed,
	}
}

// WithSize sets the edge length of the square icon in pixels. All geometry
// scales with it; the recipe's constants are expressed for 1024.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithSeed sets the texture noise seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}
