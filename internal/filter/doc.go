// Package filter provides the raster filters used by the icon layers:
//   - Gaussian blur (separable, isotropic or directional)
//   - Alpha-only blur for masks
//   - Drop shadow (offset + colorize + blur)
//
// Filters operate on standard library image types so that the root package
// can hand them its buffers without copying. RGBA input is expected to be
// premultiplied, which is what image.RGBA stores.
package filter
