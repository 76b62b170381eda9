// Package sparkicon renders the Cowork Task Supervisor application icon.
//
// # Overview
//
// The icon is a rounded five-pronged "spark" drawn as translucent glass over
// a soft gradient, with a short task list beneath it. It is produced by a
// fixed recipe of raster layers, each rendered independently and composited
// in order:
//
//	background → ambient-glow → primary-glyph → inner-depth →
//	decorative-elements → specular-reflection → texture-noise
//
// The primary glyph is itself flattened from four parts (shadow, body,
// highlight and rim light) before it is laid over the icon.
//
// Two palettes exist, one per [Appearance]. The output is deterministic: the
// same size and seed always yield the same pixels.
//
// # Quick Start
//
//	dark, err := sparkicon.Build(sparkicon.Dark)
//	if err != nil {
//	    return err
//	}
//	err = dark.SavePNG("icon_dark.png")
//
// The iconset sub-package turns a light and a dark icon into a macOS
// AppIcon.appiconset bundle.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
//
// # Pixel Format
//
// [Canvas] stores premultiplied RGBA8, the same layout as [image.RGBA], so
// ecosystem rasterizers draw straight into it. [Mask] stores one coverage
// byte per pixel, the same layout as [image.Alpha].
package sparkicon
