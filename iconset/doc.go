// Package iconset exports rendered icons as a macOS AppIcon.appiconset
// bundle.
//
// A bundle holds three PNG files for every [Variant]: an appearance-neutral
// file, a dark one and a light one, plus the Contents.json manifest that
// tells the asset catalog which is which:
//
//	icon_16x16@1x.png        (no appearances, from the dark icon)
//	icon_dark_16x16@1x.png   (luminosity: dark)
//	icon_light_16x16@1x.png  (luminosity: light)
//	...
//	Contents.json
//
// Export resamples the master images with a Lanczos filter by default; any
// golang.org/x/image/draw interpolator can be selected with [WithFilter].
// [WriteICO] additionally packs a master into a Windows .ico file. Progress
// is logged through [sparkicon.Logger].
package iconset
