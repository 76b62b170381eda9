package blend

// SourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
//
// A fully transparent source leaves the destination unchanged and a fully
// opaque source replaces it exactly.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// DestinationIn shows destination where source is opaque.
// Formula: D * Sa
func DestinationIn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return MulDiv255(dr, sa), MulDiv255(dg, sa), MulDiv255(db, sa), MulDiv255(da, sa)
}

// DestinationOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func DestinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return MulDiv255(dr, invSa), MulDiv255(dg, invSa), MulDiv255(db, invSa), MulDiv255(da, invSa)
}

// SourceOverSpan composites a premultiplied RGBA8 span onto dst in place.
// Both slices must hold the same number of pixels (len divisible by 4).
// Transparent source pixels are skipped and opaque ones are copied.
func SourceOverSpan(dst, src []byte) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i+3 < n; i += 4 {
		sa := src[i+3]
		switch sa {
		case 0:
			continue
		case 255:
			copy(dst[i:i+4], src[i:i+4])
		default:
			dst[i], dst[i+1], dst[i+2], dst[i+3] = SourceOver(
				src[i], src[i+1], src[i+2], sa,
				dst[i], dst[i+1], dst[i+2], dst[i+3])
		}
	}
}

// MaskSpan applies a coverage-only source to a premultiplied RGBA8 span in
// place. coverage holds one byte per pixel and acts as the source alpha of
// mode, so ModeDestinationIn keeps each pixel in proportion to its coverage
// and ModeDestinationOut removes it in proportion.
func MaskSpan(px, coverage []byte, mode Mode) {
	fn := FuncFor(mode)
	var identity byte // coverage value that leaves the pixel unchanged
	switch mode {
	case ModeDestinationIn:
		identity = 255
	case ModeDestinationOut:
		identity = 0
	}
	for j, m := range coverage {
		i := j * 4
		if i+3 >= len(px) {
			return
		}
		if mode != ModeSourceOver && m == identity {
			continue
		}
		px[i], px[i+1], px[i+2], px[i+3] = fn(0, 0, 0, m, px[i], px[i+1], px[i+2], px[i+3])
	}
}

// Transparent reports whether every pixel of an RGBA8 span has zero alpha.
func Transparent(span []byte) bool {
	for i := 3; i < len(span); i += 4 {
		if span[i] != 0 {
			return false
		}
	}
	return true
}
