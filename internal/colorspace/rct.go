// Package colorspace implements FFV1's inverse reversible color
// transform (RCT), the same JPEG2000-style integer transform used by
// lossless JPEG2000, just run backwards: FFV1 always decodes RGB slices
// in the G/B/R (and optionally G/B/R/A) plane order the forward RCT
// produces, and needs the inverse to recover R/G/B.
package colorspace

// Inverse applies the inverse RCT to one pixel's decoded (g, b, r)
// samples and masks the result to bits_per_raw_sample, returning (r, g, b).
func Inverse(g, b, r, bits int) (rr, gg, bb int) {
	mask := (1 << uint(bits)) - 1
	gg = g - ((b + r) >> 2)
	rr = r + gg
	bb = b + gg
	return rr & mask, gg & mask, bb & mask
}

// Inverse8 is the 8-bit-per-component path. FFV1 decodes 8-bit RGB
// through a 16-bit scratch buffer so the (b+r) sum never needs to wrap
// at 8 bits mid-transform; Go's int already has that headroom, so this
// only fixes the mask width.
func Inverse8(g, b, r int) (rr, gg, bb int) {
	return Inverse(g, b, r, 8)
}

// InverseMid is the 9-to-15-bit path: computed in place, no separate
// scratch width needed.
func InverseMid(g, b, r, bits int) (rr, gg, bb int) {
	return Inverse(g, b, r, bits)
}

// Inverse16 is the 16-bit path. FFV1 widens through a 32-bit scratch to
// avoid overflow in the (b+r) sum; Go's int is already wide enough.
func Inverse16(g, b, r int) (rr, gg, bb int) {
	return Inverse(g, b, r, 16)
}
