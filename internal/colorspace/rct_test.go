package colorspace

import "testing"

func TestInverseRoundTripsForwardRCT(t *testing.T) {
	// Forward RCT: y = (r+2g+b)>>2, cb = b-g, cr = r-g. Decoded planes
	// carry (y, cb, cr) in FFV1's (g, b, r) plane slots, so Inverse
	// must recover the original r, g, b exactly (RCT is lossless).
	r, g, b := 200, 50, 10
	y := (r + 2*g + b) >> 2
	cb := b - g
	cr := r - g

	rr, gg, bb := Inverse(y, cb, cr, 8)
	if rr != r || gg != g || bb != b {
		t.Fatalf("Inverse(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)", y, cb, cr, rr, gg, bb, r, g, b)
	}
}

func TestInverseMasksToBitWidth(t *testing.T) {
	_, gg, _ := Inverse(1<<10, 0, 0, 9)
	if gg != (1<<10)&((1<<9)-1) {
		t.Fatalf("Inverse did not mask to 9 bits: gg=%d", gg)
	}
}

func TestInverse16WidensWithoutOverflow(t *testing.T) {
	rr, gg, bb := Inverse16(40000, 5000, 5000)
	if rr < 0 || gg < 0 || bb < 0 {
		t.Fatalf("Inverse16 produced negative component: (%d,%d,%d)", rr, gg, bb)
	}
}
