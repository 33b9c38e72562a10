package ffv1

import (
	"testing"

	"github.com/cocosip/go-ffv1/record"
)

func record8BitYCbCrNoChroma() *record.ConfigRecord {
	return &record.ConfigRecord{
		BitsPerRawSample: 8,
		ColorspaceType:   0,
	}
}

func record8BitRGB() *record.ConfigRecord {
	return &record.ConfigRecord{
		BitsPerRawSample: 8,
		ColorspaceType:   1,
		ChromaPlanes:     true,
	}
}

func TestCeilDivRoundsUp(t *testing.T) {
	cases := []struct{ a, shift, want int }{
		{8, 1, 4},
		{9, 1, 5},
		{7, 2, 2},
		{0, 1, 0},
	}
	for _, tc := range cases {
		if got := ceilDiv(tc.a, tc.shift); got != tc.want {
			t.Errorf("ceilDiv(%d,%d) = %d, want %d", tc.a, tc.shift, got, tc.want)
		}
	}
}

func TestNumPlanes(t *testing.T) {
	cases := []struct {
		chroma, alpha bool
		want          int
	}{
		{false, false, 1},
		{true, false, 3},
		{false, true, 2},
		{true, true, 4},
	}
	for _, tc := range cases {
		if got := numPlanes(tc.chroma, tc.alpha); got != tc.want {
			t.Errorf("numPlanes(%v,%v) = %d, want %d", tc.chroma, tc.alpha, got, tc.want)
		}
	}
}

func TestFrameGetSetMode8(t *testing.T) {
	f := &Frame{mode: mode8, Buf8: [][]uint8{make([]uint8, 4)}}
	f.set(0, 2, 200)
	if got := f.get(0, 2); got != 200 {
		t.Fatalf("get after set = %d, want 200", got)
	}
}

func TestFrameGetSetMode16(t *testing.T) {
	f := &Frame{mode: mode16, Buf16: [][]uint16{make([]uint16, 4)}}
	f.set(0, 1, 60000)
	if got := f.get(0, 1); got != 60000 {
		t.Fatalf("get after set = %d, want 60000", got)
	}
}

func TestFrameGetSetMode32(t *testing.T) {
	f := &Frame{mode: mode32, buf32: [][]uint32{make([]uint32, 4)}}
	f.set(0, 0, 131071)
	if got := f.get(0, 0); got != 131071 {
		t.Fatalf("get after set = %d, want 131071", got)
	}
}

func TestFrameSARUnsetUntilSliceDecoded(t *testing.T) {
	f := &Frame{}
	if _, _, ok := f.SAR(); ok {
		t.Fatalf("SAR reported ok before any slice set it")
	}
	f.sarSet = true
	f.sarNum, f.sarDen = 16, 9
	num, den, ok := f.SAR()
	if !ok || num != 16 || den != 9 {
		t.Fatalf("SAR() = (%d,%d,%v), want (16,9,true)", num, den, ok)
	}
}

func TestNewFrameYCbCr8BitAllocatesBuf8Only(t *testing.T) {
	d := &Decoder{
		width:  4,
		height: 2,
		record: record8BitYCbCrNoChroma(),
	}
	f := d.newFrame()
	if f.mode != mode8 {
		t.Fatalf("mode = %v, want mode8", f.mode)
	}
	if f.Buf16 != nil || f.buf32 != nil {
		t.Fatalf("8-bit YCbCr frame should not allocate Buf16/buf32")
	}
	if len(f.Buf8) != 1 || len(f.Buf8[0]) != 8 {
		t.Fatalf("Buf8 shape = %v, want one 8-sample plane", f.Buf8)
	}
}

func TestNewFrameRGB8BitAllocatesBothBuffers(t *testing.T) {
	d := &Decoder{
		width:  4,
		height: 2,
		record: record8BitRGB(),
	}
	f := d.newFrame()
	if f.mode != mode16 {
		t.Fatalf("8-bit RGB decode-time mode = %v, want mode16 (scratch)", f.mode)
	}
	if f.Buf8 == nil {
		t.Fatalf("8-bit RGB frame must allocate Buf8 for the final RCT output")
	}
	if f.Buf16 == nil {
		t.Fatalf("8-bit RGB frame must allocate Buf16 as decode scratch")
	}
}
