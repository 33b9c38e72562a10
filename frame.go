package ffv1

// Colorspace identifies an FFV1 frame's plane layout.
type Colorspace int

const (
	ColorspaceYCbCr Colorspace = 0
	ColorspaceRGB   Colorspace = 1
)

// storageMode selects which of Frame's buffers backs sample storage
// during decode, mirroring the three-way split the reference decoder
// uses: 8-bit YCbCr/RGB-without-RCT samples fit in a byte; everything
// else needs at least 16 bits, and 16-bit RCT additionally needs a
// 32-bit scratch so the one extra bit of RCT range never overflows.
type storageMode int

const (
	mode8 storageMode = iota
	mode16
	mode32
)

// Frame is a decoded FFV1 frame: planar sample buffers plus the layout
// metadata needed to interpret them. Buf8 is valid when BitDepth == 8;
// otherwise Buf16 is. Plane order is {Y, [Cb, Cr], [A]} for YCbCr and
// {G, B, R, [A]} for RGB.
type Frame struct {
	Buf8  [][]uint8
	Buf16 [][]uint16

	Width, Height       int
	BitDepth            int
	ColorSpace          Colorspace
	HasChroma, HasAlpha bool
	ChromaSubsampleV    int
	ChromaSubsampleH    int

	mode  storageMode
	buf32 [][]uint32 // RGB/RCT 16-bit scratch, released before DecodeFrame returns

	sarSet         bool
	sarNum, sarDen int
}

// SAR returns the sample aspect ratio decoded from the frame's first
// slice header, if any slice has been decoded yet. FFV1 decodes these
// fields per slice but this decoder has no use for them; they're
// exposed only for a caller that wants them.
func (f *Frame) SAR() (num, den uint32, ok bool) {
	if !f.sarSet {
		return 0, 0, false
	}
	return uint32(f.sarNum), uint32(f.sarDen), true
}

func (f *Frame) get(plane, idx int) int {
	switch f.mode {
	case mode8:
		return int(f.Buf8[plane][idx])
	case mode32:
		return int(f.buf32[plane][idx])
	default:
		return int(f.Buf16[plane][idx])
	}
}

func (f *Frame) set(plane, idx, val int) {
	switch f.mode {
	case mode8:
		f.Buf8[plane][idx] = uint8(val)
	case mode32:
		f.buf32[plane][idx] = uint32(val)
	default:
		f.Buf16[plane][idx] = uint16(val)
	}
}

func numPlanes(chroma, alpha bool) int {
	n := 1
	if chroma {
		n += 2
	}
	if alpha {
		n++
	}
	return n
}

func ceilDiv(a, shift int) int {
	return (a + (1 << uint(shift)) - 1) >> uint(shift)
}

func (d *Decoder) newFrame() *Frame {
	rec := d.record
	f := &Frame{
		Width:      d.width,
		Height:     d.height,
		BitDepth:   rec.BitsPerRawSample,
		ColorSpace: Colorspace(rec.ColorspaceType),
		HasChroma:  rec.ChromaPlanes,
		HasAlpha:   rec.ExtraPlane,
	}
	if rec.ChromaPlanes {
		f.ChromaSubsampleV = rec.Log2VChroma
		f.ChromaSubsampleH = rec.Log2HChroma
	}

	n := numPlanes(rec.ChromaPlanes, rec.ExtraPlane)
	chromaW := ceilDiv(d.width, rec.Log2HChroma)
	chromaH := ceilDiv(d.height, rec.Log2VChroma)

	// 8-bit RGB allocates both buffers: decode and prediction happen in
	// Buf16 (mode16, matching the storage mode switch below) and the
	// inverse RCT writes its final G/B/R samples into Buf8.
	alloc8 := rec.BitsPerRawSample == 8
	alloc16 := rec.BitsPerRawSample > 8 || rec.ColorspaceType == 1
	alloc32 := rec.BitsPerRawSample == 16 && rec.ColorspaceType == 1

	if alloc8 {
		f.Buf8 = make([][]uint8, n)
		f.Buf8[0] = make([]uint8, d.width*d.height)
		if rec.ChromaPlanes {
			f.Buf8[1] = make([]uint8, chromaW*chromaH)
			f.Buf8[2] = make([]uint8, chromaW*chromaH)
		}
		if rec.ExtraPlane {
			f.Buf8[n-1] = make([]uint8, d.width*d.height)
		}
	}
	if alloc16 {
		f.Buf16 = make([][]uint16, n)
		f.Buf16[0] = make([]uint16, d.width*d.height)
		if rec.ChromaPlanes {
			f.Buf16[1] = make([]uint16, chromaW*chromaH)
			f.Buf16[2] = make([]uint16, chromaW*chromaH)
		}
		if rec.ExtraPlane {
			f.Buf16[n-1] = make([]uint16, d.width*d.height)
		}
	}
	if alloc32 {
		f.buf32 = make([][]uint32, n)
		for i := 0; i < n; i++ {
			f.buf32[i] = make([]uint32, d.width*d.height)
		}
	}

	switch {
	case rec.BitsPerRawSample == 8 && rec.ColorspaceType != 1:
		f.mode = mode8
	case rec.BitsPerRawSample == 16 && rec.ColorspaceType == 1:
		f.mode = mode32
	default:
		f.mode = mode16
	}

	return f
}
