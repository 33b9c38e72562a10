package ffv1

import (
	"github.com/cocosip/go-ffv1/internal/colorspace"
	"github.com/cocosip/go-ffv1/internal/fslice"
	"github.com/cocosip/go-ffv1/internal/golomb"
	"github.com/cocosip/go-ffv1/internal/rangecoder"
)

// decodeSliceContent decodes every plane of one slice, then, for RGB
// slices, runs the inverse reversible color transform over the region
// it just decoded.
func (d *Decoder) decodeSliceContent(coder *rangecoder.Coder, golombCoder *golomb.Coder, sl *fslice.Slice, frame *Frame) {
	rec := d.record

	if rec.ColorspaceType != 1 {
		d.decodeYCbCrSlice(coder, golombCoder, sl, frame)
		return
	}
	d.decodeRGBSlice(coder, golombCoder, sl, frame)
}

// decodeYCbCrSlice decodes a slice's planes independently: luma and (if
// present) alpha at full slice resolution, chroma at the record's
// subsampled resolution. Chroma geometry intentionally mirrors the
// bitstream's own rounding, which swaps which subsampling shift governs
// each axis of the plane's start offset.
func (d *Decoder) decodeYCbCrSlice(coder *rangecoder.Coder, golombCoder *golomb.Coder, sl *fslice.Slice, frame *Frame) {
	rec := d.record

	chromaCount := 0
	if rec.ChromaPlanes {
		chromaCount = 2
	}
	primaryColorCount := 1 + chromaCount
	if rec.ExtraPlane {
		primaryColorCount++
	}

	for p := 0; p < primaryColorCount; p++ {
		var height, width, stride, startX, startY, quant int

		if p == 0 || p == 1+chromaCount {
			quant = 0
			if p != 0 {
				quant = chromaCount
			}
			height = sl.Height
			width = sl.Width
			stride = d.width
			startX = sl.StartX
			startY = sl.StartY
		} else {
			height = ceilDiv(sl.Height, rec.Log2VChroma)
			width = ceilDiv(sl.Width, rec.Log2HChroma)
			stride = ceilDiv(d.width, rec.Log2HChroma)
			startX = ceilDiv(sl.StartX, rec.Log2VChroma)
			startY = ceilDiv(sl.StartY, rec.Log2HChroma)
			quant = 1
		}

		if golombCoder != nil {
			golombCoder.NewPlane(width)
		}

		offset := startY*stride + startX
		for y := 0; y < height; y++ {
			d.decodeLine(coder, golombCoder, sl, frame, p, quant, width, height, stride, offset, y)
		}
	}
}

// decodeRGBSlice decodes a JPEG2000-RCT slice: every plane is coded
// line-interleaved (G, B, R, [A]) rather than plane-by-plane, then the
// whole region is converted from RCT space back to RGB in one pass.
func (d *Decoder) decodeRGBSlice(coder *rangecoder.Coder, golombCoder *golomb.Coder, sl *fslice.Slice, frame *Frame) {
	rec := d.record

	if golombCoder != nil {
		golombCoder.NewPlane(sl.Width)
	}

	offset := sl.StartY*d.width + sl.StartX
	for y := 0; y < sl.Height; y++ {
		d.decodeLine(coder, golombCoder, sl, frame, 0, 0, sl.Width, sl.Height, d.width, offset, y)
		d.decodeLine(coder, golombCoder, sl, frame, 1, 1, sl.Width, sl.Height, d.width, offset, y)
		d.decodeLine(coder, golombCoder, sl, frame, 2, 1, sl.Width, sl.Height, d.width, offset, y)
		if rec.ExtraPlane {
			d.decodeLine(coder, golombCoder, sl, frame, 3, 2, sl.Width, sl.Height, d.width, offset, y)
		}
	}

	d.inverseRCT(sl, frame, offset)

	// The RCT only transforms G/B/R; an alpha plane passes through
	// untouched, but at 8 and 16 bits it was decoded into the wider
	// scratch buffer alongside G/B/R and needs copying into the final
	// narrower one.
	if rec.ExtraPlane {
		d.copyAlphaPlane(sl, frame, offset)
	}
}

func (d *Decoder) copyAlphaPlane(sl *fslice.Slice, frame *Frame, offset int) {
	bits := d.record.BitsPerRawSample
	if bits != 8 && bits != 16 {
		return
	}
	for y := 0; y < sl.Height; y++ {
		row := offset + y*d.width
		for x := 0; x < sl.Width; x++ {
			idx := row + x
			v := frame.get(3, idx)
			if bits == 8 {
				frame.Buf8[3][idx] = uint8(v)
			} else {
				frame.Buf16[3][idx] = uint16(v)
			}
		}
	}
}

// inverseRCT converts a just-decoded RGB slice's samples from RCT space
// (G, B, R planes holding y/cb/cr-shaped values) back to true G, B, R.
// At 8 and 16 bits, decode happens in a wider scratch buffer than the
// final sample width (see newFrame), so the result is written to the
// narrower buffer directly rather than through frame.set's decode-time
// storage mode.
func (d *Decoder) inverseRCT(sl *fslice.Slice, frame *Frame, offset int) {
	bits := d.record.BitsPerRawSample
	for y := 0; y < sl.Height; y++ {
		row := offset + y*d.width
		for x := 0; x < sl.Width; x++ {
			idx := row + x
			g := frame.get(0, idx)
			b := frame.get(1, idx)
			r := frame.get(2, idx)

			switch {
			case bits == 8:
				rr, gg, bb := colorspace.Inverse8(g, b, r)
				frame.Buf8[0][idx] = uint8(gg)
				frame.Buf8[1][idx] = uint8(bb)
				frame.Buf8[2][idx] = uint8(rr)
			case bits == 16:
				rr, gg, bb := colorspace.Inverse16(g, b, r)
				frame.Buf16[0][idx] = uint16(gg)
				frame.Buf16[1][idx] = uint16(bb)
				frame.Buf16[2][idx] = uint16(rr)
			default:
				rr, gg, bb := colorspace.InverseMid(g, b, r, bits)
				frame.set(0, idx, gg)
				frame.set(1, idx, bb)
				frame.set(2, idx, rr)
			}
		}
	}
}
