package ffv1

import (
	"github.com/cocosip/go-ffv1/internal/fslice"
	"github.com/cocosip/go-ffv1/internal/golomb"
	"github.com/cocosip/go-ffv1/internal/predict"
	"github.com/cocosip/go-ffv1/internal/rangecoder"
)

// signExtend16 reinterprets a 16-bit unsigned sample as signed. FFV1's
// median predictor needs this for 16-bit YCbCr decoded through the
// range coder: the neighbourhood values are stored mod 65536, and the
// predictor's arithmetic only gives the right answer if left/top/top-left
// are first widened back to their signed interpretation.
func signExtend16(v int) int {
	if v >= 32768 {
		return v - 65536
	}
	return v
}

// decodeLine reconstructs one row of one plane: for every pixel it
// derives the neighbourhood, maps it to a context, decodes the coded
// residual through whichever entropy coder the slice uses, and adds
// back the median prediction. offset is the plane-relative index of
// this slice's (0, 0); stride is the plane's full width (YCbCr) or the
// frame width (RGB, which is never subsampled); width/height are the
// plane-local slice dimensions used only for border clamping.
func (d *Decoder) decodeLine(coder *rangecoder.Coder, golombCoder *golomb.Coder, sl *fslice.Slice, frame *Frame, plane, quant, width, height, stride, offset, y int) {
	if golombCoder != nil {
		golombCoder.NewLine()
	}

	get := func(x, yy int) int {
		return frame.get(plane, offset+yy*stride+x)
	}

	shift := d.record.BitsPerRawSample
	if d.record.ColorspaceType == 1 {
		shift++
	}

	qtIndex := sl.Header.QuantTableSetIndex[quant]
	qtables := &d.record.QuantTableSets[qtIndex].Tables

	// Entropy-coder state is kept per quant-table slot (the plane's
	// position in quant_table_set_index), not per resolved table-set
	// number, mirroring decoder.rs's indexing.
	for x := 0; x < width; x++ {
		n := predict.Derive(get, width, height, x, y)
		context, sign := predict.Context(qtables, n)

		var diff int
		if golombCoder != nil {
			diff = golombCoder.DecodeSymbol(context, &sl.GolombState[quant][context], shift)
		} else {
			diff = coder.GetSint(sl.State.Context(quant, context))
		}
		if sign {
			diff = -diff
		}

		val := diff
		if d.record.ColorspaceType == 0 && d.record.BitsPerRawSample == 16 && golombCoder == nil {
			left, top, topLeft := signExtend16(n.Left), signExtend16(n.Top), signExtend16(n.TopLeft)
			val += predict.Median(left, top, left+top-topLeft)
		} else {
			val += predict.Predict(n.Left, n.Top, n.TopLeft)
		}

		val &= (1 << uint(shift)) - 1
		frame.set(plane, offset+y*stride+x, val)
	}
}
