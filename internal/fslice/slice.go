package fslice

import (
	"github.com/cocosip/go-ffv1/internal/golomb"
	"github.com/cocosip/go-ffv1/internal/rangecoder"
	"github.com/cocosip/go-ffv1/record"
)

// Header holds a slice's decoded header fields. Rectangle resolves them
// to a pixel-space rectangle.
type Header struct {
	SliceX, SliceY                      int
	SliceWidthMinus1, SliceHeightMinus1 int
	QuantTableSetIndex                  []int
	PictureStructure                    int
	SarNum, SarDen                      int
}

// Slice is one frame's independently-decodable region: its resolved
// pixel rectangle, its header, and the entropy-coder state that FFV1
// lets persist across inter frames until the next keyframe.
type Slice struct {
	StartX, StartY, Width, Height int
	Header                        Header

	// State mirrors the shape of the decoder's shared initial-state
	// tensor (one CONTEXT_SIZE-wide scratch array per quant-set context)
	// but is exclusively owned by this slice once cloned from it.
	State *record.StateTensor

	// GolombState[set][context] is only populated when coder_type == 0.
	GolombState [][]golomb.State
}

// ParseSliceHeader decodes a slice's header fields from coder (already
// positioned at the slice's start). It does not resolve the pixel
// rectangle; the frame size and slice-grid arguments are unused here,
// and Rectangle does that resolution.
func ParseSliceHeader(coder *rangecoder.Coder, chromaPlanes, extraPlane bool, frameWidth, frameHeight, numHSlicesMinus1, numVSlicesMinus1 int) Header {
	st := rangecoder.NewState()
	readUint := func() int { return coder.GetUint(st) }

	var h Header
	h.SliceX = readUint()
	h.SliceY = readUint()
	h.SliceWidthMinus1 = readUint()
	h.SliceHeightMinus1 = readUint()

	indexCount := 1
	if chromaPlanes {
		indexCount++
	}
	if extraPlane {
		indexCount++
	}
	h.QuantTableSetIndex = make([]int, indexCount)
	for i := range h.QuantTableSetIndex {
		h.QuantTableSetIndex[i] = readUint()
	}

	h.PictureStructure = readUint()
	h.SarNum = readUint()
	h.SarDen = readUint()

	return h
}

// Rectangle resolves a slice header's grid coordinates to a pixel-space
// rectangle, using the rounding FFV1 requires to avoid drift across the
// slice grid: boundaries are computed from scratch at each edge rather
// than accumulated from a running width.
func Rectangle(h Header, frameWidth, frameHeight, numHSlicesMinus1, numVSlicesMinus1 int) (startX, startY, width, height int) {
	hSlices := numHSlicesMinus1 + 1
	vSlices := numVSlicesMinus1 + 1

	startX = h.SliceX * frameWidth / hSlices
	startY = h.SliceY * frameHeight / vSlices
	width = (h.SliceX+h.SliceWidthMinus1+1)*frameWidth/hSlices - startX
	height = (h.SliceY+h.SliceHeightMinus1+1)*frameHeight/vSlices - startY
	return
}
