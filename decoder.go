// Package ffv1 decodes FFV1 (version 3) video frames: given a parsed
// configuration record and a packet containing one frame's slices and
// footers, it reconstructs the frame's planar pixel data.
package ffv1

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cocosip/go-ffv1/internal/crc"
	"github.com/cocosip/go-ffv1/internal/fslice"
	"github.com/cocosip/go-ffv1/internal/golomb"
	"github.com/cocosip/go-ffv1/internal/rangecoder"
	"github.com/cocosip/go-ffv1/record"
)

// Decoder decodes a sequence of FFV1 frames sharing one configuration
// record. Per-slice entropy-coder state is carried across calls to
// DecodeFrame to support inter frames, and reset whenever a keyframe is
// decoded.
type Decoder struct {
	id uuid.UUID

	width, height int
	record        *record.ConfigRecord

	stateTransition [256]uint8
	initialStates   *record.StateTensor

	sliceInfo []fslice.Info
	slices    []*fslice.Slice
}

// NewDecoder parses configRecord (a container-supplied FFV1 v3
// configuration record) and returns a Decoder ready to decode frames of
// the given dimensions.
func NewDecoder(configRecord []byte, width, height int) (*Decoder, error) {
	if width == 0 || height == 0 {
		return nil, &InvalidInputData{Err: ErrZeroDimensions}
	}
	if len(configRecord) == 0 {
		return nil, &InvalidInputData{Err: ErrEmptyRecord}
	}

	rec, err := record.Parse(configRecord)
	if err != nil {
		return nil, &InvalidInputData{Err: fmt.Errorf("parsing v3 configuration record: %w", err)}
	}

	return &Decoder{
		id:              uuid.New(),
		width:           width,
		height:          height,
		record:          rec,
		stateTransition: record.BuildStateTransition(rec),
		initialStates:   record.BuildInitialStates(rec),
	}, nil
}

// ID returns a per-decoder identifier, useful for correlating errors
// back to a specific Decoder instance when a caller runs several
// concurrently (e.g. one per track). It plays no role in decoding.
func (d *Decoder) ID() uuid.UUID { return d.id }

// DecodeFrame decodes one FFV1 frame: packet must contain every slice
// and footer for the decoder's width x height slice grid. On error, the
// decoder's carried-over slice state is left exactly as it was before
// the call, so a corrected packet can be retried against the same
// inter-frame state.
func (d *Decoder) DecodeFrame(packet []byte) (*Frame, error) {
	frame := d.newFrame()

	keyframe := fslice.IsKeyframe(packet)

	infos, err := fslice.ParseFooters(packet, d.record.EC != 0)
	if err != nil {
		return nil, &FrameError{Err: fmt.Errorf("parsing slice footers: %w", err)}
	}

	if !keyframe && len(d.slices) != len(infos) {
		return nil, &FrameError{Err: ErrSliceCountMismatch}
	}

	prev := d.slices
	next := make([]*fslice.Slice, len(infos))

	g, _ := errgroup.WithContext(context.Background())
	for i := range infos {
		i := i
		g.Go(func() error {
			var prevSlice *fslice.Slice
			if !keyframe {
				prevSlice = prev[i]
			}
			sl, err := d.decodeSlice(packet, infos[i], i, keyframe, prevSlice, frame)
			if err != nil {
				return &SliceError{Index: i, Err: err}
			}
			next[i] = sl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.sliceInfo = infos
	d.slices = next

	if d.record.BitsPerRawSample == 8 && d.record.ColorspaceType == 1 {
		frame.Buf16 = nil
	}
	frame.buf32 = nil

	return frame, nil
}

func (d *Decoder) decodeSlice(buf []byte, info fslice.Info, idx int, keyframe bool, prev *fslice.Slice, frame *Frame) (*fslice.Slice, error) {
	if d.record.EC != 0 {
		if info.ErrorStatus != 0 {
			return nil, fmt.Errorf("%w: %d", ErrSliceErrorStatus, info.ErrorStatus)
		}
		regionLen := info.CheckRegionLen()
		if info.Pos+regionLen > len(buf) {
			return nil, fmt.Errorf("CRC check region overruns packet")
		}
		if !crc.Valid(buf[info.Pos : info.Pos+regionLen]) {
			return nil, &InvalidInputData{Err: ErrCRCMismatch}
		}
	}

	sl := &fslice.Slice{}
	if keyframe {
		sl.State = d.initialStates.Clone()
		if d.record.CoderType == 0 {
			sl.GolombState = fslice.NewGolombStates(d.initialStates.ContextCounts)
		}
	} else {
		sl.State = prev.State.Clone()
		if d.record.CoderType == 0 {
			sl.GolombState = fslice.CloneGolombStates(prev.GolombState)
		}
	}

	coder := rangecoder.NewCoder(buf[info.Pos:])

	if idx == 0 {
		dummy := uint8(128)
		coder.GetBit(&dummy)
	}

	if d.record.CoderType == 2 {
		coder.SetTable(d.stateTransition)
	}

	sl.Header = fslice.ParseSliceHeader(coder, d.record.ChromaPlanes, d.record.ExtraPlane, d.width, d.height, d.record.NumHSlicesMinus1, d.record.NumVSlicesMinus1)
	sl.StartX, sl.StartY, sl.Width, sl.Height = fslice.Rectangle(sl.Header, d.width, d.height, d.record.NumHSlicesMinus1, d.record.NumVSlicesMinus1)
	if idx == 0 {
		frame.sarSet = true
		frame.sarNum, frame.sarDen = sl.Header.SarNum, sl.Header.SarDen
	}

	var golombCoder *golomb.Coder
	if d.record.CoderType == 0 {
		coder.SentinelEnd()
		offset := coder.Position() - 1
		if info.Pos+offset < 0 || info.Pos+offset > len(buf) {
			return nil, fmt.Errorf("golomb handoff offset out of range")
		}
		golombCoder = golomb.NewCoder(buf[info.Pos+offset:])
	}

	d.decodeSliceContent(coder, golombCoder, sl, frame)

	return sl, nil
}
