// Package fslice implements FFV1's per-slice bookkeeping: locating
// slices from a frame's trailing footers, decoding each slice's header,
// and holding the mutable per-slice entropy-coder state that persists
// across inter frames.
package fslice

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-ffv1/internal/rangecoder"
)

// Info is one slice's location and integrity fields, as parsed from its
// trailing footer.
type Info struct {
	Pos         int
	Size        int
	ErrorStatus byte
	CRC         uint32
}

// IsKeyframe reads the first bit of slice 0's range coder: FFV1 frames
// carry their keyframe flag there rather than in a separate frame
// header, so the frame engine reads it before it even knows how many
// slices there are.
func IsKeyframe(buf []byte) bool {
	c := rangecoder.NewCoder(buf)
	state := uint8(128)
	return c.GetBit(&state) != 0
}

// ParseFooters scans buf from the end, walking backward footer by
// footer, and returns the frame's slice descriptors in left-to-right,
// top-to-bottom (i.e. bitstream) order. Each footer is
// [crc32 if ec : 4 BE][error_status : 1][slice_size : 3 BE], and the
// slice immediately preceding it in the buffer is exactly slice_size
// bytes long.
func ParseFooters(buf []byte, ec bool) ([]Info, error) {
	footerLen := 4
	if ec {
		footerLen = 8
	}

	var infos []Info
	pos := len(buf)
	for pos > 0 {
		footerStart := pos - footerLen
		if footerStart < 0 {
			return nil, fmt.Errorf("truncated slice footer at offset %d", pos)
		}
		footer := buf[footerStart:pos]

		idx := 0
		var crcVal uint32
		if ec {
			crcVal = binary.BigEndian.Uint32(footer[0:4])
			idx = 4
		}
		errStatus := footer[idx]
		size := int(footer[idx+1])<<16 | int(footer[idx+2])<<8 | int(footer[idx+3])

		sliceStart := footerStart - size
		if sliceStart < 0 {
			return nil, fmt.Errorf("slice size %d overruns buffer at offset %d", size, footerStart)
		}

		infos = append(infos, Info{Pos: sliceStart, Size: size, ErrorStatus: errStatus, CRC: crcVal})
		pos = sliceStart
	}

	for i, j := 0, len(infos)-1; i < j; i, j = i+1, j-1 {
		infos[i], infos[j] = infos[j], infos[i]
	}
	return infos, nil
}

// CheckRegionLen returns the number of bytes, starting at a slice's Pos,
// that its CRC-32/MPEG-2 check must cover: the slice payload plus its
// own 8-byte footer (error_status, slice_size, and the CRC itself).
func (i Info) CheckRegionLen() int {
	return i.Size + 8
}
