package fslice

import (
	"encoding/binary"
	"testing"
)

func buildFooter(dataLen int, ec bool, errStatus byte) []byte {
	footer := make([]byte, 4)
	footer[0] = errStatus
	footer[1] = byte(dataLen >> 16)
	footer[2] = byte(dataLen >> 8)
	footer[3] = byte(dataLen)
	if ec {
		crc := make([]byte, 4)
		binary.BigEndian.PutUint32(crc, 0)
		footer = append(crc, footer...)
	}
	return footer
}

func TestParseFootersSingleSliceNoCRC(t *testing.T) {
	data := make([]byte, 10)
	buf := append(data, buildFooter(len(data), false, 0)...)

	infos, err := ParseFooters(buf, false)
	if err != nil {
		t.Fatalf("ParseFooters: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("len(infos) = %d, want 1", len(infos))
	}
	if infos[0].Pos != 0 || infos[0].Size != len(data) {
		t.Fatalf("infos[0] = %+v", infos[0])
	}
}

func TestParseFootersMultipleSlicesOrderedLeftToRight(t *testing.T) {
	var buf []byte
	slice1 := make([]byte, 5)
	slice2 := make([]byte, 7)
	buf = append(buf, slice1...)
	buf = append(buf, buildFooter(len(slice1), false, 0)...)
	firstEnd := len(buf)
	buf = append(buf, slice2...)
	buf = append(buf, buildFooter(len(slice2), false, 0)...)

	infos, err := ParseFooters(buf, false)
	if err != nil {
		t.Fatalf("ParseFooters: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len(infos) = %d, want 2", len(infos))
	}
	if infos[0].Pos != 0 || infos[0].Size != len(slice1) {
		t.Fatalf("infos[0] = %+v, want first slice", infos[0])
	}
	if infos[1].Pos != firstEnd || infos[1].Size != len(slice2) {
		t.Fatalf("infos[1] = %+v, want second slice", infos[1])
	}
}

func TestParseFootersTruncatedBufferErrors(t *testing.T) {
	_, err := ParseFooters([]byte{1, 2, 3}, false)
	if err == nil {
		t.Fatalf("expected error for truncated footer")
	}
}

func TestCheckRegionLenIncludesCRCAndFooter(t *testing.T) {
	info := Info{Size: 100}
	if got := info.CheckRegionLen(); got != 108 {
		t.Fatalf("CheckRegionLen() = %d, want 108", got)
	}
}
