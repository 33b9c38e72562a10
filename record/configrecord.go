// Package record implements FFV1 v3 configuration-record parsing and the
// one-time derivation of the range coder's initial state tensor and
// state-transition table from it.
package record

import "github.com/cocosip/go-ffv1/internal/predict"

// ConfigRecord is a parsed FFV1 v3 configuration record: the container-
// supplied (Matroska CodecPrivate / ISOBMFF glbl) byte sequence that
// tells the decoder how every subsequent frame's bitstream is shaped.
type ConfigRecord struct {
	BitsPerRawSample  int
	ColorspaceType    int // 0: YCbCr, 1: RGB/JPEG2000-RCT
	ChromaPlanes      bool
	ExtraPlane        bool
	Log2HChroma       int
	Log2VChroma       int
	NumHSlicesMinus1  int
	NumVSlicesMinus1  int
	CoderType         int // 0: Golomb-Rice, 1: range default table, 2: range custom table
	EC                int // 0: no CRC, 1: per-slice CRC

	QuantTableSets []QuantTableSet

	StateTransitionDelta [256]int8

	// InitialStateDelta[set][row][context] mirrors the bitstream's
	// initial_state_delta tensor, consumed once by BuildInitialStates.
	InitialStateDelta [][][]int8
}

// QuantTableSet is one named set of five 256-entry quantizers plus the
// context count it implies.
type QuantTableSet struct {
	Tables predict.QuantTables
}

// ContextCount returns the number of distinct (post sign-fold) contexts
// this quant table set produces: half the inclusive span of all
// achievable signed sums across the five tables, rounded up, since every
// negative context is folded onto its positive twin.
func (q *QuantTableSet) ContextCount() int {
	min, max := 0, 0
	for i := range q.Tables {
		tmin, tmax := int(q.Tables[i][0]), int(q.Tables[i][0])
		for _, v := range q.Tables[i] {
			if int(v) < tmin {
				tmin = int(v)
			}
			if int(v) > tmax {
				tmax = int(v)
			}
		}
		min += tmin
		max += tmax
	}
	span := max
	if -min > span {
		span = -min
	}
	return span + 1
}
