package record

import (
	"fmt"

	"github.com/cocosip/go-ffv1/internal/crc"
	"github.com/cocosip/go-ffv1/internal/predict"
	"github.com/cocosip/go-ffv1/internal/rangecoder"
)

// Parse decodes an FFV1 v3 configuration record. Every field before the
// trailing 4-byte CRC-32/MPEG-2 parity is itself range-coded, the same
// entropy layer used by slice headers -- a configuration record is, in
// effect, a single very small slice.
func Parse(data []byte) (*ConfigRecord, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("configuration record too short: %d bytes", len(data))
	}
	if !crc.Valid(data) {
		return nil, fmt.Errorf("configuration record CRC mismatch")
	}

	body := data[:len(data)-4]
	c := rangecoder.NewCoder(body)

	readUint := func() int { return c.GetUint(rangecoder.NewState()) }
	readBool := func() bool { return readUint() != 0 }

	rec := &ConfigRecord{}
	rec.BitsPerRawSample = readUint()
	rec.ColorspaceType = readUint()
	rec.ChromaPlanes = readBool()
	rec.ExtraPlane = readBool()
	rec.Log2HChroma = readUint()
	rec.Log2VChroma = readUint()
	rec.NumHSlicesMinus1 = readUint()
	rec.NumVSlicesMinus1 = readUint()
	rec.CoderType = readUint()
	rec.EC = readUint()

	if rec.BitsPerRawSample < 8 || rec.BitsPerRawSample > 16 {
		return nil, fmt.Errorf("invalid bits_per_raw_sample: %d", rec.BitsPerRawSample)
	}

	setCount := readUint() + 1
	rec.QuantTableSets = make([]QuantTableSet, setCount)
	for i := range rec.QuantTableSets {
		rec.QuantTableSets[i].Tables = readQuantTables(c)
	}

	tState := rangecoder.NewState()
	for i := 1; i < 256; i++ {
		rec.StateTransitionDelta[i] = int8(c.GetSint(tState))
	}

	// initial_state_delta[set][row][context]: row ranges over
	// CONTEXT_SIZE (the 32-entry per-context get_symbol scratch state,
	// not a spatial row), matching rangecoder.ContextSize.
	rec.InitialStateDelta = make([][][]int8, setCount)
	for i := range rec.InitialStateDelta {
		contexts := rec.QuantTableSets[i].ContextCount()
		rec.InitialStateDelta[i] = make([][]int8, rangecoder.ContextSize)
		sState := rangecoder.NewState()
		for row := 0; row < rangecoder.ContextSize; row++ {
			rec.InitialStateDelta[i][row] = make([]int8, contexts)
			for ctx := 0; ctx < contexts; ctx++ {
				rec.InitialStateDelta[i][row][ctx] = int8(c.GetSint(sState))
			}
		}
	}

	return rec, nil
}

// readQuantTables decodes one quant table set's five 256-entry tables
// via FFV1's run-length delta scheme: each table's indices 0..127 are
// filled by ascending runs of constant value (value v for run i,
// incrementing after each run), mirrored with the opposite sign onto the negative
// half of the index space. Once all five raw tables are decoded, each
// is scaled by the product of the ranges of the tables before it, so a
// plain sum of the five lookups in internal/predict.Context yields the
// final context index directly.
func readQuantTables(c *rangecoder.Coder) predict.QuantTables {
	var raw [5][256]int16
	for t := 0; t < 5; t++ {
		v := int16(0)
		i := 0
		st := rangecoder.NewState()
		for i < 128 {
			runLen := c.GetUint(st) + 1
			if i+runLen > 128 {
				runLen = 128 - i
			}
			for j := 0; j < runLen; j++ {
				idx := i + j
				raw[t][idx] = v
				if idx != 0 {
					raw[t][(256-idx)&0xFF] = -v
				}
			}
			i += runLen
			v++
		}
		// Index 128 is its own mirror (256-128 == 128), so the generic
		// reflection above never reaches it; the draft fixes it up
		// explicitly as the negation of index 127.
		raw[t][128] = -raw[t][127]
	}

	var q predict.QuantTables
	stride := 1
	for t := 0; t < 5; t++ {
		for i := 0; i < 256; i++ {
			q[t][i] = raw[t][i] * int16(stride)
		}
		stride *= quantRange(raw[t])
	}
	return q
}

func quantRange(table [256]int16) int {
	min, max := int(table[0]), int(table[0])
	for _, v := range table {
		if int(v) < min {
			min = int(v)
		}
		if int(v) > max {
			max = int(v)
		}
	}
	span := max
	if -min > span {
		span = -min
	}
	return 2*span + 1
}
