package record

import "github.com/cocosip/go-ffv1/internal/rangecoder"

// StateTensor holds, per quant table set, the initial 8-bit range-coder
// state for every context -- CONTEXT_SIZE (32) bytes per context, the
// exact scratch shape internal/rangecoder.GetUint/GetSint expects. It is
// built once at decoder construction, shared read-only across every
// slice worker, and cloned per-slice whenever a keyframe resets slice
// state.
type StateTensor struct {
	ContextCounts []int
	// Contexts[set] is a flat []uint8 of length ContextCounts[set]*32,
	// context c's scratch array occupying
	// Contexts[set][c*32 : c*32+32].
	Contexts [][]uint8
}

// Context returns the CONTEXT_SIZE-wide initial scratch state for the
// given set and context, ready to be copied into a slice's mutable
// state.
func (t *StateTensor) Context(set, ctx int) []uint8 {
	off := ctx * rangecoder.ContextSize
	return t.Contexts[set][off : off+rangecoder.ContextSize]
}

// Clone deep-copies the tensor, used to give a freshly keyframed slice
// its own mutable state.
func (t *StateTensor) Clone() *StateTensor {
	clone := &StateTensor{
		ContextCounts: append([]int(nil), t.ContextCounts...),
		Contexts:      make([][]uint8, len(t.Contexts)),
	}
	for i, c := range t.Contexts {
		clone.Contexts[i] = append([]uint8(nil), c...)
	}
	return clone
}

// BuildInitialStates derives the initial range-coder state tensor from
// the configuration record's deltas: for each quant table set and
// context, row 0 predicts from 128, every later row predicts from the
// previous row's just-computed value for the same context, mod 256.
func BuildInitialStates(rec *ConfigRecord) *StateTensor {
	tensor := &StateTensor{
		ContextCounts: make([]int, len(rec.QuantTableSets)),
		Contexts:      make([][]uint8, len(rec.QuantTableSets)),
	}

	for i := range rec.QuantTableSets {
		cc := rec.QuantTableSets[i].ContextCount()
		tensor.ContextCounts[i] = cc
		tensor.Contexts[i] = make([]uint8, cc*rangecoder.ContextSize)

		prevRow := make([]int, cc)
		for ctx := range prevRow {
			prevRow[ctx] = 128
		}
		for row := 0; row < rangecoder.ContextSize; row++ {
			for ctx := 0; ctx < cc; ctx++ {
				pred := 128
				if row != 0 {
					pred = prevRow[ctx]
				}
				delta := 0
				if row < len(rec.InitialStateDelta[i]) && ctx < len(rec.InitialStateDelta[i][row]) {
					delta = int(rec.InitialStateDelta[i][row][ctx])
				}
				v := (pred + delta) & 0xFF
				prevRow[ctx] = v
				tensor.Contexts[i][ctx*rangecoder.ContextSize+row] = uint8(v)
			}
		}
	}

	return tensor
}

// BuildStateTransition derives the slice-wide state-transition table
// from the default table and the record's deltas. Index 0 is reserved
// and left at its default (zero) value.
func BuildStateTransition(rec *ConfigRecord) [256]uint8 {
	table := rangecoder.DefaultStateTransition
	for i := 1; i < 256; i++ {
		table[i] = uint8((int(rangecoder.DefaultStateTransition[i]) + int(rec.StateTransitionDelta[i])) & 0xFF)
	}
	return table
}
