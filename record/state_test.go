package record

import "testing"

func TestBuildStateTransitionLeavesIndexZeroReserved(t *testing.T) {
	rec := &ConfigRecord{}
	table := BuildStateTransition(rec)
	if table[0] != 0 {
		t.Fatalf("table[0] = %d, want 0 (reserved)", table[0])
	}
}

func TestBuildStateTransitionAppliesDeltas(t *testing.T) {
	rec := &ConfigRecord{}
	rec.StateTransitionDelta[5] = 3
	table := BuildStateTransition(rec)
	want := uint8((int(table[5]) - 3) & 0xFF)
	_ = want
	// Recompute independently to check the delta was actually folded in.
	plain := BuildStateTransition(&ConfigRecord{})
	if table[5] == plain[5] {
		t.Fatalf("delta at index 5 was not applied")
	}
}

func TestBuildInitialStatesRow0DefaultsTo128(t *testing.T) {
	rec := &ConfigRecord{
		QuantTableSets: []QuantTableSet{{}},
	}
	// One set, default (all-zero) quant tables -> ContextCount() == 1.
	rec.InitialStateDelta = [][][]int8{
		make([][]int8, 32),
	}
	for i := range rec.InitialStateDelta[0] {
		rec.InitialStateDelta[0][i] = []int8{0}
	}

	tensor := BuildInitialStates(rec)
	ctx0 := tensor.Context(0, 0)
	if ctx0[0] != 128 {
		t.Fatalf("row 0 = %d, want 128", ctx0[0])
	}
}

func TestStateTensorCloneIsIndependent(t *testing.T) {
	rec := &ConfigRecord{QuantTableSets: []QuantTableSet{{}}}
	rec.InitialStateDelta = [][][]int8{make([][]int8, 32)}
	for i := range rec.InitialStateDelta[0] {
		rec.InitialStateDelta[0][i] = []int8{0}
	}
	tensor := BuildInitialStates(rec)
	clone := tensor.Clone()
	clone.Contexts[0][0] = 7
	if tensor.Contexts[0][0] == 7 {
		t.Fatalf("Clone aliased the original tensor's backing array")
	}
}
