package fslice

import "github.com/cocosip/go-ffv1/internal/golomb"

// NewGolombStates allocates a fresh Golomb-Rice state table, one
// golomb.State per (quant table set, context) pair, each defaulted via
// golomb.NewState().
func NewGolombStates(contextCounts []int) [][]golomb.State {
	states := make([][]golomb.State, len(contextCounts))
	for i, cc := range contextCounts {
		states[i] = make([]golomb.State, cc)
		for j := range states[i] {
			states[i][j] = golomb.NewState()
		}
	}
	return states
}

// CloneGolombStates deep-copies a Golomb-Rice state table, giving a
// carried-over inter-frame slice its own mutable copy of the preceding
// frame's state.
func CloneGolombStates(states [][]golomb.State) [][]golomb.State {
	clone := make([][]golomb.State, len(states))
	for i, row := range states {
		clone[i] = append([]golomb.State(nil), row...)
	}
	return clone
}
