package golomb

import "testing"

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	if s.Count != 1 || s.ErrorSum != 4 || s.Drift != 0 || s.Bias != 0 {
		t.Fatalf("NewState() = %+v, want {Drift:0 ErrorSum:4 Count:1 Bias:0}", s)
	}
}

func TestStateKClampedToMaxK(t *testing.T) {
	s := State{ErrorSum: 1 << 20, Count: 1}
	if got := s.k(8); got != 8 {
		t.Fatalf("k(8) = %d, want 8 (clamped)", got)
	}
}

func TestStateKZeroWhenFlat(t *testing.T) {
	// No accumulated error: error_sum/count is 0, so k clamps up to 0.
	s := State{ErrorSum: 0, Count: 1}
	if got := s.k(8); got != 0 {
		t.Fatalf("k(8) on flat state = %d, want 0", got)
	}
}

func TestStateUpdateHalvesAtCountSaturation(t *testing.T) {
	s := State{ErrorSum: 200, Count: 127, Drift: 10}
	s.update(1)
	if s.Count != 64 {
		t.Fatalf("Count after saturation halving = %d, want 64", s.Count)
	}
}

func TestDecodeSymbolDeterministic(t *testing.T) {
	buf := []byte{0xAA, 0x55, 0xF0, 0x0F, 0x12, 0x34, 0x00, 0x00}

	decode := func() []int {
		c := NewCoder(buf)
		c.NewPlane(8)
		c.NewLine()
		st := NewState()
		out := make([]int, 8)
		for i := range out {
			out[i] = c.DecodeSymbol(3, &st, 8)
		}
		return out
	}

	a := decode()
	b := decode()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("decode not deterministic at sample %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestRunModeContextZeroConsumesZerosWithoutPanicking(t *testing.T) {
	buf := make([]byte, 16)
	c := NewCoder(buf)
	c.NewPlane(16)
	c.NewLine()
	st := NewState()
	for i := 0; i < 16; i++ {
		_ = c.DecodeSymbol(0, &st, 8)
	}
}

func TestNewLineResetsInRun(t *testing.T) {
	buf := make([]byte, 16)
	c := NewCoder(buf)
	c.NewPlane(16)
	c.NewLine()
	st := NewState()
	c.DecodeSymbol(0, &st, 8)
	c.NewLine()
	if c.inRun || c.runLeft != 0 {
		t.Fatalf("NewLine did not reset run state: inRun=%v runLeft=%d", c.inRun, c.runLeft)
	}
}
