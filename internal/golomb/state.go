package golomb

// State is the per-context adaptive state for the Golomb-Rice coder.
// Drift mirrors the role JPEG-LS calls "B" (bias accumulator); Bias
// mirrors JPEG-LS's "C" (the actual prediction-correction term folded
// into the next sample). Coder.decodeRegular adds Bias to every
// residual it decodes.
type State struct {
	Drift    int
	ErrorSum int
	Count    int
	Bias     int
}

// NewState returns a context's initial adaptive state.
func NewState() State {
	return State{Drift: 0, ErrorSum: 4, Count: 1, Bias: 0}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// update folds a just-decoded residual into the context's adaptive
// state: the running error magnitude and drift accumulate, the sample
// count increments (halving all three once it saturates at 128), and the
// bias correction nudges by one step, the same three-part recurrence
// JPEG-LS uses for its A/B/N/C state, under FFV1's
// error_sum/drift/count/bias names.
func (s *State) update(residual int) {
	s.ErrorSum += absInt(residual)
	s.Drift += residual
	s.Count++
	if s.Count == 128 {
		s.Count = (s.Count + 1) >> 1
		s.ErrorSum >>= 1
		s.Drift = ((s.Drift - 1) >> 1) + 1
	}
	s.foldBias()
}

func (s *State) foldBias() {
	if s.Drift+s.Count <= 0 {
		s.Drift += s.Count
		if s.Drift <= -s.Count {
			s.Drift = -s.Count + 1
		}
		if s.Bias > -128 {
			s.Bias--
		}
	} else if s.Drift > 0 {
		s.Drift -= s.Count
		if s.Drift > 0 {
			s.Drift = 0
		}
		if s.Bias < 127 {
			s.Bias++
		}
	}
}

// k returns the current Rice parameter: floor(log2(error_sum/count)),
// clamped to [0, maxK].
func (s *State) k(maxK int) int {
	k := -1
	n := s.ErrorSum / s.Count
	for n > 0 {
		n >>= 1
		k++
	}
	if k < 0 {
		k = 0
	}
	if k > maxK {
		k = maxK
	}
	return k
}
