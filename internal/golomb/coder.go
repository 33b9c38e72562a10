// Package golomb implements FFV1's alternative entropy coder: an
// adaptive Golomb-Rice coder with a run-length submode for flat regions,
// selected per slice by coder_type == 0.
package golomb

// runLog2Table is the run-length step-size table shared with every
// run-length-coded mode descended from it (H.264, FLAC, FFV1): the
// number of raw bits read to extend a run at run_index i is
// runLog2Table[i].
var runLog2Table = [41]uint8{
	0, 0, 0, 0, 1, 1, 1, 1,
	2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7,
	8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23,
	24,
}

// Coder is an adaptive Golomb-Rice decoder. A fresh Coder is positioned
// at the byte the range coder's SentinelEnd left off at; the caller is
// responsible for slicing the buffer to that offset (buf[pos-1:] per
// the slice's coder_type == 0 handoff).
type Coder struct {
	r *bitReader

	runIndex int
	runLeft  int
	inRun    bool
}

// NewCoder creates a Golomb-Rice coder over buf.
func NewCoder(buf []byte) *Coder {
	return &Coder{r: newBitReader(buf)}
}

// NewPlane resets run-length state at the start of a new color plane
// within a slice (width is unused by the decoder itself but documents
// the call site's intent, mirroring decoder.rs's new_plane(width)).
func (c *Coder) NewPlane(width int) {
	c.runIndex = 0
	c.runLeft = 0
	c.inRun = false
}

// NewLine resets the in-progress-run flag at the start of each line: a
// run never spans a line boundary.
func (c *Coder) NewLine() {
	c.runLeft = 0
	c.inRun = false
}

// DecodeSymbol decodes one pixel's signed residual. context selects the
// per-context adaptive state; shift is bits_per_raw_sample (or +1 for
// RGB/RCT planes), bounding both the Rice parameter and the escape/run
// bit widths. context == 0 -- the flattest possible neighbourhood -- is
// the only context that can enter run-length mode, mirroring JPEG-LS's
// qs == 0 run-mode trigger.
func (c *Coder) DecodeSymbol(context int, state *State, shift int) int {
	if context == 0 {
		if c.runLeft > 0 {
			c.runLeft--
			return 0
		}
		if !c.inRun {
			run := c.decodeRunLength()
			c.inRun = true
			if run > 0 {
				c.runLeft = run - 1
				return 0
			}
		}
		c.inRun = false
	}
	return c.decodeRegular(state, shift)
}

// decodeRunLength reads an adaptive unary run length: each 1-bit extends
// the run by 1<<runLog2Table[runIndex] and advances run_index (clamped
// to the table's last entry); a terminating 0-bit is followed by
// runLog2Table[runIndex] raw remainder bits, after which run_index steps
// back down by one (clamped at 0) since the run was interrupted short of
// a full step.
func (c *Coder) decodeRunLength() int {
	count := 0
	for {
		bits := int(runLog2Table[c.runIndex])
		if bits == 0 {
			if c.r.readBit() == 0 {
				if c.runIndex > 0 {
					c.runIndex--
				}
				return count
			}
			count++
			if c.runIndex < len(runLog2Table)-1 {
				c.runIndex++
			}
			continue
		}
		if c.r.readBit() == 0 {
			count += c.r.readBits(bits)
			if c.runIndex > 0 {
				c.runIndex--
			}
			return count
		}
		count += 1 << uint(bits)
		if c.runIndex < len(runLog2Table)-1 {
			c.runIndex++
		}
	}
}

// decodeRegular decodes one residual via adaptive Rice coding: a unary
// prefix (capped at shift+11, beyond which an explicit shift-bit escape
// value is read instead), k low bits of magnitude (k clamped to
// [0,shift-1]), and an interleaved sign fold (even values are
// non-negative, odd values negative) instead of a separate sign bit.
func (c *Coder) decodeRegular(state *State, shift int) int {
	k := state.k(shift - 1)
	escapeAt := shift + 11

	prefix := 0
	for prefix < escapeAt && c.r.readBit() == 1 {
		prefix++
	}

	var v int
	if prefix == escapeAt {
		v = c.r.readBits(shift)
	} else {
		low := 0
		if k > 0 {
			low = c.r.readBits(k)
		}
		v = (prefix << uint(k)) | low
	}

	var raw int
	if v&1 != 0 {
		raw = -((v + 1) >> 1)
	} else {
		raw = v >> 1
	}

	state.update(raw)
	return raw + state.Bias
}
