package predict

// QuantTables holds one quantization table set's five per-gradient
// lookup tables, each already scaled by its context stride (table 1's
// values are pre-multiplied by table 0's range, and so on) so that
// summing all five quantized gradients directly yields the final
// context index -- no further multiplication needed at the call site.
type QuantTables [5][256]int16

func quantize(table *[256]int16, delta int) int {
	return int(table[uint8(delta)])
}

// Context computes the signed context index for a pixel from its
// neighbourhood, folding the five quantized gradients
// (left-topLeft, topLeft-top, top-topRight, left2-left, top2-top) into a
// single sum. A negative sum is folded to its absolute value, with sign
// reporting whether the fold happened -- the caller must negate the
// decoded residual back when sign is true, since contexts are stored and
// coded without a separate sign dimension.
func Context(q *QuantTables, n Neighbours) (context int, sign bool) {
	c := quantize(&q[0], n.Left-n.TopLeft) +
		quantize(&q[1], n.TopLeft-n.Top) +
		quantize(&q[2], n.Top-n.TopRight) +
		quantize(&q[3], n.Left2-n.Left) +
		quantize(&q[4], n.Top2-n.Top)

	if c < 0 {
		return -c, true
	}
	return c, false
}
