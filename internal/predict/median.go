package predict

// Median returns the median of three values. FFV1's spatial predictor is
// Median(left, top, left+top-topLeft): algebraically identical to the
// LOCO-I/JPEG-LS MED predictor's three-way if/else (if topLeft is at
// least as large as both neighbours, take the smaller one; if it's at
// most as small as both, take the larger; otherwise take left+top-topLeft),
// just expressed as a single median-of-three instead of that case split.
func Median(a, b, c int) int {
	if a > b {
		a, b = b, a
	}
	if c <= a {
		return a
	}
	if c >= b {
		return b
	}
	return c
}

// Predict returns the predicted sample value for a pixel given its left,
// top, and top-left neighbours.
func Predict(left, top, topLeft int) int {
	return Median(left, top, left+top-topLeft)
}
