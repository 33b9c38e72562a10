// Package predict implements FFV1's spatial predictor: neighbourhood
// derivation with border clamping, the quantized-gradient context sum,
// and the three-value median predictor.
package predict

// Neighbours holds the six samples FFV1's context and predictor need
// around the pixel at (x, y): the four immediate neighbours (left, top,
// top-left, top-right) and the two second-order ones (two pixels left,
// two rows up) used only by the context's outer gradients.
type Neighbours struct {
	Left, Top, TopLeft, TopRight int
	Left2, Top2                  int
}

// Derive returns the neighbourhood of the pixel at local coordinates
// (x, y) within a width x height plane (or slice rectangle), reading
// already-decoded samples through get(px, py). Coordinates are clamped
// at the plane's edges the way FFV1 does: the first row has no samples
// above it at all, so its neighbours are zero; the first column has no
// sample to its left, so it falls back to the sample directly above
// instead; the last column's top-right falls back to top.
func Derive(get func(x, y int) int, width, height, x, y int) Neighbours {
	var n Neighbours

	if y == 0 {
		n.Top = 0
		n.TopLeft = 0
		n.TopRight = 0
		n.Top2 = 0
	} else {
		n.Top = get(x, y-1)
		if x == 0 {
			n.TopLeft = n.Top
		} else {
			n.TopLeft = get(x-1, y-1)
		}
		if x == width-1 {
			n.TopRight = n.Top
		} else {
			n.TopRight = get(x+1, y-1)
		}
		if y < 2 {
			n.Top2 = 0
		} else {
			n.Top2 = get(x, y-2)
		}
	}

	if x == 0 {
		if y > 0 {
			n.Left = n.Top
		} else {
			n.Left = 0
		}
		n.Left2 = n.Left
	} else {
		n.Left = get(x-1, y)
		if x < 2 {
			n.Left2 = n.Left
		} else {
			n.Left2 = get(x-2, y)
		}
	}

	return n
}
