package sim

import "math"

// OverlapSpan returns the start and length of the horizontal intersection of
// two blocks. Length is zero when they are disjoint or only touch at an edge.
func OverlapSpan(a, b Entity) (start, width float64) {
	start = math.Max(a.Left(), b.Left())
	end := math.Min(a.Right(), b.Right())
	if end > start {
		return start, end - start
	}
	return start, 0
}

// Overlap returns the horizontal intersection length of two blocks.
func Overlap(a, b Entity) float64 {
	_, w := OverlapSpan(a, b)
	return w
}
