package utils

import "cmp"

// ArgMax returns the index of the first maximum in slice, or -1 if it is empty.
func ArgMax[T cmp.Ordered](slice []T) int {
	best := -1
	for i, v := range slice {
		if best == -1 || v > slice[best] {
			best = i
		}
	}
	return best
}
