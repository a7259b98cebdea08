package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Extremes returns the indices of every value that no other value beats under
// better, in order. better(a, b) reports whether a is strictly better than b.
func Extremes(values []float64, better func(a, b float64) bool) []int {
	if len(values) == 0 {
		return nil
	}
	best := values[0]
	for _, v := range values[1:] {
		if better(v, best) {
			best = v
		}
	}
	indices := []int{}
	for i, v := range values {
		if !better(best, v) {
			indices = append(indices, i)
		}
	}
	return indices
}
