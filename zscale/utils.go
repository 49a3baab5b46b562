package zscale

func IntMin(i1, i2 int) int {
	if i1 < i2 {
		return i1
	}
	return i2
}

func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// median of values sorted ascending.
func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}
