package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FormatFloat rounds f to the given number of decimals.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	p := math.Pow10(int(round))
	return math.Round(f*p) / p
}

func FormatFloats(fs []float64, round int32) []float64 {
	res := make([]float64, len(fs))
	for i, f := range fs {
		res[i] = FormatFloat(f, round)
	}
	return res
}

func ToFloat64s[T constraints.Integer | constraints.Float](values []T) []float64 {
	res := make([]float64, len(values))
	for i, v := range values {
		res[i] = float64(v)
	}
	return res
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FilterFinite returns the finite values of data in a new slice.
func FilterFinite(data []float64) []float64 {
	res := make([]float64, 0, len(data))
	for _, v := range data {
		if IsFinite(v) {
			res = append(res, v)
		}
	}
	return res
}
