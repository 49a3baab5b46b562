package interval

import (
	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/common"
	"github.com/uyouii/display-intervals/utils"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalize maps values into a new slice with the limits iv computes
// from them: (v - vmin) / (vmax - vmin), clipped to [0, 1] when clip is set.
// When vmax == vmin the division is skipped and the result is v - vmin.
func Normalize[T constraints.Integer | constraints.Float](iv Interval, values []T, clip bool) ([]float64, error) {
	data := utils.ToFloat64s(values)
	return NormalizeInto(iv, data, clip, data)
}

// NormalizeInto is Normalize writing into out, which must have the length
// of values and may be values itself. Nothing is written on error.
func NormalizeInto(iv Interval, values []float64, clip bool, out []float64) ([]float64, error) {
	if len(out) != len(values) {
		return nil, errors.Wrapf(common.ErrorOutputType,
			"output length %v does not match input length %v", len(out), len(values))
	}

	vmin, vmax, err := iv.GetLimits(values)
	if err != nil {
		return nil, err
	}

	copy(out, values)
	floats.AddConst(-vmin, out)

	if width := vmax - vmin; width != 0 {
		for i := range out {
			out[i] /= width
		}
	}

	if clip {
		Clip(out, 0, 1)
	}
	return out, nil
}

// NormalizeMatrix normalizes all elements of m together, as one image.
func NormalizeMatrix(iv Interval, m mat.Matrix, clip bool) (*mat.Dense, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.Wrap(common.ErrorEmptyInput, "normalize matrix")
	}

	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}

	if _, err := NormalizeInto(iv, data, clip, data); err != nil {
		return nil, err
	}
	return mat.NewDense(r, c, data), nil
}

// Clip clamps every element of x into [lower, upper] in place. NaN stays NaN.
func Clip(x []float64, lower, upper float64) {
	for i, v := range x {
		if v < lower {
			x[i] = lower
		} else if v > upper {
			x[i] = upper
		}
	}
}
