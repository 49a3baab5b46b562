package interval

import (
	"math"

	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/common"
	"gonum.org/v1/gonum/floats"
)

// MinMaxInterval spans the full range of the values.
type MinMaxInterval struct{}

func NewMinMaxInterval() MinMaxInterval {
	return MinMaxInterval{}
}

func (MinMaxInterval) GetLimits(values []float64) (float64, float64, error) {
	if len(values) == 0 {
		return 0, 0, errors.Wrap(common.ErrorEmptyInput, "minmax interval")
	}
	vmin, vmax := valueRange(values)
	return vmin, vmax, nil
}

// valueRange is the min and max of values, both NaN when any value is NaN.
func valueRange(values []float64) (float64, float64) {
	if floats.HasNaN(values) {
		return math.NaN(), math.NaN()
	}
	return floats.Min(values), floats.Max(values)
}
