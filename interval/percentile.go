package interval

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/common"
	"github.com/uyouii/display-intervals/sample"
	"github.com/uyouii/display-intervals/utils"
)

type percentileOptions struct {
	nSamples    int
	hasNSamples bool
	sampler     sample.Sampler
}

type PercentileOption func(*percentileOptions)

// WithNSamples caps the number of values used. Larger inputs are sampled
// with replacement.
func WithNSamples(n int) PercentileOption {
	return func(o *percentileOptions) {
		o.nSamples, o.hasNSamples = n, true
	}
}

func WithSampler(s sample.Sampler) PercentileOption {
	return func(o *percentileOptions) {
		o.sampler = s
	}
}

// AsymmetricPercentileInterval keeps the values between two percentiles.
type AsymmetricPercentileInterval struct {
	lower, upper float64
	opts         percentileOptions
}

func NewAsymmetricPercentileInterval(lower, upper float64,
	opts ...PercentileOption) (*AsymmetricPercentileInterval, error) {
	if !validPercentile(lower) || !validPercentile(upper) {
		return nil, errors.Wrapf(common.ErrorInvalidConfig,
			"percentiles must be in [0, 100], got %v and %v", lower, upper)
	}
	if lower > upper {
		return nil, errors.Wrapf(common.ErrorInvalidConfig,
			"lower percentile %v is above upper percentile %v", lower, upper)
	}

	o := percentileOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasNSamples && o.nSamples <= 0 {
		return nil, errors.Wrapf(common.ErrorInvalidConfig, "n_samples must be positive, got %v", o.nSamples)
	}

	return &AsymmetricPercentileInterval{
		lower: lower,
		upper: upper,
		opts:  o,
	}, nil
}

func (p *AsymmetricPercentileInterval) Percentiles() (lower, upper float64) {
	return p.lower, p.upper
}

func (p *AsymmetricPercentileInterval) GetLimits(values []float64) (float64, float64, error) {
	if p.opts.hasNSamples {
		values = sample.Subsample(p.opts.sampler, values, p.opts.nSamples)
	}

	finite := utils.FilterFinite(values)
	if len(finite) == 0 {
		return 0, 0, errors.Wrap(common.ErrorEmptyInput, "percentile interval")
	}
	sort.Float64s(finite)

	return percentile(finite, p.lower), percentile(finite, p.upper), nil
}

// PercentileInterval keeps the given percentage of values, cutting the
// same amount from both ends.
type PercentileInterval struct {
	*AsymmetricPercentileInterval
	percentile float64
}

func NewPercentileInterval(percentile float64, opts ...PercentileOption) (*PercentileInterval, error) {
	if !validPercentile(percentile) {
		return nil, errors.Wrapf(common.ErrorInvalidConfig, "percentile must be in [0, 100], got %v", percentile)
	}
	lower := (100 - percentile) * 0.5
	upper := 100 - lower

	asym, err := NewAsymmetricPercentileInterval(lower, upper, opts...)
	if err != nil {
		return nil, err
	}
	return &PercentileInterval{
		AsymmetricPercentileInterval: asym,
		percentile:                   percentile,
	}, nil
}

func (p *PercentileInterval) Percentile() float64 {
	return p.percentile
}

func validPercentile(p float64) bool {
	return p >= 0 && p <= 100
}

// percentile interpolates linearly between the closest ranks of sorted,
// rank = p/100 * (n-1).
func percentile(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lowerIndex := int(math.Floor(pos))
	upperIndex := int(math.Ceil(pos))
	if lowerIndex == upperIndex {
		return sorted[lowerIndex]
	}
	fraction := pos - float64(lowerIndex)
	return sorted[lowerIndex] + fraction*(sorted[upperIndex]-sorted[lowerIndex])
}
