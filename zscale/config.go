package zscale

import (
	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/common"
)

type Config struct {
	// NSamples caps how many values are considered, larger inputs are subsampled.
	NSamples int
	// Contrast scales the fitted slope, 0 < Contrast <= 1.
	Contrast float64
	// MaxReject is the fraction of samples that may be rejected before the
	// fit is abandoned.
	MaxReject float64
	// MinNPixels is the minimum number of surviving samples.
	MinNPixels int
	// KRej is the rejection threshold in residual standard deviations.
	KRej          float64
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		NSamples:      DefaultNSamples,
		Contrast:      DefaultContrast,
		MaxReject:     DefaultMaxReject,
		MinNPixels:    DefaultMinNPixels,
		KRej:          DefaultKRej,
		MaxIterations: DefaultMaxIterations,
	}
}

func (c Config) Validate() error {
	switch {
	case c.NSamples <= 0:
		return errors.Wrapf(common.ErrorInvalidConfig, "nsamples must be positive, got %v", c.NSamples)
	case !(c.Contrast > 0 && c.Contrast <= 1):
		return errors.Wrapf(common.ErrorInvalidConfig, "contrast must be in (0, 1], got %v", c.Contrast)
	case !(c.MaxReject >= 0 && c.MaxReject <= 1):
		return errors.Wrapf(common.ErrorInvalidConfig, "max_reject must be in [0, 1], got %v", c.MaxReject)
	case c.MinNPixels < 0:
		return errors.Wrapf(common.ErrorInvalidConfig, "min_npixels must not be negative, got %v", c.MinNPixels)
	case !(c.KRej > 0):
		return errors.Wrapf(common.ErrorInvalidConfig, "krej must be positive, got %v", c.KRej)
	case c.MaxIterations < 0:
		return errors.Wrapf(common.ErrorInvalidConfig, "max_iterations must not be negative, got %v", c.MaxIterations)
	}
	return nil
}
