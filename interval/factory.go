package interval

import (
	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/common"
	"github.com/uyouii/display-intervals/model"
	"github.com/uyouii/display-intervals/sample"
	"github.com/uyouii/display-intervals/zscale"
)

// NewFromConfig builds the strategy named by cfg.Strategy. When sampler is
// nil a sampler seeded with cfg.Seed is used, or the process sampler if
// the seed is 0.
func NewFromConfig(cfg *model.IntervalConfig, sampler sample.Sampler) (Interval, error) {
	if cfg == nil {
		return nil, errors.Wrap(common.ErrorInvalidConfig, "nil interval config")
	}
	if sampler == nil && cfg.Seed != 0 {
		sampler = sample.NewRandomSampler(cfg.Seed)
	}

	switch cfg.Strategy {
	case model.StrategyManual:
		opts := []ManualOption{}
		if cfg.Manual.Vmin != nil {
			opts = append(opts, WithVmin(*cfg.Manual.Vmin))
		}
		if cfg.Manual.Vmax != nil {
			opts = append(opts, WithVmax(*cfg.Manual.Vmax))
		}
		return NewManualInterval(opts...), nil

	case model.StrategyMinMax:
		return NewMinMaxInterval(), nil

	case model.StrategyPercentile:
		if cfg.Percentile.Percentile == nil {
			return nil, errors.Wrap(common.ErrorInvalidConfig, "percentile interval needs a percentile")
		}
		iv, err := NewPercentileInterval(*cfg.Percentile.Percentile, percentileOptionsFrom(cfg.Percentile, sampler)...)
		if err != nil {
			return nil, err
		}
		return iv, nil

	case model.StrategyAsymmetricPercentile:
		if cfg.Percentile.Lower == nil || cfg.Percentile.Upper == nil {
			return nil, errors.Wrap(common.ErrorInvalidConfig, "asymmetric percentile interval needs lower and upper")
		}
		iv, err := NewAsymmetricPercentileInterval(*cfg.Percentile.Lower, *cfg.Percentile.Upper,
			percentileOptionsFrom(cfg.Percentile, sampler)...)
		if err != nil {
			return nil, err
		}
		return iv, nil

	case model.StrategyZscale:
		iv, err := NewZscaleInterval(ZscaleConfigFrom(cfg.Zscale), sampler)
		if err != nil {
			return nil, err
		}
		return iv, nil
	}

	return nil, errors.Wrapf(common.ErrorInvalidValue, "unknown interval strategy %q", cfg.Strategy)
}

func percentileOptionsFrom(cfg model.PercentileConfig, sampler sample.Sampler) []PercentileOption {
	opts := []PercentileOption{WithSampler(sampler)}
	if cfg.NSamples != nil {
		opts = append(opts, WithNSamples(*cfg.NSamples))
	}
	return opts
}

// ZscaleConfigFrom fills the fields left unset in cfg with the zscale
// defaults. Set fields are copied as is, validation happens in NewFitter.
func ZscaleConfigFrom(cfg model.ZscaleConfig) zscale.Config {
	res := zscale.DefaultConfig()
	if cfg.NSamples != nil {
		res.NSamples = *cfg.NSamples
	}
	if cfg.Contrast != nil {
		res.Contrast = *cfg.Contrast
	}
	if cfg.MaxReject != nil {
		res.MaxReject = *cfg.MaxReject
	}
	if cfg.MinNPixels != nil {
		res.MinNPixels = *cfg.MinNPixels
	}
	if cfg.KRej != nil {
		res.KRej = *cfg.KRej
	}
	if cfg.MaxIterations != nil {
		res.MaxIterations = *cfg.MaxIterations
	}
	return res
}
