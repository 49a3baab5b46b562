// Package zscale estimates a display range the way IRAF's zscale does:
// a line is fitted to the sorted samples under sigma clipping and its
// slope, scaled by the contrast, is extrapolated from the median to the
// ends of the sample.
package zscale

import (
	"context"
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/common"
	"github.com/uyouii/display-intervals/sample"
	"github.com/uyouii/display-intervals/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

type Fitter struct {
	cfg     Config
	sampler sample.Sampler
}

// NewFitter validates cfg. A nil sampler uses sample.Default().
func NewFitter(cfg Config, sampler sample.Sampler) (*Fitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Fitter{
		cfg:     cfg,
		sampler: sampler,
	}, nil
}

func (f *Fitter) Config() Config {
	return f.cfg
}

func (f *Fitter) Limits(values []float64) (float64, float64, error) {
	vmin, vmax, _, err := f.LimitsWithFit(values)
	return vmin, vmax, err
}

// LimitsWithFit is Limits plus the fit it was derived from. The fit is nil
// when there were too few finite values to attempt one.
func (f *Fitter) LimitsWithFit(values []float64) (float64, float64, *Fit, error) {
	finite := utils.FilterFinite(values)
	if len(finite) == 0 {
		return 0, 0, nil, errors.Wrap(common.ErrorEmptyInput, "zscale")
	}
	logger := utils.GetLogger(context.Background())
	if len(finite) < f.cfg.MinNPixels {
		logger.Debug("too few finite values for zscale, use min and max",
			zap.Int("finiteCnt", len(finite)), zap.Int("minNPixels", f.cfg.MinNPixels))
		return floats.Min(finite), floats.Max(finite), nil, nil
	}

	// finite is a copy, sorting it leaves the caller's values alone
	samples := sample.Subsample(f.sampler, finite, f.cfg.NSamples)
	sort.Float64s(samples)

	k := len(samples)
	zmin, zmax := samples[0], samples[k-1]

	fit := f.FitSorted(samples)
	logger.Debug("zscale fit finished", zap.String("termination", fit.Termination.String()),
		zap.Int("iterations", fit.Iterations), zap.Int("ngood", fit.NGood),
		zap.Int("nsamples", fit.NSamples), zap.Float64("slope", fit.Slope))
	if fit.Termination.Fallback() {
		return zmin, zmax, fit, nil
	}

	slope := fit.Slope / f.cfg.Contrast
	centerRank := float64((k - 1) / 2)
	med := median(samples)

	z1 := med + slope*(0-centerRank)
	z2 := med + slope*(float64(k-1)-centerRank)
	vmin, vmax := math.Min(z1, z2), math.Max(z1, z2)

	return math.Max(zmin, vmin), math.Min(zmax, vmax), fit, nil
}
