package interval

import (
	"github.com/uyouii/display-intervals/sample"
	"github.com/uyouii/display-intervals/zscale"
)

// ZscaleInterval is the IRAF zscale range, see package zscale.
type ZscaleInterval struct {
	fitter *zscale.Fitter
}

func NewZscaleInterval(cfg zscale.Config, sampler sample.Sampler) (*ZscaleInterval, error) {
	fitter, err := zscale.NewFitter(cfg, sampler)
	if err != nil {
		return nil, err
	}
	return &ZscaleInterval{fitter: fitter}, nil
}

// NewDefaultZscaleInterval uses zscale.DefaultConfig and the process sampler.
func NewDefaultZscaleInterval() *ZscaleInterval {
	iv, err := NewZscaleInterval(zscale.DefaultConfig(), nil)
	if err != nil {
		panic(err)
	}
	return iv
}

func (z *ZscaleInterval) Fitter() *zscale.Fitter {
	return z.fitter
}

func (z *ZscaleInterval) GetLimits(values []float64) (float64, float64, error) {
	return z.fitter.Limits(values)
}
