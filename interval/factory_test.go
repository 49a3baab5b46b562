package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/display-intervals/common"
	"github.com/uyouii/display-intervals/model"
	"github.com/uyouii/display-intervals/zscale"
)

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestNewFromConfig(t *testing.T) {
	table := []struct {
		cfg    model.IntervalConfig
		expect interface{}
	}{
		{model.IntervalConfig{Strategy: model.StrategyManual}, &ManualInterval{}},
		{model.IntervalConfig{Strategy: model.StrategyMinMax}, MinMaxInterval{}},
		{model.IntervalConfig{Strategy: model.StrategyPercentile,
			Percentile: model.PercentileConfig{Percentile: floatPtr(99)}}, &PercentileInterval{}},
		{model.IntervalConfig{Strategy: model.StrategyAsymmetricPercentile,
			Percentile: model.PercentileConfig{Lower: floatPtr(1), Upper: floatPtr(95), NSamples: intPtr(100)}}, &AsymmetricPercentileInterval{}},
		{model.IntervalConfig{Strategy: model.StrategyZscale}, &ZscaleInterval{}},
	}

	for _, tt := range table {
		t.Run(string(tt.cfg.Strategy), func(t *testing.T) {
			iv, err := NewFromConfig(&tt.cfg, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.expect, iv)
		})
	}
}

func TestNewFromConfigErrors(t *testing.T) {
	_, err := NewFromConfig(nil, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidConfig)

	_, err = NewFromConfig(&model.IntervalConfig{Strategy: "log"}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)

	iv, err := NewFromConfig(&model.IntervalConfig{Strategy: model.StrategyPercentile,
		Percentile: model.PercentileConfig{Percentile: floatPtr(150)}}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidConfig)
	assert.Nil(t, iv)

	_, err = NewFromConfig(&model.IntervalConfig{Strategy: model.StrategyZscale,
		Zscale: model.ZscaleConfig{Contrast: floatPtr(-1)}}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidConfig)
}

func TestNewFromConfigManualZero(t *testing.T) {
	iv, err := NewFromConfig(&model.IntervalConfig{
		Strategy: model.StrategyManual,
		Manual:   model.ManualConfig{Vmin: floatPtr(0)},
	}, nil)
	require.NoError(t, err)

	vmin, vmax, err := iv.GetLimits([]float64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, vmin)
	assert.Equal(t, 4.0, vmax)
}

func TestZscaleConfigFrom(t *testing.T) {
	assert.Equal(t, zscale.DefaultConfig(), ZscaleConfigFrom(model.ZscaleConfig{}))

	cfg := ZscaleConfigFrom(model.ZscaleConfig{
		NSamples:      intPtr(600),
		Contrast:      floatPtr(0.5),
		MaxReject:     floatPtr(0.2),
		MinNPixels:    intPtr(0),
		KRej:          floatPtr(3),
		MaxIterations: intPtr(0),
	})
	assert.Equal(t, zscale.Config{
		NSamples:      600,
		Contrast:      0.5,
		MaxReject:     0.2,
		MinNPixels:    0,
		KRej:          3,
		MaxIterations: 0,
	}, cfg)
}

func TestNewFromConfigSeed(t *testing.T) {
	cfg := &model.IntervalConfig{
		Strategy:   model.StrategyPercentile,
		Seed:       11,
		Percentile: model.PercentileConfig{Percentile: floatPtr(95), NSamples: intPtr(50)},
	}
	values := ramp(5000)

	a, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)
	b, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)

	vmin1, vmax1, err := a.GetLimits(values)
	require.NoError(t, err)
	vmin2, vmax2, err := b.GetLimits(values)
	require.NoError(t, err)
	assert.Equal(t, vmin1, vmin2)
	assert.Equal(t, vmax1, vmax2)
}

func TestNewFromConfigZeroSettings(t *testing.T) {
	table := []struct {
		name   string
		zscale model.ZscaleConfig
	}{
		{"zero contrast", model.ZscaleConfig{Contrast: floatPtr(0)}},
		{"zero krej", model.ZscaleConfig{KRej: floatPtr(0)}},
		{"zero nsamples", model.ZscaleConfig{NSamples: intPtr(0)}},
	}
	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromConfig(&model.IntervalConfig{Strategy: model.StrategyZscale, Zscale: tt.zscale}, nil)
			assert.ErrorIs(t, err, common.ErrorInvalidConfig)
		})
	}

	iv, err := NewFromConfig(&model.IntervalConfig{
		Strategy: model.StrategyZscale,
		Zscale:   model.ZscaleConfig{MaxReject: floatPtr(0)},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, iv.(*ZscaleInterval).Fitter().Config().MaxReject)

	_, err = NewFromConfig(&model.IntervalConfig{
		Strategy:   model.StrategyPercentile,
		Percentile: model.PercentileConfig{Percentile: floatPtr(90), NSamples: intPtr(0)},
	}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidConfig)
}

func TestNewFromConfigPercentileZero(t *testing.T) {
	iv, err := NewFromConfig(&model.IntervalConfig{
		Strategy:   model.StrategyAsymmetricPercentile,
		Percentile: model.PercentileConfig{Lower: floatPtr(0), Upper: floatPtr(0)},
	}, nil)
	require.NoError(t, err)
	vmin, vmax, err := iv.GetLimits([]float64{4, 2, 9})
	require.NoError(t, err)
	assert.Equal(t, 2.0, vmin)
	assert.Equal(t, 2.0, vmax)

	_, err = NewFromConfig(&model.IntervalConfig{Strategy: model.StrategyPercentile}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidConfig)
	_, err = NewFromConfig(&model.IntervalConfig{
		Strategy:   model.StrategyAsymmetricPercentile,
		Percentile: model.PercentileConfig{Lower: floatPtr(5)},
	}, nil)
	assert.ErrorIs(t, err, common.ErrorInvalidConfig)
}
