package interval

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/model"
	"github.com/uyouii/display-intervals/sample"
	"github.com/uyouii/display-intervals/utils"
	"go.uber.org/zap"
)

// CalculateDisplayRange builds the strategy described by cfg, computes its
// limits over values and normalizes them.
func CalculateDisplayRange(ctx context.Context, cfg *model.IntervalConfig,
	sampler sample.Sampler, values []float64) (res *model.DisplayRange, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateDisplayRange recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("valueCnt", len(values)))
			res, err = nil, errors.Errorf("calculate display range panic: %v", r)
		}
	}()

	iv, err := NewFromConfig(cfg, sampler)
	if err != nil {
		logger.Error("NewFromConfig failed", zap.Error(err))
		return nil, err
	}

	vmin, vmax, err := iv.GetLimits(values)
	if err != nil {
		logger.Error("GetLimits failed", zap.Error(err), zap.String("strategy", string(cfg.Strategy)))
		return nil, err
	}

	limits := model.Limits{Vmin: vmin, Vmax: vmax}

	// the limits are already known, don't ask the strategy twice
	fixed := NewManualInterval(WithVmin(limits.Vmin), WithVmax(limits.Vmax))
	normalized, err := Normalize(fixed, values, cfg.ClipEnabled())
	if err != nil {
		logger.Error("Normalize failed", zap.Error(err))
		return nil, err
	}

	logger.Info(fmt.Sprintf("display range %v", limits), zap.String("strategy", string(cfg.Strategy)),
		zap.Int("valueCnt", len(values)), zap.Bool("degenerate", limits.Degenerate()))

	return &model.DisplayRange{
		Strategy: cfg.Strategy,
		Limits:   limits,
		Values:   normalized,
	}, nil
}
