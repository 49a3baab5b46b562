package interval

import (
	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/common"
)

// ManualInterval returns user supplied limits. A bound that was not set
// falls back to the minimum or maximum of the values.
type ManualInterval struct {
	vmin, vmax       float64
	hasVmin, hasVmax bool
}

type ManualOption func(*ManualInterval)

func WithVmin(v float64) ManualOption {
	return func(m *ManualInterval) {
		m.vmin, m.hasVmin = v, true
	}
}

func WithVmax(v float64) ManualOption {
	return func(m *ManualInterval) {
		m.vmax, m.hasVmax = v, true
	}
}

func NewManualInterval(opts ...ManualOption) *ManualInterval {
	m := &ManualInterval{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *ManualInterval) Vmin() (float64, bool) {
	return m.vmin, m.hasVmin
}

func (m *ManualInterval) Vmax() (float64, bool) {
	return m.vmax, m.hasVmax
}

func (m *ManualInterval) GetLimits(values []float64) (float64, float64, error) {
	if m.hasVmin && m.hasVmax {
		return m.vmin, m.vmax, nil
	}
	if len(values) == 0 {
		return 0, 0, errors.Wrap(common.ErrorEmptyInput, "manual interval")
	}

	vmin, vmax := valueRange(values)
	if m.hasVmin {
		vmin = m.vmin
	}
	if m.hasVmax {
		vmax = m.vmax
	}
	return vmin, vmax, nil
}
