package model

import "fmt"

type StrategyName string

const (
	StrategyManual               StrategyName = "manual"
	StrategyMinMax               StrategyName = "minmax"
	StrategyPercentile           StrategyName = "percentile"
	StrategyAsymmetricPercentile StrategyName = "asymmetric_percentile"
	StrategyZscale               StrategyName = "zscale"
)

// Limits is the (vmin, vmax) pair used to rescale values into [0, 1].
type Limits struct {
	Vmin float64 `json:"vmin" yaml:"vmin"`
	Vmax float64 `json:"vmax" yaml:"vmax"`
}

func (l Limits) Width() float64 {
	return l.Vmax - l.Vmin
}

// Degenerate reports whether normalization will skip the division.
func (l Limits) Degenerate() bool {
	return l.Vmax == l.Vmin
}

func (l Limits) String() string {
	return fmt.Sprintf("[%v, %v]", l.Vmin, l.Vmax)
}

type DisplayRange struct {
	Strategy StrategyName `json:"strategy"`
	Limits   Limits       `json:"limits"`
	Values   []float64    `json:"values,omitempty"`
}

// ManualConfig uses pointers so that an explicit 0 is kept apart from
// a missing bound.
type ManualConfig struct {
	Vmin *float64 `json:"vmin,omitempty" yaml:"vmin,omitempty"`
	Vmax *float64 `json:"vmax,omitempty" yaml:"vmax,omitempty"`
}

// PercentileConfig and ZscaleConfig use pointers for every setting so that
// an explicit 0 reaches validation instead of being taken as unset.
type PercentileConfig struct {
	// Percentile is the fraction of values to keep, used by "percentile".
	Percentile *float64 `json:"percentile,omitempty" yaml:"percentile,omitempty"`
	Lower      *float64 `json:"lower,omitempty" yaml:"lower,omitempty"`
	Upper      *float64 `json:"upper,omitempty" yaml:"upper,omitempty"`
	NSamples   *int     `json:"n_samples,omitempty" yaml:"n_samples,omitempty"`
}

// ZscaleConfig leaves unset fields to the zscale defaults.
type ZscaleConfig struct {
	NSamples      *int     `json:"nsamples,omitempty" yaml:"nsamples,omitempty"`
	Contrast      *float64 `json:"contrast,omitempty" yaml:"contrast,omitempty"`
	MaxReject     *float64 `json:"max_reject,omitempty" yaml:"max_reject,omitempty"`
	MinNPixels    *int     `json:"min_npixels,omitempty" yaml:"min_npixels,omitempty"`
	KRej          *float64 `json:"krej,omitempty" yaml:"krej,omitempty"`
	MaxIterations *int     `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty"`
}

type IntervalConfig struct {
	Strategy   StrategyName     `json:"strategy" yaml:"strategy"`
	Clip       *bool            `json:"clip,omitempty" yaml:"clip,omitempty"`
	Seed       uint64           `json:"seed,omitempty" yaml:"seed,omitempty"`
	Manual     ManualConfig     `json:"manual,omitempty" yaml:"manual,omitempty"`
	Percentile PercentileConfig `json:"percentile,omitempty" yaml:"percentile,omitempty"`
	Zscale     ZscaleConfig     `json:"zscale,omitempty" yaml:"zscale,omitempty"`
}

func (c *IntervalConfig) ClipEnabled() bool {
	if c == nil || c.Clip == nil {
		return true
	}
	return *c.Clip
}

func (c *IntervalConfig) DebugString() string {
	return fmt.Sprintf("strategy: %v, clip: %v, seed: %v", c.Strategy, c.ClipEnabled(), c.Seed)
}
