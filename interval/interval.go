// Package interval computes display intervals (vmin, vmax) from arrays of
// values and maps values linearly into [0, 1] with them.
package interval

// Interval is satisfied by every interval strategy. Implementations hold
// only immutable configuration and are safe for concurrent use.
type Interval interface {
	// GetLimits returns the minimum and maximum of the interval computed
	// from values.
	GetLimits(values []float64) (vmin, vmax float64, err error)
}
