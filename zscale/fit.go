package zscale

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

type Termination int

const (
	Converged Termination = iota
	MaxIterations
	OverRejected
	UnderPopulated
	Degenerate
)

func (t Termination) String() string {
	switch t {
	case Converged:
		return "converged"
	case MaxIterations:
		return "max_iterations"
	case OverRejected:
		return "over_rejected"
	case UnderPopulated:
		return "under_populated"
	case Degenerate:
		return "degenerate"
	}
	return "unknown"
}

// Fallback reports whether the fit was discarded in favour of the plain
// sample min/max.
func (t Termination) Fallback() bool {
	return t == OverRejected || t == UnderPopulated || t == Degenerate
}

// Fit is the outcome of the sigma clipped line fit over (rank, value).
type Fit struct {
	Intercept   float64
	Slope       float64
	Iterations  int
	NGood       int
	NSamples    int
	Termination Termination
}

// fitState is the per call working set of the rejection loop.
type fitState struct {
	x       []float64
	y       []float64
	weights []float64 // 1 accepted, 0 rejected
	flat    []float64
	ngood   int
	ngrow   int
}

func newFitState(sorted []float64) *fitState {
	n := len(sorted)
	s := &fitState{
		x:       make([]float64, n),
		y:       sorted,
		weights: make([]float64, n),
		flat:    make([]float64, n),
		ngood:   n,
		ngrow:   IntMax(1, int(float64(n)*growFraction)),
	}
	for i := range s.x {
		s.x[i] = float64(i)
		s.weights[i] = 1
	}
	return s
}

func (s *fitState) fitLine() (intercept, slope float64) {
	return stat.LinearRegression(s.x, s.y, s.weights, false)
}

// reject marks points whose residual exceeds krej * sigma, grows the
// rejected region by ngrow and returns how many points were newly rejected.
func (s *fitState) reject(intercept, slope, krej, tolerance float64) int {
	for i := range s.y {
		s.flat[i] = s.y[i] - (intercept + slope*s.x[i])
	}
	sigma := stat.PopStdDev(s.flat, s.weights)
	if sigma <= tolerance {
		return 0
	}
	threshold := krej * sigma

	bad := make([]bool, len(s.y))
	for i, r := range s.flat {
		if s.weights[i] == 0 || math.Abs(r) > threshold {
			bad[i] = true
		}
	}
	bad = grow(bad, s.ngrow)

	newlyRejected := 0
	for i := range bad {
		if bad[i] && s.weights[i] != 0 {
			s.weights[i] = 0
			newlyRejected++
		}
	}
	s.ngood -= newlyRejected
	return newlyRejected
}

// grow dilates the rejection mask with a box of width n centred the same
// way as a "same" mode convolution.
func grow(bad []bool, n int) []bool {
	if n <= 1 {
		return bad
	}
	offset := (n - 1) / 2
	res := make([]bool, len(bad))
	for j, b := range bad {
		if !b {
			continue
		}
		lo := IntMax(0, j-offset)
		hi := IntMin(len(bad)-1, j-offset+n-1)
		for i := lo; i <= hi; i++ {
			res[i] = true
		}
	}
	return res
}

// FitSorted runs the rejection loop over sorted ascending values.
// The loop stops on the first of: no new rejections, MaxIterations rounds,
// more than MaxReject*K rejected, fewer than MinNPixels accepted, fewer
// than two accepted ranks.
func (f *Fitter) FitSorted(sorted []float64) *Fit {
	state := newFitState(sorted)
	k := len(sorted)
	fit := &Fit{NSamples: k, NGood: k}

	if k < 2 {
		fit.Termination = Degenerate
		return fit
	}
	tolerance := flatTolerance * math.Max(math.Abs(sorted[0]), math.Abs(sorted[k-1]))

	if f.cfg.MaxIterations == 0 {
		fit.Intercept, fit.Slope = state.fitLine()
		fit.Termination = MaxIterations
		return fit
	}

	for fit.Iterations < f.cfg.MaxIterations {
		if state.ngood < 2 {
			fit.Termination = Degenerate
			return fit
		}

		intercept, slope := state.fitLine()
		if math.IsNaN(slope) || math.IsNaN(intercept) {
			fit.Termination = Degenerate
			return fit
		}
		fit.Intercept, fit.Slope = intercept, slope

		newlyRejected := state.reject(intercept, slope, f.cfg.KRej, tolerance)
		fit.Iterations++
		fit.NGood = state.ngood

		if float64(k-state.ngood) > f.cfg.MaxReject*float64(k) {
			fit.Termination = OverRejected
			return fit
		}
		if state.ngood < f.cfg.MinNPixels {
			fit.Termination = UnderPopulated
			return fit
		}
		// the last line was fitted to points that are now rejected
		if state.ngood < 2 {
			fit.Termination = Degenerate
			return fit
		}
		if newlyRejected == 0 {
			fit.Termination = Converged
			return fit
		}
	}

	fit.Termination = MaxIterations
	return fit
}
