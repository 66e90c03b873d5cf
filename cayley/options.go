// SPDX-License-Identifier: MIT

package cayley

import "math"

const (
	// DefaultPivotTolerance is the LU pivot threshold for Cayley-Menger determinants.
	DefaultPivotTolerance = 1e-12
	// DefaultDegeneracyTolerance is the area/volume below which a simplex is flat.
	DefaultDegeneracyTolerance = 1e-8
	// DefaultTangencyTolerance is the |gap| within which two spheres are tangent.
	DefaultTangencyTolerance = 1e-8
)

// Option configures the analyzer.
type Option func(*Options)

// Options holds the resolved tolerances.
type Options struct {
	pivotTol float64
	degenTol float64
}

// WithPivotTolerance sets the LU pivot threshold. Panics on negative or non-finite tol.
func WithPivotTolerance(tol float64) Option {
	mustTolerance("WithPivotTolerance", tol)
	return func(o *Options) { o.pivotTol = tol }
}

// WithDegeneracyTolerance sets the flatness threshold used by AffineDimension.
func WithDegeneracyTolerance(tol float64) Option {
	mustTolerance("WithDegeneracyTolerance", tol)
	return func(o *Options) { o.degenTol = tol }
}

func mustTolerance(name string, tol float64) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("cayley: " + name + ": tol must be finite, non-negative")
	}
}

func newOptions(opts ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance, degenTol: DefaultDegeneracyTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
