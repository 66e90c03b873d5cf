// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public kernels consume ...Option.
package matrix

import "math"

// DefaultTolerance is the absolute pivot threshold below which an entry is
// treated as zero by Rank, NullSpace, RREF, LU and Determinant.
const DefaultTolerance = 1e-10

const panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol float64 // >= 0; DefaultTolerance
}

// WithTolerance sets the absolute pivot tolerance.
// Panics when tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// Tolerance returns the resolved pivot tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// NewOptions resolves user options on top of the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
