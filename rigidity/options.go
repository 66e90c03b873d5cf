// SPDX-License-Identifier: MIT

package rigidity

import (
	"io"
	"log/slog"
	"math"
)

// DefaultTolerance is the pivot threshold for rank and null-space queries on
// the rigidity matrix.
const DefaultTolerance = 1e-9

// DefaultMotionTolerance is the norm below which a projected motion is
// considered to lie in the span of the trivial motions.
const DefaultMotionTolerance = 1e-8

// Option configures Build and Analyze.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	tol       float64
	motionTol float64
	logger    *slog.Logger
}

// WithTolerance sets the pivot tolerance. Panics on negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("rigidity: WithTolerance: tol must be finite, non-negative")
	}

	return func(o *Options) { o.tol = tol }
}

// WithMotionTolerance sets the residual norm used by NonTrivialMotions.
func WithMotionTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("rigidity: WithMotionTolerance: tol must be finite, positive")
	}

	return func(o *Options) { o.motionTol = tol }
}

// WithLogger routes warnings (missing coordinates) to l. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		motionTol: DefaultMotionTolerance,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
