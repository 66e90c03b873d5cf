// SPDX-License-Identifier: MIT

package folding

import (
	"io"
	"log/slog"
	"math"
)

const (
	// DefaultLengthTolerance is the absolute edge-length drift an operation may cause.
	DefaultLengthTolerance = 0.01
	// DefaultRankTolerance is the pivot threshold for coordinate and edge-vector ranks.
	DefaultRankTolerance = 1e-6
	// DefaultMaxSteps bounds Minimize.
	DefaultMaxSteps = 16
)

// DefaultAngles are the fixed hinge angles in degrees (both signs are tried).
var DefaultAngles = []float64{30, 45, 60, 90, 120, 180}

// Option configures an Engine.
type Option func(*Options)

// Options holds the resolved engine configuration.
type Options struct {
	lengthTol float64
	rankTol   float64
	angles    []float64 // radians, signed
	maxSteps  int
	logger    *slog.Logger
}

// WithLengthTolerance sets the absolute length drift allowed per edge.
// Panics on negative or non-finite tol.
func WithLengthTolerance(tol float64) Option {
	mustFinite("WithLengthTolerance", tol)
	return func(o *Options) { o.lengthTol = tol }
}

// WithRankTolerance sets the rank pivot threshold.
func WithRankTolerance(tol float64) Option {
	mustFinite("WithRankTolerance", tol)
	return func(o *Options) { o.rankTol = tol }
}

// WithAngles replaces the fixed hinge angles (degrees; both signs are tried).
// Panics on an empty list.
func WithAngles(degrees ...float64) Option {
	if len(degrees) == 0 {
		panic("folding: WithAngles: at least one angle required")
	}
	rad := signedRadians(degrees)

	return func(o *Options) { o.angles = rad }
}

// WithMaxSteps bounds the number of folds Minimize applies. Panics if n < 1.
func WithMaxSteps(n int) Option {
	if n < 1 {
		panic("folding: WithMaxSteps: n must be >= 1")
	}

	return func(o *Options) { o.maxSteps = n }
}

// WithLogger receives Debug records for rejected proposals. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func mustFinite(name string, tol float64) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("folding: " + name + ": tol must be finite, non-negative")
	}
}

func signedRadians(degrees []float64) []float64 {
	out := make([]float64, 0, 2*len(degrees))
	for _, d := range degrees {
		r := d * math.Pi / 180
		out = append(out, r, -r)
	}

	return out
}

func newOptions(opts ...Option) Options {
	o := Options{
		lengthTol: DefaultLengthTolerance,
		rankTol:   DefaultRankTolerance,
		angles:    signedRadians(DefaultAngles),
		maxSteps:  DefaultMaxSteps,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
