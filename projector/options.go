// SPDX-License-Identifier: MIT

package projector

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/linkage/core"
)

const (
	// DefaultIterations is the sweep budget of Project.
	DefaultIterations = 10
	// DefaultTolerance is the mean absolute length error accepted as converged.
	DefaultTolerance = 0.01
)

// Option configures Project and Nudge.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	iterations int
	tol        float64
	pinned     map[core.VertexID]bool
	logger     *slog.Logger
}

// WithIterations sets the sweep budget. Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic("projector: WithIterations: n must be >= 1")
	}

	return func(o *Options) { o.iterations = n }
}

// WithTolerance sets the per-constraint error threshold.
// Panics on negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("projector: WithTolerance: tol must be finite, non-negative")
	}

	return func(o *Options) { o.tol = tol }
}

// WithPinned fixes the given vertices in place. Repeated calls accumulate.
func WithPinned(ids ...core.VertexID) Option {
	return func(o *Options) {
		for _, v := range ids {
			o.pinned[v] = true
		}
	}
}

// WithLogger receives a Debug record per Project call. nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts ...Option) Options {
	o := Options{
		iterations: DefaultIterations,
		tol:        DefaultTolerance,
		pinned:     make(map[core.VertexID]bool),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
