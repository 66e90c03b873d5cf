// SPDX-License-Identifier: MIT

package matroid

// Defaults for the bounded exponential searches.
const (
	// DefaultExactCliqueLimit is the largest |V| searched exhaustively by CliqueNumber.
	DefaultExactCliqueLimit = 10
	// DefaultLamanExhaustiveLimit is the largest |V| for which CheckLaman visits every subset.
	DefaultLamanExhaustiveLimit = 8
	// DefaultMaxSubsetSize caps the subset size of non-exhaustive Laman checks.
	DefaultMaxSubsetSize = 8
	// DefaultMaxCircuitSize is the largest vertex subset scanned by FindCircuits.
	DefaultMaxCircuitSize = 6
	// MinCliqueSize is the smallest clique reported by MaximalCliques.
	MinCliqueSize = 3
	// DefaultCircuitDimension selects the 2D rigidity matroid.
	DefaultCircuitDimension = 2
)

// Option configures the analyzer.
type Option func(*Options)

// Options holds the resolved search bounds.
type Options struct {
	exactCliqueLimit int
	lamanExhaustive  int
	maxSubset        int
	maxCircuit       int
	circuitDim       int
}

// WithMaxSubsetSize caps every subset enumeration (Laman and circuits) at k
// vertices. Panics if k < 2.
func WithMaxSubsetSize(k int) Option {
	if k < 2 {
		panic("matroid: WithMaxSubsetSize: k must be >= 2")
	}

	return func(o *Options) {
		o.maxSubset = k
		o.maxCircuit = min(o.maxCircuit, k)
		o.lamanExhaustive = min(o.lamanExhaustive, k)
	}
}

// WithExactCliqueLimit sets the largest |V| searched exhaustively by CliqueNumber.
func WithExactCliqueLimit(n int) Option {
	if n < 0 {
		panic("matroid: WithExactCliqueLimit: n must be >= 0")
	}

	return func(o *Options) { o.exactCliqueLimit = n }
}

// WithCircuitDimension selects the count threshold used by Analyze for circuits.
func WithCircuitDimension(d int) Option {
	if d < 1 {
		panic("matroid: WithCircuitDimension: d must be >= 1")
	}

	return func(o *Options) { o.circuitDim = d }
}

func newOptions(opts ...Option) Options {
	o := Options{
		exactCliqueLimit: DefaultExactCliqueLimit,
		lamanExhaustive:  DefaultLamanExhaustiveLimit,
		maxSubset:        DefaultMaxSubsetSize,
		maxCircuit:       DefaultMaxCircuitSize,
		circuitDim:       DefaultCircuitDimension,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
