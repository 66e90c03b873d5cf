// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the vertex naming function. Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}

	return func(c *builderConfig) { c.nameFn = fn }
}

// WithRand provides an explicit RNG for RandomLayout. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG for RandomLayout (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
